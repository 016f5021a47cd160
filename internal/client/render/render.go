// Package render turns fetched records into host-independent descriptors of
// list items and select options. The DOM adapter performs the mutation.
package render

import (
	"strconv"
	"strings"

	"tourism/internal/domain/models"
)

const (
	TouristItemClass     = "tourist-item"
	DestinationItemClass = "destination-item"

	TouristPlaceholder     = "Select Tourist"
	DestinationPlaceholder = "Select Destination"
)

// Item is one entry of a list container: a heading and its detail lines.
type Item struct {
	Class string
	Title string
	Lines []string
}

// Text flattens the item the way it reads on screen.
func (i Item) Text() string {
	return strings.Join(append([]string{i.Title}, i.Lines...), "\n")
}

// Option is one entry of a select element.
type Option struct {
	Value string
	Label string
}

// Tourists keeps fetch order; a nil or empty input yields no items.
func Tourists(list []models.Tourist) []Item {
	items := make([]Item, 0, len(list))
	for _, t := range list {
		items = append(items, Item{
			Class: TouristItemClass,
			Title: t.Name,
			Lines: []string{
				"Nationality: " + t.Nationality,
				"Age: " + age(t.Age),
			},
		})
	}
	return items
}

func Destinations(list []models.Destination) []Item {
	items := make([]Item, 0, len(list))
	for _, d := range list {
		items = append(items, Item{
			Class: DestinationItemClass,
			Title: d.Name,
			Lines: []string{
				"Location: " + d.City + ", " + d.Country,
				"Price: $" + string(d.Price),
			},
		})
	}
	return items
}

// TouristOptions always starts with the empty-valued placeholder.
func TouristOptions(list []models.Tourist) []Option {
	opts := make([]Option, 0, len(list)+1)
	opts = append(opts, Option{Value: "", Label: TouristPlaceholder})
	for _, t := range list {
		opts = append(opts, Option{
			Value: strconv.FormatInt(t.ID, 10),
			Label: t.Name + " (" + t.Nationality + ")",
		})
	}
	return opts
}

func DestinationOptions(list []models.Destination) []Option {
	opts := make([]Option, 0, len(list)+1)
	opts = append(opts, Option{Value: "", Label: DestinationPlaceholder})
	for _, d := range list {
		opts = append(opts, Option{
			Value: strconv.FormatInt(d.ID, 10),
			Label: d.Name + " (" + d.City + ", " + d.Country + ")",
		})
	}
	return opts
}

func age(a *int) string {
	if a == nil {
		return ""
	}
	return strconv.Itoa(*a)
}
