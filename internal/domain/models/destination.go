package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Price keeps the textual form of a destination price. The form posts it as a
// string while the API answers with a number, so it decodes from either.
type Price string

// PriceOf formats f the way the API serves it ("100", "12.5").
func PriceOf(f float64) Price {
	return Price(strconv.FormatFloat(f, 'f', -1, 64))
}

func (p Price) Float() (float64, error) {
	s := strings.TrimSpace(string(p))
	if s == "" {
		return 0, fmt.Errorf("price is empty")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("price %q is not a finite number", s)
	}
	return f, nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Price(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("price: %w", err)
	}
	*p = Price(n.String())
	return nil
}

// MarshalJSON emits a number when the text is numeric and a string otherwise.
func (p Price) MarshalJSON() ([]byte, error) {
	if f, err := p.Float(); err == nil {
		return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
	}
	return json.Marshal(string(p))
}

// Destination is one row of the destinations table.
type Destination struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Price   Price  `json:"price"`
}

// DestinationPayload is the body the browser form posts: price is sent as
// the raw field text and coerced by the server.
type DestinationPayload struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Price   Price  `json:"price"`
}

// MarshalJSON keeps price as a JSON string so the server sees the field text.
func (d DestinationPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string `json:"name"`
		City    string `json:"city"`
		Country string `json:"country"`
		Price   string `json:"price"`
	}{d.Name, d.City, d.Country, string(d.Price)})
}
