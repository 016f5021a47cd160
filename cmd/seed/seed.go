package main

import (
	"context"
	"fmt"
	"strconv"

	"tourism/internal/domain/models"
	"tourism/internal/jsnum"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"
)

type seedGateway interface {
	ListTourists(ctx context.Context) ([]models.Tourist, error)
	ListDestinations(ctx context.Context) ([]models.Destination, error)
	CreateTourist(ctx context.Context, p models.TouristPayload) error
	CreateDestination(ctx context.Context, p models.DestinationPayload) error
	CreateVisit(ctx context.Context, p models.VisitPayload) error
}

type counts struct {
	Tourists     int
	Destinations int
	Visits       int
}

var landmarks = []string{"Beach", "Temple", "Fort", "Museum", "Lake", "Market", "Palace", "Falls"}

type seeder struct {
	gw   seedGateway
	fake *gofakeit.Faker
	log  logrus.FieldLogger
}

// run creates tourists and destinations, then visits between stored records.
// It stops at the first failed request.
func (s seeder) run(ctx context.Context, n counts) error {
	for i := 0; i < n.Tourists; i++ {
		p := models.TouristPayload{
			Name:        s.fake.Name(),
			Nationality: s.fake.Country(),
			Age:         jsnum.Of(int64(s.fake.Number(18, 80))),
		}
		if err := s.gw.CreateTourist(ctx, p); err != nil {
			return fmt.Errorf("create tourist %d: %w", i+1, err)
		}
	}
	for i := 0; i < n.Destinations; i++ {
		city := s.fake.City()
		p := models.DestinationPayload{
			Name:    city + " " + s.fake.RandomString(landmarks),
			City:    city,
			Country: s.fake.Country(),
			Price:   models.Price(strconv.FormatFloat(s.fake.Price(10, 500), 'f', 2, 64)),
		}
		if err := s.gw.CreateDestination(ctx, p); err != nil {
			return fmt.Errorf("create destination %d: %w", i+1, err)
		}
	}
	s.log.WithFields(logrus.Fields{"tourists": n.Tourists, "destinations": n.Destinations}).Info("records created")

	if n.Visits == 0 {
		return nil
	}
	tourists, err := s.gw.ListTourists(ctx)
	if err != nil {
		return fmt.Errorf("list tourists: %w", err)
	}
	destinations, err := s.gw.ListDestinations(ctx)
	if err != nil {
		return fmt.Errorf("list destinations: %w", err)
	}
	if len(tourists) == 0 || len(destinations) == 0 {
		return fmt.Errorf("visits need at least one tourist and one destination")
	}

	for i := 0; i < n.Visits; i++ {
		t := tourists[s.fake.Number(0, len(tourists)-1)]
		d := destinations[s.fake.Number(0, len(destinations)-1)]
		p := models.VisitPayload{
			TouristID:     jsnum.Of(t.ID),
			DestinationID: jsnum.Of(d.ID),
			Rating:        jsnum.Of(int64(s.fake.Number(1, 5))),
		}
		if err := s.gw.CreateVisit(ctx, p); err != nil {
			return fmt.Errorf("create visit %d: %w", i+1, err)
		}
	}
	s.log.WithField("visits", n.Visits).Info("visits recorded")
	return nil
}
