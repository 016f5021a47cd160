package services

import (
	"context"
	"strconv"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/repositories"
	"tourism/internal/utils"
)

type DestinationService struct {
	Repo      repositories.DestinationRepository
	RequestID string
}

func (s DestinationService) List(ctx context.Context) ([]models.Destination, error) {
	return s.Repo.List(ctx)
}

// Create coerces the posted price text to a number before storing.
func (s DestinationService) Create(ctx context.Context, p models.DestinationPayload) (models.Destination, error) {
	name := utils.NormalizeSpace(p.Name)
	city := utils.NormalizeSpace(p.City)
	country := utils.NormalizeSpace(p.Country)
	switch {
	case name == "":
		return models.Destination{}, domain.Invalid("name", "is required")
	case city == "":
		return models.Destination{}, domain.Invalid("city", "is required")
	case country == "":
		return models.Destination{}, domain.Invalid("country", "is required")
	}

	price, err := p.Price.Float()
	if err != nil {
		return models.Destination{}, domain.Invalid("price", "must be a number")
	}
	if price < 0 {
		return models.Destination{}, domain.Invalid("price", "must not be negative")
	}

	d, err := s.Repo.Create(ctx, name, city, country, price)
	if err != nil {
		return models.Destination{}, err
	}
	utils.LogEvent(s.RequestID, "destination", "create", "id="+strconv.FormatInt(d.ID, 10))
	return d, nil
}
