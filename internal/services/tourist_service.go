package services

import (
	"context"
	"strconv"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/repositories"
	"tourism/internal/utils"
)

type TouristService struct {
	Repo      repositories.TouristRepository
	RequestID string
}

func (s TouristService) List(ctx context.Context) ([]models.Tourist, error) {
	return s.Repo.List(ctx)
}

// Create stores a tourist; a NaN age is stored as NULL.
func (s TouristService) Create(ctx context.Context, p models.TouristPayload) (models.Tourist, error) {
	name := utils.NormalizeSpace(p.Name)
	nationality := utils.NormalizeSpace(p.Nationality)
	if name == "" {
		return models.Tourist{}, domain.Invalid("name", "is required")
	}
	if nationality == "" {
		return models.Tourist{}, domain.Invalid("nationality", "is required")
	}
	age := p.Age.Ptr()
	if age != nil && *age < 0 {
		return models.Tourist{}, domain.Invalid("age", "must not be negative")
	}

	t, err := s.Repo.Create(ctx, name, nationality, age)
	if err != nil {
		return models.Tourist{}, err
	}
	utils.LogEvent(s.RequestID, "tourist", "create", "id="+strconv.FormatInt(t.ID, 10))
	return t, nil
}
