package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/repositories"
	"tourism/internal/utils"
)

const (
	minRating = 1
	maxRating = 5
)

type VisitService struct {
	Visits       repositories.VisitRepository
	Tourists     repositories.TouristRepository
	Destinations repositories.DestinationRepository
	RequestID    string
	Now          func() time.Time
}

func (s VisitService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s VisitService) List(ctx context.Context) ([]models.Visit, error) {
	return s.Visits.List(ctx)
}

// Create records a visit dated now. Both ids must reference stored records;
// a null rating is kept as NULL.
func (s VisitService) Create(ctx context.Context, p models.VisitPayload) (models.Visit, error) {
	touristID, ok := p.TouristID.Int64()
	if !ok || touristID <= 0 {
		return models.Visit{}, domain.Invalid("tourist_id", "is required")
	}
	destinationID, ok := p.DestinationID.Int64()
	if !ok || destinationID <= 0 {
		return models.Visit{}, domain.Invalid("destination_id", "is required")
	}
	rating := p.Rating.Ptr()
	if rating != nil && (*rating < minRating || *rating > maxRating) {
		return models.Visit{}, domain.Invalid("rating", fmt.Sprintf("must be between %d and %d", minRating, maxRating))
	}

	exists, err := s.Tourists.Exists(ctx, touristID)
	if err != nil {
		return models.Visit{}, err
	}
	if !exists {
		return models.Visit{}, domain.Invalid("tourist_id", fmt.Sprintf("tourist %d does not exist", touristID))
	}
	exists, err = s.Destinations.Exists(ctx, destinationID)
	if err != nil {
		return models.Visit{}, err
	}
	if !exists {
		return models.Visit{}, domain.Invalid("destination_id", fmt.Sprintf("destination %d does not exist", destinationID))
	}

	v, err := s.Visits.Create(ctx, touristID, destinationID, s.now(), rating)
	if err != nil {
		return models.Visit{}, err
	}
	utils.LogEvent(s.RequestID, "visit", "create",
		"id="+strconv.FormatInt(v.ID, 10)+" tourist_id="+strconv.FormatInt(touristID, 10))
	return v, nil
}
