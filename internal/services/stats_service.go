package services

import (
	"context"

	"tourism/internal/domain/models"
	"tourism/internal/repositories"
)

type StatsService struct {
	Repo repositories.StatsRepository
}

func (s StatsService) Summary(ctx context.Context) (models.Stats, error) {
	return s.Repo.Summary(ctx)
}

func (s StatsService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	return s.Repo.Dashboard(ctx)
}
