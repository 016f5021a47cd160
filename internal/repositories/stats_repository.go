package repositories

import (
	"context"
	"database/sql"
	"math"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

type StatsRepository struct {
	DB *sql.DB
}

// Summary aggregates counts, the average rating and the share of tourists
// who came back for more than one visit.
func (r StatsRepository) Summary(ctx context.Context) (models.Stats, error) {
	db, err := pick(r.DB)
	if err != nil {
		return models.Stats{}, err
	}

	var s models.Stats
	counts := []struct {
		query string
		dst   *int64
	}{
		{`SELECT COUNT(*) FROM tourists`, &s.TotalTourists},
		{`SELECT COUNT(*) FROM destinations`, &s.TotalDestinations},
		{`SELECT COUNT(*) FROM visits`, &s.TotalVisits},
	}
	for _, c := range counts {
		if err := db.QueryRowContext(ctx, c.query).Scan(c.dst); err != nil {
			return models.Stats{}, domain.InternalError{Op: "stats", Err: err}
		}
	}

	if err := db.QueryRowContext(ctx, `SELECT COALESCE(AVG(rating), 0) FROM visits`).Scan(&s.AvgRating); err != nil {
		return models.Stats{}, domain.InternalError{Op: "stats", Err: err}
	}

	var returning int64
	err = db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM (
			SELECT tourist_id FROM visits GROUP BY tourist_id HAVING COUNT(*) > 1
		) AS returning_tourists`).Scan(&returning)
	if err != nil {
		return models.Stats{}, domain.InternalError{Op: "stats", Err: err}
	}
	s.ReturnRate = returnRate(returning, s.TotalTourists)

	rows, err := db.QueryContext(ctx, `
		SELECT nationality, COUNT(*) AS total
		FROM tourists
		GROUP BY nationality
		ORDER BY total DESC, nationality ASC`)
	if err != nil {
		return models.Stats{}, domain.InternalError{Op: "stats", Err: err}
	}
	defer rows.Close()

	s.TouristsByNationality = []models.NationalityCount{}
	for rows.Next() {
		var nc models.NationalityCount
		if err := rows.Scan(&nc.Nationality, &nc.Count); err != nil {
			return models.Stats{}, domain.InternalError{Op: "stats", Err: err}
		}
		s.TouristsByNationality = append(s.TouristsByNationality, nc)
	}
	if err := rows.Err(); err != nil {
		return models.Stats{}, domain.InternalError{Op: "stats", Err: err}
	}
	return s, nil
}

// returnRate is a percentage rounded to one decimal; 0 with no tourists.
func returnRate(returning, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(returning)/float64(total)*1000) / 10
}
