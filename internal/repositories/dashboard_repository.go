package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

const recentActivityLimit = 10

const destinationTotalsQuery = `
	SELECT d.name, d.city, d.country, COUNT(v.id) AS visit_count, SUM(d.price) AS total_revenue
	FROM destinations d
	JOIN visits v ON v.destination_id = d.id
	GROUP BY d.id, d.name, d.city, d.country`

// Dashboard extends Summary with per-destination, per-month and per-tourist
// breakdowns.
func (r StatsRepository) Dashboard(ctx context.Context) (models.Dashboard, error) {
	db, err := pick(r.DB)
	if err != nil {
		return models.Dashboard{}, err
	}
	summary, err := StatsRepository{DB: db}.Summary(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}

	d := models.Dashboard{
		Stats:               summary,
		DestinationRatings:  []models.DestinationRating{},
		RecentActivities:    []models.RecentActivity{},
		TopDestinations:     []models.DestinationTotal{},
		PopularDestinations: []models.DestinationTotal{},
		SeasonalTrends:      []models.MonthlyVisits{},
		Tourists:            []models.TouristActivity{},
	}

	err = queryEach(ctx, db, `
		SELECT d.name, d.city, d.country, AVG(v.rating) AS avg_rating, COUNT(v.id) AS visit_count
		FROM destinations d
		JOIN visits v ON v.destination_id = d.id
		GROUP BY d.id, d.name, d.city, d.country
		ORDER BY d.id ASC`, func(rows *sql.Rows) error {
		var (
			dr  models.DestinationRating
			avg sql.NullFloat64
		)
		if err := rows.Scan(&dr.Name, &dr.City, &dr.Country, &avg, &dr.VisitCount); err != nil {
			return err
		}
		if avg.Valid {
			dr.AvgRating = &avg.Float64
		}
		d.DestinationRatings = append(d.DestinationRatings, dr)
		return nil
	})
	if err != nil {
		return models.Dashboard{}, err
	}

	err = queryEach(ctx, db, `
		SELECT t.name, d.name, d.city, d.country, v.rating, v.visit_date
		FROM visits v
		JOIN tourists t ON t.id = v.tourist_id
		JOIN destinations d ON d.id = v.destination_id
		ORDER BY v.visit_date DESC, v.id DESC
		LIMIT ?`, func(rows *sql.Rows) error {
		var (
			ra     models.RecentActivity
			rating sql.NullInt64
			at     time.Time
		)
		if err := rows.Scan(&ra.TouristName, &ra.DestinationName, &ra.City, &ra.Country, &rating, &at); err != nil {
			return err
		}
		ra.Rating = intPtr(rating)
		ra.VisitDate = at.UTC()
		d.RecentActivities = append(d.RecentActivities, ra)
		return nil
	}, recentActivityLimit)
	if err != nil {
		return models.Dashboard{}, err
	}

	if d.TopDestinations, err = destinationTotals(ctx, db, `ORDER BY total_revenue DESC, d.id ASC LIMIT 5`); err != nil {
		return models.Dashboard{}, err
	}
	if d.PopularDestinations, err = destinationTotals(ctx, db, `ORDER BY visit_count DESC, d.id ASC LIMIT 5`); err != nil {
		return models.Dashboard{}, err
	}

	err = queryEach(ctx, db, `
		SELECT MONTH(visit_date) AS month, COUNT(*) AS total
		FROM visits
		GROUP BY MONTH(visit_date)
		ORDER BY MONTH(visit_date) ASC`, func(rows *sql.Rows) error {
		var month, total int64
		if err := rows.Scan(&month, &total); err != nil {
			return err
		}
		d.SeasonalTrends = append(d.SeasonalTrends, models.MonthlyVisits{Month: monthName(month), Count: total})
		return nil
	})
	if err != nil {
		return models.Dashboard{}, err
	}

	err = queryEach(ctx, db, `
		SELECT t.id, t.name, t.nationality, t.age, COUNT(v.id) AS visit_count,
			COUNT(DISTINCT v.destination_id) AS destinations_visited
		FROM tourists t
		LEFT JOIN visits v ON v.tourist_id = t.id
		GROUP BY t.id, t.name, t.nationality, t.age
		ORDER BY t.id ASC`, func(rows *sql.Rows) error {
		var (
			ta  models.TouristActivity
			age sql.NullInt64
		)
		if err := rows.Scan(&ta.ID, &ta.Name, &ta.Nationality, &age, &ta.VisitCount, &ta.DestinationsVisited); err != nil {
			return err
		}
		ta.Age = intPtr(age)
		d.Tourists = append(d.Tourists, ta)
		return nil
	})
	if err != nil {
		return models.Dashboard{}, err
	}
	d.DestinationSpread = spread(d.Tourists)

	return d, nil
}

func destinationTotals(ctx context.Context, db *sql.DB, tail string) ([]models.DestinationTotal, error) {
	out := []models.DestinationTotal{}
	err := queryEach(ctx, db, destinationTotalsQuery+"\n\t"+tail, func(rows *sql.Rows) error {
		var dt models.DestinationTotal
		if err := rows.Scan(&dt.Name, &dt.City, &dt.Country, &dt.VisitCount, &dt.TotalRevenue); err != nil {
			return err
		}
		out = append(out, dt)
		return nil
	})
	return out, err
}

// queryEach runs query and hands every row to scan.
func queryEach(ctx context.Context, db *sql.DB, query string, scan func(*sql.Rows) error, args ...any) error {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.InternalError{Op: "dashboard", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return domain.InternalError{Op: "dashboard", Err: err}
		}
	}
	if err := rows.Err(); err != nil {
		return domain.InternalError{Op: "dashboard", Err: err}
	}
	return nil
}

// spread only counts tourists who visited somewhere.
func spread(tourists []models.TouristActivity) models.DestinationSpread {
	var s models.DestinationSpread
	for _, t := range tourists {
		switch {
		case t.DestinationsVisited == 1:
			s.SingleDestination++
		case t.DestinationsVisited > 1:
			s.MultipleDestinations++
		}
		if t.VisitCount > 0 {
			s.TotalTourists++
		}
	}
	s.Percentage = returnRate(s.MultipleDestinations, s.TotalTourists)
	return s
}

func monthName(m int64) string {
	if m < 1 || m > 12 {
		return fmt.Sprintf("Month %d", m)
	}
	return time.Month(m).String()
}
