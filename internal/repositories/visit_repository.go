package repositories

import (
	"context"
	"database/sql"
	"time"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

type VisitRepository struct {
	DB *sql.DB
}

func (r VisitRepository) List(ctx context.Context) ([]models.Visit, error) {
	db, err := pick(r.DB)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, tourist_id, destination_id, visit_date, rating FROM visits ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Op: "list visits", Err: err}
	}
	defer rows.Close()

	list := []models.Visit{}
	for rows.Next() {
		var v models.Visit
		var rating sql.NullInt64
		if err := rows.Scan(&v.ID, &v.TouristID, &v.DestinationID, &v.VisitDate, &rating); err != nil {
			return nil, domain.InternalError{Op: "scan visit", Err: err}
		}
		v.Rating = intPtr(rating)
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Op: "list visits", Err: err}
	}
	return list, nil
}

func (r VisitRepository) Create(ctx context.Context, touristID, destinationID int64, visitDate time.Time, rating *int64) (models.Visit, error) {
	db, err := pick(r.DB)
	if err != nil {
		return models.Visit{}, err
	}

	res, err := db.ExecContext(ctx,
		`INSERT INTO visits (tourist_id, destination_id, visit_date, rating) VALUES (?, ?, ?, ?)`,
		touristID, destinationID, visitDate, nullableInt(rating))
	if err != nil {
		return models.Visit{}, mapWriteError("visit", "create visit", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Visit{}, domain.InternalError{Op: "create visit", Err: err}
	}

	out := models.Visit{ID: id, TouristID: touristID, DestinationID: destinationID, VisitDate: visitDate}
	if rating != nil {
		v := int(*rating)
		out.Rating = &v
	}
	return out, nil
}
