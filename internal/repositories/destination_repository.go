package repositories

import (
	"context"
	"database/sql"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

type DestinationRepository struct {
	DB *sql.DB
}

func (r DestinationRepository) List(ctx context.Context) ([]models.Destination, error) {
	db, err := pick(r.DB)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id, name, city, country, price FROM destinations ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Op: "list destinations", Err: err}
	}
	defer rows.Close()

	list := []models.Destination{}
	for rows.Next() {
		var d models.Destination
		var price float64
		if err := rows.Scan(&d.ID, &d.Name, &d.City, &d.Country, &price); err != nil {
			return nil, domain.InternalError{Op: "scan destination", Err: err}
		}
		d.Price = models.PriceOf(price)
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Op: "list destinations", Err: err}
	}
	return list, nil
}

func (r DestinationRepository) Create(ctx context.Context, name, city, country string, price float64) (models.Destination, error) {
	db, err := pick(r.DB)
	if err != nil {
		return models.Destination{}, err
	}

	res, err := db.ExecContext(ctx,
		`INSERT INTO destinations (name, city, country, price) VALUES (?, ?, ?, ?)`,
		name, city, country, price)
	if err != nil {
		return models.Destination{}, mapWriteError("destination", "create destination", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Destination{}, domain.InternalError{Op: "create destination", Err: err}
	}
	return models.Destination{ID: id, Name: name, City: city, Country: country, Price: models.PriceOf(price)}, nil
}

func (r DestinationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	db, err := pick(r.DB)
	if err != nil {
		return false, err
	}
	var one int
	err = db.QueryRowContext(ctx, `SELECT 1 FROM destinations WHERE id = ? LIMIT 1`, id).Scan(&one)
	switch {
	case err == sql.ErrNoRows:
		return false, nil
	case err != nil:
		return false, domain.InternalError{Op: "lookup destination", Err: err}
	}
	return true, nil
}
