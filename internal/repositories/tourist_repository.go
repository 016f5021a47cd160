package repositories

import (
	"context"
	"database/sql"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

type TouristRepository struct {
	DB *sql.DB
}

// List returns every tourist in insertion order.
func (r TouristRepository) List(ctx context.Context) ([]models.Tourist, error) {
	db, err := pick(r.DB)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id, name, nationality, age FROM tourists ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Op: "list tourists", Err: err}
	}
	defer rows.Close()

	list := []models.Tourist{}
	for rows.Next() {
		var t models.Tourist
		var age sql.NullInt64
		if err := rows.Scan(&t.ID, &t.Name, &t.Nationality, &age); err != nil {
			return nil, domain.InternalError{Op: "scan tourist", Err: err}
		}
		t.Age = intPtr(age)
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Op: "list tourists", Err: err}
	}
	return list, nil
}

func (r TouristRepository) Create(ctx context.Context, name, nationality string, age *int64) (models.Tourist, error) {
	db, err := pick(r.DB)
	if err != nil {
		return models.Tourist{}, err
	}

	res, err := db.ExecContext(ctx,
		`INSERT INTO tourists (name, nationality, age) VALUES (?, ?, ?)`,
		name, nationality, nullableInt(age))
	if err != nil {
		return models.Tourist{}, mapWriteError("tourist", "create tourist", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Tourist{}, domain.InternalError{Op: "create tourist", Err: err}
	}

	out := models.Tourist{ID: id, Name: name, Nationality: nationality}
	if age != nil {
		v := int(*age)
		out.Age = &v
	}
	return out, nil
}

func (r TouristRepository) Exists(ctx context.Context, id int64) (bool, error) {
	db, err := pick(r.DB)
	if err != nil {
		return false, err
	}
	var one int
	err = db.QueryRowContext(ctx, `SELECT 1 FROM tourists WHERE id = ? LIMIT 1`, id).Scan(&one)
	switch {
	case err == sql.ErrNoRows:
		return false, nil
	case err != nil:
		return false, domain.InternalError{Op: "lookup tourist", Err: err}
	}
	return true, nil
}
