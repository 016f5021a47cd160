package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/jsnum"
	"tourism/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

func TestTouristCreateNormalizesFields(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("INSERT INTO tourists").
		WithArgs("Ana Souza", "Brazil", int64(29)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	svc := TouristService{Repo: repositories.TouristRepository{DB: db}}
	got, err := svc.Create(context.Background(), models.TouristPayload{
		Name: "  Ana   Souza ", Nationality: "Brazil", Age: jsnum.Of(29),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Ana Souza" || got.ID != 1 {
		t.Fatalf("unexpected tourist %+v", got)
	}
}

func TestTouristCreateValidation(t *testing.T) {
	svc := TouristService{}
	cases := []models.TouristPayload{
		{Name: " ", Nationality: "Brazil", Age: jsnum.Of(1)},
		{Name: "Ana", Nationality: "", Age: jsnum.Of(1)},
		{Name: "Ana", Nationality: "Brazil", Age: jsnum.Of(-2)},
	}
	for _, p := range cases {
		if _, err := svc.Create(context.Background(), p); !domain.IsValidation(err) {
			t.Fatalf("payload %+v: expected validation error, got %v", p, err)
		}
	}
}

func TestTouristCreateNaNAgeStoredAsNull(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("INSERT INTO tourists").
		WithArgs("Ken", "Japan", nil).
		WillReturnResult(sqlmock.NewResult(2, 1))

	svc := TouristService{Repo: repositories.TouristRepository{DB: db}}
	if _, err := svc.Create(context.Background(), models.TouristPayload{Name: "Ken", Nationality: "Japan", Age: jsnum.NaN()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDestinationCreateCoercesPrice(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("INSERT INTO destinations").
		WithArgs("Beach", "Goa", "India", 100.0).
		WillReturnResult(sqlmock.NewResult(3, 1))

	svc := DestinationService{Repo: repositories.DestinationRepository{DB: db}}
	got, err := svc.Create(context.Background(), models.DestinationPayload{
		Name: "Beach", City: "Goa", Country: "India", Price: "100",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Price != "100" {
		t.Fatalf("unexpected price %q", got.Price)
	}
}

func TestDestinationCreateRejectsBadPrice(t *testing.T) {
	svc := DestinationService{}
	for _, price := range []models.Price{"", "cheap", "NaN", "-5"} {
		_, err := svc.Create(context.Background(), models.DestinationPayload{
			Name: "Beach", City: "Goa", Country: "India", Price: price,
		})
		if !domain.IsValidation(err) {
			t.Fatalf("price %q: expected validation error, got %v", price, err)
		}
	}
}

func TestVisitCreate(t *testing.T) {
	db, mock := newMock(t)
	when := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT 1 FROM tourists").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM destinations").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec("INSERT INTO visits").
		WithArgs(int64(1), int64(2), when, int64(4)).
		WillReturnResult(sqlmock.NewResult(9, 1))

	svc := VisitService{
		Visits:       repositories.VisitRepository{DB: db},
		Tourists:     repositories.TouristRepository{DB: db},
		Destinations: repositories.DestinationRepository{DB: db},
		Now:          func() time.Time { return when },
	}
	v, err := svc.Create(context.Background(), models.VisitPayload{
		TouristID: jsnum.Of(1), DestinationID: jsnum.Of(2), Rating: jsnum.Of(4),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ID != 9 || !v.VisitDate.Equal(when) {
		t.Fatalf("unexpected visit %+v", v)
	}
}

func TestVisitCreateRejectsNaNIds(t *testing.T) {
	svc := VisitService{}
	_, err := svc.Create(context.Background(), models.VisitPayload{
		TouristID: jsnum.ParseInt("abc"), DestinationID: jsnum.Of(2), Rating: jsnum.Of(3),
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestVisitCreateRejectsRatingOutOfRange(t *testing.T) {
	svc := VisitService{}
	_, err := svc.Create(context.Background(), models.VisitPayload{
		TouristID: jsnum.Of(1), DestinationID: jsnum.Of(2), Rating: jsnum.Of(9),
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestVisitCreateUnknownDestination(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("SELECT 1 FROM tourists").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM destinations").WithArgs(int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	svc := VisitService{
		Visits:       repositories.VisitRepository{DB: db},
		Tourists:     repositories.TouristRepository{DB: db},
		Destinations: repositories.DestinationRepository{DB: db},
	}
	_, err := svc.Create(context.Background(), models.VisitPayload{
		TouristID: jsnum.Of(1), DestinationID: jsnum.Of(77), Rating: jsnum.NaN(),
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
