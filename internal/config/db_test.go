package config

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestEnsureSchemaCreatesTablesInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS tourists").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS destinations(?s:.*)UNIQUE KEY uq_destinations_place \(name, city, country\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS visits").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEnsureSchemaStopsOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	boom := errors.New("access denied")
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS tourists").WillReturnError(boom)

	err = EnsureSchema(context.Background(), db)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped %v, got %v", boom, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConnectDBRejectsBadDSN(t *testing.T) {
	if _, err := ConnectDB("not a dsn"); err == nil {
		t.Fatalf("expected DSN parse error")
	}
}
