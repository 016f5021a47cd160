package repositories

import (
	"database/sql"
	"errors"

	intconfig "tourism/internal/config"
	"tourism/internal/domain"

	"github.com/go-sql-driver/mysql"
)

const (
	mysqlDuplicateEntry = 1062
	mysqlMissingParent  = 1452
)

func pick(db *sql.DB) (*sql.DB, error) {
	if db != nil {
		return db, nil
	}
	if intconfig.DB != nil {
		return intconfig.DB, nil
	}
	return nil, domain.InternalError{Op: "database", Err: errors.New("database is not connected")}
}

// mapWriteError turns MySQL constraint failures into domain errors.
func mapWriteError(resource, op string, err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case mysqlDuplicateEntry:
			return domain.ConflictError{Resource: resource, Err: err}
		case mysqlMissingParent:
			return domain.ValidationError{Msg: "referenced record does not exist"}
		}
	}
	return domain.InternalError{Op: op, Err: err}
}

func nullableInt(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
