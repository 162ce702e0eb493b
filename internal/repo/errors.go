package repo

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/apperr"
)

// sqliteMarkers maps fragments of SQLite error text to a stable code.
// glebarez/sqlite returns plain-text errors for constraint violations.
var sqliteMarkers = []struct{ text, code string }{
	{"not null constraint failed", "not_null"},
	{"unique constraint failed", "unique"},
	{"foreign key constraint failed", "foreign_key"},
	{"check constraint failed", "check"},
	{"datatype mismatch", "datatype_mismatch"},
}

// translate classifies an error returned by GORM at the point of failure:
//   - already tagged errors pass through
//   - gorm.ErrRecordNotFound becomes apperr.NotFound
//   - errors carrying a constraint/data-exception code become apperr.Store
//   - everything else is returned untouched (the HTTP layer treats it as unexpected)
func translate(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperr.As(err); ok {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound()
	}
	if code := StoreCode(err); code != "" {
		return apperr.Store(code, err)
	}
	return err
}

// StoreCode extracts a low-level store error code from err, or "" when err
// is not a constraint violation or data exception.
//
// PostgreSQL: SQLSTATE classes 22 (data exception) and 23 (integrity
// constraint violation). SQLite: constraint failure text. GORM translated
// sentinels are recognised as well.
func StoreCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if len(pgErr.Code) >= 2 {
			switch pgErr.Code[:2] {
			case "22", "23":
				return pgErr.Code
			}
		}
		return ""
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return "unique"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return "foreign_key"
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return "check"
	case errors.Is(err, gorm.ErrInvalidData):
		return "invalid_data"
	}

	low := strings.ToLower(err.Error())
	for _, m := range sqliteMarkers {
		if strings.Contains(low, m.text) {
			return m.code
		}
	}
	return ""
}
