// Package pgerr translates driver errors into the errs taxonomy.
package pgerr

import (
	"errors"

	"ordering/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// UniqueViolation is the SQLSTATE of a unique constraint violation.
const UniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique violation from either supported driver.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == UniqueViolation
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == UniqueViolation
	}

	return false
}

// Classify wraps unique violations into errs.PersistenceFailureError and returns other
// errors unchanged.
func Classify(operation string, err error) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return errs.NewPersistenceFailureError(operation, err)
	}
	return err
}
