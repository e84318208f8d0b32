// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file classifies raw store errors into the small set of
// classes the service layer cares about, so that driver-specific error codes
// are interpreted in exactly one place.
//
// Classes:
//   - not found:              gorm.ErrRecordNotFound
//   - foreign-key violation:  Postgres SQLSTATE 23503, or the SQLite
//     "FOREIGN KEY constraint failed" constraint error
//   - unique violation:       Postgres SQLSTATE 23505, or the SQLite
//     "UNIQUE constraint failed" constraint error
//   - invalid text:           Postgres SQLSTATE 22P02 (invalid input syntax
//     for a typed column, e.g. a non-numeric id reaching the store)
//
// Everything else is left unclassified and surfaces to the boundary as an
// internal error. The classifier is pure and unit-testable with canned errors.
package repo

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes this layer recognizes.
const (
	pgInvalidTextRepresentation = "22P02"
	pgForeignKeyViolation       = "23503"
	pgUniqueViolation           = "23505"
)

// IsNotFound reports whether err means "no matching row".
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsForeignKeyViolation reports whether err is a referential-integrity
// rejection, i.e. an insert or update referencing a row that does not exist.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	// glebarez/sqlite surfaces constraint failures as plain error strings.
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// IsUniqueViolation reports whether err is a duplicate-key rejection.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsInvalidText reports whether err is the store rejecting a value whose
// textual shape does not fit the column type (e.g. "banana" for an integer).
func IsInvalidText(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgInvalidTextRepresentation
	}
	return false
}
