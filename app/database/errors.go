package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned on unique-constraint collisions
	// (zone name, school code, subject name, admin username+role).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrZoneHasSchools blocks deletion of a zone that schools still
	// reference. The schools are never cascade-deleted.
	ErrZoneHasSchools = errors.New("zone has dependent schools")
)

const pqUniqueViolation = "23505"

// translateError maps driver-level errors onto the package sentinels so
// handlers can branch with errors.Is.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return ErrDuplicateKey
	}
	return err
}
