// Package repository provides data access layer implementations for the application.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the postgres error code for a unique constraint breach.
const pgUniqueViolation = "23505"

// isDuplicate reports whether err was caused by a unique index violation.
// GORM translates most driver errors to ErrDuplicatedKey; the pgconn check
// covers paths the translator misses (raw SQL, batch inserts).
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
