package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

// ErrNotFound is returned when a lookup matches no row. Callers translate it
// into their own domain or transport errors.
var ErrNotFound = errors.New("entity not found")

// ConflictError reports a unique-constraint violation on insert.
type ConflictError struct {
	Constraint string
	Err        error
}

func (e *ConflictError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("entity conflicts with existing row on %q", e.Constraint)
	}
	return "entity conflicts with existing row"
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

const (
	pgUniqueViolation   = "23505"
	mysqlDuplicateEntry = 1062
	sqliteUniqueMessage = "UNIQUE constraint failed"
)

// wrapDriverError maps driver-specific unique violations to ConflictError and
// leaves every other error untouched.
func wrapDriverError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
		return &ConflictError{Constraint: pqErr.Constraint, Err: err}
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return &ConflictError{Err: err}
	}

	// The sqlite shim driver surfaces constraint failures as plain strings.
	if strings.Contains(err.Error(), sqliteUniqueMessage) {
		return &ConflictError{Err: err}
	}

	return err
}
