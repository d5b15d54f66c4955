package db

import "errors"

// Sentinel errors for database operations.
var (
	ErrDatabaseNotFound = errors.New("db: database file not found")
)

// Op constants name the statement or lifecycle step for error context.
const (
	OpOpen          = "OPEN"
	OpClose         = "CLOSE"
	OpPing          = "PING"
	OpSelectOceans  = "SELECT oceans"
	OpSelectSeas    = "SELECT seas"
	OpSelectSpecies = "SELECT species"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
