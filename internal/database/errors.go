package database

import "errors"

// Adapters translate driver errors into these so repositories do not import
// the driver.
var (
	ErrNoRows   = errors.New("no rows in result set")
	ErrConflict = errors.New("unique constraint violation")
)
