package repository

import "github.com/jackc/pgx/v5"

// ErrNotFound is returned when a lookup, update or delete matches no row.
// It is pgx.ErrNoRows so callers can match either.
var ErrNotFound = pgx.ErrNoRows
