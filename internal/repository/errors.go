package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Domain-level errors I prefer to bubble up from repository implementations.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflict")
	// ErrShotLogRewritten is returned when an update tries to drop entries from a game's shot log.
	ErrShotLogRewritten = errors.New("shot log is append-only")
)

// MapPgError translates common Postgres error codes to domain errors.
// Anything unexpected passes through untouched.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrAlreadyExists
		case pgerrcode.ForeignKeyViolation, pgerrcode.SerializationFailure:
			return ErrConflict
		}
	}
	return err
}

// CheckAppendOnly reports ErrShotLogRewritten when after lost shots that before had.
func CheckAppendOnly(before, after int) error {
	if after < before {
		return ErrShotLogRewritten
	}
	return nil
}
