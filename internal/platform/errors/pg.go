package errors

// Postgres helpers mapping pgx errors onto ErrorCode

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes the archive cares about
const (
	pgErrNotNullViolation  = "23502"
	pgErrCheckViolation    = "23514"
	pgErrStringTruncation  = "22001"
	pgErrInvalidText       = "22P02"
	pgErrReadOnlyTx        = "25006"
	pgErrCannotConnectNow  = "57P03"
	pgErrTooManyConnection = "53300"
)

// DBErrorCode maps a Postgres error to an ErrorCode.
// !ok means err carries no *pgconn.PgError
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case pgErrNotNullViolation, pgErrCheckViolation, pgErrStringTruncation, pgErrInvalidText:
		// a record the table constraints refuse
		return ErrorCodeValidation, true
	case pgErrReadOnlyTx, pgErrCannotConnectNow, pgErrTooManyConnection:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with its mapped code and msg, nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}
