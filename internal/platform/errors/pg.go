package errors

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// sqlState is how one SQLSTATE surfaces to report callers
type sqlState struct {
	code  ErrorCode
	retry bool
}

// SQLSTATE codes a read only events query can hit. Unlisted codes are DB.
var sqlStates = map[string]sqlState{
	"42703": {code: ErrorCodeInvalidArgument}, // undefined column
	"42883": {code: ErrorCodeInvalidArgument}, // undefined function
	"42P01": {code: ErrorCodeInvalidArgument}, // undefined table
	"22P02": {code: ErrorCodeInvalidArgument}, // invalid text representation
	"22012": {code: ErrorCodeInvalidArgument}, // division by zero

	"28P01": {code: ErrorCodeBadGateway}, // invalid password
	"28000": {code: ErrorCodeBadGateway}, // invalid authorization
	"42501": {code: ErrorCodeBadGateway}, // insufficient privilege

	"53300": {code: ErrorCodeTooManyRequests, retry: true},
	"40001": {code: ErrorCodeUnavailable, retry: true},
	"40P01": {code: ErrorCodeUnavailable, retry: true},
	"57P03": {code: ErrorCodeUnavailable, retry: true},
	"08006": {code: ErrorCodeUnavailable, retry: true},
	"57014": {code: ErrorCodeUnavailable}, // statement timeout, retrying hits it again
}

// dropped connections surface as driver text rather than a PgError
var connDropped = []string{
	"conn closed",
	"connection reset by peer",
	"broken pipe",
	"terminating connection due to administrator command",
}

// ExtractPgError returns the PgError at the root of err
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	ok := stderrs.As(Root(err), &pgErr)
	return pgErr, ok
}

// DBErrorCode maps a PgError to an ErrorCode; ok is false for other errors
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	if s, known := sqlStates[pgErr.Code]; known {
		return s.code, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with its mapped code; nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// IsRetryable reports a transient database failure. Caller cancellation
// and deadlines are never retryable.
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := ExtractPgError(err); ok {
		return sqlStates[pgErr.Code].retry
	}
	msg := strings.ToLower(Root(err).Error())
	for _, s := range connDropped {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
