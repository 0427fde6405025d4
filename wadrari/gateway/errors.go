package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorKind classifies every failure crossing the gateway boundary. Callers
// branch on the kind, never on error strings.
type ErrorKind string

const (
	// KindAuth is an invalid-credential failure. Shown to the user, never
	// retried.
	KindAuth ErrorKind = "auth"

	// KindTransient covers timeouts and network failures. Retried up to the
	// attempt bound before being surfaced.
	KindTransient ErrorKind = "transient"

	// KindValidation is rejected input. Detected before any remote call
	// where possible.
	KindValidation ErrorKind = "validation"

	// KindConflict is a constraint collision or an already-done operation.
	// Often treated as success-with-skip by callers.
	KindConflict ErrorKind = "conflict"

	// KindNotFound is a missing row on a direct lookup.
	KindNotFound ErrorKind = "not_found"

	// KindPermission is a row-level-security or privilege rejection.
	KindPermission ErrorKind = "permission"

	// Upload sub-kinds, used for clearer messaging; all collapse to the
	// same ok:false contract.
	KindUploadNetwork       ErrorKind = "upload_network"
	KindUploadPermission    ErrorKind = "upload_permission"
	KindUploadDuplicate     ErrorKind = "upload_duplicate"
	KindUploadMissingBucket ErrorKind = "upload_missing_bucket"

	// KindInternal is everything unclassified.
	KindInternal ErrorKind = "internal"
)

type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Retryable reports whether the retry policy may re-attempt the call.
func (e *Error) Retryable() bool {
	return e.Kind == KindTransient || e.Kind == KindUploadNetwork
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func WrapError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Classify maps a raw driver/network error onto the gateway taxonomy.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return WrapError(KindTransient, "request timeout", err)
	}
	if errors.Is(err, context.Canceled) {
		return WrapError(KindTransient, "request canceled", err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return WrapError(KindNotFound, "row not found", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return WrapError(KindTransient, "network failure", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return WrapError(KindConflict, "duplicate row", err)
		case "23503", "23502", "23514", "22P02": // integrity and bad-input classes
			return WrapError(KindValidation, "rejected by constraint", err)
		case "42501": // insufficient_privilege (row-level security)
			return WrapError(KindPermission, "permission denied", err)
		case "28000", "28P01": // invalid authorization
			return WrapError(KindAuth, "authorization failed", err)
		case "57014", "53300", "08000", "08003", "08006": // timeouts, connection loss
			return WrapError(KindTransient, "backend unavailable", err)
		}
	}

	if pgconn.Timeout(err) {
		return WrapError(KindTransient, "backend timeout", err)
	}

	return WrapError(KindInternal, "unexpected failure", err)
}
