// internal/domain/common/errors.go
package common

import (
	"errors"
	"fmt"
)

// Kind classifies failures that cross layer boundaries.
// Handlers map kinds to HTTP status codes; usecases attach them at the call site
// instead of catch-and-log.
type Kind int

const (
	KindUnknown Kind = iota

	// KindTransientIO: the hosted datastore / network was unavailable.
	// Callers may retry; the cart sync path treats this as best-effort.
	KindTransientIO

	// KindUnauthorized: missing/invalid credentials, or the caller is not
	// allowed to perform the operation (e.g. review without a delivered order).
	KindUnauthorized

	// KindValidation: malformed input rejected before any write.
	KindValidation

	// KindNotFound: the referenced record does not exist.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindTransientIO:
		return "transient_io"
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error carries a Kind plus the wrapped cause.
type Error struct {
	Kind Kind
	Op   string // e.g. "cart_usecase.Sync"
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a kinded error.
func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Ef builds a kinded error from a format string.
func Ef(kind Kind, op string, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the Kind of err, or KindUnknown if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
