package errs

import (
	"context"
	"errors"
)

// Kind is the coarse category of an error, used by adapters to choose a response.
type Kind string

const (
	KindNone     Kind = ""
	KindNotFound Kind = "not_found"
	KindInvalid  Kind = "invalid"
	KindConflict Kind = "conflict"
	KindTimeout  Kind = "timeout"
	KindCanceled Kind = "canceled"
	KindInternal Kind = "internal"
)

// KindOf classifies err by the sentinels it wraps. Errors of no known category are internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindInvalid
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindCanceled
	default:
		return KindInternal
	}
}
