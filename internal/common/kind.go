package common

import "errors"

// Kind is the transport-neutral class of an error. Each transport maps a Kind
// to its own status representation exactly once.
type Kind string

const (
	KindValidation      Kind = "validation_error"
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindInternal        Kind = "internal_error"
)

var unauthenticated = []error{
	ErrInvalidCredentials,
	ErrInvalidToken,
	ErrTokenExpired,
	ErrNoCredential,
	ErrEmptyToken,
	ErrMalformedCredential,
	ErrUnknownSubject,
}

// KindOf classifies err. Unknown errors are internal.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	}
	for _, e := range unauthenticated {
		if errors.Is(err, e) {
			return KindUnauthenticated
		}
	}
	return KindInternal
}
