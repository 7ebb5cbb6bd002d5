package client

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sentinels shared by every Client implementation. Match with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrInternal     = errors.New("internal error")
	ErrUnavailable  = errors.New("server unavailable")
)

// ServerError carries the message the server sent along with the sentinel
// it maps to.
type ServerError struct {
	Err     error
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *ServerError) Unwrap() error { return e.Err }

func mapHTTPStatus(code int, message string) error {
	var sentinel error
	switch code {
	case http.StatusBadRequest:
		sentinel = ErrValidation
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		sentinel = ErrUnavailable
	default:
		sentinel = ErrInternal
	}
	return &ServerError{Err: sentinel, Message: message}
}

func mapGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return &ServerError{Err: ErrInternal, Message: err.Error()}
	}

	var sentinel error
	switch st.Code() {
	case codes.InvalidArgument:
		sentinel = ErrValidation
	case codes.Unauthenticated:
		sentinel = ErrUnauthorized
	case codes.PermissionDenied:
		sentinel = ErrForbidden
	case codes.NotFound:
		sentinel = ErrNotFound
	case codes.AlreadyExists:
		sentinel = ErrConflict
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		sentinel = ErrUnavailable
	default:
		sentinel = ErrInternal
	}
	return &ServerError{Err: sentinel, Message: st.Message()}
}
