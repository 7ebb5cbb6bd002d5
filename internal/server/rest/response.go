package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/logging"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError maps err to its HTTP status and a body that exposes the cause
// only for validation failures.
func writeError(w http.ResponseWriter, r *http.Request, log logging.Logger, err error) {
	kind := common.KindOf(err)

	var status int
	var message string
	switch kind {
	case common.KindValidation:
		status, message = http.StatusBadRequest, err.Error()
	case common.KindUnauthenticated:
		status, message = http.StatusUnauthorized, "unauthenticated"
	case common.KindForbidden:
		status, message = http.StatusForbidden, "forbidden"
	case common.KindNotFound:
		status, message = http.StatusNotFound, "not found"
	case common.KindConflict:
		status, message = http.StatusConflict, "already exists"
	default:
		status, message = http.StatusInternalServerError, "internal error"
	}

	switch kind {
	case common.KindInternal:
		log.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	case common.KindUnauthenticated:
		log.Warn(r.Context(), "request rejected", "path", r.URL.Path, "reason", err.Error())
	}

	writeJSON(w, status, errorResponse{Error: string(kind), Message: message})
}

// decodeJSON reads a JSON body into dst. Malformed input is a validation error.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", common.ErrValidation)
		}
		return fmt.Errorf("%w: malformed body: %v", common.ErrValidation, err)
	}
	return nil
}
