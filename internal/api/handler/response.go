// internal/api/handler/response.go
package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"farmvora/internal/api/types"
	"farmvora/internal/util" // For custom errors
)

// DefaultTimeout bounds every non-streaming request.
const DefaultTimeout = 30 * time.Second

// responder holds the JSON helpers shared by every handler.
type responder struct {
	logger *slog.Logger
}

// Helper function to send JSON responses.
func (h responder) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses.
func (h responder) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	var procErr *util.ProcedureError
	switch {
	case errors.As(err, &procErr):
		statusCode = http.StatusUnprocessableEntity
		message = procErr.Error()
	case util.IsError(err, util.ErrInvalidInput),
		util.IsError(err, util.ErrInvalidAmount),
		util.IsError(err, util.ErrReasonRequired),
		util.IsError(err, util.ErrReplyRequired),
		util.IsError(err, util.ErrConfirmation),
		util.IsError(err, util.ErrUnsupportedCurrency):
		statusCode = http.StatusBadRequest
		message = err.Error() // Use the error message directly for invalid input
	case util.IsError(err, util.ErrUnauthenticated):
		statusCode = http.StatusUnauthorized
		message = "Authentication required"
	case util.IsError(err, util.ErrAccountSuspended):
		statusCode = http.StatusForbidden
		message = "Account suspended"
	case util.IsError(err, util.ErrForbidden):
		statusCode = http.StatusForbidden
		message = "Not allowed"
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case util.IsError(err, util.ErrNotPending):
		statusCode = http.StatusConflict
		message = "You can only withdraw pending investments. Please contact admin for approved investments."
	case util.IsError(err, util.ErrAlreadyReviewed), util.IsError(err, util.ErrProjectClosed):
		statusCode = http.StatusConflict
		message = err.Error()
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, types.ErrorResponse{Error: message})
}

// decode reads a JSON body into dst. Malformed bodies map to ErrInvalidInput.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return util.ErrInvalidInput
	}
	return nil
}

// uuidParam parses a chi URL parameter as a UUID.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, util.ErrInvalidInput
	}
	return id, nil
}

// numberText accepts an amount sent either as a JSON number or a string.
func numberText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return ""
	}
	return strings.TrimSpace(strings.Trim(string(raw), `"`))
}
