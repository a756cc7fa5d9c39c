package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/JoyasAPI_Go/internal/domain"
	"github.com/osse101/JoyasAPI_Go/internal/logger"
)

// StatusResponse is the body of every error response
type StatusResponse struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload.
// The payload is encoded before the header is written so an encoding failure
// still produces a 500.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a {status:false, message} body
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, StatusResponse{Status: false, Message: message})
}

// respondInvalidInput answers 400 for a binding or validation failure.
// Validator errors are reported per field; anything else uses its own text.
func respondInvalidInput(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Warn(LogMsgInvalidRequest, "error", err, "query", r.URL.RawQuery)

	if fields := FormatValidationError(err); fields != nil {
		respondJSON(w, http.StatusBadRequest, StatusResponse{
			Status:  false,
			Message: ErrMsgInvalidRequestError,
			Fields:  fields,
		})
		return
	}
	respondError(w, http.StatusBadRequest, err.Error())
}

// respondServiceError logs err and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf(LogMsgOperationFailed, opName), "error", err, "status", status)
	} else {
		log.Warn(fmt.Sprintf(LogMsgOperationFailed, opName), "error", err, "status", status)
	}

	respondError(w, status, message)
}

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// message safe to show the caller
func mapServiceErrorToUserMessage(err error) (int, string) {
	var queryErr *domain.QueryError

	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.As(err, &queryErr) && queryErr.Code != "":
		return http.StatusInternalServerError, fmt.Sprintf(ErrMsgStoreErrorWithCode, queryErr.Code)
	default:
		// ErrConnection, codeless query errors and anything unexpected
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
