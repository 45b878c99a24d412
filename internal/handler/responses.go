package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/logger"
	"github.com/osse101/PropForecast_Go/internal/scenario"
)

// Envelope wraps every API response
type Envelope struct {
	Data    any       `json:"data"`
	Success bool      `json:"success"`
	Error   *APIError `json:"error,omitempty"`
	Meta    *Meta     `json:"meta,omitempty"`
}

// APIError is the machine-readable failure carried in the envelope
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Meta carries request-scoped details
type Meta struct {
	RequestID string `json:"request_id,omitempty"`
	Count     *int   `json:"count,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	// Encode to a pooled buffer first so an encoding failure can still become a 500
	buf := responseBuffers.get()
	defer responseBuffers.put(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

func metaFor(r *http.Request) *Meta {
	id, ok := logger.RequestIDFromContext(r.Context())
	if !ok {
		return nil
	}
	return &Meta{RequestID: id}
}

// respondData sends a successful envelope
func respondData(w http.ResponseWriter, r *http.Request, status int, data any) {
	respondJSON(w, status, Envelope{Data: data, Success: true, Meta: metaFor(r)})
}

// respondList sends a successful envelope with the item count in meta
func respondList[T any](w http.ResponseWriter, r *http.Request, items []T) {
	if items == nil {
		items = []T{}
	}
	meta := metaFor(r)
	if meta == nil {
		meta = &Meta{}
	}
	n := len(items)
	meta.Count = &n
	respondJSON(w, http.StatusOK, Envelope{Data: items, Success: true, Meta: meta})
}

// respondError sends a failed envelope
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	respondJSON(w, status, Envelope{
		Success: false,
		Error:   &APIError{Code: code, Message: message},
		Meta:    metaFor(r),
	})
}

// respondServiceError logs err and maps it onto a status code and result code
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, code, message := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err)
	} else {
		log.Warn(op+" rejected", "error", err, "code", code)
	}
	respondJSON(w, status, Envelope{
		Success: false,
		Error:   &APIError{Code: code, Message: message, Fields: leverFields(err)},
		Meta:    metaFor(r),
	})
}

// leverFields names the scenario levers behind a rejected simulation
func leverFields(err error) map[string]string {
	var perr *scenario.ParameterError
	if !errors.As(err, &perr) {
		return nil
	}
	fields := make(map[string]string)
	for _, lever := range perr.Levers() {
		fields[lever] = perr.Reason
	}
	return fields
}

// mapServiceError converts domain errors into HTTP status, result code and client message.
// Client errors echo the wrapped message; server errors never do.
func mapServiceError(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrPropositionNotFound):
		return http.StatusNotFound, CodeNotFound, ErrMsgPropositionNotFound
	case errors.Is(err, domain.ErrDistrictNotFound):
		return http.StatusNotFound, CodeNotFound, ErrMsgDistrictNotFound
	case errors.Is(err, domain.ErrPresetNotFound):
		return http.StatusNotFound, CodeNotFound, ErrMsgPresetNotFound
	case errors.Is(err, domain.ErrNoData):
		return http.StatusNotFound, CodeNotFound, ErrMsgNoData
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, CodeInvalidID, ErrMsgInvalidPropositionID
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, CodeInvalidInput, err.Error()
	}
	return http.StatusInternalServerError, CodeInternalError, ErrMsgGenericServerError
}
