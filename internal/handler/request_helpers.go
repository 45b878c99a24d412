package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/logger"
	"github.com/osse101/PropForecast_Go/internal/repository"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req scenario.Request
//	if err := DecodeAndValidateRequest(r, w, &req, OpSimulateScenario); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, r, http.StatusBadRequest, CodeInvalidInput, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, Envelope{
			Success: false,
			Error: &APIError{
				Code:    CodeInvalidInput,
				Message: ErrMsgInvalidRequestSummary,
				Fields:  FormatValidationError(err),
			},
			Meta: metaFor(r),
		})
		return err
	}

	return nil
}

// propositionIDParam reads and checks the {id} URL parameter.
// If ok is false, the response has already been written.
func propositionIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, _, err := domain.ParsePropositionID(id); err != nil {
		logger.FromContext(r.Context()).Warn("Rejected proposition ID", "id", id)
		respondError(w, r, http.StatusBadRequest, CodeInvalidID, ErrMsgInvalidPropositionID)
		return "", false
	}
	return id, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// queryInt parses an optional integer query parameter
func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidInput, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return 0, false
	}
	return v, true
}

// queryFloat parses an optional float query parameter
func queryFloat(w http.ResponseWriter, r *http.Request, name string, def float64) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidInput, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return 0, false
	}
	return v, true
}

// queryBool parses an optional boolean query parameter
func queryBool(w http.ResponseWriter, r *http.Request, name string, def bool) (bool, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidInput, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return false, false
	}
	return v, true
}

// districtFilterParam builds a filter from the optional district_type query parameter
func districtFilterParam(w http.ResponseWriter, r *http.Request) (repository.DistrictFilter, bool) {
	raw := GetOptionalQueryParam(r, "district_type", "")
	if raw == "" {
		return repository.DistrictFilter{}, true
	}
	if err := GetValidator().ValidateVar(raw, "districttype"); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidInput, fmt.Sprintf(ErrMsgInvalidQueryParam, "district_type"))
		return repository.DistrictFilter{}, false
	}
	t := domain.DistrictType(raw)
	return repository.DistrictFilter{Type: &t}, true
}

// LogRequestFields logs common request fields in a structured way
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn("LogRequestFields called with odd number of arguments")
		return
	}
	log.Debug("Request details", keyvals...)
}
