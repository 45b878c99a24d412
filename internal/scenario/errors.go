package scenario

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PropForecast_Go/internal/domain"
)

// ParameterError reports a rejected scenario lever or preset. It matches
// domain.ErrInvalidInput so callers can map it without knowing the type.
type ParameterError struct {
	Parameter string
	Reason    string
	Cause     error
}

func (e *ParameterError) Error() string {
	msg := fmt.Sprintf("scenario %s rejected: %s", e.Parameter, e.Reason)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParameterError) Unwrap() []error {
	if e.Cause == nil {
		return []error{domain.ErrInvalidInput}
	}
	return []error{domain.ErrInvalidInput, e.Cause}
}

// Levers lists the individual fields that failed validation, falling back to
// the parameter name when the cause carries no field detail
func (e *ParameterError) Levers() []string {
	var verrs validator.ValidationErrors
	if !errors.As(e.Cause, &verrs) {
		return []string{e.Parameter}
	}
	levers := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		levers = append(levers, fe.Field())
	}
	return levers
}

// Reject builds a ParameterError for param
func Reject(param, reason string) *ParameterError {
	return &ParameterError{Parameter: param, Reason: reason}
}

// RejectWithCause builds a ParameterError that also wraps cause
func RejectWithCause(param, reason string, cause error) *ParameterError {
	return &ParameterError{Parameter: param, Reason: reason, Cause: cause}
}
