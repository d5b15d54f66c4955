package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParameter signals that a filter variant lacks a required parameter.
	ErrMissingParameter = errors.New("missing parameter")
	// ErrInvalidVariant signals an unrecognized date or location filter variant.
	ErrInvalidVariant = errors.New("invalid variant")
	// ErrInvalidParameter signals a parameter that is present but out of range.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrUnexpectedStatus signals a non-success HTTP status from the search service.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// MissingParameterError wraps ErrMissingParameter with the name of the absent parameter.
type MissingParameterError struct {
	Filter    string
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s needs %s: %s", e.Filter, e.Parameter, ErrMissingParameter.Error())
}

func (e *MissingParameterError) Unwrap() error { return ErrMissingParameter }

// NewMissingParameter creates a missing parameter error for the given filter.
func NewMissingParameter(filter, parameter string) error {
	return &MissingParameterError{Filter: filter, Parameter: parameter}
}
