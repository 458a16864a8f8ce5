package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound          = errors.New("resource not found")
	ErrConditionNotFound = fmt.Errorf("%w: clinical condition", ErrNotFound)
	ErrResultNotFound    = fmt.Errorf("%w: blood gas result", ErrNotFound)

	// Physiological domain errors - invalid inputs to clinical formulas
	ErrDomain          = errors.New("physiologic domain error")
	ErrNonPositivePCO2 = fmt.Errorf("%w: pCO2 must be positive", ErrDomain)
	ErrNonPositiveHCO3 = fmt.Errorf("%w: HCO3 must be positive", ErrDomain)
	ErrNonPositiveFiO2 = fmt.Errorf("%w: FiO2 must be positive", ErrDomain)
	ErrInvalidSeverity = errors.New("invalid severity")
	ErrInvalidDisorder = errors.New("invalid disorder")
	ErrEmptyConditions = errors.New("condition list is empty")
	ErrModeAmbiguous   = errors.New("request specifies both disorder and conditions")
	ErrModeUnspecified = errors.New("request specifies neither disorder nor conditions")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewDomainError(quantity string, value float64) error {
	return fmt.Errorf("%w: %s = %g", ErrDomain, quantity, value)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDomainError(err error) bool {
	return errors.Is(err, ErrDomain)
}

func IsModeError(err error) bool {
	return errors.Is(err, ErrModeAmbiguous) || errors.Is(err, ErrModeUnspecified)
}
