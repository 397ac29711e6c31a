package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Parameter errors: rejected before any draw or computation happens.
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrProbabilityRange = fmt.Errorf("%w: probability outside [0,1]", ErrInvalidParameter)
	ErrNegativeCount    = fmt.Errorf("%w: count must be non-negative", ErrInvalidParameter)
	ErrInvertedBounds   = fmt.Errorf("%w: lower bound exceeds upper bound", ErrInvalidParameter)
	ErrQuantileRange    = fmt.Errorf("%w: quantile probability outside (0,1)", ErrInvalidParameter)

	// State errors: the request itself is malformed, not the parameters.
	ErrInvalidState = errors.New("invalid state")
	ErrEmptyResults = fmt.Errorf("%w: aggregation over empty result set", ErrInvalidState)
	ErrEmptyRoster  = fmt.Errorf("%w: election roster has no entities", ErrInvalidState)
)

// Error constructors with context

func NewProbabilityError(name string, value float64) error {
	return fmt.Errorf("%w: %s=%v", ErrProbabilityRange, name, value)
}

func NewCountError(name string, value int) error {
	return fmt.Errorf("%w: %s=%d", ErrNegativeCount, name, value)
}

func NewBoundsError(low, high int) error {
	return fmt.Errorf("%w: low=%d high=%d", ErrInvertedBounds, low, high)
}

func NewQuantileError(p float64) error {
	return fmt.Errorf("%w: p=%v", ErrQuantileRange, p)
}

// Error checking helpers

func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}
