package analysis

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrMalformedRoute   = errors.New("malformed route")
	ErrInsufficientData = errors.New("insufficient data")
)

// NotFoundError is returned when a stop, line or route is absent from the dataset
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MalformedRouteError is returned when the successor chain of a route cannot be followed
// from its first stop to its last stop
type MalformedRouteError struct {
	Route  string
	Stop   string
	Reason string
}

func (e *MalformedRouteError) Error() string {
	if e.Stop == "" {
		return fmt.Sprintf("malformed route %q: %s", e.Route, e.Reason)
	}
	return fmt.Sprintf("malformed route %q at stop %q: %s", e.Route, e.Stop, e.Reason)
}

func (e *MalformedRouteError) Is(target error) bool {
	return target == ErrMalformedRoute
}

func insufficientData(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInsufficientData, fmt.Sprintf(format, args...))
}
