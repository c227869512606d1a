// Package validation provides pre-engine validation of layout requests and page geometry.
package validation

import "fmt"

// Error represents a general validation error
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// GeometryError represents degenerate page geometry: a page whose margins
// leave no positive content area.
type GeometryError struct {
	Field string
	Value float64
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("degenerate page geometry: %s = %.2fmm, must be positive", e.Field, e.Value)
}
