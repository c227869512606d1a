// Package validation provides pre-engine validation of layout requests and page geometry.
//
// The layout engine itself never fails: it produces a best-effort layout for
// any input it is handed. Malformed requests and degenerate geometry are
// therefore caught here, before the engine is invoked.
package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-layout-engine/internal/types"
)

// ValidateRequest checks a layout request: struct-level constraints plus
// page geometry when explicit constraints accompany the request.
func ValidateRequest(req *types.LayoutRequest) error {
	if req == nil {
		return &Error{Message: "request is nil"}
	}

	if err := req.Validate(); err != nil {
		return &Error{Message: "invalid layout request", Cause: err}
	}

	if req.Constraints != nil {
		return ValidateConstraints(*req.Constraints)
	}

	return nil
}

// ValidateConstraints checks that page constraints describe a usable page:
// positive dimensions, non-negative margins, and a positive content area.
func ValidateConstraints(constraints types.PageConstraints) error {
	validate := validator.New()
	if err := validate.Struct(constraints); err != nil {
		return &Error{Message: "invalid page constraints", Cause: err}
	}

	if cw := constraints.ContentWidth(); cw <= 0 {
		return &GeometryError{Field: "content_width", Value: cw}
	}
	if ch := constraints.ContentHeight(); ch <= 0 {
		return &GeometryError{Field: "content_height", Value: ch}
	}

	return nil
}
