// Package server provides the HTTP API for the layout engine.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/cv-layout-engine/internal/schemas"
	"github.com/jonathan/cv-layout-engine/internal/validation"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *validation.Error
		geometryErr   *validation.GeometryError
		schemaErr     *schemas.ValidationError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &geometryErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
