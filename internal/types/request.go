// Package types provides type definitions for structured data used throughout the cv-layout-engine system.
package types

import "github.com/go-playground/validator/v10"

// LayoutRequest represents a request to compute a layout for a content document.
// Constraints, when present, override the format-derived page geometry.
type LayoutRequest struct {
	Content         *CVContent       `json:"content" validate:"required"`
	TargetFormat    string           `json:"target_format,omitempty"`
	LayoutType      string           `json:"layout_type,omitempty"`
	ExperienceLevel string           `json:"experience_level,omitempty"`
	Industry        string           `json:"industry,omitempty"`
	Constraints     *PageConstraints `json:"constraints,omitempty"`
}

// Validate validates the LayoutRequest using the validator.
func (r *LayoutRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
