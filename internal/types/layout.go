// Package types provides type definitions for structured data used throughout the cv-layout-engine system.
package types

import "strings"

// LayoutType identifies the visual strategy used to arrange sections.
type LayoutType string

// Supported layout types. Unrecognized values fall back to LayoutSingleColumn.
const (
	LayoutSingleColumn  LayoutType = "single_column"
	LayoutTwoColumn     LayoutType = "two_column"
	LayoutModernSidebar LayoutType = "modern_sidebar"
	LayoutExecutive     LayoutType = "executive"
	LayoutAcademic      LayoutType = "academic"
	LayoutCreative      LayoutType = "creative"
)

// ParseLayoutType maps a free-form string to a LayoutType.
// Unknown values resolve to LayoutSingleColumn, never an error.
func ParseLayoutType(s string) LayoutType {
	switch LayoutType(strings.ToLower(strings.TrimSpace(s))) {
	case LayoutTwoColumn:
		return LayoutTwoColumn
	case LayoutModernSidebar:
		return LayoutModernSidebar
	case LayoutExecutive:
		return LayoutExecutive
	case LayoutAcademic:
		return LayoutAcademic
	case LayoutCreative:
		return LayoutCreative
	default:
		return LayoutSingleColumn
	}
}

// IsTwoColumnFamily reports whether the layout uses a main column plus sidebar.
func (t LayoutType) IsTwoColumnFamily() bool {
	return t == LayoutTwoColumn || t == LayoutModernSidebar
}

// SectionPriority orders sections by how strongly they belong on the first page.
type SectionPriority int

// Priority levels. Lower value means more important.
const (
	PriorityCritical SectionPriority = 1 // Must fit on first page
	PriorityHigh     SectionPriority = 2 // Should fit on first page
	PriorityMedium   SectionPriority = 3 // Can overflow to second page
	PriorityLow      SectionPriority = 4 // Can be minimized or moved
)

// String returns the priority name for diagnostics.
func (p SectionPriority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// PageConstraints describes the physical page bounding placement.
// All values are millimeters.
type PageConstraints struct {
	Width        float64 `json:"width_mm" validate:"gt=0"`
	Height       float64 `json:"height_mm" validate:"gt=0"`
	MarginTop    float64 `json:"margin_top_mm" validate:"gte=0"`
	MarginBottom float64 `json:"margin_bottom_mm" validate:"gte=0"`
	MarginLeft   float64 `json:"margin_left_mm" validate:"gte=0"`
	MarginRight  float64 `json:"margin_right_mm" validate:"gte=0"`
}

// ContentWidth returns the horizontal space available for content.
func (c PageConstraints) ContentWidth() float64 {
	return c.Width - c.MarginLeft - c.MarginRight
}

// ContentHeight returns the vertical space available for content.
func (c PageConstraints) ContentHeight() float64 {
	return c.Height - c.MarginTop - c.MarginBottom
}

// DefaultConstraints returns standard A4 constraints with 20mm margins.
func DefaultConstraints() PageConstraints {
	return PageConstraints{
		Width:        210,
		Height:       297,
		MarginTop:    20,
		MarginBottom: 20,
		MarginLeft:   20,
		MarginRight:  20,
	}
}

// SectionDimensions describes the space requirements of one CV section.
// Created fresh per layout request and never mutated after creation.
type SectionDimensions struct {
	SectionID       string          `json:"section_id"`
	SectionKind     string          `json:"section_kind"`
	Priority        SectionPriority `json:"priority"`
	MinHeight       float64         `json:"min_height_mm"`
	PreferredHeight float64         `json:"preferred_height_mm"`
	MaxHeight       float64         `json:"max_height_mm"`
	CanSplit        bool            `json:"can_split"`
	ItemCount       int             `json:"item_count,omitempty"`
}

// Section kinds emitted by the analyzer.
const (
	KindHeader     = "header"
	KindSummary    = "summary"
	KindExperience = "experience"
	KindSkills     = "skills"
	KindEducation  = "education"
	KindProjects   = "projects"
)

// LayoutElement is one placed block, positioned relative to the page
// origin (top-left). Produced by the optimizer and immutable once emitted.
type LayoutElement struct {
	ElementID   string  `json:"element_id"`
	ElementKind string  `json:"element_kind"` // section, panel
	X           float64 `json:"x_mm"`
	Y           float64 `json:"y_mm"`
	Width       float64 `json:"width_mm"`
	Height      float64 `json:"height_mm"`
	PageNumber  int     `json:"page_number"` // 1-based
	ZIndex      int     `json:"z_index"`
}

// Element kinds.
const (
	ElementSection = "section"
	ElementPanel   = "panel"
)

// LayoutResult is the sole artifact handed to an external renderer.
// Pages is 0-based; pages[i] holds elements with PageNumber == i+1.
type LayoutResult struct {
	Pages            [][]LayoutElement `json:"pages"`
	TotalPages       int               `json:"total_pages"`
	OverflowSections []string          `json:"overflow_sections"`
	LayoutScore      int               `json:"layout_score"`
	Recommendations  []string          `json:"recommendations"`
}
