// Package measure estimates rendered content heights for layout calculations.
//
// The measurements are an approximate metric model, not a text-shaping
// engine: heights come from an empirically calibrated table of average
// character widths per font size. The Measurer interface is the seam for
// substituting a real font-metrics implementation without touching the
// packing algorithm.
package measure

import (
	"math"
	"unicode/utf8"

	"github.com/jonathan/cv-layout-engine/internal/types"
)

// PtToMM converts a point-based font size to an approximate millimeter height.
const PtToMM = 0.35

const (
	// defaultCharWidth is used for font sizes not present in the table.
	defaultCharWidth = 2.2
	// itemGap is the vertical gap between list items in mm.
	itemGap = 2.0
	// headerPadding is the framing allowance around the header block in mm.
	headerPadding = 20.0
)

// Measurer estimates the rendered height of a text block.
type Measurer interface {
	// MeasureHeight returns the estimated height in mm of text rendered at
	// fontSize (pt) within maxWidth (mm) using the given line-height multiplier.
	MeasureHeight(text string, fontSize int, maxWidth, lineHeight float64) float64
}

// HeuristicMeasurer estimates heights from average character widths
// calibrated per font-size bucket.
type HeuristicMeasurer struct {
	charWidths map[int]float64
}

// NewHeuristicMeasurer returns a measurer with the standard calibration table.
func NewHeuristicMeasurer() *HeuristicMeasurer {
	return &HeuristicMeasurer{
		charWidths: map[int]float64{
			24: 4.8, // Header name
			16: 3.2, // Header title
			14: 2.8, // Section titles
			11: 2.2, // Body text
			9:  1.8, // Small text
		},
	}
}

// MeasureHeight estimates the height needed for a text block.
// Empty text measures zero; if the width admits no characters at all,
// a single line's height is returned as a fallback.
func (m *HeuristicMeasurer) MeasureHeight(text string, fontSize int, maxWidth, lineHeight float64) float64 {
	if text == "" {
		return 0
	}

	charWidth, ok := m.charWidths[fontSize]
	if !ok {
		charWidth = defaultCharWidth
	}
	charsPerLine := int(maxWidth / charWidth)

	if charsPerLine <= 0 {
		return float64(fontSize) * PtToMM // Fallback: 1 line
	}

	lines := math.Ceil(float64(utf8.RuneCountInString(text)) / float64(charsPerLine))
	lineHeightMM := float64(fontSize) * PtToMM * lineHeight

	return lines * lineHeightMM
}

// ListHeight estimates the height of a list of items, each followed by a
// fixed 2mm gap.
func ListHeight(m Measurer, items []string, fontSize int, maxWidth, lineHeight float64) float64 {
	total := 0.0
	for _, item := range items {
		total += m.MeasureHeight(item, fontSize, maxWidth, lineHeight) + itemGap
	}
	return total
}

// HeaderHeight estimates the personal-details header block: name, desired
// position and a contact line (contact fields grouped two per line), each
// followed by fixed spacing, plus a padding allowance for visual framing.
func HeaderHeight(m Measurer, details *types.PersonalDetails, maxWidth float64) float64 {
	if details == nil {
		return 0
	}

	height := 0.0

	if details.FullName != "" {
		height += m.MeasureHeight(details.FullName, 24, maxWidth, 1.3) + 5
	}

	if details.DesiredPosition != "" {
		height += m.MeasureHeight(details.DesiredPosition, 16, maxWidth, 1.3) + 3
	}

	if contacts := details.ContactFields(); len(contacts) > 0 {
		contactLines := math.Ceil(float64(len(contacts)) / 2)
		height += contactLines*(11*PtToMM*1.4) + 5
	}

	return height + headerPadding
}
