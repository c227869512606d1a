// Package layout places analyzed CV sections onto pages.
//
// The optimizer runs one placement strategy per layout family: a sequential
// greedy single-column pass with page breaks, and a two-column/sidebar pass
// that splits sections between a main column and a sidebar. Every strategy
// always returns a complete, renderable result; content that cannot fit is
// flagged via the overflow list instead of failing.
package layout

import "github.com/jonathan/cv-layout-engine/internal/types"

// sectionGap is the vertical gap between placed sections in mm.
const sectionGap = 5

// strategy places sections under the given constraints.
type strategy func(sections []types.SectionDimensions, constraints types.PageConstraints) *types.LayoutResult

// Optimizer computes layouts from section dimensions and page constraints.
type Optimizer struct{}

// NewOptimizer returns a layout optimizer.
func NewOptimizer() *Optimizer {
	return &Optimizer{}
}

// Optimize places the sections using the strategy selected by layoutType
// and returns the resulting pages, overflow list, score and recommendations.
func (o *Optimizer) Optimize(sections []types.SectionDimensions, constraints types.PageConstraints, layoutType types.LayoutType) *types.LayoutResult {
	var place strategy

	switch layoutType {
	case types.LayoutTwoColumn:
		place = func(s []types.SectionDimensions, c types.PageConstraints) *types.LayoutResult {
			return placeTwoColumn(s, c, false)
		}
	case types.LayoutModernSidebar:
		// Same placement as two-column, with a background panel behind
		// the sidebar for the visual treatment.
		place = func(s []types.SectionDimensions, c types.PageConstraints) *types.LayoutResult {
			return placeTwoColumn(s, c, true)
		}
	default:
		// single_column, executive, academic and creative all stack
		// sections in one column; they differ only in visual styling
		// applied by the renderer.
		place = placeSingleColumn
	}

	return place(sections, constraints)
}
