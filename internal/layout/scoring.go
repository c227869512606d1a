package layout

import "github.com/jonathan/cv-layout-engine/internal/types"

const (
	multiPagePenalty   = 15
	overflowPenalty    = 10
	underfillPenalty   = 10
	overpackPenalty    = 15
	criticalBonus      = 5
	underfillThreshold = 0.7
	overpackThreshold  = 0.95
)

// calculateScore rates a computed layout 0-100. It starts at 100 and
// penalizes extra pages, truncated sections and poor page utilization,
// then rewards critical sections that landed on the first page.
func calculateScore(pages [][]types.LayoutElement, overflow []string, sections []types.SectionDimensions, constraints types.PageConstraints) int {
	score := 100

	if len(pages) > 1 {
		score -= (len(pages) - 1) * multiPagePenalty
	}

	score -= len(overflow) * overflowPenalty

	contentHeight := constraints.ContentHeight()
	for _, page := range pages {
		totalHeight := 0.0
		for _, element := range page {
			if element.ElementKind == types.ElementSection {
				totalHeight += element.Height
			}
		}
		utilization := totalHeight / contentHeight

		if utilization < underfillThreshold {
			score -= underfillPenalty
		} else if utilization > overpackThreshold {
			score -= overpackPenalty
		}
	}

	if len(pages) > 0 {
		firstPage := make(map[string]bool, len(pages[0]))
		for _, element := range pages[0] {
			firstPage[element.ElementID] = true
		}
		for _, section := range sections {
			if section.Priority == types.PriorityCritical && firstPage[section.SectionID] {
				score += criticalBonus
			}
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
