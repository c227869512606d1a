package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-layout-engine/internal/types"
)

func elementsPage(heights ...float64) []types.LayoutElement {
	page := make([]types.LayoutElement, 0, len(heights))
	y := 20.0
	for i, h := range heights {
		page = append(page, types.LayoutElement{
			ElementID:   "section_" + string(rune('a'+i)),
			ElementKind: types.ElementSection,
			Y:           y,
			Height:      h,
			PageNumber:  1,
		})
		y += h + sectionGap
	}
	return page
}

func TestCalculateScore_WellFilledSinglePage(t *testing.T) {
	constraints := types.DefaultConstraints()

	// ~78% utilization: no under/overfill penalty, no extra pages
	pages := [][]types.LayoutElement{elementsPage(100, 100)}
	score := calculateScore(pages, nil, nil, constraints)
	assert.Equal(t, 100, score)
}

func TestCalculateScore_ExtraPagePenalty(t *testing.T) {
	constraints := types.DefaultConstraints()
	pages := [][]types.LayoutElement{elementsPage(100, 100), elementsPage(100, 100)}

	score := calculateScore(pages, nil, nil, constraints)
	assert.Equal(t, 85, score)
}

func TestCalculateScore_OverflowPenalty(t *testing.T) {
	constraints := types.DefaultConstraints()
	pages := [][]types.LayoutElement{elementsPage(100, 100)}

	score := calculateScore(pages, []string{"skills", "projects"}, nil, constraints)
	assert.Equal(t, 80, score)
}

func TestCalculateScore_UnderfilledPagePenalty(t *testing.T) {
	constraints := types.DefaultConstraints()
	pages := [][]types.LayoutElement{elementsPage(50)} // ~19% utilization

	score := calculateScore(pages, nil, nil, constraints)
	assert.Equal(t, 90, score)
}

func TestCalculateScore_OverpackedPagePenalty(t *testing.T) {
	constraints := types.DefaultConstraints()
	pages := [][]types.LayoutElement{elementsPage(130, 125)} // ~99% utilization

	score := calculateScore(pages, nil, nil, constraints)
	assert.Equal(t, 85, score)
}

func TestCalculateScore_CriticalOnFirstPageBonus(t *testing.T) {
	constraints := types.DefaultConstraints()
	page := elementsPage(100, 100)
	page[0].ElementID = "header"
	page[1].ElementID = "work_experience"
	pages := [][]types.LayoutElement{page}

	sections := []types.SectionDimensions{
		{SectionID: "header", Priority: types.PriorityCritical},
		{SectionID: "work_experience", Priority: types.PriorityCritical},
		{SectionID: "skills", Priority: types.PriorityHigh},
	}

	// 100 + 2*5, clamped to 100
	score := calculateScore(pages, nil, sections, constraints)
	assert.Equal(t, 100, score)
}

func TestCalculateScore_ClampedToZero(t *testing.T) {
	constraints := types.DefaultConstraints()

	pages := make([][]types.LayoutElement, 0, 8)
	for i := 0; i < 8; i++ {
		pages = append(pages, elementsPage(50)) // each page underfilled
	}
	overflow := []string{"a", "b", "c", "d", "e"}

	score := calculateScore(pages, overflow, nil, constraints)
	assert.Equal(t, 0, score)
}

func TestCalculateScore_PanelExcludedFromUtilization(t *testing.T) {
	constraints := types.DefaultConstraints()
	page := elementsPage(100, 100)
	page = append(page, types.LayoutElement{
		ElementID:   "panel-1",
		ElementKind: types.ElementPanel,
		Height:      constraints.Height,
		ZIndex:      -1,
	})

	score := calculateScore([][]types.LayoutElement{page}, nil, nil, constraints)
	assert.Equal(t, 100, score, "background panels must not count toward page utilization")
}
