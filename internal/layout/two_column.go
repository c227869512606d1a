package layout

import (
	"github.com/google/uuid"

	"github.com/jonathan/cv-layout-engine/internal/types"
)

const (
	// Column proportions of the content width.
	mainColumnRatio    = 0.65
	sidebarColumnRatio = 0.30

	// columnGap separates the main column from the sidebar in mm.
	columnGap = 10

	// sidebarTopOffset pushes sidebar content below the header block in mm.
	sidebarTopOffset = 60

	// panelBleed extends the sidebar background panel past the column edge in mm.
	panelBleed = 5
)

// placeTwoColumn lays out header, summary and experience in a main column and
// everything else in a sidebar column. This layout family assumes a single
// page: it never breaks pages, and sections whose bottom edge runs past the
// page's content area are reported as overflow instead.
//
// withPanel adds a full-height background panel behind the sidebar (the
// modern_sidebar visual treatment); the placement itself is identical.
func placeTwoColumn(sections []types.SectionDimensions, constraints types.PageConstraints, withPanel bool) *types.LayoutResult {
	var mainSections, sidebarSections []types.SectionDimensions
	for _, section := range sections {
		switch section.SectionKind {
		case types.KindHeader, types.KindSummary, types.KindExperience:
			mainSections = append(mainSections, section)
		default:
			sidebarSections = append(sidebarSections, section)
		}
	}

	mainWidth := constraints.ContentWidth() * mainColumnRatio
	sidebarWidth := constraints.ContentWidth() * sidebarColumnRatio
	sidebarX := constraints.MarginLeft + mainWidth + columnGap
	pageBottom := constraints.Height - constraints.MarginBottom

	page := make([]types.LayoutElement, 0, len(sections)+1)
	overflow := make([]string, 0)

	if withPanel {
		page = append(page, types.LayoutElement{
			ElementID:   uuid.NewString(),
			ElementKind: types.ElementPanel,
			X:           sidebarX - panelBleed,
			Y:           0,
			Width:       constraints.Width - (sidebarX - panelBleed),
			Height:      constraints.Height,
			PageNumber:  1,
			ZIndex:      -1,
		})
	}

	currentY := constraints.MarginTop
	for _, section := range mainSections {
		page = append(page, types.LayoutElement{
			ElementID:   section.SectionID,
			ElementKind: types.ElementSection,
			X:           constraints.MarginLeft,
			Y:           currentY,
			Width:       mainWidth,
			Height:      section.PreferredHeight,
			PageNumber:  1,
		})
		if currentY+section.PreferredHeight > pageBottom {
			overflow = append(overflow, section.SectionID)
		}
		currentY += section.PreferredHeight + sectionGap
	}

	sidebarY := constraints.MarginTop + sidebarTopOffset
	for _, section := range sidebarSections {
		page = append(page, types.LayoutElement{
			ElementID:   section.SectionID,
			ElementKind: types.ElementSection,
			X:           sidebarX,
			Y:           sidebarY,
			Width:       sidebarWidth,
			Height:      section.PreferredHeight,
			PageNumber:  1,
		})
		if sidebarY+section.PreferredHeight > pageBottom {
			overflow = append(overflow, section.SectionID)
		}
		sidebarY += section.PreferredHeight + sectionGap
	}

	pages := [][]types.LayoutElement{page}
	score := calculateScore(pages, overflow, sections, constraints)

	return &types.LayoutResult{
		Pages:            pages,
		TotalPages:       1,
		OverflowSections: overflow,
		LayoutScore:      score,
		Recommendations:  buildRecommendations(pages, overflow, sections, score),
	}
}
