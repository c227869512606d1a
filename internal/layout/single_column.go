package layout

import "github.com/jonathan/cv-layout-engine/internal/types"

// placeSingleColumn performs sequential greedy placement: one deterministic
// pass with no backtracking. Each section is placed at its preferred height
// when it fits; splittable sections are truncated to their minimum height to
// squeeze onto the current page; anything else opens a new page. A section is
// never reconsidered once placed.
func placeSingleColumn(sections []types.SectionDimensions, constraints types.PageConstraints) *types.LayoutResult {
	pages := make([][]types.LayoutElement, 0, 2)
	currentPage := make([]types.LayoutElement, 0, len(sections))
	currentY := constraints.MarginTop
	pageNumber := 1
	overflow := make([]string, 0)

	contentHeight := constraints.ContentHeight()
	pageBottom := constraints.Height - constraints.MarginBottom

	for _, section := range sections {
		switch {
		case currentY+section.PreferredHeight <= pageBottom:
			// Fits at preferred height
			currentPage = append(currentPage, sectionElement(section, constraints, currentY, section.PreferredHeight, pageNumber))
			currentY += section.PreferredHeight + sectionGap

		case section.CanSplit && section.MinHeight <= pageBottom-currentY:
			// Truncated minimum version fits in the remaining space;
			// the rest of the content continues conceptually off-page.
			currentPage = append(currentPage, sectionElement(section, constraints, currentY, section.MinHeight, pageNumber))
			currentY += section.MinHeight + sectionGap

			if section.MaxHeight > section.MinHeight {
				overflow = append(overflow, section.SectionID)
			}

		default:
			// Open a new page and place the section there, clipped to
			// the page's content height if necessary. An empty current
			// page is reused: it means we are already at a page top.
			if len(currentPage) > 0 {
				pages = append(pages, currentPage)
				currentPage = make([]types.LayoutElement, 0, len(sections))
				pageNumber++
			}
			currentY = constraints.MarginTop

			height := section.PreferredHeight
			if height > contentHeight {
				height = contentHeight
				overflow = append(overflow, section.SectionID)
			}
			currentPage = append(currentPage, sectionElement(section, constraints, currentY, height, pageNumber))
			currentY += height + sectionGap
		}
	}

	if len(currentPage) > 0 {
		pages = append(pages, currentPage)
	}

	score := calculateScore(pages, overflow, sections, constraints)

	return &types.LayoutResult{
		Pages:            pages,
		TotalPages:       len(pages),
		OverflowSections: overflow,
		LayoutScore:      score,
		Recommendations:  buildRecommendations(pages, overflow, sections, score),
	}
}

// sectionElement builds a full-content-width element for the section at the
// given vertical position.
func sectionElement(section types.SectionDimensions, constraints types.PageConstraints, y, height float64, page int) types.LayoutElement {
	return types.LayoutElement{
		ElementID:   section.SectionID,
		ElementKind: types.ElementSection,
		X:           constraints.MarginLeft,
		Y:           y,
		Width:       constraints.ContentWidth(),
		Height:      height,
		PageNumber:  page,
	}
}
