package layout

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-layout-engine/internal/types"
)

const (
	// maxRecommendedPages is the page count above which we suggest condensing.
	maxRecommendedPages = 2
	// fullFirstPageHeight is the first-page content height in mm above which
	// we suggest rebalancing to the second page.
	fullFirstPageHeight = 250
	// maxRecommendedJobs is the experience entry count above which we suggest
	// trimming to the most relevant positions.
	maxRecommendedJobs = 5
)

// buildRecommendations produces ordered, human-readable layout advice.
func buildRecommendations(pages [][]types.LayoutElement, overflow []string, sections []types.SectionDimensions, score int) []string {
	recommendations := make([]string, 0, 4)

	if len(pages) > maxRecommendedPages {
		recommendations = append(recommendations, "Consider condensing content to fit within 2 pages")
	}

	if len(overflow) > 0 {
		recommendations = append(recommendations, fmt.Sprintf("Sections may be truncated: %s", strings.Join(overflow, ", ")))
	}

	if score < 70 {
		recommendations = append(recommendations, "Layout could be optimized for better presentation")
	}

	if len(pages) > 0 {
		firstPageHeight := 0.0
		for _, element := range pages[0] {
			if element.ElementKind == types.ElementSection {
				firstPageHeight += element.Height
			}
		}
		if firstPageHeight > fullFirstPageHeight {
			recommendations = append(recommendations, "Consider moving some content to second page for better balance")
		}
	}

	for _, section := range sections {
		if section.SectionKind == types.KindExperience && section.ItemCount > maxRecommendedJobs {
			recommendations = append(recommendations, "Consider limiting work experience to 4-5 most relevant positions")
			break
		}
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Layout is well-optimized for readability and ATS compatibility")
	}

	return recommendations
}
