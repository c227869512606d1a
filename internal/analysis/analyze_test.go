package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-layout-engine/internal/measure"
	"github.com/jonathan/cv-layout-engine/internal/types"
)

func newAnalyzer() *Analyzer {
	return NewAnalyzer(measure.NewHeuristicMeasurer())
}

func fullContent() *types.CVContent {
	return &types.CVContent{
		PersonalDetails: &types.PersonalDetails{
			FullName:        "Jane Doe",
			Email:           "jane@example.com",
			DesiredPosition: "Staff Engineer",
		},
		ProfessionalSummary: strings.Repeat("Seasoned engineer. ", 15),
		WorkExperience: []types.WorkExperience{
			{
				JobTitle:     "Staff Engineer",
				Company:      "Acme",
				Achievements: []string{"Cut p99 latency by 40%", "Led a team of 6"},
			},
			{
				JobTitle: "Senior Engineer",
				Company:  "Initech",
			},
		},
		Skills: map[string][]string{
			"Languages": {"Go", "Python"},
			"Cloud":     {"AWS", "GCP", "Kubernetes"},
		},
		Education: []types.Education{
			{Degree: "BSc Computer Science", Institution: "TU Berlin"},
		},
		Projects: []types.Project{
			{Name: "layouter", Description: "A CV layout engine", Technologies: []string{"Go"}},
		},
	}
}

func TestAnalyzeSections_CanonicalOrder(t *testing.T) {
	sections := newAnalyzer().AnalyzeSections(fullContent(), types.DefaultConstraints(), types.LayoutSingleColumn)

	require.Len(t, sections, 6)
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.SectionID
	}
	assert.Equal(t, []string{"header", "professional_summary", "work_experience", "skills", "education", "projects"}, ids)
}

func TestAnalyzeSections_OmitsAbsentSections(t *testing.T) {
	content := &types.CVContent{
		ProfessionalSummary: "Short summary.",
	}

	sections := newAnalyzer().AnalyzeSections(content, types.DefaultConstraints(), types.LayoutSingleColumn)

	require.Len(t, sections, 1)
	assert.Equal(t, "professional_summary", sections[0].SectionID)
}

func TestAnalyzeSections_EmptySkillsMapOmitted(t *testing.T) {
	content := &types.CVContent{
		Skills: map[string][]string{"Languages": {}},
	}

	sections := newAnalyzer().AnalyzeSections(content, types.DefaultConstraints(), types.LayoutSingleColumn)
	assert.Empty(t, sections)
}

func TestAnalyzeSections_HeightInvariant(t *testing.T) {
	for _, layoutType := range []types.LayoutType{types.LayoutSingleColumn, types.LayoutTwoColumn, types.LayoutModernSidebar} {
		sections := newAnalyzer().AnalyzeSections(fullContent(), types.DefaultConstraints(), layoutType)
		for _, s := range sections {
			assert.LessOrEqual(t, s.MinHeight, s.PreferredHeight, "section %s (%s)", s.SectionID, layoutType)
			assert.LessOrEqual(t, s.PreferredHeight, s.MaxHeight, "section %s (%s)", s.SectionID, layoutType)
			assert.Positive(t, s.MinHeight, "section %s (%s)", s.SectionID, layoutType)
		}
	}
}

func TestAnalyzeSections_PrioritiesAndSplittability(t *testing.T) {
	sections := newAnalyzer().AnalyzeSections(fullContent(), types.DefaultConstraints(), types.LayoutSingleColumn)

	byID := make(map[string]types.SectionDimensions, len(sections))
	for _, s := range sections {
		byID[s.SectionID] = s
	}

	assert.Equal(t, types.PriorityCritical, byID["header"].Priority)
	assert.False(t, byID["header"].CanSplit)
	assert.Equal(t, types.PriorityHigh, byID["professional_summary"].Priority)
	assert.Equal(t, types.PriorityCritical, byID["work_experience"].Priority)
	assert.True(t, byID["work_experience"].CanSplit)
	assert.Equal(t, types.PriorityHigh, byID["skills"].Priority)
	assert.Equal(t, types.PriorityMedium, byID["education"].Priority)
	assert.Equal(t, types.PriorityMedium, byID["projects"].Priority)
}

func TestAnalyzeSections_ItemCounts(t *testing.T) {
	sections := newAnalyzer().AnalyzeSections(fullContent(), types.DefaultConstraints(), types.LayoutSingleColumn)

	byID := make(map[string]types.SectionDimensions, len(sections))
	for _, s := range sections {
		byID[s.SectionID] = s
	}

	assert.Equal(t, 2, byID["work_experience"].ItemCount)
	assert.Equal(t, 1, byID["education"].ItemCount)
	assert.Equal(t, 1, byID["projects"].ItemCount)
}

func TestAnalyzeSections_TwoColumnNarrowsMeasuredWidth(t *testing.T) {
	content := &types.CVContent{
		ProfessionalSummary: strings.Repeat("A reasonably long professional summary paragraph. ", 10),
	}

	single := newAnalyzer().AnalyzeSections(content, types.DefaultConstraints(), types.LayoutSingleColumn)
	two := newAnalyzer().AnalyzeSections(content, types.DefaultConstraints(), types.LayoutTwoColumn)

	require.Len(t, single, 1)
	require.Len(t, two, 1)

	// Narrower main column wraps the same text into more lines
	assert.Greater(t, two[0].PreferredHeight, single[0].PreferredHeight)
}

func TestAnalyzeSections_SkillsSidebarUsesFlatCategoryHeight(t *testing.T) {
	content := &types.CVContent{
		Skills: map[string][]string{
			"Languages": {"Go", "Python", "Rust"},
			"Cloud":     {"AWS"},
		},
	}

	sections := newAnalyzer().AnalyzeSections(content, types.DefaultConstraints(), types.LayoutTwoColumn)
	require.Len(t, sections, 1)

	// title allowance + 25mm per category + 10mm section spacing
	expected := titleAllowance() + 2*25 + 10
	assert.InDelta(t, expected, sections[0].PreferredHeight, 0.001)
}
