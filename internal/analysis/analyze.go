// Package analysis derives per-section space requirements from CV content.
package analysis

import (
	"math"

	"github.com/jonathan/cv-layout-engine/internal/measure"
	"github.com/jonathan/cv-layout-engine/internal/types"
)

const (
	bodyFont         = 11
	sectionTitleFont = 14

	// mainColumnRatio narrows the measured width for two-column families
	// so the sidebar has room next to the main column.
	mainColumnRatio = 0.65

	// achievementIndent is the horizontal indent for achievement bullets in mm.
	achievementIndent = 10
)

// titleAllowance is the space a section title consumes before its content:
// one 14pt title line plus 8mm spacing.
func titleAllowance() float64 {
	return sectionTitleFont*measure.PtToMM*1.4 + 8
}

// Analyzer produces SectionDimensions descriptors for the layout optimizer.
type Analyzer struct {
	measurer measure.Measurer
}

// NewAnalyzer returns an analyzer backed by the given measurer.
func NewAnalyzer(m measure.Measurer) *Analyzer {
	return &Analyzer{measurer: m}
}

// AnalyzeSections returns one SectionDimensions per section present and
// non-empty in content, in canonical CV order: header, summary, experience,
// skills, education, projects. Absent sections are omitted.
func (a *Analyzer) AnalyzeSections(content *types.CVContent, constraints types.PageConstraints, layoutType types.LayoutType) []types.SectionDimensions {
	contentWidth := constraints.ContentWidth()
	if layoutType.IsTwoColumnFamily() {
		contentWidth *= mainColumnRatio
	}

	sections := make([]types.SectionDimensions, 0, 6)

	if content.HasHeader() {
		height := measure.HeaderHeight(a.measurer, content.PersonalDetails, contentWidth)
		sections = append(sections, types.SectionDimensions{
			SectionID:       "header",
			SectionKind:     types.KindHeader,
			Priority:        types.PriorityCritical,
			MinHeight:       height * 0.8,
			PreferredHeight: height,
			MaxHeight:       height * 1.2,
			CanSplit:        false,
		})
	}

	if content.ProfessionalSummary != "" {
		height := a.summaryHeight(content.ProfessionalSummary, contentWidth)
		sections = append(sections, types.SectionDimensions{
			SectionID:       "professional_summary",
			SectionKind:     types.KindSummary,
			Priority:        types.PriorityHigh,
			MinHeight:       height * 0.9,
			PreferredHeight: height,
			MaxHeight:       height * 1.3,
			CanSplit:        true,
		})
	}

	if len(content.WorkExperience) > 0 {
		height := a.experienceHeight(content.WorkExperience, contentWidth)
		sections = append(sections, types.SectionDimensions{
			SectionID:       "work_experience",
			SectionKind:     types.KindExperience,
			Priority:        types.PriorityCritical,
			MinHeight:       height * 0.7, // Achievements may be condensed
			PreferredHeight: height,
			MaxHeight:       height * 1.4,
			CanSplit:        true,
			ItemCount:       len(content.WorkExperience),
		})
	}

	if content.HasSkills() {
		height := a.skillsHeight(content.Skills, contentWidth, layoutType)
		sections = append(sections, types.SectionDimensions{
			SectionID:       "skills",
			SectionKind:     types.KindSkills,
			Priority:        types.PriorityHigh,
			MinHeight:       height * 0.8,
			PreferredHeight: height,
			MaxHeight:       height * 1.5,
			CanSplit:        true,
		})
	}

	if len(content.Education) > 0 {
		height := a.educationHeight(content.Education)
		sections = append(sections, types.SectionDimensions{
			SectionID:       "education",
			SectionKind:     types.KindEducation,
			Priority:        types.PriorityMedium,
			MinHeight:       height * 0.9,
			PreferredHeight: height,
			MaxHeight:       height * 1.3,
			CanSplit:        true,
			ItemCount:       len(content.Education),
		})
	}

	if len(content.Projects) > 0 {
		height := a.projectsHeight(content.Projects, contentWidth)
		sections = append(sections, types.SectionDimensions{
			SectionID:       "projects",
			SectionKind:     types.KindProjects,
			Priority:        types.PriorityMedium,
			MinHeight:       height * 0.8,
			PreferredHeight: height,
			MaxHeight:       height * 1.4,
			CanSplit:        true,
			ItemCount:       len(content.Projects),
		})
	}

	return sections
}

func (a *Analyzer) summaryHeight(summary string, maxWidth float64) float64 {
	text := a.measurer.MeasureHeight(summary, bodyFont, maxWidth, 1.5)
	return titleAllowance() + text + 10
}

func (a *Analyzer) experienceHeight(entries []types.WorkExperience, maxWidth float64) float64 {
	total := titleAllowance()

	for _, exp := range entries {
		// Job title and company, typically 2 lines
		entryHeight := 2*(bodyFont*measure.PtToMM*1.4) + 5

		if len(exp.Achievements) > 0 {
			entryHeight += measure.ListHeight(a.measurer, exp.Achievements, bodyFont, maxWidth-achievementIndent, 1.5)
		}

		// Dates and spacing between jobs
		entryHeight += 15
		total += entryHeight
	}

	return total
}

func (a *Analyzer) skillsHeight(skills map[string][]string, maxWidth float64, layoutType types.LayoutType) float64 {
	var height float64

	if layoutType.IsTwoColumnFamily() {
		// Skills live in the sidebar, stacked per category
		height = float64(len(skills)) * 25
	} else {
		// Grid of skill tags in the main column
		totalSkills := 0
		for _, list := range skills {
			totalSkills += len(list)
		}
		perRow := int(maxWidth / 40) // Assume 40mm per skill tag
		if perRow < 1 {
			perRow = 1
		}
		rows := math.Ceil(float64(totalSkills) / float64(perRow))
		height = rows*15 + float64(len(skills))*10
	}

	return titleAllowance() + height + 10
}

func (a *Analyzer) educationHeight(entries []types.Education) float64 {
	total := titleAllowance()
	for range entries {
		// Degree, institution, dates: typically 3 lines
		total += 3*(bodyFont*measure.PtToMM*1.4) + 10
	}
	return total
}

func (a *Analyzer) projectsHeight(projects []types.Project, maxWidth float64) float64 {
	total := titleAllowance()

	for _, project := range projects {
		height := bodyFont*measure.PtToMM*1.4 + 3 // Title line

		if project.Description != "" {
			height += a.measurer.MeasureHeight(project.Description, 10, maxWidth, 1.4)
		}

		if len(project.Technologies) > 0 {
			height += 10*measure.PtToMM*1.4 + 5 // One line of tech tags
		}

		total += height + 10
	}

	return total
}
