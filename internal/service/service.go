// Package service is the top-level entry point of the layout engine: it picks
// a layout type from content shape, derives page constraints from the target
// output format, runs the optimizer and appends cross-cutting recommendations.
package service

import (
	"github.com/jonathan/cv-layout-engine/internal/analysis"
	"github.com/jonathan/cv-layout-engine/internal/layout"
	"github.com/jonathan/cv-layout-engine/internal/measure"
	"github.com/jonathan/cv-layout-engine/internal/types"
)

// LayoutService generates optimal layouts for CV content. It holds no
// cross-request state; concurrent callers need no synchronization.
type LayoutService struct {
	analyzer  *analysis.Analyzer
	optimizer *layout.Optimizer
}

// New returns a LayoutService backed by the heuristic measurer.
func New() *LayoutService {
	return NewWithMeasurer(measure.NewHeuristicMeasurer())
}

// NewWithMeasurer returns a LayoutService backed by a custom measurer,
// e.g. a real font-metrics implementation.
func NewWithMeasurer(m measure.Measurer) *LayoutService {
	return &LayoutService{
		analyzer:  analysis.NewAnalyzer(m),
		optimizer: layout.NewOptimizer(),
	}
}

// Generate computes the best layout for the content: it selects a layout type
// heuristically, derives constraints from targetFormat and applies responsive
// post-processing to the result.
func (s *LayoutService) Generate(content *types.CVContent, targetFormat, experienceLevel, industry string) *types.LayoutResult {
	layoutType := ChooseLayoutType(content, experienceLevel, industry)
	constraints := ConstraintsForFormat(targetFormat)

	result := s.GenerateWithLayout(content, layoutType, constraints)

	return applyResponsiveAdjustments(result)
}

// GenerateWithLayout computes a layout for callers that preselect the layout
// type and constraints themselves.
func (s *LayoutService) GenerateWithLayout(content *types.CVContent, layoutType types.LayoutType, constraints types.PageConstraints) *types.LayoutResult {
	sections := s.analyzer.AnalyzeSections(content, constraints, layoutType)
	return s.optimizer.Optimize(sections, constraints, layoutType)
}

// ChooseLayoutType picks a layout type from content shape, industry and
// experience level. Rules are evaluated in order; the first match wins.
func ChooseLayoutType(content *types.CVContent, experienceLevel, industry string) types.LayoutType {
	if experienceLevel == "senior" && len(content.WorkExperience) >= 4 {
		return types.LayoutExecutive
	}

	if (industry == "creative" || industry == "design" || industry == "marketing") && len(content.Projects) > 0 {
		return types.LayoutCreative
	}

	if industry == "technology" && content.TotalSkillCount() > 15 {
		return types.LayoutTwoColumn
	}

	if industry == "education" || industry == "research" || len(content.Publications) > 0 {
		return types.LayoutAcademic
	}

	// Single column maximizes ATS-style parseability
	return types.LayoutSingleColumn
}

// ConstraintsForFormat derives page constraints from a target output format.
// Unknown formats default to A4.
func ConstraintsForFormat(targetFormat string) types.PageConstraints {
	switch targetFormat {
	case "letter":
		c := types.DefaultConstraints()
		c.Width = 215.9
		c.Height = 279.4
		return c
	case "web":
		// A tall, narrow virtual page representing unbounded scroll
		c := types.DefaultConstraints()
		c.Width = 190
		c.Height = 1000
		c.MarginLeft = 10
		c.MarginRight = 10
		return c
	default: // pdf and anything unrecognized
		return types.DefaultConstraints()
	}
}

// applyResponsiveAdjustments appends cross-cutting recommendations after the
// placement pass.
func applyResponsiveAdjustments(result *types.LayoutResult) *types.LayoutResult {
	if result.LayoutScore < 60 {
		result.Recommendations = append(
			[]string{"Consider condensing content for better layout"},
			result.Recommendations...,
		)

		if result.TotalPages > 2 {
			result.Recommendations = append(result.Recommendations, "Prioritize most relevant experience and skills")
		}
	}

	result.Recommendations = append(result.Recommendations, "Layout is optimized for both print and digital viewing")

	return result
}
