package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-layout-engine/internal/analysis"
	"github.com/jonathan/cv-layout-engine/internal/config"
	"github.com/jonathan/cv-layout-engine/internal/measure"
	"github.com/jonathan/cv-layout-engine/internal/observability"
	"github.com/jonathan/cv-layout-engine/internal/schemas"
	"github.com/jonathan/cv-layout-engine/internal/service"
	"github.com/jonathan/cv-layout-engine/internal/types"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Compute a layout for a CV content file",
	Long: `Reads a CV content JSON file, computes an optimal page layout and writes the result as JSON.

The layout type is chosen heuristically from content shape, industry and experience level unless --layout pins one explicitly. Configuration can be loaded from a JSON file using --config; command-line arguments override config file values.`,
	RunE: runLayout,
}

var (
	layoutConfigPath      string
	layoutContent         string
	layoutOutput          string
	layoutSchema          string
	layoutFormat          string
	layoutTypeFlag        string
	layoutExperienceLevel string
	layoutIndustry        string
	layoutVerbose         bool
)

func init() {
	// Config file flag (processed first)
	layoutCmd.Flags().StringVar(&layoutConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	layoutCmd.Flags().StringVarP(&layoutContent, "content", "c", "", "Path to CV content JSON file (required)")
	layoutCmd.Flags().StringVarP(&layoutOutput, "output", "o", "", "Path to write the layout result JSON (default stdout)")
	layoutCmd.Flags().StringVar(&layoutSchema, "schema", "", "Path to the content JSON Schema (default: bundled schema)")
	layoutCmd.Flags().StringVarP(&layoutFormat, "format", "f", "pdf", "Target format: pdf, letter or web")
	layoutCmd.Flags().StringVarP(&layoutTypeFlag, "layout", "l", "", "Explicit layout type (single_column, two_column, modern_sidebar, executive, academic, creative)")
	layoutCmd.Flags().StringVar(&layoutExperienceLevel, "experience-level", "mid", "Candidate experience level (heuristic input)")
	layoutCmd.Flags().StringVar(&layoutIndustry, "industry", "general", "Target industry (heuristic input)")
	layoutCmd.Flags().BoolVarP(&layoutVerbose, "verbose", "v", false, "Print section analysis and layout diagnostics")

	rootCmd.AddCommand(layoutCmd)
}

func runLayout(_ *cobra.Command, _ []string) error {
	cfg := mergedLayoutConfig()

	if cfg.Content == "" {
		return fmt.Errorf("--content is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	content, err := loadContent(cfg.Content, cfg.Schema)
	if err != nil {
		return err
	}

	svc := service.New()
	constraints := service.ConstraintsForFormat(cfg.Format)

	layoutType := cfg.LayoutType()
	if cfg.Layout == "" {
		layoutType = service.ChooseLayoutType(content, cfg.ExperienceLevel, cfg.Industry)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		analyzer := analysis.NewAnalyzer(measure.NewHeuristicMeasurer())
		printer.PrintSectionDimensions(analyzer.AnalyzeSections(content, constraints, layoutType))
	}

	var result *types.LayoutResult
	if cfg.Layout == "" {
		result = svc.Generate(content, cfg.Format, cfg.ExperienceLevel, cfg.Industry)
	} else {
		result = svc.GenerateWithLayout(content, layoutType, constraints)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintLayoutResult(result)
	}

	return writeResult(result, cfg.Output)
}

// mergedLayoutConfig merges CLI flags over the optional config file.
func mergedLayoutConfig() config.Config {
	flags := config.Config{
		Content:         layoutContent,
		Output:          layoutOutput,
		Schema:          layoutSchema,
		Format:          layoutFormat,
		Layout:          layoutTypeFlag,
		ExperienceLevel: layoutExperienceLevel,
		Industry:        layoutIndustry,
		Verbose:         layoutVerbose,
	}

	if layoutConfigPath == "" {
		return flags
	}

	fileCfg, err := config.LoadConfig(layoutConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return flags
	}

	return flags.MergeWithDefaults(*fileCfg)
}

// loadContent reads a content file, validates it against the JSON Schema when
// one can be resolved, and unmarshals it into the content model.
func loadContent(path, schemaPath string) (*types.CVContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.ContentSchemaPath)
	}
	if schemaPath != "" {
		if err := schemas.ValidateContentDocument(schemaPath, data); err != nil {
			return nil, fmt.Errorf("content validation failed: %w", err)
		}
	}

	var content types.CVContent
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse content JSON: %w", err)
	}

	return &content, nil
}

// writeResult writes the layout result JSON to the output path, or stdout
// when no path is given.
func writeResult(result *types.LayoutResult, output string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal layout result: %w", err)
	}

	if output == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(output, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write result to %s: %w", output, err)
	}
	return nil
}
