package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-layout-engine/internal/service"
	"github.com/jonathan/cv-layout-engine/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [content files...]",
	Short: "Compute layouts for several CV content files concurrently",
	Long: `Runs the layout engine over each given content file in parallel and writes one result file per input next to it (<name>.layout.json).

The engine is a pure computation with no shared state, so files are laid out concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

var (
	batchFormat          string
	batchLayoutType      string
	batchExperienceLevel string
	batchIndustry        string
	batchConcurrency     int
)

func init() {
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "pdf", "Target format: pdf, letter or web")
	batchCmd.Flags().StringVarP(&batchLayoutType, "layout", "l", "", "Explicit layout type for all files")
	batchCmd.Flags().StringVar(&batchExperienceLevel, "experience-level", "mid", "Candidate experience level (heuristic input)")
	batchCmd.Flags().StringVar(&batchIndustry, "industry", "general", "Target industry (heuristic input)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum concurrent layout computations")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	svc := service.New()

	var g errgroup.Group
	g.SetLimit(batchConcurrency)

	for _, path := range args {
		path := path
		g.Go(func() error {
			content, err := loadContent(path, "")
			if err != nil {
				return err
			}

			var result *types.LayoutResult
			if batchLayoutType != "" {
				result = svc.GenerateWithLayout(
					content,
					types.ParseLayoutType(batchLayoutType),
					service.ConstraintsForFormat(batchFormat),
				)
			} else {
				result = svc.Generate(content, batchFormat, batchExperienceLevel, batchIndustry)
			}

			return writeResult(result, batchOutputPath(path))
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("batch layout failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Laid out %d files\n", len(args))
	return nil
}

// batchOutputPath derives the result path for a content file:
// content/cv.json -> content/cv.layout.json
func batchOutputPath(contentPath string) string {
	ext := filepath.Ext(contentPath)
	base := strings.TrimSuffix(contentPath, ext)
	return base + ".layout.json"
}
