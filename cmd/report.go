package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nikogura/namescore/pkg/analysis"
	"github.com/nikogura/namescore/pkg/config"
	"github.com/nikogura/namescore/pkg/progress"
	"github.com/nikogura/namescore/pkg/report"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var reportOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var keepMarkdown bool

//nolint:gochecknoglobals // Cobra boilerplate
var skipPDF bool

//nolint:gochecknoglobals // Cobra boilerplate
var reportCmd = &cobra.Command{
	Use:   "report <name>",
	Short: "Write a detailed numerology report",
	Long: `Analyze a name and write a detailed report as markdown, rendered to PDF with pandoc.

Example:
  namescore report "Marie Anne Curie" --birthdate 1867-11-07
  namescore report "Lumina" --mode brand --output-dir ~/Documents --skip-pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&birthdate, "birthdate", "", "Birthdate (any format with at least 6 digits)")
	reportCmd.Flags().StringVar(&goalFlag, "goal", "", "Goal (default from config, else \"General Insight\")")
	reportCmd.Flags().StringVar(&modeFlag, "mode", "", "Intent: personal, brand, or baby (default personal)")
	reportCmd.Flags().StringVar(&reportOutputDir, "output-dir", "", "Output directory (default from config)")
	reportCmd.Flags().BoolVar(&keepMarkdown, "keep-markdown", true, "Keep the markdown file after PDF generation")
	reportCmd.Flags().BoolVar(&skipPDF, "skip-pdf", false, "Skip PDF generation")
}

func runReport(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cfg, analyzer, err := setupAnalyzer(ctx)
	if err != nil {
		return err
	}

	var req analysis.NameRequest
	req, err = buildNameRequest(cfg, args[0])
	if err != nil {
		return err
	}

	s := startSpinner("Analyzing name...", cfg.Provider != config.ProviderNone)
	var result analysis.NameAnalysis
	result, err = analyzer.AnalyzeName(ctx, req)
	s.stopSpinner()
	if err != nil {
		return err
	}

	outDir := reportOutputDir
	if outDir == "" {
		outDir = cfg.Defaults.OutputDir
	}

	now := time.Now()
	base := filepath.Join(outDir, report.FileBase(result.Name))
	markdownPath := base + ".md"
	pdfPath := base + ".pdf"

	err = report.WriteMarkdown(report.Build(result, now), markdownPath)
	if err != nil {
		return err
	}

	if skipPDF {
		fmt.Printf("Report saved (PDF generation skipped): %s\n", markdownPath)
	} else {
		if getVerbose() {
			fmt.Printf("Rendering %s with pandoc\n", pdfPath)
		}

		err = report.RenderPDF(ctx, markdownPath, pdfPath, cfg.Pandoc.TemplatePath)
		if err != nil {
			return err
		}

		if !keepMarkdown {
			err = report.CleanupMarkdown(markdownPath)
			if err != nil {
				return err
			}
		}
		fmt.Printf("Report saved: %s\n", pdfPath)
	}

	recordProgress(cfg,
		progress.NameAnalyzed{
			Name:  result.Name,
			Score: result.Score,
			Goal:  string(result.Goal),
			Mode:  string(result.Mode),
			At:    now,
		},
		progress.ReportUnlocked{At: now},
	)

	return err
}
