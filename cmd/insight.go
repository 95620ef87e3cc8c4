package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/nikogura/namescore/pkg/analysis"
	"github.com/nikogura/namescore/pkg/config"
	"github.com/nikogura/namescore/pkg/progress"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var insightBirthdate string

//nolint:gochecknoglobals // Cobra boilerplate
var insightCmd = &cobra.Command{
	Use:   "insight <name>",
	Short: "Show today's numerology insight",
	Long: `Relate your core numbers to today's universal day number.

Checking in on consecutive days builds your streak.

Example:
  namescore insight "Marie Anne Curie" --birthdate 1867-11-07`,
	Args: cobra.ExactArgs(1),
	RunE: runInsight,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(insightCmd)
	insightCmd.Flags().StringVar(&insightBirthdate, "birthdate", "", "Birthdate (any format with at least 6 digits)")
}

func runInsight(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cfg, analyzer, err := setupAnalyzer(ctx)
	if err != nil {
		return err
	}

	s := startSpinner("Consulting the numbers...", cfg.Provider != config.ProviderNone)
	var insight analysis.Insight
	insight, err = analyzer.DailyInsight(ctx, args[0], insightBirthdate)
	s.stopSpinner()
	if err != nil {
		return err
	}

	fmt.Printf("\nUniversal day number: %d\n\n%s\n\n", insight.DayNumber, insight.Text)

	recordProgress(cfg, progress.CheckedIn{At: time.Now()})

	return err
}
