package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/nikogura/namescore/pkg/analysis"
	"github.com/nikogura/namescore/pkg/config"
	"github.com/nikogura/namescore/pkg/names"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var batchBirthdate string

//nolint:gochecknoglobals // Cobra boilerplate
var batchSort bool

//nolint:gochecknoglobals // Cobra boilerplate
var batchConcurrency int

//nolint:gochecknoglobals // Cobra boilerplate
var batchJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var batchCmd = &cobra.Command{
	Use:   "batch <file-or-url>",
	Short: "Score a list of names",
	Long: `Score many names with numerology alone. No generator calls are made.

The list can be provided as:
- A file path (e.g., shortlist.txt)
- A URL (e.g., https://example.com/names.txt)

One name per line; blank lines and lines starting with # are ignored.

Example:
  namescore batch shortlist.txt --sort
  namescore batch shortlist.txt --birthdate 2026-10-19 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&batchBirthdate, "birthdate", "", "Birthdate applied to every name")
	batchCmd.Flags().BoolVar(&batchSort, "sort", false, "Sort by score, highest first")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Names scored in parallel (default from config)")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Print the results as JSON")
}

func runBatch(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	concurrency := batchConcurrency
	if concurrency <= 0 {
		concurrency = cfg.GetConcurrency()
	}

	// Batch scoring is deterministic, so it never needs a generator.
	var analyzer *analysis.Analyzer
	analyzer, err = analysis.New(nil, analysis.Options{Concurrency: concurrency, Logger: slog.Default()})
	if err != nil {
		return err
	}

	var list []string
	list, err = names.Load(ctx, args[0])
	if err != nil {
		return err
	}

	if getVerbose() {
		fmt.Printf("Scoring %d names with concurrency %d\n", len(list), concurrency)
	}

	var entries []analysis.BatchEntry
	entries, err = analyzer.AnalyzeBatch(ctx, list, batchBirthdate)
	if err != nil {
		return err
	}

	if batchSort {
		analysis.SortByScore(entries)
	}

	if batchJSON {
		err = printJSON(entries)
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSCORE\tLABEL\tLP\tDESTINY\tSOUL\tPERSONALITY")
	for _, e := range entries {
		if e.Error != "" {
			fmt.Fprintf(w, "%s\t-\terror: %s\t\t\t\t\n", e.Name, e.Error)
			continue
		}
		core := e.Result.CoreNumbers
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%d\t%d\t%d\n", e.Name, e.Result.Score, e.Label,
			showNumber(core.LifePathNumber), core.DestinyNumber, core.SoulUrgeNumber, core.PersonalityNumber)
	}

	err = w.Flush()
	return err
}
