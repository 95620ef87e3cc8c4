package cmd

import (
	"fmt"

	"github.com/nikogura/namescore/pkg/config"
	"github.com/nikogura/namescore/pkg/history"
	"github.com/nikogura/namescore/pkg/progress"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var historyLimit int

//nolint:gochecknoglobals // Cobra boilerplate
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show your streak, badges and recent analyses",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Number of recent analyses to show")
}

func runHistory(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	var store *history.Store
	store, err = history.NewStore(cfg.HistoryPath)
	if err != nil {
		return err
	}

	var p progress.Progress
	p, err = store.Load()
	if err != nil {
		return err
	}

	if getVerbose() {
		fmt.Printf("History file: %s\n", store.Path())
	}

	fmt.Printf("\nCurrent streak:   %d days\n", p.CurrentStreak)
	fmt.Printf("High score:       %d\n", p.HighScore)
	fmt.Printf("Analyses:         %d\n", p.AnalysesCompleted)
	fmt.Printf("Compatibility:    %d\n", p.CompatibilityAnalyses)
	fmt.Printf("Badges unlocked:  %d / %d\n\n", len(p.UnlockedBadgeIDs), len(progress.AllBadges))

	for _, badge := range progress.AllBadges {
		mark := "  "
		if p.HasBadge(badge.ID) {
			mark = "✓ "
		}
		fmt.Printf("  %s%-18s %s\n", mark, badge.Name, badge.Description)
	}

	if len(p.History) == 0 {
		fmt.Printf("\nNo analyses yet. Try: namescore analyze \"Your Name\"\n")
		return err
	}

	fmt.Printf("\nRecent analyses:\n")
	start := 0
	if historyLimit > 0 && len(p.History) > historyLimit {
		start = len(p.History) - historyLimit
	}
	for i := len(p.History) - 1; i >= start; i-- {
		item := p.History[i]
		fmt.Printf("  %s  %3d  %-24s %s / %s\n", item.Date, item.Score, item.Name, item.Goal, item.Mode)
	}
	fmt.Println()

	return err
}
