package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nikogura/namescore/pkg/analysis"
	"github.com/nikogura/namescore/pkg/config"
	"github.com/nikogura/namescore/pkg/progress"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var birthdate string

//nolint:gochecknoglobals // Cobra boilerplate
var goalFlag string

//nolint:gochecknoglobals // Cobra boilerplate
var modeFlag string

//nolint:gochecknoglobals // Cobra boilerplate
var jsonOutput bool

//nolint:gochecknoglobals // Cobra boilerplate
var analyzeCmd = &cobra.Command{
	Use:   "analyze <name>",
	Short: "Analyze a name",
	Long: `Score a name with Pythagorean numerology and, when a generator is configured,
refine the score holistically and suggest better-scoring variations.

Goals: "General Insight", "Career Growth", "Relationships", "Personal Confidence", "Finding my Path"
Modes: personal, brand, baby

Example:
  namescore analyze "Marie Anne Curie"
  namescore analyze "Marie Anne Curie" --birthdate 1867-11-07 --goal "Career Growth"
  namescore analyze "Lumina" --mode brand --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&birthdate, "birthdate", "", "Birthdate (any format with at least 6 digits, e.g. 1989-02-09)")
	analyzeCmd.Flags().StringVar(&goalFlag, "goal", "", "Goal (default from config, else \"General Insight\")")
	analyzeCmd.Flags().StringVar(&modeFlag, "mode", "", "Intent: personal, brand, or baby (default personal)")
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
}

// buildNameRequest resolves goal and mode flags against config defaults.
func buildNameRequest(cfg config.Config, name string) (req analysis.NameRequest, err error) {
	goalInput := goalFlag
	if goalInput == "" {
		goalInput = cfg.Defaults.Goal
	}

	var goal analysis.Goal
	goal, err = analysis.ParseGoal(goalInput)
	if err != nil {
		return req, err
	}

	var mode analysis.Mode
	mode, err = analysis.ParseMode(modeFlag)
	if err != nil {
		return req, err
	}

	req = analysis.NameRequest{
		Name:      name,
		Birthdate: birthdate,
		Goal:      goal,
		Mode:      mode,
	}
	return req, err
}

func runAnalyze(cmd *cobra.Command, args []string) (err error) {
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

	s := startSpinner("Analyzing name...", cfg.Provider != config.ProviderNone && !jsonOutput)
	var result analysis.NameAnalysis
	result, err = analyzer.AnalyzeName(ctx, req)
	s.stopSpinner()
	if err != nil {
		return err
	}

	if jsonOutput {
		err = printJSON(result)
		if err != nil {
			return err
		}
	} else {
		printNameAnalysis(result)
	}

	recordProgress(cfg, progress.NameAnalyzed{
		Name:  result.Name,
		Score: result.Score,
		Goal:  string(result.Goal),
		Mode:  string(result.Mode),
		At:    time.Now(),
	})

	return err
}

func printNameAnalysis(result analysis.NameAnalysis) {
	fmt.Printf("\n%s\n", result.Name)
	fmt.Printf("Score: %d / 100 (%s)\n", result.Score, result.Label)
	if result.Score != result.BaseScore {
		fmt.Printf("Numerology base score: %d\n", result.BaseScore)
	}
	fmt.Printf("\n%s\n", result.ShortRationale)

	core := result.CoreNumbers
	fmt.Printf("\nCore numbers:\n")
	fmt.Printf("  Life Path:   %s (%d pts)\n", showNumber(core.LifePathNumber), result.Breakdown.LifePath)
	fmt.Printf("  Destiny:     %s (%d pts)\n", showNumber(core.DestinyNumber), result.Breakdown.Destiny)
	fmt.Printf("  Soul Urge:   %s (%d pts)\n", showNumber(core.SoulUrgeNumber), result.Breakdown.SoulUrge)
	fmt.Printf("  Personality: %s (%d pts)\n", showNumber(core.PersonalityNumber), result.Breakdown.Personality)

	if result.HolisticRationale != "" && getVerbose() {
		fmt.Printf("\nHolistic analysis:\n  %s\n", result.HolisticRationale)
	}
	if len(result.PositiveTraits) > 0 {
		fmt.Printf("\nPositive traits: %s\n", strings.Join(result.PositiveTraits, ", "))
	}
	if len(result.Challenges) > 0 {
		fmt.Printf("Challenges: %s\n", strings.Join(result.Challenges, ", "))
	}

	if len(result.Suggestions) > 0 {
		fmt.Printf("\nSuggestions:\n")
		for _, s := range result.Suggestions {
			fmt.Printf("  %-24s %3d (numerology %d)  %s\n", s.Name, s.Score, s.NumerologyScore, s.Reason)
		}
	}

	if result.Fallback {
		fmt.Printf("\n(numerology only: no holistic analysis available)\n")
	}
	fmt.Println()
}

func showNumber(n int) (shown string) {
	if n == 0 {
		shown = "-"
		return shown
	}
	shown = fmt.Sprintf("%d", n)
	return shown
}
