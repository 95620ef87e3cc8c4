package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/nikogura/namescore/pkg/analysis"
	"github.com/nikogura/namescore/pkg/compatibility"
	"github.com/nikogura/namescore/pkg/config"
	"github.com/nikogura/namescore/pkg/progress"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var firstBirthdate string

//nolint:gochecknoglobals // Cobra boilerplate
var secondBirthdate string

//nolint:gochecknoglobals // Cobra boilerplate
var compatJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var compatCmd = &cobra.Command{
	Use:   "compat <name1> <name2>",
	Short: "Score the compatibility of two names",
	Long: `Score how well two people's core numbers harmonize.

Life path carries 40% of the score, destiny 30%, soul urge 20% and personality 10%.

Example:
  namescore compat "Marie Curie" "Pierre Curie"
  namescore compat "Marie Curie" "Pierre Curie" --birthdate1 1867-11-07 --birthdate2 1859-05-15`,
	Args: cobra.ExactArgs(2),
	RunE: runCompat,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(compatCmd)
	compatCmd.Flags().StringVar(&firstBirthdate, "birthdate1", "", "Birthdate of the first person")
	compatCmd.Flags().StringVar(&secondBirthdate, "birthdate2", "", "Birthdate of the second person")
	compatCmd.Flags().BoolVar(&compatJSON, "json", false, "Print the result as JSON")
}

func runCompat(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cfg, analyzer, err := setupAnalyzer(ctx)
	if err != nil {
		return err
	}

	first := compatibility.Person{Name: args[0], Birthdate: firstBirthdate}
	second := compatibility.Person{Name: args[1], Birthdate: secondBirthdate}

	s := startSpinner("Reading the connection...", cfg.Provider != config.ProviderNone && !compatJSON)
	var result analysis.CompatibilityAnalysis
	result, err = analyzer.AnalyzeCompatibility(ctx, first, second)
	s.stopSpinner()
	if err != nil {
		return err
	}

	if compatJSON {
		err = printJSON(result)
		if err != nil {
			return err
		}
	} else {
		fmt.Printf("\n%s & %s\n", result.Names[0], result.Names[1])
		fmt.Printf("Compatibility: %d / 100 (%s)\n\n", result.Score, result.Label)
		fmt.Printf("%s\n\n", result.Title)
		fmt.Printf("Strengths:  %s\n", result.Strengths)
		fmt.Printf("Challenges: %s\n", result.Challenges)
		fmt.Printf("\n%s\n\n", result.Summary)
	}

	recordProgress(cfg, progress.CompatibilityAnalyzed{Score: result.Score, At: time.Now()})

	return err
}
