package cmd

import (
	"fmt"

	"github.com/nikogura/namescore/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long: `Create a default config file at $HOME/.namescore/config.json (or --config).

Edit it to add your Anthropic or Gemini API key, or set "provider" to "none"
to use deterministic numerology only. ANTHROPIC_API_KEY, GEMINI_API_KEY and
NAMESCORE_PROVIDER override the file, and are also read from a .env file.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	err = config.InitConfig(getConfigFile())
	if err != nil {
		return err
	}

	path := getConfigFile()
	if path == "" {
		path = "$HOME/.namescore/config.json"
	}
	fmt.Printf("Created %s\n", path)

	return err
}
