package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Resolves the configuration the same way 'play' does and prints it as
YAML. The output is a complete config file that can be edited and passed
back with --config.

Search order:
  --config <path>
  ~/.arcade/configs/catch.yaml
  ./configs/catch.yaml
  embedded defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	data, err := config.MarshalCatch(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
