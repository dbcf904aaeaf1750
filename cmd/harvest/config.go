package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/harvest-defense/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.harvest/configs/harvest.yaml or ./configs/harvest.yaml to override it,
or pass a file to 'harvest play --config'.

With --check, a config file is loaded and validated instead.

Examples:
  harvest config > ~/.harvest/configs/harvest.yaml
  harvest config --check ./my-field.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate the given config file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagCheck == "" {
		_, err := out.Write(config.DefaultYAML())
		return err
	}
	if _, err := config.LoadHarvest(flagCheck); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: ok\n", flagCheck)
	return nil
}
