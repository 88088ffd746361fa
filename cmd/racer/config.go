package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-racer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the racer config that play and serve would use, after the search
order and the difficulty preset are applied. The output is valid YAML and
can be saved to ~/.racer/configs/racer.yaml as a starting point.

Config search order:
  1. --config path
  2. ~/.racer/configs/racer.yaml
  3. ./configs/racer.yaml
  4. built-in defaults

Use --defaults to print the built-in defaults file verbatim, comments
included.

Examples:
  racer config
  racer config --defaults
  racer config --difficulty hard > ~/.racer/configs/racer.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	addGameFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file instead of the effective config")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
