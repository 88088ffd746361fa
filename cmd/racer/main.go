// racer is a lane racer for the terminal: dodge oncoming cars, collect
// coins, and watch the traffic speed up.
//
// Usage:
//
//	racer play            - Play in this terminal
//	racer serve           - Start SSH server for remote play
//	racer config          - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-racer/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string

	// Game flags shared by play, serve and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Lane Racer - dodge traffic and grab coins in your terminal",
	Long: `Lane Racer is a terminal racing game. Steer along the road, avoid the
oncoming cars and pick up coins. Every five coins make new traffic faster.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective game config

Examples:
  racer play
  racer play --difficulty hard
  racer serve --ssh :2222
  racer config --difficulty easy`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// addGameFlags registers the flags that select the game config.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom racer config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig loads the racer config and applies the difficulty preset.
func loadGameConfig() (config.RacerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RacerConfig{}, err
	}

	cfg, err := config.LoadRacer(flagConfig)
	if err != nil {
		return config.RacerConfig{}, err
	}

	config.ApplyRacerPreset(&cfg, preset)
	return cfg, nil
}

// newLogger creates a structured logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
