package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-racer/internal/core"
	"github.com/vovakirdan/lane-racer/internal/games/racer"
	"github.com/vovakirdan/lane-racer/internal/platform/tui"
	"github.com/vovakirdan/lane-racer/internal/storage"
)

var (
	flagHold    int
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a race in the current terminal.

Controls:
  Arrows/WASD/HJKL - Steer (hold)
  P                - Pause
  R                - Restart (after game over)
  Tab              - Leaderboard (after game over)
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower starting traffic
  normal - Default starting speed
  hard   - Faster starting traffic
  fixed  - Traffic speed never increases

Terminals report key presses but not releases, so a direction stays held
for --hold ticks after its last key repeat.

Examples:
  racer play
  racer play --difficulty hard
  racer play --config ./my-racer.yaml
  racer play --log-file racer.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagHold, "hold", tui.DefaultHoldWindow, "Ticks a direction stays held after a key press")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// Logs would corrupt the alt screen, so they go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "racer")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open leaderboard", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := os.Getenv("USER")
	if player == "" {
		player = "player"
	}

	game := racer.New(racer.WithConfig(gameCfg))
	if err := tui.Run(game, store, cfg,
		tui.WithLogger(logger),
		tui.WithPlayer(player),
		tui.WithHoldWindow(flagHold),
	); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
