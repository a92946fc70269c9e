package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/logroll/internal/core"
	"github.com/vovakirdan/logroll/internal/platform/tui"
	"github.com/vovakirdan/logroll/internal/registry"
)

var (
	flagLogFile string
	flagHold    time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: logroll).

Controls:
  Left/Right, A/D  - Spin the log
  Up/Down, W/S     - Walk forward / back
  P                - Pause
  F2/I             - Debug panel
  R                - Restart (after game over)
  B/Esc            - Back to menu
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Wider drop angle, slower drift
  normal - Config values
  hard   - Narrow drop angle, faster drift

Examples:
  logroll play
  logroll play logroll_endless
  logroll play --difficulty hard --log-file /tmp/logroll.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the mode picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a run ends, press B to come back to the menu.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runTUI("")
	},
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
		cmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHold, "How long a direction stays held after a key press")
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "logroll"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'logroll list' to see available modes", gameID)
	}
	return runTUI(gameID)
}

// runTUI starts the terminal UI, optionally straight into a mode.
func runTUI(gameID string) error {
	out, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer out.Close()

	logger, err := newLogger(out, "logroll")
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		GameID:    gameID,
		SeedFixed: flagSeed != 0,
		Hold:      flagHold,
		Logger:    logger,
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
