// logroll is a terminal balance game: keep a rolling log level and walk
// it forward without falling off.
//
// Usage:
//
//	logroll list              - List game modes
//	logroll play [mode]       - Play a mode (default: logroll)
//	logroll menu              - Start with the mode picker
//	logroll sim               - Run a headless simulation and log its events
//	logroll config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/logroll/internal/config"
	"github.com/vovakirdan/logroll/internal/games/logroll"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "logroll",
	Short: "Log Roll - balance on a rolling log in your terminal",
	Long: `Log Roll is a terminal balance game. You stand on a rolling log:
left/right spins it, up/down walks you forward or back. Keep the tilt
under control and stay on the log until you reach the goal.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  sim      - Headless simulation for replays and tuning
  config   - Print the default configuration

Examples:
  logroll play
  logroll play logroll_endless --difficulty hard
  logroll sim --seed 42 --script "U*20,LU*5,-*10"
  logroll config > ~/.logroll/configs/logroll.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyGameFlags,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGameFlags validates the shared flags and hands them to the game.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	logroll.SetConfigPath(flagConfig)
	logroll.SetDifficultyPreset(flagDifficulty)
	return nil
}
