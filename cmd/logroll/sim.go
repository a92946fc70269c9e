package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/logroll/internal/core"
	"github.com/vovakirdan/logroll/internal/games/logroll"
	"github.com/vovakirdan/logroll/internal/registry"
)

var (
	flagTicks   int
	flagScript  string
	flagMode    string
	flagEvery   int
	flagSummary bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI and log every event to stderr.

Input comes from --script, or from a random stream derived from --seed.
The same seed and script always produce the same run.

Script format: comma separated KEYS*N steps, KEYS from L, R, U, D, P
or "-" for no input, held for N ticks.

Examples:
  logroll sim --seed 42
  logroll sim --seed 42 --script "U*20,LU*5,-*10,RD*8"
  logroll sim --mode logroll_endless --ticks 10000 --summary`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum ticks to simulate")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Input script (default: random input from the seed)")
	simCmd.Flags().StringVar(&flagMode, "mode", "logroll", "Game mode to simulate")
	simCmd.Flags().IntVar(&flagEvery, "every", 60, "Log the state every N ticks at debug level (0 = never)")
	simCmd.Flags().BoolVar(&flagSummary, "summary", false, "Print the final snapshot as YAML to stdout")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "logroll-sim")
	if err != nil {
		return err
	}

	g, err := registry.Create(flagMode)
	if err != nil {
		return err
	}
	game, ok := g.(*logroll.Game)
	if !ok {
		return fmt.Errorf("mode %q cannot run headless", flagMode)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var inputs []core.InputFrame
	if flagScript != "" {
		inputs, err = core.ParseScript(flagScript, flagTicks)
		if err != nil {
			return err
		}
	} else {
		inputs = randomInputs(seed, flagTicks)
	}

	ended := false
	game.SetSessionSink(logroll.SessionSinkFunc(func(r logroll.SessionEnded) {
		logger.Info("session ended", "score", r.Score, "walked", r.Walked, "reason", r.Reason)
		ended = true
	}))

	tick := 0
	game.SetObserver(core.PublisherFunc(func(e core.Event) {
		switch e := e.(type) {
		case logroll.SceneStateChanged:
			if flagEvery > 0 && tick%flagEvery == 0 {
				s := e.Snapshot
				logger.Debug("state", "tick", s.Tick, "score", s.Score, "walked", s.Walked,
					"back", s.WalkedBack, "angle", s.LogAngle, "y", s.YPos)
			}
		case logroll.ItemDropped:
			logger.Info("item dropped", "tick", tick, "kind", e.Kind, "penalty", e.Penalty)
		case logroll.BonusApplied:
			logger.Info("bonus applied", "tick", tick, "amount", e.Amount, "carried", e.Carried)
		}
	}))
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})
	if err := game.ConfigErr(); err != nil {
		return err
	}
	logger.Info("run started", "mode", flagMode, "seed", seed, "ticks", flagTicks)

	for ; tick < flagTicks && !ended; tick++ {
		in := core.NewInputFrame()
		if tick < len(inputs) {
			in = inputs[tick]
		}
		game.Step(in)
	}

	st := game.State()
	logger.Info("run finished", "ticks", tick, "score", st.Score, "walked", st.Walked, "game_over", st.GameOver)

	if flagSummary {
		out, err := yaml.Marshal(game.Snapshot())
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		fmt.Print(string(out))
	}
	return nil
}

// randomInputs holds a random steering and walking choice for a few
// ticks at a time, the way a player taps keys.
func randomInputs(seed int64, n int) []core.InputFrame {
	rng := rand.New(rand.NewSource(seed))
	lateral := []core.Action{core.ActionNone, core.ActionLeft, core.ActionRight}
	vertical := []core.Action{core.ActionNone, core.ActionUp, core.ActionUp, core.ActionDown}

	frames := make([]core.InputFrame, 0, n)
	for len(frames) < n {
		frame := core.NewInputFrame()
		for _, a := range []core.Action{lateral[rng.Intn(len(lateral))], vertical[rng.Intn(len(vertical))]} {
			if a != core.ActionNone {
				frame.Set(a)
			}
		}
		hold := 6 + rng.Intn(25)
		for i := 0; i < hold && len(frames) < n; i++ {
			frames = append(frames, frame.Clone())
		}
	}
	return frames
}
