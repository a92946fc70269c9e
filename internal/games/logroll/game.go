package logroll

import (
	"github.com/vovakirdan/logroll/internal/config"
	"github.com/vovakirdan/logroll/internal/core"
	"github.com/vovakirdan/logroll/internal/grid"
	"github.com/vovakirdan/logroll/internal/physics"
	"github.com/vovakirdan/logroll/internal/registry"
)

// Mode selects between a run with a goal and an endless run.
type Mode int

const (
	ModeClassic Mode = iota
	ModeEndless
)

// Character body size in pixels.
const (
	characterWidth  = 20
	characterHeight = 75
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config values.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

func init() {
	registry.Register("logroll", func() registry.Game { return New() })
	registry.Register("logroll_endless", func() registry.Game { return NewEndless() })
}

// Game runs a Sim against the physics world and adapts it to the registry.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.LogrollConfig
	cfgErr  error

	world     *physics.World
	logBody   *physics.Body
	character *physics.Body
	layout    *grid.Layout
	sim       *Sim

	events   core.Recorder
	observer core.Publisher
	pub      core.Fanout
	sink     SessionSink
	paused bool
	result *SessionEnded
}

// New creates a classic game instance.
func New() *Game {
	return &Game{}
}

// NewEndless creates a game instance without a goal.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "logroll_endless"
	}
	return "logroll"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Log Roll (Endless)"
	}
	return "Log Roll"
}

// SetSessionSink sets an observer for the end of each run. It survives
// Reset.
func (g *Game) SetSessionSink(sink SessionSink) {
	g.sink = sink
}

// SetObserver sets a publisher that sees every event as it is emitted,
// before Step returns them. It survives Reset.
func (g *Game) SetObserver(p core.Publisher) {
	g.observer = p
	g.pub = core.Fanout{&g.events, p}
	if g.sim != nil {
		g.sim.SetPublisher(g.pub)
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.ScreenW <= 0 || runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		runtime.ScreenW, runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	g.runtime = runtime

	// Load game config
	cfg, err := config.Load(configPath)
	g.cfgErr = err

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeEndless {
		cfg.Walking.Goal = 0
	}
	g.cfg = cfg

	if g.sim != nil {
		g.sim.Close()
	}
	g.events.Drain()
	g.paused = false
	g.result = nil

	width := float64(runtime.ScreenW) * cfg.Scene.CellPixelsX
	height := float64(runtime.ScreenH) * cfg.Scene.CellPixelsY
	g.layout = grid.MustNew(cfg.Grid.Columns, cfg.Grid.Rows, width, height, cfg.Anchor())

	g.world = physics.NewWorld(physics.Config{
		Gravity:     cfg.Physics.Gravity,
		FrictionAir: cfg.Physics.FrictionAir,
		SurfaceDrag: cfg.Physics.SurfaceDrag,
	})

	// The character's feet sit in the middle of the band, on top of the log
	yMin := g.layout.Row(cfg.Walking.BandRowMin)
	yMax := g.layout.Row(cfg.Walking.BandRowMax)
	feet := (yMin + yMax) / 2
	cx := g.layout.CenterX()

	g.character = g.world.AddBody(cx, feet, physics.BodyOptions{
		Width:         characterWidth,
		Height:        characterHeight,
		IgnoreGravity: true,
		Sensor:        true,
	})
	g.logBody = g.world.AddBody(cx, feet+cfg.Scene.LogHeight/2, physics.BodyOptions{
		Width:         cfg.Scene.LogWidth,
		Height:        cfg.Scene.LogHeight,
		IgnoreGravity: true,
	})
	g.world.SetPlatform(g.logBody)

	g.sim = NewSim(cfg, Scene{
		Log:       g.logBody,
		Character: g.character,
		Spawner:   g,
		Grid:      g.layout,
	}, runtime.Seed)
	g.pub = core.Fanout{&g.events, g.observer}
	g.sim.SetPublisher(g.pub)
	g.sim.SetSessionSink(SessionSinkFunc(g.sessionEnded))
}

// ConfigErr returns the error from loading the custom config, if any.
// The game falls back to defaults in that case.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// SpawnItem implements Spawner on the physics world.
func (g *Game) SpawnItem(kind ItemKind, x, y float64) Body {
	return g.world.AddBody(x, y, physics.BodyOptions{
		Width:  kind.Width,
		Height: kind.Height,
	})
}

// sessionEnded records the result and forwards it.
func (g *Game) sessionEnded(result SessionEnded) {
	g.result = &result
	if g.sink != nil {
		g.sink.SessionEnded(result)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.sim.State().GameOver {
		g.paused = !g.paused
	}

	if g.paused {
		g.pub.Publish(SceneStateChanged{Snapshot: g.sim.Snapshot()})
		return core.StepResult{State: g.State(), Events: g.events.Drain()}
	}

	// Physics integrates last tick's commands, then the rules read the poses
	g.world.Step()
	g.sim.Update(in, g.runtime.TickSeconds())

	return core.StepResult{State: g.State(), Events: g.events.Drain()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.sim.State()
	return core.GameState{
		Score:    st.Score,
		Walked:   st.Walked,
		GameOver: st.GameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns the current run as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Result returns the final result once the session has ended.
func (g *Game) Result() (SessionEnded, bool) {
	if g.result == nil {
		return SessionEnded{}, false
	}
	return *g.result, true
}

// Sim returns the running simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}
