// Package logroll implements the log roll balance game: a character
// stands on a rolling log, steering it with left/right and walking it
// forward or backward with up/down. The run ends when the log tips, the
// character leaves the walking band, drifts back too far or reaches the
// goal.
//
// Sim holds the per-tick rules and talks to physics only through the
// Body interface. Game wires a Sim to the physics package and the
// registry.
package logroll

import (
	"math/rand"

	"github.com/vovakirdan/logroll/internal/config"
	"github.com/vovakirdan/logroll/internal/core"
	"github.com/vovakirdan/logroll/internal/grid"
)

// Scene holds the collaborators a Sim commands.
type Scene struct {
	Log       Sized
	Character Body
	Spawner   Spawner
	Grid      *grid.Layout
}

// Sim is one run of the game. It is not safe for concurrent use; the host
// loop calls Update once per tick.
type Sim struct {
	cfg     config.LogrollConfig
	log     Sized
	char    Body
	spawner Spawner
	grid    *grid.Layout

	kinds []ItemKind
	items []Item
	lanes *Lanes

	rng  *rand.Rand
	pub  core.Publisher
	sink SessionSink
	end  core.Deferred

	state State
}

// NewSim creates a run. The character should already stand on the log.
func NewSim(cfg config.LogrollConfig, scene Scene, seed int64) *Sim {
	rng := rand.New(rand.NewSource(seed))
	s := &Sim{
		cfg:     cfg,
		log:     scene.Log,
		char:    scene.Character,
		spawner: scene.Spawner,
		grid:    scene.Grid,
		rng:     rng,
		pub:     core.Discard,
	}
	for _, k := range cfg.Items.Kinds {
		s.kinds = append(s.kinds, ItemKind{
			Name:       k.Name,
			Multiplier: k.Multiplier,
			Width:      k.Width,
			Height:     k.Height,
		})
	}
	s.lanes = NewLanes(cfg.Scene.LaneMarkers, scene.Grid.ScreenWidth(), scene.Grid.ScreenHeight(), rng)
	return s
}

// SetPublisher sets where events go. Nil discards them.
func (s *Sim) SetPublisher(p core.Publisher) {
	if p == nil {
		p = core.Discard
	}
	s.pub = p
}

// SetSessionSink sets the observer notified when the run has ended.
func (s *Sim) SetSessionSink(sink SessionSink) {
	s.sink = sink
}

// State returns a copy of the current state.
func (s *Sim) State() State {
	return s.state
}

// Items returns the active items.
func (s *Sim) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Lanes returns the lane markers.
func (s *Sim) Lanes() []Lane {
	return s.lanes.Markers()
}

// Config returns the tuning the run was created with.
func (s *Sim) Config() config.LogrollConfig {
	return s.cfg
}

// Update advances the run by one tick of dt seconds. Rules run in a fixed
// order: inertia and pose commands first, then distance and score, then
// items, then termination. After game over only the deferred session end
// advances.
func (s *Sim) Update(in core.Input, dt float64) {
	defer func() {
		s.pub.Publish(SceneStateChanged{Snapshot: s.Snapshot()})
	}()

	if s.state.GameOver {
		s.end.Advance(dt)
		return
	}

	s.state.Tick++
	s.applyInertia(in)
	s.slaveCharacter()
	s.updateMotion()
	s.updateDistance()
	s.updateScore()
	s.updateItems()
	s.checkTermination()
}

// Ended reports whether the session-ended notification has gone out.
func (s *Sim) Ended() bool {
	return s.end.Fired()
}

// Close destroys every body the run still owns.
func (s *Sim) Close() {
	for _, it := range s.items {
		it.Body.Destroy()
	}
	s.items = nil
}
