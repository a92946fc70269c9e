// Package registry keeps the playable log roll modes by ID. The logroll
// package registers "logroll" (walk to the goal) and "logroll_endless"
// (no goal) from its init, and the menu, the play command and the
// headless sim all look modes up here.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/logroll/internal/core"
)

// Game is one mode of the log roll game as the hosts drive it. A mode
// never touches the terminal: the TUI feeds it input frames on its own
// tick and draws whatever Render leaves in the screen buffer.
type Game interface {
	// ID is the mode name typed on the command line, e.g. "logroll_endless".
	ID() string

	// Title is the menu label.
	Title() string

	// Reset starts a fresh run sized to the screen and seeded from cfg.
	// Hosts call it on start, on restart and when the terminal resizes.
	Reset(cfg core.RuntimeConfig)

	// Step runs one tick and returns the events it emitted.
	Step(in core.InputFrame) core.StepResult

	// Render draws the playfield and HUD.
	Render(dst *core.Screen)

	// State is the score, distance and game over summary for the host.
	State() core.GameState
}

// GameInfo is a menu entry.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a mode that has not been Reset yet.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu    sync.RWMutex
	modes = make(map[string]entry)
)

// Register adds a mode. A duplicate ID is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := modes[id]; dup {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	modes[id] = entry{factory: f, title: f().Title()}
}

// List returns the modes ordered by ID, so "logroll" comes before
// "logroll_endless" in the menu.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(modes))
	for id, e := range modes {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new instance of the mode.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id names a registered mode.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
