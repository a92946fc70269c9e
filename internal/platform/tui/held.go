package tui

import (
	"time"

	"github.com/vovakirdan/logroll/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// direction counts as held until no repeat has arrived for a while.

// DefaultHold is how long a direction stays held after its last press.
// It has to bridge the pause before the terminal starts auto-repeating.
const DefaultHold = 300 * time.Millisecond

// opposite maps each direction to the one it cancels.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// HeldKeys tracks directional actions with a time to live in ticks.
type HeldKeys struct {
	ttl  int
	left map[core.Action]int
}

// NewHeldKeys creates a tracker that holds a direction for the given
// duration at the given tick rate.
func NewHeldKeys(hold time.Duration, tickRate int) *HeldKeys {
	if tickRate <= 0 {
		tickRate = 60
	}
	ttl := int(hold.Seconds() * float64(tickRate))
	if ttl < 1 {
		ttl = 1
	}
	return &HeldKeys{ttl: ttl, left: make(map[core.Action]int)}
}

// Press refreshes a direction and releases its opposite.
// Non-directional actions are ignored.
func (h *HeldKeys) Press(a core.Action) {
	opp, ok := opposite[a]
	if !ok {
		return
	}
	delete(h.left, opp)
	h.left[a] = h.ttl
}

// Apply sets every held direction on the frame and ages them by a tick.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a, n := range h.left {
		frame.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	clear(h.left)
}
