package logroll

// Event names published by the simulation.
const (
	EventSceneStateChanged = "scene-state-changed"
	EventItemDropped       = "item-dropped"
	EventBonusApplied      = "bonus-applied"
	EventSessionEnded      = "session-ended"
)

// SceneStateChanged carries the state at the end of every update,
// including updates after game over.
type SceneStateChanged struct {
	Snapshot Snapshot
}

// Name implements core.Event.
func (SceneStateChanged) Name() string { return EventSceneStateChanged }

// ItemDropped is published when an item falls out of the playfield.
type ItemDropped struct {
	Kind       string
	Multiplier int
	Penalty    int
}

// Name implements core.Event.
func (ItemDropped) Name() string { return EventItemDropped }

// BonusApplied is published when carried items pay out.
type BonusApplied struct {
	Amount  int
	Carried int // Sum of multipliers that produced the bonus
}

// Name implements core.Event.
func (BonusApplied) Name() string { return EventBonusApplied }

// SessionEnded is published once, a fixed delay after game over.
type SessionEnded struct {
	Score  int
	Walked float64
	Reason Reason
}

// Name implements core.Event.
func (SessionEnded) Name() string { return EventSessionEnded }

// SessionSink is notified exactly once per run with the final result.
type SessionSink interface {
	SessionEnded(result SessionEnded)
}

// SessionSinkFunc adapts a function to SessionSink.
type SessionSinkFunc func(result SessionEnded)

// SessionEnded implements SessionSink.
func (f SessionSinkFunc) SessionEnded(result SessionEnded) { f(result) }
