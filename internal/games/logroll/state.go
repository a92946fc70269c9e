package logroll

// Reason records why a run ended.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonWalkedBackTooFar
	ReasonFellOffBand
	ReasonLogTipped
	ReasonGoalReached
)

// String returns a short description of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonWalkedBackTooFar:
		return "walked back too far"
	case ReasonFellOffBand:
		return "fell off the log"
	case ReasonLogTipped:
		return "log tipped over"
	case ReasonGoalReached:
		return "goal reached"
	default:
		return "none"
	}
}

// Failed reports whether the reason is a loss.
func (r Reason) Failed() bool {
	return r != ReasonNone && r != ReasonGoalReached
}

// State is the mutable simulation state. Only Sim.Update changes it.
type State struct {
	XInertia float64 // Lateral input pressure, drives log spin
	YInertia float64 // Vertical input pressure, drives lane speed and distance

	Walked     float64 // Forward distance, never negative
	WalkedBack float64 // Backward distance since last forward progress, never negative
	Score      int

	GameOver bool
	Reason   Reason

	MovingForward  bool
	MovingBackward bool
	Walking        bool // Walk animation active

	// Watermarks in distance units
	LastItemDropAt float64
	LastScoreAt    int
	LastBonusAt    int

	Tick uint64
}
