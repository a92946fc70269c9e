package logroll

// Snapshot is a copy of the run for display mirroring and replay checks.
// Uses primitive types only.
type Snapshot struct {
	Tick           uint64
	Score          int
	Walked         float64
	WalkedBack     float64
	XInertia       float64
	YInertia       float64
	LogAngle       float64
	XPos           float64 // Character position
	YPos           float64
	MovingForward  bool
	MovingBackward bool
	Walking        bool
	GameOver       bool
	Reason         string
	Items          int
	Carried        int
}

// Snapshot returns the current run as a Snapshot.
func (s *Sim) Snapshot() Snapshot {
	st := s.state
	return Snapshot{
		Tick:           st.Tick,
		Score:          st.Score,
		Walked:         st.Walked,
		WalkedBack:     st.WalkedBack,
		XInertia:       st.XInertia,
		YInertia:       st.YInertia,
		LogAngle:       s.log.Angle(),
		XPos:           s.char.X(),
		YPos:           s.char.Y(),
		MovingForward:  st.MovingForward,
		MovingBackward: st.MovingBackward,
		Walking:        st.Walking,
		GameOver:       st.GameOver,
		Reason:         st.Reason.String(),
		Items:          len(s.items),
		Carried:        s.Carried(),
	}
}
