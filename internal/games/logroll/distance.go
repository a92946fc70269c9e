package logroll

import "math"

// Band returns the vertical range the character must stay in.
func (s *Sim) Band() (yMin, yMax float64) {
	return s.grid.Row(s.cfg.Walking.BandRowMin), s.grid.Row(s.cfg.Walking.BandRowMax)
}

// updateMotion derives the direction flags from where the character
// stands in the band. At most one of them is set.
func (s *Sim) updateMotion() {
	st := &s.state
	yMin, yMax := s.Band()
	mid := (yMin + yMax) / 2
	dz := s.cfg.Walking.DeadZone
	y := s.char.Y()

	st.MovingForward = y < mid-dz
	st.MovingBackward = !st.MovingForward && y > mid+dz
	st.Walking = math.Abs(s.log.Angle()) > s.cfg.Balance.WalkTiltThreshold ||
		st.MovingForward || st.MovingBackward
}

// updateDistance moves the lane markers and accounts walked distance.
func (s *Sim) updateDistance() {
	st := &s.state
	if !st.MovingForward && !st.MovingBackward {
		return
	}

	s.lanes.Shift(-st.YInertia)
	step := math.Abs(st.YInertia) / s.cfg.Walking.StepDivisor

	if st.MovingForward {
		st.Walked += step
		st.WalkedBack = math.Max(0, st.WalkedBack-step)
		return
	}
	st.Walked = math.Max(0, st.Walked-step)
	st.WalkedBack += step
}

// updateScore grants the per-unit score for every whole unit of walked
// distance crossed for the first time, with a bonus on the cadence.
func (s *Sim) updateScore() {
	st := &s.state
	for st.Walked >= float64(st.LastScoreAt+1) {
		st.LastScoreAt++
		st.Score += s.cfg.Scoring.PerUnit
		if st.LastScoreAt-st.LastBonusAt >= s.cfg.Scoring.BonusCadence {
			s.applyBonus()
		}
	}
}
