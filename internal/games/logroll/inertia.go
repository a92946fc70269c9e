package logroll

import "github.com/vovakirdan/logroll/internal/core"

// minKick is the inertia used when the random kick lands on exactly zero.
const minKick = 1e-4

// applyInertia feeds input into the inertia accumulators and commands the
// log spin and the vertical nudge.
func (s *Sim) applyInertia(in core.Input) {
	c := s.cfg.Inertia
	st := &s.state

	// The log never balances itself: a zero inertia gets a random kick,
	// and whatever is there grows every tick.
	if st.XInertia == 0 {
		st.XInertia = (s.rng.Float64() - 0.5) * c.Perturbation
		if st.XInertia == 0 {
			st.XInertia = minKick
		}
	}
	st.XInertia *= c.Growth

	if in.MovingLeft() {
		st.XInertia -= c.XStep
	} else if in.MovingRight() {
		st.XInertia += c.XStep
	}
	s.log.SetAngularVelocity(st.XInertia / c.AngularDivisor)

	if in.MovingUp() {
		st.YInertia -= c.YStep
		s.nudge(-c.VerticalNudge)
	} else if in.MovingDown() {
		st.YInertia += c.YStep
		s.nudge(c.VerticalNudge)
	}
}

// nudge moves the character and the log vertically by dy pixels.
func (s *Sim) nudge(dy float64) {
	s.char.SetPosition(s.char.X(), s.char.Y()+dy)
	s.log.SetPosition(s.log.X(), s.log.Y()+dy)
}

// slaveCharacter drifts the log toward its tilt and keeps the character
// centered on it, rotated with it.
func (s *Sim) slaveCharacter() {
	angle := s.log.Angle()
	x := s.log.X() + angle*s.cfg.Inertia.SlaveFactor

	s.char.SetAngle(angle)
	s.char.SetPosition(x, s.char.Y())
	s.log.SetPosition(x, s.log.Y())
}
