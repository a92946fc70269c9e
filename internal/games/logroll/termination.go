package logroll

import "math"

// checkTermination ends the run on the first rule that matches.
func (s *Sim) checkTermination() {
	st := &s.state
	yMin, yMax := s.Band()
	y := s.char.Y()
	goal := s.cfg.Walking.Goal

	switch {
	case st.WalkedBack >= s.cfg.Walking.MaxWalkedBack:
		s.setGameOver(ReasonWalkedBackTooFar)
	case y < yMin || y > yMax:
		s.setGameOver(ReasonFellOffBand)
	case math.Abs(s.log.Angle()) > s.cfg.Balance.DropAngle:
		s.setGameOver(ReasonLogTipped)
	case goal > 0 && st.Walked >= goal:
		s.setGameOver(ReasonGoalReached)
	}
}

// setGameOver freezes the run, lets the log fall and schedules the
// session end.
func (s *Sim) setGameOver(reason Reason) {
	st := &s.state
	if st.GameOver {
		return
	}
	st.GameOver = true
	st.Reason = reason
	st.Walking = false
	s.log.Release()

	s.end.Schedule(s.cfg.Session.EndDelay, func() {
		result := SessionEnded{Score: st.Score, Walked: st.Walked, Reason: st.Reason}
		s.pub.Publish(result)
		if s.sink != nil {
			s.sink.SessionEnded(result)
		}
	})
}
