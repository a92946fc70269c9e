package logroll

import "math/rand"

// Lane is a visual marker on the ground. It has no physics.
type Lane struct {
	X, Y float64
}

// Lanes scroll vertically inside a band in the lower part of the
// playfield and wrap at its edges.
type Lanes struct {
	markers []Lane
	top     float64
	area    float64
}

// NewLanes spreads n markers evenly over the band at random columns.
func NewLanes(n int, width, height float64, rng *rand.Rand) *Lanes {
	area := height / 2
	l := &Lanes{
		top:  area * 1.3,
		area: area,
	}
	for i := 0; i < n; i++ {
		l.markers = append(l.markers, Lane{
			X: rng.Float64() * width,
			Y: area/float64(n)*float64(i) + l.top,
		})
	}
	return l
}

// Shift moves every marker by dy, wrapping at the band edges.
func (l *Lanes) Shift(dy float64) {
	bottom := l.top + l.area
	for i := range l.markers {
		m := &l.markers[i]
		m.Y += dy
		if m.Y > bottom {
			m.Y = l.top
		} else if m.Y < l.top {
			m.Y = bottom
		}
	}
}

// Markers returns a copy of the marker positions.
func (l *Lanes) Markers() []Lane {
	out := make([]Lane, len(l.markers))
	copy(out, l.markers)
	return out
}
