package physics

import (
	"math"

	"github.com/vovakirdan/logroll/internal/core"
)

// Config holds the world tuning.
type Config struct {
	Gravity     float64 // Downward acceleration in pixels per step squared
	FrictionAir float64 // Default velocity damping per step for new bodies
	SurfaceDrag float64 // Velocity damping along the platform for resting bodies
}

// DefaultConfig returns tuning close to a 60 FPS arcade feel.
func DefaultConfig() Config {
	return Config{
		Gravity:     0.3,
		FrictionAir: 0.01,
		SurfaceDrag: 0.02,
	}
}

// BodyOptions configures a new body.
type BodyOptions struct {
	Width         float64
	Height        float64
	IgnoreGravity bool
	Sensor        bool    // Never touches the platform
	FrictionAir   float64 // Zero selects the world default
}

// World advances a set of bodies one fixed step at a time.
type World struct {
	cfg      Config
	bodies   []*Body
	platform *Body
	nextID   int
	steps    uint64
}

// NewWorld creates an empty world.
func NewWorld(cfg Config) *World {
	return &World{
		cfg:    cfg,
		bodies: make([]*Body, 0, 16),
	}
}

// AddBody creates a body centered at (x, y).
func (w *World) AddBody(x, y float64, opts BodyOptions) *Body {
	w.nextID++
	friction := opts.FrictionAir
	if friction == 0 {
		friction = w.cfg.FrictionAir
	}
	b := &Body{
		id:            w.nextID,
		x:             x,
		y:             y,
		prevX:         x,
		prevY:         y,
		width:         opts.Width,
		height:        opts.Height,
		frictionAir:   friction,
		ignoreGravity: opts.IgnoreGravity,
		sensor:        opts.Sensor,
	}
	w.bodies = append(w.bodies, b)
	return b
}

// SetPlatform marks a body as the surface other bodies can rest on.
// The platform itself never collides.
func (w *World) SetPlatform(b *Body) {
	w.platform = b
}

// Bodies returns the live bodies in creation order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Steps returns how many times Step has run.
func (w *World) Steps() uint64 {
	return w.steps
}

// Step integrates every body once and drops destroyed ones.
func (w *World) Step() {
	w.steps++

	live := w.bodies[:0]
	for _, b := range w.bodies {
		if b.destroyed {
			continue
		}
		w.integrate(b)
		live = append(live, b)
	}
	// Clear the tail so dropped bodies can be collected
	for i := len(live); i < len(w.bodies); i++ {
		w.bodies[i] = nil
	}
	w.bodies = live

	if w.platform == nil || w.platform.destroyed {
		return
	}
	for _, b := range w.bodies {
		if b == w.platform || b.sensor {
			continue
		}
		w.resolvePlatform(b)
	}
}

// integrate applies gravity, drag, velocity and spin.
func (w *World) integrate(b *Body) {
	if !b.ignoreGravity {
		b.vy += w.cfg.Gravity
	}
	damp := 1 - b.frictionAir
	b.vx *= damp
	b.vy *= damp
	b.prevX, b.prevY = b.x, b.y
	b.x += b.vx
	b.y += b.vy
	b.angle += core.RadToDeg(b.angularVel)
}

// resolvePlatform keeps b on top of the platform surface when its bottom
// edge has sunk into it or passed through it during the step.
func (w *World) resolvePlatform(b *Body) {
	p := w.platform
	b.resting = false

	theta := core.DegToRad(p.angle)
	cos, sin := math.Cos(theta), math.Sin(theta)
	halfW, halfH := p.width/2, p.height/2

	// Bottom center of b in platform-local coordinates
	dx := b.x - p.x
	dy := b.y + b.height/2 - p.y
	u := dx*cos + dy*sin
	v := -dx*sin + dy*cos

	// Bottom center before this step, to catch fast bodies that tunnel
	pdx := b.prevX - p.x
	pdy := b.prevY + b.height/2 - p.y
	vPrev := -pdx*sin + pdy*cos

	if math.Abs(u) > halfW || v < -halfH {
		return
	}
	if v > halfH && vPrev > -halfH {
		return
	}

	// Only catch bodies coming down onto the surface
	vn := -b.vx*sin + b.vy*cos
	if vn < 0 {
		return
	}

	v = -halfH
	bottomX := p.x + u*cos - v*sin
	bottomY := p.y + u*sin + v*cos
	b.x = bottomX
	b.y = bottomY - b.height/2

	// Keep only the tangential part; gravity already in vy makes it slide
	vt := b.vx*cos + b.vy*sin
	vt *= 1 - w.cfg.SurfaceDrag
	b.vx = vt * cos
	b.vy = vt * sin
	b.angle = p.angle
	b.resting = true
}
