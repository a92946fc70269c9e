// Package physics is a small fixed-step rigid body world used as the
// physics provider behind the log roll scene. Bodies are axis-free boxes
// with a position, a velocity and a spin; the only contact it resolves is
// bodies resting on one tilted platform.
package physics

import "github.com/vovakirdan/logroll/internal/core"

// Body is a simulated box. Positions are in pixels with y growing
// downward, angles are in degrees, angular velocity is in radians per step.
type Body struct {
	id            int
	x, y          float64
	prevX, prevY  float64
	vx, vy        float64
	angle         float64
	angularVel    float64
	width         float64
	height        float64
	frictionAir   float64
	ignoreGravity bool
	sensor        bool
	destroyed     bool
	resting       bool
}

// ID returns the identifier assigned by the world.
func (b *Body) ID() int { return b.id }

// X returns the horizontal center position.
func (b *Body) X() float64 { return b.x }

// Y returns the vertical center position.
func (b *Body) Y() float64 { return b.y }

// Angle returns the rotation in degrees, clockwise positive.
func (b *Body) Angle() float64 { return b.angle }

// Width returns the unrotated width.
func (b *Body) Width() float64 { return b.width }

// Height returns the unrotated height.
func (b *Body) Height() float64 { return b.height }

// Velocity returns the linear velocity in pixels per step.
func (b *Body) Velocity() core.Vec2 { return core.Vec2{X: b.vx, Y: b.vy} }

// AngularVelocity returns the spin in radians per step.
func (b *Body) AngularVelocity() float64 { return b.angularVel }

// Resting reports whether the body ended the last step on the platform.
func (b *Body) Resting() bool { return b.resting }

// SetPosition teleports the body.
func (b *Body) SetPosition(x, y float64) {
	b.x = x
	b.y = y
	b.prevX = x
	b.prevY = y
}

// SetVelocity replaces the linear velocity.
func (b *Body) SetVelocity(vx, vy float64) {
	b.vx = vx
	b.vy = vy
}

// SetAngle replaces the rotation in degrees.
func (b *Body) SetAngle(deg float64) {
	b.angle = deg
}

// SetAngularVelocity replaces the spin in radians per step.
func (b *Body) SetAngularVelocity(v float64) {
	b.angularVel = v
}

// Release hands the body over to gravity.
func (b *Body) Release() {
	b.ignoreGravity = false
}

// Destroy removes the body from the world on its next step.
func (b *Body) Destroy() {
	b.destroyed = true
}
