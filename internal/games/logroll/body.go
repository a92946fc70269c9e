package logroll

// Body is a physically simulated object the simulation commands and reads
// back. Positions are pixels with y growing downward; angles are degrees.
// The physics provider integrates it between updates.
type Body interface {
	X() float64
	Y() float64
	Angle() float64
	SetPosition(x, y float64)
	SetVelocity(vx, vy float64)
	SetAngle(deg float64)
	SetAngularVelocity(v float64)
	// Release hands the body over to free physics motion.
	Release()
	// Destroy removes the body from the physics world.
	Destroy()
}

// Sized is a Body with a horizontal extent.
type Sized interface {
	Body
	Width() float64
}

// Spawner creates item bodies in the physics world.
type Spawner interface {
	SpawnItem(kind ItemKind, x, y float64) Body
}

// ItemKind is an item type and the score weight it carries.
type ItemKind struct {
	Name       string
	Multiplier int
	Width      float64
	Height     float64
}

// Item is an active item owned by the simulation.
type Item struct {
	Kind ItemKind
	Body Body
}
