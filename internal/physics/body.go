package physics

// Color is the display tag of a body. The engine never reads it.
type Color struct {
	R, G, B uint8
}

// Body is one simulated circle: position, velocity, radius and mass (radius / 10).
// Radius and Mass are fixed at creation; the engine only ever changes position and velocity.
type Body struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Mass   float64
	Color  Color
}

// massPerRadius is the density rule used for every body: mass = radius / 10.
const massPerRadius = 0.1

// NewBody returns a body at (x, y) with the given radius and velocity. Mass is derived from radius.
func NewBody(x, y, radius, vx, vy float64, c Color) Body {
	return Body{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Radius: radius,
		Mass:   radius * massPerRadius,
		Color:  c,
	}
}

// overlaps reports whether b and o are closer than the sum of their radii.
func (b *Body) overlaps(o *Body) bool {
	dx := o.X - b.X
	dy := o.Y - b.Y
	sum := b.Radius + o.Radius
	return dx*dx+dy*dy <= sum*sum
}
