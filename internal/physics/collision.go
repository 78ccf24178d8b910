package physics

import "math"

// reflect keeps b inside a width×height arena. Each axis is handled on its own:
// a body whose edge crossed a wall is put back tangent to it and that velocity component flips.
func reflect(b *Body, width, height float64) {
	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.VX = -b.VX
	} else if b.X+b.Radius > width {
		b.X = width - b.Radius
		b.VX = -b.VX
	}
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.VY = -b.VY
	} else if b.Y+b.Radius > height {
		b.Y = height - b.Radius
		b.VY = -b.VY
	}
}

// solver holds the response constants for one engine.
type solver struct {
	restitution float64
	resting     float64 // |normal velocity| below this gets a separation kick
	separation  float64
	bias        float64 // fraction of penetration added to the positional correction
}

func newSolver(c Config) solver {
	return solver{
		restitution: c.Restitution,
		resting:     c.RestingThreshold,
		separation:  c.SeparationImpulse,
		bias:        c.CorrectionBias,
	}
}

// resolve applies the impulse response and positional correction to an overlapping pair.
// Coincident centres have no normal and are left alone.
func (s solver) resolve(b1, b2 *Body) {
	dx := b2.X - b1.X
	dy := b2.Y - b1.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	nx := dx / dist
	ny := dy / dist

	relNormal := (b1.VX-b2.VX)*nx + (b1.VY-b2.VY)*ny
	m1, m2 := b1.Mass, b2.Mass
	j := -(1 + s.restitution) * relNormal / (1/m1 + 1/m2)
	b1.VX += j / m1 * nx
	b1.VY += j / m1 * ny
	b2.VX -= j / m2 * nx
	b2.VY -= j / m2 * ny

	// Pure impulses leave resting contacts stuck together; push them apart.
	if math.Abs(relNormal) < s.resting {
		b1.VX -= s.separation * nx
		b1.VY -= s.separation * ny
		b2.VX += s.separation * nx
		b2.VY += s.separation * ny
	}

	depth := (b1.Radius + b2.Radius) - dist
	if depth > 0 {
		push := depth + s.bias*depth
		total := m1 + m2
		c1 := push * m2 / total
		c2 := push * m1 / total
		b1.X -= c1 * nx
		b1.Y -= c1 * ny
		b2.X += c2 * nx
		b2.Y += c2 * ny
	}
}
