package physics

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name         string
		in           Body
		wantX, wantY float64
		wantVX       float64
		wantVY       float64
	}{
		{"left wall", NewBody(5, 500, 20, -3, 1, Color{}), 20, 500, 3, 1},
		{"right wall", NewBody(795, 500, 20, 4, 0, Color{}), 780, 500, -4, 0},
		{"top wall", NewBody(300, 2, 10, 1, -2, Color{}), 300, 10, 1, 2},
		{"bottom wall", NewBody(300, 599, 10, 1, 5, Color{}), 300, 590, 1, -5},
		{"corner", NewBody(1, 1, 10, -1, -1, Color{}), 10, 10, 1, 1},
		{"inside", NewBody(400, 300, 50, -7, 7, Color{}), 400, 300, -7, 7},
		{"exactly tangent", NewBody(20, 300, 20, -1, 0, Color{}), 20, 300, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.in
			reflect(&b, 800, 600)
			if b.X != tt.wantX || b.Y != tt.wantY || b.VX != tt.wantVX || b.VY != tt.wantVY {
				t.Fatalf("got pos (%g,%g) vel (%g,%g), want pos (%g,%g) vel (%g,%g)",
					b.X, b.Y, b.VX, b.VY, tt.wantX, tt.wantY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestResolveHeadOnEqualMassSwapsVelocities(t *testing.T) {
	s := newSolver(DefaultConfig())
	b1 := NewBody(0, 0, 10, 1, 0, Color{})
	b2 := NewBody(19, 0, 10, -1, 0, Color{})
	s.resolve(&b1, &b2)
	if !near(b1.VX, -1) || !near(b1.VY, 0) || !near(b2.VX, 1) || !near(b2.VY, 0) {
		t.Fatalf("velocities not swapped: v1=(%g,%g) v2=(%g,%g)", b1.VX, b1.VY, b2.VX, b2.VY)
	}
}

func TestResolveConservesMomentumAndEnergy(t *testing.T) {
	s := newSolver(DefaultConfig())
	b1 := NewBody(0, 0, 20, 3, 1, Color{})
	b2 := NewBody(30, 40, 50, -2, -0.5, Color{})
	px := b1.Mass*b1.VX + b2.Mass*b2.VX
	py := b1.Mass*b1.VY + b2.Mass*b2.VY
	ke := 0.5*b1.Mass*(b1.VX*b1.VX+b1.VY*b1.VY) + 0.5*b2.Mass*(b2.VX*b2.VX+b2.VY*b2.VY)

	s.resolve(&b1, &b2)

	gotPX := b1.Mass*b1.VX + b2.Mass*b2.VX
	gotPY := b1.Mass*b1.VY + b2.Mass*b2.VY
	gotKE := 0.5*b1.Mass*(b1.VX*b1.VX+b1.VY*b1.VY) + 0.5*b2.Mass*(b2.VX*b2.VX+b2.VY*b2.VY)
	if !near(px, gotPX) || !near(py, gotPY) {
		t.Fatalf("momentum changed: (%g,%g) -> (%g,%g)", px, py, gotPX, gotPY)
	}
	if !near(ke, gotKE) {
		t.Fatalf("kinetic energy changed: %g -> %g", ke, gotKE)
	}
}

func TestResolveCoincidentCentresIsSkipped(t *testing.T) {
	s := newSolver(DefaultConfig())
	b1 := NewBody(50, 50, 10, 1, 2, Color{})
	b2 := NewBody(50, 50, 30, -3, 4, Color{})
	want1, want2 := b1, b2
	s.resolve(&b1, &b2)
	if b1 != want1 || b2 != want2 {
		t.Fatalf("coincident pair was modified: %+v %+v", b1, b2)
	}
}

func TestResolveRestingContactSeparates(t *testing.T) {
	s := newSolver(DefaultConfig())
	b1 := NewBody(0, 0, 10, 0, 0, Color{})
	b2 := NewBody(18, 0, 10, 0, 0, Color{})
	s.resolve(&b1, &b2)

	if !near(b1.VX, -0.05) || !near(b2.VX, 0.05) || b1.VY != 0 || b2.VY != 0 {
		t.Fatalf("separation impulse: v1=(%g,%g) v2=(%g,%g)", b1.VX, b1.VY, b2.VX, b2.VY)
	}
	// depth 2 plus 10% bias, split evenly between equal masses
	if !near(b1.X, -1.1) || !near(b2.X, 19.1) {
		t.Fatalf("positional correction: x1=%g x2=%g", b1.X, b2.X)
	}
}

func TestResolveHeavierBodyMovesLess(t *testing.T) {
	s := newSolver(DefaultConfig())
	light := NewBody(0, 0, 10, 0, 0, Color{})
	heavy := NewBody(45, 0, 40, 0, 0, Color{})
	s.resolve(&light, &heavy)

	lightMove := math.Abs(light.X)
	heavyMove := math.Abs(heavy.X - 45)
	if lightMove <= heavyMove {
		t.Fatalf("light moved %g, heavy moved %g", lightMove, heavyMove)
	}
	if !near(lightMove+heavyMove, 5.5) {
		t.Fatalf("total correction %g, want 5.5", lightMove+heavyMove)
	}
	if !near(lightMove, 5.5*4/5) {
		t.Fatalf("light correction %g, want %g", lightMove, 5.5*4/5)
	}
}

func TestBodyMassIsDerived(t *testing.T) {
	b := NewBody(0, 0, 30, 0, 0, Color{})
	if !near(b.Mass, 3) {
		t.Fatalf("mass = %g, want 3", b.Mass)
	}
}
