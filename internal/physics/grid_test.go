package physics

import (
	"slices"
	"testing"
)

func TestGridCellOfFloorsNegatives(t *testing.T) {
	g := BuildGrid(nil, 10)
	tests := []struct {
		v    float64
		want int
	}{
		{0, 0},
		{9.99, 0},
		{10, 1},
		{-0.5, -1},
		{-10, -1},
		{-10.01, -2},
	}
	for _, tt := range tests {
		if got := g.cellOf(tt.v); got != tt.want {
			t.Errorf("cellOf(%g) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestGridFindsBodiesStraddlingCells(t *testing.T) {
	tests := []struct {
		name   string
		body   Body
		cx, cy float64
		r      float64
	}{
		{"small body on vertical cell edge", NewBody(119.5, 240.2, 2, 0, 0, Color{}), 119, 240, 5},
		{"small body on cell corner", NewBody(240, 240, 1, 0, 0, Color{}), 241, 239, 2},
		{"query centre in neighbouring cell", NewBody(121, 60, 3, 0, 0, Color{}), 118, 60, 4},
		{"negative coordinates", NewBody(-0.5, -0.5, 1, 0, 0, Color{}), 0.2, 0.2, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := BuildGrid([]Body{tt.body}, 120)
			got := g.QueryRange(tt.cx, tt.cy, tt.r, nil)
			if !slices.Equal(got, []int{0}) {
				t.Fatalf("QueryRange = %v, want [0]", got)
			}
		})
	}
}

func TestGridDeduplicatesMultiCellBodies(t *testing.T) {
	bodies := []Body{
		NewBody(500, 500, 300, 0, 0, Color{}),
		NewBody(510, 505, 5, 0, 0, Color{}),
	}
	g := BuildGrid(bodies, 50)
	if g.CellCount() < 100 {
		t.Fatalf("expected the large body to cover many cells, got %d", g.CellCount())
	}
	for i := 0; i < 3; i++ {
		got := g.QueryRange(500, 500, 400, nil)
		slices.Sort(got)
		if !slices.Equal(got, []int{0, 1}) {
			t.Fatalf("query %d: got %v, want [0 1]", i, got)
		}
	}
}

func TestGridFiltersByCentreDistance(t *testing.T) {
	// Bounding box reaches the query cell but the centre is outside the circle.
	bodies := []Body{NewBody(100, 100, 40, 0, 0, Color{})}
	g := BuildGrid(bodies, 120)
	if got := g.QueryRange(70, 70, 30, nil); len(got) != 0 {
		t.Fatalf("got %v, want nothing", got)
	}
	if got := g.QueryRange(100, 100, 0, nil); !slices.Equal(got, []int{0}) {
		t.Fatalf("zero radius at centre: got %v, want [0]", got)
	}
}

func TestGridEmpty(t *testing.T) {
	g := BuildGrid(nil, 120)
	if got := g.QueryRange(0, 0, 1000, nil); len(got) != 0 {
		t.Fatalf("got %v from empty grid", got)
	}
	if g.CellCount() != 0 {
		t.Fatalf("CellCount = %d, want 0", g.CellCount())
	}
}

func TestGridEpochWrap(t *testing.T) {
	g := BuildGrid([]Body{NewBody(1, 1, 1, 0, 0, Color{})}, 10)
	g.epoch = ^uint32(0) - 1
	for i := 0; i < 4; i++ {
		if got := g.QueryRange(1, 1, 1, nil); len(got) != 1 {
			t.Fatalf("query %d after wrap: got %v", i, got)
		}
	}
}
