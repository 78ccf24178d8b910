package physics

import (
	"fmt"
	"strings"
)

// Strategy names the broad-phase index the engine rebuilds every substep.
type Strategy string

const (
	StrategyUniform Strategy = "uniform"
	StrategyKD      Strategy = "kd"
)

// ParseStrategy accepts "uniform"/"grid" and "kd"/"kdtree" (case-insensitive).
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform", "grid":
		return StrategyUniform, nil
	case "kd", "kdtree", "kd-tree":
		return StrategyKD, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Label is the human-readable name shown in the control panel.
func (s Strategy) Label() string {
	switch s {
	case StrategyKD:
		return "KD-Tree"
	default:
		return "Uniform Grid"
	}
}

// SpatialIndex answers circular range queries over a snapshot of bodies.
// Results are body handles (indexes into the slice the index was built from),
// appended to dst. Order is not part of the contract.
type SpatialIndex interface {
	QueryRange(cx, cy, r float64, dst []int) []int
}

// buildIndex builds the index for s. Anything that is not StrategyKD gets the grid.
func buildIndex(s Strategy, bodies []Body, cellSize float64) SpatialIndex {
	if s == StrategyKD {
		return BuildKDTree(bodies)
	}
	return BuildGrid(bodies, cellSize)
}

// snapshot is the immutable position record an index keeps per body.
type snapshot struct {
	x, y float64
}

func snapshotOf(bodies []Body) []snapshot {
	out := make([]snapshot, len(bodies))
	for i := range bodies {
		out[i] = snapshot{x: bodies[i].X, y: bodies[i].Y}
	}
	return out
}

// within reports whether p lies inside the closed circle of radius r around (cx, cy).
func (p snapshot) within(cx, cy, r float64) bool {
	dx := p.x - cx
	dy := p.y - cy
	return dx*dx+dy*dy <= r*r
}
