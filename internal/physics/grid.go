package physics

import "math"

// cellKey is an integer cell coordinate. Cells extend to negative coordinates.
type cellKey struct {
	X, Y int
}

// UniformGrid buckets body handles into fixed-size square cells.
// A body is registered in every cell its bounding box touches, so queries
// deduplicate before filtering. Built once per substep and never mutated after.
type UniformGrid struct {
	cellSize float64
	cells    map[cellKey][]int
	points   []snapshot

	// seen[h] == epoch marks h as already collected by the current query.
	seen  []uint32
	epoch uint32
}

// BuildGrid registers every body in the cells overlapped by [x-r, x+r] × [y-r, y+r].
// Handles in query results are indexes into bodies.
func BuildGrid(bodies []Body, cellSize float64) *UniformGrid {
	g := &UniformGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int, len(bodies)),
		points:   snapshotOf(bodies),
		seen:     make([]uint32, len(bodies)),
	}
	for h := range bodies {
		b := &bodies[h]
		minX, maxX := g.cellRange(b.X, b.Radius)
		minY, maxY := g.cellRange(b.Y, b.Radius)
		for cx := minX; cx <= maxX; cx++ {
			for cy := minY; cy <= maxY; cy++ {
				k := cellKey{cx, cy}
				g.cells[k] = append(g.cells[k], h)
			}
		}
	}
	return g
}

// cellRange returns the inclusive cell span covering [v-r, v+r] on one axis.
func (g *UniformGrid) cellRange(v, r float64) (lo, hi int) {
	return g.cellOf(v - r), g.cellOf(v + r)
}

// cellOf floors rather than truncates so -0.5 lands in cell -1, not 0.
func (g *UniformGrid) cellOf(v float64) int {
	return int(math.Floor(v / g.cellSize))
}

// QueryRange appends to dst the handle of every body whose centre lies within r of (cx, cy).
func (g *UniformGrid) QueryRange(cx, cy, r float64, dst []int) []int {
	g.nextEpoch()
	minX, maxX := g.cellRange(cx, r)
	minY, maxY := g.cellRange(cy, r)
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for _, h := range g.cells[cellKey{x, y}] {
				if g.seen[h] == g.epoch {
					continue
				}
				g.seen[h] = g.epoch
				if g.points[h].within(cx, cy, r) {
					dst = append(dst, h)
				}
			}
		}
	}
	return dst
}

// CellCount returns the number of non-empty cells.
func (g *UniformGrid) CellCount() int {
	return len(g.cells)
}

func (g *UniformGrid) nextEpoch() {
	g.epoch++
	if g.epoch == 0 {
		// wrapped; old stamps could collide with the new epoch
		for i := range g.seen {
			g.seen[i] = 0
		}
		g.epoch = 1
	}
}
