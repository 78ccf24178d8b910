package physics

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/jinzhu/copier"
)

// StepStats counts broad- and narrow-phase work done by the last Step.
type StepStats struct {
	Candidates int // neighbour pairs returned by the index (each unordered pair once)
	Collisions int // pairs that actually overlapped and were resolved
}

// Engine owns the body list and advances it one frame at a time.
// It is not safe for concurrent use: Step, AddBody, RemoveBody and Configure
// must all be called from the same goroutine.
type Engine struct {
	cfg      Config
	rng      *rand.Rand
	solver   solver
	strategy Strategy
	bodies   []Body

	scratch []int
	stats   StepStats
}

// NewEngine validates cfg and returns an empty engine. rng drives AddBody; pass a seeded
// source for reproducible runs. A nil rng gets a randomly seeded PCG.
func NewEngine(cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("physics: invalid config: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e := &Engine{rng: rng}
	if err := copier.CopyWithOption(&e.cfg, &cfg, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("physics: copy config: %w", err)
	}
	e.solver = newSolver(e.cfg)
	e.strategy = e.cfg.Strategy
	return e, nil
}

// Config returns a copy of the engine's configuration with the current strategy.
func (e *Engine) Config() Config {
	var c Config
	_ = copier.CopyWithOption(&c, &e.cfg, copier.Option{DeepCopy: true})
	c.Strategy = e.strategy
	return c
}

// Configure switches the index rebuilt on the next substep. Bodies are not touched.
func (e *Engine) Configure(s Strategy) {
	e.strategy = s
}

// Strategy returns the active index strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// AddBody tries PlacementAttempts random spots in the spawn area and keeps the first
// that does not touch any existing body. Velocity components of 0 become 1 so no body starts frozen on an axis.
func (e *Engine) AddBody() (Body, error) {
	sp := e.cfg.Spawn
	for range e.cfg.PlacementAttempts {
		x := e.randInt(sp.MinX, sp.MaxX)
		y := e.randInt(sp.MinY, sp.MaxY)
		radius := e.cfg.Radii[e.rng.IntN(len(e.cfg.Radii))]
		vx := e.randInt(-e.cfg.MaxSpeed, e.cfg.MaxSpeed)
		vy := e.randInt(-e.cfg.MaxSpeed, e.cfg.MaxSpeed)
		if vx == 0 {
			vx = 1
		}
		if vy == 0 {
			vy = 1
		}
		c := Color{R: uint8(e.rng.IntN(256)), G: uint8(e.rng.IntN(256)), B: uint8(e.rng.IntN(256))}
		b := NewBody(float64(x), float64(y), radius, float64(vx), float64(vy), c)
		if e.blocked(&b) {
			continue
		}
		e.bodies = append(e.bodies, b)
		return b, nil
	}
	return Body{}, fmt.Errorf("%w after %d attempts", ErrPlacementFailed, e.cfg.PlacementAttempts)
}

// randInt returns an integer in [lo, hi].
func (e *Engine) randInt(lo, hi int) int {
	return lo + e.rng.IntN(hi-lo+1)
}

func (e *Engine) blocked(b *Body) bool {
	for i := range e.bodies {
		if e.bodies[i].overlaps(b) {
			return true
		}
	}
	return false
}

// Spawn appends b as is and returns its handle. Overlap with existing bodies is allowed.
func (e *Engine) Spawn(b Body) (int, error) {
	if !(b.Radius > 0) || !(b.Mass > 0) {
		return -1, fmt.Errorf("%w: radius=%g mass=%g", ErrInvalidBody, b.Radius, b.Mass)
	}
	e.bodies = append(e.bodies, b)
	return len(e.bodies) - 1, nil
}

// RemoveBody drops the most recently added body.
func (e *Engine) RemoveBody() (Body, error) {
	if len(e.bodies) == 0 {
		return Body{}, ErrNoBodies
	}
	last := e.bodies[len(e.bodies)-1]
	e.bodies = e.bodies[:len(e.bodies)-1]
	return last, nil
}

// Clear removes every body.
func (e *Engine) Clear() {
	e.bodies = e.bodies[:0]
}

// Len returns the number of bodies.
func (e *Engine) Len() int {
	return len(e.bodies)
}

// Each calls fn for every body in handle order. fn must not retain the pointer past the call.
func (e *Engine) Each(fn func(h int, b *Body)) {
	for i := range e.bodies {
		fn(i, &e.bodies[i])
	}
}

// Bodies returns a copy of the body list.
func (e *Engine) Bodies() ([]Body, error) {
	out := make([]Body, 0, len(e.bodies))
	if err := copier.CopyWithOption(&out, &e.bodies, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("physics: snapshot bodies: %w", err)
	}
	return out, nil
}

// Stats returns the counters of the last Step.
func (e *Engine) Stats() StepStats {
	return e.stats
}

// Step advances one frame: Substeps rounds of move, wall reflection, index rebuild and pair resolution.
func (e *Engine) Step() {
	e.stats = StepStats{}
	dt := e.cfg.SubstepDuration()
	for range e.cfg.Substeps {
		e.substep(dt)
	}
}

func (e *Engine) substep(dt float64) {
	for i := range e.bodies {
		b := &e.bodies[i]
		b.X += b.VX * dt
		b.Y += b.VY * dt
		reflect(b, e.cfg.Width, e.cfg.Height)
	}

	// The index sees post-move positions; corrections made below do not feed back into it.
	idx := buildIndex(e.strategy, e.bodies, e.cfg.CellSize)
	for i := range e.bodies {
		b := &e.bodies[i]
		e.scratch = idx.QueryRange(b.X, b.Y, b.Radius+e.cfg.QueryMargin, e.scratch[:0])
		// Ascending handles make the resolution order independent of the index.
		slices.Sort(e.scratch)
		for _, j := range e.scratch {
			if j <= i {
				continue
			}
			e.stats.Candidates++
			o := &e.bodies[j]
			if math.Hypot(o.X-b.X, o.Y-b.Y) < b.Radius+o.Radius {
				e.stats.Collisions++
				e.solver.resolve(b, o)
			}
		}
	}
}
