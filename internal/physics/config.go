package physics

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// SpawnArea is the sub-rectangle AddBody draws integer centres from (bounds inclusive).
type SpawnArea struct {
	MinX int `yaml:"min_x"`
	MaxX int `yaml:"max_x"`
	MinY int `yaml:"min_y"`
	MaxY int `yaml:"max_y"`
}

// Config holds the arena and solver constants. The zero value is not usable; start from DefaultConfig.
type Config struct {
	Width    float64  `yaml:"width"`
	Height   float64  `yaml:"height"`
	CellSize float64  `yaml:"cell_size"`
	Substeps int      `yaml:"substeps"`
	Strategy Strategy `yaml:"strategy"`

	// FrameTime is the simulated duration of one Step, split evenly across substeps.
	FrameTime float64 `yaml:"frame_time"`
	// QueryMargin is added to a body's radius to form its broad-phase query radius.
	// It must exceed the largest radius plus per-substep drift or overlaps can be missed.
	QueryMargin float64 `yaml:"query_margin"`

	PlacementAttempts int       `yaml:"placement_attempts"`
	Spawn             SpawnArea `yaml:"spawn"`
	Radii             []float64 `yaml:"radii"`
	MaxSpeed          int       `yaml:"max_speed"`

	Restitution       float64 `yaml:"restitution"`
	RestingThreshold  float64 `yaml:"resting_threshold"`
	SeparationImpulse float64 `yaml:"separation_impulse"`
	CorrectionBias    float64 `yaml:"correction_bias"`
}

// DefaultConfig returns the stock sandbox: 1200×1000 arena, 120-unit cells, 10 substeps, uniform grid.
func DefaultConfig() Config {
	return Config{
		Width:             1200,
		Height:            1000,
		CellSize:          120,
		Substeps:          10,
		Strategy:          StrategyUniform,
		FrameTime:         1.0,
		QueryMargin:       60,
		PlacementAttempts: 20,
		Spawn:             SpawnArea{MinX: 100, MaxX: 800, MinY: 150, MaxY: 500},
		Radii:             []float64{20, 30, 40, 50},
		MaxSpeed:          10,
		Restitution:       1,
		RestingThreshold:  0.05,
		SeparationImpulse: 0.05,
		CorrectionBias:    0.1,
	}
}

// SubstepDuration is FrameTime / Substeps.
func (c Config) SubstepDuration() float64 {
	return c.FrameTime / float64(c.Substeps)
}

// MaxRadius returns the largest spawn radius.
func (c Config) MaxRadius() float64 {
	if len(c.Radii) == 0 {
		return 0
	}
	return slices.Max(c.Radii)
}

// MinQueryMargin is the smallest margin that still catches a pair of freshly
// spawned bodies at full diagonal speed one substep after the index was built.
// Collisions can raise speeds past MaxSpeed, so this is a floor, not a guarantee.
func (c Config) MinQueryMargin() float64 {
	return c.MaxRadius() + float64(c.MaxSpeed)*math.Sqrt2*c.SubstepDuration()
}

// Validate reports every problem with c joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena must be positive, got %gx%g", c.Width, c.Height))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell_size must be positive, got %g", c.CellSize))
	}
	if c.Substeps <= 0 {
		errs = append(errs, fmt.Errorf("substeps must be positive, got %d", c.Substeps))
	}
	if c.FrameTime <= 0 {
		errs = append(errs, fmt.Errorf("frame_time must be positive, got %g", c.FrameTime))
	}
	if c.QueryMargin < 0 {
		errs = append(errs, fmt.Errorf("query_margin must not be negative, got %g", c.QueryMargin))
	}
	if c.PlacementAttempts <= 0 {
		errs = append(errs, fmt.Errorf("placement_attempts must be positive, got %d", c.PlacementAttempts))
	}
	if c.Spawn.MinX > c.Spawn.MaxX || c.Spawn.MinY > c.Spawn.MaxY {
		errs = append(errs, fmt.Errorf("spawn area is inverted: %+v", c.Spawn))
	}
	if len(c.Radii) == 0 {
		errs = append(errs, errors.New("radii must not be empty"))
	}
	for _, r := range c.Radii {
		if r <= 0 {
			errs = append(errs, fmt.Errorf("radius must be positive, got %g", r))
		}
	}
	if c.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("max_speed must not be negative, got %d", c.MaxSpeed))
	}
	if _, err := ParseStrategy(string(c.Strategy)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
