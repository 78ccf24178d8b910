// Package sandbox is the glue between the physics engine and the interactive front end:
// it owns the engine, the pause state and the command set shared by buttons, keys and the console.
package sandbox

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"ball-sandbox/internal/commands"
	"ball-sandbox/internal/logger"
	"ball-sandbox/internal/physics"
	"ball-sandbox/internal/simconfig"
)

// Session is one running sandbox. Every method must be called from the main loop goroutine.
type Session struct {
	Engine *physics.Engine
	cfg    simconfig.Config
	log    *logger.Logger
	paused bool
	// showIndex is read by the renderer to draw grid cells or KD split lines.
	showIndex bool
}

// New builds the engine from cfg, logs config warnings, and spawns cfg.InitialBodies bodies.
func New(cfg simconfig.Config, log *logger.Logger) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	eng, err := physics.NewEngine(cfg.Physics, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		return nil, err
	}
	s := &Session{Engine: eng, cfg: cfg, log: log}
	for _, w := range cfg.Warnings() {
		log.Log("warning: " + w)
	}
	log.Logf("sandbox ready: seed=%d strategy=%s arena=%gx%g", seed, eng.Strategy(), cfg.Physics.Width, cfg.Physics.Height)
	if cfg.InitialBodies > 0 {
		s.Add(cfg.InitialBodies)
	}
	return s, nil
}

// Paused reports whether Update is currently skipping steps.
func (s *Session) Paused() bool {
	return s.paused
}

// TogglePause flips the pause state.
func (s *Session) TogglePause() {
	s.paused = !s.paused
	if s.paused {
		s.log.Log("paused")
	} else {
		s.log.Log("resumed")
	}
}

// ShowIndex reports whether the broad-phase overlay is on.
func (s *Session) ShowIndex() bool {
	return s.showIndex
}

// ToggleIndex flips the broad-phase overlay.
func (s *Session) ToggleIndex() {
	s.showIndex = !s.showIndex
}

// Update advances one frame unless paused. Call once per rendered frame.
func (s *Session) Update() {
	if !s.paused {
		s.Engine.Step()
	}
}

// Add tries to place n bodies and returns how many were placed. Placement failures are logged.
func (s *Session) Add(n int) int {
	placed := 0
	for range n {
		if _, err := s.Engine.AddBody(); err != nil {
			s.log.Log(err.Error())
			continue
		}
		placed++
	}
	if placed > 0 {
		s.log.Logf("added %d body(ies), %d total", placed, s.Engine.Len())
	}
	return placed
}

// Remove drops up to n of the most recent bodies and returns how many were removed.
func (s *Session) Remove(n int) int {
	removed := 0
	for range n {
		if _, err := s.Engine.RemoveBody(); err != nil {
			s.log.Log(err.Error())
			break
		}
		removed++
	}
	if removed > 0 {
		s.log.Logf("removed %d body(ies), %d left", removed, s.Engine.Len())
	}
	return removed
}

// SetStrategy switches the broad-phase index.
func (s *Session) SetStrategy(st physics.Strategy) {
	if st == s.Engine.Strategy() {
		return
	}
	s.Engine.Configure(st)
	s.log.Logf("collision detection: %s", st.Label())
}

// CycleStrategy switches between the grid and the KD-tree.
func (s *Session) CycleStrategy() {
	if s.Engine.Strategy() == physics.StrategyKD {
		s.SetStrategy(physics.StrategyUniform)
		return
	}
	s.SetStrategy(physics.StrategyKD)
}

// Save writes the current configuration (including the active strategy) to path.
func (s *Session) Save(path string) error {
	cfg := s.cfg
	cfg.Physics = s.Engine.Config()
	if err := simconfig.Save(path, cfg); err != nil {
		return err
	}
	s.log.Logf("saved config to %s", path)
	return nil
}

// RegisterCommands installs the sandbox commands on reg.
func (s *Session) RegisterCommands(reg *commands.Registry) {
	addFS := commands.NewFlagSet("add")
	addN := addFS.Int("n", 1, "number of bodies to add")
	reg.Register("add", "[-n N]", addFS, func([]string) error {
		if *addN < 1 {
			return fmt.Errorf("add: -n must be at least 1")
		}
		if s.Add(*addN) == 0 {
			return physics.ErrPlacementFailed
		}
		return nil
	})

	removeFS := commands.NewFlagSet("remove")
	removeN := removeFS.Int("n", 1, "number of bodies to remove")
	reg.Register("remove", "[-n N]", removeFS, func([]string) error {
		if *removeN < 1 {
			return fmt.Errorf("remove: -n must be at least 1")
		}
		if s.Remove(*removeN) == 0 {
			return physics.ErrNoBodies
		}
		return nil
	})

	reg.Register("method", "<uniform|kd>", nil, func(args []string) error {
		if len(args) == 0 {
			s.CycleStrategy()
			return nil
		}
		st, err := physics.ParseStrategy(args[0])
		if err != nil {
			return err
		}
		s.SetStrategy(st)
		return nil
	})

	reg.Register("pause", "", nil, func([]string) error {
		s.TogglePause()
		return nil
	})

	reg.Register("overlay", "", nil, func([]string) error {
		s.ToggleIndex()
		return nil
	})

	reg.Register("step", "[frames]", nil, func(args []string) error {
		frames := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("step: frames must be a positive integer, got %q", args[0])
			}
			frames = n
		}
		for range frames {
			s.Engine.Step()
		}
		return nil
	})

	reg.Register("clear", "", nil, func([]string) error {
		n := s.Engine.Len()
		s.Engine.Clear()
		s.log.Logf("cleared %d body(ies)", n)
		return nil
	})

	saveFS := commands.NewFlagSet("save")
	savePath := saveFS.String("path", simconfig.Path(), "config file to write")
	reg.Register("save", "[-path P]", saveFS, func([]string) error {
		return s.Save(*savePath)
	})

	reg.Register("help", "", nil, func([]string) error {
		for _, line := range reg.Help() {
			s.log.Log(line)
		}
		return nil
	})
}

// Run executes line through reg and logs any error. It returns the error for callers that care.
func Run(reg *commands.Registry, log *logger.Logger, line string) error {
	err := reg.ExecuteLine(line)
	if err != nil && !errors.Is(err, physics.ErrPlacementFailed) && !errors.Is(err, physics.ErrNoBodies) {
		// placement and removal failures were already logged by the session
		log.Log(err.Error())
	}
	return err
}
