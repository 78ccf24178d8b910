package simconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ball-sandbox/internal/logger"
	"ball-sandbox/internal/physics"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file location, relative to the process working directory.
const DefaultPath = "config/sim.yaml"

// PathEnv overrides DefaultPath when set.
const PathEnv = "SIM_CONFIG"

// Window holds the sandbox window and control panel layout.
type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	PanelWidth int    `yaml:"panel_width"`
	TargetFPS  int    `yaml:"target_fps"`
	Background string `yaml:"background"` // #RGB or #RRGGBB
}

// Debug toggles the on-screen overlays.
type Debug struct {
	ShowFPS   bool `yaml:"show_fps"`
	ShowStats bool `yaml:"show_stats"`
}

// Config is the whole sandbox configuration file.
type Config struct {
	Window        Window         `yaml:"window"`
	Physics       physics.Config `yaml:"physics"`
	Debug         Debug          `yaml:"debug"`
	Seed          uint64         `yaml:"seed"` // 0 picks a random seed at startup
	InitialBodies int            `yaml:"initial_bodies"`
	LogPath       string         `yaml:"log_path"`
}

// Default returns the stock sandbox: a 1200×1000 white arena with a 260px panel, grid broad phase, no bodies.
func Default() Config {
	return Config{
		Window: Window{
			Title:      "2D Collision with Switchable Spatial Indexes",
			Width:      1200,
			Height:     1000,
			PanelWidth: 260,
			TargetFPS:  60,
			Background: "#ffffff",
		},
		Physics: physics.DefaultConfig(),
		Debug:   Debug{ShowFPS: true, ShowStats: true},
		LogPath: logger.DefaultPath,
	}
}

// Path returns $SIM_CONFIG if set, otherwise DefaultPath.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the YAML file at path over Default(), so omitted keys keep their defaults.
// A missing file is not an error. A malformed or invalid file returns Default() and the error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("simconfig: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("simconfig: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("simconfig: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("simconfig: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("simconfig: encode: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the window section and the physics section.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.PanelWidth < 0 {
		errs = append(errs, fmt.Errorf("panel_width must not be negative, got %d", c.Window.PanelWidth))
	}
	if c.InitialBodies < 0 {
		errs = append(errs, fmt.Errorf("initial_bodies must not be negative, got %d", c.InitialBodies))
	}
	if err := c.Physics.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Warnings lists settings that are legal but risky. The sandbox logs them at startup.
func (c Config) Warnings() []string {
	var out []string
	p := c.Physics
	if p.QueryMargin < p.MinQueryMargin() {
		out = append(out, fmt.Sprintf("query_margin %.1f is below %.1f (largest radius plus one substep of travel at max_speed); fast bodies may pass through each other",
			p.QueryMargin, p.MinQueryMargin()))
	}
	if float64(c.Window.Width) < p.Width || float64(c.Window.Height) < p.Height {
		out = append(out, fmt.Sprintf("window %dx%d is smaller than the %gx%g arena; part of it will be off screen",
			c.Window.Width, c.Window.Height, p.Width, p.Height))
	}
	if float64(p.Spawn.MaxX) > p.Width || float64(p.Spawn.MaxY) > p.Height {
		out = append(out, "spawn area extends past the arena; new bodies will be pushed back by the walls")
	}
	return out
}
