package debug

import (
	"fmt"
	"runtime"

	"ball-sandbox/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 18
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

var statsColor = rl.NewColor(40, 110, 40, 255)

// Info is a per-frame snapshot of what the overlay reports.
type Info struct {
	FPS      int32
	Bodies   int
	Strategy physics.Strategy
	Stats    physics.StepStats
	Paused   bool
}

// Debug draws the stats block. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowStats    bool
	ShowMemAlloc bool

	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Lines formats info for the enabled overlays.
func (d *Debug) Lines(info Info) []string {
	var out []string
	if d.ShowFPS {
		out = append(out, fmt.Sprintf("FPS: %d", info.FPS))
	}
	if d.ShowStats {
		state := "running"
		if info.Paused {
			state = "paused"
		}
		out = append(out,
			fmt.Sprintf("Bodies: %d (%s)", info.Bodies, state),
			"Method: "+info.Strategy.Label(),
			fmt.Sprintf("Candidates: %d", info.Stats.Candidates),
			fmt.Sprintf("Collisions: %d", info.Stats.Collisions),
		)
	}
	if d.ShowMemAlloc {
		mb := float64(d.memStats.Alloc) / (1024 * 1024)
		out = append(out, fmt.Sprintf("Mem: %.2f MiB", mb))
	}
	return out
}

// Draw renders the enabled overlays as a left-aligned block at (x, y).
// Text is only recomputed every updateInterval frames.
func (d *Debug) Draw(x, y int32, info Info) {
	d.frameCount++
	if d.frameCount%updateInterval == 0 || d.lines == nil {
		if d.ShowMemAlloc {
			runtime.ReadMemStats(&d.memStats)
		}
		d.lines = d.Lines(info)
	}
	for i, line := range d.lines {
		rl.DrawText(line, x, y+int32(i*lineHeight), fontSize, statsColor)
	}
}
