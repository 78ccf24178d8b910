package render

import (
	"ball-sandbox/internal/kdplot"
	"ball-sandbox/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// circles smaller than this on screen are drawn at this radius so they stay visible
	minScreenRadius = 1.5
	outlineAlpha    = 90
	overlayAlpha    = 70
)

var (
	outlineColor = rl.NewColor(0, 0, 0, outlineAlpha)
	gridColor    = rl.NewColor(120, 120, 120, overlayAlpha)
	borderColor  = rl.NewColor(60, 60, 60, 255)
)

// Arena draws the engine's bodies into the top-left Width×Height pixels of the window,
// one world unit per pixel. With ShowIndex it also draws the active broad-phase structure:
// grid lines for the uniform grid, split lines for the KD-tree.
type Arena struct {
	Width, Height float32
	ShowIndex     bool

	bodies []physics.Body // reused every frame for the KD overlay
}

// NewArena returns an arena renderer for a width×height world.
func NewArena(width, height float64) *Arena {
	return &Arena{Width: float32(width), Height: float32(height)}
}

// Draw renders the arena border, the optional index overlay, then every body as a filled circle.
func (a *Arena) Draw(eng *physics.Engine) {
	if a.ShowIndex {
		a.drawIndex(eng)
	}
	eng.Each(func(_ int, b *physics.Body) {
		center := rl.NewVector2(float32(b.X), float32(b.Y))
		r := math32.Max(float32(b.Radius), minScreenRadius)
		rl.DrawCircleV(center, r, BodyColor(b.Color))
		rl.DrawCircleLines(int32(center.X), int32(center.Y), r, outlineColor)
	})
	rl.DrawRectangleLinesEx(rl.NewRectangle(0, 0, a.Width, a.Height), 1, borderColor)
}

func (a *Arena) drawIndex(eng *physics.Engine) {
	cfg := eng.Config()
	if eng.Strategy() != physics.StrategyKD {
		step := float32(cfg.CellSize)
		for x := step; x < a.Width; x += step {
			rl.DrawLineV(rl.NewVector2(x, 0), rl.NewVector2(x, a.Height), gridColor)
		}
		for y := step; y < a.Height; y += step {
			rl.DrawLineV(rl.NewVector2(0, y), rl.NewVector2(a.Width, y), gridColor)
		}
		return
	}
	a.bodies = a.bodies[:0]
	eng.Each(func(_ int, b *physics.Body) {
		a.bodies = append(a.bodies, *b)
	})
	tree := physics.BuildKDTree(a.bodies)
	bounds := kdplot.Bounds{MaxX: float64(a.Width), MaxY: float64(a.Height)}
	for _, s := range kdplot.Segments(tree, bounds) {
		c := kdplot.VerticalColor
		if s.Axis == 1 {
			c = kdplot.HorizontalColor
		}
		c.A = overlayAlpha
		rl.DrawLineV(rl.NewVector2(float32(s.X1), float32(s.Y1)), rl.NewVector2(float32(s.X2), float32(s.Y2)), c)
	}
}
