// Package panel is the right-hand control panel: buttons that run sandbox commands.
package panel

import (
	"ball-sandbox/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	padding      = 16
	buttonHeight = 40
	buttonGap    = 10
	sectionGap   = 24
	fontSize     = 20
	labelSize    = 16
)

var (
	panelColor   = rl.NewColor(236, 236, 236, 255)
	buttonColor  = rl.NewColor(250, 250, 250, 255)
	hoverColor   = rl.NewColor(220, 232, 250, 255)
	activeColor  = rl.NewColor(66, 133, 244, 255)
	borderColor  = rl.NewColor(160, 160, 160, 255)
	textColor    = rl.NewColor(30, 30, 30, 255)
	mutedColor   = rl.NewColor(100, 100, 100, 255)
	dividerColor = rl.NewColor(200, 200, 200, 255)
)

// State is what the panel needs to know about the sandbox to highlight buttons.
type State struct {
	Strategy  physics.Strategy
	Paused    bool
	ShowIndex bool
}

// Button is one clickable row. Command is the console line it runs.
// Active, when set, reports whether the button is drawn highlighted.
type Button struct {
	Label   string
	Command string
	Bounds  rl.Rectangle
	Active  func(State) bool
}

// Panel lays out buttons in a column starting at X. Clicks are reported through Run.
type Panel struct {
	X, Width, Height float32
	Buttons          []*Button
	// Run is called with a button's Command when it is clicked.
	Run func(command string)

	methodLabelY float32
	hovered      *Button
}

// New lays out the stock sandbox controls: add/remove, the collision method selector, and view toggles.
func New(x, width, height float32, run func(string)) *Panel {
	p := &Panel{X: x, Width: width, Height: height, Run: run}
	y := float32(padding)
	add := func(label, command string, active func(State) bool) {
		p.Buttons = append(p.Buttons, &Button{
			Label:   label,
			Command: command,
			Bounds:  rl.NewRectangle(x+padding, y, width-2*padding, buttonHeight),
			Active:  active,
		})
		y += buttonHeight + buttonGap
	}
	add("Add Ball", "add", nil)
	add("Add 10 Balls", "add -n 10", nil)
	add("Remove Ball", "remove", nil)

	y += sectionGap
	p.methodLabelY = y
	y += labelSize + buttonGap
	add(physics.StrategyUniform.Label(), "method uniform", func(s State) bool { return s.Strategy != physics.StrategyKD })
	add(physics.StrategyKD.Label(), "method kd", func(s State) bool { return s.Strategy == physics.StrategyKD })

	y += sectionGap
	add("Pause", "pause", func(s State) bool { return s.Paused })
	add("Show Index", "overlay", func(s State) bool { return s.ShowIndex })
	add("Clear", "clear", nil)
	return p
}

// ButtonAt returns the button under (x, y), or nil.
func (p *Panel) ButtonAt(x, y float32) *Button {
	for _, b := range p.Buttons {
		r := b.Bounds
		if x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height {
			return b
		}
	}
	return nil
}

// Bottom returns the y just below the last button, where the stats block starts.
func (p *Panel) Bottom() float32 {
	if len(p.Buttons) == 0 {
		return padding
	}
	last := p.Buttons[len(p.Buttons)-1].Bounds
	return last.Y + last.Height + sectionGap
}

// Update tracks hover and runs the command of a clicked button. Call once per frame.
func (p *Panel) Update() {
	m := rl.GetMousePosition()
	p.hovered = p.ButtonAt(m.X, m.Y)
	if p.hovered != nil && rl.IsMouseButtonPressed(rl.MouseButtonLeft) && p.Run != nil {
		p.Run(p.hovered.Command)
	}
}

// Draw renders the panel background, section label and buttons.
func (p *Panel) Draw(s State) {
	rl.DrawRectangle(int32(p.X), 0, int32(p.Width), int32(p.Height), panelColor)
	rl.DrawLine(int32(p.X), 0, int32(p.X), int32(p.Height), dividerColor)
	rl.DrawText("Collision detection", int32(p.X+padding), int32(p.methodLabelY), labelSize, mutedColor)

	for _, b := range p.Buttons {
		active := b.Active != nil && b.Active(s)
		bg, fg := buttonColor, textColor
		switch {
		case active:
			bg, fg = activeColor, rl.White
		case b == p.hovered:
			bg = hoverColor
		}
		rl.DrawRectangleRec(b.Bounds, bg)
		rl.DrawRectangleLinesEx(b.Bounds, 1, borderColor)
		w := rl.MeasureText(b.Label, fontSize)
		tx := int32(b.Bounds.X) + (int32(b.Bounds.Width)-w)/2
		ty := int32(b.Bounds.Y) + (buttonHeight-fontSize)/2
		rl.DrawText(b.Label, tx, ty, fontSize, fg)
	}
}
