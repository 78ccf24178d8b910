// Package console is the drop-down command line drawn over the arena.
package console

import (
	"strings"
	"unicode/utf8"

	"ball-sandbox/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 36
	prompt    = "> "
	fontSize  = 18
	padding   = 8
	// log lines drawn above the input bar while open
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
	maxLineLen       = 160
	// history entries kept for Up/Down recall
	maxHistory = 50
)

var (
	barColor  = rl.NewColor(40, 40, 40, 255)
	lineColor = rl.NewColor(80, 80, 80, 255)
	backdrop  = rl.NewColor(24, 24, 24, 225)
	hintColor = rl.NewColor(90, 90, 90, 255)
)

const (
	closedHint  = "` console"
	historyNone = -1
)

// Console is toggled with the backtick key and closed with ESC.
// While open it owns the keyboard; Submit receives each entered line.
type Console struct {
	log    *logger.Logger
	submit func(line string)

	// Width and Height are the area the console covers, normally the arena.
	Width, Height int32

	input   string
	open    bool
	history []string
	cursor  int
}

// New returns a closed console that draws log and hands entered lines to submit.
func New(log *logger.Logger, width, height int32, submit func(string)) *Console {
	return &Console{log: log, submit: submit, Width: width, Height: height, cursor: historyNone}
}

// IsOpen reports whether the console is capturing keys.
func (c *Console) IsOpen() bool {
	return c.open
}

// Update handles toggling and, when open, typing, paste, history and enter. Call once per frame.
func (c *Console) Update() {
	if rl.IsKeyPressed(rl.KeyGrave) {
		c.open = !c.open
		c.drainChars()
		return
	}
	if !c.open {
		return
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		c.open = false
		return
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		c.Type(rl.GetClipboardText())
	} else {
		for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
			c.Type(string(rune(ch)))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		c.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		c.Recall(-1)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		c.Recall(1)
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		c.Enter()
	}
}

// drainChars discards the backtick raylib queued alongside the toggle key.
func (c *Console) drainChars() {
	for rl.GetCharPressed() != 0 {
	}
}

// Input returns the current unsubmitted line.
func (c *Console) Input() string {
	return c.input
}

// Type appends s to the input line. Newlines from a paste are dropped.
func (c *Console) Type(s string) {
	c.input += strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
}

// Backspace removes the last rune of the input line.
func (c *Console) Backspace() {
	if c.input == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(c.input)
	c.input = c.input[:len(c.input)-size]
}

// Enter echoes and submits the input line, then clears it. Blank lines are ignored.
func (c *Console) Enter() {
	line := strings.TrimSpace(c.input)
	c.input = ""
	c.cursor = historyNone
	if line == "" {
		return
	}
	c.log.Log(prompt + line)
	if n := len(c.history); n == 0 || c.history[n-1] != line {
		c.history = append(c.history, line)
		if len(c.history) > maxHistory {
			c.history = c.history[len(c.history)-maxHistory:]
		}
	}
	if c.submit != nil {
		c.submit(line)
	}
}

// Recall moves through submitted lines: -1 is older, +1 is newer. Past the newest the input clears.
func (c *Console) Recall(dir int) {
	if len(c.history) == 0 {
		return
	}
	switch {
	case c.cursor == historyNone && dir < 0:
		c.cursor = len(c.history) - 1
	case c.cursor == historyNone:
		return
	default:
		c.cursor += dir
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.cursor >= len(c.history) {
		c.cursor = historyNone
		c.input = ""
		return
	}
	c.input = c.history[c.cursor]
}

// Draw renders the log and input bar when open, or a small hint in the corner when closed.
func (c *Console) Draw() {
	if !c.open {
		rl.DrawText(closedHint, padding, c.Height-fontSize-padding, fontSize, hintColor)
		return
	}
	barY := c.Height - BarHeight
	chatHeight := int32(maxLinesOnScreen*lineHeight + padding)
	chatY := max(barY-chatHeight, 0)
	rl.DrawRectangle(0, chatY, c.Width, barY-chatY, backdrop)

	lines := c.log.Tail(maxLinesOnScreen)
	for i, line := range lines {
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		y := chatY + padding/2 + int32(i*lineHeight)
		rl.DrawText(line, padding, y, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, c.Width, BarHeight, barColor)
	rl.DrawRectangle(0, barY, c.Width, 1, lineColor)
	rl.DrawText(prompt+c.input+"|", padding, barY+(BarHeight-fontSize)/2, fontSize, rl.White)
}
