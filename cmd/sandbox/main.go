package main

import (
	"fmt"
	"os"

	"ball-sandbox/internal/commands"
	"ball-sandbox/internal/console"
	"ball-sandbox/internal/debug"
	"ball-sandbox/internal/env"
	"ball-sandbox/internal/graphics"
	"ball-sandbox/internal/logger"
	"ball-sandbox/internal/panel"
	"ball-sandbox/internal/render"
	"ball-sandbox/internal/sandbox"
	"ball-sandbox/internal/simconfig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// shortcuts map keys to console commands while the console is closed.
var shortcuts = []struct {
	key     int32
	command string
}{
	{rl.KeyA, "add"},
	{rl.KeyR, "remove"},
	{rl.KeyM, "method"},
	{rl.KeySpace, "pause"},
	{rl.KeyN, "step"},
	{rl.KeyG, "overlay"},
	{rl.KeyC, "clear"},
}

func main() {
	envErr := env.Load(env.DefaultPath)
	cfg, cfgErr := simconfig.Load(simconfig.Path())
	log := logger.New(cfg.LogPath)
	if envErr != nil {
		log.Log(envErr.Error())
	}
	if cfgErr != nil {
		log.Log("config: " + cfgErr.Error() + " (using defaults)")
	}

	session, err := sandbox.New(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	reg := commands.NewRegistry()
	session.RegisterCommands(reg)
	run := func(line string) { sandbox.Run(reg, log, line) }

	arena := render.NewArena(cfg.Physics.Width, cfg.Physics.Height)
	width := int32(cfg.Window.Width)
	height := int32(cfg.Window.Height)
	ctrl := panel.New(float32(width), float32(cfg.Window.PanelWidth), float32(height), run)
	term := console.New(log, width, height, run)
	dbg := debug.New()
	dbg.ShowFPS = cfg.Debug.ShowFPS
	dbg.ShowStats = cfg.Debug.ShowStats

	update := func() {
		term.Update()
		if !term.IsOpen() {
			for _, s := range shortcuts {
				if rl.IsKeyPressed(s.key) {
					run(s.command)
				}
			}
		}
		ctrl.Update()
		session.Update()
	}
	draw := func() {
		arena.ShowIndex = session.ShowIndex()
		arena.Draw(session.Engine)
		ctrl.Draw(panel.State{
			Strategy:  session.Engine.Strategy(),
			Paused:    session.Paused(),
			ShowIndex: session.ShowIndex(),
		})
		dbg.Draw(int32(ctrl.X)+16, int32(ctrl.Bottom()), debug.Info{
			FPS:      rl.GetFPS(),
			Bodies:   session.Engine.Len(),
			Strategy: session.Engine.Strategy(),
			Stats:    session.Engine.Stats(),
			Paused:   session.Paused(),
		})
		term.Draw()
	}

	bg, ok := render.ParseHexColor(cfg.Window.Background)
	if !ok {
		log.Log("config: bad background colour " + cfg.Window.Background)
	}
	graphics.Run(graphics.Window{
		Width:      width + int32(cfg.Window.PanelWidth),
		Height:     height,
		Title:      cfg.Window.Title,
		TargetFPS:  int32(cfg.Window.TargetFPS),
		Background: bg,
	}, update, draw)
}
