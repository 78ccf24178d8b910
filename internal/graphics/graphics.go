package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window opened by Run.
type Window struct {
	Width, Height int32
	Title         string
	TargetFPS     int32
	Background    rl.Color
}

// Run opens the window and drives the main loop. Each frame it calls update (input and simulation),
// then clears to the background colour and calls draw. Returns when the window is closed.
// The simulation advances once per rendered frame, so TargetFPS is also the simulation rate.
func Run(w Window, update, draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC closes the console, not the sandbox
	rl.SetTargetFPS(w.TargetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(w.Background)
		draw()
		rl.EndDrawing()
	}
}
