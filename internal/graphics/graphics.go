package graphics

import (
	"physics-sandbox/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the window and drives the main loop. Each frame it calls update (input and physics),
// then clears the screen and calls draw. Returns when the window is closed.
func Run(cfg config.Window, update func(dt float32), draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(cfg.Width, cfg.Height, cfg.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(cfg.TargetFPS)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		draw()
		rl.EndDrawing()
	}
}
