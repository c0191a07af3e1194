package debug

import (
	"fmt"

	"physics-sandbox/internal/interaction"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the FPS text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws a small overlay in the top-right corner: FPS and the outcome of the last tap.
type Debug struct {
	ShowFPS     bool
	ShowLastTap bool
	frameCount  uint32
	lastFpsText string
	lastTapText string
}

// New returns an overlay with both lines shown.
func New() *Debug {
	return &Debug{ShowFPS: true, ShowLastTap: true}
}

// RecordTap remembers the outcome of a resolved tap. Ignored events are not recorded.
func (d *Debug) RecordTap(out interaction.Outcome) {
	if out == interaction.Ignored {
		return
	}
	d.lastTapText = "Tap: " + out.String()
}

// LastTap returns the text shown for the last tap, empty before the first one.
func (d *Debug) LastTap() string {
	return d.lastTapText
}

// Draw renders the enabled lines. Call after the scene in the draw loop.
func (d *Debug) Draw() {
	d.frameCount++
	if d.ShowFPS && (d.lastFpsText == "" || d.frameCount%updateInterval == 0) {
		d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, line := range []struct {
		show bool
		text string
	}{
		{d.ShowFPS, d.lastFpsText},
		{d.ShowLastTap, d.lastTapText},
	} {
		if !line.show || line.text == "" {
			continue
		}
		w := rl.MeasureText(line.text, fontSize)
		rl.DrawText(line.text, screenW-w-padding, y, fontSize, rl.DarkGreen)
		y += lineHeight
	}
}
