package toy

import (
	"fmt"

	"github.com/APeffer/fidgetball/internal/core"
)

const ballGlyph = '●'

// Render draws the playfield border, the ball, and the HUD into the screen
// buffer. Pure read of simulation state; no feedback into physics.
func (t *Toy) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	// Border box around the playfield; the bottom row is the HUD.
	dst.DrawBox(core.NewRect(0, 0, w, core.Max(h-1, 2)))

	// Ball position maps playfield space to screen cells inside the border.
	bx := int(t.ball.X) + 1
	by := int(t.ball.Y) + 1
	bx = core.Clamp(bx, 1, core.Max(w-2, 1))
	by = core.Clamp(by, 1, core.Max(h-3, 1))
	dst.SetCell(bx, by, ballGlyph, t.ball.Color)

	t.renderHUD(dst)
}

// renderHUD writes the live tuning and session stats on the bottom row.
func (t *Toy) renderHUD(dst *core.Screen) {
	h := dst.Height()

	mode := "live"
	if t.tilt.DemoMode() {
		mode = "demo"
	}

	hud := fmt.Sprintf(" %s | bounce %.2f | dial %d | %.0fHz | %s | hits %d",
		mode,
		t.simCfg.Bounciness,
		t.simCfg.FrictionDisplay,
		t.simCfg.PitchHz,
		t.simCfg.Channel,
		t.stats.WallHits,
	)
	if t.paused {
		hud += " | PAUSED"
	}

	dst.DrawTextColored(0, h-1, hud, core.ColorGray)
}
