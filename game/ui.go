package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"isoshooter/arena"
	"isoshooter/game/controls"
)

var (
	dimColor          = color.RGBA{0, 0, 0, 150}
	panelColor        = color.RGBA{30, 30, 60, 230}
	buttonColor       = color.RGBA{60, 60, 110, 255}
	buttonBorderColor = color.RGBA{200, 200, 255, 255}
	titleColor        = color.RGBA{255, 220, 80, 255}
)

// drawOverlay draws the buttons and panels of the current phase
func (r *Renderer) drawOverlay(screen *ebiten.Image, w *arena.World) {
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	cx := sw / 2

	switch w.Phase() {
	case arena.PhaseNotStarted:
		dim(screen)
		r.drawTextCentered(screen, "ARENA SHOOTER", cx, sh/2-80, titleColor)
		r.drawTextCentered(screen, "WASD / arrows to move, click to shoot, P to pause", cx, sh/2+60, textColor)
	case arena.PhasePaused:
		dim(screen)
		r.drawTextCentered(screen, "PAUSED", cx, sh/2-110, titleColor)
	case arena.PhaseGameOver:
		dim(screen)
		r.drawGameOver(screen, w, cx, sh/2)
	}

	for _, b := range r.layout.Visible(w.Phase()) {
		r.drawButton(screen, b)
	}
}

// drawGameOver shows the final score and the session summary above the restart button
func (r *Renderer) drawGameOver(screen *ebiten.Image, w *arena.World, cx, cy float64) {
	const pw, ph = 420.0, 300.0
	px, py := cx-pw/2, cy-ph
	vector.DrawFilledRect(screen, float32(px), float32(py), pw, ph, panelColor, false)
	vector.StrokeRect(screen, float32(px), float32(py), pw, ph, 2, buttonBorderColor, false)

	s := w.Stats()
	lines := []string{
		fmt.Sprintf("Score: %d", w.Score()),
		fmt.Sprintf("Time: %.1fs", s.PlayTime.Seconds()),
		fmt.Sprintf("Shots: %d", s.ShotsFired),
		fmt.Sprintf("Enemies killed: %d / %d", s.EnemiesKilled, s.EnemiesSpawned),
		fmt.Sprintf("Potions: %d / %d", s.PotionsCollected, s.PotionsSpawned),
		fmt.Sprintf("Damage taken: %d", s.DamageTaken),
	}

	y := py + 30
	r.drawTextCentered(screen, "GAME OVER", cx, y, titleColor)
	y += 36
	for _, line := range lines {
		r.drawTextCentered(screen, line, cx, y, textColor)
		y += 22
	}
}

func (r *Renderer) drawButton(screen *ebiten.Image, b controls.Button) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), buttonColor, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, buttonBorderColor, false)
	r.drawTextCentered(screen, b.Label, b.X+b.W/2, b.Y+b.H/2, textColor)
}

// Helper to darken the whole screen under an overlay
func dim(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), dimColor, false)
}
