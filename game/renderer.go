package game

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"isoshooter/arena"
	"isoshooter/game/controls"
)

var (
	backgroundColor = color.RGBA{20, 20, 40, 255} // Dark blue
	playerColor     = color.RGBA{240, 240, 240, 255}
	bulletColor     = color.RGBA{255, 255, 0, 255}
	potionColor     = color.RGBA{255, 80, 200, 255}
	untypedColor    = color.RGBA{255, 0, 0, 255}
	hitboxColor     = color.RGBA{0, 255, 255, 160}
	textColor       = color.RGBA{255, 255, 255, 255}
)

// Renderer draws a world snapshot; it never mutates the world
type Renderer struct {
	face   text.Face
	layout controls.Layout
	order  []*arena.Entity
}

// NewRenderer creates a new renderer using the given button layout
func NewRenderer(layout controls.Layout) *Renderer {
	return &Renderer{
		face:   text.NewGoXFace(basicfont.Face7x13),
		layout: layout,
		order:  make([]*arena.Entity, 0, 128),
	}
}

// Render draws the arena, the HUD and the overlay of the current phase
func (r *Renderer) Render(screen *ebiten.Image, w *arena.World, debug *DebugState, tps float64) {
	screen.Fill(backgroundColor)

	// Entities further up are drawn first so nearer ones overlap them
	r.order = append(r.order[:0], w.Entities()...)
	sort.SliceStable(r.order, func(i, j int) bool { return r.order[i].Y < r.order[j].Y })
	for _, e := range r.order {
		r.RenderEntity(screen, e)
		if debug.ShowHitboxes {
			r.renderHitbox(screen, e)
		}
	}

	r.drawHUD(screen, w)
	r.drawOverlay(screen, w)
	if debug.ShowStats {
		r.drawDebugStats(screen, w, tps)
	}
}

// RenderEntity draws one entity as a rectangle at its render scale
func (r *Renderer) RenderEntity(screen *ebiten.Image, e *arena.Entity) {
	w := e.W * e.Scale
	h := e.H * e.Scale
	vector.DrawFilledRect(screen,
		float32(e.X-w/2), float32(e.Y-h/2), float32(w), float32(h),
		entityColor(e), false)
}

func (r *Renderer) renderHitbox(screen *ebiten.Image, e *arena.Entity) {
	vector.StrokeRect(screen,
		float32(e.X-e.W/2), float32(e.Y-e.H/2), float32(e.W), float32(e.H),
		1, hitboxColor, false)
}

func entityColor(e *arena.Entity) color.Color {
	switch e.Kind {
	case arena.KindPlayer:
		return playerColor
	case arena.KindEnemy:
		if e.Type != nil {
			return e.Type.Color
		}
		return untypedColor
	case arena.KindBullet:
		return bulletColor
	case arena.KindPotion:
		return potionColor
	default:
		return textColor
	}
}

// drawHUD shows score and health in the top-left corner
func (r *Renderer) drawHUD(screen *ebiten.Image, w *arena.World) {
	r.drawText(screen, fmt.Sprintf("Score: %d", w.Score()), 16, 16, textColor)
	r.drawText(screen, fmt.Sprintf("Health: %d", w.Health()), 16, 36, textColor)
}

func (r *Renderer) drawDebugStats(screen *ebiten.Image, w *arena.World, tps float64) {
	s := w.Stats()
	lines := []string{
		fmt.Sprintf("session %s", w.SessionID()),
		fmt.Sprintf("phase %s  t=%.1fs", w.Phase(), w.Clock().Now().Seconds()),
		fmt.Sprintf("enemies %d  bullets %d  potions %d", len(w.Enemies()), len(w.Bullets()), len(w.Potions())),
		fmt.Sprintf("next enemy %.2fs  next potion %.2fs", w.EnemyTimer().Remaining().Seconds(), w.PotionTimer().Remaining().Seconds()),
		fmt.Sprintf("frames %d  tps %.0f  actual %.0f", s.Frames, tps, ebiten.ActualTPS()),
	}
	y := float64(screen.Bounds().Dy()) - 16*float64(len(lines)) - 8
	for _, line := range lines {
		r.drawText(screen, line, 16, y, hitboxColor)
		y += 16
	}
}

// Helper to draw text with its top-left corner at (x, y)
func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, r.face, op)
}

// Helper to draw text centered on (cx, cy)
func (r *Renderer) drawTextCentered(screen *ebiten.Image, s string, cx, cy float64, clr color.Color) {
	tw, th := text.Measure(s, r.face, 0)
	r.drawText(screen, s, cx-tw/2, cy-th/2, clr)
}
