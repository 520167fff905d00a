package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"isoshooter/game/controls"
)

// Input samples keyboard, mouse and touch state once per update
type Input struct {
	touches []ebiten.TouchID
}

// NewInput creates a new input sampler
func NewInput() *Input {
	return &Input{
		touches: make([]ebiten.TouchID, 0, 4),
	}
}

// Poll returns the device state for this frame
func (in *Input) Poll() controls.Raw {
	var raw controls.Raw

	raw.Left = anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA)
	raw.Right = anyPressed(ebiten.KeyArrowRight, ebiten.KeyD)
	raw.Up = anyPressed(ebiten.KeyArrowUp, ebiten.KeyW)
	raw.Down = anyPressed(ebiten.KeyArrowDown, ebiten.KeyS)

	cx, cy := ebiten.CursorPosition()
	raw.CursorX, raw.CursorY = float64(cx), float64(cy)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		raw.Pressed = true
		raw.PressX, raw.PressY = raw.CursorX, raw.CursorY
	}
	// A touch counts as a press at the touch point
	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	if !raw.Pressed && len(in.touches) > 0 {
		tx, ty := ebiten.TouchPosition(in.touches[0])
		raw.Pressed = true
		raw.PressX, raw.PressY = float64(tx), float64(ty)
		raw.CursorX, raw.CursorY = raw.PressX, raw.PressY
	}

	raw.StartKey = anyJustPressed(ebiten.KeyEnter, ebiten.KeySpace)
	raw.PauseKey = anyJustPressed(ebiten.KeyP, ebiten.KeyEscape)
	raw.RestartKey = anyJustPressed(ebiten.KeyR)
	raw.DebugKey = anyJustPressed(ebiten.KeyF1)
	return raw
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
