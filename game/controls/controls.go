// Package controls maps raw device state to arena frame input. It owns the
// on-screen button layout so hit-testing and drawing agree.
package controls

import "isoshooter/arena"

// Raw is the device state sampled once per frame
type Raw struct {
	// Directional keys (WASD or arrows)
	Up, Down, Left, Right bool

	// Cursor position in screen coordinates
	CursorX, CursorY float64

	// Pressed is set on a mouse or touch press this frame, at (PressX, PressY)
	Pressed        bool
	PressX, PressY float64

	// Keyboard shortcuts, just-pressed this frame
	StartKey   bool // Enter or Space
	PauseKey   bool // P or Escape
	RestartKey bool // R
	DebugKey   bool // F1
}

// Rect is an axis-aligned screen rectangle
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Button is a clickable labelled rectangle
type Button struct {
	Label string
	Rect
}

// Layout holds the on-screen buttons for a screen size
type Layout struct {
	Start   Button
	Pause   Button
	Resume  Button
	Restart Button
}

// NewLayout places the buttons for a screen of the given size
func NewLayout(screenW, screenH float64) Layout {
	const bw, bh = 200.0, 56.0
	cx := screenW / 2
	cy := screenH / 2
	return Layout{
		Start:   Button{Label: "START", Rect: Rect{X: cx - bw/2, Y: cy - bh/2, W: bw, H: bh}},
		Pause:   Button{Label: "II", Rect: Rect{X: screenW - 56, Y: 16, W: 40, H: 40}},
		Resume:  Button{Label: "RESUME", Rect: Rect{X: cx - bw/2, Y: cy - bh - 8, W: bw, H: bh}},
		Restart: Button{Label: "RESTART", Rect: Rect{X: cx - bw/2, Y: cy + 8, W: bw, H: bh}},
	}
}

// Visible returns the buttons shown in a phase
func (l Layout) Visible(phase arena.Phase) []Button {
	switch phase {
	case arena.PhaseNotStarted:
		return []Button{l.Start}
	case arena.PhasePlaying:
		return []Button{l.Pause}
	case arena.PhasePaused:
		return []Button{l.Resume, l.Restart}
	case arena.PhaseGameOver:
		return []Button{l.Restart}
	}
	return nil
}

// Result is what one frame of device state asks for
type Result struct {
	Frame arena.FrameInput

	// Restart asks the frontend to replace the session with a new one
	Restart bool

	// ToggleDebug flips the debug overlay
	ToggleDebug bool
}

// Resolve maps raw device state to frame input for the current phase.
// A press that lands on a visible button is taken by the UI and never fires.
func Resolve(phase arena.Phase, raw Raw, l Layout) Result {
	res := Result{
		ToggleDebug: raw.DebugKey,
		Frame: arena.FrameInput{
			Up:       raw.Up,
			Down:     raw.Down,
			Left:     raw.Left,
			Right:    raw.Right,
			PointerX: raw.CursorX,
			PointerY: raw.CursorY,
		},
	}
	hit := func(b Button) bool {
		return raw.Pressed && b.Contains(raw.PressX, raw.PressY)
	}

	switch phase {
	case arena.PhaseNotStarted:
		res.Frame.Start = raw.StartKey || hit(l.Start)
	case arena.PhasePlaying:
		switch {
		case raw.PauseKey || hit(l.Pause):
			res.Frame.Pause = true
		case raw.Pressed:
			res.Frame.Fire = true
			res.Frame.PointerX = raw.PressX
			res.Frame.PointerY = raw.PressY
		}
	case arena.PhasePaused:
		switch {
		case raw.RestartKey || hit(l.Restart):
			res.Restart = true
		case raw.PauseKey || hit(l.Resume):
			res.Frame.Resume = true
		}
	case arena.PhaseGameOver:
		res.Restart = raw.RestartKey || raw.StartKey || hit(l.Restart)
	}
	return res
}
