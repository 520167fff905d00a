package arena

import "time"

// FrameInput is everything the frontend observed since the previous frame
type FrameInput struct {
	// Directional keys held this frame
	Up, Down, Left, Right bool

	// Pointer position in world coordinates
	PointerX, PointerY float64

	// Fire is set on a primary pointer press that was not taken by the UI
	Fire bool

	// Phase actions
	Start  bool
	Pause  bool
	Resume bool
}

// Step advances the session by one frame of dt. It is the only entry point
// the frontend needs to call per frame:
//
//   - phase actions are applied first;
//   - while playing, timers fire (spawning), velocities are set, positions
//     integrated, stray bullets culled and overlaps resolved, in that order;
//   - while paused only timers that ignore the pause advance;
//   - depth scaling is refreshed in every phase.
func (w *World) Step(dt time.Duration, in FrameInput) {
	switch {
	case in.Start:
		w.Start()
	case in.Pause:
		w.Pause()
	case in.Resume:
		w.Resume()
	}

	switch w.phase {
	case PhasePlaying:
		w.clock.Advance(dt)
		w.applyMotion(in)
		if in.Fire {
			w.Fire(in.PointerX, in.PointerY)
		}
		w.integrate(dt)
		w.cullBullets()
		w.ResolveCollisions()
		w.sweep()
		if w.phase == PhasePlaying {
			w.stats.Frames++
			w.stats.PlayTime += dt
		}
	case PhasePaused:
		w.clock.Advance(dt)
	}

	w.applyDepthScaling()
}
