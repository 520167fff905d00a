package arena

import "go.uber.org/zap"

// Start moves NotStarted to Playing and arms the spawn triggers
func (w *World) Start() bool {
	if w.phase != PhaseNotStarted {
		return false
	}
	w.setPhase(PhasePlaying)
	w.startSpawning()
	return true
}

// Pause moves Playing to Paused. Simulation stepping and the enemy trigger
// are suspended until Resume.
func (w *World) Pause() bool {
	if w.phase != PhasePlaying {
		return false
	}
	w.setPhase(PhasePaused)
	w.suspendSpawning()
	return true
}

// Resume moves Paused back to Playing
func (w *World) Resume() bool {
	if w.phase != PhasePaused {
		return false
	}
	w.setPhase(PhasePlaying)
	w.resumeSpawning()
	return true
}

// TogglePause pauses a running game or resumes a paused one
func (w *World) TogglePause() bool {
	if w.phase == PhasePaused {
		return w.Resume()
	}
	return w.Pause()
}

// EndGame moves Playing to GameOver: spawning is cancelled, the player stops
// and every enemy, bullet and potion is removed.
func (w *World) EndGame() bool {
	if w.phase != PhasePlaying {
		return false
	}
	w.setPhase(PhaseGameOver)
	w.stopSpawning()

	if w.player != nil {
		w.player.SetVelocity(0, 0)
	}
	for _, group := range [][]*Entity{w.enemies, w.bullets, w.potions} {
		for _, e := range group {
			w.destroy(e)
		}
	}
	w.sweep()

	w.log.Info("game over",
		zap.Int("score", w.score),
		zap.Any("stats", w.stats.Snapshot()))
	return true
}

func (w *World) setPhase(p Phase) {
	w.log.Info("phase changed", zap.Stringer("from", w.phase), zap.Stringer("to", p))
	w.phase = p
}
