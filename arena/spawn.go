package arena

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// Edge identifies one side of the arena
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// EdgePoint returns a uniformly random point on the given edge of a w x h arena
func (w *World) EdgePoint(edge Edge) (x, y float64) {
	switch edge {
	case EdgeLeft:
		return 0, w.rng.Float64() * w.cfg.Height
	case EdgeRight:
		return w.cfg.Width, w.rng.Float64() * w.cfg.Height
	case EdgeTop:
		return w.rng.Float64() * w.cfg.Width, 0
	default:
		return w.rng.Float64() * w.cfg.Width, w.cfg.Height
	}
}

// PotionPoint returns a uniformly random interior point keeping the potion
// margin from every edge. The margin never exceeds half the arena size.
func (w *World) PotionPoint() (x, y float64) {
	mx := math.Min(w.cfg.PotionMargin, w.cfg.Width/2)
	my := math.Min(w.cfg.PotionMargin, w.cfg.Height/2)
	x = mx + w.rng.Float64()*(w.cfg.Width-2*mx)
	y = my + w.rng.Float64()*(w.cfg.Height-2*my)
	return x, y
}

// PotionDelay draws the next potion inter-arrival time, uniform over whole
// milliseconds in [PotionDelayMin, PotionDelayMax]
func (w *World) PotionDelay() time.Duration {
	lo := w.cfg.PotionDelayMin.Milliseconds()
	hi := w.cfg.PotionDelayMax.Milliseconds()
	if hi < lo {
		hi = lo
	}
	return time.Duration(lo+w.rng.Int63n(hi-lo+1)) * time.Millisecond
}

// SpawnEnemy creates one enemy of a random type on a random edge.
// Nothing is spawned outside the Playing phase.
func (w *World) SpawnEnemy() *Entity {
	if w.phase != PhasePlaying {
		return nil
	}
	t := RandomEnemyType(w.rng)
	x, y := w.EdgePoint(Edge(w.rng.Intn(4)))
	e := w.SpawnEnemyAt(x, y, t)
	w.log.Debug("enemy spawned",
		zap.Uint64("id", uint64(e.ID)),
		zap.String("type", t.Name),
		zap.Float64("x", x), zap.Float64("y", y))
	return e
}

// SpawnPotion creates one potion at a random interior point.
// Nothing is spawned outside the Playing phase.
func (w *World) SpawnPotion() *Entity {
	if w.phase != PhasePlaying {
		return nil
	}
	x, y := w.PotionPoint()
	p := w.SpawnPotionAt(x, y)
	w.log.Debug("potion spawned", zap.Uint64("id", uint64(p.ID)), zap.Float64("x", x), zap.Float64("y", y))
	return p
}

// startSpawning arms the enemy trigger and the potion renewal process
func (w *World) startSpawning() {
	w.enemyTimer = w.clock.Every(w.cfg.EnemySpawnPeriod, func() {
		w.SpawnEnemy()
	})
	w.schedulePotion()
}

// schedulePotion arms the next potion firing; every firing draws a new delay
func (w *World) schedulePotion() {
	delay := w.PotionDelay()
	w.potionTimer = w.clock.After(delay, func() {
		w.SpawnPotion()
		if w.phase == PhasePlaying || w.phase == PhasePaused {
			w.schedulePotion()
		}
	})
	if w.phase == PhasePaused && !w.cfg.PotionTimerIgnoresPause {
		w.potionTimer.Pause()
	}
}

// suspendSpawning pauses the enemy trigger and, unless configured otherwise,
// the potion trigger
func (w *World) suspendSpawning() {
	w.enemyTimer.Pause()
	if !w.cfg.PotionTimerIgnoresPause {
		w.potionTimer.Pause()
	}
}

func (w *World) resumeSpawning() {
	w.enemyTimer.Resume()
	w.potionTimer.Resume()
}

// stopSpawning cancels both triggers for good
func (w *World) stopSpawning() {
	w.enemyTimer.Remove()
	w.potionTimer.Remove()
}
