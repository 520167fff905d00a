package arena

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// PlayerVelocity turns the four directional keys into a velocity of the
// given speed. Right wins over left and down wins over up when both are held;
// diagonals are normalized so they are not faster than straight moves.
func PlayerVelocity(up, down, left, right bool, speed float64) (vx, vy float64) {
	if left {
		vx = -1
	}
	if right {
		vx = 1
	}
	if up {
		vy = -1
	}
	if down {
		vy = 1
	}
	if vx != 0 && vy != 0 {
		vx /= math.Sqrt2
		vy /= math.Sqrt2
	}
	return vx * speed, vy * speed
}

// BulletVelocity aims a bullet from (fromX, fromY) at (toX, toY).
// A target on the origin shoots straight up.
func BulletVelocity(fromX, fromY, toX, toY, speed float64) (vx, vy float64) {
	dx := toX - fromX
	dy := toY - fromY
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, -speed
	}
	return dx / dist * speed, dy / dist * speed
}

// DepthScale returns the render scale for an entity at height y in an arena
// of height h: minScale+scaleRange at y=0, falling linearly to minScale at y=h.
func DepthScale(y, h, minScale, scaleRange float64) float64 {
	if h <= 0 {
		return 1
	}
	return minScale + scaleRange*(1-y/h)
}

// applyMotion sets this frame's player and enemy velocities
func (w *World) applyMotion(in FrameInput) {
	if w.player == nil || !w.player.Active {
		return
	}
	w.player.SetVelocity(PlayerVelocity(in.Up, in.Down, in.Left, in.Right, w.cfg.PlayerSpeed))

	for _, e := range w.enemies {
		if !e.Active {
			continue
		}
		e.MoveToward(w.player.X, w.player.Y, e.Speed(w.cfg.DefaultEnemySpeed))
	}
}

// Fire spawns a bullet at the player aimed at the pointer position.
// It returns false when not playing, when the cooldown has not elapsed,
// or when there is no player.
func (w *World) Fire(pointerX, pointerY float64) bool {
	if w.phase != PhasePlaying || w.player == nil || !w.player.Active {
		return false
	}
	now := w.clock.Now()
	if w.cfg.FireCooldown > 0 && w.hasFired && now-w.lastFired < w.cfg.FireCooldown {
		w.stats.ShotsBlocked++
		return false
	}
	vx, vy := BulletVelocity(w.player.X, w.player.Y, pointerX, pointerY, w.cfg.BulletSpeed)
	b := w.spawnBullet(w.player.X, w.player.Y, vx, vy)
	w.lastFired = now
	w.hasFired = true
	w.stats.ShotsFired++
	w.log.Debug("bullet fired", zap.Uint64("id", uint64(b.ID)), zap.Float64("vx", vx), zap.Float64("vy", vy))
	return true
}

// LastFired returns the sim time of the last shot and whether any shot was fired
func (w *World) LastFired() (time.Duration, bool) {
	return w.lastFired, w.hasFired
}

// integrate advances positions by dt and keeps the player inside the arena
func (w *World) integrate(dt time.Duration) {
	secs := dt.Seconds()
	for _, e := range w.Entities() {
		e.X += e.VX * secs
		e.Y += e.VY * secs
		if e.Kind == KindPlayer {
			clampToBounds(e, w.cfg.Width, w.cfg.Height)
		}
		w.space.Sync(e)
	}
}

// clampToBounds keeps the whole collision box of e inside [0,w]x[0,h]
func clampToBounds(e *Entity, w, h float64) {
	hw, hh := e.W/2, e.H/2
	e.X = math.Max(hw, math.Min(e.X, w-hw))
	e.Y = math.Max(hh, math.Min(e.Y, h-hh))
}

// cullBullets destroys bullets that left the arena
func (w *World) cullBullets() int {
	n := 0
	for _, b := range w.bullets {
		if b.Active && b.OutOfBounds(w.cfg.Width, w.cfg.Height) {
			w.destroy(b)
			n++
		}
	}
	return n
}

func (w *World) applyDepthScale(e *Entity) {
	if e.DepthScaled {
		e.Scale = DepthScale(e.Y, w.cfg.Height, w.cfg.DepthScaleMin, w.cfg.DepthScaleRange)
	}
}

// applyDepthScaling refreshes the render scale of every depth-scaled entity
func (w *World) applyDepthScaling() {
	for _, e := range w.Entities() {
		w.applyDepthScale(e)
	}
}
