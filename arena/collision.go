package arena

import "go.uber.org/zap"

// BulletHitsEnemy resolves one bullet-enemy overlap. The bullet is always
// destroyed; the enemy loses a hit-point and, at zero, is destroyed and
// rewarded. Returns true when the enemy was killed.
func (w *World) BulletHitsEnemy(bullet, enemy *Entity) bool {
	if bullet == nil || enemy == nil || !bullet.Active || !enemy.Active {
		return false
	}
	w.destroy(bullet)

	if enemy.HP <= 0 {
		enemy.HP = 1
	}
	enemy.HP--
	if enemy.HP > 0 {
		return false
	}
	enemy.HP = 0
	w.destroy(enemy)
	w.addScore(w.cfg.KillReward)
	w.stats.recordKill(enemy)
	w.log.Debug("enemy destroyed", zap.Uint64("id", uint64(enemy.ID)), zap.Int("score", w.score))
	return true
}

// PlayerHitsEnemy resolves one player-enemy overlap. The enemy is destroyed
// regardless of its hit-points and the player takes contact damage; running
// out of health ends the game. Health is clamped at 0, so a lethal hit on 15
// health leaves 0 rather than -5. Returns true when the game ended.
func (w *World) PlayerHitsEnemy(enemy *Entity) bool {
	if enemy == nil || !enemy.Active || w.phase != PhasePlaying {
		return false
	}
	w.destroy(enemy)
	w.setHealth(w.health - w.cfg.ContactDamage)
	w.stats.DamageTaken += int64(w.cfg.ContactDamage)
	w.log.Debug("player hit", zap.Uint64("enemy", uint64(enemy.ID)), zap.Int("health", w.health))
	if w.health <= 0 {
		w.EndGame()
		return true
	}
	return false
}

// CollectPotion resolves one player-potion overlap: the potion is consumed
// and health goes up by its heal amount, capped at the maximum.
func (w *World) CollectPotion(potion *Entity) bool {
	if potion == nil || !potion.Active {
		return false
	}
	w.destroy(potion)
	before := w.health
	w.setHealth(w.health + potion.Heal)
	w.stats.PotionsCollected++
	w.stats.HealingReceived += int64(w.health - before)
	w.log.Debug("potion collected", zap.Uint64("id", uint64(potion.ID)), zap.Int("health", w.health))
	return true
}

// ResolveCollisions dispatches every overlapping pair once, in the order
// bullet-enemy, player-enemy, player-potion. Resolution stops as soon as the
// game is over.
func (w *World) ResolveCollisions() {
	for _, b := range w.bullets {
		if w.phase != PhasePlaying {
			return
		}
		w.space.EachOverlap(b, KindEnemy, func(enemy *Entity) bool {
			w.BulletHitsEnemy(b, enemy)
			return false
		})
	}

	if w.player == nil || !w.player.Active {
		return
	}
	w.space.EachOverlap(w.player, KindEnemy, func(enemy *Entity) bool {
		return !w.PlayerHitsEnemy(enemy)
	})
	if w.phase != PhasePlaying {
		return
	}
	w.space.EachOverlap(w.player, KindPotion, func(potion *Entity) bool {
		w.CollectPotion(potion)
		return true
	})
}
