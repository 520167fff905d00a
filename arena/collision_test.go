package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreeHitEnemyNeedsThreeBullets(t *testing.T) {
	w := startedWorld(t, DefaultConfig())
	e := w.SpawnEnemyAt(100, 100, &EnemyTypes[2])
	require.Equal(t, 3, e.HP)

	for i := 0; i < 2; i++ {
		b := w.spawnBullet(100, 100, 0, 0)
		assert.False(t, w.BulletHitsEnemy(b, e))
		assert.False(t, b.Active)
		assert.True(t, e.Active)
		assert.Equal(t, 0, w.Score())
	}
	assert.Equal(t, 1, e.HP)

	b := w.spawnBullet(100, 100, 0, 0)
	assert.True(t, w.BulletHitsEnemy(b, e))
	assert.False(t, e.Active)
	assert.Equal(t, 10, w.Score())
	assert.Equal(t, int64(1), w.Stats().KillsByType["fast"])
}

func TestUntypedEnemyDiesInOneHit(t *testing.T) {
	w := startedWorld(t, DefaultConfig())
	e := w.SpawnEnemyAt(100, 100, nil)
	assert.Equal(t, 0, e.HP)

	b := w.spawnBullet(100, 100, 0, 0)
	assert.True(t, w.BulletHitsEnemy(b, e))
	assert.Equal(t, 10, w.Score())
	assert.Equal(t, int64(1), w.Stats().KillsByType["untyped"])
}

func TestDestroyedPairsAreNotResolvedTwice(t *testing.T) {
	w := startedWorld(t, DefaultConfig())
	e := w.SpawnEnemyAt(100, 100, &EnemyTypes[0])
	b := w.spawnBullet(100, 100, 0, 0)

	assert.True(t, w.BulletHitsEnemy(b, e))
	assert.False(t, w.BulletHitsEnemy(b, e))
	assert.False(t, w.PlayerHitsEnemy(e))
	assert.Equal(t, 10, w.Score())
	assert.Equal(t, 100, w.Health())
}

func TestPlayerHitsEnemy(t *testing.T) {
	w := startedWorld(t, DefaultConfig())
	for i := 0; i < 3; i++ {
		e := w.SpawnEnemyAt(100, 100, &EnemyTypes[2])
		assert.False(t, w.PlayerHitsEnemy(e))
		assert.False(t, e.Active)
	}
	assert.Equal(t, 40, w.Health())
	assert.Equal(t, PhasePlaying, w.Phase())
	assert.Equal(t, 0, w.Score())
	assert.Equal(t, int64(60), w.Stats().DamageTaken)
}

func TestLethalHitEndsGame(t *testing.T) {
	w := startedWorld(t, DefaultConfig())
	w.setHealth(15)
	w.SpawnEnemyAt(100, 100, nil)
	w.spawnBullet(300, 300, 0, -400)
	w.SpawnPotionAt(500, 500)
	e := w.SpawnEnemyAt(200, 200, nil)

	assert.True(t, w.PlayerHitsEnemy(e))
	assert.Equal(t, 0, w.Health(), "health is clamped at 0, not 15-20")
	assert.Equal(t, PhaseGameOver, w.Phase())
	assert.Empty(t, w.Enemies())
	assert.Empty(t, w.Bullets())
	assert.Empty(t, w.Potions())
	assert.True(t, w.EnemyTimer().Removed())
	assert.True(t, w.PotionTimer().Removed())
	assert.Equal(t, 1, w.space.Len())
}

func TestPlayerHitsIgnoredOutsidePlaying(t *testing.T) {
	w := startedWorld(t, DefaultConfig())
	e := w.SpawnEnemyAt(100, 100, nil)
	w.Pause()

	assert.False(t, w.PlayerHitsEnemy(e))
	assert.True(t, e.Active)
	assert.Equal(t, 100, w.Health())
}

func TestPotionHealsUpToMax(t *testing.T) {
	w := startedWorld(t, DefaultConfig())

	w.setHealth(50)
	assert.True(t, w.CollectPotion(w.SpawnPotionAt(100, 100)))
	assert.Equal(t, 80, w.Health())

	w.setHealth(90)
	p := w.SpawnPotionAt(100, 100)
	assert.True(t, w.CollectPotion(p))
	assert.Equal(t, 100, w.Health())
	assert.False(t, p.Active)
	assert.False(t, w.CollectPotion(p))
	assert.Equal(t, int64(40), w.Stats().HealingReceived)
	assert.Equal(t, int64(2), w.Stats().PotionsCollected)
}

func TestResolveCollisionsBulletEnemy(t *testing.T) {
	w := startedWorld(t, DefaultConfig())
	e := w.SpawnEnemyAt(100, 100, &EnemyTypes[2])
	far := w.SpawnEnemyAt(1000, 800, &EnemyTypes[2])

	for i := 0; i < 3; i++ {
		w.spawnBullet(100, 100, 0, 0)
		w.ResolveCollisions()
		w.sweep()
		assert.Empty(t, w.Bullets())
	}
	assert.False(t, e.Active)
	assert.True(t, far.Active)
	assert.Equal(t, 3, far.HP)
	assert.Equal(t, 10, w.Score())
}

func TestResolveCollisionsOneEnemyPerBullet(t *testing.T) {
	w := startedWorld(t, DefaultConfig())
	a := w.SpawnEnemyAt(100, 100, nil)
	b := w.SpawnEnemyAt(100, 100, nil)
	w.spawnBullet(100, 100, 0, 0)

	w.ResolveCollisions()
	assert.NotEqual(t, a.Active, b.Active)
	assert.Equal(t, 10, w.Score())
}

func TestResolveCollisionsPlayerContact(t *testing.T) {
	w := startedWorld(t, DefaultConfig())
	p := w.Player()
	for i := 0; i < 3; i++ {
		w.SpawnEnemyAt(p.X, p.Y, nil)
	}
	w.SpawnEnemyAt(100, 100, nil)

	w.ResolveCollisions()
	w.sweep()
	assert.Equal(t, 40, w.Health())
	assert.Len(t, w.Enemies(), 1)
	assert.Equal(t, PhasePlaying, w.Phase())
}

func TestResolveCollisionsLethalContact(t *testing.T) {
	w := startedWorld(t, DefaultConfig())
	p := w.Player()
	w.setHealth(15)
	w.SpawnEnemyAt(p.X, p.Y, nil)
	w.SpawnEnemyAt(p.X, p.Y, nil)
	w.SpawnPotionAt(p.X, p.Y)

	w.ResolveCollisions()
	assert.Equal(t, PhaseGameOver, w.Phase())
	assert.Equal(t, 0, w.Health())
	assert.Empty(t, w.Enemies())
	assert.Empty(t, w.Potions())
	assert.Equal(t, int64(0), w.Stats().PotionsCollected)
}

func TestResolveCollisionsPotion(t *testing.T) {
	w := startedWorld(t, DefaultConfig())
	p := w.Player()
	w.setHealth(90)
	w.SpawnPotionAt(p.X, p.Y)
	w.SpawnPotionAt(100, 100)

	w.ResolveCollisions()
	assert.Equal(t, 100, w.Health())
	assert.Len(t, w.Potions(), 1)
}
