package arena

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlappingContainedBodies(t *testing.T) {
	tests := []struct {
		name   string
		outer  Kind
		ow, oh float64
		inner  Kind
		iw, ih float64
		dx, dy float64
	}{
		{name: "bullet inside enemy", outer: KindEnemy, ow: EnemyW, oh: EnemyH, inner: KindBullet, iw: BulletW, ih: BulletH},
		{name: "enemy inside player", outer: KindPlayer, ow: PlayerW, oh: PlayerH, inner: KindEnemy, iw: EnemyW, ih: EnemyH, dx: 2, dy: 1},
		{name: "potion inside player", outer: KindPlayer, ow: PlayerW, oh: PlayerH, inner: KindPotion, iw: PotionW, ih: PotionH},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpace(1280, 960)
			outer := newEntity(1, tt.outer, 400, 300, tt.ow, tt.oh)
			inner := newEntity(2, tt.inner, 400+tt.dx, 300+tt.dy, tt.iw, tt.ih)
			s.Attach(outer)
			s.Attach(inner)

			hits := s.Overlapping(outer, tt.inner)
			require.Len(t, hits, 1)
			assert.Equal(t, inner.ID, hits[0].ID)

			hits = s.Overlapping(inner, tt.outer)
			require.Len(t, hits, 1)
			assert.Equal(t, outer.ID, hits[0].ID)
		})
	}
}

func TestOverlappingSeparatedBodies(t *testing.T) {
	s := NewSpace(1280, 960)
	a := newEntity(1, KindEnemy, 100, 100, EnemyW, EnemyH)
	b := newEntity(2, KindBullet, 100+EnemyW, 100, BulletW, BulletH)
	s.Attach(a)
	s.Attach(b)

	assert.Empty(t, s.Overlapping(a, KindBullet))
	assert.Empty(t, s.Overlapping(b, KindEnemy))
}

func TestOverlappingFollowsSync(t *testing.T) {
	s := NewSpace(1280, 960)
	a := newEntity(1, KindPlayer, 100, 100, PlayerW, PlayerH)
	b := newEntity(2, KindPotion, 600, 600, PotionW, PotionH)
	s.Attach(a)
	s.Attach(b)
	require.Empty(t, s.Overlapping(a, KindPotion))

	b.X, b.Y = 101, 100
	s.Sync(b)
	assert.Len(t, s.Overlapping(a, KindPotion), 1)

	s.Detach(b)
	assert.Empty(t, s.Overlapping(a, KindPotion))
}

func TestIdlePlayerCollectsAndTakesContactInside(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemySpawnPeriod = time.Hour
	w := startedWorld(t, cfg)
	p := w.Player()
	w.setHealth(50)
	w.SpawnPotionAt(p.X, p.Y)
	w.SpawnEnemyAt(p.X+2, p.Y+1, nil)

	for i := 0; i < 60; i++ {
		w.Step(16*time.Millisecond, FrameInput{})
	}
	assert.Equal(t, 60, w.Health())
	assert.Empty(t, w.Potions())
	assert.Empty(t, w.Enemies())
}

func TestBulletInsideEnemyHits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemySpawnPeriod = time.Hour
	w := startedWorld(t, cfg)
	e := w.SpawnEnemyAt(200, 200, nil)
	w.spawnBullet(200, 200, 0, 0)

	w.Step(16*time.Millisecond, FrameInput{})
	assert.False(t, e.Active)
	assert.Empty(t, w.Bullets())
	assert.Equal(t, 10, w.Score())
}
