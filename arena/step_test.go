package arena

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepStartsGame(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())

	w.Step(16*time.Millisecond, FrameInput{Right: true})
	assert.Equal(t, PhaseNotStarted, w.Phase())
	assert.Equal(t, DefaultConfig().Width/2, w.Player().X)

	w.Step(16*time.Millisecond, FrameInput{Start: true})
	assert.Equal(t, PhasePlaying, w.Phase())
	assert.Equal(t, int64(1), w.Stats().Frames)
	assert.Equal(t, 16*time.Millisecond, w.Stats().PlayTime)
}

func TestStepMovesPlayer(t *testing.T) {
	w := startedWorld(t, DefaultConfig())
	p := w.Player()
	x0, y0 := p.X, p.Y

	w.Step(500*time.Millisecond, FrameInput{Right: true})
	assert.InDelta(t, x0+100, p.X, 1e-9)
	assert.InDelta(t, y0, p.Y, 1e-9)

	w.Step(500*time.Millisecond, FrameInput{Up: true})
	assert.InDelta(t, y0-100, p.Y, 1e-9)
	assert.Greater(t, p.Scale, 1.0)
}

func TestStepFiresTowardPointer(t *testing.T) {
	w := startedWorld(t, DefaultConfig())
	p := w.Player()

	w.Step(16*time.Millisecond, FrameInput{Fire: true, PointerX: p.X, PointerY: 0})
	bullets := w.Bullets()
	require.Len(t, bullets, 1)
	assert.InDelta(t, 0, bullets[0].VX, 1e-9)
	assert.InDelta(t, -400, bullets[0].VY, 1e-9)
	assert.InDelta(t, p.Y-400*0.016, bullets[0].Y, 1e-9)
}

func TestStepFireCooldownBlocksRapidClicks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FireCooldown = 100 * time.Millisecond
	cfg.EnemySpawnPeriod = time.Hour
	w := startedWorld(t, cfg)

	// One click per 20 ms frame for 200 ms
	for i := 0; i < 10; i++ {
		w.Step(20*time.Millisecond, FrameInput{Fire: true, PointerX: 0, PointerY: 0})
	}
	assert.Equal(t, int64(2), w.Stats().ShotsFired)
	assert.Equal(t, int64(8), w.Stats().ShotsBlocked)
}

func TestStepKillScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemySpawnPeriod = time.Hour
	w := startedWorld(t, cfg)
	p := w.Player()

	// A tough enemy sitting right above the player, shot three times
	e := w.SpawnEnemyAt(p.X, p.Y-200, &EnemyTypes[2])
	for i := 0; i < 3; i++ {
		w.spawnBullet(e.X, e.Y, 0, 0)
		w.Step(time.Millisecond, FrameInput{})
	}
	assert.False(t, e.Active)
	assert.Equal(t, 10, w.Score())
	assert.Empty(t, w.Enemies())
	assert.Empty(t, w.Bullets())
}

func TestScoreNeverDecreases(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemySpawnPeriod = 200 * time.Millisecond
	w := startedWorld(t, cfg)
	rng := rand.New(rand.NewSource(7))

	last := 0
	for i := 0; i < 3000 && w.Phase() != PhaseGameOver; i++ {
		in := FrameInput{
			Up:       rng.Intn(2) == 0,
			Down:     rng.Intn(2) == 0,
			Left:     rng.Intn(2) == 0,
			Right:    rng.Intn(2) == 0,
			Fire:     rng.Intn(3) == 0,
			PointerX: rng.Float64() * cfg.Width,
			PointerY: rng.Float64() * cfg.Height,
			Pause:    rng.Intn(200) == 0,
			Resume:   rng.Intn(20) == 0,
		}
		w.Step(16*time.Millisecond, in)

		require.GreaterOrEqual(t, w.Score(), last)
		require.GreaterOrEqual(t, w.Health(), 0)
		require.LessOrEqual(t, w.Health(), cfg.PlayerMaxHealth)
		require.Zero(t, w.Score()%cfg.KillReward)
		if w.Phase() == PhaseGameOver {
			require.Zero(t, w.Health())
		}
		for _, e := range w.Entities() {
			require.True(t, e.Active)
			if e.DepthScaled {
				require.InDelta(t, DepthScale(e.Y, cfg.Height, cfg.DepthScaleMin, cfg.DepthScaleRange), e.Scale, 1e-9)
			}
		}
		for _, b := range w.Bullets() {
			require.False(t, b.OutOfBounds(cfg.Width, cfg.Height))
		}
		last = w.Score()
	}
}
