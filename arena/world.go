// Package arena implements the rules of the arena shooter: world state,
// motion, combat resolution, spawning and the game phase flow. It has no
// rendering or input dependencies; a frontend drives it through World.Step.
package arena

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Phase is the top-level game state
type Phase int

const (
	PhaseNotStarted Phase = iota // Menu shown, nothing simulated
	PhasePlaying                 // Active gameplay
	PhasePaused                  // Simulation and enemy spawning suspended
	PhaseGameOver                // Terminal for the session
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// World holds the state of one game session. A session is never reused:
// restarting means building a new World.
type World struct {
	cfg     Config
	session string
	rng     *rand.Rand
	log     *zap.Logger

	clock *Clock
	space *Space

	phase  Phase
	score  int
	health int

	player  *Entity
	enemies []*Entity
	bullets []*Entity
	potions []*Entity

	enemyTimer  *Timer
	potionTimer *Timer

	lastFired time.Duration
	hasFired  bool

	nextID EntityID
	stats  Stats
}

// Option configures a World
type Option func(*World)

// WithLogger sets the logger used for phase transitions and session events
func WithLogger(l *zap.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithRand sets the random source used for spawning
func WithRand(rng *rand.Rand) Option {
	return func(w *World) {
		if rng != nil {
			w.rng = rng
		}
	}
}

// WithSessionID overrides the generated session id
func WithSessionID(id string) Option {
	return func(w *World) {
		if id != "" {
			w.session = id
		}
	}
}

// NewWorld creates a fresh session in the NotStarted phase with the player
// at the arena center
func NewWorld(cfg Config, opts ...Option) *World {
	w := &World{
		cfg:     cfg,
		session: uuid.NewString(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		log:     zap.NewNop(),
		clock:   NewClock(),
		space:   NewSpace(cfg.Width, cfg.Height),
		phase:   PhaseNotStarted,
		health:  cfg.PlayerMaxHealth,
		enemies: make([]*Entity, 0, 32),
		bullets: make([]*Entity, 0, 64),
		potions: make([]*Entity, 0, 8),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.With(zap.String("session", w.session))

	w.player = w.newBody(KindPlayer, cfg.Width/2, cfg.Height/2, PlayerW, PlayerH)
	w.player.DepthScaled = true
	w.applyDepthScale(w.player)

	w.log.Info("session created",
		zap.Float64("width", cfg.Width),
		zap.Float64("height", cfg.Height),
		zap.Duration("fire_cooldown", cfg.FireCooldown),
		zap.Bool("potion_timer_ignores_pause", cfg.PotionTimerIgnoresPause))
	return w
}

// Config returns the configuration the session was built with
func (w *World) Config() Config { return w.cfg }

// SessionID returns the unique id of the session
func (w *World) SessionID() string { return w.session }

// Phase returns the current phase
func (w *World) Phase() Phase { return w.phase }

// Score returns the current score
func (w *World) Score() int { return w.score }

// Health returns the current player health
func (w *World) Health() int { return w.health }

// Player returns the player entity
func (w *World) Player() *Entity { return w.player }

// Clock returns the session clock
func (w *World) Clock() *Clock { return w.clock }

// Stats returns a copy of the session counters
func (w *World) Stats() Stats {
	s := w.stats
	if w.stats.KillsByType != nil {
		s.KillsByType = make(map[string]int64, len(w.stats.KillsByType))
		for name, n := range w.stats.KillsByType {
			s.KillsByType[name] = n
		}
	}
	return s
}

// EnemyTimer returns the enemy spawn trigger, nil before the game starts
func (w *World) EnemyTimer() *Timer { return w.enemyTimer }

// PotionTimer returns the currently armed potion trigger, nil before the game starts
func (w *World) PotionTimer() *Timer { return w.potionTimer }

// Enemies returns the live enemies
func (w *World) Enemies() []*Entity { return activeOnly(w.enemies) }

// Bullets returns the live bullets
func (w *World) Bullets() []*Entity { return activeOnly(w.bullets) }

// Potions returns the live potions
func (w *World) Potions() []*Entity { return activeOnly(w.potions) }

// Entities returns every live entity, player first
func (w *World) Entities() []*Entity {
	all := make([]*Entity, 0, 1+len(w.enemies)+len(w.bullets)+len(w.potions))
	if w.player != nil && w.player.Active {
		all = append(all, w.player)
	}
	all = append(all, activeOnly(w.potions)...)
	all = append(all, activeOnly(w.enemies)...)
	all = append(all, activeOnly(w.bullets)...)
	return all
}

func activeOnly(list []*Entity) []*Entity {
	out := make([]*Entity, 0, len(list))
	for _, e := range list {
		if e.Active {
			out = append(out, e)
		}
	}
	return out
}

// newBody creates an entity with a collision body
func (w *World) newBody(kind Kind, x, y, width, height float64) *Entity {
	w.nextID++
	e := newEntity(w.nextID, kind, x, y, width, height)
	w.space.Attach(e)
	return e
}

// SpawnEnemyAt adds an enemy of type t at (x, y). A nil type is allowed and
// gets the fallback speed and a single hit-point.
func (w *World) SpawnEnemyAt(x, y float64, t *EnemyType) *Entity {
	e := w.newBody(KindEnemy, x, y, EnemyW, EnemyH)
	e.Type = t
	if t != nil {
		e.HP = t.Health
	}
	e.DepthScaled = true
	w.applyDepthScale(e)
	w.enemies = append(w.enemies, e)
	w.stats.EnemiesSpawned++
	return e
}

// SpawnPotionAt adds a healing potion at (x, y)
func (w *World) SpawnPotionAt(x, y float64) *Entity {
	e := w.newBody(KindPotion, x, y, PotionW, PotionH)
	e.Heal = w.cfg.PotionHeal
	e.DepthScaled = true
	w.applyDepthScale(e)
	w.potions = append(w.potions, e)
	w.stats.PotionsSpawned++
	return e
}

// spawnBullet adds a bullet at (x, y) moving with (vx, vy)
func (w *World) spawnBullet(x, y, vx, vy float64) *Entity {
	e := w.newBody(KindBullet, x, y, BulletW, BulletH)
	e.SetVelocity(vx, vy)
	w.bullets = append(w.bullets, e)
	return e
}

// destroy deactivates an entity and removes its body. It is idempotent,
// so a second overlap reported for the same entity in one frame is a no-op.
func (w *World) destroy(e *Entity) bool {
	if e == nil || !e.Active {
		return false
	}
	e.Active = false
	e.SetVelocity(0, 0)
	w.space.Detach(e)
	return true
}

// sweep drops destroyed entities from the collections
func (w *World) sweep() {
	w.enemies = compact(w.enemies)
	w.bullets = compact(w.bullets)
	w.potions = compact(w.potions)
}

func compact(list []*Entity) []*Entity {
	kept := list[:0]
	for _, e := range list {
		if e.Active {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}
	return kept
}

// addScore adds a non-negative amount to the score
func (w *World) addScore(n int) {
	if n > 0 {
		w.score += n
	}
}

// setHealth stores health clamped to [0, PlayerMaxHealth]
func (w *World) setHealth(h int) {
	w.health = max(0, min(h, w.cfg.PlayerMaxHealth))
}
