package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"isoshooter/arena"
	"isoshooter/game/controls"
)

// Game adapts an arena session to ebiten's update/draw loop
type Game struct {
	config Config
	log    *zap.Logger

	// Current session; replaced on restart
	world *arena.World

	input    *Input
	layout   controls.Layout
	renderer *Renderer
	debug    *DebugState

	// Seeds each new session so a fixed seed replays the same sequence of sessions
	seeds *rand.Rand

	// Performance profiling, nil when disabled
	profiler *Profiler

	// Last update time for delta time calculation
	lastUpdateTime time.Time

	sessions int
}

// NewGame creates a new game with a fresh session waiting to start
func NewGame(config Config, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	layout := controls.NewLayout(float64(config.ScreenWidth), float64(config.ScreenHeight))

	g := &Game{
		config:   config,
		log:      log,
		input:    NewInput(),
		layout:   layout,
		renderer: NewRenderer(layout),
		debug:    GetDebugState(),
		seeds:    rand.New(rand.NewSource(seed)),
	}
	if config.Debug {
		g.debug.ShowHitboxes = true
		g.debug.ShowStats = true
	}
	if config.Profile {
		g.profiler = NewProfiler(config.ProfileDir, log.Sugar())
	}
	log.Info("game created", zap.Int64("seed", seed), zap.Int("tps", config.TPS))

	g.newSession()
	return g
}

// newSession discards the current world and builds a fresh one
func (g *Game) newSession() {
	g.sessions++
	g.world = arena.NewWorld(g.config.Arena,
		arena.WithLogger(g.log),
		arena.WithRand(rand.New(rand.NewSource(g.seeds.Int63()))))
	g.lastUpdateTime = time.Now()
}

// Update advances the current session by the time since the last update
func (g *Game) Update() error {
	// Calculate delta time
	now := time.Now()
	dt := now.Sub(g.lastUpdateTime)
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if dt > g.config.MaxFrameTime {
		dt = g.config.MaxFrameTime
	}

	res := controls.Resolve(g.world.Phase(), g.input.Poll(), g.layout)
	if res.ToggleDebug {
		g.debug.Toggle()
	}
	if res.Restart {
		g.log.Info("restart requested",
			zap.String("previous_session", g.world.SessionID()),
			zap.Int("score", g.world.Score()))
		g.newSession()
		return nil
	}

	g.world.Step(dt, res.Frame)

	if g.profiler != nil {
		g.profiler.Observe(dt, func() string {
			return fmt.Sprintf("entities-%d", len(g.world.Entities()))
		})
	}
	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	tps := float64(g.config.TPS)
	if g.profiler != nil {
		tps = g.profiler.Rate()
	}
	g.renderer.Render(screen, g.world, g.debug, tps)
}

// Layout returns the game's screen size; the arena maps one unit to one pixel
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
