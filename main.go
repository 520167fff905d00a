package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"isoshooter/game"
)

func main() {
	config := game.DefaultConfig()

	var logPath string
	flag.StringVar(&logPath, "log", "logs/arena.log", "log file path, empty to disable logging")
	flag.Int64Var(&config.Seed, "seed", 0, "random seed for spawning, 0 picks one from the clock")
	flag.DurationVar(&config.Arena.FireCooldown, "fire-cooldown", config.Arena.FireCooldown, "minimum time between shots, 0 for no limit")
	flag.BoolVar(&config.Arena.PotionTimerIgnoresPause, "legacy-potion-timer", false, "keep the potion timer running while paused")
	flag.BoolVar(&config.Debug, "debug", false, "start with hitboxes and debug stats shown (toggle with F1)")
	flag.BoolVar(&config.Profile, "profile", false, "capture a CPU profile and trace when the update rate drops")
	flag.Parse()

	if err := run(config, logPath); err != nil {
		log.Fatal(err)
	}
}

func run(config game.Config, logPath string) error {
	logger, err := game.InitLogger(logPath, config.Debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer game.SyncLogger()

	g := game.NewGame(config, logger)

	ebiten.SetWindowSize(config.WindowSize())
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	start := time.Now()
	if err := ebiten.RunGame(g); err != nil {
		game.Log.Errorw("game loop stopped", "err", err)
		return fmt.Errorf("run game: %w", err)
	}
	game.Log.Infow("game closed", "uptime", time.Since(start).String())
	return nil
}
