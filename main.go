package main

import (
	"os"
	"time"

	"snake-grid/config"
	"snake-grid/game"
	"snake-grid/logging"
	"snake-grid/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(config.DefaultEnvFile, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger, closer, err := logging.Open(cfg.LogFile, os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	defer closer.Close()

	now := time.Now()
	opts := cfg.GameOptions(now, &logger)
	renderer := ui.NewRenderer(opts.Grid)
	g, err := game.NewGame(opts, renderer)
	if err != nil {
		logger.Error().Err(err).Msg("cannot start game")
		closer.Close()
		os.Exit(1)
	}

	width, height := renderer.WindowSize()
	rl.InitWindow(width, height, "Snake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	keyboard := ui.NewKeyboard()
	g.Start(time.Now())

	for !rl.WindowShouldClose() {
		now := time.Now()
		keyboard.Poll(g, now)
		g.Update(now)
		renderer.Draw()
	}

	if g.State() == game.Playing {
		rec := g.Record()
		logger.Info().
			Str("session", g.UUID).
			Int("ticks", rec.Ticks).
			Int("score", rec.Score).
			Msg("window closed")
	}
}
