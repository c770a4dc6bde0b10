package main

import (
	"io"
	"os"
	"time"

	"snake-grid/config"
	"snake-grid/game"
	"snake-grid/logging"
	"snake-grid/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(config.DefaultEnvFile, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// The terminal belongs to the UI, so logs only go somewhere when a file is given.
	logger, closer, err := logging.Open(cfg.LogFile, io.Discard, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	defer closer.Close()

	opts := cfg.GameOptions(time.Now(), &logger)
	scene := tui.NewScene(opts.Grid)
	g, err := game.NewGame(opts, scene)
	if err != nil {
		// The UI is not up yet, so report on stderr as well as the log file.
		logger.Error().Err(err).Msg("cannot start game")
		log.Error().Err(err).Msg("cannot start game")
		closer.Close()
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewModel(g, scene, cfg.ReleaseTimeout), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("terminal ui failed")
		log.Error().Err(err).Msg("terminal ui failed")
		closer.Close()
		os.Exit(1)
	}
}
