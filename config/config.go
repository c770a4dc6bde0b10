// Package config resolves game settings from defaults, an optional .env
// file, SNAKE_* environment variables and command-line flags, in that order
// of increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"snake-grid/game"
	"snake-grid/game/clock"
	"snake-grid/game/types"
)

const (
	DefaultEnvFile = ".env"
	envPrefix      = "SNAKE_"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width          int
	Height         int
	CellSize       int
	StartX         int
	StartY         int
	NormalPeriod   time.Duration
	FastPeriod     time.Duration
	ReleaseTimeout time.Duration
	Seed           uint64
	LogLevel       string
	LogFormat      string
	LogFile        string
}

func Default() Config {
	return Config{
		Width:          400,
		Height:         400,
		CellSize:       types.CellSize,
		StartX:         10,
		StartY:         10,
		NormalPeriod:   clock.NormalPeriod,
		FastPeriod:     clock.FastPeriod,
		ReleaseTimeout: 500 * time.Millisecond,
		LogLevel:       "info",
		LogFormat:      "console",
	}
}

// Load builds a Config. A missing envFile is not an error.
func Load(envFile string, args []string) (Config, error) {
	cfg := Default()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	flags := flag.NewFlagSet("snake", flag.ContinueOnError)
	cfg.bindFlags(flags)
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) bindFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.Width, "width", c.Width, "Board width in pixels")
	flags.IntVar(&c.Height, "height", c.Height, "Board height in pixels")
	flags.IntVar(&c.CellSize, "cell", c.CellSize, "Cell size in pixels")
	flags.IntVar(&c.StartX, "start-x", c.StartX, "Initial head x in pixels")
	flags.IntVar(&c.StartY, "start-y", c.StartY, "Initial head y in pixels")
	flags.DurationVar(&c.NormalPeriod, "speed", c.NormalPeriod, "Tick period while no key is held")
	flags.DurationVar(&c.FastPeriod, "fast-speed", c.FastPeriod, "Tick period while an arrow key is held (0 = every frame)")
	flags.DurationVar(&c.ReleaseTimeout, "release-timeout", c.ReleaseTimeout, "Terminal only: treat an arrow as released after this long without a repeat")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "Target placement seed (0 = time based)")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format (console or json)")
	flags.StringVar(&c.LogFile, "log-file", c.LogFile, "Write logs to this file instead of stderr")
}

func (c *Config) applyEnv() error {
	ints := map[string]*int{
		"WIDTH":   &c.Width,
		"HEIGHT":  &c.Height,
		"CELL":    &c.CellSize,
		"START_X": &c.StartX,
		"START_Y": &c.StartY,
	}
	for name, dst := range ints {
		v, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = n
	}

	durations := map[string]*time.Duration{
		"SPEED":           &c.NormalPeriod,
		"FAST_SPEED":      &c.FastPeriod,
		"RELEASE_TIMEOUT": &c.ReleaseTimeout,
	}
	for name, dst := range durations {
		v, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = d
	}

	if v, ok := os.LookupEnv(envPrefix + "SEED"); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		c.Seed = n
	}

	strs := map[string]*string{
		"LOG_LEVEL":  &c.LogLevel,
		"LOG_FORMAT": &c.LogFormat,
		"LOG_FILE":   &c.LogFile,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	return nil
}

// Validate checks the values that would make the game refuse to start or misbehave
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalid, c.CellSize)
	case c.Width < c.CellSize || c.Height < c.CellSize:
		return fmt.Errorf("%w: board %dx%d smaller than one %dpx cell", ErrInvalid, c.Width, c.Height, c.CellSize)
	case c.NormalPeriod < 0 || c.FastPeriod < 0 || c.ReleaseTimeout < 0:
		return fmt.Errorf("%w: negative period", ErrInvalid)
	case c.LogFormat != "console" && c.LogFormat != "json":
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	grid := c.grid()
	if start := c.start(); !grid.Contains(grid.Snap(start)) {
		return fmt.Errorf("%w: start %v outside the %dx%d board", ErrInvalid, start, c.Width, c.Height)
	}
	return nil
}

func (c Config) grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height, CellSize: c.CellSize}
}

func (c Config) start() types.Point {
	return types.Point{X: c.StartX, Y: c.StartY}
}

// ResolveSeed returns Seed, or a time based seed when Seed is zero
func (c Config) ResolveSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}

// GameOptions converts the config into options for game.NewGame
func (c Config) GameOptions(now time.Time, logger *zerolog.Logger) game.Options {
	return game.Options{
		Grid:         c.grid(),
		Start:        c.start(),
		NormalPeriod: c.NormalPeriod,
		FastPeriod:   c.FastPeriod,
		Seed:         c.ResolveSeed(now),
		Logger:       logger,
	}
}
