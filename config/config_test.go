package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func unsetAfter(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg=%+v want=%+v", cfg, Default())
	}
	if cfg.NormalPeriod != 200*time.Millisecond || cfg.FastPeriod != 0 || cfg.CellSize != 20 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env"), nil); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoadPrecedence(t *testing.T) {
	unsetAfter(t, "SNAKE_WIDTH", "SNAKE_HEIGHT", "SNAKE_SPEED", "SNAKE_SEED")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "SNAKE_WIDTH=600\nSNAKE_HEIGHT=500\nSNAKE_SPEED=300ms\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	// The process environment wins over the file.
	t.Setenv("SNAKE_HEIGHT", "440")
	t.Setenv("SNAKE_SEED", "12")

	cfg, err := Load(envFile, []string{"-speed", "100ms"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 600 {
		t.Fatalf("width=%d want=600 from the env file", cfg.Width)
	}
	if cfg.Height != 440 {
		t.Fatalf("height=%d want=440 from the environment", cfg.Height)
	}
	if cfg.NormalPeriod != 100*time.Millisecond {
		t.Fatalf("speed=%v want=100ms from flags", cfg.NormalPeriod)
	}
	if cfg.Seed != 12 {
		t.Fatalf("seed=%d want=12", cfg.Seed)
	}
}

func TestLoadBadEnvValue(t *testing.T) {
	t.Setenv("SNAKE_CELL", "twenty")
	if _, err := Load("", nil); err == nil {
		t.Fatalf("expected an error for SNAKE_CELL=twenty")
	}
}

func TestLoadBadFlag(t *testing.T) {
	if _, err := Load("", []string{"-no-such-flag"}); err == nil {
		t.Fatalf("expected an error for an unknown flag")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cell", func(c *Config) { c.CellSize = 0 }},
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"height below one cell", func(c *Config) { c.Height = 19 }},
		{"negative speed", func(c *Config) { c.NormalPeriod = -time.Second }},
		{"negative release", func(c *Config) { c.ReleaseTimeout = -time.Second }},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"start right of board", func(c *Config) { c.StartX = 1000 }},
		{"start below board", func(c *Config) { c.StartY = 400 }},
		{"start left of board", func(c *Config) { c.StartX = -1 }},
	}
	for _, c := range cases {
		cfg := Default()
		c.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: err=%v want ErrInvalid", c.name, err)
		}
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadRejectsStartOffBoard(t *testing.T) {
	if _, err := Load("", []string{"-start-x", "1000"}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err=%v want ErrInvalid", err)
	}
	// Inside the last cell is still on the board.
	if _, err := Load("", []string{"-start-x", "399", "-start-y", "385"}); err != nil {
		t.Fatalf("last cell rejected: %v", err)
	}
}

func TestGameOptions(t *testing.T) {
	cfg := Default()
	now := time.Unix(0, 1234)
	opts := cfg.GameOptions(now, nil)
	if opts.Seed != 1234 {
		t.Fatalf("seed=%d want time based 1234", opts.Seed)
	}
	if opts.Grid.Width != 400 || opts.Grid.CellSize != 20 || opts.Start.X != 10 {
		t.Fatalf("opts=%+v", opts)
	}

	cfg.Seed = 5
	if got := cfg.GameOptions(now, nil).Seed; got != 5 {
		t.Fatalf("seed=%d want=5", got)
	}
}
