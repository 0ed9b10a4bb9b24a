package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Physics holds the simulation tuning constants.
type Physics struct {
	SpawnGrace     time.Duration `env:"ASTRAL_SPAWN_GRACE"     envDefault:"1s"`
	Invincibility  time.Duration `env:"ASTRAL_INVINCIBILITY"   envDefault:"100ms"`
	ImpulseDamping float64       `env:"ASTRAL_IMPULSE_DAMPING" envDefault:"10"`
}

// Config is the full runtime configuration, read from the environment.
type Config struct {
	WorldWidth       float64 `env:"ASTRAL_WORLD_WIDTH"       envDefault:"320"`
	WorldHeight      float64 `env:"ASTRAL_WORLD_HEIGHT"      envDefault:"180"`
	TickRate         int     `env:"ASTRAL_TICK_RATE"         envDefault:"60"`
	InitialAsteroids int     `env:"ASTRAL_INITIAL_ASTEROIDS" envDefault:"5"`
	Seed             int64   `env:"ASTRAL_SEED"`
	Physics          Physics

	LogFile  string `env:"ASTRAL_LOG_FILE"`
	LogLevel string `env:"ASTRAL_LOG_LEVEL" envDefault:"info"`

	SSHPort    int    `env:"ASTRAL_SSH_PORT"     envDefault:"2222"`
	SSHHostKey string `env:"ASTRAL_SSH_HOST_KEY" envDefault:"server_host_key"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		WorldWidth:       320,
		WorldHeight:      180,
		TickRate:         60,
		InitialAsteroids: 5,
		Physics: Physics{
			SpawnGrace:     time.Second,
			Invincibility:  100 * time.Millisecond,
			ImpulseDamping: 10,
		},
		LogLevel:   "info",
		SSHPort:    2222,
		SSHHostKey: "server_host_key",
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.WorldWidth <= 0 || c.WorldHeight <= 0:
		return fmt.Errorf("%w: world size %vx%v", ErrInvalid, c.WorldWidth, c.WorldHeight)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalid, c.TickRate)
	case c.InitialAsteroids < 0:
		return fmt.Errorf("%w: initial asteroids %d", ErrInvalid, c.InitialAsteroids)
	case c.Physics.SpawnGrace < 0 || c.Physics.Invincibility < 0:
		return fmt.Errorf("%w: negative time window", ErrInvalid)
	case c.Physics.ImpulseDamping <= 0:
		return fmt.Errorf("%w: impulse damping %v", ErrInvalid, c.Physics.ImpulseDamping)
	case c.SSHPort <= 0 || c.SSHPort > 65535:
		return fmt.Errorf("%w: ssh port %d", ErrInvalid, c.SSHPort)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
}

// FrameDuration returns the wall time between ticks.
func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
