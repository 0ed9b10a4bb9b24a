package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("defaults differ:\n got  %+v\n want %+v", cfg, Default())
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("ASTRAL_WORLD_WIDTH", "800")
	t.Setenv("ASTRAL_SPAWN_GRACE", "250ms")
	t.Setenv("ASTRAL_IMPULSE_DAMPING", "4")
	t.Setenv("ASTRAL_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WorldWidth != 800 {
		t.Errorf("WorldWidth=%v, want 800", cfg.WorldWidth)
	}
	if cfg.Physics.SpawnGrace != 250*time.Millisecond {
		t.Errorf("SpawnGrace=%v, want 250ms", cfg.Physics.SpawnGrace)
	}
	if cfg.Physics.ImpulseDamping != 4 {
		t.Errorf("ImpulseDamping=%v, want 4", cfg.Physics.ImpulseDamping)
	}
	if lvl, _ := cfg.Level(); lvl != slog.LevelDebug {
		t.Errorf("Level=%v, want debug", lvl)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name, key, val string
	}{
		{"zero damping", "ASTRAL_IMPULSE_DAMPING", "0"},
		{"negative width", "ASTRAL_WORLD_WIDTH", "-1"},
		{"zero tick rate", "ASTRAL_TICK_RATE", "0"},
		{"unknown level", "ASTRAL_LOG_LEVEL", "chatty"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv(c.key, c.val)
			_, err := Load()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadRejectsUnparsable(t *testing.T) {
	t.Setenv("ASTRAL_TICK_RATE", "fast")
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFrameDuration(t *testing.T) {
	cfg := Default()
	cfg.TickRate = 50
	if got := cfg.FrameDuration(); got != 20*time.Millisecond {
		t.Fatalf("FrameDuration=%v, want 20ms", got)
	}
}
