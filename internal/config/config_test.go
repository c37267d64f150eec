package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultAsteroidsConfig()) {
		t.Errorf("embedded defaults differ from DefaultAsteroidsConfig():\n got %+v\nwant %+v", cfg, DefaultAsteroidsConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultAsteroidsConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("projectile:\n  speed: 12\nasteroids:\n  fragmentation: single_hit\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Projectile.Speed != 12 {
		t.Errorf("Projectile.Speed = %g, expected 12", cfg.Projectile.Speed)
	}
	if cfg.Asteroids.Fragmentation != FragmentSingleHit {
		t.Errorf("Fragmentation = %q, expected single_hit", cfg.Asteroids.Fragmentation)
	}
	if cfg.Stage.Width != 640 || cfg.Projectile.FireCooldownTicks != 10 {
		t.Error("unset keys should keep their defaults")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AsteroidsConfig)
	}{
		{"zero stage", func(c *AsteroidsConfig) { c.Stage.Width = 0 }},
		{"empty tier table", func(c *AsteroidsConfig) { c.Asteroids.TierRadii = nil }},
		{"negative radius", func(c *AsteroidsConfig) { c.Asteroids.TierRadii[0] = -1 }},
		{"unknown fragmentation", func(c *AsteroidsConfig) { c.Asteroids.Fragmentation = "chaos" }},
		{"tier out of table", func(c *AsteroidsConfig) { c.Asteroids.Initial[0].Tier = 9 }},
		{"zero poll rate", func(c *AsteroidsConfig) { c.Timing.PollHz = 0 }},
		{"shape scale above one", func(c *AsteroidsConfig) { c.Asteroids.ShapeMinScale = 1.5 }},
		{"no initial asteroids", func(c *AsteroidsConfig) { c.Asteroids.Initial = nil }},
		{"spawn off stage", func(c *AsteroidsConfig) {
			c.Ship.SpawnCenter = false
			c.Ship.SpawnX = 700
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("ship:\n  max_speed: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Ship.MaxSpeed != 5 {
		t.Errorf("Ship.MaxSpeed = %g, expected 5", cfg.Ship.MaxSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should return an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("stage: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config should return an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  sim_hz: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom config should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestRadiusAndScoreLookup(t *testing.T) {
	a := DefaultAsteroidsConfig().Asteroids

	tests := []struct {
		tier   int
		radius float64
		score  int
	}{
		{1, 20, 100},
		{2, 30, 50},
		{3, 50, 20},
	}
	for _, tc := range tests {
		if got := a.Radius(tc.tier); got != tc.radius {
			t.Errorf("Radius(%d) = %g, expected %g", tc.tier, got, tc.radius)
		}
		if got := a.Score(tc.tier); got != tc.score {
			t.Errorf("Score(%d) = %d, expected %d", tc.tier, got, tc.score)
		}
	}

	if a.Radius(0) != 20 || a.Radius(7) != 50 {
		t.Error("Radius should clamp out-of-range tiers to the table")
	}
	if a.Score(0) != 0 {
		t.Error("Score for an unknown tier should be 0")
	}
	if a.LargestTier() != 3 {
		t.Errorf("LargestTier() = %d, expected 3", a.LargestTier())
	}
}

func TestParseEmptyInitialFailsValidation(t *testing.T) {
	cfg, err := Parse([]byte("asteroids:\n  initial: []\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate() = %v, expected ErrInvalidConfig for an empty initial layout", err)
	}
}

func TestSpawnAtOriginIsValid(t *testing.T) {
	cfg, err := Parse([]byte("ship:\n  spawn_center: false\n  spawn_x: 0\n  spawn_y: 0\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Ship.SpawnCenter {
		t.Error("SpawnCenter should be overridden to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected a spawn at (0, 0) to be allowed", err)
	}
}
