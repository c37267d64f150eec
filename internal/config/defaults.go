package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the hardcoded default configuration.
// It mirrors defaults/asteroids.yaml and is used if the embedded file fails to parse.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Stage: StageConfig{
			Width:      640,
			Height:     480,
			Foreground: 15,
			Background: 0,
		},
		Ship: ShipConfig{
			Size:        25,
			MaxSpeed:    3.0,
			Thrust:      1.0,
			TurnDegrees: 2.0,
			SpawnCenter: true,
			SpawnX:      320,
			SpawnY:      240,
		},
		Projectile: ProjectileConfig{
			Size:              5,
			Speed:             8.0,
			FireCooldownTicks: 10,
		},
		Asteroids: AsteroidConfig{
			TierRadii:             []float64{20, 30, 50},
			FragmentCount:         4,
			FragmentVelocityRange: 0.5,
			Fragmentation:         FragmentMultiHit,
			CollisionFactor:       0.3,
			ShapeStep:             0.25,
			ShapeMinScale:         0.7,
			ScoreByTier:           []int{100, 50, 20},
			Initial: []AsteroidSpawn{
				{X: 200, Y: 400, Tier: 3},
			},
		},
		Timing: TimingConfig{
			PollHz: 144,
			SimHz:  60,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
