// Package config provides YAML-based configuration loading for the
// asteroids simulation.
package config

import "github.com/vovakirdan/tui-asteroids/internal/core"

// AsteroidsConfig contains every tunable of the simulation core.
type AsteroidsConfig struct {
	Stage      StageConfig      `yaml:"stage"`
	Ship       ShipConfig       `yaml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Timing     TimingConfig     `yaml:"timing"`
}

// StageConfig defines the playfield and its colors.
type StageConfig struct {
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	Foreground core.Color `yaml:"foreground"`
	Background core.Color `yaml:"background"` // 0 keeps the terminal default
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Size        float64 `yaml:"size"`
	MaxSpeed    float64 `yaml:"max_speed"`    // Per-axis cap for same-direction thrust
	Thrust      float64 `yaml:"thrust"`       // Velocity added per thrust control
	TurnDegrees float64 `yaml:"turn_degrees"` // Rotation per turn control
	SpawnCenter bool    `yaml:"spawn_center"` // Spawn at stage center, ignoring SpawnX/SpawnY
	SpawnX      float64 `yaml:"spawn_x"`
	SpawnY      float64 `yaml:"spawn_y"`
}

// ProjectileConfig defines shots fired by the ship.
type ProjectileConfig struct {
	Size              float64 `yaml:"size"`
	Speed             float64 `yaml:"speed"`
	FireCooldownTicks int     `yaml:"fire_cooldown_ticks"`
}

// AsteroidConfig defines asteroid tiers, fragmentation and collision.
type AsteroidConfig struct {
	TierRadii             []float64         `yaml:"tier_radii"` // Index 0 is tier 1
	FragmentCount         int               `yaml:"fragment_count"`
	FragmentVelocityRange float64           `yaml:"fragment_velocity_range"`
	Fragmentation         FragmentationMode `yaml:"fragmentation"`
	CollisionFactor       float64           `yaml:"collision_factor"`
	ShapeStep             float64           `yaml:"shape_step"`
	ShapeMinScale         float64           `yaml:"shape_min_scale"`
	ScoreByTier           []int             `yaml:"score_by_tier"` // Index 0 is tier 1
	Initial               []AsteroidSpawn   `yaml:"initial"`
}

// AsteroidSpawn places one asteroid at the start of a wave.
type AsteroidSpawn struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Tier int     `yaml:"tier"`
	VX   float64 `yaml:"vx"`
	VY   float64 `yaml:"vy"`
}

// TimingConfig defines the two loop cadences.
type TimingConfig struct {
	PollHz int `yaml:"poll_hz"` // Input poll and pacing rate
	SimHz  int `yaml:"sim_hz"`  // Simulation and render rate
}

// FragmentationMode selects how many times an asteroid may split in one tick.
type FragmentationMode string

const (
	// FragmentMultiHit lets every projectile that hits an asteroid in the
	// same tick spawn its own set of fragments.
	FragmentMultiHit FragmentationMode = "multi_hit"
	// FragmentSingleHit splits an asteroid at most once per tick.
	FragmentSingleHit FragmentationMode = "single_hit"
)

// SmallestTier is the tier that is destroyed without producing fragments.
const SmallestTier = 1

// LargestTier returns the highest tier the radius table defines.
func (c AsteroidConfig) LargestTier() int {
	return len(c.TierRadii)
}

// Radius returns the radius for a tier, clamping out-of-range tiers to the table.
func (c AsteroidConfig) Radius(tier int) float64 {
	if len(c.TierRadii) == 0 {
		return 0
	}
	tier = max(SmallestTier, min(tier, c.LargestTier()))
	return c.TierRadii[tier-1]
}

// Score returns the points awarded for destroying an asteroid of the given tier.
func (c AsteroidConfig) Score(tier int) int {
	if tier < SmallestTier || tier > len(c.ScoreByTier) {
		return 0
	}
	return c.ScoreByTier[tier-1]
}
