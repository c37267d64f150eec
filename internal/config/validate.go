package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the configuration for values the simulation cannot run with.
func (c AsteroidsConfig) Validate() error {
	var errs []error

	if c.Stage.Width <= 0 || c.Stage.Height <= 0 {
		errs = append(errs, fmt.Errorf("stage dimensions must be positive, got %gx%g", c.Stage.Width, c.Stage.Height))
	}
	if c.Ship.Size <= 0 {
		errs = append(errs, fmt.Errorf("ship.size must be positive, got %g", c.Ship.Size))
	}
	if c.Ship.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("ship.max_speed must be positive, got %g", c.Ship.MaxSpeed))
	}
	if !c.Ship.SpawnCenter && (c.Ship.SpawnX < 0 || c.Ship.SpawnX > c.Stage.Width ||
		c.Ship.SpawnY < 0 || c.Ship.SpawnY > c.Stage.Height) {
		errs = append(errs, fmt.Errorf("ship spawn (%g, %g) outside the stage", c.Ship.SpawnX, c.Ship.SpawnY))
	}
	if c.Projectile.Size <= 0 || c.Projectile.Speed <= 0 {
		errs = append(errs, errors.New("projectile size and speed must be positive"))
	}
	if c.Projectile.FireCooldownTicks < 0 {
		errs = append(errs, fmt.Errorf("projectile.fire_cooldown_ticks must not be negative, got %d", c.Projectile.FireCooldownTicks))
	}

	a := c.Asteroids
	if len(a.TierRadii) == 0 {
		errs = append(errs, errors.New("asteroids.tier_radii must not be empty"))
	}
	for i, r := range a.TierRadii {
		if r <= 0 {
			errs = append(errs, fmt.Errorf("asteroids.tier_radii[%d] must be positive, got %g", i, r))
		}
	}
	if a.FragmentCount < 0 {
		errs = append(errs, fmt.Errorf("asteroids.fragment_count must not be negative, got %d", a.FragmentCount))
	}
	if a.FragmentVelocityRange < 0 {
		errs = append(errs, fmt.Errorf("asteroids.fragment_velocity_range must not be negative, got %g", a.FragmentVelocityRange))
	}
	switch a.Fragmentation {
	case FragmentMultiHit, FragmentSingleHit:
	default:
		errs = append(errs, fmt.Errorf("asteroids.fragmentation: unknown mode %q", a.Fragmentation))
	}
	if a.CollisionFactor <= 0 {
		errs = append(errs, fmt.Errorf("asteroids.collision_factor must be positive, got %g", a.CollisionFactor))
	}
	if a.ShapeStep <= 0 {
		errs = append(errs, fmt.Errorf("asteroids.shape_step must be positive, got %g", a.ShapeStep))
	}
	if a.ShapeMinScale <= 0 || a.ShapeMinScale > 1 {
		errs = append(errs, fmt.Errorf("asteroids.shape_min_scale must be in (0, 1], got %g", a.ShapeMinScale))
	}
	if len(a.Initial) == 0 {
		errs = append(errs, errors.New("asteroids.initial must place at least one asteroid"))
	}
	for i, s := range a.Initial {
		if s.Tier < SmallestTier || s.Tier > a.LargestTier() {
			errs = append(errs, fmt.Errorf("asteroids.initial[%d]: tier %d outside 1..%d", i, s.Tier, a.LargestTier()))
		}
	}

	if c.Timing.PollHz <= 0 || c.Timing.SimHz <= 0 {
		errs = append(errs, fmt.Errorf("timing rates must be positive, got poll=%d sim=%d", c.Timing.PollHz, c.Timing.SimHz))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
