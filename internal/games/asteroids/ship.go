package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Wing offsets of the ship outline, measured from the rotated -90° axis.
const (
	wingLeft  = math.Pi * (0.15 - 0.5)
	wingRight = math.Pi * (-0.15 - 0.5)
)

// Ship is the player entity. It owns the projectiles it fires, in fire order.
type Ship struct {
	Body
	cfg         config.ShipConfig
	projCfg     config.ProjectileConfig
	cooldown    int
	projectiles []*Projectile
	removed     []core.Destroyed // purged since the last DrainRemoved
}

// NewShip creates a ship at rest at pos, facing +X.
func NewShip(pos core.Point, cfg config.ShipConfig, projCfg config.ProjectileConfig) *Ship {
	return &Ship{
		Body:    Body{Pos: pos, Radius: cfg.Size},
		cfg:     cfg,
		projCfg: projCfg,
	}
}

// Turn rotates the ship by deltaDegrees.
func (s *Ship) Turn(deltaDegrees float64) {
	s.Rotation += deltaDegrees / 180.0 * math.Pi
}

// Left rotates by one control increment counter-clockwise.
func (s *Ship) Left() {
	s.Turn(-s.cfg.TurnDegrees)
}

// Right rotates by one control increment clockwise.
func (s *Ship) Right() {
	s.Turn(s.cfg.TurnDegrees)
}

// Thrust adds a velocity contribution along the current facing, scaled by
// sign (+1 forward, -1 reverse). Each axis takes the contribution only while
// its speed is under the cap, unless the contribution opposes the current
// velocity on that axis, which always applies so the ship can brake.
func (s *Ship) Thrust(sign float64) {
	dx := sign * s.cfg.Thrust * math.Cos(s.Rotation)
	dy := sign * s.cfg.Thrust * math.Sin(s.Rotation)
	s.Vel.X = throttle(s.Vel.X, dx, s.cfg.MaxSpeed)
	s.Vel.Y = throttle(s.Vel.Y, dy, s.cfg.MaxSpeed)
}

// throttle applies one axis of a thrust contribution.
func throttle(v, dv, limit float64) float64 {
	if isInverse(v, dv) {
		return v + dv
	}
	if math.Abs(v) >= limit {
		return v
	}
	v += dv
	// same-direction thrust never overshoots the cap
	if math.Abs(v) > limit {
		v = math.Copysign(limit, v)
	}
	return v
}

// isInverse reports whether a and b have opposite signs. Zero counts by its
// sign bit, so +0 is positive.
func isInverse(a, b float64) bool {
	return math.Signbit(a) != math.Signbit(b)
}

// Fire launches a projectile from the ship's position along its facing.
// Returns false while the cooldown is running.
func (s *Ship) Fire() bool {
	if s.cooldown > 0 {
		return false
	}
	p := NewProjectile(s.Pos, s.Rotation, s.projCfg)
	s.projectiles = append(s.projectiles, p)
	s.cooldown = s.projCfg.FireCooldownTicks
	return true
}

// Cooldown returns the ticks remaining before the ship may fire again.
func (s *Ship) Cooldown() int {
	return s.cooldown
}

// Projectiles returns the live projectiles in fire order.
func (s *Ship) Projectiles() []*Projectile {
	return s.projectiles
}

// Step moves the ship (wrapping), ticks the cooldown, moves every owned
// projectile and purges the ones that left the stage.
func (s *Ship) Step(st Stage) {
	s.Advance(st, PolicyWrap)
	if s.cooldown > 0 {
		s.cooldown--
	}
	for _, p := range s.projectiles {
		p.Step(st)
	}
	s.PurgeProjectiles()
}

// PurgeProjectiles removes destroyed projectiles, keeping the survivors in
// fire order. Returns how many were removed.
func (s *Ship) PurgeProjectiles() int {
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.IsDestroyed() {
			s.removed = append(s.removed, core.Destroyed{Kind: core.KindProjectile, Position: p.Pos})
			continue
		}
		kept = append(kept, p)
	}
	n := len(s.projectiles) - len(kept)
	clear(s.projectiles[len(kept):])
	s.projectiles = kept
	return n
}

// DrainRemoved returns the projectiles purged since the previous call.
func (s *Ship) DrainRemoved() []core.Destroyed {
	removed := s.removed
	s.removed = nil
	return removed
}

// Center is the ship's raw position.
func (s *Ship) Center() core.Point {
	return s.Pos
}

// Draw returns the ship triangle: the nose at the position and two wing
// tips one size behind it.
func (s *Ship) Draw() core.DrawRequest {
	theta := -s.Rotation
	r := s.Radius
	wing := func(off float64) core.Point {
		return core.Pt(r*math.Sin(theta+off), r*math.Cos(theta+off)).Ceil()
	}
	return core.DrawRequest{
		Kind:     core.KindShip,
		Vertices: []core.Point{{}, wing(wingLeft), wing(wingRight)},
		Offset:   s.Pos,
		Closed:   true,
	}
}
