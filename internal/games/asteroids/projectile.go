package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Projectile is a straight-line mover fired by the ship. It never wraps:
// leaving the stage destroys it.
type Projectile struct {
	Body
}

// NewProjectile launches a projectile from pos with the given facing.
func NewProjectile(pos core.Point, rotation float64, cfg config.ProjectileConfig) *Projectile {
	return &Projectile{
		Body: Body{
			Pos:      pos,
			Vel:      core.Pt(cfg.Speed*math.Cos(rotation), cfg.Speed*math.Sin(rotation)),
			Rotation: rotation,
			Radius:   cfg.Size,
		},
	}
}

// Step advances the projectile and culls it once it is off stage.
func (p *Projectile) Step(st Stage) {
	p.Advance(st, PolicyCull)
}

// Center is half a size ahead of the position along the facing, snapped up
// to whole pixels.
func (p *Projectile) Center() core.Point {
	h := p.Radius / 2
	return core.Pt(
		p.Pos.X+h*math.Cos(p.Rotation),
		p.Pos.Y+h*math.Sin(p.Rotation),
	).Ceil()
}

// Draw returns a segment one size long along the facing.
func (p *Projectile) Draw() core.DrawRequest {
	tip := core.Pt(p.Radius*math.Cos(p.Rotation), p.Radius*math.Sin(p.Rotation)).Ceil()
	return core.DrawRequest{
		Kind:     core.KindProjectile,
		Vertices: []core.Point{{}, tip},
		Offset:   p.Pos,
	}
}
