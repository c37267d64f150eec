package asteroids

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Resolution summarizes one collision pass.
type Resolution struct {
	ShipDestroyed bool
	Destroyed     []core.Destroyed // asteroids and the ship, in detection order
	Spawned       int              // fragments appended to the live set
	Score         int
}

// Resolver runs the per-tick pairwise checks between the ship, its
// projectiles and the live asteroids.
type Resolver struct {
	cfg    config.AsteroidConfig
	rng    *rand.Rand
	logger *log.Logger
}

// NewResolver creates a resolver drawing fragment shapes and velocities from rng.
// A nil logger discards output.
func NewResolver(cfg config.AsteroidConfig, rng *rand.Rand, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resolver{cfg: cfg, rng: rng, logger: logger}
}

// Resolve tests every live asteroid against the ship and every live
// projectile. It never mutates the asteroid slice it reads: fragments are
// collected during the pass and the returned slice is rebuilt from the
// survivors followed by the fragments, so nothing born this tick is tested
// this tick. Hit projectiles are purged from the ship.
func (r *Resolver) Resolve(ship *Ship, asteroids []*Asteroid) ([]*Asteroid, Resolution) {
	var (
		res       Resolution
		fragments []*Asteroid
	)

	for _, a := range asteroids {
		if a.IsDestroyed() {
			continue
		}

		if !ship.IsDestroyed() && Intersects(a, ship, r.cfg.CollisionFactor) {
			ship.Destroy()
			res.ShipDestroyed = true
			res.Destroyed = append(res.Destroyed, core.Destroyed{Kind: core.KindShip, Position: ship.Pos})
			r.logger.Debug("ship destroyed", "x", ship.Pos.X, "y", ship.Pos.Y, "tier", a.Tier())
		}

		for _, p := range ship.Projectiles() {
			if p.IsDestroyed() {
				continue
			}
			if a.IsDestroyed() && r.cfg.Fragmentation == config.FragmentSingleHit {
				break
			}
			if !Intersects(a, p, r.cfg.CollisionFactor) {
				continue
			}

			p.Destroy()
			if !a.IsDestroyed() {
				a.Destroy()
				res.Score += r.cfg.Score(a.Tier())
				res.Destroyed = append(res.Destroyed, core.Destroyed{
					Kind:     core.KindAsteroid,
					Tier:     a.Tier(),
					Position: a.Pos,
				})
			}

			children := a.Fragments(r.rng, r.cfg)
			fragments = append(fragments, children...)
			r.logger.Debug("asteroid hit",
				"tier", a.Tier(), "x", a.Pos.X, "y", a.Pos.Y, "fragments", len(children))
		}
	}

	ship.PurgeProjectiles()

	live := make([]*Asteroid, 0, len(asteroids)+len(fragments))
	for _, a := range asteroids {
		if !a.IsDestroyed() {
			live = append(live, a)
		}
	}
	live = append(live, fragments...)
	res.Spawned = len(fragments)

	return live, res
}
