package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Asteroid is a drifting polygon with a size tier. Its outline is generated
// once, relative to the local origin, and only translated afterwards.
type Asteroid struct {
	Body
	tier  int
	shape []core.Point
}

// NewAsteroid spawns an asteroid of the given tier with a fresh random outline.
func NewAsteroid(rng *rand.Rand, pos, vel core.Point, tier int, cfg config.AsteroidConfig) *Asteroid {
	radius := cfg.Radius(tier)
	return &Asteroid{
		Body: Body{Pos: pos, Vel: vel, Radius: radius},
		tier: tier,
		shape: GenerateShape(rng, core.Point{}, radius, ShapeParams{
			Step:     cfg.ShapeStep,
			MinScale: cfg.ShapeMinScale,
		}),
	}
}

// Tier returns the size class, 1 being the smallest.
func (a *Asteroid) Tier() int {
	return a.tier
}

// Shape returns the outline relative to the asteroid's position.
func (a *Asteroid) Shape() []core.Point {
	return a.shape
}

// Step drifts the asteroid, wrapping at the stage edges.
func (a *Asteroid) Step(st Stage) {
	a.Advance(st, PolicyWrap)
}

// Center is the asteroid's position; the outline is generated around it.
func (a *Asteroid) Center() core.Point {
	return a.Pos
}

// Fragments returns the children spawned when this asteroid is destroyed:
// FragmentCount asteroids one tier smaller at the current position, each with
// its own outline and a velocity drawn from the configured range per axis.
// The smallest tier produces none.
func (a *Asteroid) Fragments(rng *rand.Rand, cfg config.AsteroidConfig) []*Asteroid {
	if a.tier <= config.SmallestTier {
		return nil
	}
	children := make([]*Asteroid, 0, cfg.FragmentCount)
	for i, n := 0, cfg.FragmentCount; i < n; i++ {
		vel := core.Pt(
			randRange(rng, cfg.FragmentVelocityRange),
			randRange(rng, cfg.FragmentVelocityRange),
		)
		children = append(children, NewAsteroid(rng, a.Pos, vel, a.tier-1, cfg))
	}
	return children
}

// Draw returns the closed outline translated by the position.
func (a *Asteroid) Draw() core.DrawRequest {
	return core.DrawRequest{
		Kind:     core.KindAsteroid,
		Vertices: a.shape,
		Offset:   a.Pos,
		Closed:   true,
	}
}

// randRange returns a uniform value in [-r, r).
func randRange(rng *rand.Rand, r float64) float64 {
	return (rng.Float64()*2 - 1) * r
}
