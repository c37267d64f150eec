// Package asteroids implements the Asteroids simulation core: a ship that
// rotates, thrusts and fires at jagged asteroids that split into smaller
// fragments when hit. The package consumes input frames and produces draw
// requests; it knows nothing about terminals or timing.
package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Stage is the fixed playfield every mobile entity moves on.
type Stage struct {
	W, H float64
}

// BoundaryPolicy selects what happens when a body leaves the stage.
type BoundaryPolicy int

const (
	// PolicyWrap teleports the body to the opposite edge.
	PolicyWrap BoundaryPolicy = iota
	// PolicyCull marks the body destroyed.
	PolicyCull
)

// Mobile is anything advanced once per simulation tick.
type Mobile interface {
	Step(st Stage)
}

// Drawable is anything that contributes an outline to the render list.
type Drawable interface {
	Draw() core.DrawRequest
}

// Destructible is anything that can be removed from the simulation.
type Destructible interface {
	Destroy()
	IsDestroyed() bool
}

// Collider exposes what the proximity test reads from an entity.
type Collider interface {
	Center() core.Point
	Size() float64
}

// Entity is the full capability set of a simulated object.
type Entity interface {
	Mobile
	Drawable
	Destructible
	Collider
}

// Body is the kinematic state shared by every entity kind.
// Position may leave the stage transiently; it is renormalized only once it
// exceeds the stage by more than Size.
type Body struct {
	Pos       core.Point
	Vel       core.Point
	Rotation  float64 // radians
	Radius    float64 // render scale and collision size
	destroyed bool
}

// Size returns the bounding size used for rendering and collision.
func (b *Body) Size() float64 {
	return b.Radius
}

// Destroy marks the body for removal.
func (b *Body) Destroy() {
	b.destroyed = true
}

// IsDestroyed reports whether the body has been marked for removal.
func (b *Body) IsDestroyed() bool {
	return b.destroyed
}

// OutOfStage reports whether the position lies outside
// [-size, dimension+size] on either axis.
func (b *Body) OutOfStage(st Stage) bool {
	s := b.Radius
	return b.Pos.X > st.W+s ||
		b.Pos.Y > st.H+s ||
		b.Pos.X < -s ||
		b.Pos.Y < -s
}

// Wrap moves an out-of-stage body to the opposite edge, offset by its size.
func (b *Body) Wrap(st Stage) {
	s := b.Radius
	if b.Pos.X > st.W+s {
		b.Pos.X = -s
	} else if b.Pos.X < -s {
		b.Pos.X = st.W + s
	}
	if b.Pos.Y > st.H+s {
		b.Pos.Y = -s
	} else if b.Pos.Y < -s {
		b.Pos.Y = st.H + s
	}
}

// Advance integrates one tick (explicit Euler, no delta-time scaling) and
// applies the boundary policy. Destroyed bodies do not move.
func (b *Body) Advance(st Stage, policy BoundaryPolicy) {
	if b.destroyed {
		return
	}
	b.Pos = b.Pos.Add(b.Vel)

	if !b.OutOfStage(st) {
		return
	}
	switch policy {
	case PolicyWrap:
		b.Wrap(st)
	case PolicyCull:
		b.Destroy()
	}
}

// Intersects is the lenient proximity test: it hits when the distance between
// the two centers is below factor times the tester's size. The test is
// asymmetric; only the tester's size scales the threshold.
func Intersects(tester, other Collider, factor float64) bool {
	return tester.Center().Distance(other.Center()) < factor*tester.Size()
}

var (
	_ Entity = (*Ship)(nil)
	_ Entity = (*Projectile)(nil)
	_ Entity = (*Asteroid)(nil)
)
