package asteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ShapeParams controls the jagged-circle generator.
type ShapeParams struct {
	Step     float64 // Angle increment in radians
	MinScale float64 // Lower bound of the per-vertex radial scale, upper bound is 1
}

// VertexCount returns how many vertices GenerateShape produces for a step size.
func VertexCount(step float64) int {
	if step <= 0 {
		return 0
	}
	return int(math.Ceil(2 * math.Pi / step))
}

// GenerateShape returns a closed polygon approximating a circle of the given
// radius around center. Each vertex gets a uniform random radial scale in
// [MinScale, 1) and is snapped up to whole pixels. The loop is implicitly
// closed: the renderer connects the last vertex back to the first.
func GenerateShape(rng *rand.Rand, center core.Point, radius float64, p ShapeParams) []core.Point {
	n := VertexCount(p.Step)
	shape := make([]core.Point, 0, n)

	for i := 0; i < n; i++ {
		angle := float64(i) * p.Step
		r := (p.MinScale + rng.Float64()*(1-p.MinScale)) * radius
		v := core.Pt(
			center.X+r*math.Sin(angle),
			center.Y+r*math.Cos(angle),
		)
		shape = append(shape, v.Ceil())
	}
	return shape
}
