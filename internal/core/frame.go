package core

import "math"

// EntityKind identifies the variant of a drawable entity.
type EntityKind int

const (
	KindShip EntityKind = iota
	KindProjectile
	KindAsteroid
)

// String returns the lowercase name of the kind.
func (k EntityKind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindProjectile:
		return "projectile"
	case KindAsteroid:
		return "asteroid"
	default:
		return "unknown"
	}
}

// DrawRequest is one outline handed to the renderer.
// Vertices are relative to Offset; a closed request also connects the last
// vertex back to the first.
type DrawRequest struct {
	Kind     EntityKind
	Vertices []Point
	Offset   Point
	Closed   bool
}

// Frame is everything the renderer needs for one visual frame.
type Frame struct {
	Tick       uint64
	StageW     float64
	StageH     float64
	Foreground Color
	Background Color
	Requests   []DrawRequest
	State      GameState
}

// Rasterize projects the frame's stage onto dst and draws every request as
// connected line segments. Each kind is drawn with its own rune.
func (f Frame) Rasterize(dst *Screen, runes map[EntityKind]rune) {
	if f.StageW <= 0 || f.StageH <= 0 {
		return
	}
	sx := float64(dst.Width()) / f.StageW
	sy := float64(dst.Height()) / f.StageH

	project := func(p Point) (int, int) {
		return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
	}

	for _, req := range f.Requests {
		r, ok := runes[req.Kind]
		if !ok {
			r = '*'
		}
		cell := Cell{Rune: r, Color: f.Foreground}

		n := len(req.Vertices)
		switch {
		case n == 0:
			continue
		case n == 1:
			x, y := project(req.Vertices[0].Add(req.Offset))
			dst.SetCell(x, y, cell)
			continue
		}

		last := n - 1
		if req.Closed {
			last = n
		}
		for i := 0; i < last; i++ {
			a := req.Vertices[i].Add(req.Offset)
			b := req.Vertices[(i+1)%n].Add(req.Offset)
			x0, y0 := project(a)
			x1, y1 := project(b)
			dst.DrawLine(x0, y0, x1, y1, cell)
		}
	}
}
