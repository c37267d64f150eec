package core

import "testing"

func TestFrameRasterizeScalesStage(t *testing.T) {
	f := Frame{
		StageW:     640,
		StageH:     480,
		Foreground: ColorBrightWhite,
		Requests: []DrawRequest{
			{
				Kind:     KindProjectile,
				Vertices: []Point{Pt(0, 0), Pt(320, 0)},
				Offset:   Pt(0, 240),
			},
		},
	}

	s := NewScreen(64, 48)
	f.Rasterize(s, map[EntityKind]rune{KindProjectile: '+'})

	for x := 0; x <= 32; x++ {
		c := s.GetCell(x, 24)
		if c.Rune != '+' {
			t.Fatalf("expected '+' at (%d, 24), got %q", x, c.Rune)
		}
		if c.Color != ColorBrightWhite {
			t.Fatalf("expected foreground color at (%d, 24), got %d", x, c.Color)
		}
	}
	if s.Get(33, 24) != ' ' {
		t.Error("open polyline should stop at its last vertex")
	}
}

func TestFrameRasterizeClosedLoop(t *testing.T) {
	f := Frame{
		StageW: 10,
		StageH: 10,
		Requests: []DrawRequest{
			{
				Kind:     KindAsteroid,
				Vertices: []Point{Pt(0, 0), Pt(4, 0), Pt(4, 4)},
				Closed:   true,
			},
		},
	}

	s := NewScreen(10, 10)
	f.Rasterize(s, nil)

	// Closing edge runs from (4,4) back to (0,0).
	if s.Get(2, 2) != '*' {
		t.Error("closed request should connect last vertex to first")
	}
}

func TestFrameRasterizeEmptyStage(t *testing.T) {
	s := NewScreen(4, 4)
	Frame{Requests: []DrawRequest{{Vertices: []Point{Pt(1, 1)}}}}.Rasterize(s, nil)
	if s.Get(1, 1) != ' ' {
		t.Error("zero-sized stage should draw nothing")
	}
}

func TestFrameRasterizeClipsNegativeCoordinates(t *testing.T) {
	f := Frame{
		StageW: 640,
		StageH: 480,
		Requests: []DrawRequest{
			{Vertices: []Point{Pt(0, 0)}, Offset: Pt(-3, 240)},
		},
	}

	s := NewScreen(80, 48)
	f.Rasterize(s, nil)
	if s.Get(0, 24) != ' ' {
		t.Error("a point left of the stage should be clipped, not drawn in column 0")
	}
}
