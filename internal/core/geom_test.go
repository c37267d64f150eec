package core

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
}

func TestPointCeil(t *testing.T) {
	tests := []struct {
		name     string
		in       Point
		expected Point
	}{
		{"positive fractions", Pt(1.2, 3.9), Pt(2, 4)},
		{"negative fractions", Pt(-1.2, -3.9), Pt(-1, -3)},
		{"integers unchanged", Pt(5, -7), Pt(5, -7)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Ceil(); got != tc.expected {
				t.Errorf("Ceil() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPointDistance(t *testing.T) {
	d := Pt(0, 0).Distance(Pt(3, 4))
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance() = %f, expected 5", d)
	}
	if Pt(3, 4).Distance(Pt(0, 0)) != d {
		t.Error("Distance() should be symmetric")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
