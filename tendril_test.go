package tendril

import (
	"math"
	"testing"
)

const epsilon = 1e-6

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if r.Top() != 20 || r.Bottom() != 70 || r.Left() != 10 || r.Right() != 110 {
		t.Errorf("edges = (%f,%f,%f,%f), want (20,70,10,110)", r.Top(), r.Bottom(), r.Left(), r.Right())
	}
}

func TestRectContainsEdgesInclusive(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !r.Contains(0, 0) || !r.Contains(10, 10) {
		t.Error("edge points should be inside")
	}
	if r.Contains(10.01, 5) {
		t.Error("point right of the rect should be outside")
	}
}

func TestClamp(t *testing.T) {
	if clamp(-1, 0, 1) != 0 {
		t.Error("clamp below")
	}
	if clamp(2, 0, 1) != 1 {
		t.Error("clamp above")
	}
	if clamp(0.5, 0, 1) != 0.5 {
		t.Error("clamp inside")
	}
}
