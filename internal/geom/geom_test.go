package geom

import (
	"image"
	"testing"
)

func TestRectFromPointsCanonical(t *testing.T) {
	want := R(10, 20, 30, 40)
	for _, c := range [][2]Vec2{
		{V(10, 20), V(40, 60)},
		{V(40, 60), V(10, 20)},
		{V(40, 20), V(10, 60)},
		{V(10, 60), V(40, 20)},
	} {
		if got := RectFromPoints(c[0], c[1]); got != want {
			t.Errorf("RectFromPoints(%v, %v) = %v, want %v", c[0], c[1], got, want)
		}
	}
}

func TestContainsEdges(t *testing.T) {
	r := R(0, 0, 10, 10)
	for _, p := range []Vec2{V(0, 0), V(10, 10), V(5, 0), V(0, 5)} {
		if !r.Contains(p) {
			t.Errorf("%v should contain %v", r, p)
		}
	}
	for _, p := range []Vec2{V(-0.1, 5), V(10.1, 5), V(5, 11)} {
		if r.Contains(p) {
			t.Errorf("%v should not contain %v", r, p)
		}
	}
}

func TestInsetUnion(t *testing.T) {
	r := R(10, 10, 20, 20)
	if got := r.Inset(2); got != R(12, 12, 16, 16) {
		t.Errorf("Inset = %v", got)
	}
	if got := r.Inset(-5); got != R(5, 5, 30, 30) {
		t.Errorf("Inset(-5) = %v", got)
	}
	if got := r.Union(R(0, 0, 5, 5)); got != R(0, 0, 30, 30) {
		t.Errorf("Union = %v", got)
	}
	if got := (Rect{}).Union(r); got != r {
		t.Errorf("empty Union = %v", got)
	}
}

func TestIntersect(t *testing.T) {
	r := R(10, 10, 20, 20)
	if got := r.Intersect(R(20, 0, 50, 15)); got != R(20, 10, 10, 5) {
		t.Errorf("Intersect = %v", got)
	}
	if got := r.Intersect(R(0, 0, 100, 100)); got != r {
		t.Errorf("Intersect containing = %v", got)
	}
	if got := r.Intersect(R(40, 40, 5, 5)); got != (Rect{}) {
		t.Errorf("disjoint Intersect = %v", got)
	}
}

func TestImageRoundsOutward(t *testing.T) {
	r := Rect{V(1.5, 2.2), V(3.1, 4.9)}
	if got := r.Image(); got != image.Rect(1, 2, 4, 5) {
		t.Errorf("Image() = %v", got)
	}
}

func TestSegmentCircle(t *testing.T) {
	a, b := V(0, 0), V(100, 0)
	if !SegmentCircle(a, b, V(50, 5), 10) {
		t.Error("near middle should hit")
	}
	if SegmentCircle(a, b, V(120, 0), 10) {
		t.Error("beyond endpoint should miss")
	}
	if !SegmentCircle(a, a, V(3, 4), 5) {
		t.Error("degenerate segment at distance 5 should hit")
	}
}
