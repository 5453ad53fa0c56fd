package viewport

import (
	"math/rand"
	"testing"

	"github.com/example/whiteboard/internal/geom"
)

const eps = 1e-6

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		v := Viewport{
			Offset: geom.V(r.Float64()*2000-1000, r.Float64()*2000-1000),
			Scale:  MinScale + r.Float64()*(MaxScale-MinScale),
		}
		p := geom.V(r.Float64()*4000-2000, r.Float64()*4000-2000)
		if got := v.ToWorld(v.ToScreen(p)); !got.Eq(p, eps*(1+v.Scale)) {
			t.Fatalf("ToWorld(ToScreen(%v)) = %v with %+v", p, got, v)
		}
		if got := v.ToScreen(v.ToWorld(p)); !got.Eq(p, eps*(1+v.Scale)) {
			t.Fatalf("ToScreen(ToWorld(%v)) = %v with %+v", p, got, v)
		}
	}
}

func TestZoomKeepsCursorAnchored(t *testing.T) {
	tests := []struct {
		name   string
		vp     Viewport
		ticks  float64
		cursor geom.Vec2
	}{
		{"in at origin", New(), 1, geom.V(0, 0)},
		{"in off centre", New(), 1, geom.V(300, 120)},
		{"out twice", Viewport{Offset: geom.V(40, -7), Scale: 2}, -2, geom.V(640, 360)},
		{"clamped high", Viewport{Scale: MaxScale - 1}, 5, geom.V(10, 20)},
		{"clamped low", Viewport{Scale: MinScale + 0.01}, -4, geom.V(900, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := tt.vp
			before := vp.ToWorld(tt.cursor)
			vp.Zoom(tt.ticks, tt.cursor)
			if after := vp.ToWorld(tt.cursor); !after.Eq(before, eps) {
				t.Errorf("anchor moved: %v -> %v", before, after)
			}
			if vp.Scale < MinScale || vp.Scale > MaxScale {
				t.Errorf("scale %v out of range", vp.Scale)
			}
		})
	}
}

func TestZoomStep(t *testing.T) {
	vp := New()
	vp.Zoom(1, geom.V(100, 100))
	if vp.Scale != 1.2 {
		t.Errorf("Scale = %v, want 1.2", vp.Scale)
	}
	vp.Zoom(0, geom.V(5, 5))
	if vp.Scale != 1.2 {
		t.Errorf("zero ticks changed scale to %v", vp.Scale)
	}
	if vp.Percent() != 120 {
		t.Errorf("Percent = %d", vp.Percent())
	}
}

func TestPanFollowsCursor(t *testing.T) {
	vp := Viewport{Scale: 2.5}
	grab := geom.V(100, 100)
	world := vp.ToWorld(grab)
	vp.Pan(geom.V(30, -10))
	if got := vp.ToScreen(world); !got.Eq(geom.V(130, 90), eps) {
		t.Errorf("grabbed point at %v, want (130,90)", got)
	}
}

func TestZoomCenter(t *testing.T) {
	vp := New()
	size := geom.V(800, 600)
	mid := vp.ToWorld(size.Div(2))
	vp.ZoomCenter(-1, size)
	if got := vp.ToWorld(size.Div(2)); !got.Eq(mid, eps) {
		t.Errorf("centre moved %v -> %v", mid, got)
	}
}
