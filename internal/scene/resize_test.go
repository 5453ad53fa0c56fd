package scene

import (
	"testing"

	"github.com/example/whiteboard/internal/geom"
)

func TestResizeBoxCorners(t *testing.T) {
	tests := []struct {
		corner   Corner
		d        geom.Vec2
		wantPos  geom.Vec2
		wantSize geom.Vec2
	}{
		{BottomRight, geom.V(5, 10), geom.V(10, 10), geom.V(25, 30)},
		{TopLeft, geom.V(5, 10), geom.V(15, 20), geom.V(15, 10)},
		{TopRight, geom.V(5, 10), geom.V(10, 20), geom.V(25, 10)},
		{BottomLeft, geom.V(-5, -10), geom.V(5, 10), geom.V(25, 10)},
		// collapsing keeps the opposite edge and a minimum extent
		{TopLeft, geom.V(100, 100), geom.V(29, 29), geom.V(1, 1)},
		{BottomRight, geom.V(-100, -100), geom.V(10, 10), geom.V(1, 1)},
	}
	for _, tt := range tests {
		r := rect(10, 10, 20, 20)
		var rem float64
		Resize(r, tt.corner, tt.d, &rem)
		if r.Pos != tt.wantPos || r.Size != tt.wantSize {
			t.Errorf("%v by %v: pos %v size %v, want %v %v", tt.corner, tt.d, r.Pos, r.Size, tt.wantPos, tt.wantSize)
		}
	}
}

func TestResizeTextFontSize(t *testing.T) {
	txt := NewText(geom.V(0, 0), white)
	txt.Content = "abcd"
	txt.Measure(measureFunc(func(s string, size, _ float64) geom.Vec2 {
		return geom.V(float64(len(s))*size/2, size)
	}), 1)
	// width is 80 at size 40: every 2 world units is one point
	var rem float64
	Resize(txt, BottomRight, geom.V(3, 0), &rem)
	if txt.FontSize != 41 || rem != 0.5 {
		t.Errorf("FontSize %d rem %v", txt.FontSize, rem)
	}
	Resize(txt, BottomLeft, geom.V(1000, 0), &rem)
	if txt.FontSize != MinFontSize {
		t.Errorf("FontSize %d, want floor %d", txt.FontSize, MinFontSize)
	}
}

func TestCornerString(t *testing.T) {
	tests := []struct {
		c    Corner
		want string
	}{
		{TopLeft, "top-left"},
		{BottomRight, "bottom-right"},
		{Corner(-1), "unknown"},
		{Corner(4), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("Corner(%d).String() = %q, want %q", int(tc.c), got, tc.want)
		}
	}
}
