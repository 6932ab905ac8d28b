package render

import (
	"math"
	"testing"
)

func TestPickRoundTripsCenters(t *testing.T) {
	l := NewLayout(20)
	const w, h = 6, 5
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			x, y := l.Center(row, col)
			for _, d := range [][2]float64{{0, 0}, {8, 0}, {-8, 3}, {0, -12}, {5, 10}} {
				r, c, ok := l.Pick(x+d[0], y+d[1], w, h)
				if !ok || r != row || c != col {
					t.Fatalf("Pick(center(%d,%d)%+v) = (%d,%d,%v)", row, col, d, r, c, ok)
				}
			}
		}
	}
}

func TestPickOutside(t *testing.T) {
	l := NewLayout(20)
	if _, _, ok := l.Pick(0, 0, 4, 4); ok {
		t.Fatal("top-left corner pixel lies outside every hex")
	}
	x, y := l.Center(0, 3)
	if _, _, ok := l.Pick(x+2*l.inner, y, 4, 4); ok {
		t.Fatal("point right of the last column should be rejected")
	}
	x, y = l.Center(3, 0)
	if _, _, ok := l.Pick(x, y+1.5*l.outer, 4, 4); ok {
		t.Fatal("point below the last row should be rejected")
	}
}

func TestOddRowsShiftRight(t *testing.T) {
	l := NewLayout(10)
	x0, y0 := l.Center(0, 2)
	x1, y1 := l.Center(1, 2)
	if math.Abs((x1-x0)-l.inner) > 1e-9 {
		t.Fatalf("odd row offset = %f, want %f", x1-x0, l.inner)
	}
	if math.Abs((y1-y0)-15) > 1e-9 {
		t.Fatalf("row spacing = %f, want 15", y1-y0)
	}
}

func TestCornersOnRadius(t *testing.T) {
	l := NewLayout(12)
	cx, cy := l.Center(2, 3)
	for i, p := range l.Corners(2, 3) {
		if d := math.Hypot(p[0]-cx, p[1]-cy); math.Abs(d-12) > 1e-9 {
			t.Fatalf("corner %d at distance %f", i, d)
		}
	}
}

func TestBounds(t *testing.T) {
	w, h := NewLayout(20).Bounds(20, 20)
	if w != 713 || h != 610 {
		t.Fatalf("Bounds = %dx%d, want 713x610", w, h)
	}
}
