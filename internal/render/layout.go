package render

import "math"

// Layout maps grid coordinates of a pointy-top hex grid to pixels. Odd rows
// are shifted half a hex to the right, matching the neighbor rule.
type Layout struct {
	outer float64 // center to corner
	inner float64 // center to flat side
}

// NewLayout returns a layout for hexes with the given corner radius.
func NewLayout(radius float64) Layout {
	return Layout{outer: radius, inner: radius * math.Sin(math.Pi/3)}
}

// Center returns the pixel position of the center of (row, col).
func (l Layout) Center(row, col int) (x, y float64) {
	x = l.outer + float64(col)*2*l.inner + float64(row%2)*l.inner
	y = l.outer + float64(row)*1.5*l.outer
	return x, y
}

// Corners returns the six corners of (row, col), starting at the bottom tip.
func (l Layout) Corners(row, col int) [6][2]float64 {
	cx, cy := l.Center(row, col)
	var pts [6][2]float64
	for i := range pts {
		a := float64(i) * math.Pi / 3
		pts[i] = [2]float64{cx + l.outer*math.Sin(a), cy + l.outer*math.Cos(a)}
	}
	return pts
}

// Bounds returns the pixel size needed to draw a w by h grid.
func (l Layout) Bounds(w, h int) (int, int) {
	pw := l.outer + float64(w)*2*l.inner
	ph := 2*l.outer + float64(h-1)*1.5*l.outer
	return int(math.Ceil(pw)), int(math.Ceil(ph))
}

// Pick returns the hex of a w by h grid containing the pixel (x, y). ok is
// false when the point lies outside every hex of the grid.
func (l Layout) Pick(x, y float64, w, h int) (row, col int, ok bool) {
	ry := (y - l.outer) / (1.5 * l.outer)
	top := int(math.Floor(ry))

	best := math.Inf(1)
	for r := top; r <= top+1; r++ {
		shift := 0.0
		if r%2 != 0 {
			shift = l.inner
		}
		c := int(math.Round((x - l.outer - shift) / (2 * l.inner)))
		cx := l.outer + float64(c)*2*l.inner + shift
		cy := l.outer + float64(r)*1.5*l.outer
		if d := math.Hypot(x-cx, y-cy); d < best {
			best, row, col = d, r, c
		}
	}
	ok = row >= 0 && row < h && col >= 0 && col < w && best <= l.outer
	return row, col, ok
}
