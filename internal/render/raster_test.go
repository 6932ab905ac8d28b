package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"hex-life/pkg/sims/hexlife"
)

func TestRasterScalesCells(t *testing.T) {
	on := color.RGBA{R: 255, A: 255}
	off := color.RGBA{B: 255, A: 255}
	cells := []hexlife.Cell{hexlife.Alive, hexlife.Dead, hexlife.Dead, hexlife.Alive}
	img := Raster(cells, 2, 2, 3, on, off)

	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds = %v, want 6x6", b)
	}
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, on}, {2, 2, on}, {3, 0, off}, {5, 2, off},
		{0, 3, off}, {2, 5, off}, {3, 3, on}, {5, 5, on},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	u := hexlife.NewFromCells(3, 2, []hexlife.Cell{1, 0, 0, 0, 0, 1})
	var buf bytes.Buffer
	if err := WritePNG(&buf, u, 1); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0 {
		t.Fatal("alive cell should be black")
	}
	if r, _, _, _ := img.At(1, 0).RGBA(); r != 0xffff {
		t.Fatal("dead cell should be white")
	}
}
