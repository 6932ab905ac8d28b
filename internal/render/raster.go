package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"hex-life/pkg/sims/hexlife"
)

// Raster converts a w by h cell buffer into an image with one scale-by-scale
// square per cell.
func Raster(cells []hexlife.Cell, w, h, scale int, on, off color.Color) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	base := image.NewRGBA(image.Rect(0, 0, w, h))
	fillBinaryRGBA(base.Pix, cells[:w*h], on, off)
	if scale == 1 {
		return base
	}
	out := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := image.Rect(x*scale, y*scale, (x+1)*scale, (y+1)*scale)
			draw.Draw(out, r, image.NewUniform(base.RGBAAt(x, y)), image.Point{}, draw.Src)
		}
	}
	return out
}

// WritePNG encodes the universe's current generation as a PNG.
func WritePNG(dst io.Writer, u *hexlife.Universe, scale int) error {
	img := Raster(u.Cells(), u.Width(), u.Height(), scale, color.Black, color.White)
	if err := png.Encode(dst, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
