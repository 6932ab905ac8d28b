//go:build ebiten

package render

import (
	"image"
	"image/color"

	"hex-life/pkg/sims/hexlife"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Vertex indices are uint16, so batches are flushed well before 65535.
const maxBatchVertices = 60000

// HexPainter draws a hexlife universe as outlined hexagons, filling the live
// ones.
type HexPainter struct {
	layout Layout

	Grid  color.Color
	Alive color.Color
	Back  color.Color

	src      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewHexPainter returns a painter using the provided layout.
func NewHexPainter(layout Layout) *HexPainter {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &HexPainter{
		layout: layout,
		Grid:   color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
		Alive:  color.RGBA{R: 0x1c, G: 0x1c, B: 0x1c, A: 0xff},
		Back:   color.White,
		src:    white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw paints every cell of a w by h universe onto dst.
func (p *HexPainter) Draw(dst *ebiten.Image, cells []hexlife.Cell, w, h int) {
	dst.Fill(p.Back)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if cells[row*w+col] == hexlife.Alive {
				path := p.path(row, col)
				p.append(dst, p.Alive, func(vs []ebiten.Vertex, is []uint16) ([]ebiten.Vertex, []uint16) {
					return path.AppendVerticesAndIndicesForFilling(vs, is)
				})
			}
		}
	}
	p.flush(dst)

	stroke := &vector.StrokeOptions{Width: 1, LineJoin: vector.LineJoinMiter, MiterLimit: 10}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			path := p.path(row, col)
			p.append(dst, p.Grid, func(vs []ebiten.Vertex, is []uint16) ([]ebiten.Vertex, []uint16) {
				return path.AppendVerticesAndIndicesForStroke(vs, is, stroke)
			})
		}
	}
	p.flush(dst)
}

func (p *HexPainter) path(row, col int) *vector.Path {
	var path vector.Path
	pts := p.layout.Corners(row, col)
	path.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt[0]), float32(pt[1]))
	}
	path.Close()
	return &path
}

// append adds the triangles produced by fn to the batch and paints them clr.
func (p *HexPainter) append(dst *ebiten.Image, clr color.Color, fn func([]ebiten.Vertex, []uint16) ([]ebiten.Vertex, []uint16)) {
	if len(p.vertices) > maxBatchVertices {
		p.flush(dst)
	}
	start := len(p.vertices)
	p.vertices, p.indices = fn(p.vertices, p.indices)

	r, g, b, a := clr.RGBA()
	for i := start; i < len(p.vertices); i++ {
		v := &p.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(r) / 0xffff
		v.ColorG = float32(g) / 0xffff
		v.ColorB = float32(b) / 0xffff
		v.ColorA = float32(a) / 0xffff
	}
}

func (p *HexPainter) flush(dst *ebiten.Image) {
	if len(p.indices) > 0 {
		dst.DrawTriangles(p.vertices, p.indices, p.src, &ebiten.DrawTrianglesOptions{})
	}
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
}
