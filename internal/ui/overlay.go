//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 16
)

// Overlay draws the status panel and, on demand, the key bindings on top of
// the grid.
type Overlay struct {
	showHelp bool
	backdrop *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.backdrop = ebiten.NewImage(1, 1)
	o.backdrop.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	return o
}

// Update toggles the help panel with H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw paints the status lines in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image, s Status) {
	lines := s.Lines()
	if o.showHelp {
		lines = append(lines, Help()...)
	} else {
		lines = append(lines, "h      help")
	}

	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*panelPadding), float64(len(lines)*lineHeight+panelPadding))
	screen.DrawImage(o.backdrop, op)

	for i, l := range lines {
		text.Draw(screen, l, face, panelPadding, panelPadding+lineHeight*i+10, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
