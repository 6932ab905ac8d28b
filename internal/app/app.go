//go:build ebiten

package app

import (
	"time"

	"hex-life/internal/render"
	"hex-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	layout  render.Layout
	painter *render.HexPainter
	overlay *ui.Overlay
}

// New constructs a Game drawing hexes with the given corner radius.
func New(ctl *Controller, radius float64) *Game {
	layout := render.NewLayout(radius)
	return &Game{
		ctl:     ctl,
		layout:  layout,
		painter: render.NewHexPainter(layout),
		overlay: ui.NewOverlay(),
	}
}

// WindowSize returns the pixel size of the grid.
func (g *Game) WindowSize() (int, int) {
	s := g.ctl.Sim().Size()
	return g.layout.Bounds(s.W, s.H)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Reset(g.ctl.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctl.Reset(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s := g.ctl.Sim().Size()
		if row, col, ok := g.layout.Pick(float64(x), float64(y), s.W, s.H); ok {
			g.ctl.Toggle(row, col)
		}
	}

	g.overlay.Update()
	g.ctl.Update()
	return nil
}

// Draw renders the current generation and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.ctl.Sim().Size()
	g.painter.Draw(screen, g.ctl.Sim().Cells(), s.W, s.H)
	g.overlay.Draw(screen, g.ctl.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
