// Package term hosts a hexlife universe in a terminal using tcell. The grid is
// drawn with the same staggered glyph layout as Universe.Render.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"hex-life/internal/app"
	"hex-life/internal/core"
	"hex-life/internal/ui"
)

const frameInterval = time.Second / 30

// Host runs the terminal front end.
type Host struct {
	screen tcell.Screen
	ctl    *app.Controller
	step   *core.FixedStep

	alive, dead tcell.Style
	text        tcell.Style

	buttons tcell.ButtonMask
	now     func() int64
}

// New returns a host drawing to screen. The screen must already be
// initialised; tps paces generations while running.
func New(screen tcell.Screen, ctl *app.Controller, tps int) *Host {
	return &Host{
		screen: screen,
		ctl:    ctl,
		step:   core.NewFixedStep(tps),
		alive:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		dead:   tcell.StyleDefault.Foreground(tcell.ColorGray),
		text:   tcell.StyleDefault,
		now:    func() int64 { return time.Now().UnixNano() },
	}
}

// CellAt maps a terminal position to a cell of a w by h grid laid out like
// Universe.Render: even rows start one column in and every cell is two
// columns wide.
func CellAt(x, y, w, h int) (row, col int, ok bool) {
	if y < 0 || y >= h {
		return 0, 0, false
	}
	indent := 0
	if y%2 == 0 {
		indent = 1
	}
	if x < indent {
		return 0, 0, false
	}
	col = (x - indent) / 2
	if col >= w {
		return 0, 0, false
	}
	return y, col, true
}

// Run processes input and advances the universe until ctx is cancelled or
// the user quits.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse()
	defer h.screen.DisableMouse()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go h.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(min(frameInterval, h.step.Step()))
	defer ticker.Stop()

	h.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.handle(ev) {
				return nil
			}
			h.draw()
		case <-ticker.C:
			if h.step.ShouldStep() && h.ctl.Update() {
				h.draw()
			}
		}
	}
}

// handle applies one event and reports whether the host should exit.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			h.ctl.TogglePause()
		case 'n':
			h.ctl.StepOnce()
			h.ctl.Update()
		case 'r':
			h.ctl.Reset(h.ctl.Seed())
		case 's':
			h.ctl.Reset(h.now())
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons() & tcell.Button1
		if pressed != 0 && h.buttons&tcell.Button1 == 0 {
			x, y := ev.Position()
			s := h.ctl.Sim().Size()
			if row, col, ok := CellAt(x, y, s.W, s.H); ok {
				h.ctl.Toggle(row, col)
			}
		}
		h.buttons = ev.Buttons()
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

func (h *Host) draw() {
	h.screen.Clear()
	s := h.ctl.Sim().Size()
	cells := h.ctl.Sim().Cells()
	for row := 0; row < s.H; row++ {
		x := 0
		if row%2 == 0 {
			x = 1
		}
		for col := 0; col < s.W; col++ {
			c := cells[row*s.W+col]
			style := h.dead
			if c.Count() == 1 {
				style = h.alive
			}
			h.screen.SetContent(x+2*col, row, c.Glyph(), nil, style)
		}
	}

	y := s.H + 1
	for _, line := range append(h.ctl.Status().Lines(), ui.Help()...) {
		h.puts(0, y, line)
		y++
	}
	h.screen.Show()
}

func (h *Host) puts(x, y int, s string) {
	for _, r := range s {
		h.screen.SetContent(x, y, r, nil, h.text)
		x++
	}
}
