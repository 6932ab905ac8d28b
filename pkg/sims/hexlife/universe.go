// Package hexlife implements a Game of Life variant on a toroidal grid with
// hexagonal adjacency. Hexes are stored in a flat row-major buffer; odd rows
// sit half a hex to the right of even rows, so every cell has six neighbors.
package hexlife

import (
	"fmt"
	"math"

	"hex-life/pkg/core"
)

// RandomSource returns a uniform draw in [0, 1).
type RandomSource func() float64

// Universe is the hex grid. It is not safe for concurrent use; a single host
// drives Toggle and Tick.
type Universe struct {
	w, h int
	cur  []Cell
	nxt  []Cell
}

// New returns a universe whose cells are independently Alive with
// probability 0.5. rnd is called once per cell in index order.
func New(w, h int, rnd RandomSource) *Universe {
	if rnd == nil {
		panic("hexlife: nil random source")
	}
	u := alloc(w, h)
	u.fill(rnd)
	return u
}

// NewFromCells returns a universe holding a copy of cells, which must be laid
// out row-major with exactly w*h entries.
func NewFromCells(w, h int, cells []Cell) *Universe {
	u := alloc(w, h)
	if len(cells) != len(u.cur) {
		panic(fmt.Sprintf("hexlife: got %d cells for a %dx%d grid", len(cells), w, h))
	}
	copy(u.cur, cells)
	return u
}

func alloc(w, h int) *Universe {
	if w < 1 || h < 1 {
		panic(fmt.Sprintf("hexlife: invalid dimensions %dx%d", w, h))
	}
	if h > math.MaxInt/w {
		panic(fmt.Sprintf("hexlife: dimensions %dx%d overflow the cell index", w, h))
	}
	total := w * h
	return &Universe{w: w, h: h, cur: make([]Cell, total), nxt: make([]Cell, total)}
}

func (u *Universe) fill(rnd RandomSource) {
	for i := range u.cur {
		if rnd() < 0.5 {
			u.cur[i] = Alive
			continue
		}
		u.cur[i] = Dead
	}
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "hexlife" }

// Width returns the number of columns.
func (u *Universe) Width() int { return u.w }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.h }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.w, H: u.h} }

// Cells exposes the current generation. The slice is the live buffer and is
// replaced on every Tick, so callers must not hold on to it or write to it.
func (u *Universe) Cells() []Cell { return u.cur }

// Index returns the linear buffer index for (row, col). It neither wraps nor
// checks bounds.
func (u *Universe) Index(row, col int) int { return row*u.w + col }

// Toggle flips the cell at (row, col). Out-of-range coordinates panic.
func (u *Universe) Toggle(row, col int) {
	if row < 0 || row >= u.h || col < 0 || col >= u.w {
		panic(fmt.Sprintf("hexlife: toggle (%d,%d) outside %dx%d grid", row, col, u.w, u.h))
	}
	idx := u.Index(row, col)
	u.cur[idx] = u.cur[idx].Toggled()
}

// Reset re-randomizes every cell from a generator seeded with seed.
func (u *Universe) Reset(seed int64) {
	u.fill(core.NewRNG(seed).Float64)
}

// Alive returns the number of live cells in the current generation.
func (u *Universe) Alive() int {
	n := 0
	for _, c := range u.cur {
		n += int(c.Count())
	}
	return n
}
