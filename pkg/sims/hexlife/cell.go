package hexlife

// Cell is the state of a single hex. The raw value is 0 or 1 so hosts can use
// it directly as a colour or opacity index.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

const (
	deadGlyph  = '⬡'
	aliveGlyph = '⬢'
)

// Count converts the cell into its contribution to a live-neighbor sum.
func (c Cell) Count() uint8 {
	if c == Alive {
		return 1
	}
	return 0
}

// Toggled returns the opposite state.
func (c Cell) Toggled() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

// Glyph returns the character used by Render.
func (c Cell) Glyph() rune {
	if c == Alive {
		return aliveGlyph
	}
	return deadGlyph
}

func (c Cell) String() string { return string(c.Glyph()) }
