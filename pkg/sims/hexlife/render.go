package hexlife

import "strings"

// Render draws the grid as text, one line per row. Even rows are indented by
// a space so the rows stagger like hexes in a monospaced font.
func (u *Universe) Render() string {
	var b strings.Builder
	// Each glyph is three bytes in UTF-8, followed by a space.
	b.Grow(u.h * (u.w*4 + 2))
	for row := 0; row < u.h; row++ {
		if row%2 == 0 {
			b.WriteByte(' ')
		}
		for _, c := range u.cur[u.Index(row, 0):u.Index(row+1, 0)] {
			b.WriteRune(c.Glyph())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String implements fmt.Stringer.
func (u *Universe) String() string { return u.Render() }
