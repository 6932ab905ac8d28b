package hexlife

// Next applies the survival and birth rules to a single cell.
func Next(cell Cell, liveNeighbors uint8) Cell {
	switch {
	case cell == Alive && liveNeighbors < 2:
		return Dead
	case cell == Alive && (liveNeighbors == 2 || liveNeighbors == 3):
		return Alive
	case cell == Alive && liveNeighbors > 3:
		return Dead
	case cell == Dead && liveNeighbors == 3:
		return Alive
	default:
		return cell
	}
}

// Tick advances the universe by one generation. Every next state is computed
// from the previous generation before the buffers are swapped.
func (u *Universe) Tick() {
	for row := 0; row < u.h; row++ {
		for col := 0; col < u.w; col++ {
			idx := u.Index(row, col)
			u.nxt[idx] = Next(u.cur[idx], u.LiveNeighborCount(row, col))
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
}
