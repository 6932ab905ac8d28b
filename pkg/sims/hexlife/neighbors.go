package hexlife

// LiveNeighborCount returns how many of the six hex neighbors of (row, col)
// are alive. The grid wraps in both directions.
//
// Even rows are shifted half a hex to the left of odd rows, so the second
// neighbor above and below sits at col-1 for even rows and col+1 for odd ones.
func (u *Universe) LiveNeighborCount(row, col int) uint8 {
	w, h := u.w, u.h
	left := (col + w - 1) % w
	right := (col + 1) % w
	offset := right
	if row%2 == 0 {
		offset = left
	}

	var count uint8
	for _, nRow := range [2]int{(row + h - 1) % h, (row + 1) % h} {
		count += u.cur[u.Index(nRow, col)].Count()
		count += u.cur[u.Index(nRow, offset)].Count()
	}
	count += u.cur[u.Index(row, left)].Count()
	count += u.cur[u.Index(row, right)].Count()
	return count
}
