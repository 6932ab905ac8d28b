package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells a grid of this size holds.
func (s Size) Cells() int { return s.W * s.H }
