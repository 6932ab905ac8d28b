package app

import (
	"hex-life/internal/ui"
	"hex-life/pkg/core"
	"hex-life/pkg/sims/hexlife"
)

// Automaton is the part of a universe the hosts drive.
type Automaton interface {
	Size() core.Size
	Cells() []hexlife.Cell
	Toggle(row, col int)
	Tick()
	Reset(seed int64)
	Parameters() core.ParameterSnapshot
}

// Controller holds the host-side run state shared by the GUI and terminal
// front ends: paused or running, pending single steps and the generation
// counter the universe itself does not keep.
type Controller struct {
	sim        Automaton
	running    bool
	tickOnce   bool
	generation int
	seed       int64
}

// NewController returns a paused controller for sim.
func NewController(sim Automaton, seed int64) *Controller {
	return &Controller{sim: sim, seed: seed}
}

// Sim returns the driven automaton.
func (c *Controller) Sim() Automaton { return c.sim }

// Running reports whether generations advance on every update.
func (c *Controller) Running() bool { return c.running }

// Generation returns the number of ticks since the last reset.
func (c *Controller) Generation() int { return c.generation }

// Seed returns the seed of the last reset.
func (c *Controller) Seed() int64 { return c.seed }

// TogglePause starts or stops continuous ticking.
func (c *Controller) TogglePause() { c.running = !c.running }

// StepOnce requests a single tick on the next update, even while paused.
func (c *Controller) StepOnce() { c.tickOnce = true }

// Reset re-randomizes the universe and clears the generation counter.
func (c *Controller) Reset(seed int64) {
	c.seed = seed
	c.sim.Reset(seed)
	c.generation = 0
	c.tickOnce = false
}

// Toggle flips the cell at (row, col). Coordinates outside the grid are
// ignored and reported as false.
func (c *Controller) Toggle(row, col int) bool {
	s := c.sim.Size()
	if row < 0 || row >= s.H || col < 0 || col >= s.W {
		return false
	}
	c.sim.Toggle(row, col)
	return true
}

// Update advances the universe when running or when a single step is pending,
// and reports whether it did.
func (c *Controller) Update() bool {
	if !c.running && !c.tickOnce {
		return false
	}
	c.sim.Tick()
	c.generation++
	c.tickOnce = false
	return true
}

// Status snapshots the state for display.
func (c *Controller) Status() ui.Status {
	return ui.Status{
		Generation: c.generation,
		Running:    c.running,
		Params:     c.sim.Parameters(),
	}
}
