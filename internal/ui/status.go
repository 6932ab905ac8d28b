package ui

import (
	"fmt"
	"strings"

	"hex-life/pkg/core"
)

// Status is the host state shown next to the grid.
type Status struct {
	Generation int
	Running    bool
	Params     core.ParameterSnapshot
}

// Lines formats the status as short display lines, one per parameter group
// after a header line.
func (s Status) Lines() []string {
	state := "paused"
	if s.Running {
		state = "running"
	}
	lines := []string{fmt.Sprintf("gen %d (%s)", s.Generation, state)}
	for _, g := range s.Params.Groups {
		parts := make([]string, 0, len(g.Params))
		for _, p := range g.Params {
			parts = append(parts, p.Label+" "+p.Value)
		}
		lines = append(lines, g.Name+": "+strings.Join(parts, ", "))
	}
	return lines
}

// Help lists the key bindings shared by the hosts.
func Help() []string {
	return []string{
		"space  run / stop",
		"n      single tick",
		"click  toggle hex",
		"r      reset seed",
		"s      new seed",
		"q      quit",
	}
}
