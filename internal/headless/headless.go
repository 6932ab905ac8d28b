// Package headless advances a universe without a display, printing each
// generation as text.
package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"hex-life/pkg/sims/hexlife"
)

// Options controls a headless run.
type Options struct {
	Generations int
	// TPS paces generations; zero runs as fast as possible.
	TPS int
	// Quiet prints only the final generation.
	Quiet bool
}

// Summary describes a finished run.
type Summary struct {
	Generations int
	Alive       int
	Elapsed     time.Duration
}

// Run ticks u opts.Generations times, writing the rendered grid to out. It
// stops early with ctx.Err() when ctx is cancelled.
func Run(ctx context.Context, u *hexlife.Universe, opts Options, out io.Writer) (Summary, error) {
	start := time.Now()
	sum := Summary{}

	var pace <-chan time.Time
	if opts.TPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(opts.TPS))
		defer ticker.Stop()
		pace = ticker.C
	}

	if !opts.Quiet {
		if err := writeGeneration(out, 0, u); err != nil {
			return sum, err
		}
	}
	for gen := 1; gen <= opts.Generations; gen++ {
		if pace != nil {
			select {
			case <-ctx.Done():
				return finish(sum, u, start), ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return finish(sum, u, start), err
		}

		u.Tick()
		sum.Generations = gen
		if !opts.Quiet || gen == opts.Generations {
			if err := writeGeneration(out, gen, u); err != nil {
				return finish(sum, u, start), err
			}
		}
	}
	if opts.Quiet && opts.Generations == 0 {
		if err := writeGeneration(out, 0, u); err != nil {
			return sum, err
		}
	}
	return finish(sum, u, start), nil
}

func finish(sum Summary, u *hexlife.Universe, start time.Time) Summary {
	sum.Alive = u.Alive()
	sum.Elapsed = time.Since(start)
	return sum
}

func writeGeneration(out io.Writer, gen int, u *hexlife.Universe) error {
	if _, err := fmt.Fprintf(out, "generation %d\n%s\n", gen, u.Render()); err != nil {
		return fmt.Errorf("write generation %d: %w", gen, err)
	}
	return nil
}
