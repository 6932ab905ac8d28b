package headless

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"hex-life/pkg/sims/hexlife"
)

func sample() *hexlife.Universe {
	return hexlife.NewWithConfig(hexlife.Config{Width: 10, Height: 8, Seed: 11})
}

func TestRunPrintsEveryGeneration(t *testing.T) {
	u := sample()
	ref := hexlife.NewFromCells(10, 8, u.Cells())

	var out bytes.Buffer
	sum, err := Run(context.Background(), u, Options{Generations: 3}, &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Generations != 3 {
		t.Fatalf("generations = %d, want 3", sum.Generations)
	}
	for i := 0; i < 3; i++ {
		ref.Tick()
	}
	if sum.Alive != ref.Alive() {
		t.Fatalf("alive = %d, want %d", sum.Alive, ref.Alive())
	}
	text := out.String()
	for _, hdr := range []string{"generation 0\n", "generation 1\n", "generation 2\n", "generation 3\n"} {
		if !strings.Contains(text, hdr) {
			t.Fatalf("output missing %q", hdr)
		}
	}
	if !strings.HasSuffix(text, ref.Render()+"\n") {
		t.Fatal("last printed grid should be the third generation")
	}
}

func TestRunQuiet(t *testing.T) {
	var out bytes.Buffer
	if _, err := Run(context.Background(), sample(), Options{Generations: 4, Quiet: true}, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.Count(out.String(), "generation "); got != 1 {
		t.Fatalf("quiet run printed %d generations, want 1", got)
	}
	if !strings.HasPrefix(out.String(), "generation 4\n") {
		t.Fatalf("quiet run should print the final generation, got %q", out.String())
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum, err := Run(ctx, sample(), Options{Generations: 5, Quiet: true}, &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if sum.Generations != 0 {
		t.Fatalf("cancelled run ticked %d times", sum.Generations)
	}
}

func TestRunPaced(t *testing.T) {
	sum, err := Run(context.Background(), sample(), Options{Generations: 2, TPS: 200, Quiet: true}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Generations != 2 {
		t.Fatalf("generations = %d", sum.Generations)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRunWriteError(t *testing.T) {
	_, err := Run(context.Background(), sample(), Options{Generations: 1}, failWriter{})
	if err == nil || !strings.Contains(err.Error(), "generation 0") {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
}
