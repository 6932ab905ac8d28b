package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hexlife.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeFile(t, "grid:\n  width: 40\n  seed: 9\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Grid.Width != 40 || cfg.Grid.Seed != 9 {
		t.Fatalf("grid = %+v", cfg.Grid)
	}
	if cfg.Grid.Height != def.Grid.Height || cfg.Display != def.Display {
		t.Fatalf("missing keys should keep defaults, got %+v", cfg)
	}
	if cfg.Path != path {
		t.Fatalf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", err)
	}
	path := writeFile(t, "grid: [1, 2\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestParseFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "grid:\n  width: 40\n  height: 30\ndisplay:\n  tps: 15\n")
	cfg, err := Parse(newFlagSet(), []string{"-config", path, "-height", "12", "-seed", "3"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Grid.Width != 40 {
		t.Fatalf("width from file = %d, want 40", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 12 || cfg.Grid.Seed != 3 {
		t.Fatalf("flags should win over the file, got %+v", cfg.Grid)
	}
	if cfg.Display.TPS != 15 {
		t.Fatalf("tps = %d, want 15", cfg.Display.TPS)
	}
}

func TestParseWithoutFile(t *testing.T) {
	cfg, err := Parse(newFlagSet(), []string{"-width", "7"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sim := cfg.Sim()
	if sim.Width != 7 || sim.Height != Default().Grid.Height {
		t.Fatalf("sim config = %+v", sim)
	}
}

func TestParseValidates(t *testing.T) {
	_, err := Parse(newFlagSet(), []string{"-width", "0", "-radius", "-1"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"width", "radius"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q should mention %s", err, want)
		}
	}
}
