//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"hex-life/internal/app"
	"hex-life/internal/config"
	"hex-life/pkg/sims/hexlife"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	u := hexlife.NewWithConfig(cfg.Sim())
	game := app.New(app.NewController(u, cfg.Grid.Seed), cfg.Display.Radius)

	ebiten.SetWindowTitle(u.Name())
	tps := cfg.Display.TPS
	if tps == 0 {
		tps = ebiten.SyncWithFPS
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
