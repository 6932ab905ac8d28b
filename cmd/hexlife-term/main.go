package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"hex-life/internal/app"
	"hex-life/internal/config"
	"hex-life/internal/term"
	"hex-life/pkg/sims/hexlife"
)

func main() {
	log.SetFlags(0)
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	u := hexlife.NewWithConfig(cfg.Sim())
	err = term.New(screen, app.NewController(u, cfg.Grid.Seed), cfg.Display.TPS).Run(ctx)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
