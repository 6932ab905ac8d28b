package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hex-life/internal/config"
	"hex-life/internal/headless"
	"hex-life/internal/render"
	"hex-life/pkg/sims/hexlife"
)

func main() {
	log.SetFlags(0)
	fs := flag.CommandLine
	quiet := fs.Bool("quiet", false, "print only the final generation")
	pngPath := fs.String("png", "", "write the final generation to this PNG file")
	scale := fs.Int("scale", 8, "pixels per cell in the PNG snapshot")
	paced := fs.Bool("paced", false, "pace generations at -tps instead of running flat out")
	cfg, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tps := 0
	if *paced {
		tps = cfg.Display.TPS
	}

	u := hexlife.NewWithConfig(cfg.Sim())
	out := bufio.NewWriter(os.Stdout)
	sum, err := headless.Run(ctx, u, headless.Options{
		Generations: cfg.Run.Generations,
		TPS:         tps,
		Quiet:       *quiet,
	}, out)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%d generations in %s, %d of %d cells alive", sum.Generations, sum.Elapsed, sum.Alive, cfg.Grid.Width*cfg.Grid.Height)

	if *pngPath != "" {
		f, err := os.Create(*pngPath)
		if err != nil {
			log.Fatalf("create snapshot: %v", err)
		}
		if err := render.WritePNG(f, u, *scale); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("close snapshot: %v", err)
		}
	}
}
