package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"galacticimpact/game"
)

func main() {
	seed := flag.Int64("seed", 1, "random seed for asteroid spawns")
	verbose := flag.Bool("v", false, "log simulation events to stderr")
	zoom := flag.Float64("zoom", 2, "magnification of the zoom inset")
	flag.Parse()

	if *verbose {
		game.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	config := game.DefaultConfig()
	config.Seed = *seed
	config.Zoom = *zoom

	g, err := game.NewGame(config)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Galactic Impact")
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
