// Command headless plays the game without a window using the autopilot and
// writes the last frame as a PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/hajimehoshi/ebiten/v2"

	"galacticimpact/game"
)

func main() {
	ticks := flag.Int("ticks", 1800, "number of ticks to simulate")
	seed := flag.Int64("seed", 1, "random seed for asteroid spawns")
	out := flag.String("out", "frame.png", "path of the final frame")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	verbose := flag.Bool("v", false, "log simulation events to stderr")
	flag.Parse()

	if *verbose {
		game.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(*ticks, *seed, *out, *cpuProfile); err != nil {
		log.Fatal(err)
	}
}

func run(ticks int, seed int64, out, cpuProfile string) (err error) {
	if cpuProfile != "" {
		f, cerr := os.Create(cpuProfile)
		if cerr != nil {
			return fmt.Errorf("failed to create CPU profile file: %w", cerr)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return fmt.Errorf("failed to start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close CPU profile: %w", cerr)
			}
		}()
	}

	config := game.DefaultConfig()
	config.Seed = seed
	autopilot := game.NewAutopilot()
	g, err := game.NewGame(config, game.WithInput(autopilot))
	if err != nil {
		return err
	}

	for i := 0; i < ticks; i++ {
		if err := g.Step(autopilot.Poll()); err != nil {
			if errors.Is(err, ebiten.Termination) {
				break
			}
			return err
		}
	}

	if err := writePNG(out, g.Render()); err != nil {
		return err
	}

	log.Printf("%d ticks, screen %s, score %d, frame written to %s",
		g.State().Ticks(), g.Screen(), g.State().Score, out)
	return nil
}

// writePNG encodes img to path. A failed close is reported since it can
// mean the frame never reached the disk.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
