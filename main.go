package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"ripples/internal/config"
	"ripples/internal/field"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run selects the host from the flags. Deferred cleanup, including the CPU
// profile, completes before it returns.
func run() error {
	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			return fmt.Errorf("CPU profiling failed: %w", err)
		}
		defer stop()
	}

	palette, ok := field.PaletteByName(*paletteFlag)
	if !ok {
		log.Printf("Unknown palette %q. Using blue.", *paletteFlag)
		palette = field.BlueTint
	}
	workers := *workersFlag
	if workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}
	opts := field.Options{
		Width:      w,
		Height:     h,
		Amplitude:  config.Amplitude,
		Wavelength: config.Wavelength,
		Omega:      config.Omega,
		Workers:    workers,
		Palette:    palette,
	}

	// Headless and terminal hosts have no dialog to show.
	var ask askFunc = zenityAsk
	if *exportFlag != "" || *terminalFlag {
		ask = nil
	}
	drops := resolveDropCount(*dropsFlag, *noPromptFlag, ask)
	rng := newDropRand(*seedFlag)

	switch {
	case *exportFlag != "":
		r := field.New(placeDrops(rng, drops, w, h), opts)
		if err := exportGIFFile(*exportFlag, r, palette, *exportFramesFlag, *exportScaleFlag); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		log.Printf("Wrote %d frames with %d drops to %s", *exportFramesFlag, drops, *exportFlag)
	case *terminalFlag:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("opening terminal failed: %w", err)
		}
		r := field.New(placeDrops(rng, drops, w, h), opts)
		if err := runTerminal(screen, r); err != nil {
			return fmt.Errorf("terminal host failed: %w", err)
		}
	default:
		g := newGame(drops, opts, rng)
		defer g.Close()
		ebiten.SetTPS(config.TPS)
		ebiten.SetWindowSize(w*windowScale, h*windowScale)
		ebiten.SetWindowTitle(config.WindowTitle)
		if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
			return fmt.Errorf("window host failed: %w", err)
		}
	}
	return nil
}
