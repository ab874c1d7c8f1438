package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ripples/internal/config"
)

// handleInput processes window hotkeys. It returns ebiten.Termination on quit.
func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetDrops()
	}
	g.handleDebugControls()
	return nil
}

// handleDebugControls processes debug overlay hotkeys.
func (g *Game) handleDebugControls() {
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustFramesPerTick(-config.FramesPerTickStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustFramesPerTick(config.FramesPerTickStep)
	}
}

// adjustFramesPerTick clamps the clock steps taken per displayed frame.
func (g *Game) adjustFramesPerTick(delta int) {
	g.framesPerTick += delta
	if g.framesPerTick < config.MinFramesPerTick {
		g.framesPerTick = config.MinFramesPerTick
	} else if g.framesPerTick > config.MaxFramesPerTick {
		g.framesPerTick = config.MaxFramesPerTick
	}
}

// simStepsPerSecond returns the nominal clock steps taken each second.
func (g *Game) simStepsPerSecond() float64 {
	return float64(config.TPS * g.framesPerTick)
}
