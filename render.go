package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var dropMarkerColor = color.RGBA{255, 40, 40, 255}

// Draw blits the current frame, then the optional drop markers and overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	pixels := g.field.Pixels()
	if len(pixels) == g.field.Width()*g.field.Height()*4 {
		screen.WritePixels(pixels)
	}

	if *showDropsFlag {
		for _, d := range g.field.Sources() {
			for _, offset := range dropFootprint {
				x := d.X + offset.dx
				y := d.Y + offset.dy
				if x >= 0 && x < g.field.Width() && y >= 0 && y < g.field.Height() {
					screen.Set(x, y, dropMarkerColor)
				}
			}
		}
	}

	if *debugFlag {
		debugMsg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nt = %.0f (%.0f steps/s, +/-)\nFrame: %.2f ms  Drops: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.field.Time(), g.simStepsPerSecond(),
			g.lastFrameDuration.Seconds()*1000, g.dropCount)
		if g.paused {
			debugMsg += "\nPAUSED"
		}
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.field.Width(), g.field.Height() }
