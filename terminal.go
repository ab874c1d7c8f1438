package main

import (
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"ripples/internal/config"
	"ripples/internal/field"
)

// upperHalfBlock carries two vertically stacked pixels per cell: foreground
// on top, background below.
const upperHalfBlock = '▀'

type terminalAction int

const (
	terminalNone terminalAction = iota
	terminalQuit
	terminalPause
	terminalResize
)

// terminalActionFor maps a tcell event onto what the loop should do.
func terminalActionFor(ev tcell.Event) terminalAction {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return terminalKeyAction(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		return terminalResize
	}
	return terminalNone
}

func terminalKeyAction(key tcell.Key, ch rune) terminalAction {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return terminalQuit
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return terminalQuit
		case ' ':
			return terminalPause
		}
	}
	return terminalNone
}

// drawTerminal scales img onto the whole screen, two pixels per cell.
func drawTerminal(screen tcell.Screen, img *image.RGBA) {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	b := img.Bounds()
	iw, ih := b.Dx(), b.Dy()
	subRows := rows * 2
	for cy := 0; cy < rows; cy++ {
		topY := b.Min.Y + (2*cy)*ih/subRows
		bottomY := b.Min.Y + (2*cy+1)*ih/subRows
		for cx := 0; cx < cols; cx++ {
			x := b.Min.X + cx*iw/cols
			top := img.RGBAAt(x, topY)
			bottom := img.RGBAAt(x, bottomY)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(cx, cy, upperHalfBlock, nil, style)
		}
	}
}

// pollTerminalEvents forwards screen events until the screen is finalized
// or quit is closed.
func pollTerminalEvents(screen tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// runTerminal drives r from a ticker until the user quits.
func runTerminal(screen tcell.Screen, r *field.Renderer) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go pollTerminalEvents(screen, events, quit)

	ticker := time.NewTicker(config.FrameInterval)
	defer ticker.Stop()

	paused := false
	r.Render()
	drawTerminal(screen, r.Image())
	screen.Show()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch terminalActionFor(ev) {
			case terminalQuit:
				return nil
			case terminalPause:
				paused = !paused
			case terminalResize:
				screen.Sync()
				drawTerminal(screen, r.Image())
				screen.Show()
			}
		case <-ticker.C:
			if paused {
				continue
			}
			r.AdvanceAndRender()
			drawTerminal(screen, r.Image())
			screen.Show()
		}
	}
}
