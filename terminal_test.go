package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDrawTerminalHalfBlocks(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	// 4x4 image: each row a different color so every cell splits top/bottom.
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	rows := []color.RGBA{
		{R: 10, G: 10, B: 255, A: 255},
		{R: 80, G: 80, B: 255, A: 255},
		{R: 160, G: 160, B: 255, A: 255},
		{R: 250, G: 250, B: 255, A: 255},
	}
	for y, c := range rows {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	drawTerminal(screen, img)

	for cy := 0; cy < 2; cy++ {
		top, bottom := rows[2*cy], rows[2*cy+1]
		want := tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
			Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
		for cx := 0; cx < 4; cx++ {
			mainc, _, style, _ := screen.GetContent(cx, cy)
			if mainc != upperHalfBlock {
				t.Errorf("cell (%d,%d) rune = %q, want %q", cx, cy, mainc, upperHalfBlock)
			}
			if style != want {
				t.Errorf("cell (%d,%d) style mismatch", cx, cy)
			}
		}
	}
}

func TestDrawTerminalZeroSize(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(0, 0)
	drawTerminal(screen, image.NewRGBA(image.Rect(0, 0, 2, 2)))
}

func TestTerminalKeyAction(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		want terminalAction
	}{
		{name: "escape", key: tcell.KeyEscape, want: terminalQuit},
		{name: "ctrl-c", key: tcell.KeyCtrlC, want: terminalQuit},
		{name: "q", key: tcell.KeyRune, ch: 'q', want: terminalQuit},
		{name: "Q", key: tcell.KeyRune, ch: 'Q', want: terminalQuit},
		{name: "space", key: tcell.KeyRune, ch: ' ', want: terminalPause},
		{name: "other rune", key: tcell.KeyRune, ch: 'x', want: terminalNone},
		{name: "enter", key: tcell.KeyEnter, want: terminalNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := terminalKeyAction(tt.key, tt.ch); got != tt.want {
				t.Errorf("terminalKeyAction(%v, %q) = %v, want %v", tt.key, tt.ch, got, tt.want)
			}
		})
	}
}

func TestTerminalResizeAction(t *testing.T) {
	if got := terminalActionFor(tcell.NewEventResize(10, 5)); got != terminalResize {
		t.Errorf("resize event mapped to %v", got)
	}
	if got := terminalActionFor(nil); got != terminalNone {
		t.Errorf("nil event mapped to %v", got)
	}
}
