package main

import (
	"bytes"
	"image/gif"
	"testing"

	"ripples/internal/field"
)

func TestExportGIFFrames(t *testing.T) {
	r := field.New([]field.Source{{X: 10, Y: 10}, {X: 30, Y: 5}}, field.Options{Width: 40, Height: 20})
	var buf bytes.Buffer
	if err := exportGIF(&buf, r, field.BlueTint, 4, 1); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if r.Time() != 4 {
		t.Errorf("expected the clock at t=4, got %v", r.Time())
	}

	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if len(anim.Image) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(anim.Image))
	}
	for i, d := range anim.Delay {
		if d != exportFrameDelay {
			t.Errorf("frame %d delay = %d, want %d", i, d, exportFrameDelay)
		}
	}

	// The last frame must match the renderer's buffer exactly.
	last := anim.Image[len(anim.Image)-1]
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			want := r.Image().RGBAAt(x, y)
			gr, gg, gb, _ := last.At(x, y).RGBA()
			if uint8(gr>>8) != want.R || uint8(gg>>8) != want.G || uint8(gb>>8) != want.B {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want %v", x, y, gr>>8, gg>>8, gb>>8, want)
			}
		}
	}
}

func TestExportGIFScale(t *testing.T) {
	r := field.New([]field.Source{{X: 3, Y: 3}}, field.Options{Width: 40, Height: 20, Palette: field.Hue})
	var buf bytes.Buffer
	if err := exportGIF(&buf, r, field.Hue, 2, 0.5); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	b := anim.Image[0].Bounds()
	if b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("expected 20x10 frames, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestExportGIFRejectsBadArguments(t *testing.T) {
	r := field.New(nil, field.Options{Width: 4, Height: 4})
	var buf bytes.Buffer
	if err := exportGIF(&buf, r, nil, 0, 1); err == nil {
		t.Error("expected an error for zero frames")
	}
	if err := exportGIF(&buf, r, nil, 1, 0); err == nil {
		t.Error("expected an error for zero scale")
	}
	if err := exportGIF(&buf, r, nil, 1, -2); err == nil {
		t.Error("expected an error for negative scale")
	}
}
