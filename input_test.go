package main

import (
	"testing"

	"ripples/internal/config"
	"ripples/internal/field"
)

func fieldTestOptions() field.Options {
	return field.Options{Width: 32, Height: 24}
}

func TestAdjustFramesPerTick(t *testing.T) {
	g := &Game{framesPerTick: config.DefaultFramesPerTick}
	g.adjustFramesPerTick(-5)
	if g.framesPerTick != config.MinFramesPerTick {
		t.Errorf("expected clamp to %d, got %d", config.MinFramesPerTick, g.framesPerTick)
	}
	g.adjustFramesPerTick(1000)
	if g.framesPerTick != config.MaxFramesPerTick {
		t.Errorf("expected clamp to %d, got %d", config.MaxFramesPerTick, g.framesPerTick)
	}
	if got, want := g.simStepsPerSecond(), float64(config.TPS*config.MaxFramesPerTick); got != want {
		t.Errorf("simStepsPerSecond = %v, want %v", got, want)
	}
}

func TestGameUpdateStateWithoutWindow(t *testing.T) {
	g := newGame(2, fieldTestOptions(), newDropRand(3))
	defer g.Close()
	if len(g.field.Sources()) != 2 {
		t.Fatalf("expected 2 drops, got %d", len(g.field.Sources()))
	}
	before := g.field.Sources()
	g.resetDrops()
	if g.field.Time() != 0 {
		t.Errorf("reset renderer should start at t=0, got %v", g.field.Time())
	}
	if len(g.field.Sources()) != len(before) {
		t.Errorf("reset changed the drop count")
	}

	g.field.Tick()
	g.renderFrame()
	if g.field.Time() != 1 {
		t.Errorf("expected t=1, got %v", g.field.Time())
	}
	if w, h := g.Layout(0, 0); w != 32 || h != 24 {
		t.Errorf("Layout = %dx%d, want 32x24", w, h)
	}
}
