package main

import (
	"math/rand"
	"time"

	"ripples/internal/field"
)

// newDropRand returns the placement source; seed 0 seeds from the clock.
func newDropRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// placeDrops scatters count sources uniformly over [0,width)×[0,height).
func placeDrops(rng *rand.Rand, count, width, height int) []field.Source {
	if count < 0 {
		count = 0
	}
	drops := make([]field.Source, count)
	for i := range drops {
		drops[i] = field.Source{X: rng.Intn(width), Y: rng.Intn(height)}
	}
	return drops
}
