package main

import (
	"math"

	"ripples/internal/field"
)

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// gridOffset is a cell position relative to a footprint's center.
type gridOffset struct {
	dx int
	dy int
}

var (
	// dropFootprint is the disc of cells painted over each drop marker.
	dropFootprint = precomputeFootprint(dropMarkerRad)
	// listenerFootprint averages the field over a small disc under the listener.
	listenerFootprint = precomputeFootprint(listenerRad)
)

// precomputeFootprint lists the offsets inside a disc of the given radius.
func precomputeFootprint(radius int) []gridOffset {
	offsets := make([]gridOffset, 0, (2*radius+1)*(2*radius+1))
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				offsets = append(offsets, gridOffset{dx: dx, dy: dy})
			}
		}
	}
	return offsets
}

// listenerLevel returns the mean absolute field height around (x, y),
// scaled by the source count and clamped to [0, 1].
func listenerLevel(r *field.Renderer, x, y int) float32 {
	n := len(r.Sources())
	if n == 0 {
		return 0
	}
	cx := clampCoord(x, 0, r.Width()-1)
	cy := clampCoord(y, 0, r.Height()-1)
	var sum float64
	count := 0
	for _, offset := range listenerFootprint {
		px := cx + offset.dx
		py := cy + offset.dy
		if px < 0 || px >= r.Width() || py < 0 || py >= r.Height() {
			continue
		}
		sum += math.Abs(r.Sample(px, py))
		count++
	}
	level := sum / float64(count) / float64(n)
	return float32(math.Min(1, level))
}
