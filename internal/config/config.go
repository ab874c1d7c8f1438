// Package config holds the wave and host constants and the drop-count
// parsing shared by every host.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Wave and grid constants. internal/field takes its defaults from these.
const (
	Width  = 600
	Height = 600

	Amplitude  = 1.0
	Wavelength = 20.0
	Omega      = 0.2
	Epsilon    = 1e-6
	Block      = 2
	TimeStep   = 1.0
)

// Host constants.
const (
	DefaultDrops = 3
	// ManyDrops is the count above which hosts warn about the frame cadence.
	// Larger counts are still accepted.
	ManyDrops = 64

	FrameInterval = 33 * time.Millisecond
	TPS           = 30

	DefaultFramesPerTick = 1
	FramesPerTickStep    = 1
	MinFramesPerTick     = 1
	MaxFramesPerTick     = 16

	WindowTitle = "Realistic Wave Interference"
	PromptText  = "How many drops?"
)

// ParseDropCount reads a positive drop count from user input.
func ParseDropCount(input string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, fmt.Errorf("empty drop count")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parsing drop count %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("drop count %d is not positive", n)
	}
	return n, nil
}

// DropCountOrDefault is ParseDropCount with the fallback applied. The error
// is returned alongside the default so callers can log it.
func DropCountOrDefault(input string) (int, error) {
	n, err := ParseDropCount(input)
	if err != nil {
		return DefaultDrops, err
	}
	return n, nil
}
