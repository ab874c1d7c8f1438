package main

import (
	"time"

	"ripples/internal/config"
)

// Host configuration constants for the window, terminal, export and audio
// shells around the field renderer.
const (
	w, h                     = config.Width, config.Height
	windowScale              = 1
	dropMarkerRad            = 3
	listenerRad              = 2
	defaultExportFrames      = 90
	exportFrameDelay         = 3 // hundredths of a second, ~33 ms
	audioSampleRate          = 48000
	audioToneHz              = 220.0
	audioGainSmoothing       = 0.002
	audioPlayerBufferLatency = 80 * time.Millisecond
	pcm16MaxValue            = 32767
	debugLogInterval         = 5 * time.Second
)
