package main

import "flag"

// Command-line flags that select the host, the palette and optional
// subsystems around the field renderer.
var (
	// dropsFlag sets the drop count directly and skips the prompt.
	dropsFlag = flag.Int("drops", 0, "number of wave sources (0 asks with a dialog)")

	// noPromptFlag uses the default drop count instead of opening a dialog.
	noPromptFlag = flag.Bool("no-prompt", false, "never open the drop-count dialog")

	// seedFlag fixes the drop placement; 0 seeds from the clock.
	seedFlag = flag.Int64("seed", 0, "random seed for drop placement (0 = time based)")

	paletteFlag = flag.String("palette", "blue", "color palette: blue or hue")

	// workersFlag splits each frame into row bands computed in parallel.
	workersFlag = flag.Int("workers", 1, "goroutines used to compute one frame")

	// terminalFlag renders into the terminal with tcell instead of a window.
	terminalFlag = flag.Bool("terminal", false, "render in the terminal instead of a window")

	// exportFlag writes an animated GIF and exits.
	exportFlag = flag.String("export", "", "write an animated GIF to this path and exit")

	exportFramesFlag = flag.Int("frames", defaultExportFrames, "frames written by -export")

	exportScaleFlag = flag.Float64("export-scale", 1, "scale factor applied to exported frames")

	// showDropsFlag marks each source on the window.
	showDropsFlag = flag.Bool("show-drops", false, "draw a marker on every drop")

	// debugFlag enables the FPS and frame timing overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and frame timing overlay")

	// enableAudioFlag plays a tone whose loudness follows the field under the cursor.
	enableAudioFlag = flag.Bool("enable-audio", false, "play a tone driven by the wave height under the cursor")

	// openCLFlag renders frames with the OpenCL kernel when built with -tags opencl.
	openCLFlag = flag.Bool("opencl", false, "compute frames with OpenCL (requires -tags opencl)")

	// cpuProfileFlag writes a CPU profile for the whole run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)
