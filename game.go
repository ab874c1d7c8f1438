package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"ripples/internal/config"
	"ripples/internal/field"
)

// frameBackend computes a frame into the renderer's buffer at its current time.
type frameBackend interface {
	Render(r *field.Renderer) error
	DeviceName() string
	Close()
}

// Game drives a field renderer from the ebiten loop and owns the optional
// GPU backend and listener tone.
type Game struct {
	field     *field.Renderer
	fieldOpts field.Options
	dropCount int
	dropRand  *rand.Rand

	paused        bool
	framesPerTick int

	lastFrameDuration time.Duration
	lastDebugLog      time.Time

	gpu frameBackend

	audioCtx    *audio.Context
	audioStream *listenerToneStream
	audioPlayer *audio.Player
}

// newGame constructs a Game with freshly placed drops.
func newGame(dropCount int, opts field.Options, rng *rand.Rand) *Game {
	g := &Game{
		fieldOpts:     opts,
		dropCount:     dropCount,
		dropRand:      rng,
		framesPerTick: config.DefaultFramesPerTick,
	}
	g.resetDrops()
	if *openCLFlag {
		if solver, err := newOpenCLFieldSolver(opts.Width, opts.Height); err != nil {
			log.Printf("OpenCL initialization failed, rendering on the CPU: %v", err)
		} else {
			log.Printf("OpenCL renderer enabled (device: %s)", solver.DeviceName())
			g.gpu = solver
		}
	}
	if *enableAudioFlag {
		g.startListenerTone()
	}
	return g
}

// resetDrops replaces the renderer with one over newly placed drops.
func (g *Game) resetDrops() {
	drops := placeDrops(g.dropRand, g.dropCount, g.fieldOpts.Width, g.fieldOpts.Height)
	g.field = field.New(drops, g.fieldOpts)
	for i, d := range drops {
		log.Printf("Drop %d at (%d, %d)", i+1, d.X, d.Y)
	}
	g.field.Render()
}

func (g *Game) startListenerTone() {
	ctx := audio.NewContext(audioSampleRate)
	g.audioCtx = ctx
	stream := newListenerToneStream(audioSampleRate, audioToneHz)
	g.audioStream = stream
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		log.Printf("Audio player creation failed: %v", err)
		return
	}
	g.audioPlayer = player
	g.audioPlayer.SetBufferSize(audioPlayerBufferLatency)
	g.audioPlayer.Play()
}

// Update advances the clock and recomputes the frame once per tick.
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	if g.paused {
		return nil
	}

	start := time.Now()
	for i := 1; i < g.framesPerTick; i++ {
		g.field.Tick()
	}
	g.field.Tick()
	g.renderFrame()
	g.lastFrameDuration = time.Since(start)

	if g.audioStream != nil {
		x, y := ebiten.CursorPosition()
		g.audioStream.SetLevel(listenerLevel(g.field, x, y))
	}
	g.logFrameTiming()
	return nil
}

// renderFrame renders at the current time, on the GPU when available.
func (g *Game) renderFrame() {
	if g.gpu != nil {
		err := g.gpu.Render(g.field)
		if err == nil {
			return
		}
		log.Printf("OpenCL frame failed, falling back to the CPU: %v", err)
		g.gpu.Close()
		g.gpu = nil
	}
	g.field.Render()
}

func (g *Game) logFrameTiming() {
	if !*debugFlag {
		return
	}
	now := time.Now()
	if now.Sub(g.lastDebugLog) < debugLogInterval {
		return
	}
	log.Printf("t=%.0f frame %.2f ms (%d per tick, %d drops)",
		g.field.Time(), g.lastFrameDuration.Seconds()*1000, g.framesPerTick, g.dropCount)
	g.lastDebugLog = now
}

// Close releases the GPU backend and audio player.
func (g *Game) Close() {
	if g.gpu != nil {
		g.gpu.Close()
		g.gpu = nil
	}
	if g.audioPlayer != nil {
		_ = g.audioPlayer.Close()
		g.audioPlayer = nil
	}
}
