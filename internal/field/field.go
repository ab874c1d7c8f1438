// Package field computes frames of circular wave interference from a fixed
// set of point sources.
package field

import (
	"image"
	"math"

	"ripples/internal/config"
)

// Defaults applied to zero Options fields. The values are owned by
// internal/config.
const (
	DefaultWidth      = config.Width
	DefaultHeight     = config.Height
	DefaultAmplitude  = config.Amplitude
	DefaultWavelength = config.Wavelength
	DefaultOmega      = config.Omega
	DefaultEpsilon    = config.Epsilon
	DefaultBlock      = config.Block
	DefaultTimeStep   = config.TimeStep
)

// Source is a fixed point emitting a decaying circular wave.
type Source struct {
	X, Y int
}

// Options configures a Renderer. Zero fields take the package defaults, so
// a zero Amplitude, Omega or TimeStep cannot be expressed through them; set
// Static for a pattern that does not move.
type Options struct {
	Width, Height int
	Amplitude     float64
	Wavelength    float64
	Omega         float64
	Epsilon       float64

	// Static pins ω to 0: the clock still advances but every frame is the same.
	Static bool

	// Block is the edge of the square each computed sample is painted over.
	Block    int
	TimeStep float64

	// Workers > 1 splits each frame into row bands computed concurrently.
	Workers int
	Palette Palette
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Amplitude == 0 {
		o.Amplitude = DefaultAmplitude
	}
	if o.Wavelength <= 0 {
		o.Wavelength = DefaultWavelength
	}
	if o.Static {
		o.Omega = 0
	} else if o.Omega == 0 {
		o.Omega = DefaultOmega
	}
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.Block <= 0 {
		o.Block = DefaultBlock
	}
	if o.TimeStep == 0 {
		o.TimeStep = DefaultTimeStep
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.Palette == nil {
		o.Palette = BlueTint
	}
	return o
}

// Renderer owns the simulation clock, the sources and the pixel buffer.
// It is not safe for concurrent use; hosts call it from a single loop.
type Renderer struct {
	opts    Options
	k       float64
	t       float64
	sources []Source
	img     *image.RGBA
}

// New builds a renderer at t = 0. The sources are copied.
func New(sources []Source, opts Options) *Renderer {
	opts = opts.withDefaults()
	src := make([]Source, len(sources))
	copy(src, sources)
	return &Renderer{
		opts:    opts,
		k:       2 * math.Pi / opts.Wavelength,
		sources: src,
		img:     image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
	}
}

// Tick advances the simulation clock by one step.
func (r *Renderer) Tick() {
	r.t += r.opts.TimeStep
}

// AdvanceAndRender advances the clock and recomputes the whole buffer.
func (r *Renderer) AdvanceAndRender() {
	r.Tick()
	r.Render()
}

// Render recomputes the whole buffer at the current time.
func (r *Renderer) Render() {
	blockRows := (r.opts.Height + r.opts.Block - 1) / r.opts.Block
	if r.opts.Workers <= 1 || blockRows < 2 {
		r.renderRows(0, blockRows)
		return
	}
	r.renderBands(blockRows)
}

// renderRows fills block rows [row0, row1).
func (r *Renderer) renderRows(row0, row1 int) {
	block := r.opts.Block
	width, height := r.opts.Width, r.opts.Height
	pix := r.img.Pix
	stride := r.img.Stride
	for row := row0; row < row1; row++ {
		y := row * block
		yEnd := min(y+block, height)
		for x := 0; x < width; x += block {
			c := r.opts.Palette(r.Shade(r.Sample(x, y)))
			xEnd := min(x+block, width)
			for yy := y; yy < yEnd; yy++ {
				base := yy*stride + x*4
				for xx := x; xx < xEnd; xx++ {
					pix[base] = c.R
					pix[base+1] = c.G
					pix[base+2] = c.B
					pix[base+3] = c.A
					base += 4
				}
			}
		}
	}
}

// Sample returns the superposed field at (x, y) for the current time.
func (r *Renderer) Sample(x, y int) float64 {
	wt := r.opts.Omega * r.t
	var sum float64
	for _, s := range r.sources {
		dx := float64(x - s.X)
		dy := float64(y - s.Y)
		dist := math.Sqrt(dx*dx+dy*dy) + r.opts.Epsilon
		sum += r.opts.Amplitude / math.Sqrt(dist) * math.Cos(r.k*dist-wt)
	}
	return sum
}

// Shade maps a field value onto [0, 255] using the source count as the
// nominal amplitude bound. With no sources every sample is 0.
func (r *Renderer) Shade(sum float64) uint8 {
	n := float64(len(r.sources))
	if n == 0 {
		return 0
	}
	gray := math.Round((sum + n) / (2 * n) * 255)
	if gray < 0 {
		return 0
	}
	if gray > 255 {
		return 255
	}
	return uint8(gray)
}

// Pixels returns the RGBA bytes of the current frame, row-major with no padding.
// The slice is reused by the next Render.
func (r *Renderer) Pixels() []byte { return r.img.Pix }

// Image exposes the buffer as an image. It is reused by the next Render.
func (r *Renderer) Image() *image.RGBA { return r.img }

// Time is the current simulation clock, 0 at construction.
func (r *Renderer) Time() float64 { return r.t }

// SetTime moves the clock without rendering.
func (r *Renderer) SetTime(t float64) { r.t = t }

// Sources returns a copy of the source list.
func (r *Renderer) Sources() []Source {
	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// Width is the buffer width in pixels.
func (r *Renderer) Width() int { return r.opts.Width }

// Height is the buffer height in pixels.
func (r *Renderer) Height() int { return r.opts.Height }

// Options returns the resolved options, defaults applied.
func (r *Renderer) Options() Options { return r.opts }

// Wavenumber is 2π/λ.
func (r *Renderer) Wavenumber() float64 { return r.k }
