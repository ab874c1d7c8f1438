package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"

	"ripples/internal/field"
)

// exportGIF advances r frames times and encodes every frame into an
// animated GIF. scale resizes each frame with nearest-neighbour sampling.
func exportGIF(out io.Writer, r *field.Renderer, palette field.Palette, frames int, scale float64) error {
	if frames <= 0 {
		return errors.New("export needs at least one frame")
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return fmt.Errorf("invalid export scale %v", scale)
	}
	table := field.ColorTable(palette)
	dw := max(1, int(math.Round(float64(r.Width())*scale)))
	dh := max(1, int(math.Round(float64(r.Height())*scale)))
	bounds := image.Rect(0, 0, dw, dh)

	var scaled *image.RGBA
	if dw != r.Width() || dh != r.Height() {
		scaled = image.NewRGBA(bounds)
	}

	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, frames),
		Delay: make([]int, 0, frames),
	}
	for i := 0; i < frames; i++ {
		r.AdvanceAndRender()
		src := r.Image()
		if scaled != nil {
			draw.NearestNeighbor.Scale(scaled, bounds, src, src.Bounds(), draw.Src, nil)
			src = scaled
		}
		anim.Image = append(anim.Image, toPaletted(src, table))
		anim.Delay = append(anim.Delay, exportFrameDelay)
	}
	if err := gif.EncodeAll(out, anim); err != nil {
		return fmt.Errorf("encoding gif: %w", err)
	}
	return nil
}

// toPaletted maps every pixel onto table. Palettes are functions of the
// gray level alone, so each pixel has an exact entry.
func toPaletted(src *image.RGBA, table color.Palette) *image.Paletted {
	b := src.Bounds()
	dst := image.NewPaletted(b, table)
	index := make(map[color.RGBA]uint8, len(table))
	for i := len(table) - 1; i >= 0; i-- {
		index[color.RGBAModel.Convert(table[i]).(color.RGBA)] = uint8(i)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.RGBAAt(x, y)
			idx, ok := index[c]
			if !ok {
				idx = uint8(table.Index(c))
				index[c] = idx
			}
			dst.SetColorIndex(x, y, idx)
		}
	}
	return dst
}

// exportGIFFile writes the animation to path.
func exportGIFFile(path string, r *field.Renderer, palette field.Palette, frames int, scale float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	if err := exportGIF(f, r, palette, frames, scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", path, err)
	}
	return nil
}
