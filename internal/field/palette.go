package field

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps a normalized intensity to an output color.
type Palette func(gray uint8) color.RGBA

// BlueTint keeps blue at full and puts the intensity on red and green.
func BlueTint(gray uint8) color.RGBA {
	return color.RGBA{R: gray, G: gray, B: 255, A: 255}
}

// Hue sweeps the intensity across 240 degrees of hue, deep blue at 0.
func Hue(gray uint8) color.RGBA {
	h := 240 - float64(gray)/255*240
	r, g, b := colorful.Hsv(h, 1, 1).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// PaletteByName resolves a palette flag value. ok is false for unknown names.
func PaletteByName(name string) (p Palette, ok bool) {
	switch name {
	case "", "blue":
		return BlueTint, true
	case "hue":
		return Hue, true
	}
	return nil, false
}

// ColorTable lists p for every intensity, index = gray.
func ColorTable(p Palette) color.Palette {
	if p == nil {
		p = BlueTint
	}
	table := make(color.Palette, 256)
	for i := range table {
		table[i] = p(uint8(i))
	}
	return table
}
