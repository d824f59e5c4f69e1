package compose

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/decompose"
	"github.com/kovidgoyal/decompose/colorconv"
	"github.com/kovidgoyal/decompose/space"
)

var _ = fmt.Print

type renderer struct {
	// whether pixel needs the sRGB color reconstructed from the channel values
	needs_srgb bool
	// pixel writes one color per channel into out
	pixel func(vals []float64, src colorconv.SRGB, out []decompose.NRGBColor)
}

func grey(v float64) decompose.NRGBColor {
	g := colorconv.To8Bit(v)
	return decompose.NRGBColor{R: g, G: g, B: g}
}

func grey_renderer(d *space.Descriptor) renderer {
	channels := d.Channels
	return renderer{pixel: func(vals []float64, _ colorconv.SRGB, out []decompose.NRGBColor) {
		for i, ch := range channels {
			out[i] = grey(ch.Normalize(vals[i]))
		}
	}}
}

// luminance renders a relative luminance as the matching neutral grey
func luminance(y float64) decompose.NRGBColor { return grey(colorconv.ToSRGB(y)) }

// lightness renders L* as the matching neutral grey
func lightness(l float64) decompose.NRGBColor {
	return luminance(colorconv.Lab{L: l}.XYZ(colorconv.D65).Y)
}

// hue_swatch renders a hue as a color of medium saturation and lightness.
// Achromatic pixels are rendered black.
func hue_swatch(h float64, achromatic bool) decompose.NRGBColor {
	if achromatic {
		return decompose.NRGBColor{}
	}
	hp := colorconv.NormalizeHue(h) / 60
	x := 0.5 - 0.5*math.Abs(math.Mod(hp, 2)-1)
	var r, g, b float64
	switch int(hp) {
	case 0:
		r, g, b = 0.5, x, 0
	case 1:
		r, g, b = x, 0.5, 0
	case 2:
		r, g, b = 0, 0.5, x
	case 3:
		r, g, b = 0, x, 0.5
	case 4:
		r, g, b = x, 0, 0.5
	default:
		r, g, b = 0.5, 0, x
	}
	m := func(v float64) uint8 { return uint8(v*255 + 64.25) }
	return decompose.NRGBColor{R: m(r), G: m(g), B: m(b)}
}

// opponent_lightness is the L* used to show a signed axis value v,
// 50 at the extremes of [lo, hi] and 0 at the neutral point
func opponent_lightness(v float64, ch space.Channel) float64 {
	if v < 0 {
		return 50 * v / ch.Min
	}
	return 50 * v / ch.Max
}

// chromaticity renders the chromaticity (x, y) at half luminance
func chromaticity(x, y float64) decompose.NRGBColor {
	return decompose.NRGBFromSRGB(colorconv.XyY{ChromaX: x, ChromaY: y, Y: 0.5}.SRGB())
}

func is_achromatic(c colorconv.SRGB) bool {
	return max(c.R, c.G, c.B)-min(c.R, c.G, c.B) <= colorconv.AchromaticTolerance*colorconv.MaxChromaRGB
}

func tinted_renderer(d *space.Descriptor) (renderer, bool) {
	type out = []decompose.NRGBColor
	ch := d.Channels
	switch d.Tag {
	case space.RGB, space.LinearRGB:
		return renderer{pixel: func(v []float64, _ colorconv.SRGB, o out) {
			o[0] = decompose.NRGBColor{R: colorconv.To8Bit(v[0])}
			o[1] = decompose.NRGBColor{G: colorconv.To8Bit(v[1])}
			o[2] = decompose.NRGBColor{B: colorconv.To8Bit(v[2])}
		}}, true
	case space.XYZ:
		w := colorconv.D65
		return renderer{pixel: func(v []float64, _ colorconv.SRGB, o out) {
			o[0], o[1], o[2] = luminance(v[0]/w.X), luminance(v[1]/w.Y), luminance(v[2]/w.Z)
		}}, true
	case space.XyY:
		white := colorconv.XyYFromXYZ(colorconv.D65)
		return renderer{pixel: func(v []float64, _ colorconv.SRGB, o out) {
			o[0] = chromaticity(v[0], white.ChromaY)
			o[1] = chromaticity(white.ChromaX, v[1])
			o[2] = luminance(v[2])
		}}, true
	case space.HSL, space.HSV, space.HWB:
		return renderer{needs_srgb: true, pixel: func(v []float64, src colorconv.SRGB, o out) {
			o[0] = hue_swatch(v[0], is_achromatic(src))
			o[1], o[2] = grey(ch[1].Normalize(v[1])), grey(ch[2].Normalize(v[2]))
		}}, true
	case space.Lab:
		return renderer{pixel: func(v []float64, _ colorconv.SRGB, o out) {
			o[0] = lightness(v[0])
			o[1] = decompose.NRGBFromSRGB(colorconv.Lab{L: opponent_lightness(v[1], ch[1]), A: v[1]}.DisplaySRGB())
			o[2] = decompose.NRGBFromSRGB(colorconv.Lab{L: opponent_lightness(v[2], ch[2]), B: v[2]}.DisplaySRGB())
		}}, true
	case space.Luv:
		return renderer{pixel: func(v []float64, _ colorconv.SRGB, o out) {
			o[0] = lightness(v[0])
			o[1] = decompose.NRGBFromSRGB(colorconv.Luv{L: opponent_lightness(v[1], ch[1]), U: v[1]}.DisplaySRGB())
			o[2] = decompose.NRGBFromSRGB(colorconv.Luv{L: opponent_lightness(v[2], ch[2]), V: v[2]}.DisplaySRGB())
		}}, true
	case space.LChab:
		const mc = colorconv.MaxChromaAB
		return renderer{pixel: func(v []float64, _ colorconv.SRGB, o out) {
			o[0], o[1] = lightness(v[0]), lightness(v[1]*100/mc)
			o[2] = hue_swatch(0, true)
			if v[1] > colorconv.AchromaticTolerance*mc {
				o[2] = decompose.NRGBFromSRGB(colorconv.LChab{L: 50, C: mc / 2, H: v[2]}.DisplaySRGB())
			}
		}}, true
	case space.LChuv:
		const mc = colorconv.MaxChromaUV
		return renderer{pixel: func(v []float64, _ colorconv.SRGB, o out) {
			o[0], o[1] = lightness(v[0]), lightness(v[1]*100/mc)
			o[2] = hue_swatch(0, true)
			if v[1] > colorconv.AchromaticTolerance*mc {
				o[2] = decompose.NRGBFromSRGB(colorconv.LChuv{L: 50, C: mc / 2, H: v[2]}.DisplaySRGB())
			}
		}}, true
	case space.CMY, space.CMYK:
		return renderer{pixel: func(v []float64, _ colorconv.SRGB, o out) {
			c, m, y := colorconv.To8Bit(v[0]), colorconv.To8Bit(v[1]), colorconv.To8Bit(v[2])
			o[0] = decompose.NRGBColor{G: c, B: c}
			o[1] = decompose.NRGBColor{R: m, B: m}
			o[2] = decompose.NRGBColor{R: y, G: y}
			if len(o) > 3 {
				o[3] = grey(1 - v[3])
			}
		}}, true
	}
	return renderer{}, false
}
