package colorconv

import (
	"math"
)

// hueChroma extracts the quantities shared by HSL, HSV and HWB. hue is in
// degrees with the achromatic policy already applied.
func hueChroma(c SRGB) (mx, mn, chroma, hue float64) {
	mx = max(c.R, c.G, c.B)
	mn = min(c.R, c.G, c.B)
	chroma = mx - mn
	var sector float64
	switch {
	case chroma == 0:
	case mx == c.R:
		sector = math.Mod((c.G-c.B)/chroma, 6)
	case mx == c.G:
		sector = (c.B-c.R)/chroma + 2
	default:
		sector = (c.R-c.G)/chroma + 4
	}
	hue = ResolveHue(60*sector, chroma, MaxChromaRGB)
	return
}

// fromHueChroma is the inverse of the hue extraction: it places chroma in
// the sector selected by hue and adds m to every component.
func fromHueChroma(hue, chroma, m float64) SRGB {
	hp := NormalizeHue(hue) / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g = chroma, x
	case hp < 2:
		r, g = x, chroma
	case hp < 3:
		g, b = chroma, x
	case hp < 4:
		g, b = x, chroma
	case hp < 5:
		r, b = x, chroma
	default:
		r, b = chroma, x
	}
	return SRGB{clamp01(r + m), clamp01(g + m), clamp01(b + m)}
}

// HSLFromSRGB converts to HSL. Grey, black and white have H=0 and S=0.
func HSLFromSRGB(c SRGB) HSL {
	mx, mn, chroma, hue := hueChroma(c)
	l := (mx + mn) / 2
	s := 0.0
	if l > 0 && l < 1 {
		s = chroma / (1 - math.Abs(2*l-1))
	}
	return HSL{hue, clamp01(s), l}
}

func (c HSL) SRGB() SRGB {
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	return fromHueChroma(c.H, chroma, c.L-chroma/2)
}

// HSVFromSRGB converts to HSV. S is 0 for black.
func HSVFromSRGB(c SRGB) HSV {
	mx, _, chroma, hue := hueChroma(c)
	s := 0.0
	if mx > 0 {
		s = chroma / mx
	}
	return HSV{hue, s, mx}
}

func (c HSV) SRGB() SRGB {
	chroma := c.V * c.S
	return fromHueChroma(c.H, chroma, c.V-chroma)
}

// HWBFromSRGB converts to HWB: whiteness is the smallest component and
// blackness the complement of the largest.
func HWBFromSRGB(c SRGB) HWB {
	mx, mn, _, hue := hueChroma(c)
	return HWB{hue, mn, 1 - mx}
}

// SRGB converts back to sRGB. When W+B >= 1 the color is the grey
// W/(W+B).
func (c HWB) SRGB() SRGB {
	if total := c.W + c.B; total >= 1 {
		g := clamp01(c.W / total)
		return SRGB{g, g, g}
	}
	v := 1 - c.B
	return fromHueChroma(c.H, v-c.W, c.W)
}
