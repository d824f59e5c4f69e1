package colorconv

import (
	"math"
)

// AchromaticTolerance is the chroma, as a fraction of a model's nominal
// maximum chroma, at or below which a color has no meaningful hue.
const AchromaticTolerance = 1e-6

// Nominal maximum chroma of sRGB colors in the various polar models. These
// scale AchromaticTolerance and double as display ranges.
const (
	MaxChromaRGB = 1.0
	MaxChromaAB  = 133.8088
	MaxChromaUV  = 179.0383
)

// ResolveHue is the single policy used by every cylindrical and polar
// converter for the angular coordinate. When chroma is not above
// AchromaticTolerance*max_chroma the hue is undefined and is returned as 0.
// Otherwise degrees is normalized into [0,360).
func ResolveHue(degrees, chroma, max_chroma float64) float64 {
	if !(chroma > AchromaticTolerance*max_chroma) || math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return 0
	}
	return NormalizeHue(degrees)
}

// NormalizeHue wraps an angle in degrees into [0,360)
func NormalizeHue(degrees float64) float64 {
	h := math.Mod(degrees, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds to 360
	if h >= 360 {
		h = 0
	}
	return h
}

func polarFromCartesian(a, b, max_chroma float64) (c, h float64) {
	c = math.Hypot(a, b)
	h = ResolveHue(math.Atan2(b, a)*180/math.Pi, c, max_chroma)
	return
}

func cartesianFromPolar(c, h float64) (a, b float64) {
	s, co := math.Sincos(h * math.Pi / 180)
	return c * co, c * s
}
