package colorconv

import (
	"math"
)

// ToLinear converts an sRGB encoded component (0-1) to linear light.
// The result is clamped to [0,1].
func ToLinear(c float64) float64 {
	if c <= 0.04045 {
		return clamp01(c / 12.92)
	}
	return clamp01(math.Pow((c+0.055)/1.055, 2.4))
}

// ToSRGB applies the sRGB companding function to a linear component.
// The result is clamped to [0,1].
func ToSRGB(c float64) float64 {
	// clip small negative rounding noise at this stage for stability
	if c <= 0 {
		return 0
	}
	if c <= 0.0031308 {
		return clamp01(12.92 * c)
	}
	return clamp01(1.055*math.Pow(c, 1.0/2.4) - 0.055)
}

// LinearFromSRGB removes the sRGB transfer function.
func LinearFromSRGB(c SRGB) LinearRGB {
	return LinearRGB{ToLinear(c.R), ToLinear(c.G), ToLinear(c.B)}
}

// SRGBFromLinear applies the sRGB transfer function.
func SRGBFromLinear(c LinearRGB) SRGB {
	return SRGB{ToSRGB(c.R), ToSRGB(c.G), ToSRGB(c.B)}
}

// SRGB is the same as SRGBFromLinear(c)
func (c LinearRGB) SRGB() SRGB { return SRGBFromLinear(c) }

// InGamut reports whether every component is inside [0,1] give or take
// rounding noise.
func (c LinearRGB) InGamut() bool {
	return inGamut(c.R, c.G, c.B)
}

// inGamut checks whether r,g,b are all inside [0,1] (with a small epsilon)
func inGamut(r, g, b float64) bool {
	const eps = 1e-12
	return r >= -eps && g >= -eps && b >= -eps && r <= 1+eps && g <= 1+eps && b <= 1+eps
}
