package colorconv

import (
	"fmt"
)

var _ = fmt.Print

// SRGB is a gamma-encoded sRGB color with components in [0,1].
type SRGB struct{ R, G, B float64 }

// LinearRGB is an sRGB color with the transfer function removed, components
// in [0,1].
type LinearRGB struct{ R, G, B float64 }

// XYZ is a CIE 1931 tristimulus value relative to D65 with Y=1 for white.
type XYZ struct{ X, Y, Z float64 }

// XyY is the chromaticity pair (x, y) plus luminance Y.
type XyY struct{ ChromaX, ChromaY, Y float64 }

// Lab is CIE 1976 L*a*b*. L is in [0,100], a and b are signed.
type Lab struct{ L, A, B float64 }

// LChab is the polar form of Lab. H is in degrees in [0,360).
type LChab struct{ L, C, H float64 }

// Luv is CIE 1976 L*u*v*.
type Luv struct{ L, U, V float64 }

// LChuv is the polar form of Luv. H is in degrees in [0,360).
type LChuv struct{ L, C, H float64 }

// HSL has H in degrees in [0,360) and S, L in [0,1].
type HSL struct{ H, S, L float64 }

// HSV has H in degrees in [0,360) and S, V in [0,1].
type HSV struct{ H, S, V float64 }

// HWB has H in degrees in [0,360) and whiteness, blackness in [0,1].
type HWB struct{ H, W, B float64 }

// CMY is the subtractive complement of sRGB.
type CMY struct{ C, M, Y float64 }

// CMYK is CMY with the common black component separated out.
type CMYK struct{ C, M, Y, K float64 }

func (c SRGB) String() string { return fmt.Sprintf("SRGB{%.6g %.6g %.6g}", c.R, c.G, c.B) }

// SRGB8 converts 8-bit components into an SRGB
func SRGB8(r, g, b uint8) SRGB {
	return SRGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// RGB8 rounds the color to 8-bit components, clamping to the valid range.
func (c SRGB) RGB8() (r, g, b uint8) {
	return To8Bit(c.R), To8Bit(c.G), To8Bit(c.B)
}

// To8Bit rounds a unit value to [0,255], clamping out of range values.
// NaN maps to 0.
func To8Bit(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
