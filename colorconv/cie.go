package colorconv

import (
	"math"
)

// D65 reference white (CIE XYZ) normalized so Y = 1.0
var D65 = XYZ{0.95047, 1.00000, 1.08883}

// sRGB (linear) to CIE XYZ (D65) and its inverse, as published in
// IEC 61966-2-1 to seven decimal places.
var (
	xyzFromLinearSRGB = Mat3{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	linearSRGBFromXYZ = Mat3{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
)

// CIE constants as specified by the standard (not the rational 216/24389
// and 24389/27 forms).
const (
	labEpsilon = 0.008856
	labKappa   = 903.3
)

// XYZFromLinear multiplies by the sRGB primary matrix.
func XYZFromLinear(c LinearRGB) XYZ {
	x, y, z := mulMat3Vec(xyzFromLinearSRGB, Vec3{c.R, c.G, c.B})
	return XYZ{x, y, z}
}

// Linear converts to linear sRGB. The output is not clamped and is outside
// [0,1] for colors outside the sRGB gamut.
func (c XYZ) Linear() LinearRGB {
	r, g, b := mulMat3Vec(linearSRGBFromXYZ, Vec3{c.X, c.Y, c.Z})
	return LinearRGB{r, g, b}
}

func XYZFromSRGB(c SRGB) XYZ { return XYZFromLinear(LinearFromSRGB(c)) }

// SRGB converts to gamma-encoded sRGB, clipping to [0,1].
func (c XYZ) SRGB() SRGB { return SRGBFromLinear(c.Linear()) }

// XyYFromXYZ returns the chromaticity of c. Black (X+Y+Z = 0) has no
// chromaticity and maps to the all zero XyY.
func XyYFromXYZ(c XYZ) XyY {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		return XyY{}
	}
	return XyY{c.X / sum, c.Y / sum, c.Y}
}

func (c XyY) XYZ() XYZ {
	if c.ChromaY == 0 {
		return XYZ{}
	}
	s := c.Y / c.ChromaY
	return XYZ{c.ChromaX * s, c.Y, (1 - c.ChromaX - c.ChromaY) * s}
}

func XyYFromSRGB(c SRGB) XyY { return XyYFromXYZ(XYZFromSRGB(c)) }
func (c XyY) SRGB() SRGB     { return c.XYZ().SRGB() }

// labF is the CIE non-linear compression applied to each white relative
// tristimulus value.
func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(f float64) float64 {
	if f3 := f * f * f; f3 > labEpsilon {
		return f3
	}
	return (116*f - 16) / labKappa
}

// lightness returns L* for a white relative luminance
func lightness(yr float64) float64 {
	if yr > labEpsilon {
		return 116*math.Cbrt(yr) - 16
	}
	return labKappa * yr
}

// relativeLuminance is the inverse of lightness
func relativeLuminance(l float64) float64 {
	if l > labKappa*labEpsilon {
		f := (l + 16) / 116
		return f * f * f
	}
	return l / labKappa
}

// LabFromXYZ converts XYZ to L*a*b* relative to the given reference white.
func LabFromXYZ(c, white XYZ) Lab {
	fx := labF(c.X / white.X)
	fy := labF(c.Y / white.Y)
	fz := labF(c.Z / white.Z)
	return Lab{lightness(c.Y / white.Y), 500 * (fx - fy), 200 * (fy - fz)}
}

// XYZ converts L*a*b* relative to the given reference white back to XYZ.
func (c Lab) XYZ(white XYZ) XYZ {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200
	return XYZ{white.X * labFInv(fx), white.Y * relativeLuminance(c.L), white.Z * labFInv(fz)}
}

func LabFromSRGB(c SRGB) Lab { return LabFromXYZ(XYZFromSRGB(c), D65) }
func (c Lab) SRGB() SRGB     { return c.XYZ(D65).SRGB() }

// LChabFromLab converts to polar form. H is 0 when the color is achromatic.
func LChabFromLab(c Lab) LChab {
	chroma, hue := polarFromCartesian(c.A, c.B, MaxChromaAB)
	return LChab{c.L, chroma, hue}
}

func (c LChab) Lab() Lab {
	a, b := cartesianFromPolar(c.C, c.H)
	return Lab{c.L, a, b}
}

func LChabFromSRGB(c SRGB) LChab { return LChabFromLab(LabFromSRGB(c)) }
func (c LChab) SRGB() SRGB       { return c.Lab().SRGB() }

// chromaticityUV returns the CIE 1976 u′, v′ coordinates, 0, 0 when the
// denominator vanishes (black).
func chromaticityUV(c XYZ) (u, v float64) {
	d := c.X + 15*c.Y + 3*c.Z
	if d == 0 {
		return 0, 0
	}
	return 4 * c.X / d, 9 * c.Y / d
}

// LuvFromXYZ converts XYZ to L*u*v* relative to the given reference white.
func LuvFromXYZ(c, white XYZ) Luv {
	l := lightness(c.Y / white.Y)
	u, v := chromaticityUV(c)
	un, vn := chromaticityUV(white)
	return Luv{l, 13 * l * (u - un), 13 * l * (v - vn)}
}

// XYZ converts L*u*v* relative to the given reference white back to XYZ.
// L* <= 0 is black.
func (c Luv) XYZ(white XYZ) XYZ {
	if c.L <= 0 {
		return XYZ{}
	}
	un, vn := chromaticityUV(white)
	u := c.U/(13*c.L) + un
	v := c.V/(13*c.L) + vn
	y := white.Y * relativeLuminance(c.L)
	if v == 0 {
		return XYZ{0, y, 0}
	}
	return XYZ{y * 9 * u / (4 * v), y, y * (12 - 3*u - 20*v) / (4 * v)}
}

func LuvFromSRGB(c SRGB) Luv { return LuvFromXYZ(XYZFromSRGB(c), D65) }
func (c Luv) SRGB() SRGB     { return c.XYZ(D65).SRGB() }

// LChuvFromLuv converts to polar form. H is 0 when the color is achromatic.
func LChuvFromLuv(c Luv) LChuv {
	chroma, hue := polarFromCartesian(c.U, c.V, MaxChromaUV)
	return LChuv{c.L, chroma, hue}
}

func (c LChuv) Luv() Luv {
	u, v := cartesianFromPolar(c.C, c.H)
	return Luv{c.L, u, v}
}

func LChuvFromSRGB(c SRGB) LChuv { return LChuvFromLuv(LuvFromSRGB(c)) }
func (c LChuv) SRGB() SRGB       { return c.Luv().SRGB() }
