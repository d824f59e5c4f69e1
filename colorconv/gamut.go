package colorconv

// Colors built synthetically, such as the hue swatches of a channel tile,
// are frequently outside the sRGB gamut. Simply clipping such colors shifts
// their hue, so these functions instead reduce chroma at constant lightness
// and hue until the color fits.

// scaleChromaIntoGamut binary searches for the largest factor in [0,1] such
// that at(factor) is inside the sRGB gamut.
func scaleChromaIntoGamut(at func(scale float64) LinearRGB) SRGB {
	if c := at(1); c.InGamut() {
		return c.SRGB()
	}
	lo, hi := 0.0, 1.0
	var found LinearRGB
	have_found := false
	for range 24 {
		mid := (lo + hi) / 2.0
		if c := at(mid); c.InGamut() {
			found, have_found = c, true
			lo = mid
		} else {
			hi = mid
		}
	}
	if !have_found {
		// even the fully desaturated color is out of gamut, clip it
		return at(0).SRGB()
	}
	return found.SRGB()
}

// DisplaySRGB converts to sRGB, reducing chroma rather than clipping when
// the color is outside the sRGB gamut.
func (c Lab) DisplaySRGB() SRGB {
	return scaleChromaIntoGamut(func(s float64) LinearRGB {
		return Lab{c.L, c.A * s, c.B * s}.XYZ(D65).Linear()
	})
}

// DisplaySRGB converts to sRGB, reducing chroma rather than clipping when
// the color is outside the sRGB gamut.
func (c Luv) DisplaySRGB() SRGB {
	return scaleChromaIntoGamut(func(s float64) LinearRGB {
		return Luv{c.L, c.U * s, c.V * s}.XYZ(D65).Linear()
	})
}

func (c LChab) DisplaySRGB() SRGB { return c.Lab().DisplaySRGB() }
func (c LChuv) DisplaySRGB() SRGB { return c.Luv().DisplaySRGB() }
