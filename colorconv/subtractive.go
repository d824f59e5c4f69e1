package colorconv

// CMYFromSRGB returns the complement of every component. CMY and CMYK are
// computed from the gamma-encoded values, there is no linearization.
func CMYFromSRGB(c SRGB) CMY { return CMY{1 - c.R, 1 - c.G, 1 - c.B} }

func (c CMY) SRGB() SRGB { return SRGB{1 - c.C, 1 - c.M, 1 - c.Y} }

// CMYKFromSRGB separates out black as K = min(1-R, 1-G, 1-B). Pure black
// has K=1 and C=M=Y=0.
func CMYKFromSRGB(c SRGB) CMYK {
	k := min(1-c.R, 1-c.G, 1-c.B)
	if k >= 1 {
		return CMYK{K: 1}
	}
	d := 1 - k
	return CMYK{(1 - c.R - k) / d, (1 - c.G - k) / d, (1 - c.B - k) / d, k}
}

func (c CMYK) SRGB() SRGB {
	w := 1 - c.K
	return SRGB{(1 - c.C) * w, (1 - c.M) * w, (1 - c.Y) * w}
}
