package colorconv

import (
	"fmt"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

var sample_levels = []uint8{0, 1, 10, 11, 17, 51, 100, 128, 187, 204, 254, 255}

// sampleColors returns a grid of 8-bit sRGB colors covering the cube
func sampleColors() (ans []SRGB) {
	for _, r := range sample_levels {
		for _, g := range sample_levels {
			for _, b := range sample_levels {
				ans = append(ans, SRGB8(r, g, b))
			}
		}
	}
	return
}

func requireSRGBNear(t *testing.T, expected, actual SRGB, eps float64, msgAndArgs ...any) {
	t.Helper()
	require.InDelta(t, expected.R, actual.R, eps, msgAndArgs...)
	require.InDelta(t, expected.G, actual.G, eps, msgAndArgs...)
	require.InDelta(t, expected.B, actual.B, eps, msgAndArgs...)
}

func TestRoundTrip(t *testing.T) {
	testCases := []struct {
		name      string
		tolerance float64
		convert   func(SRGB) SRGB
	}{
		{"linear", 1e-6, func(c SRGB) SRGB { return LinearFromSRGB(c).SRGB() }},
		{"hsl", 1e-4, func(c SRGB) SRGB { return HSLFromSRGB(c).SRGB() }},
		{"hsv", 1e-4, func(c SRGB) SRGB { return HSVFromSRGB(c).SRGB() }},
		{"hwb", 1e-4, func(c SRGB) SRGB { return HWBFromSRGB(c).SRGB() }},
		{"xyz", 1e-3, func(c SRGB) SRGB { return XYZFromSRGB(c).SRGB() }},
		{"xyy", 1e-3, func(c SRGB) SRGB { return XyYFromSRGB(c).SRGB() }},
		{"lab", 1e-3, func(c SRGB) SRGB { return LabFromSRGB(c).SRGB() }},
		{"lchab", 1e-3, func(c SRGB) SRGB { return LChabFromSRGB(c).SRGB() }},
		{"luv", 1e-3, func(c SRGB) SRGB { return LuvFromSRGB(c).SRGB() }},
		{"lchuv", 1e-3, func(c SRGB) SRGB { return LChuvFromSRGB(c).SRGB() }},
		{"cmy", 1e-15, func(c SRGB) SRGB { return CMYFromSRGB(c).SRGB() }},
		{"cmyk", 1e-6, func(c SRGB) SRGB { return CMYKFromSRGB(c).SRGB() }},
	}
	colors := sampleColors()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, c := range colors {
				requireSRGBNear(t, c, tc.convert(c), tc.tolerance, "round trip of %s", c)
			}
		})
	}
}

func TestCIERoundTripIsTight(t *testing.T) {
	// the CIE inverses reproduce linear RGB to well within 1e-4
	for _, c := range sampleColors() {
		lin := LinearFromSRGB(c)
		for _, back := range []LinearRGB{
			XYZFromLinear(lin).Linear(),
			LabFromXYZ(XYZFromLinear(lin), D65).XYZ(D65).Linear(),
			LuvFromXYZ(XYZFromLinear(lin), D65).XYZ(D65).Linear(),
		} {
			require.InDelta(t, lin.R, back.R, 1e-4)
			require.InDelta(t, lin.G, back.G, 1e-4)
			require.InDelta(t, lin.B, back.B, 1e-4)
		}
	}
}

func TestHueRange(t *testing.T) {
	for _, c := range sampleColors() {
		for _, h := range []float64{
			HSLFromSRGB(c).H, HSVFromSRGB(c).H, HWBFromSRGB(c).H,
			LChabFromSRGB(c).H, LChuvFromSRGB(c).H,
		} {
			require.False(t, math.IsNaN(h))
			require.GreaterOrEqual(t, h, 0.0)
			require.Less(t, h, 360.0)
		}
	}
}

func TestGreyHasZeroHue(t *testing.T) {
	for i := range 256 {
		c := SRGB8(uint8(i), uint8(i), uint8(i))
		require.Equal(t, 0.0, HSLFromSRGB(c).H)
		require.Equal(t, 0.0, HSLFromSRGB(c).S)
		require.Equal(t, 0.0, HSVFromSRGB(c).H)
		require.Equal(t, 0.0, HWBFromSRGB(c).H)
		require.Equal(t, 0.0, LChabFromSRGB(c).H, "LChab hue of grey %d", i)
		require.Equal(t, 0.0, LChuvFromSRGB(c).H, "LChuv hue of grey %d", i)
		require.InDelta(t, 0.0, LChabFromSRGB(c).C, 1e-3)
		require.InDelta(t, 0.0, LChuvFromSRGB(c).C, 1e-3)
	}
}

func TestBlackAndWhite(t *testing.T) {
	black, white := SRGB{}, SRGB{1, 1, 1}

	require.Equal(t, CMYK{K: 1}, CMYKFromSRGB(black))
	require.Equal(t, XyY{}, XyYFromSRGB(black))
	require.Equal(t, Lab{}, LabFromSRGB(black))
	require.Equal(t, Luv{}, LuvFromSRGB(black))
	require.Equal(t, SRGB{}, Luv{}.SRGB())
	require.Equal(t, HSV{}, HSVFromSRGB(black))
	require.Equal(t, HWB{0, 0, 1}, HWBFromSRGB(black))

	lab := LabFromSRGB(white)
	require.InDelta(t, 100, lab.L, 1e-3)
	require.InDelta(t, 0, lab.A, 1e-3)
	require.InDelta(t, 0, lab.B, 1e-3)
	for _, lch := range []struct{ C, H float64 }{
		{LChabFromSRGB(white).C, LChabFromSRGB(white).H},
		{LChuvFromSRGB(white).C, LChuvFromSRGB(white).H},
	} {
		require.InDelta(t, 0, lch.C, 1e-3)
		require.Equal(t, 0.0, lch.H)
	}
	require.Equal(t, HSL{0, 0, 1}, HSLFromSRGB(white))
	require.Equal(t, CMYK{}, CMYKFromSRGB(white))
	xyy := XyYFromSRGB(white)
	require.InDelta(t, 0.3127, xyy.ChromaX, 1e-3)
	require.InDelta(t, 0.3290, xyy.ChromaY, 1e-3)
}

func TestScenarios(t *testing.T) {
	red := SRGB{1, 0, 0}
	require.Equal(t, HSL{0, 1, 0.5}, HSLFromSRGB(red))
	require.Equal(t, CMYK{0, 1, 1, 0}, CMYKFromSRGB(red))
	lab := LabFromSRGB(red)
	require.InDelta(t, 53.24, lab.L, 0.02)
	require.InDelta(t, 80.09, lab.A, 0.02)
	require.InDelta(t, 67.20, lab.B, 0.02)

	grey := SRGB{0.5, 0.5, 0.5}
	require.Equal(t, HSL{0, 0, 0.5}, HSLFromSRGB(grey))
	// CMYK is computed on the gamma-encoded values
	require.Equal(t, CMYK{0, 0, 0, 0.5}, CMYKFromSRGB(grey))
	lab = LabFromSRGB(grey)
	require.InDelta(t, 53.39, lab.L, 0.01)
	require.InDelta(t, 0, lab.A, 1e-3)
	require.InDelta(t, 0, lab.B, 1e-3)

	require.InDelta(t, 120, HSLFromSRGB(SRGB{0, 1, 0}).H, 1e-12)
	require.InDelta(t, 240, HSVFromSRGB(SRGB{0, 0, 1}).H, 1e-12)
	require.InDelta(t, 300, HWBFromSRGB(SRGB{1, 0, 1}).H, 1e-12)
}

func TestAgainstColorful(t *testing.T) {
	for _, c := range sampleColors() {
		ref := colorful.Color{R: c.R, G: c.G, B: c.B}

		h, s, v := ref.Hsv()
		hsv := HSVFromSRGB(c)
		require.InDelta(t, h, hsv.H, 1e-9)
		require.InDelta(t, s, hsv.S, 1e-9)
		require.InDelta(t, v, hsv.V, 1e-9)

		h, s, l := ref.Hsl()
		hsl := HSLFromSRGB(c)
		require.InDelta(t, h, hsl.H, 1e-9)
		require.InDelta(t, s, hsl.S, 1e-9)
		require.InDelta(t, l, hsl.L, 1e-9)

		// go-colorful scales L*a*b* and L*u*v* by 1/100 and uses a
		// slightly different primary matrix
		L, a, b := ref.Lab()
		lab := LabFromSRGB(c)
		require.InDelta(t, L*100, lab.L, 0.5)
		require.InDelta(t, a*100, lab.A, 0.5)
		require.InDelta(t, b*100, lab.B, 0.5)

		L, u, v := ref.Luv()
		luv := LuvFromSRGB(c)
		require.InDelta(t, L*100, luv.L, 0.5)
		require.InDelta(t, u*100, luv.U, 0.5)
		require.InDelta(t, v*100, luv.V, 0.5)
	}
}

func TestResolveHue(t *testing.T) {
	testCases := []struct {
		degrees, chroma, max_chroma, want float64
	}{
		{90, 1, 1, 90},
		{-90, 1, 1, 270},
		{720, 1, 1, 0},
		{-1e-20, 1, 1, 0},
		{45, 0, 1, 0},
		{45, 1e-5, MaxChromaAB, 0},
		{45, 1, MaxChromaAB, 45},
		{math.NaN(), 1, 1, 0},
		{45, math.NaN(), 1, 0},
		{math.Inf(1), 1, 1, 0},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v_%v", tc.degrees, tc.chroma), func(t *testing.T) {
			require.Equal(t, tc.want, ResolveHue(tc.degrees, tc.chroma, tc.max_chroma))
		})
	}
}

func TestMatrixInverse(t *testing.T) {
	inv, err := xyzFromLinearSRGB.Inverted()
	require.NoError(t, err)
	for i := range 3 {
		for j := range 3 {
			require.InDelta(t, linearSRGBFromXYZ[i][j], inv[i][j], 1e-5)
		}
	}
	id := xyzFromLinearSRGB.Mul(linearSRGBFromXYZ)
	for i := range 3 {
		for j := range 3 {
			want := 0.0
			if i == j {
				want = 1
			}
			require.InDelta(t, want, id[i][j], 1e-5)
		}
	}
	require.Equal(t, Vec3{1, 2, 3}, Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}.Apply(Vec3{1, 2, 3}))
	_, err = Mat3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}.Inverted()
	require.Error(t, err)
}

func TestTo8Bit(t *testing.T) {
	require.Equal(t, uint8(0), To8Bit(math.NaN()))
	require.Equal(t, uint8(0), To8Bit(-1))
	require.Equal(t, uint8(255), To8Bit(2))
	require.Equal(t, uint8(128), To8Bit(0.5))
	for i := range 256 {
		require.Equal(t, uint8(i), To8Bit(float64(i)/255))
	}
	r, g, b := SRGB8(1, 2, 3).RGB8()
	require.Equal(t, []uint8{1, 2, 3}, []uint8{r, g, b})
}

func TestDisplaySRGB(t *testing.T) {
	// in gamut colors are unaffected
	for _, c := range sampleColors() {
		requireSRGBNear(t, c, LabFromSRGB(c).DisplaySRGB(), 1e-3)
		requireSRGBNear(t, c, LuvFromSRGB(c).DisplaySRGB(), 1e-3)
	}
	// an out of gamut color keeps its lightness and hue
	lch := LChab{50, 130, 200}
	mapped := LChabFromSRGB(lch.DisplaySRGB())
	require.InDelta(t, 50, mapped.L, 0.5)
	require.InDelta(t, 200, mapped.H, 2)
	require.Less(t, mapped.C, 130.0)
	require.True(t, LinearFromSRGB(lch.DisplaySRGB()).InGamut())
}
