package geometry

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestParseNumberPair(t *testing.T) {
	for _, tc := range []struct {
		in   string
		a    int
		sep  byte
		b    int
		rest string
	}{
		{"10x20", 10, 'x', 20, ""},
		{"0x0", 0, 'x', 0, ""},
		{"10*20", 10, '*', 20, ""},
		{"010x020", 10, 'x', 20, ""},
		{"10x20+5", 10, 'x', 20, "+5"},
	} {
		a, sep, b, rest, ok := parse_number_pair(tc.in)
		require.True(t, ok, tc.in)
		require.Equal(t, tc.a, a)
		require.Equal(t, tc.sep, sep)
		require.Equal(t, tc.b, b)
		require.Equal(t, tc.rest, rest)
	}
	for _, bad := range []string{"", "10", "10x", "x20", "10 20", "99999999999x1"} {
		_, _, _, _, ok := parse_number_pair(bad)
		require.False(t, ok, bad)
	}
}

func TestParseDimensions(t *testing.T) {
	d, err := ParseDimensions("10x20")
	require.NoError(t, err)
	require.Equal(t, Dimensions{10, 20}, d)
	d, err = ParseDimensions("010x020")
	require.NoError(t, err)
	require.Equal(t, Dimensions{10, 20}, d)
	require.Equal(t, "10x20", d.String())
	for _, bad := range []string{"", "0x0", "0x10", "10X20", "10X20+0+0", "10x20+0+0"} {
		_, err = ParseDimensions(bad)
		require.ErrorIs(t, err, ErrSyntax, bad)
	}
	var v Dimensions
	require.NoError(t, v.Set("3x4"))
	require.Equal(t, Dimensions{3, 4}, v)
	require.Error(t, v.Set("3"))
}

func TestParseCrop(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"10x20", "10x20+0+0"},
		{"10x20+0+0", "10x20+0+0"},
		{"10x20+30+40", "10x20+30+40"},
		{"10x20-30+40", "10x20-30+40"},
		{"10x20+30-40", "10x20+30-40"},
		{"010x20-0-0", "10x20-0-0"},
	} {
		c, err := ParseCrop(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, c.String())
	}
	for _, bad := range []string{"", "10X20", "0x20", "10x20+30*40", "10x20++30+40", "10x20+-30+40", "10x20+30", "10x20*30+40", "10x20+30+40x"} {
		_, err := ParseCrop(bad)
		require.ErrorIs(t, err, ErrSyntax, bad)
	}
}

func TestCropRect(t *testing.T) {
	b := image.Rect(0, 0, 100, 50)
	for _, tc := range []struct {
		crop string
		want image.Rectangle
	}{
		{"10x20", image.Rect(0, 0, 10, 20)},
		{"10x20+5+6", image.Rect(5, 6, 15, 26)},
		{"10x20-5+6", image.Rect(85, 6, 95, 26)},
		{"10x20+5-6", image.Rect(5, 24, 15, 44)},
		{"10x20-0-0", image.Rect(90, 30, 100, 50)},
		// offsets are clamped to keep the area inside the image
		{"10x20+500+500", image.Rect(90, 30, 100, 50)},
		{"10x20-500-500", image.Rect(0, 0, 10, 20)},
		// sizes are clamped to the image size
		{"1000x20+3+4", image.Rect(0, 4, 100, 24)},
		{"1000x1000", b},
	} {
		c, err := ParseCrop(tc.crop)
		require.NoError(t, err)
		require.Equal(t, tc.want, c.Rect(b), tc.crop)
		require.Equal(t, tc.want.Add(image.Pt(7, 9)), c.Rect(b.Add(image.Pt(7, 9))), tc.crop)
	}
}

func test_image(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x), uint8(y), 0, 0xff})
		}
	}
	return img
}

func TestApply(t *testing.T) {
	img := test_image(40, 30)
	require.Same(t, img, Transform{}.Apply(img))
	require.True(t, Transform{}.IsIdentity())

	c := Crop{Width: 500, Height: 500}
	require.Same(t, img, c.Apply(img).(*image.NRGBA))

	c = Crop{Width: 5, Height: 4, X: 2, Y: 3, FromRight: true}
	out := c.Apply(img)
	require.Equal(t, 5, out.Bounds().Dx())
	require.Equal(t, 4, out.Bounds().Dy())
	r, g, _, _ := out.At(out.Bounds().Min.X, out.Bounds().Min.Y).RGBA()
	require.Equal(t, uint32(33*0x101), r)
	require.Equal(t, uint32(3*0x101), g)

	out = Transform{Resize: &Dimensions{20, 10}}.Apply(img)
	require.Equal(t, image.Rect(0, 0, 20, 10), out.Bounds())

	// resize happens before crop
	out = Transform{Resize: &Dimensions{20, 10}, Crop: &Crop{Width: 8, Height: 8, FromBottom: true}}.Apply(img)
	require.Equal(t, 8, out.Bounds().Dx())
	require.Equal(t, 8, out.Bounds().Dy())
	require.Equal(t, 2, out.Bounds().Min.Y)
}
