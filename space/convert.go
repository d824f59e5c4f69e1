package space

import (
	"fmt"
	"image"

	"github.com/kovidgoyal/go-parallel"

	"github.com/kovidgoyal/decompose"
	"github.com/kovidgoyal/decompose/colorconv"
)

var _ = fmt.Print

func unpremultiply8(c, a uint8) uint8 {
	return uint8((uint16(c) * 0xff) / uint16(a))
}

// Load reads the pixels of img into an RGB buffer. Alpha is discarded, the
// color channels of translucent pixels are un-premultiplied.
func Load(img image.Image) (*Buffer, error) { return LoadAs(img, RGB) }

// LoadAs reads the pixels of img directly into a buffer in the specified
// space, equivalent to, but faster than, Load followed by Convert.
func LoadAs(img image.Image, t Tag) (ans *Buffer, err error) {
	d, err := Lookup(t)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if ans, err = NewBuffer(t, b); err != nil {
		return nil, err
	}
	width, height := b.Dx(), b.Dy()
	n := ans.Channels
	emit := func(dst []float64, x int, c colorconv.SRGB) {
		d.Forward(c, dst[x*n:x*n+n:x*n+n])
	}
	var f func(start, limit int)
	switch src := img.(type) {
	case *decompose.NRGB:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row, dst := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):], ans.Row(b.Min.Y+y)
				for x := range width {
					s := row[x*3 : x*3+3 : x*3+3]
					emit(dst, x, colorconv.SRGB8(s[0], s[1], s[2]))
				}
			}
		}
	case *image.NRGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row, dst := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):], ans.Row(b.Min.Y+y)
				for x := range width {
					s := row[x*4 : x*4+4 : x*4+4]
					emit(dst, x, colorconv.SRGB8(s[0], s[1], s[2]))
				}
			}
		}
	case *image.RGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row, dst := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):], ans.Row(b.Min.Y+y)
				for x := range width {
					s := row[x*4 : x*4+4 : x*4+4]
					r, g, bl := s[0], s[1], s[2]
					switch a := s[3]; a {
					case 0xff:
					case 0:
						r, g, bl = 0, 0, 0
					default:
						r, g, bl = unpremultiply8(r, a), unpremultiply8(g, a), unpremultiply8(bl, a)
					}
					emit(dst, x, colorconv.SRGB8(r, g, bl))
				}
			}
		}
	case *image.Gray:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row, dst := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):], ans.Row(b.Min.Y+y)
				for x := range width {
					emit(dst, x, colorconv.SRGB8(row[x], row[x], row[x]))
				}
			}
		}
	default:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				dst := ans.Row(b.Min.Y + y)
				for x := range width {
					r16, g16, b16, a16 := img.At(x+b.Min.X, y+b.Min.Y).RGBA()
					var c colorconv.SRGB
					if a16 != 0 {
						a := float64(a16)
						c = colorconv.SRGB{R: float64(r16) / a, G: float64(g16) / a, B: float64(b16) / a}
					}
					emit(dst, x, c)
				}
			}
		}
	}
	if err = parallel.Run_in_parallel_over_range(0, f, 0, height); err != nil {
		return nil, err
	}
	return ans, nil
}

// Convert returns a new buffer with the pixels of src converted to the
// specified space. Conversion between two spaces goes through sRGB. src is
// never modified.
func Convert(src *Buffer, t Tag) (ans *Buffer, err error) {
	from, err := Lookup(src.Space)
	if err != nil {
		return nil, err
	}
	to, err := Lookup(t)
	if err != nil {
		return nil, err
	}
	if src.Space == t {
		return src.Clone(), nil
	}
	if ans, err = NewBuffer(t, src.Rect); err != nil {
		return nil, err
	}
	m, n := src.Channels, ans.Channels
	width := src.Rect.Dx()
	f := func(start, limit int) {
		for y := src.Rect.Min.Y + start; y < src.Rect.Min.Y+limit; y++ {
			in, out := src.Row(y), ans.Row(y)
			for x := range width {
				to.Forward(from.Inverse(in[x*m:x*m+m:x*m+m]), out[x*n:x*n+n:x*n+n])
			}
		}
	}
	if err = parallel.Run_in_parallel_over_range(0, f, 0, src.Rect.Dy()); err != nil {
		return nil, err
	}
	return ans, nil
}
