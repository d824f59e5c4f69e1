package decompose

import (
	"fmt"
	"image"
	"image/color"

	"github.com/kovidgoyal/go-parallel"

	"github.com/kovidgoyal/decompose/colorconv"
)

var _ = fmt.Print

// NRGBColor is an opaque 24-bit color.
type NRGBColor struct {
	R, G, B uint8
}

func (c NRGBColor) AsSharp() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c NRGBColor) String() string {
	return fmt.Sprintf("NRGBColor{%02X %02X %02X}", c.R, c.G, c.B)
}

func (c NRGBColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// SRGB returns the color with components scaled to [0,1]
func (c NRGBColor) SRGB() colorconv.SRGB { return colorconv.SRGB8(c.R, c.G, c.B) }

// NRGBFromSRGB rounds c to 8 bits per component
func NRGBFromSRGB(c colorconv.SRGB) NRGBColor {
	r, g, b := c.RGB8()
	return NRGBColor{r, g, b}
}

func nrgbModel(c color.Color) color.Color {
	if _, ok := c.(NRGBColor); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	switch a {
	case 0xffff:
		return NRGBColor{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
	case 0:
		return NRGBColor{0, 0, 0}
	default:
		// color.Color.RGBA is alpha-premultiplied
		r = (r * 0xffff) / a
		g = (g * 0xffff) / a
		b = (b * 0xffff) / a
		return NRGBColor{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
	}
}

var NRGBModel color.Model = color.ModelFunc(nrgbModel)

// NRGB is an in-memory opaque image with 8 bits per color channel. All
// composites and tinted channel tiles are NRGB images.
type NRGB struct {
	// Pix holds the image's pixels, in R, G, B order. The pixel at
	// (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

func (p *NRGB) ColorModel() color.Model { return NRGBModel }

func (p *NRGB) Bounds() image.Rectangle { return p.Rect }

func (p *NRGB) At(x, y int) color.Color {
	return p.NRGBAt(x, y)
}

func (p *NRGB) NRGBAt(x, y int) NRGBColor {
	if !(image.Point{x, y}.In(p.Rect)) {
		return NRGBColor{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return NRGBColor{s[0], s[1], s[2]}
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *NRGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *NRGB) Set(x, y int, c color.Color) {
	p.SetNRGB(x, y, NRGBModel.Convert(c).(NRGBColor))
}

func (p *NRGB) SetNRGB(x, y int, c NRGBColor) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = c.R, c.G, c.B
}

// SetSRGB stores c rounded to 8 bits, out of range components are clamped
func (p *NRGB) SetSRGB(x, y int, c colorconv.SRGB) {
	p.SetNRGB(x, y, NRGBFromSRGB(c))
}

// Fill sets every pixel in r to c
func (p *NRGB) Fill(r image.Rectangle, c NRGBColor) {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := p.PixOffset(r.Min.X, y)
		row := p.Pix[i : i+3*r.Dx()]
		for x := 0; x < len(row); x += 3 {
			row[x], row[x+1], row[x+2] = c.R, c.G, c.B
		}
	}
}

// SubImage returns an image representing the portion of the image p visible
// through r. The returned value shares pixels with the original image.
func (p *NRGB) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	// an empty intersection is not guaranteed to lie inside p.Rect
	if r.Empty() {
		return &NRGB{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &NRGB{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}

// Opaque reports whether the image is fully opaque, which it always is.
func (p *NRGB) Opaque() bool { return true }

func NewNRGB(r image.Rectangle) *NRGB {
	return &NRGB{
		Pix:    make([]uint8, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}

// AsNRGB returns img if it already is an *NRGB, otherwise a copy of img
// with its origin moved to (0, 0). Alpha is discarded, translucent pixels
// are un-premultiplied.
func AsNRGB(img image.Image) (*NRGB, error) {
	if ans, ok := img.(*NRGB); ok {
		return ans, nil
	}
	b := img.Bounds()
	ans := NewNRGB(image.Rect(0, 0, b.Dx(), b.Dy()))
	var f func(start, limit int)
	switch src := img.(type) {
	case *image.NRGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row, dst := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):], ans.Pix[y*ans.Stride:]
				for x := range b.Dx() {
					copy(dst[x*3:x*3+3], row[x*4:x*4+3])
				}
			}
		}
	default:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				dst := ans.Pix[y*ans.Stride:]
				for x := range b.Dx() {
					c := nrgbModel(img.At(b.Min.X+x, b.Min.Y+y)).(NRGBColor)
					dst[x*3], dst[x*3+1], dst[x*3+2] = c.R, c.G, c.B
				}
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, b.Dy()); err != nil {
		return nil, err
	}
	return ans, nil
}
