package space

import (
	"fmt"
	"image"
	"image/color"

	"github.com/kovidgoyal/decompose/colorconv"
)

var _ = fmt.Print

// Buffer is a rectangular grid of pixels in some color space. Each pixel is
// a tuple of Channels float64 values stored contiguously.
type Buffer struct {
	Space Tag
	// Pix holds the pixel values. The tuple for the pixel at (x, y) starts at
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*Channels].
	Pix []float64
	// Stride is the number of values between vertically adjacent pixels.
	Stride   int
	Channels int
	Rect     image.Rectangle
}

// NewBuffer allocates a zeroed buffer for the specified space
func NewBuffer(t Tag, r image.Rectangle) (*Buffer, error) {
	d, err := Lookup(t)
	if err != nil {
		return nil, err
	}
	n := len(d.Channels)
	return &Buffer{
		Space: t, Channels: n, Rect: r, Stride: n * r.Dx(),
		Pix: make([]float64, n*r.Dx()*r.Dy()),
	}, nil
}

func (b *Buffer) PixOffset(x, y int) int {
	return (y-b.Rect.Min.Y)*b.Stride + (x-b.Rect.Min.X)*b.Channels
}

// Values returns the tuple for the pixel at (x, y). The returned slice
// aliases Pix. Returns nil for points outside the buffer.
func (b *Buffer) Values(x, y int) []float64 {
	if !(image.Point{x, y}.In(b.Rect)) {
		return nil
	}
	i := b.PixOffset(x, y)
	return b.Pix[i : i+b.Channels : i+b.Channels]
}

// Row returns the values for row y, Rect.Dx() tuples long
func (b *Buffer) Row(y int) []float64 {
	i := (y - b.Rect.Min.Y) * b.Stride
	return b.Pix[i : i+b.Channels*b.Rect.Dx()]
}

// Clone returns a deep copy of b
func (b *Buffer) Clone() *Buffer {
	ans := *b
	ans.Pix = make([]float64, len(b.Pix))
	copy(ans.Pix, b.Pix)
	return &ans
}

// SRGBAt reconstructs the sRGB color of the pixel at (x, y).
func (b *Buffer) SRGBAt(x, y int) colorconv.SRGB {
	v := b.Values(x, y)
	if v == nil {
		return colorconv.SRGB{}
	}
	d, err := Lookup(b.Space)
	if err != nil {
		return colorconv.SRGB{}
	}
	return d.Inverse(v)
}

// Buffer is also an image.Image, whose colors are the pixels converted
// back to sRGB.

func (b *Buffer) ColorModel() color.Model { return color.NRGBAModel }

func (b *Buffer) Bounds() image.Rectangle { return b.Rect }

func (b *Buffer) At(x, y int) color.Color {
	r, g, bl := b.SRGBAt(x, y).RGB8()
	return color.NRGBA{r, g, bl, 0xff}
}

func (b *Buffer) Opaque() bool { return true }

func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer{%s %dx%d}", b.Space, b.Rect.Dx(), b.Rect.Dy())
}
