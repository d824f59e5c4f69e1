package compose

import (
	"fmt"
	"image"

	"github.com/kovidgoyal/decompose"
)

var _ = fmt.Print

// Mosaic arranges equally sized tiles on a grid, left to right and top to
// bottom, with gap pixels of background between adjacent tiles. columns <= 0
// places all tiles in a single row.
func Mosaic(tiles []image.Image, columns, gap int, background decompose.NRGBColor) (*decompose.NRGB, error) {
	n := len(tiles)
	if n == 0 {
		return decompose.NewNRGB(image.Rectangle{}), nil
	}
	gap = max(0, gap)
	w, h := tiles[0].Bounds().Dx(), tiles[0].Bounds().Dy()
	cols := columns
	if cols <= 0 || cols > n {
		cols = n
	}
	rows := (n + cols - 1) / cols
	ans := decompose.NewNRGB(image.Rect(0, 0, cols*w+(cols-1)*gap, rows*h+(rows-1)*gap))
	if background != (decompose.NRGBColor{}) {
		ans.Fill(ans.Rect, background)
	}
	for i, t := range tiles {
		if b := t.Bounds(); b.Dx() != w || b.Dy() != h {
			return nil, fmt.Errorf("tile %d has size %dx%d different from the first tile size %dx%d", i+1, b.Dx(), b.Dy(), w, h)
		}
		paste(ans, t, image.Pt((i%cols)*(w+gap), (i/cols)*(h+gap)))
	}
	return ans, nil
}

// paste copies src into dst with the top left corner of src at pos
func paste(dst *decompose.NRGB, src image.Image, pos image.Point) {
	b := src.Bounds()
	switch img := src.(type) {
	case *image.Gray:
		for y := range b.Dy() {
			row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
			out := dst.Pix[dst.PixOffset(pos.X, pos.Y+y):]
			for x, g := range row[:b.Dx()] {
				out[x*3], out[x*3+1], out[x*3+2] = g, g, g
			}
		}
	case *decompose.NRGB:
		for y := range b.Dy() {
			i := img.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[dst.PixOffset(pos.X, pos.Y+y):], img.Pix[i:i+3*b.Dx()])
		}
	default:
		for y := range b.Dy() {
			for x := range b.Dx() {
				dst.Set(pos.X+x, pos.Y+y, src.At(b.Min.X+x, b.Min.Y+y))
			}
		}
	}
}
