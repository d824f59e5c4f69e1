// Package geometry parses and applies the resize and crop specifications
// used to prepare images before decomposition.
package geometry

import (
	"errors"
	"fmt"
	"image"
	"strconv"

	"github.com/anthonynsimon/bild/transform"
)

var _ = fmt.Print

var ErrSyntax = errors.New("invalid geometry")

// parse_number_pair splits "<a><sep><b><rest>" where a and b are decimal
// numbers and sep is a single printable ASCII character
func parse_number_pair(s string) (a int, sep byte, b int, rest string, ok bool) {
	number := func(s string) (int, string, bool) {
		n := 0
		for n < len(s) && '0' <= s[n] && s[n] <= '9' {
			n++
		}
		v, err := strconv.ParseUint(s[:n], 10, 32)
		if err != nil {
			return 0, s, false
		}
		return int(v), s[n:], true
	}
	if a, s, ok = number(s); !ok || s == "" {
		return 0, 0, 0, "", false
	}
	if sep, s = s[0], s[1:]; sep <= ' ' || sep >= 127 {
		return 0, 0, 0, "", false
	}
	if b, rest, ok = number(s); !ok {
		return 0, 0, 0, "", false
	}
	return
}

// Dimensions is a size in pixels, written as <width>x<height>
type Dimensions struct {
	Width, Height int
}

func (d Dimensions) String() string { return fmt.Sprintf("%dx%d", d.Width, d.Height) }

// ParseDimensions parses <width>x<height> where both numbers are positive
func ParseDimensions(s string) (ans Dimensions, err error) {
	w, sep, h, rest, ok := parse_number_pair(s)
	if !ok || sep != 'x' || w == 0 || h == 0 || rest != "" {
		return ans, fmt.Errorf("%w: expected <width>x<height>, got: %q", ErrSyntax, s)
	}
	return Dimensions{w, h}, nil
}

// Set implements the flag.Value interface
func (d *Dimensions) Set(s string) (err error) {
	*d, err = ParseDimensions(s)
	return
}

func (d *Dimensions) Type() string { return "WxH" }

// Resize scales img to exactly the specified size with a Lanczos filter
func (d Dimensions) Resize(img image.Image) image.Image {
	return transform.Resize(img, d.Width, d.Height, transform.Lanczos)
}

// Crop is a rectangle written as <width>x<height>[{+-}<x>{+-}<y>]. A minus
// sign measures the offset from the right or bottom edge instead of the
// left or top edge.
type Crop struct {
	Width, Height         int
	X, Y                  int
	FromRight, FromBottom bool
}

func (c Crop) String() string {
	sign := func(neg bool) byte {
		if neg {
			return '-'
		}
		return '+'
	}
	return fmt.Sprintf("%dx%d%c%d%c%d", c.Width, c.Height, sign(c.FromRight), c.X, sign(c.FromBottom), c.Y)
}

// ParseCrop parses a crop geometry. A missing offset means +0+0.
func ParseCrop(s string) (ans Crop, err error) {
	fail := func() (Crop, error) {
		return Crop{}, fmt.Errorf("%w: expected <width>x<height>+<x>+<y>, got: %q", ErrSyntax, s)
	}
	w, sep, h, rest, ok := parse_number_pair(s)
	if !ok || sep != 'x' || w == 0 || h == 0 {
		return fail()
	}
	ans.Width, ans.Height = w, h
	if rest == "" {
		return ans, nil
	}
	if rest[0] != '+' && rest[0] != '-' {
		return fail()
	}
	ans.FromRight = rest[0] == '-'
	x, ysep, y, rest, ok := parse_number_pair(rest[1:])
	if !ok || (ysep != '+' && ysep != '-') || rest != "" {
		return fail()
	}
	ans.X, ans.Y, ans.FromBottom = x, y, ysep == '-'
	return ans, nil
}

func (c *Crop) Set(s string) (err error) {
	*c, err = ParseCrop(s)
	return
}

func (c *Crop) Type() string { return "geometry" }

// Rect returns the area of an image with the specified bounds selected by
// the crop. The size is clamped to the image size and the offset such that
// the selected area lies entirely within the image.
func (c Crop) Rect(bounds image.Rectangle) image.Rectangle {
	iw, ih := bounds.Dx(), bounds.Dy()
	w, h := min(c.Width, iw), min(c.Height, ih)
	x, y := min(c.X, iw-w), min(c.Y, ih-h)
	if c.FromRight {
		x = iw - w - x
	}
	if c.FromBottom {
		y = ih - h - y
	}
	return image.Rect(x, y, x+w, y+h).Add(bounds.Min)
}

// Apply returns the cropped area of img. img itself is returned when the
// crop covers all of it.
func (c Crop) Apply(img image.Image) image.Image {
	b := img.Bounds()
	r := c.Rect(b)
	if r == b {
		return img
	}
	return transform.Crop(img, r)
}

// Transform is an optional resize followed by an optional crop
type Transform struct {
	Resize *Dimensions
	Crop   *Crop
}

func (t Transform) IsIdentity() bool { return t.Resize == nil && t.Crop == nil }

func (t Transform) Apply(img image.Image) image.Image {
	if t.Resize != nil {
		img = t.Resize.Resize(img)
	}
	if t.Crop != nil {
		img = t.Crop.Apply(img)
	}
	return img
}
