// Package compose renders the channels of a color space buffer as viewable
// tiles and assembles them into a single mosaic image.
package compose

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/kovidgoyal/go-parallel"

	"github.com/kovidgoyal/decompose"
	"github.com/kovidgoyal/decompose/colorconv"
	"github.com/kovidgoyal/decompose/space"
)

var _ = fmt.Print

// Style selects how a channel is turned into pixels
type Style int

const (
	// Grey renders every channel as its normalized value
	Grey Style = iota
	// Tinted renders every channel as a color that shows what the channel
	// means, hues as a color wheel, a* as a red-green axis and so on
	Tinted
)

var ErrUnknownStyle = errors.New("unknown rendering style")

func (s Style) String() string {
	switch s {
	case Grey:
		return "grey"
	case Tinted:
		return "tinted"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "grey", "gray":
		return Grey, nil
	case "tinted", "tint", "color", "colour":
		return Tinted, nil
	}
	return Grey, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

type options struct {
	style      Style
	source     bool
	columns    int
	gap        int
	background decompose.NRGBColor
}

type Option func(*options)

// WithStyle sets the rendering style for the channel tiles. Default is Grey.
func WithStyle(s Style) Option {
	return func(o *options) { o.style = s }
}

// WithSource controls whether the image reconstructed as sRGB is placed
// before the channel tiles. Default is false.
func WithSource(enabled bool) Option {
	return func(o *options) { o.source = enabled }
}

// WithColumns sets the number of tiles per row of the mosaic. Zero or
// negative means all tiles in a single row.
func WithColumns(n int) Option {
	return func(o *options) { o.columns = n }
}

// WithGap sets the space in pixels between adjacent tiles
func WithGap(px int) Option {
	return func(o *options) { o.gap = max(0, px) }
}

// WithBackground sets the color of the gaps and of unused grid cells
func WithBackground(c decompose.NRGBColor) Option {
	return func(o *options) { o.background = c }
}

// Tile is the rendering of a single channel. Image is an *image.Gray in the
// Grey style and a *decompose.NRGB otherwise. Tiles always have their origin
// at (0, 0).
type Tile struct {
	Channel space.Channel
	Image   image.Image
}

type Composite struct {
	Space space.Tag
	Style Style
	// The pixels converted back to sRGB, nil unless WithSource was used
	Source *decompose.NRGB
	// One tile per channel in the declaration order of the space
	Tiles []Tile
	// The mosaic of the source and channel tiles
	Image *decompose.NRGB
}

// Frames returns the source image, if present, followed by the channel
// tiles.
func (c *Composite) Frames() []image.Image {
	ans := make([]image.Image, 0, len(c.Tiles)+1)
	if c.Source != nil {
		ans = append(ans, c.Source)
	}
	for _, t := range c.Tiles {
		ans = append(ans, t.Image)
	}
	return ans
}

// Animation returns an animation cycling through Frames()
func (c *Composite) Animation(delay time.Duration) *decompose.Animation {
	return decompose.NewAnimation(delay, c.Frames()...)
}

// Decompose renders every channel of buf as a tile and assembles the tiles
// into a mosaic. buf is not modified. The only error is for a buffer whose
// space is not a supported one.
func Decompose(buf *space.Buffer, opts ...Option) (ans *Composite, err error) {
	o := options{}
	for _, f := range opts {
		f(&o)
	}
	d, err := space.Lookup(buf.Space)
	if err != nil {
		return nil, err
	}
	var render renderer
	switch o.style {
	case Grey:
		render = grey_renderer(d)
	case Tinted:
		var found bool
		if render, found = tinted_renderer(d); !found {
			return nil, fmt.Errorf("%w: no tinted rendering for %s", space.ErrUnsupportedSpace, d.Name)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, int(o.style))
	}
	ans = &Composite{Space: d.Tag, Style: o.style, Tiles: make([]Tile, len(d.Channels))}
	width, height := buf.Rect.Dx(), buf.Rect.Dy()
	r := image.Rect(0, 0, width, height)
	targets := make([]tile_writer, len(d.Channels))
	for i, ch := range d.Channels {
		ans.Tiles[i].Channel = ch
		if o.style == Grey {
			g := image.NewGray(r)
			ans.Tiles[i].Image, targets[i] = g, gray_writer{g}
		} else {
			n := decompose.NewNRGB(r)
			ans.Tiles[i].Image, targets[i] = n, nrgb_writer{n}
		}
	}
	if o.source {
		ans.Source = decompose.NewNRGB(r)
	}
	f := func(start, limit int) {
		out := make([]decompose.NRGBColor, len(targets))
		for y := start; y < limit; y++ {
			row := buf.Row(buf.Rect.Min.Y + y)
			for x := range width {
				vals := row[x*buf.Channels : (x+1)*buf.Channels : (x+1)*buf.Channels]
				var src colorconv.SRGB
				if render.needs_srgb || ans.Source != nil {
					src = d.Inverse(vals)
				}
				if ans.Source != nil {
					ans.Source.SetSRGB(x, y, src)
				}
				render.pixel(vals, src, out)
				for ch, t := range targets {
					t.set(x, y, out[ch])
				}
			}
		}
	}
	if height > 0 {
		if err = parallel.Run_in_parallel_over_range(0, f, 0, height); err != nil {
			return nil, err
		}
	}
	if ans.Image, err = Mosaic(ans.Frames(), o.columns, o.gap, o.background); err != nil {
		return nil, err
	}
	return ans, nil
}

type tile_writer interface {
	set(x, y int, c decompose.NRGBColor)
}

type gray_writer struct{ *image.Gray }

// Grey tiles only ever receive grey colors
func (w gray_writer) set(x, y int, c decompose.NRGBColor) { w.Pix[y*w.Stride+x] = c.R }

type nrgb_writer struct{ *decompose.NRGB }

func (w nrgb_writer) set(x, y int, c decompose.NRGBColor) { w.SetNRGB(x, y, c) }
