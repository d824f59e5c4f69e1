package space

import (
	"fmt"
	"math"
	"sync"

	"github.com/kovidgoyal/decompose/colorconv"
)

var _ = fmt.Print

// Channel describes one coordinate of a color model.
type Channel struct {
	Name string `yaml:"name"`
	// The nominal range of values for sRGB input, used to normalize the
	// channel for display.
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
	// Cyclic channels are hue angles in degrees in [0,360)
	Cyclic bool `yaml:"cyclic,omitempty"`
}

// Normalize maps v from the channel's range to [0,1], clamping values that
// fall outside it. Cyclic channels map [0,360) to [0,1) without any wrap
// around remapping.
func (c Channel) Normalize(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if c.Cyclic {
		return max(0, min(v/360, 1))
	}
	if c.Max <= c.Min {
		return 0
	}
	return max(0, min((v-c.Min)/(c.Max-c.Min), 1))
}

// Descriptor holds everything needed to convert to and from a color model.
type Descriptor struct {
	Tag Tag `yaml:"-"`
	// Short name used on the command line and in output file names
	Name string `yaml:"name"`
	// Human readable name
	Title    string    `yaml:"title"`
	Channels []Channel `yaml:"channels"`

	// Forward writes len(Channels) values for c into dst
	Forward func(c colorconv.SRGB, dst []float64) `yaml:"-"`
	// Inverse reconstructs the sRGB color from len(Channels) values
	Inverse func(src []float64) colorconv.SRGB `yaml:"-"`
}

func (d *Descriptor) String() string { return d.Title }

func unit(names ...string) []Channel {
	ans := make([]Channel, len(names))
	for i, n := range names {
		ans[i] = Channel{Name: n, Min: 0, Max: 1}
	}
	return ans
}

func hue(name string) Channel { return Channel{Name: name, Min: 0, Max: 360, Cyclic: true} }

// Extents of a*, b*, u* and v* over the sRGB gamut
const (
	minA, maxA = -86.18078, 98.23698
	minB, maxB = -107.858345, 94.48001
	minU, maxU = -83.07059, 175.01141
	minV, maxV = -134.10574, 107.40619
)

func describe(t Tag) *Descriptor {
	switch t {
	case RGB:
		return &Descriptor{
			Name: "rgb", Title: "RGB", Channels: unit("R", "G", "B"),
			Forward: func(c colorconv.SRGB, dst []float64) { dst[0], dst[1], dst[2] = c.R, c.G, c.B },
			Inverse: func(s []float64) colorconv.SRGB { return colorconv.SRGB{R: s[0], G: s[1], B: s[2]} },
		}
	case LinearRGB:
		return &Descriptor{
			Name: "lin-rgb", Title: "Linear RGB", Channels: unit("R", "G", "B"),
			Forward: func(c colorconv.SRGB, dst []float64) {
				l := colorconv.LinearFromSRGB(c)
				dst[0], dst[1], dst[2] = l.R, l.G, l.B
			},
			Inverse: func(s []float64) colorconv.SRGB { return colorconv.LinearRGB{R: s[0], G: s[1], B: s[2]}.SRGB() },
		}
	case XYZ:
		w := colorconv.D65
		return &Descriptor{
			Name: "XYZ", Title: "CIE XYZ",
			Channels: []Channel{{Name: "X", Max: w.X}, {Name: "Y", Max: w.Y}, {Name: "Z", Max: w.Z}},
			Forward: func(c colorconv.SRGB, dst []float64) {
				v := colorconv.XYZFromSRGB(c)
				dst[0], dst[1], dst[2] = v.X, v.Y, v.Z
			},
			Inverse: func(s []float64) colorconv.SRGB { return colorconv.XYZ{X: s[0], Y: s[1], Z: s[2]}.SRGB() },
		}
	case XyY:
		return &Descriptor{
			Name: "xyY", Title: "CIE xyY", Channels: unit("x", "y", "Y"),
			Forward: func(c colorconv.SRGB, dst []float64) {
				v := colorconv.XyYFromSRGB(c)
				dst[0], dst[1], dst[2] = v.ChromaX, v.ChromaY, v.Y
			},
			Inverse: func(s []float64) colorconv.SRGB { return colorconv.XyY{ChromaX: s[0], ChromaY: s[1], Y: s[2]}.SRGB() },
		}
	case HSL:
		return &Descriptor{
			Name: "hsl", Title: "HSL", Channels: append([]Channel{hue("H")}, unit("S", "L")...),
			Forward: func(c colorconv.SRGB, dst []float64) {
				v := colorconv.HSLFromSRGB(c)
				dst[0], dst[1], dst[2] = v.H, v.S, v.L
			},
			Inverse: func(s []float64) colorconv.SRGB { return colorconv.HSL{H: s[0], S: s[1], L: s[2]}.SRGB() },
		}
	case HSV:
		return &Descriptor{
			Name: "hsv", Title: "HSV", Channels: append([]Channel{hue("H")}, unit("S", "V")...),
			Forward: func(c colorconv.SRGB, dst []float64) {
				v := colorconv.HSVFromSRGB(c)
				dst[0], dst[1], dst[2] = v.H, v.S, v.V
			},
			Inverse: func(s []float64) colorconv.SRGB { return colorconv.HSV{H: s[0], S: s[1], V: s[2]}.SRGB() },
		}
	case HWB:
		return &Descriptor{
			Name: "hwb", Title: "HWB", Channels: append([]Channel{hue("H")}, unit("W", "B")...),
			Forward: func(c colorconv.SRGB, dst []float64) {
				v := colorconv.HWBFromSRGB(c)
				dst[0], dst[1], dst[2] = v.H, v.W, v.B
			},
			Inverse: func(s []float64) colorconv.SRGB { return colorconv.HWB{H: s[0], W: s[1], B: s[2]}.SRGB() },
		}
	case Lab:
		return &Descriptor{
			Name: "lab", Title: "CIE L*a*b*",
			Channels: []Channel{{Name: "L*", Max: 100}, {Name: "a*", Min: minA, Max: maxA}, {Name: "b*", Min: minB, Max: maxB}},
			Forward: func(c colorconv.SRGB, dst []float64) {
				v := colorconv.LabFromSRGB(c)
				dst[0], dst[1], dst[2] = v.L, v.A, v.B
			},
			Inverse: func(s []float64) colorconv.SRGB { return colorconv.Lab{L: s[0], A: s[1], B: s[2]}.SRGB() },
		}
	case LChab:
		return &Descriptor{
			Name: "lchab", Title: "CIE LCh(ab)",
			Channels: []Channel{{Name: "L*", Max: 100}, {Name: "C*", Max: colorconv.MaxChromaAB}, hue("h")},
			Forward: func(c colorconv.SRGB, dst []float64) {
				v := colorconv.LChabFromSRGB(c)
				dst[0], dst[1], dst[2] = v.L, v.C, v.H
			},
			Inverse: func(s []float64) colorconv.SRGB { return colorconv.LChab{L: s[0], C: s[1], H: s[2]}.SRGB() },
		}
	case Luv:
		return &Descriptor{
			Name: "luv", Title: "CIE L*u*v*",
			Channels: []Channel{{Name: "L*", Max: 100}, {Name: "u*", Min: minU, Max: maxU}, {Name: "v*", Min: minV, Max: maxV}},
			Forward: func(c colorconv.SRGB, dst []float64) {
				v := colorconv.LuvFromSRGB(c)
				dst[0], dst[1], dst[2] = v.L, v.U, v.V
			},
			Inverse: func(s []float64) colorconv.SRGB { return colorconv.Luv{L: s[0], U: s[1], V: s[2]}.SRGB() },
		}
	case LChuv:
		return &Descriptor{
			Name: "lchuv", Title: "CIE LCh(uv)",
			Channels: []Channel{{Name: "L*", Max: 100}, {Name: "C*", Max: colorconv.MaxChromaUV}, hue("h")},
			Forward: func(c colorconv.SRGB, dst []float64) {
				v := colorconv.LChuvFromSRGB(c)
				dst[0], dst[1], dst[2] = v.L, v.C, v.H
			},
			Inverse: func(s []float64) colorconv.SRGB { return colorconv.LChuv{L: s[0], C: s[1], H: s[2]}.SRGB() },
		}
	case CMY:
		return &Descriptor{
			Name: "cmy", Title: "CMY", Channels: unit("C", "M", "Y"),
			Forward: func(c colorconv.SRGB, dst []float64) {
				v := colorconv.CMYFromSRGB(c)
				dst[0], dst[1], dst[2] = v.C, v.M, v.Y
			},
			Inverse: func(s []float64) colorconv.SRGB { return colorconv.CMY{C: s[0], M: s[1], Y: s[2]}.SRGB() },
		}
	case CMYK:
		return &Descriptor{
			Name: "cmyk", Title: "CMYK", Channels: unit("C", "M", "Y", "K"),
			Forward: func(c colorconv.SRGB, dst []float64) {
				v := colorconv.CMYKFromSRGB(c)
				dst[0], dst[1], dst[2], dst[3] = v.C, v.M, v.Y, v.K
			},
			Inverse: func(s []float64) colorconv.SRGB {
				return colorconv.CMYK{C: s[0], M: s[1], Y: s[2], K: s[3]}.SRGB()
			},
		}
	}
	return nil
}

var registry = sync.OnceValue(func() []*Descriptor {
	ans := make([]*Descriptor, 0, numTags-1)
	for t := Tag(1); int(t) < numTags; t++ {
		d := describe(t)
		if d == nil {
			panic(fmt.Sprintf("no descriptor for color space tag: %d", int(t)))
		}
		d.Tag = t
		ans = append(ans, d)
	}
	return ans
})

// Lookup returns the descriptor for t. The returned value is shared and
// must not be modified.
func Lookup(t Tag) (*Descriptor, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSpace, int(t))
	}
	return registry()[t-1], nil
}

// All returns the descriptors of every supported space in declaration order.
// The slice is shared and must not be modified.
func All() []*Descriptor { return registry() }
