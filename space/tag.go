package space

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var _ = fmt.Print

// Tag identifies one of the supported color models.
type Tag int

const (
	Unknown Tag = iota
	RGB
	LinearRGB
	XYZ
	XyY
	HSL
	HSV
	HWB
	Lab
	LChab
	Luv
	LChuv
	CMY
	CMYK

	numTags int = iota
)

var ErrUnsupportedSpace = errors.New("unsupported color space")

var aliases = map[string]Tag{
	"srgb":       RGB,
	"linrgb":     LinearRGB,
	"linear":     LinearRGB,
	"linear-rgb": LinearRGB,
	"lch":        LChab,
}

func (t Tag) String() string {
	if d, err := Lookup(t); err == nil {
		return d.Name
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

func (t Tag) Valid() bool { return t > Unknown && int(t) < numTags }

// Parse returns the tag with the specified name. Matching is case
// insensitive.
func Parse(name string) (Tag, error) {
	q := strings.TrimSpace(name)
	for _, d := range All() {
		if strings.EqualFold(d.Name, q) {
			return d.Tag, nil
		}
	}
	if t, found := aliases[strings.ToLower(q)]; found {
		return t, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnsupportedSpace, name)
}

// ParseList parses a comma separated list of names. The result is
// de-duplicated and sorted in registry order. The special name "all"
// selects every space.
func ParseList(list string) (ans []Tag, err error) {
	for item := range strings.SplitSeq(list, ",") {
		if item = strings.TrimSpace(item); item == "" {
			continue
		}
		if strings.EqualFold(item, "all") {
			ans = ans[:0]
			for _, d := range All() {
				ans = append(ans, d.Tag)
			}
			return ans, nil
		}
		t, err := Parse(item)
		if err != nil {
			return nil, err
		}
		ans = append(ans, t)
	}
	slices.Sort(ans)
	return slices.Compact(ans), nil
}
