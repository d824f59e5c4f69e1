/*
Package decompose reads and writes the images consumed and produced by the
color channel decomposer.

Images are decoded with their EXIF orientation applied. Composites are
written in any of the supported raster formats, chosen by file name
extension, or as an animated PNG cycling through the channels. The color
mathematics lives in the colorconv, space and compose sub-packages.
*/
package decompose

import "fmt"

type DecomposeVersion struct {
	Major, Minor, Patch uint
}

func (v DecomposeVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v DecomposeVersion) Equal(o DecomposeVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v DecomposeVersion) After(o DecomposeVersion) bool {
	switch {
	case v.Major != o.Major:
		return v.Major > o.Major
	case v.Minor != o.Minor:
		return v.Minor > o.Minor
	}
	return v.Patch > o.Patch
}

func (v DecomposeVersion) Before(o DecomposeVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = DecomposeVersion{0, 3, 0}
