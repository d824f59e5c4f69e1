package decompose

import (
	"fmt"
	"image"
	"io"

	"github.com/anthonynsimon/bild/transform"
	"github.com/rwcarlsen/goexif/exif"
	exif_tiff "github.com/rwcarlsen/goexif/tiff"
)

var _ = fmt.Print

// orientation is an EXIF flag that specifies the transformation
// that should be applied to image to display it correctly.
type orientation int

const (
	orientationUnspecified = 0
	orientationNormal      = 1
	orientationFlipH       = 2
	orientationRotate180   = 3
	orientationFlipV       = 4
	orientationTranspose   = 5
	orientationRotate270   = 6
	orientationTransverse  = 7
	orientationRotate90    = 8
)

// readOrientation returns the EXIF orientation of the image in r, if any.
// Images without EXIF data or with a malformed tag are unspecified. Errors
// in the optional sub-directories are ignored.
func readOrientation(r io.Reader) orientation {
	x, err := exif.Decode(r)
	if x == nil || (err != nil && exif.IsCriticalError(err)) {
		return orientationUnspecified
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil || tag == nil || tag.Format() != exif_tiff.IntVal {
		return orientationUnspecified
	}
	if v, err := tag.Int(0); err == nil && v > 0 && v < 9 {
		return orientation(v)
	}
	return orientationUnspecified
}

// transpose mirrors img along its top-left to bottom-right diagonal.
func transpose(img image.Image) (*NRGB, error) {
	src, err := AsNRGB(img)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	ans := NewNRGB(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := range b.Dy() {
		row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := range b.Dx() {
			copy(ans.Pix[x*ans.Stride+y*3:x*ans.Stride+y*3+3], row[x*3:x*3+3])
		}
	}
	return ans, nil
}

// normalizeOrigin moves the origin of img to (0, 0), which the bild flips
// require.
func normalizeOrigin(img image.Image) (image.Image, error) {
	if img.Bounds().Min == (image.Point{}) {
		return img, nil
	}
	return AsNRGB(img)
}

// fixOrientation applies a transform to img corresponding to the given orientation flag.
func fixOrientation(img image.Image, o orientation) (ans image.Image, err error) {
	if img, err = normalizeOrigin(img); err != nil {
		return nil, err
	}
	switch o {
	case orientationFlipH:
		return transform.FlipH(img), nil
	case orientationFlipV:
		return transform.FlipV(img), nil
	case orientationRotate180:
		return transform.FlipV(transform.FlipH(img)), nil
	}
	var t *NRGB
	switch o {
	case orientationTranspose, orientationRotate270, orientationRotate90, orientationTransverse:
		if t, err = transpose(img); err != nil {
			return nil, err
		}
	default:
		return img, nil
	}
	switch o {
	case orientationRotate270:
		// rotate clockwise by 90
		return transform.FlipH(t), nil
	case orientationRotate90:
		// rotate counter-clockwise by 90
		return transform.FlipV(t), nil
	case orientationTransverse:
		return transform.FlipV(transform.FlipH(t)), nil
	}
	return t, nil
}
