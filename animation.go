package decompose

import (
	"fmt"
	"image"
	"io"
	"math"
	"time"

	"github.com/kettek/apng"
)

var _ = fmt.Print

type Frame struct {
	Image image.Image `json:"-"`
	Delay time.Duration
}

// Animation is a sequence of equally sized frames, such as a source image
// followed by each of its channels.
type Animation struct {
	Frames    []*Frame
	LoopCount uint // 0 means loop forever, 1 means loop once, ...
}

// NewAnimation creates an animation showing every image for the same
// amount of time
func NewAnimation(delay time.Duration, images ...image.Image) *Animation {
	ans := &Animation{Frames: make([]*Frame, len(images))}
	for i, img := range images {
		ans.Frames[i] = &Frame{Image: img, Delay: delay}
	}
	return ans
}

// converts a time.Duration to a numerator and denominator of type uint16.
// It finds the best rational approximation of the duration in seconds.
func as_fraction(d time.Duration) (num, den uint16) {
	if d <= 0 {
		return 0, 1
	}

	val := d.Seconds()

	// Continued fractions, keeping the convergent closest to val whose
	// numerator and denominator fit in uint16.
	bestNum, bestDen := uint16(0), uint16(1)
	bestError := math.Abs(val)

	var h, k [3]int64
	h[0], k[0] = 0, 1
	h[1], k[1] = 1, 0

	f := val

	for i := 2; i < 100; i++ {
		a := int64(f)

		h[2] = a*h[1] + h[0]
		k[2] = a*k[1] + k[0]

		if h[2] > math.MaxUint16 || k[2] > math.MaxUint16 {
			break
		}

		numConv := uint16(h[2])
		denConv := uint16(k[2])

		currentError := math.Abs(val - float64(numConv)/float64(denConv))
		if currentError < bestError {
			bestError = currentError
			bestNum = numConv
			bestDen = denConv
		}

		if f-float64(a) == 0.0 {
			break
		}

		f = 1.0 / (f - float64(a))

		h[0], h[1] = h[1], h[2]
		k[0], k[1] = k[1], k[2]
	}

	return bestNum, bestDen
}

func (self *Animation) as_apng() (ans apng.APNG) {
	ans.LoopCount = self.LoopCount
	for _, f := range self.Frames {
		// frames are full size so each one simply replaces the previous
		d := apng.Frame{
			DisposeOp: apng.DISPOSE_OP_BACKGROUND, BlendOp: apng.BLEND_OP_SOURCE, Image: f.Image,
		}
		d.DelayNumerator, d.DelayDenominator = as_fraction(f.Delay)
		ans.Frames = append(ans.Frames, d)
	}
	return
}

// EncodeAsPNG writes the animation as an animated PNG. A single frame is
// written as a plain PNG.
func (self *Animation) EncodeAsPNG(w io.Writer) error {
	switch len(self.Frames) {
	case 0:
		return fmt.Errorf("cannot encode an animation with no frames")
	case 1:
		return Encode(w, self.Frames[0].Image, PNG)
	}
	b := self.Frames[0].Image.Bounds()
	for i, f := range self.Frames {
		if fb := f.Image.Bounds(); fb.Dx() != b.Dx() || fb.Dy() != b.Dy() {
			return fmt.Errorf("animation frame %d has size %dx%d different from the first frame size %dx%d", i+1, fb.Dx(), fb.Dy(), b.Dx(), b.Dy())
		}
	}
	return apng.Encode(w, self.as_apng())
}

// SaveAnimation writes the animation to filename as an animated PNG
func SaveAnimation(anim *Animation, filename string) (err error) {
	file, err := fs.Create(filename)
	if err != nil {
		return err
	}
	err = anim.EncodeAsPNG(file)
	errc := file.Close()
	if err == nil {
		err = errc
	}
	return err
}
