package braingif

import (
	"context"
	"image"
	"math"
	"time"

	"github.com/pkg/errors"
)

// An Encoder turns an ordered sequence of frames into a single looping
// animation file.
type Encoder interface {
	Encode(ctx context.Context, frames []image.Image, outputPath string) error
}

// FrameDelay returns the display time of a single frame, rounded to the
// nearest millisecond.
//
// GIFEncoder further rounds this to hundredths of a second, while gifski is
// given the FPS directly.
func FrameDelay(fps float64) (time.Duration, error) {
	if !(fps > 0) || math.IsInf(fps, 0) {
		return 0, errors.Wrapf(ErrInvalidConfig, "fps must be positive, got %f", fps)
	}
	return time.Duration(math.Round(1000/fps)) * time.Millisecond, nil
}

func checkFrames(frames []image.Image) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	bounds := frames[0].Bounds()
	for i, f := range frames {
		if f == nil {
			return errors.Errorf("frame %d is nil", i)
		}
		if f.Bounds().Size() != bounds.Size() {
			return errors.Errorf("frame %d has size %v but frame 0 has size %v", i,
				f.Bounds().Size(), bounds.Size())
		}
	}
	return nil
}
