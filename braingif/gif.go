package braingif

import (
	"context"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"github.com/pkg/errors"
)

// A GIFEncoder writes frames directly into a GIF which loops forever.
//
// Frames are quantized to a fixed palette with dithering; there is no
// quality control.
//
// GIF stores delays in whole hundredths of a second, so the frame delay is
// rounded to the nearest 10ms and the played rate can differ from FPS. For
// example, 60 FPS plays back with 20ms frames (50 FPS), and 33 FPS with 30ms
// frames.
type GIFEncoder struct {
	FPS float64
}

// gifDelay converts a frame delay into hundredths of a second. Zero would
// make viewers fall back to their own default rate, so it is never returned.
func gifDelay(delay time.Duration) int {
	centis := int((delay.Milliseconds() + 5) / 10)
	if centis < 1 {
		return 1
	}
	return centis
}

func (g *GIFEncoder) Encode(ctx context.Context, frames []image.Image, outputPath string) error {
	if err := checkFrames(frames); err != nil {
		return err
	}
	delay, err := FrameDelay(g.FPS)
	if err != nil {
		return err
	}
	centis := gifDelay(delay)

	anim := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		anim.Image = append(anim.Image, paletted(frame))
		anim.Delay = append(anim.Delay, centis)
	}
	return Save(outputPath, anim, func(w io.Writer, anim *gif.GIF) error {
		return errors.Wrap(gif.EncodeAll(w, anim), "encode gif")
	})
}

func paletted(img image.Image) *image.Paletted {
	bounds := img.Bounds()
	res := image.NewPaletted(image.Rect(0, 0, bounds.Dx(), bounds.Dy()), palette.Plan9)
	draw.FloydSteinberg.Draw(res, res.Bounds(), img, bounds.Min)
	return res
}
