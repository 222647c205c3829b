package braingif

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// An ExternalEncoder writes each frame to a numbered PNG in ScratchDir and
// runs a gifski-compatible command to assemble them.
//
// ScratchDir must exist when Encode is called. Frames from a previous Encode
// are replaced, but any other file in it is an error; see PrepareScratchDir
// and NewRunScratchDir.
type ExternalEncoder struct {
	// Path is the encoder executable, either a path or a name to look up in
	// $PATH.
	Path string

	FPS float64

	// Quality is passed through to the encoder and must be in [0, 100].
	Quality int

	ScratchDir string

	Logger *zap.Logger
}

func (e *ExternalEncoder) Encode(ctx context.Context, frames []image.Image, outputPath string) error {
	if err := checkFrames(frames); err != nil {
		return err
	}
	if _, err := FrameDelay(e.FPS); err != nil {
		return err
	}
	if e.Quality < 0 || e.Quality > 100 {
		return errors.Wrapf(ErrInvalidConfig, "quality must be in [0, 100], got %d", e.Quality)
	}
	binary, err := exec.LookPath(e.Path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncoderNotFound, e.Path, err)
	}
	if err := clearFrames(e.ScratchDir); err != nil {
		return err
	}
	logger := orNop(e.Logger)

	logger.Info("writing frames", zap.String("dir", e.ScratchDir), zap.Int("count", len(frames)))
	paths := make([]string, len(frames))
	for i, frame := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		paths[i] = filepath.Join(e.ScratchDir, FrameName(i, len(frames)))
		if err := Save(paths[i], frame, png.Encode); err != nil {
			return err
		}
	}

	args := append([]string{
		"--fps", strconv.FormatFloat(e.FPS, 'f', -1, 64),
		"-Q", strconv.Itoa(e.Quality),
		"-o", outputPath,
	}, paths...)
	logger.Info("running encoder", zap.String("path", binary), zap.Int("frames", len(paths)))
	cmd := exec.CommandContext(ctx, binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(ErrEncodeFailed, "%s: %v, output: %s", binary, err,
			strings.TrimSpace(string(output)))
	}
	return nil
}
