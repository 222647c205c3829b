package braingif

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AnimationOptions configures a full render-and-encode pass.
type AnimationOptions struct {
	// OutputFolder must be an existing directory.
	OutputFolder string

	// Name is the base name of the output, without extension.
	Name string

	FPS     float64
	Quality int

	Render RenderOptions

	// EncoderPath selects the external encoder. If empty, frames are encoded
	// with GIFEncoder.
	EncoderPath string

	// ScratchDir holds intermediate PNGs for the external encoder. If empty,
	// a unique directory is created inside OutputFolder for each run.
	ScratchDir string

	// ClearScratch deletes any files already present in an explicit
	// ScratchDir. Without it, a non-empty ScratchDir is an error.
	ClearScratch bool

	// KeepFrames keeps a per-run scratch directory after a successful
	// encode. An explicit ScratchDir is never removed.
	KeepFrames bool
}

// DefaultAnimationOptions returns the options for a brain.gif in the working
// directory using the built-in encoder.
func DefaultAnimationOptions() AnimationOptions {
	return AnimationOptions{
		OutputFolder: ".",
		Name:         "brain",
		FPS:          33,
		Quality:      90,
		Render:       DefaultRenderOptions(),
	}
}

// OutputPath is the path of the animation written by SaveAnimation.
func (a *AnimationOptions) OutputPath() string {
	return filepath.Join(a.OutputFolder, a.Name+".gif")
}

// Validate checks every option which can be checked without touching the
// file system.
func (a *AnimationOptions) Validate() error {
	if err := a.Render.Validate(); err != nil {
		return err
	}
	if _, err := FrameDelay(a.FPS); err != nil {
		return err
	}
	if a.Quality < 0 || a.Quality > 100 {
		return errors.Wrapf(ErrInvalidConfig, "quality must be in [0, 100], got %d", a.Quality)
	}
	if a.Name == "" {
		return errors.Wrap(ErrInvalidConfig, "empty output name")
	}
	return nil
}

// SaveAnimation loads the mesh at meshPath, renders it rotating, and encodes
// the frames into opts.OutputPath(), which is returned.
func SaveAnimation(ctx context.Context, meshPath string, opts AnimationOptions,
	logger *zap.Logger) (string, error) {
	logger = orNop(logger)
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if info, err := os.Stat(opts.OutputFolder); err != nil {
		return "", errors.Wrap(err, "output folder")
	} else if !info.IsDir() {
		return "", errors.Errorf("output folder %s is not a directory", opts.OutputFolder)
	}
	if opts.EncoderPath != "" {
		if _, err := exec.LookPath(opts.EncoderPath); err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrEncoderNotFound, opts.EncoderPath, err)
		}
	}
	outputPath := opts.OutputPath()

	logger.Info("Loading mesh...", zap.String("path", meshPath))
	mesh, err := LoadMesh(meshPath, logger)
	if err != nil {
		return "", err
	}

	logger.Info("Rendering...", zap.Int("frames", opts.Render.Frames))
	renderer, err := NewFrameRenderer(mesh, opts.Render, logger)
	if err != nil {
		return "", err
	}
	frames, err := renderer.Render()
	if err != nil {
		return "", err
	}

	logger.Info("Encoding...", zap.String("output", outputPath))
	if opts.EncoderPath == "" {
		enc := &GIFEncoder{FPS: opts.FPS}
		if err := enc.Encode(ctx, frames, outputPath); err != nil {
			return "", err
		}
		return outputPath, nil
	}

	scratch := opts.ScratchDir
	if scratch == "" {
		scratch, err = NewRunScratchDir(opts.OutputFolder)
	} else {
		err = PrepareScratchDir(scratch, opts.ClearScratch)
	}
	if err != nil {
		return "", err
	}
	enc := &ExternalEncoder{
		Path:       opts.EncoderPath,
		FPS:        opts.FPS,
		Quality:    opts.Quality,
		ScratchDir: scratch,
		Logger:     logger,
	}
	if err := enc.Encode(ctx, frames, outputPath); err != nil {
		return "", err
	}
	if opts.ScratchDir == "" && !opts.KeepFrames {
		if err := os.RemoveAll(scratch); err != nil {
			logger.Warn("could not remove scratch directory", zap.String("dir", scratch),
				zap.Error(err))
		}
	}
	return outputPath, nil
}
