package braingif

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestExternalEncoder(t *testing.T) {
	scratch := t.TempDir()
	script, argsFile, listingFile := fakeEncoder(t, scratch)
	out := filepath.Join(t.TempDir(), "brain.gif")

	enc := &ExternalEncoder{Path: script, FPS: 33, Quality: 90, ScratchDir: scratch}
	require.NoError(t, enc.Encode(context.Background(), solidFrames(12, 4, 4), out))

	_, err := os.Stat(out)
	require.NoError(t, err)

	// The frames were all present when the encoder started.
	listing, err := os.ReadFile(listingFile)
	require.NoError(t, err)
	names := strings.Fields(string(listing))
	require.Len(t, names, 12)
	for i, name := range names {
		require.Equal(t, FrameName(i, 12), name)
	}

	argData, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	args := strings.Split(strings.TrimSpace(string(argData)), "\n")
	require.Equal(t, []string{"--fps", "33", "-Q", "90", "-o", out}, args[:6])
	require.Len(t, args, 6+12)
	for i, path := range args[6:] {
		require.Equal(t, filepath.Join(scratch, FrameName(i, 12)), path)
	}
}

func TestExternalEncoderReusesScratch(t *testing.T) {
	scratch := t.TempDir()
	script, _, listingFile := fakeEncoder(t, scratch)
	out := filepath.Join(t.TempDir(), "brain.gif")

	enc := &ExternalEncoder{Path: script, FPS: 33, Quality: 90, ScratchDir: scratch}
	require.NoError(t, enc.Encode(context.Background(), solidFrames(12, 4, 4), out))
	require.NoError(t, enc.Encode(context.Background(), solidFrames(3, 4, 4), out))

	listing, err := os.ReadFile(listingFile)
	require.NoError(t, err)
	require.Equal(t, []string{"frame0.png", "frame1.png", "frame2.png"},
		strings.Fields(string(listing)))
}

func TestExternalEncoderFailure(t *testing.T) {
	enc := &ExternalEncoder{
		Path:       failingEncoder(t),
		FPS:        33,
		Quality:    90,
		ScratchDir: t.TempDir(),
	}
	err := enc.Encode(context.Background(), solidFrames(2, 4, 4),
		filepath.Join(t.TempDir(), "out.gif"))
	require.True(t, errors.Is(err, ErrEncodeFailed), "got %v", err)
	require.Contains(t, err.Error(), "boom: bad frames")
}

func TestExternalEncoderNotFound(t *testing.T) {
	enc := &ExternalEncoder{
		Path:       filepath.Join(t.TempDir(), "no-such-gifski"),
		FPS:        33,
		Quality:    90,
		ScratchDir: t.TempDir(),
	}
	err := enc.Encode(context.Background(), solidFrames(2, 4, 4),
		filepath.Join(t.TempDir(), "out.gif"))
	require.True(t, errors.Is(err, ErrEncoderNotFound), "got %v", err)
	require.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestExternalEncoderPreconditions(t *testing.T) {
	scratch := t.TempDir()
	script, _, _ := fakeEncoder(t, scratch)
	out := filepath.Join(t.TempDir(), "out.gif")

	enc := &ExternalEncoder{Path: script, FPS: 33, Quality: 90, ScratchDir: scratch}
	err := enc.Encode(context.Background(), nil, out)
	require.True(t, errors.Is(err, ErrNoFrames))

	enc.Quality = 101
	err = enc.Encode(context.Background(), solidFrames(2, 4, 4), out)
	require.True(t, errors.Is(err, ErrInvalidConfig))

	enc.Quality = 90
	require.NoError(t, os.WriteFile(filepath.Join(scratch, "notes.txt"), []byte("x"), 0644))
	err = enc.Encode(context.Background(), solidFrames(2, 4, 4), out)
	require.True(t, errors.Is(err, ErrScratchNotEmpty))
	_, err = os.Stat(out)
	require.True(t, os.IsNotExist(err))
}
