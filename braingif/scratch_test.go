package braingif

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFrameName(t *testing.T) {
	cases := []struct {
		index, total int
		name         string
	}{
		{0, 1, "frame0.png"},
		{9, 10, "frame9.png"},
		{5, 11, "frame05.png"},
		{0, 180, "frame000.png"},
		{179, 180, "frame179.png"},
	}
	for _, c := range cases {
		require.Equal(t, c.name, FrameName(c.index, c.total))
	}

	names := make([]string, 1000)
	for i := range names {
		names[i] = FrameName(i, len(names))
	}
	require.True(t, sort.StringsAreSorted(names))
}

func TestPrepareScratchDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	require.NoError(t, PrepareScratchDir(dir, false))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	for i := 0; i < 3; i++ {
		path := filepath.Join(dir, "stale"+strconv.Itoa(i)+".png")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	ownFrame := filepath.Join(dir, FrameName(2, 10))
	require.NoError(t, os.WriteFile(ownFrame, []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	err = PrepareScratchDir(dir, false)
	require.True(t, errors.Is(err, ErrScratchNotEmpty))
	_, err = os.Stat(ownFrame)
	require.NoError(t, err, "nothing should be removed on failure")

	require.NoError(t, PrepareScratchDir(dir, true))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "nested", entries[0].Name())
}

func TestPrepareScratchDirReusesFrames(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		path := filepath.Join(dir, FrameName(i, 12))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	require.NoError(t, PrepareScratchDir(dir, false))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)

	// Names which only look like frames are not ours to delete.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "frame_notes.png"), nil, 0644))
	err = PrepareScratchDir(dir, false)
	require.True(t, errors.Is(err, ErrScratchNotEmpty))
}

func TestNewRunScratchDir(t *testing.T) {
	parent := t.TempDir()
	dir1, err := NewRunScratchDir(parent)
	require.NoError(t, err)
	dir2, err := NewRunScratchDir(parent)
	require.NoError(t, err)
	require.NotEqual(t, dir1, dir2)
	require.Equal(t, parent, filepath.Dir(dir1))
}

func TestFramePaths(t *testing.T) {
	dir := t.TempDir()
	for _, i := range []int{11, 0, 3} {
		path := filepath.Join(dir, FrameName(i, 12))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "frame_old.png"), nil, 0644))
	paths, err := framePaths(dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "frame00.png"),
		filepath.Join(dir, "frame03.png"),
		filepath.Join(dir, "frame11.png"),
	}, paths)
}
