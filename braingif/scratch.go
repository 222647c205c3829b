package braingif

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// PrepareScratchDir makes sure dir exists and holds no files.
//
// Frames left behind by an earlier run (files named like FrameName) are
// always removed. If clear is true, every other regular file directly inside
// dir is deleted too. Otherwise such a file causes an error wrapping
// ErrScratchNotEmpty.
func PrepareScratchDir(dir string, clear bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "prepare scratch directory")
	}
	if clear {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return errors.Wrap(err, "prepare scratch directory")
		}
		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				return errors.Wrap(err, "prepare scratch directory")
			}
		}
	}
	return clearFrames(dir)
}

// NewRunScratchDir creates a fresh, uniquely named scratch directory inside
// parent, so that concurrent runs never share intermediate files.
func NewRunScratchDir(parent string) (string, error) {
	dir := filepath.Join(parent, "frames-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "create scratch directory")
	}
	return dir, nil
}

// FrameName returns the file name of the frame at index in a sequence of
// total frames.
//
// Indices are zero-padded to a common width so that lexicographic and
// numeric order agree.
func FrameName(index, total int) string {
	width := len(strconv.Itoa(total - 1))
	return fmt.Sprintf("frame%0*d.png", width, index)
}

var frameNameExpr = regexp.MustCompile(`^frame[0-9]+\.png$`)

// framePaths lists the frame files in dir, sorted by name.
func framePaths(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "frame*.png"))
	if err != nil {
		return nil, errors.Wrap(err, "list frames")
	}
	var res []string
	for _, path := range matches {
		if frameNameExpr.MatchString(filepath.Base(path)) {
			res = append(res, path)
		}
	}
	slices.Sort(res)
	return res, nil
}

// clearFrames removes stale frames from dir, failing without removing
// anything if dir holds any other regular file.
func clearFrames(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(err, "scratch directory")
	}
	if !info.IsDir() {
		return errors.Errorf("scratch directory %s is not a directory", dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, "scratch directory")
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() && !frameNameExpr.MatchString(entry.Name()) {
			return errors.Wrapf(ErrScratchNotEmpty, "%s contains %s", dir, entry.Name())
		}
	}
	frames, err := framePaths(dir)
	if err != nil {
		return err
	}
	for _, path := range frames {
		if err := os.Remove(path); err != nil {
			return errors.Wrap(err, "remove stale frame")
		}
	}
	return nil
}
