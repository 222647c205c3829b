package braingif

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func testRenderOptions() RenderOptions {
	return RenderOptions{
		Frames:      4,
		Width:       16,
		Height:      12,
		Radius:      5,
		FOV:         60,
		Light:       8,
		LightAngle:  [2]float64{2, 2},
		Background:  [3]int{0, 0, 255},
		Supersample: 1,
	}
}

// testMeshFile writes a small off-center sphere to an STL file, so that
// rotating it changes the rendered image.
func testMeshFile(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "sphere.stl")
	mesh := model3d.NewMeshIcosphere(model3d.X(1.5), 0.5, 2)
	if err := mesh.SaveGroupedSTL(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func solidFrames(n, width, height int) []image.Image {
	res := make([]image.Image, n)
	for i := range res {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		c := color.RGBA{R: uint8(i * 40), G: 255 - uint8(i*40), B: 128, A: 255}
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				img.SetRGBA(x, y, c)
			}
		}
		res[i] = img
	}
	return res
}

// fakeEncoder writes a shell script which behaves like a minimal gifski: it
// records its arguments and the contents of scratchDir, then writes a
// placeholder to the -o path.
func fakeEncoder(t *testing.T, scratchDir string) (script, argsFile, listingFile string) {
	if runtime.GOOS == "windows" {
		t.Skip("fake encoder requires a POSIX shell")
	}
	dir := t.TempDir()
	script = filepath.Join(dir, "fake-gifski")
	argsFile = filepath.Join(dir, "args.txt")
	listingFile = filepath.Join(dir, "listing.txt")
	contents := "#!/bin/sh\n" +
		"printf '%s\\n' \"$@\" > '" + argsFile + "'\n" +
		"ls '" + scratchDir + "' > '" + listingFile + "'\n" +
		"out=''\nprev=''\n" +
		"for a in \"$@\"; do\n" +
		"  if [ \"$prev\" = '-o' ]; then out=\"$a\"; fi\n" +
		"  prev=\"$a\"\n" +
		"done\n" +
		"echo GIF89a > \"$out\"\n"
	if err := os.WriteFile(script, []byte(contents), 0755); err != nil {
		t.Fatal(err)
	}
	return
}

func failingEncoder(t *testing.T) string {
	if runtime.GOOS == "windows" {
		t.Skip("fake encoder requires a POSIX shell")
	}
	script := filepath.Join(t.TempDir(), "failing-gifski")
	contents := "#!/bin/sh\necho 'boom: bad frames' >&2\nexit 3\n"
	if err := os.WriteFile(script, []byte(contents), 0755); err != nil {
		t.Fatal(err)
	}
	return script
}
