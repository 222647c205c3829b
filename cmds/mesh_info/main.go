package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/unixpickle/brain-gif/braingif"
	"github.com/unixpickle/brain-gif/internal/logger"
	"github.com/unixpickle/essentials"
)

func main() {
	var fov float64
	var width, height int
	flag.Float64Var(&fov, "fov", 60, "vertical camera field of view (degrees) for the suggested radius")
	flag.IntVar(&width, "width", 640, "output image width")
	flag.IntVar(&height, "height", 480, "output image height")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: mesh_info [flags] <input.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	log := logger.New("info", "")
	defer log.Sync()

	log.Info("Loading mesh...")
	mesh, err := braingif.LoadMesh(inputPath, log)
	essentials.Must(err)

	fmt.Println("Number of triangles:", mesh.NumTriangles())
	fmt.Println("Min:", mesh.Min())
	fmt.Println("Max:", mesh.Max())
	radius, err := braingif.FitRadius(mesh, fov, width, height)
	essentials.Must(err)
	fmt.Printf("Suggested camera radius: %.1f\n", radius)
}
