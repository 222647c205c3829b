package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/unixpickle/brain-gif/braingif"
	"github.com/unixpickle/brain-gif/internal/config"
	"github.com/unixpickle/brain-gif/internal/logger"
	"github.com/unixpickle/essentials"
	"go.uber.org/zap"
)

func main() {
	var configPath string
	var encoderPath string
	var frames int
	var fps float64
	var quality int
	var supersample int
	var outputFolder string
	var name string
	var logLevel string
	var logFile string
	var skipGenerate bool
	var watch bool
	var writeConfig string
	flag.StringVar(&configPath, "config", "", "path to YAML or TOML config file")
	flag.StringVar(&encoderPath, "encoder", "", "path to gifski (empty uses the built-in encoder)")
	flag.IntVar(&frames, "frames", 0, "number of frames per full turn")
	flag.Float64Var(&fps, "fps", 0, "frames per second of the animation")
	flag.IntVar(&quality, "quality", -1, "gifski quality in [0, 100]")
	flag.IntVar(&supersample, "supersample", 0, "render at this multiple of the output size")
	flag.StringVar(&outputFolder, "output", "", "output folder")
	flag.StringVar(&name, "name", "", "output base name (without .gif)")
	flag.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	flag.StringVar(&logFile, "log-file", "", "optional rotating log file")
	flag.BoolVar(&skipGenerate, "skip-generate", false, "do not run the mesh generator")
	flag.BoolVar(&watch, "watch", false, "re-render whenever the mesh file changes")
	flag.StringVar(&writeConfig, "write-config", "",
		"save the effective config (YAML or TOML by extension) to this path and exit")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: brain_gif [flags] [input.stl]")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) > 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	essentials.Must(err)
	if len(args) == 1 {
		cfg.Mesh.Path = args[0]
	}
	if encoderPath != "" {
		cfg.Encoder.GifskiPath = encoderPath
	}
	if frames != 0 {
		cfg.Render.Frames = frames
	}
	if fps != 0 {
		cfg.Encoder.FPS = fps
	}
	if quality >= 0 {
		cfg.Encoder.Quality = quality
	}
	if supersample != 0 {
		cfg.Render.Supersample = supersample
	}
	if outputFolder != "" {
		cfg.Output.Folder = outputFolder
	}
	if name != "" {
		cfg.Output.Name = name
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFile != "" {
		cfg.Logging.LogFile = logFile
	}
	if err := cfg.Validate(); err != nil {
		essentials.Die(err)
	}
	if writeConfig != "" {
		essentials.Must(config.Save(cfg, writeConfig))
		fmt.Println("Wrote config to", writeConfig)
		return
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(cfg.Mesh.Generator) > 0 && !skipGenerate {
		essentials.Must(braingif.RunGenerator(ctx, cfg.Mesh.Generator, log))
	}

	run := func() error {
		out, err := braingif.SaveAnimation(ctx, cfg.Mesh.Path, cfg.Animation(), log)
		if err != nil {
			return err
		}
		log.Info("Saved animation", zap.String("path", out))
		return nil
	}
	essentials.Must(run())

	if watch {
		log.Info("Watching mesh for changes...", zap.String("path", cfg.Mesh.Path))
		essentials.Must(watchMesh(ctx, cfg.Mesh.Path, log, run))
	}
}
