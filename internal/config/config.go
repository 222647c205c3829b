// Package config handles loading the settings of a brain-gif run.
package config

import "github.com/unixpickle/brain-gif/braingif"

// Config holds all settings for one render-and-encode pass.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh" toml:"mesh"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Render  RenderConfig  `yaml:"render" toml:"render"`
	Encoder EncoderConfig `yaml:"encoder" toml:"encoder"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// MeshConfig holds the input mesh and how to produce it.
type MeshConfig struct {
	Path string `yaml:"path" toml:"path" env:"MESH_PATH"`

	// Generator is an optional command (and arguments) which writes the mesh
	// before rendering.
	Generator []string `yaml:"generator" toml:"generator" env:"GENERATOR" envSeparator:" "`
}

// OutputConfig holds where the animation is written.
type OutputConfig struct {
	Folder string `yaml:"folder" toml:"folder" env:"OUTPUT_FOLDER"`
	Name   string `yaml:"name" toml:"name" env:"OUTPUT_NAME"`
}

// RenderConfig holds camera, lighting and raster settings.
type RenderConfig struct {
	Frames      int        `yaml:"frames" toml:"frames" env:"FRAMES"`
	Width       int        `yaml:"width" toml:"width" env:"WIDTH"`
	Height      int        `yaml:"height" toml:"height" env:"HEIGHT"`
	Radius      float64    `yaml:"radius" toml:"radius" env:"RADIUS"`
	FOV         float64    `yaml:"fov" toml:"fov" env:"FOV"`
	Light       float64    `yaml:"light" toml:"light" env:"LIGHT"`
	LightAngle  [2]float64 `yaml:"light_angle" toml:"light_angle"`
	Background  [3]int     `yaml:"background" toml:"background"`
	Supersample int        `yaml:"supersample" toml:"supersample" env:"SUPERSAMPLE"`
}

// EncoderConfig holds animation encoding settings.
type EncoderConfig struct {
	FPS     float64 `yaml:"fps" toml:"fps" env:"FPS"`
	Quality int     `yaml:"quality" toml:"quality" env:"QUALITY"`

	// GifskiPath selects the external encoder. Empty means the built-in GIF
	// encoder.
	GifskiPath string `yaml:"gifski_path" toml:"gifski_path" env:"GIFSKI_PATH"`

	ScratchDir   string `yaml:"scratch_dir" toml:"scratch_dir" env:"SCRATCH_DIR"`
	ClearScratch bool   `yaml:"clear_scratch" toml:"clear_scratch" env:"CLEAR_SCRATCH"`
	KeepFrames   bool   `yaml:"keep_frames" toml:"keep_frames" env:"KEEP_FRAMES"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level" env:"LOG_LEVEL"`
	LogFile string `yaml:"log_file" toml:"log_file" env:"LOG_FILE"`
}

// Default returns a Config matching braingif.DefaultAnimationOptions.
func Default() *Config {
	anim := braingif.DefaultAnimationOptions()
	r := anim.Render
	return &Config{
		Mesh: MeshConfig{
			Path: "brain.stl",
		},
		Output: OutputConfig{
			Folder: anim.OutputFolder,
			Name:   anim.Name,
		},
		Render: RenderConfig{
			Frames:      r.Frames,
			Width:       r.Width,
			Height:      r.Height,
			Radius:      r.Radius,
			FOV:         r.FOV,
			Light:       r.Light,
			LightAngle:  r.LightAngle,
			Background:  r.Background,
			Supersample: r.Supersample,
		},
		Encoder: EncoderConfig{
			FPS:     anim.FPS,
			Quality: anim.Quality,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Animation converts the config into options for braingif.SaveAnimation.
func (c *Config) Animation() braingif.AnimationOptions {
	return braingif.AnimationOptions{
		OutputFolder: c.Output.Folder,
		Name:         c.Output.Name,
		FPS:          c.Encoder.FPS,
		Quality:      c.Encoder.Quality,
		Render: braingif.RenderOptions{
			Frames:      c.Render.Frames,
			Width:       c.Render.Width,
			Height:      c.Render.Height,
			Radius:      c.Render.Radius,
			FOV:         c.Render.FOV,
			Light:       c.Render.Light,
			LightAngle:  c.Render.LightAngle,
			Background:  c.Render.Background,
			Supersample: c.Render.Supersample,
		},
		EncoderPath:  c.Encoder.GifskiPath,
		ScratchDir:   c.Encoder.ScratchDir,
		ClearScratch: c.Encoder.ClearScratch,
		KeepFrames:   c.Encoder.KeepFrames,
	}
}

// Validate checks the settings without touching the file system.
func (c *Config) Validate() error {
	anim := c.Animation()
	return anim.Validate()
}
