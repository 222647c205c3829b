package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load, for example
// BRAINGIF_GIFSKI_PATH.
const EnvPrefix = "BRAINGIF_"

// Load loads configuration with priority: defaults < file < environment.
//
// If path is empty, the working directory is searched for brain-gif.yaml,
// brain-gif.yml or brain-gif.toml, and no file is used if none exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, errors.Wrapf(err, "loading config from %s", path)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.Wrap(err, "loading config from environment")
	}

	return cfg, nil
}

func findConfigFile() string {
	for _, name := range []string{"brain-gif.yaml", "brain-gif.yml", "brain-gif.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// loadFromFile merges a YAML or TOML file into cfg, chosen by extension.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	case ".yaml", ".yml", "":
		return yaml.Unmarshal(data, cfg)
	default:
		return errors.Errorf("unsupported config format %q", filepath.Ext(path))
	}
}
