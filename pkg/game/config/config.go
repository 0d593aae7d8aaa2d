// Package config loads generation and logging settings from YAML with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"roomcarve/pkg/game/generator"
)

// Map holds the level dimensions. Zero width or height means "fit the terminal".
type Map struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
}

// Generator mirrors generator.Config
type Generator struct {
	Attempts    int    `yaml:"attempts"`
	MinRoomSize int    `yaml:"min_room_size"`
	MaxRoomSize int    `yaml:"max_room_size"`
	Placement   string `yaml:"placement"`
}

// Logging holds logging configuration
type Logging struct {
	Level          string `yaml:"level"`
	Format         string `yaml:"format"`
	FilePath       string `yaml:"file_path"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// Config is the full application configuration
type Config struct {
	Map       Map       `yaml:"map"`
	Generator Generator `yaml:"generator"`
	Logging   Logging   `yaml:"logging"`
}

// Default returns the built-in configuration
func Default() Config {
	gen := generator.DefaultConfig()
	return Config{
		Map: Map{Width: 80, Height: 40},
		Generator: Generator{
			Attempts:    gen.Attempts,
			MinRoomSize: gen.MinRoomSize,
			MaxRoomSize: gen.MaxRoomSize,
			Placement:   string(gen.Placement),
		},
		Logging: Logging{
			Level:          "info",
			Format:         "text",
			FileMaxSizeMB:  10,
			FileMaxBackups: 5,
			FileMaxAgeDays: 30,
		},
	}
}

// Load reads the configuration at path on top of the defaults, then applies
// environment overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults only
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"ROOMCARVE_WIDTH", &cfg.Map.Width},
		{"ROOMCARVE_HEIGHT", &cfg.Map.Height},
		{"ROOMCARVE_ATTEMPTS", &cfg.Generator.Attempts},
	}
	for _, v := range ints {
		raw := os.Getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = n
	}

	if placement := os.Getenv("ROOMCARVE_PLACEMENT"); placement != "" {
		cfg.Generator.Placement = placement
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}
	if path := os.Getenv("LOG_FILE_PATH"); path != "" {
		cfg.Logging.FilePath = path
	}
	return nil
}

// GeneratorConfig converts the generator section for generator.New
func (c Config) GeneratorConfig() generator.Config {
	return generator.Config{
		Attempts:    c.Generator.Attempts,
		MinRoomSize: c.Generator.MinRoomSize,
		MaxRoomSize: c.Generator.MaxRoomSize,
		Placement:   generator.Placement(c.Generator.Placement),
	}
}
