// Package config loads settings for the puzzle runner.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/day03"
	"gopkg.in/yaml.v3"
)

// EnvPrintResult toggles printing of answers. Unset or "1" prints, anything else
// keeps the run silent.
const EnvPrintResult = "PRINT_RESULT"

type Config struct {
	// PrintResult writes the answers block after each solved day.
	PrintResult bool `yaml:"print_result"`
	// InputDir holds real inputs as <dir>/dayNN/input.txt.
	InputDir string `yaml:"input_dir"`
	// Parallelism is how many days RunAll solves at the same time.
	Parallelism int    `yaml:"parallelism"`
	LogLevel    string `yaml:"log_level"`

	Day03 Day03Config `yaml:"day03"`
}

type Day03Config struct {
	// MaxTokens caps the scanner, 0 disables the cap.
	MaxTokens int `yaml:"max_tokens"`
}

func Default() Config {
	return Config{
		PrintResult: true,
		InputDir:    "inputs",
		Parallelism: 4,
		LogLevel:    "info",
		Day03: Day03Config{
			MaxTokens: day03.DefaultMaxTokens,
		},
	}
}

// Load reads a yaml file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// ApplyEnv applies environment overrides; lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if val, found := lookup(EnvPrintResult); found {
		c.PrintResult = val == "1"
	}
}

var (
	ErrBadParallelism = errors.New("parallelism must be positive")
	ErrNoInputDir     = errors.New("input dir is empty")
)

func (c Config) Validate() error {
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: %d", ErrBadParallelism, c.Parallelism)
	}
	if c.InputDir == "" {
		return ErrNoInputDir
	}
	return nil
}
