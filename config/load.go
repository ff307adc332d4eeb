package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// File is the on-disk shape of the optional YAML overlay. Keys left out of
// the file keep their compiled-in defaults.
type File struct {
	Window Config      `yaml:"window"`
	World  WorldConfig `yaml:"world"`
	Body   BodyConfig  `yaml:"body"`
	Debug  DebugConfig `yaml:"debug"`
}

// Current returns the active configuration as a File.
func Current() File {
	return File{
		Window: *C,
		World:  World,
		Body:   Body,
		Debug:  Debug,
	}
}

// Load reads path on top of the current configuration and validates it.
// It does not change the globals; see Apply.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML on top of the current configuration and validates it.
func Parse(data []byte) (*File, error) {
	f := Current()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the values the simulation relies on.
func (f *File) Validate() error {
	switch {
	case f.Window.Width <= 0 || f.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, f.Window.Width, f.Window.Height)
	case f.Window.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, f.Window.TPS)
	case !finitePositive(f.Body.Mass):
		return fmt.Errorf("%w: body mass must be a finite positive number, got %v", ErrInvalidConfig, f.Body.Mass)
	case !finitePositive(f.Body.Friction):
		return fmt.Errorf("%w: body friction must be a finite positive number, got %v", ErrInvalidConfig, f.Body.Friction)
	case !finitePositive(f.Body.Size):
		return fmt.Errorf("%w: body size must be a finite positive number, got %v", ErrInvalidConfig, f.Body.Size)
	case math.IsNaN(f.World.Gravity) || math.IsInf(f.World.Gravity, 0) || f.World.Gravity < 0:
		return fmt.Errorf("%w: gravity must be a non-negative number, got %v", ErrInvalidConfig, f.World.Gravity)
	}
	return nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Apply installs f as the active configuration.
func Apply(f *File) {
	window := f.Window
	C = &window
	World = f.World
	Body = f.Body
	Debug = f.Debug
}

// LoadFile loads path and applies it. A missing file is not an error: the
// compiled-in defaults stay in place and loaded is false.
func LoadFile(path string) (loaded bool, err error) {
	f, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load config %s: %w", path, err)
	}
	Apply(f)
	return true, nil
}
