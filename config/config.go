package config

import (
	"image/color"
)

// Config holds window and loop configuration.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"` // update ticks per second
}

// WorldConfig contains simulation-wide constants.
type WorldConfig struct {
	Gravity    float64  `yaml:"gravity"`
	Background [4]uint8 `yaml:"background"` // RGBA
}

// BodyConfig contains the controllable body's physical parameters.
type BodyConfig struct {
	Mass     float64  `yaml:"mass"`
	Friction float64  `yaml:"friction"`
	Size     float64  `yaml:"size"`  // side of the square, pixels
	Color    [4]uint8 `yaml:"color"` // RGBA
}

// DebugConfig contains debug and logging options.
type DebugConfig struct {
	Overlay   bool   `yaml:"overlay"`    // show the kinematics overlay at start
	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // text or json
}

// OverlayConfig contains the debug overlay layout.
type OverlayConfig struct {
	FontSize   float64
	Margin     int
	LineHeight int
	TextColor  color.RGBA
	BoxColor   color.RGBA
}

// Global configuration instances
var C *Config
var World WorldConfig
var Body BodyConfig
var Debug DebugConfig
var Overlay OverlayConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Teal         = color.RGBA{R: 0, G: 128, B: 128, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// RGBA converts a [4]uint8 config colour.
func RGBA(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func init() {
	C = &Config{
		Width:  400,
		Height: 400,
		Title:  "drift",
		TPS:    60,
	}

	World = WorldConfig{
		Gravity:    9.8,
		Background: [4]uint8{Teal.R, Teal.G, Teal.B, Teal.A},
	}

	Body = BodyConfig{
		Mass:     0.01,
		Friction: 0.2,
		Size:     100,
		Color:    [4]uint8{Black.R, Black.G, Black.B, Black.A},
	}

	// Debug Config (defaults, can be overridden by the config file)
	Debug = DebugConfig{
		Overlay:   false,
		LogLevel:  "info",
		LogFormat: "text",
	}

	Overlay = OverlayConfig{
		FontSize:   10,
		Margin:     6,
		LineHeight: 13,
		TextColor:  White,
		BoxColor:   BlackOverlay,
	}
}
