// Package config loads the YAML configuration for the bars, the window
// controller and the render surfaces.
package config

import (
	"time"
)

// Config is the root configuration document.
type Config struct {
	Gift      GiftConfig      `yaml:"gift"`
	Space     SpaceConfig     `yaml:"space"`
	Window    WindowConfig    `yaml:"window"`
	Segments  SegmentsConfig  `yaml:"segments"`
	Animation AnimationConfig `yaml:"animation"`
	Render    RenderConfig    `yaml:"render"`
}

// BarConfig holds the settings shared by both bars.
type BarConfig struct {
	MinProgress     int    `yaml:"min_progress"`
	MaxProgress     int    `yaml:"max_progress" validate:"gtfield=MinProgress"`
	ProgressHeight  int    `yaml:"progress_height" validate:"gte=0"`
	ProgressCorner  int    `yaml:"progress_corner" validate:"gte=0"`
	Margin          int    `yaml:"margin" validate:"gte=0"`
	BackgroundColor string `yaml:"background_color" validate:"argb"`
	ProgressColor   string `yaml:"progress_color" validate:"argb"`
}

// GiftConfig configures the gift bar and its generated decorations.
type GiftConfig struct {
	BarConfig `yaml:",inline"`

	ThumbWidth   int     `yaml:"thumb_width" validate:"gte=0"`
	ThumbColor   string  `yaml:"thumb_color" validate:"argb"`
	TextSize     float64 `yaml:"text_size" validate:"gt=0"`
	TextColor    string  `yaml:"text_color" validate:"argb"`
	LabelSuffix  string  `yaml:"label_suffix"`
	MarkerSize   int     `yaml:"marker_size" validate:"gte=0"`
	IconColor    string  `yaml:"icon_color" validate:"argb"`
	DividerWidth int     `yaml:"divider_width" validate:"gte=0"`
	DividerColor string  `yaml:"divider_color" validate:"argb"`
}

// SpaceConfig configures the space bar.
type SpaceConfig struct {
	BarConfig `yaml:",inline"`
}

// WindowConfig configures the gift bar's moving window.
type WindowConfig struct {
	Size          int `yaml:"size" validate:"gt=0"`
	AlternateSize int `yaml:"alternate_size" validate:"gte=0"`
	Step          int `yaml:"step" validate:"gt=0,ltefield=Size"`
}

// SegmentsConfig colors the space bar's per-unit segments. There is one
// segment per unit of the space range.
type SegmentsConfig struct {
	Before       string `yaml:"before" validate:"argb"`
	At           string `yaml:"at" validate:"argb"`
	After        string `yaml:"after" validate:"argb"`
	DividerWidth int    `yaml:"divider_width" validate:"gte=0"`
	DividerColor string `yaml:"divider_color" validate:"argb"`
}

// AnimationConfig controls indicator animation.
type AnimationConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Duration time.Duration `yaml:"duration" validate:"gte=0"`
	FPS      int           `yaml:"fps" validate:"gt=0,lte=240"`
}

// RenderConfig sizes the output surfaces.
type RenderConfig struct {
	Width      int `yaml:"width" validate:"gt=0"`
	Height     int `yaml:"height" validate:"gt=0"`
	CellWidth  int `yaml:"cell_width" validate:"gt=0"`
	CellHeight int `yaml:"cell_height" validate:"gt=0"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Gift: GiftConfig{
			BarConfig: BarConfig{
				MinProgress:     0,
				MaxProgress:     100,
				ProgressHeight:  6,
				ProgressCorner:  6,
				Margin:          100,
				BackgroundColor: "#FFD9D9D9",
				ProgressColor:   "#FFFB7E16",
			},
			ThumbWidth:   6,
			ThumbColor:   "#FFFFFFFF",
			TextSize:     30,
			TextColor:    "#FFAAAAAA",
			MarkerSize:   50,
			IconColor:    "#FFE5484D",
			DividerWidth: 4,
			DividerColor: "#FFFFFFFF",
		},
		Space: SpaceConfig{
			BarConfig: BarConfig{
				MinProgress:     0,
				MaxProgress:     6,
				ProgressHeight:  6,
				ProgressCorner:  6,
				Margin:          100,
				BackgroundColor: "#FFD9D9D9",
				ProgressColor:   "#FFFB7E16",
			},
		},
		Window: WindowConfig{
			Size:          10,
			AlternateSize: 20,
			Step:          5,
		},
		Segments: SegmentsConfig{
			Before:       "#FFFB7E16",
			At:           "#FFFFB74D",
			After:        "#FFD9D9D9",
			DividerWidth: 4,
			DividerColor: "#FFFFFFFF",
		},
		Animation: AnimationConfig{
			Enabled:  true,
			Duration: 400 * time.Millisecond,
			FPS:      60,
		},
		Render: RenderConfig{
			Width:      720,
			Height:     200,
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}
