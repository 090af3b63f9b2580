// Package widget implements the gift and space progress bars: range and
// progress bookkeeping, indicator animation and change notification.
// Widgets are not safe for concurrent use; drive them from one goroutine.
package widget

import (
	"image/color"
	"time"

	"github.com/alexisbeaulieu97/giftprogress/internal/logger"
	"github.com/alexisbeaulieu97/giftprogress/internal/progress"
	"github.com/alexisbeaulieu97/giftprogress/internal/progress/anim"
)

var (
	DefaultBackgroundColor = color.NRGBA{R: 0xD9, G: 0xD9, B: 0xD9, A: 0xFF}
	DefaultProgressColor   = color.NRGBA{R: 0xFB, G: 0x7E, B: 0x16, A: 0xFF}
	DefaultThumbColor      = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	DefaultTextColor       = color.NRGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}
)

const (
	DefaultMinProgress    = 0
	DefaultMaxProgress    = 100
	DefaultProgressHeight = 6
	DefaultProgressCorner = 6
	DefaultThumbWidth     = 6
	DefaultTextSize       = 30
)

// Options configures the parts shared by both bars.
type Options struct {
	// ProgressHeightPx is the distance from the axis to the bar edge; the bar
	// is twice as thick.
	ProgressHeightPx int
	ProgressCornerPx int
	BackgroundColor  color.Color
	ProgressColor    color.Color
	MinProgress      int
	MaxProgress      int
	MarginPx         int

	// Animate enables animated transitions. Without it every transition jumps.
	Animate           bool
	AnimationDuration time.Duration

	Clock      func() time.Time
	Invalidate func()
	Logger     *logger.Logger
}

// GiftOptions configures a GiftBar.
type GiftOptions struct {
	Options
	ThumbWidthPx int
	ThumbColor   color.Color
	TextSizePx   float64
	TextColor    color.Color
	// LabelSuffix is appended to the value drawn under the thumb.
	LabelSuffix string
}

// SpaceOptions configures a SpaceBar.
type SpaceOptions struct {
	Options
}

// DefaultOptions returns the shared defaults.
func DefaultOptions() Options {
	return Options{
		ProgressHeightPx:  DefaultProgressHeight,
		ProgressCornerPx:  DefaultProgressCorner,
		BackgroundColor:   DefaultBackgroundColor,
		ProgressColor:     DefaultProgressColor,
		MinProgress:       DefaultMinProgress,
		MaxProgress:       DefaultMaxProgress,
		MarginPx:          progress.DefaultMargin,
		Animate:           true,
		AnimationDuration: anim.DefaultDuration,
	}
}

// DefaultGiftOptions returns GiftBar defaults.
func DefaultGiftOptions() GiftOptions {
	return GiftOptions{
		Options:      DefaultOptions(),
		ThumbWidthPx: DefaultThumbWidth,
		ThumbColor:   DefaultThumbColor,
		TextSizePx:   DefaultTextSize,
		TextColor:    DefaultTextColor,
	}
}

// DefaultSpaceOptions returns SpaceBar defaults.
func DefaultSpaceOptions() SpaceOptions {
	return SpaceOptions{Options: DefaultOptions()}
}

func (o Options) normalized() Options {
	if o.BackgroundColor == nil {
		o.BackgroundColor = DefaultBackgroundColor
	}
	if o.ProgressColor == nil {
		o.ProgressColor = DefaultProgressColor
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Invalidate == nil {
		o.Invalidate = func() {}
	}
	return o
}

func (o GiftOptions) normalized() GiftOptions {
	o.Options = o.Options.normalized()
	if o.ThumbColor == nil {
		o.ThumbColor = DefaultThumbColor
	}
	if o.TextColor == nil {
		o.TextColor = DefaultTextColor
	}
	if o.TextSizePx <= 0 {
		o.TextSizePx = DefaultTextSize
	}
	return o
}
