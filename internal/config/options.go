package config

import (
	"image"
	"image/color"

	"github.com/alexisbeaulieu97/giftprogress/internal/app/window"
	"github.com/alexisbeaulieu97/giftprogress/internal/decoration"
	"github.com/alexisbeaulieu97/giftprogress/internal/logger"
	"github.com/alexisbeaulieu97/giftprogress/internal/widget"
)

func (c *Config) barOptions(b BarConfig, log *logger.Logger) widget.Options {
	opts := widget.DefaultOptions()
	opts.MinProgress = b.MinProgress
	opts.MaxProgress = b.MaxProgress
	opts.ProgressHeightPx = b.ProgressHeight
	opts.ProgressCornerPx = b.ProgressCorner
	opts.MarginPx = b.Margin
	opts.BackgroundColor = colorOr(b.BackgroundColor)
	opts.ProgressColor = colorOr(b.ProgressColor)
	opts.Animate = c.Animation.Enabled
	opts.AnimationDuration = c.Animation.Duration
	opts.Logger = log
	return opts
}

// GiftOptions returns the gift bar options described by c.
func (c *Config) GiftOptions(log *logger.Logger) widget.GiftOptions {
	opts := widget.DefaultGiftOptions()
	opts.Options = c.barOptions(c.Gift.BarConfig, log)
	opts.ThumbWidthPx = c.Gift.ThumbWidth
	opts.ThumbColor = colorOr(c.Gift.ThumbColor)
	opts.TextSizePx = c.Gift.TextSize
	opts.TextColor = colorOr(c.Gift.TextColor)
	opts.LabelSuffix = c.Gift.LabelSuffix
	return opts
}

// SpaceOptions returns the space bar options described by c.
func (c *Config) SpaceOptions(log *logger.Logger) widget.SpaceOptions {
	return widget.SpaceOptions{Options: c.barOptions(c.Space.BarConfig, log)}
}

// WindowOptions returns the window controller options. icon is used for
// every generated marker.
func (c *Config) WindowOptions(icon image.Image, log *logger.Logger) window.Options {
	return window.Options{
		Size:          c.Window.Size,
		AlternateSize: c.Window.AlternateSize,
		Step:          c.Window.Step,
		Style: decoration.GiftStyle{
			Icon:         icon,
			MarkerWidth:  c.Gift.MarkerSize,
			MarkerHeight: c.Gift.MarkerSize,
			DividerWidth: c.Gift.DividerWidth,
			DividerColor: colorOr(c.Gift.DividerColor),
			LabelColor:   colorOr(c.Gift.TextColor),
			LabelSuffix:  c.Gift.LabelSuffix,
		},
		Logger: log,
	}
}

// SpaceDecorations builds one segment per unit of the space range, with
// dividers between them.
func (c *Config) SpaceDecorations() ([]decoration.Segment, []decoration.Divider) {
	s := c.Segments
	min := c.Space.MinProgress
	count := max(c.Space.MaxProgress-min, 0)
	segments := decoration.Segments(min, count, colorOr(s.Before), colorOr(s.At), colorOr(s.After))
	dividers := decoration.SegmentDividers(min, count, s.DividerWidth, colorOr(s.DividerColor))
	return segments, dividers
}

// MarkerIconColor returns the color generated gift icons are drawn in.
func (c *Config) MarkerIconColor() color.Color {
	if col := colorOr(c.Gift.IconColor); col != nil {
		return col
	}
	return widget.DefaultProgressColor
}
