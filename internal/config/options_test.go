package config

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/giftprogress/internal/decoration"
	"github.com/alexisbeaulieu97/giftprogress/internal/widget"
)

func TestGiftOptionsFromDefaults(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Gift.LabelSuffix = "人"
	opts := cfg.GiftOptions(nil)

	require.Equal(t, 0, opts.MinProgress)
	require.Equal(t, 100, opts.MaxProgress)
	require.Equal(t, 6, opts.ThumbWidthPx)
	require.Equal(t, color.NRGBA{R: 0xFB, G: 0x7E, B: 0x16, A: 0xFF}, opts.ProgressColor)
	require.Equal(t, widget.DefaultTextColor, opts.TextColor)
	require.Equal(t, "人", opts.LabelSuffix)
	require.True(t, opts.Animate)
	require.Equal(t, 400*time.Millisecond, opts.AnimationDuration)

	bar, err := widget.NewGiftBar(opts)
	require.NoError(t, err)
	require.Equal(t, 100, bar.MaxProgress())
}

func TestSpaceOptionsCarryAnimation(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Animation.Enabled = false
	opts := cfg.SpaceOptions(nil)

	require.False(t, opts.Animate)
	require.Equal(t, 6, opts.MaxProgress)
}

func TestWindowOptions(t *testing.T) {
	t.Parallel()

	cfg := Default()
	opts := cfg.WindowOptions(nil, nil)

	require.Equal(t, 10, opts.Size)
	require.Equal(t, 20, opts.AlternateSize)
	require.Equal(t, 5, opts.Step)
	require.Equal(t, 50, opts.Style.MarkerWidth)
	require.Equal(t, 4, opts.Style.DividerWidth)
}

func TestSpaceDecorations(t *testing.T) {
	t.Parallel()

	segments, dividers := Default().SpaceDecorations()
	require.Len(t, segments, 6)
	require.Len(t, dividers, 6)
	require.Equal(t, 1, segments[0].AtProgress)
	require.Equal(t, 6, dividers[5].AtProgress)
	require.Equal(t, decoration.ToneAt, segments[2].ToneFor(3))
}

func TestSpaceDecorationsFollowSpaceRange(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Space.MinProgress, cfg.Space.MaxProgress = 2, 12

	segments, dividers := cfg.SpaceDecorations()
	require.Len(t, segments, 10)
	require.Len(t, dividers, 10)
	require.Equal(t, 3, segments[0].AtProgress)
	require.Equal(t, 12, segments[9].AtProgress)
}

func TestMarkerIconColor(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.Equal(t, color.NRGBA{R: 0xE5, G: 0x48, B: 0x4D, A: 0xFF}, cfg.MarkerIconColor())

	cfg.Gift.IconColor = ""
	require.Equal(t, widget.DefaultProgressColor, cfg.MarkerIconColor())
}
