package term

import (
	"image"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/giftprogress/internal/render"
	"github.com/alexisbeaulieu97/giftprogress/internal/render/raster"
)

var orange = color.RGBA{R: 0xfb, G: 0x7e, B: 0x16, A: 0xff}

func TestNewRejectsEmptyGrid(t *testing.T) {
	_, err := New(0, 3)
	require.Error(t, err)
}

func TestFillRectCoversCellCenters(t *testing.T) {
	c, err := New(10, 2, WithCellSize(10, 10))
	require.NoError(t, err)

	// pixel space is [-50,50) x [-10,10)
	c.FillRect(image.Rect(-50, -10, 0, 10), orange)

	assert.Equal(t, "█████     \n█████     ", c.Plain())
	assert.Equal(t, orange, c.At(0, 0).Bg)
	assert.False(t, c.At(5, 0).Filled())
}

func TestFillRectMissingCenterLeavesCell(t *testing.T) {
	c, err := New(4, 1, WithCellSize(10, 10))
	require.NoError(t, err)

	// covers x in [-20,-16): short of the first center at -15
	c.FillRect(image.Rect(-20, -5, -16, 5), orange)
	assert.Equal(t, "    ", c.Plain())
}

func TestFillPathTriangle(t *testing.T) {
	c, err := New(5, 5, WithCellSize(10, 10))
	require.NoError(t, err)

	c.FillPath([]image.Point{{X: 0, Y: -25}, {X: 25, Y: 25}, {X: -25, Y: 25}}, orange)
	lines := strings.Split(c.Plain(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "  █  ", lines[0])
	assert.Equal(t, "█████", lines[4])
}

func TestDrawTextPlacesRunes(t *testing.T) {
	c, err := New(10, 3, WithCellSize(10, 10))
	require.NoError(t, err)

	w := c.MeasureText("42人", 10)
	assert.Equal(t, 40, w)

	c.DrawText("42人", -w/2, 15, 10, orange)
	lines := strings.Split(c.Plain(), "\n")
	assert.Equal(t, "   42人   ", lines[2])
	assert.Equal(t, 10, lipgloss.Width(lines[2]))
	assert.Equal(t, orange, c.At(3, 2).Fg)
	assert.Equal(t, '人', c.At(5, 2).Rune)
	assert.Equal(t, Continuation, c.At(6, 2).Rune)
}

func TestDrawTextOverWideRune(t *testing.T) {
	c, err := New(4, 1, WithCellSize(10, 10))
	require.NoError(t, err)

	c.DrawText("人人", -20, 5, 10, orange)
	assert.Equal(t, "人人", c.Plain())

	c.DrawText("a", -10, 5, 10, orange)
	assert.Equal(t, " a人", c.Plain())
	assert.Equal(t, 4, lipgloss.Width(c.Plain()))

	c.DrawText("人", 10, 5, 10, orange)
	assert.Equal(t, " a人", c.Plain())
}

func TestDrawTextClipsOutsideGrid(t *testing.T) {
	c, err := New(3, 1, WithCellSize(10, 10))
	require.NoError(t, err)

	c.DrawText("abcdef", -25, 5, 10, orange)
	assert.Equal(t, "bcd", c.Plain())

	c.DrawText("zz", 0, 500, 10, orange)
	assert.Equal(t, "bcd", c.Plain())
}

func TestDrawImageUsesAverageColor(t *testing.T) {
	c, err := New(4, 2, WithCellSize(10, 10))
	require.NoError(t, err)

	c.DrawImage(raster.GiftIcon(20, orange), image.Rect(-20, -10, 0, 10))
	cell := c.At(0, 0)
	require.True(t, cell.Filled())

	r, g, b, _ := cell.Bg.RGBA()
	assert.Greater(t, r>>8, g>>8)
	assert.Greater(t, g>>8, b>>8)
}

func TestColumnMapsLocalX(t *testing.T) {
	c, err := New(10, 1, WithCellSize(8, 16))
	require.NoError(t, err)

	assert.Equal(t, 0, c.Column(-40))
	assert.Equal(t, 5, c.Column(0))
	assert.Equal(t, 4, c.Column(-1))
}

func TestStringRendersStyledRuns(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	c, err := New(4, 1, WithCellSize(10, 10), WithRenderer(r))
	require.NoError(t, err)
	c.FillRect(image.Rect(-20, -5, 0, 5), orange)

	out := c.String()
	assert.Contains(t, out, "\x1b[")
	assert.Equal(t, 1, strings.Count(out, "\n")+1)

	c.Clear()
	assert.Equal(t, "    ", c.Plain())
}

func TestRendersGiftFrame(t *testing.T) {
	c, err := New(40, 8, WithCellSize(10, 20))
	require.NoError(t, err)

	render.Gift{}.Draw(c, render.GiftFrame{
		Track:      image.Rect(-150, -10, 150, 10),
		Fill:       image.Rect(-150, -10, 0, 10),
		Thumb:      image.Rect(-10, -20, 10, 20),
		Background: color.Gray{Y: 0xd9},
		Progress:   orange,
		ThumbColor: color.White,
		TextColor:  color.Gray{Y: 0xaa},
		TextSize:   20,
	})

	assert.Equal(t, orange, c.At(10, 3).Bg)
	assert.Equal(t, color.Gray{Y: 0xd9}, c.At(30, 3).Bg)
}
