// Package render paints progress bars onto a drawing surface. Renderers keep
// no state between calls; everything they draw comes from a frame snapshot.
package render

import (
	"image"
	"image/color"
)

// Canvas is the drawing surface a renderer paints on. Coordinates are local
// to the widget: the origin is its midpoint.
type Canvas interface {
	FillRect(r image.Rectangle, c color.Color)
	FillRoundRect(r image.Rectangle, radii Corners, c color.Color)
	// FillPath fills the closed polygon through points.
	FillPath(points []image.Point, c color.Color)
	// DrawImage scales img into r.
	DrawImage(img image.Image, r image.Rectangle)
	// DrawText draws text with its left edge at x and its baseline at y.
	DrawText(text string, x, baseline int, size float64, c color.Color)
	MeasureText(text string, size float64) int
}

// Corners holds per-corner radii in pixels.
type Corners struct {
	TopLeft     int
	TopRight    int
	BottomRight int
	BottomLeft  int
}

// Uniform returns the same radius on every corner.
func Uniform(r int) Corners {
	return Corners{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// Leading rounds the left corners only.
func Leading(r int) Corners {
	return Corners{TopLeft: r, BottomLeft: r}
}

// Trailing rounds the right corners only.
func Trailing(r int) Corners {
	return Corners{TopRight: r, BottomRight: r}
}

// Merge returns the per-corner maximum of c and o.
func (c Corners) Merge(o Corners) Corners {
	return Corners{
		TopLeft:     max(c.TopLeft, o.TopLeft),
		TopRight:    max(c.TopRight, o.TopRight),
		BottomRight: max(c.BottomRight, o.BottomRight),
		BottomLeft:  max(c.BottomLeft, o.BottomLeft),
	}
}

// IsZero reports whether every corner is square.
func (c Corners) IsZero() bool {
	return c == Corners{}
}

// Clamp limits each radius to half of the smaller side of r.
func (c Corners) Clamp(r image.Rectangle) Corners {
	limit := min(r.Dx(), r.Dy()) / 2
	clampOne := func(v int) int {
		if v < 0 {
			return 0
		}
		return min(v, limit)
	}
	return Corners{
		TopLeft:     clampOne(c.TopLeft),
		TopRight:    clampOne(c.TopRight),
		BottomRight: clampOne(c.BottomRight),
		BottomLeft:  clampOne(c.BottomLeft),
	}
}

func centerX(r image.Rectangle) int {
	return (r.Min.X + r.Max.X) / 2
}
