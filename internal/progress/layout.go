package progress

import "image"

// DefaultMargin is the horizontal space, split across both ends, kept free
// of the plotting span.
const DefaultMargin = 100

// Layout is the local frame of a widget: origin at its midpoint, span
// centered on the origin.
type Layout struct {
	Width  int
	Height int
	Span   int
}

// NewLayout derives the plotting span from the widget size. A non-positive
// size yields an empty layout.
func NewLayout(width, height, margin int) Layout {
	if width <= 0 || height <= 0 {
		return Layout{}
	}
	span := width - margin
	if span < 0 {
		span = 0
	}
	return Layout{Width: width, Height: height, Span: span}
}

// Empty reports whether the widget has not been sized yet.
func (l Layout) Empty() bool {
	return l.Width <= 0 || l.Height <= 0
}

// Track returns the full bar rectangle for a bar that extends thickness
// pixels above and below the axis.
func (l Layout) Track(thickness int) image.Rectangle {
	half := l.Span / 2
	return image.Rect(-half, -thickness, half, thickness)
}

// Origin returns the widget-space position of offset zero.
func (l Layout) Origin() image.Point {
	return image.Pt(l.Width/2, l.Height/2)
}

// LocalX converts a widget-space x (zero at the left edge) into an offset.
func (l Layout) LocalX(x float64) float64 {
	return x - float64(l.Width)/2
}

// FloorDiv divides rounding towards negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
