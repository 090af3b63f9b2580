// Package decoration holds the overlay descriptors drawn on top of a bar.
// Lists are built by the host and handed to a widget wholesale.
package decoration

import (
	"image"
	"image/color"
)

// Marker is an icon drawn above the bar.
type Marker struct {
	AtProgress int
	Icon       image.Image
	Width      int
	Height     int
}

// Divider is a thin rectangle straddling the bar.
type Divider struct {
	AtProgress int
	Width      int
	Color      color.Color
}

// Label is text centered beneath the bar.
type Label struct {
	AtProgress int
	Text       string
	Color      color.Color
}

// Tone classifies a segment against the current progress.
type Tone int

const (
	// ToneBefore marks segments already passed.
	ToneBefore Tone = iota
	// ToneAt marks the segment ending at the current progress.
	ToneAt
	// ToneAfter marks segments not reached yet.
	ToneAfter
)

func (t Tone) String() string {
	switch t {
	case ToneBefore:
		return "before"
	case ToneAt:
		return "at"
	default:
		return "after"
	}
}

// Segment paints the span between AtProgress-1 and AtProgress on the space
// bar.
type Segment struct {
	AtProgress int
	Before     color.Color
	At         color.Color
	After      color.Color
}

// ToneFor returns where the segment sits relative to current.
func (s Segment) ToneFor(current int) Tone {
	switch {
	case s.AtProgress < current:
		return ToneBefore
	case s.AtProgress == current:
		return ToneAt
	default:
		return ToneAfter
	}
}

// ColorFor returns the color for the segment given current progress.
func (s Segment) ColorFor(current int) color.Color {
	switch s.ToneFor(current) {
	case ToneBefore:
		return s.Before
	case ToneAt:
		return s.At
	default:
		return s.After
	}
}

// Clone returns a copy of list so callers may keep mutating their own slice.
// A nil or empty list yields nil.
func Clone[T any](list []T) []T {
	if len(list) == 0 {
		return nil
	}
	out := make([]T, len(list))
	copy(out, list)
	return out
}
