package decoration

import (
	"fmt"
	"image"
	"image/color"
)

// GiftStyle carries the appearance of generated gift-bar decorations.
type GiftStyle struct {
	Icon         image.Image
	MarkerWidth  int
	MarkerHeight int
	DividerWidth int
	DividerColor color.Color
	LabelColor   color.Color
	LabelSuffix  string
}

// GiftSet is one generated batch of gift-bar decorations.
type GiftSet struct {
	Markers  []Marker
	Dividers []Divider
	Labels   []Label
}

// Gift generates decorations every step units across [min, min+size]. The
// first marker and divider sit one step past min; labels start at min.
func Gift(min, size, step int, style GiftStyle) GiftSet {
	if size <= 0 || step <= 0 {
		return GiftSet{}
	}
	count := size / step

	set := GiftSet{
		Markers:  make([]Marker, 0, count),
		Dividers: make([]Divider, 0, count),
		Labels:   make([]Label, 0, count+1),
	}
	for i := 1; i <= count; i++ {
		at := min + i*step
		set.Markers = append(set.Markers, Marker{
			AtProgress: at,
			Icon:       style.Icon,
			Width:      style.MarkerWidth,
			Height:     style.MarkerHeight,
		})
		set.Dividers = append(set.Dividers, Divider{
			AtProgress: at,
			Width:      style.DividerWidth,
			Color:      style.DividerColor,
		})
	}
	for i := 0; i <= count; i++ {
		at := min + i*step
		set.Labels = append(set.Labels, Label{
			AtProgress: at,
			Text:       fmt.Sprintf("%d%s", at, style.LabelSuffix),
			Color:      style.LabelColor,
		})
	}
	return set
}

// Segments returns one segment per unit step in (min, min+count].
func Segments(min, count int, before, at, after color.Color) []Segment {
	if count <= 0 {
		return nil
	}
	out := make([]Segment, 0, count)
	for p := min + 1; p <= min+count; p++ {
		out = append(out, Segment{AtProgress: p, Before: before, At: at, After: after})
	}
	return out
}

// SegmentDividers returns a divider at every unit step in (min, min+count].
// The space bar skips the one at its max when drawing.
func SegmentDividers(min, count, width int, c color.Color) []Divider {
	if count <= 0 {
		return nil
	}
	out := make([]Divider, 0, count)
	for p := min + 1; p <= min+count; p++ {
		out = append(out, Divider{AtProgress: p, Width: width, Color: c})
	}
	return out
}
