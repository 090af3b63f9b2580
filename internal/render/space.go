package render

import (
	"image"
	"image/color"

	"github.com/alexisbeaulieu97/giftprogress/internal/decoration"
	"github.com/alexisbeaulieu97/giftprogress/internal/progress"
)

// SpaceFrame is everything the space bar renderer needs for one paint pass.
type SpaceFrame struct {
	Mapper  progress.Mapper
	Current int

	Track  image.Rectangle
	Fill   image.Rectangle
	Corner int

	Background color.Color
	Progress   color.Color

	Segments []decoration.Segment
	Dividers []decoration.Divider
}

// Space paints space bar frames.
type Space struct{}

// Draw paints f onto c. Without segments the filled portion is a single
// rounded rectangle up to the indicator.
func (Space) Draw(c Canvas, f SpaceFrame) {
	c.FillRoundRect(f.Track, Uniform(f.Corner).Clamp(f.Track), f.Background)

	if len(f.Segments) == 0 {
		if !f.Fill.Empty() {
			c.FillRoundRect(f.Fill, Uniform(f.Corner).Clamp(f.Fill), f.Progress)
		}
	} else {
		for _, s := range f.Segments {
			r := SegmentRect(f.Mapper, f.Fill, s.AtProgress)
			c.FillRoundRect(r, segmentCorners(f.Mapper.Range, s.AtProgress, f.Corner).Clamp(r), s.ColorFor(f.Current))
		}
	}

	drawDividers(c, f.Mapper, f.Fill, f.Dividers, func(d decoration.Divider) bool {
		return d.AtProgress == f.Mapper.Range.Max
	})
}

// SegmentRect returns the rectangle spanning p-1 to p at the height of fill.
func SegmentRect(m progress.Mapper, fill image.Rectangle, p int) image.Rectangle {
	return image.Rect(int(m.ToOffset(p-1)), fill.Min.Y, int(m.ToOffset(p)), fill.Max.Y)
}

func segmentCorners(r progress.Range, p, radius int) Corners {
	var c Corners
	if p == r.Min+1 {
		c = c.Merge(Leading(radius))
	}
	if p == r.Max {
		c = c.Merge(Trailing(radius))
	}
	return c
}
