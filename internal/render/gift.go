package render

import (
	"image"
	"image/color"

	"github.com/alexisbeaulieu97/giftprogress/internal/decoration"
	"github.com/alexisbeaulieu97/giftprogress/internal/progress"
)

const (
	// TextGap separates the bottom of the bar from the top of label text.
	TextGap = 5
	// MarkerGap separates the bottom of a marker from the top of the bar.
	MarkerGap = 10
	// PointerTip is the distance from the thumb top to the pointer tip.
	PointerTip = 15
	// PointerBase is the distance from the thumb top to the pointer base.
	PointerBase = 40
	// PointerHalfWidth is half the width of the pointer base.
	PointerHalfWidth = 15
)

// GiftFrame is everything the gift bar renderer needs for one paint pass.
type GiftFrame struct {
	Mapper  progress.Mapper
	Current int

	Track  image.Rectangle
	Fill   image.Rectangle
	Thumb  image.Rectangle
	Corner int

	Background color.Color
	Progress   color.Color
	ThumbColor color.Color
	TextColor  color.Color
	TextSize   float64

	// IndicatorText is drawn beneath the thumb.
	IndicatorText string

	Markers  []decoration.Marker
	Dividers []decoration.Divider
	Labels   []decoration.Label
}

// Gift paints gift bar frames.
type Gift struct{}

// Draw paints f onto c. Later steps overpaint earlier ones.
func (Gift) Draw(c Canvas, f GiftFrame) {
	c.FillRoundRect(f.Track, Uniform(f.Corner).Clamp(f.Track), f.Background)
	if !f.Fill.Empty() {
		c.FillRoundRect(f.Fill, Uniform(f.Corner).Clamp(f.Fill), f.Progress)
	}
	drawIndicator(c, f)
	drawMarkers(c, f)
	drawDividers(c, f.Mapper, f.Fill, f.Dividers, func(d decoration.Divider) bool {
		return d.AtProgress == f.Current
	})
	drawLabels(c, f)
}

func drawIndicator(c Canvas, f GiftFrame) {
	c.FillRect(f.Thumb, f.ThumbColor)

	cx := centerX(f.Thumb)
	if f.IndicatorText != "" {
		width := c.MeasureText(f.IndicatorText, f.TextSize)
		c.DrawText(f.IndicatorText, cx-width/2, f.Thumb.Max.Y+int(f.TextSize)+TextGap, f.TextSize, f.TextColor)
	}

	top := f.Thumb.Min.Y
	c.FillPath([]image.Point{
		image.Pt(cx, top-PointerTip),
		image.Pt(cx-PointerHalfWidth, top-PointerBase),
		image.Pt(cx+PointerHalfWidth, top-PointerBase),
	}, f.Progress)
}

func drawMarkers(c Canvas, f GiftFrame) {
	for _, m := range f.Markers {
		if m.AtProgress == f.Current || m.Icon == nil {
			continue
		}
		x := int(f.Mapper.ToOffset(m.AtProgress))
		bottom := f.Fill.Min.Y - MarkerGap
		c.DrawImage(m.Icon, image.Rect(x-m.Width/2, bottom-m.Height, x+m.Width/2, bottom))
	}
}

func drawLabels(c Canvas, f GiftFrame) {
	for _, l := range f.Labels {
		if l.AtProgress == f.Current {
			continue
		}
		x := int(f.Mapper.ToOffset(l.AtProgress))
		width := c.MeasureText(l.Text, f.TextSize)
		col := l.Color
		if col == nil {
			col = f.TextColor
		}
		c.DrawText(l.Text, x-width/2, f.Fill.Max.Y+int(f.TextSize)+TextGap, f.TextSize, col)
	}
}

func drawDividers(c Canvas, m progress.Mapper, fill image.Rectangle, list []decoration.Divider, skip func(decoration.Divider) bool) {
	for _, d := range list {
		if skip(d) {
			continue
		}
		x := int(m.ToOffset(d.AtProgress))
		c.FillRect(image.Rect(x-d.Width/2, fill.Min.Y, x+d.Width/2, fill.Max.Y), d.Color)
	}
}
