// Package rendertest provides a Canvas that records draw calls.
package rendertest

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/giftprogress/internal/render"
)

// Kind names a recorded draw call.
type Kind string

const (
	KindRect      Kind = "rect"
	KindRoundRect Kind = "round_rect"
	KindPath      Kind = "path"
	KindImage     Kind = "image"
	KindText      Kind = "text"
)

// Op is one recorded draw call.
type Op struct {
	Kind    Kind
	Rect    image.Rectangle
	Corners render.Corners
	Color   color.Color
	Points  []image.Point
	Image   image.Image
	Text    string
	Size    float64
}

// Recorder implements render.Canvas by appending every call to Ops. Text is
// measured as half the font size per rune.
type Recorder struct {
	Ops []Op
}

var _ render.Canvas = (*Recorder)(nil)

func (r *Recorder) FillRect(rect image.Rectangle, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: KindRect, Rect: rect, Color: c})
}

func (r *Recorder) FillRoundRect(rect image.Rectangle, radii render.Corners, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: KindRoundRect, Rect: rect, Corners: radii, Color: c})
}

func (r *Recorder) FillPath(points []image.Point, c color.Color) {
	pts := append([]image.Point(nil), points...)
	r.Ops = append(r.Ops, Op{Kind: KindPath, Points: pts, Color: c})
}

func (r *Recorder) DrawImage(img image.Image, rect image.Rectangle) {
	r.Ops = append(r.Ops, Op{Kind: KindImage, Image: img, Rect: rect})
}

func (r *Recorder) DrawText(text string, x, baseline int, size float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: KindText, Text: text, Rect: image.Rect(x, baseline, x, baseline), Size: size, Color: c})
}

func (r *Recorder) MeasureText(text string, size float64) int {
	return utf8.RuneCountInString(text) * int(size) / 2
}

// Kinds returns the kinds of all recorded ops in order.
func (r *Recorder) Kinds() []Kind {
	out := make([]Kind, 0, len(r.Ops))
	for _, op := range r.Ops {
		out = append(out, op.Kind)
	}
	return out
}

// Filter returns the ops of kind k in order.
func (r *Recorder) Filter(k Kind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the strings of all text ops in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Filter(KindText) {
		out = append(out, op.Text)
	}
	return out
}

// Reset drops every recorded op.
func (r *Recorder) Reset() {
	r.Ops = nil
}
