package widget

import (
	"fmt"
	"image"
	"iter"
	"time"

	"github.com/alexisbeaulieu97/giftprogress/internal/decoration"
	"github.com/alexisbeaulieu97/giftprogress/internal/render"
)

// GiftChangeFunc is invoked when the committed progress of a GiftBar
// changes. finished is false while an animated change is still moving.
type GiftChangeFunc func(bar *GiftBar, fromUser, finished bool)

// GiftBar is a progress bar with a thumb, a pointer, markers above the bar,
// dividers across it and labels beneath it.
type GiftBar struct {
	opts     GiftOptions
	t        *track
	listener GiftChangeFunc

	markers  []decoration.Marker
	dividers []decoration.Divider
	labels   []decoration.Label
}

// NewGiftBar creates a GiftBar. It fails when MinProgress >= MaxProgress.
func NewGiftBar(opts GiftOptions) (*GiftBar, error) {
	opts = opts.normalized()
	t, err := newTrack(opts.Options, "gift")
	if err != nil {
		return nil, err
	}
	g := &GiftBar{opts: opts, t: t}
	t.notify = func(fromUser, finished bool) {
		if g.listener != nil {
			g.listener(g, fromUser, finished)
		}
	}
	return g, nil
}

// Progress returns the committed progress.
func (g *GiftBar) Progress() int { return g.t.current }

// MinProgress returns the lower bound.
func (g *GiftBar) MinProgress() int { return g.t.rng.Min }

// MaxProgress returns the upper bound.
func (g *GiftBar) MaxProgress() int { return g.t.rng.Max }

// SetMinProgress replaces the lower bound. The current progress is not
// re-clamped; follow with SetProgress.
func (g *GiftBar) SetMinProgress(min int) error { return g.t.setRange(min, g.t.rng.Max) }

// SetMaxProgress replaces the upper bound.
func (g *GiftBar) SetMaxProgress(max int) error { return g.t.setRange(g.t.rng.Min, max) }

// SetRange replaces both bounds at once.
func (g *GiftBar) SetRange(min, max int) error { return g.t.setRange(min, max) }

// SetProgress jumps to value without animation.
func (g *GiftBar) SetProgress(value int) { g.t.setProgress(value, false, false) }

// SetProgressWith commits value, animating the thumb when animate is set.
func (g *GiftBar) SetProgressWith(value int, animate, fromUser bool) {
	g.t.setProgress(value, animate, fromUser)
}

// SetOnProgressChangedListener registers the single change listener. Nil
// clears it.
func (g *GiftBar) SetOnProgressChangedListener(fn GiftChangeFunc) { g.listener = fn }

// SetMarkers replaces the icons drawn above the bar.
func (g *GiftBar) SetMarkers(list []decoration.Marker) {
	g.markers = decoration.Clone(list)
	g.t.opts.Invalidate()
}

// SetDividers replaces the dividers drawn across the bar.
func (g *GiftBar) SetDividers(list []decoration.Divider) {
	g.dividers = decoration.Clone(list)
	g.t.opts.Invalidate()
}

// SetLabels replaces the labels drawn beneath the bar.
func (g *GiftBar) SetLabels(list []decoration.Label) {
	g.labels = decoration.Clone(list)
	g.t.opts.Invalidate()
}

// Markers returns the markers in use.
func (g *GiftBar) Markers() []decoration.Marker { return g.markers }

// Dividers returns the dividers in use.
func (g *GiftBar) Dividers() []decoration.Divider { return g.dividers }

// Labels returns the labels in use.
func (g *GiftBar) Labels() []decoration.Label { return g.labels }

// Resize lays the bar out for a widget of the given size. The current
// progress is re-committed, or a running animation is scaled to the new
// width.
func (g *GiftBar) Resize(width, height int) { g.t.resize(width, height) }

// Advance moves a running animation to now. It reports whether another
// frame is needed.
func (g *GiftBar) Advance(now time.Time) bool { return g.t.advance(now) }

// Animating reports whether the thumb is moving.
func (g *GiftBar) Animating() bool { return g.t.animating() }

// Playback steps a running animation through to its end, one step of time
// per yielded offset, without consulting the clock. The completion
// notification fires once the sequence is exhausted.
func (g *GiftBar) Playback(step time.Duration) iter.Seq[float64] { return g.t.playback(step) }

// Offset returns the thumb position relative to the bar center.
func (g *GiftBar) Offset() float64 { return g.t.offset }

// Size returns the size last passed to Resize.
func (g *GiftBar) Size() (int, int) { return g.t.layout.Width, g.t.layout.Height }

// Frame snapshots the current state for rendering.
func (g *GiftBar) Frame() render.GiftFrame {
	full, fill := g.t.bar()
	h := g.opts.ProgressHeightPx
	half := float64(g.opts.ThumbWidthPx / 2)
	thumb := image.Rect(int(g.t.offset-half), -h, int(g.t.offset+half), h)

	return render.GiftFrame{
		Mapper:        g.t.mapper(),
		Current:       g.t.current,
		Track:         full,
		Fill:          fill,
		Thumb:         thumb,
		Corner:        g.opts.ProgressCornerPx,
		Background:    g.opts.BackgroundColor,
		Progress:      g.opts.ProgressColor,
		ThumbColor:    g.opts.ThumbColor,
		TextColor:     g.opts.TextColor,
		TextSize:      g.opts.TextSizePx,
		IndicatorText: fmt.Sprintf("%d%s", g.t.current, g.opts.LabelSuffix),
		Markers:       g.markers,
		Dividers:      g.dividers,
		Labels:        g.labels,
	}
}

// Draw paints the bar onto c. Nothing is drawn before the first Resize.
func (g *GiftBar) Draw(c render.Canvas) {
	if g.t.layout.Empty() {
		return
	}
	render.Gift{}.Draw(c, g.Frame())
}
