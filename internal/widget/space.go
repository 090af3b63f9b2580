package widget

import (
	"iter"
	"time"

	"github.com/alexisbeaulieu97/giftprogress/internal/decoration"
	"github.com/alexisbeaulieu97/giftprogress/internal/render"
)

// SpaceChangeFunc is invoked when the committed progress of a SpaceBar
// changes.
type SpaceChangeFunc func(bar *SpaceBar, fromUser, finished bool)

// SpaceBar is a progress bar filled by per-unit segments colored relative to
// the current progress.
type SpaceBar struct {
	opts     SpaceOptions
	t        *track
	listener SpaceChangeFunc

	segments []decoration.Segment
	dividers []decoration.Divider
}

// NewSpaceBar creates a SpaceBar. It fails when MinProgress >= MaxProgress.
func NewSpaceBar(opts SpaceOptions) (*SpaceBar, error) {
	opts.Options = opts.Options.normalized()
	t, err := newTrack(opts.Options, "space")
	if err != nil {
		return nil, err
	}
	s := &SpaceBar{opts: opts, t: t}
	t.notify = func(fromUser, finished bool) {
		if s.listener != nil {
			s.listener(s, fromUser, finished)
		}
	}
	return s, nil
}

func (s *SpaceBar) Progress() int { return s.t.current }
func (s *SpaceBar) MinProgress() int { return s.t.rng.Min }
func (s *SpaceBar) MaxProgress() int { return s.t.rng.Max }

func (s *SpaceBar) SetMinProgress(min int) error { return s.t.setRange(min, s.t.rng.Max) }
func (s *SpaceBar) SetMaxProgress(max int) error { return s.t.setRange(s.t.rng.Min, max) }
func (s *SpaceBar) SetRange(min, max int) error { return s.t.setRange(min, max) }

func (s *SpaceBar) SetProgress(value int) { s.t.setProgress(value, false, false) }

func (s *SpaceBar) SetProgressWith(value int, animate, fromUser bool) {
	s.t.setProgress(value, animate, fromUser)
}

func (s *SpaceBar) SetOnProgressChangedListener(fn SpaceChangeFunc) { s.listener = fn }

// SetSegments replaces the per-unit segments. An empty list falls back to a
// single filled rectangle.
func (s *SpaceBar) SetSegments(list []decoration.Segment) {
	s.segments = decoration.Clone(list)
	s.t.opts.Invalidate()
}

// SetDividers replaces the dividers drawn across the bar.
func (s *SpaceBar) SetDividers(list []decoration.Divider) {
	s.dividers = decoration.Clone(list)
	s.t.opts.Invalidate()
}

func (s *SpaceBar) Segments() []decoration.Segment { return s.segments }
func (s *SpaceBar) Dividers() []decoration.Divider { return s.dividers }

func (s *SpaceBar) Resize(width, height int) { s.t.resize(width, height) }
func (s *SpaceBar) Advance(now time.Time) bool { return s.t.advance(now) }
func (s *SpaceBar) Animating() bool { return s.t.animating() }
func (s *SpaceBar) Playback(step time.Duration) iter.Seq[float64] { return s.t.playback(step) }
func (s *SpaceBar) Offset() float64 { return s.t.offset }
func (s *SpaceBar) Size() (int, int) { return s.t.layout.Width, s.t.layout.Height }

// PointerDown commits the progress under a press at x, measured from the
// left edge of the widget. The change is reported as user-originated.
func (s *SpaceBar) PointerDown(x float64) {
	if s.t.layout.Empty() {
		return
	}
	p := s.t.mapper().ToProgress(s.t.layout.LocalX(x))
	s.t.setProgress(p, false, true)
}

// Frame snapshots the current state for rendering.
func (s *SpaceBar) Frame() render.SpaceFrame {
	full, fill := s.t.bar()
	return render.SpaceFrame{
		Mapper:     s.t.mapper(),
		Current:    s.t.current,
		Track:      full,
		Fill:       fill,
		Corner:     s.opts.ProgressCornerPx,
		Background: s.opts.BackgroundColor,
		Progress:   s.opts.ProgressColor,
		Segments:   s.segments,
		Dividers:   s.dividers,
	}
}

// Draw paints the bar onto c. Nothing is drawn before the first Resize.
func (s *SpaceBar) Draw(c render.Canvas) {
	if s.t.layout.Empty() {
		return
	}
	render.Space{}.Draw(c, s.Frame())
}
