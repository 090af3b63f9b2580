package widget

import (
	"image"
	"iter"
	"time"

	"github.com/alexisbeaulieu97/giftprogress/internal/logger"
	"github.com/alexisbeaulieu97/giftprogress/internal/progress"
	"github.com/alexisbeaulieu97/giftprogress/internal/progress/anim"
)

// track holds the range, the committed progress and the visible indicator
// offset shared by both bars.
type track struct {
	opts   Options
	rng    progress.Range
	layout progress.Layout

	current int
	last    int
	offset  float64

	anim *anim.Animator
	// pending is set while an animated change waits to report completion.
	pending         bool
	pendingFromUser bool

	notify func(fromUser, finished bool)
	log    *logger.Logger
}

func newTrack(opts Options, kind string) (*track, error) {
	rng, err := progress.NewRange(opts.MinProgress, opts.MaxProgress)
	if err != nil {
		return nil, err
	}
	t := &track{
		opts:    opts,
		rng:     rng,
		current: rng.Min,
		last:    rng.Min,
		log:     opts.Logger.WithFields(map[string]any{"widget": kind}),
	}
	if opts.Animate {
		t.anim = anim.New(opts.AnimationDuration, anim.Decelerate)
	}
	return t, nil
}

func (t *track) mapper() progress.Mapper {
	return progress.NewMapper(t.rng, float64(t.layout.Span))
}

// resize lays the track out again. A running transition is scaled onto the
// new span and keeps its timing.
func (t *track) resize(width, height int) {
	oldHalf := t.mapper().Half()
	t.layout = progress.NewLayout(width, height, t.opts.MarginPx)
	if t.layout.Empty() {
		return
	}
	if newHalf := t.mapper().Half(); t.animating() && oldHalf > 0 && newHalf > 0 {
		k := newHalf / oldHalf
		t.anim.Rescale(k)
		t.offset *= k
		t.opts.Invalidate()
		return
	}
	t.setProgress(t.current, false, false)
}

func (t *track) setRange(min, max int) error {
	rng, err := progress.NewRange(min, max)
	if err != nil {
		t.log.Warn(err.Error())
		return err
	}
	t.rng = rng
	t.log.DebugFields("range replaced", map[string]any{"min": min, "max": max})
	return nil
}

func (t *track) setProgress(value int, animate, fromUser bool) {
	value = t.rng.Clamp(value)
	m := t.mapper()
	target := m.ClampOffset(m.ToOffset(value))

	animated := animate && t.anim != nil
	if animated {
		if t.anim.Running() {
			t.log.DebugFields("animation cancelled", map[string]any{"target": t.anim.Target()})
		}
		t.current = value
		t.anim.Start(t.opts.Clock(), t.offset, target)
		t.log.DebugFields("animation started", map[string]any{"from": t.offset, "to": target})
		t.opts.Invalidate()
	} else {
		if t.anim != nil && t.anim.Running() {
			t.anim.Cancel()
		}
		// Landing on the pending value completes that transition.
		landed := t.pending && value == t.current
		t.pending = false
		t.current = value
		t.moveTo(target)
		if landed {
			t.last = t.current
			t.fire(t.pendingFromUser, true)
			return
		}
	}

	prev := t.last
	t.last = t.current
	changed := prev != t.current
	if animated {
		if changed {
			t.pendingFromUser = fromUser
		}
		t.pending = t.pending || changed
	}
	if changed {
		t.fire(fromUser, !animated)
	}
}

// moveTo places the indicator at coord, pinning the committed progress at
// the ends of the span.
func (t *track) moveTo(coord float64) {
	half := t.mapper().Half()
	if coord > half {
		coord = half
		t.current = t.rng.Max
	} else if coord < -half {
		coord = -half
		t.current = t.rng.Min
	}
	t.offset = coord
	t.opts.Invalidate()
}

func (t *track) advance(now time.Time) bool {
	if t.anim == nil || !t.anim.Running() {
		return false
	}
	v, done := t.anim.Sample(now)
	t.moveTo(v)
	if done {
		t.finish()
	}
	return !done
}

// finish reports a pending transition as complete.
func (t *track) finish() {
	if t.pending {
		t.pending = false
		t.fire(t.pendingFromUser, true)
	}
}

// playback walks the running transition in fixed steps of time, placing the
// indicator at each step before yielding its offset. Exhausting the sequence
// completes the transition. Without a transition the current offset is
// yielded once.
func (t *track) playback(step time.Duration) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !t.animating() {
			yield(t.offset)
			return
		}
		for v := range t.anim.Frames(step) {
			t.moveTo(v)
			if !yield(v) {
				return
			}
		}
		t.anim.Cancel()
		t.finish()
	}
}

func (t *track) animating() bool {
	return t.anim != nil && t.anim.Running()
}

func (t *track) fire(fromUser, finished bool) {
	if t.notify != nil {
		t.notify(fromUser, finished)
	}
}

// bar returns the track rectangle and the filled rectangle up to the
// indicator.
func (t *track) bar() (image.Rectangle, image.Rectangle) {
	h := t.opts.ProgressHeightPx
	full := t.layout.Track(h)
	fill := image.Rect(full.Min.X, -h, int(t.offset), h)
	return full, fill
}
