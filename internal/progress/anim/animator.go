// Package anim interpolates an indicator offset between two positions over
// a fixed duration.
package anim

import (
	"iter"
	"time"
)

// DefaultDuration is the length of a transition between two offsets.
const DefaultDuration = 400 * time.Millisecond

// Easing maps linear time t in [0, 1] to eased progress in [0, 1].
type Easing func(t float64) float64

// Decelerate starts fast and slows towards the end.
func Decelerate(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Animator drives a single value from one offset to another. Starting a new
// run cancels the current one. An Animator is not safe for concurrent use.
type Animator struct {
	duration time.Duration
	ease     Easing

	from    float64
	to      float64
	started time.Time
	running bool
}

// New returns an Animator. A non-positive duration falls back to
// DefaultDuration and a nil easing to Decelerate.
func New(duration time.Duration, ease Easing) *Animator {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if ease == nil {
		ease = Decelerate
	}
	return &Animator{duration: duration, ease: ease}
}

// Start cancels any run in flight and begins interpolating from -> to at now.
func (a *Animator) Start(now time.Time, from, to float64) {
	a.Cancel()
	a.from = from
	a.to = to
	a.started = now
	a.running = true
}

// Rescale multiplies both ends of the current run by k. The run keeps its
// start time, so a scaled run lands when the original would have.
func (a *Animator) Rescale(k float64) {
	a.from *= k
	a.to *= k
}

// Cancel stops the current run. Sample reports done afterwards.
func (a *Animator) Cancel() {
	a.running = false
}

// Running reports whether a run is in flight.
func (a *Animator) Running() bool {
	return a.running
}

// Target returns the end offset of the latest run.
func (a *Animator) Target() float64 {
	return a.to
}

// Sample returns the eased value at now. When the run has reached its
// duration the target is returned, the run stops and done is true.
func (a *Animator) Sample(now time.Time) (float64, bool) {
	if !a.running {
		return a.to, true
	}
	elapsed := now.Sub(a.started)
	if elapsed >= a.duration {
		a.running = false
		return a.to, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	t := float64(elapsed) / float64(a.duration)
	return a.from + (a.to-a.from)*a.ease(t), false
}

// Frames yields eased values of the current run at fixed steps of time,
// ending with the target. It does not consume the run: the Animator state is
// left untouched.
func (a *Animator) Frames(step time.Duration) iter.Seq[float64] {
	from, to, ease, duration := a.from, a.to, a.ease, a.duration
	if step <= 0 {
		step = duration
	}
	return func(yield func(float64) bool) {
		for elapsed := time.Duration(0); elapsed < duration; elapsed += step {
			t := float64(elapsed) / float64(duration)
			if !yield(from + (to-from)*ease(t)) {
				return
			}
		}
		yield(to)
	}
}
