// Package window keeps a gift bar's visible range following its progress:
// the bar shows one fixed-size window at a time and the decorations are
// rebuilt whenever the window moves.
package window

import (
	"fmt"

	"github.com/alexisbeaulieu97/giftprogress/internal/decoration"
	"github.com/alexisbeaulieu97/giftprogress/internal/logger"
	"github.com/alexisbeaulieu97/giftprogress/internal/progress"
	"github.com/alexisbeaulieu97/giftprogress/internal/widget"
	gperrors "github.com/alexisbeaulieu97/giftprogress/pkg/errors"
)

// Options configures a Controller.
type Options struct {
	Size          int
	AlternateSize int
	Step          int
	Style         decoration.GiftStyle
	Logger        *logger.Logger
}

// Controller recomputes the range and decorations of a GiftBar.
type Controller struct {
	bar   *widget.GiftBar
	size  int
	alt   int
	step  int
	style decoration.GiftStyle
	log   *logger.Logger
}

// New validates opts and returns a Controller for bar. The bar is not
// touched until Attach or Sync is called.
func New(bar *widget.GiftBar, opts Options) (*Controller, error) {
	if opts.Size <= 0 {
		return nil, gperrors.NewValidationError("window.size", fmt.Sprintf("must be positive, got %d", opts.Size), nil)
	}
	if opts.Step <= 0 {
		return nil, gperrors.NewValidationError("window.step", fmt.Sprintf("must be positive, got %d", opts.Step), nil)
	}
	alt := opts.AlternateSize
	if alt <= 0 {
		alt = opts.Size
	}
	return &Controller{
		bar:   bar,
		size:  opts.Size,
		alt:   alt,
		step:  opts.Step,
		style: opts.Style,
		log:   opts.Logger.WithFields(map[string]any{"component": "window"}),
	}, nil
}

// Attach registers the controller as the bar's change listener and syncs
// the current progress. next, when set, is called after every change. The
// window only moves once a change has finished animating.
func (c *Controller) Attach(next widget.GiftChangeFunc) {
	c.bar.SetOnProgressChangedListener(func(b *widget.GiftBar, fromUser, finished bool) {
		if finished {
			c.Sync(b.Progress())
		}
		if next != nil {
			next(b, fromUser, finished)
		}
	})
	c.Sync(c.bar.Progress())
}

// Window returns the bounds of the window holding p.
func (c *Controller) Window(p int) (int, int) {
	a := progress.FloorDiv(p, c.size)
	return a * c.size, (a + 1) * c.size
}

// Size returns the active window size.
func (c *Controller) Size() int {
	return c.size
}

// Sync moves the bar to the window holding p. It reports whether the
// window changed; an unchanged window leaves the bar alone.
func (c *Controller) Sync(p int) bool {
	min, max := c.Window(p)
	if c.bar.MinProgress() == min && c.bar.MaxProgress() == max {
		return false
	}

	set := decoration.Gift(min, c.size, c.step, c.style)
	c.bar.SetMarkers(set.Markers)
	c.bar.SetDividers(set.Dividers)
	c.bar.SetLabels(set.Labels)

	if err := c.bar.SetRange(min, max); err != nil {
		c.log.Error(err, "window rejected")
		return false
	}
	c.log.DebugFields("window moved", map[string]any{"min": min, "max": max})
	c.bar.SetProgress(min)
	return true
}

// Toggle swaps the primary and alternate window sizes and re-syncs.
func (c *Controller) Toggle() {
	c.size, c.alt = c.alt, c.size
	c.Sync(c.bar.Progress())
}

// Next advances the bar by one, wrapping to the start of the window past
// its end.
func (c *Controller) Next(animate bool) {
	p := c.bar.Progress() + 1
	if p > c.bar.MaxProgress() {
		p = c.bar.MinProgress()
	}
	c.bar.SetProgressWith(p, animate, true)
}

// Prev moves the bar back by one, stopping at the start of the window.
func (c *Controller) Prev(animate bool) {
	c.bar.SetProgressWith(c.bar.Progress()-1, animate, true)
}
