// Package progress maps integer progress values onto a centered pixel axis.
package progress

import (
	gperrors "github.com/alexisbeaulieu97/giftprogress/pkg/errors"
)

// Range is the closed interval of valid progress values. Min is always less
// than Max for a Range obtained from NewRange.
type Range struct {
	Min int
	Max int
}

// NewRange validates the bounds and returns the Range.
func NewRange(min, max int) (Range, error) {
	if min >= max {
		return Range{}, gperrors.NewRangeError(min, max)
	}
	return Range{Min: min, Max: max}, nil
}

// Clamp pins p into [Min, Max].
func (r Range) Clamp(p int) int {
	if p <= r.Min {
		return r.Min
	}
	if p >= r.Max {
		return r.Max
	}
	return p
}

// Len returns Max - Min.
func (r Range) Len() int {
	return r.Max - r.Min
}
