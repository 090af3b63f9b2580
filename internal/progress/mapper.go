package progress

import "math"

// Mapper converts between progress values and offsets along the plotting
// axis. Offset zero is the middle of the span.
type Mapper struct {
	Range Range
	Span  float64
}

// NewMapper returns a Mapper plotting r over span pixels.
func NewMapper(r Range, span float64) Mapper {
	if span < 0 {
		span = 0
	}
	return Mapper{Range: r, Span: span}
}

// Half returns span/2, the largest reachable offset.
func (m Mapper) Half() float64 {
	return m.Span / 2
}

// ToOffset returns the unclamped offset of p.
func (m Mapper) ToOffset(p int) float64 {
	return m.Span*float64(p-m.Range.Min)/float64(m.Range.Len()) - m.Span/2
}

// ClampOffset pins x into [-span/2, span/2].
func (m Mapper) ClampOffset(x float64) float64 {
	half := m.Half()
	if x > half {
		return half
	}
	if x < -half {
		return -half
	}
	return x
}

// ToProgress returns the progress value nearest to offset x, clamped into
// the range.
func (m Mapper) ToProgress(x float64) int {
	half := m.Half()
	switch {
	case x > half:
		return m.Range.Max
	case x < -half:
		return m.Range.Min
	case m.Span == 0:
		return m.Range.Min
	}
	p := int(math.Round((x+half)*float64(m.Range.Len())/m.Span)) + m.Range.Min
	return m.Range.Clamp(p)
}
