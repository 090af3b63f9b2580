package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates the state shown under the bars.
type SummaryData struct {
	GiftProgress int
	LabelSuffix  string
	WindowMin    int
	WindowMax    int
	WindowSize   int
	SpaceValue   int
	SpaceMax     int
	Animate      bool
	Animating    bool
}

// Summary renders a textual state summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	d := s.data
	lines := []string{
		fmt.Sprintf("Gift: %d%s in [%d, %d], window %d", d.GiftProgress, d.LabelSuffix, d.WindowMin, d.WindowMax, d.WindowSize),
		fmt.Sprintf("Space: %d/%d", d.SpaceValue, d.SpaceMax),
	}

	switch {
	case !d.Animate:
		lines = append(lines, "Animation off")
	case d.Animating:
		lines = append(lines, "Animating")
	default:
		lines = append(lines, "Animation on")
	}

	return strings.Join(lines, "\n")
}
