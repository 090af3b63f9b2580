package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders where a bar's progress sits within its range.
type Progress struct {
	bar   progress.Model
	label string
}

// NewProgress creates a range gauge titled label.
func NewProgress(label string, width int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = width
	return Progress{bar: bar, label: label}
}

// Ratio returns the fraction of [lo, hi] covered by current.
func Ratio(lo, current, hi int) float64 {
	if hi <= lo {
		return 0
	}
	r := float64(current-lo) / float64(hi-lo)
	return min(1, max(0, r))
}

// View renders the gauge for current within [lo, hi].
func (p Progress) View(lo, current, hi int) string {
	label := lipgloss.NewStyle().Bold(true).Render(p.label)
	bounds := fmt.Sprintf("%d %s %d", lo, p.bar.ViewAs(Ratio(lo, current, hi)), hi)
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", bounds)
}
