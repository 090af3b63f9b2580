package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/giftprogress/internal/tui/components"
)

// View renders the bars, their gauges, a summary and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.giftCanvas == nil || m.spaceCanvas == nil {
		return "Initializing..."
	}

	m.giftCanvas.Clear()
	m.gift.Draw(m.giftCanvas)
	m.spaceCanvas.Clear()
	m.space.Draw(m.spaceCanvas)

	sections := []string{
		titleStyle.Render("Gift progress"),
		m.giftCanvas.String(),
		m.giftGauge.View(m.gift.MinProgress(), m.gift.Progress(), m.gift.MaxProgress()),
		m.spaceCanvas.String(),
		m.spaceGauge.View(m.space.MinProgress(), m.space.Progress(), m.space.MaxProgress()),
	}

	summary := components.NewSummary(components.SummaryData{
		GiftProgress: m.gift.Progress(),
		LabelSuffix:  m.cfg.Gift.LabelSuffix,
		WindowMin:    m.gift.MinProgress(),
		WindowMax:    m.gift.MaxProgress(),
		WindowSize:   m.window.Size(),
		SpaceValue:   m.space.Progress(),
		SpaceMax:     m.space.MaxProgress(),
		Animate:      m.animate,
		Animating:    m.gift.Animating() || m.space.Animating(),
	}).View()
	if m.gift.Animating() || m.space.Animating() {
		summary = m.spinner.View() + " " + summary
	}
	sections = append(sections, summaryStyle.Render(summary))

	if changes := m.changes.View(); changes != "" {
		sections = append(sections, sectionStyle.Render("Changes"), changes)
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
