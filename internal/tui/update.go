package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case frameMsg:
		if msg.tag != m.frameTag {
			return m, nil
		}
		giftRunning := m.gift.Advance(msg.at)
		spaceRunning := m.space.Advance(msg.at)
		// the spinner follows the frame clock instead of running its own
		m.spinner, _ = m.spinner.Update(m.spinner.Tick())
		if giftRunning || spaceRunning {
			return m, m.tick()
		}
		m.framing = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		m.window.Next(m.animate)
	case key.Matches(msg, m.keys.Prev):
		m.window.Prev(m.animate)
	case key.Matches(msg, m.keys.Jump):
		m.window.Next(false)
	case key.Matches(msg, m.keys.Toggle):
		m.window.Toggle()
	case key.Matches(msg, m.keys.SpaceNext):
		m.space.SetProgressWith(m.space.Progress()+1, m.animate, true)
	case key.Matches(msg, m.keys.SpacePrev):
		m.space.SetProgressWith(m.space.Progress()-1, m.animate, true)
	case key.Matches(msg, m.keys.Animate):
		m.animate = !m.animate
		m.log.DebugFields("animation toggled", map[string]any{"enabled": m.animate})
	}
	cmd := m.frames()
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || m.spaceCanvas == nil {
		return m, nil
	}
	row := msg.Y - m.spaceTop()
	if row < 0 || row >= spaceRows {
		return m, nil
	}
	cw := m.cfg.Render.CellWidth
	m.space.PointerDown(float64(msg.X*cw + cw/2))
	return m, nil
}
