package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func sized(t *testing.T, width int) Model {
	t.Helper()
	m, err := NewModel(nil, nil)
	require.NoError(t, err)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: 40})
	return updated.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdateNextAnimatesUntilFrameLands(t *testing.T) {
	m := sized(t, 80)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.framing)
	require.Equal(t, 1, m.Gift().Progress())
	require.True(t, m.Gift().Animating())

	changes := m.Changes()
	require.Len(t, changes, 1)
	require.True(t, changes[0].FromUser)
	require.False(t, changes[0].Finished)

	updated, cmd = m.Update(frameMsg{tag: m.frameTag, at: time.Now().Add(time.Second)})
	m = updated.(Model)
	require.Nil(t, cmd)
	require.False(t, m.framing)
	require.False(t, m.Gift().Animating())

	changes = m.Changes()
	require.Len(t, changes, 2)
	require.True(t, changes[1].Finished)
}

func TestUpdateDropsStaleFrames(t *testing.T) {
	m := sized(t, 80)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)

	updated, cmd := m.Update(frameMsg{tag: m.frameTag - 1, at: time.Now().Add(time.Second)})
	m = updated.(Model)
	require.Nil(t, cmd)
	require.True(t, m.Gift().Animating())
}

func TestUpdateJumpSkipsAnimation(t *testing.T) {
	m := sized(t, 80)

	updated, cmd := m.Update(runes("n"))
	m = updated.(Model)
	require.Nil(t, cmd)
	require.Equal(t, 1, m.Gift().Progress())
	require.False(t, m.Gift().Animating())

	changes := m.Changes()
	require.Len(t, changes, 1)
	require.True(t, changes[0].Finished)
}

func TestUpdateAnimationToggle(t *testing.T) {
	m := sized(t, 80)

	updated, _ := m.Update(runes("a"))
	m = updated.(Model)
	require.False(t, m.animate)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	require.Nil(t, cmd)
	require.False(t, m.Gift().Animating())
}

func TestUpdateToggleSwitchesWindow(t *testing.T) {
	m := sized(t, 80)

	updated, _ := m.Update(runes("s"))
	m = updated.(Model)
	require.Equal(t, 20, m.Gift().MaxProgress())
	require.Equal(t, 20, m.window.Size())
}

func TestUpdateSpaceKeys(t *testing.T) {
	m := sized(t, 80)

	updated, _ := m.Update(runes("a"))
	m = updated.(Model)
	updated, _ = m.Update(runes("]"))
	m = updated.(Model)
	updated, _ = m.Update(runes("]"))
	m = updated.(Model)
	require.Equal(t, 2, m.Space().Progress())

	updated, _ = m.Update(runes("["))
	m = updated.(Model)
	require.Equal(t, 1, m.Space().Progress())
}

func TestUpdateMouseClickMovesSpaceBar(t *testing.T) {
	m := sized(t, 80)

	updated, _ := m.Update(tea.MouseMsg{X: 79, Y: m.spaceTop(), Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = updated.(Model)
	require.Equal(t, 6, m.Space().Progress())

	last := m.Changes()[len(m.Changes())-1]
	require.Equal(t, "space", last.Source)
	require.True(t, last.FromUser)
	require.True(t, last.Finished)

	updated, _ = m.Update(tea.MouseMsg{X: 40, Y: m.spaceTop() + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = updated.(Model)
	require.Equal(t, 3, m.Space().Progress())
}

func TestUpdateIgnoresMouseOutsideSpaceBar(t *testing.T) {
	m := sized(t, 80)

	updated, _ := m.Update(tea.MouseMsg{X: 79, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = updated.(Model)
	require.Equal(t, 0, m.Space().Progress())

	updated, _ = m.Update(tea.MouseMsg{X: 79, Y: m.spaceTop(), Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = updated.(Model)
	require.Equal(t, 0, m.Space().Progress())
}

func TestUpdateQuit(t *testing.T) {
	m := sized(t, 80)

	updated, cmd := m.Update(runes("q"))
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.quitting)

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.True(t, updated.(Model).quitting)
}
