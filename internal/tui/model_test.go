package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/giftprogress/internal/config"
)

func TestNewModelInitialisesState(t *testing.T) {
	m, err := NewModel(nil, nil)
	require.NoError(t, err)

	require.Equal(t, 0, m.Gift().MinProgress())
	require.Equal(t, 10, m.Gift().MaxProgress())
	require.Len(t, m.Gift().Markers(), 2)
	require.Len(t, m.Space().Segments(), 6)
	require.Len(t, m.Space().Dividers(), 6)
	require.True(t, m.animate)
	require.Empty(t, m.Changes())
}

func TestNewModelHonoursConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Animation.Enabled = false
	cfg.Window.Size = 20
	cfg.Gift.LabelSuffix = "人"

	m, err := NewModel(cfg, nil)
	require.NoError(t, err)
	require.False(t, m.animate)
	require.Equal(t, 20, m.Gift().MaxProgress())
	require.Equal(t, "20人", m.Gift().Labels()[4].Text)
}

func TestNewModelRejectsBadWindow(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Step = 0

	_, err := NewModel(cfg, nil)
	require.Error(t, err)
}

func TestModelInitReturnsCommand(t *testing.T) {
	m, err := NewModel(nil, nil)
	require.NoError(t, err)
	require.NotNil(t, m.Init())
}

func TestResizeBuildsCanvases(t *testing.T) {
	m := sized(t, 80)

	require.NotNil(t, m.giftCanvas)
	require.NotNil(t, m.spaceCanvas)

	w, h := m.Gift().Size()
	require.Equal(t, 640, w)
	require.Equal(t, 13*16, h)

	w, h = m.Space().Size()
	require.Equal(t, 640, w)
	require.Equal(t, 5*16, h)
}
