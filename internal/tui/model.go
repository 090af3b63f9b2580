// Package tui hosts the gift and space bars in a terminal program.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/giftprogress/internal/app/window"
	"github.com/alexisbeaulieu97/giftprogress/internal/config"
	"github.com/alexisbeaulieu97/giftprogress/internal/logger"
	"github.com/alexisbeaulieu97/giftprogress/internal/render/raster"
	"github.com/alexisbeaulieu97/giftprogress/internal/render/term"
	"github.com/alexisbeaulieu97/giftprogress/internal/tui/components"
	"github.com/alexisbeaulieu97/giftprogress/internal/widget"
)

// Rows are odd so a cell center falls on the bar axis.
const (
	giftRows      = 13
	spaceRows     = 5
	changeLogSize = 4
	gaugeWidth    = 30
)

// frameMsg drives one animation step. Frames carrying an old tag are
// dropped.
type frameMsg struct {
	tag int
	at  time.Time
}

// Model contains the Bubbletea state for the interactive demo.
type Model struct {
	cfg    *config.Config
	gift   *widget.GiftBar
	window *window.Controller
	space  *widget.SpaceBar

	giftCanvas  *term.Canvas
	spaceCanvas *term.Canvas
	giftGauge   components.Progress
	spaceGauge  components.Progress
	changes     *components.ChangeLog

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	animate  bool
	frameTag int
	framing  bool

	width    int
	height   int
	quitting bool
	log      *logger.Logger
}

// NewModel builds both bars from cfg. A nil cfg uses the defaults.
func NewModel(cfg *config.Config, log *logger.Logger) (Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	changes := components.NewChangeLog(changeLogSize)

	gift, err := widget.NewGiftBar(cfg.GiftOptions(log))
	if err != nil {
		return Model{}, fmt.Errorf("create gift bar: %w", err)
	}
	space, err := widget.NewSpaceBar(cfg.SpaceOptions(log))
	if err != nil {
		return Model{}, fmt.Errorf("create space bar: %w", err)
	}

	segments, dividers := cfg.SpaceDecorations()
	space.SetSegments(segments)
	space.SetDividers(dividers)
	space.SetOnProgressChangedListener(func(b *widget.SpaceBar, fromUser, finished bool) {
		changes.Record(components.Change{Source: "space", Progress: b.Progress(), FromUser: fromUser, Finished: finished})
	})

	icon := raster.GiftIcon(cfg.Gift.MarkerSize, cfg.MarkerIconColor())
	ctrl, err := window.New(gift, cfg.WindowOptions(icon, log))
	if err != nil {
		return Model{}, err
	}
	ctrl.Attach(func(b *widget.GiftBar, fromUser, finished bool) {
		changes.Record(components.Change{Source: "gift", Progress: b.Progress(), FromUser: fromUser, Finished: finished})
	})

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		cfg:        cfg,
		gift:       gift,
		window:     ctrl,
		space:      space,
		giftGauge:  components.NewProgress("gift ", gaugeWidth),
		spaceGauge: components.NewProgress("space", gaugeWidth),
		changes:    changes,
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    s,
		animate:    cfg.Animation.Enabled,
		log:        log.WithFields(map[string]any{"component": "tui"}),
	}, nil
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("giftprogress")
}

// Gift returns the hosted gift bar.
func (m Model) Gift() *widget.GiftBar {
	return m.gift
}

// Space returns the hosted space bar.
func (m Model) Space() *widget.SpaceBar {
	return m.space
}

// Changes returns the notifications received so far.
func (m Model) Changes() []components.Change {
	return m.changes.Entries()
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	if width <= 0 {
		return
	}

	cells := term.WithCellSize(m.cfg.Render.CellWidth, m.cfg.Render.CellHeight)
	giftCanvas, err := term.New(width, giftRows, cells)
	if err != nil {
		m.log.Error(err, "gift canvas")
		return
	}
	spaceCanvas, err := term.New(width, spaceRows, cells)
	if err != nil {
		m.log.Error(err, "space canvas")
		return
	}
	m.giftCanvas, m.spaceCanvas = giftCanvas, spaceCanvas
	m.gift.Resize(giftCanvas.PixelSize())
	m.space.Resize(spaceCanvas.PixelSize())
}

// spaceTop is the first screen row of the space bar.
func (m Model) spaceTop() int {
	return 1 + giftRows + 1
}

func (m *Model) frames() tea.Cmd {
	if m.framing || (!m.gift.Animating() && !m.space.Animating()) {
		return nil
	}
	m.framing = true
	m.frameTag++
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	fps := m.cfg.Animation.FPS
	if fps <= 0 {
		fps = 60
	}
	tag := m.frameTag
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg{tag: tag, at: t}
	})
}
