// Package term implements render.Canvas on a grid of terminal cells. Each
// cell stands for a block of pixels and is painted when a shape covers its
// center.
package term

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/giftprogress/internal/progress"
	"github.com/alexisbeaulieu97/giftprogress/internal/render"
)

// Default cell size in pixels. Terminal cells are roughly twice as tall as
// they are wide.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Continuation marks the cell covered by the right half of a wide rune.
const Continuation rune = -1

// Cell is one terminal character position.
type Cell struct {
	Rune rune
	Fg   color.Color
	Bg   color.Color
}

// Filled reports whether anything was painted on the cell.
func (c Cell) Filled() bool {
	return c.Bg != nil || c.Rune != 0
}

// Canvas is a cols x rows cell grid whose center is the widget origin.
type Canvas struct {
	cols, rows   int
	cellW, cellH int
	cells        []Cell
	renderer     *lipgloss.Renderer
}

var _ render.Canvas = (*Canvas)(nil)

// Option customizes a Canvas.
type Option func(*Canvas)

// WithCellSize sets how many pixels one cell covers.
func WithCellSize(width, height int) Option {
	return func(c *Canvas) {
		if width > 0 {
			c.cellW = width
		}
		if height > 0 {
			c.cellH = height
		}
	}
}

// WithRenderer renders styles through r instead of the default renderer.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(c *Canvas) {
		c.renderer = r
	}
}

// New returns an empty grid.
func New(cols, rows int, opts ...Option) (*Canvas, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %dx%d", cols, rows)
	}
	c := &Canvas{
		cols:     cols,
		rows:     rows,
		cellW:    DefaultCellWidth,
		cellH:    DefaultCellHeight,
		cells:    make([]Cell, cols*rows),
		renderer: lipgloss.DefaultRenderer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// PixelSize returns the widget size the grid represents.
func (c *Canvas) PixelSize() (int, int) {
	return c.cols * c.cellW, c.rows * c.cellH
}

// Size returns the grid dimensions in cells.
func (c *Canvas) Size() (int, int) {
	return c.cols, c.rows
}

// At returns the cell at col, row. Out of range positions yield an empty
// cell.
func (c *Canvas) At(col, row int) Cell {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return Cell{}
	}
	return c.cells[row*c.cols+col]
}

// Column returns the cell column holding local x.
func (c *Canvas) Column(x int) int {
	w, _ := c.PixelSize()
	return progress.FloorDiv(x+w/2, c.cellW)
}

// Clear empties every cell.
func (c *Canvas) Clear() {
	clear(c.cells)
}

// center returns the local pixel position of the center of a cell.
func (c *Canvas) center(col, row int) (float64, float64) {
	w, h := c.PixelSize()
	x := float64(col*c.cellW+c.cellW/2) - float64(w/2)
	y := float64(row*c.cellH+c.cellH/2) - float64(h/2)
	return x, y
}

// bounds returns the cell range that may intersect r.
func (c *Canvas) bounds(r image.Rectangle) (int, int, int, int) {
	w, h := c.PixelSize()
	c0 := max(0, progress.FloorDiv(r.Min.X+w/2, c.cellW))
	c1 := min(c.cols-1, progress.FloorDiv(r.Max.X+w/2, c.cellW))
	r0 := max(0, progress.FloorDiv(r.Min.Y+h/2, c.cellH))
	r1 := min(c.rows-1, progress.FloorDiv(r.Max.Y+h/2, c.cellH))
	return c0, c1, r0, r1
}

func (c *Canvas) paint(r image.Rectangle, inside func(x, y float64) bool, col color.Color) {
	if !visible(col) {
		return
	}
	c0, c1, r0, r1 := c.bounds(r)
	for row := r0; row <= r1; row++ {
		for cl := c0; cl <= c1; cl++ {
			x, y := c.center(cl, row)
			if inside(x, y) {
				cell := &c.cells[row*c.cols+cl]
				cell.Bg = col
				cell.Rune = 0
			}
		}
	}
}

func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}
	c.paint(r, func(x, y float64) bool {
		return x >= float64(r.Min.X) && x < float64(r.Max.X) && y >= float64(r.Min.Y) && y < float64(r.Max.Y)
	}, col)
}

// FillRoundRect fills r. Radii are far below cell resolution and ignored.
func (c *Canvas) FillRoundRect(r image.Rectangle, _ render.Corners, col color.Color) {
	c.FillRect(r, col)
}

func (c *Canvas) FillPath(points []image.Point, col color.Color) {
	if len(points) < 3 {
		return
	}
	bounds := image.Rectangle{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		bounds = bounds.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	c.paint(bounds, func(x, y float64) bool {
		return containsPoint(points, x, y)
	}, col)
}

// DrawImage fills r with the average opaque color of img.
func (c *Canvas) DrawImage(img image.Image, r image.Rectangle) {
	if img == nil {
		return
	}
	c.FillRect(r, average(img))
}

// DrawText writes text starting at the column holding x, on the row holding
// the middle of the glyph box. Wide runes take two cells.
func (c *Canvas) DrawText(text string, x, baseline int, size float64, col color.Color) {
	if text == "" {
		return
	}
	_, h := c.PixelSize()
	row := progress.FloorDiv(baseline-int(size/2)+h/2, c.cellH)
	if row < 0 || row >= c.rows {
		return
	}
	cl := c.Column(x)
	for _, ch := range text {
		w := lipgloss.Width(string(ch))
		if w == 0 {
			continue
		}
		if cl >= 0 && cl+w <= c.cols {
			c.put(row, cl, ch, col)
			if w == 2 {
				c.put(row, cl+1, Continuation, col)
			}
		}
		cl += w
	}
}

// put writes ch at (row, cl), blanking the halves of any wide rune it
// splits.
func (c *Canvas) put(row, cl int, ch rune, col color.Color) {
	i := row*c.cols + cl
	if c.cells[i].Rune == Continuation && ch != Continuation && cl > 0 {
		c.cells[i-1].Rune = 0
	}
	if c.cells[i].Rune != Continuation && cl+1 < c.cols && c.cells[i+1].Rune == Continuation {
		c.cells[i+1].Rune = 0
	}
	c.cells[i].Rune = ch
	c.cells[i].Fg = col
}

// MeasureText returns the display width of text in pixels.
func (c *Canvas) MeasureText(text string, _ float64) int {
	return lipgloss.Width(text) * c.cellW
}

// String renders the grid with lipgloss styles, one line per row.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var style lipgloss.Style
		var key string
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(style.Render(run.String()))
				run.Reset()
			}
		}
		for cl := 0; cl < c.cols; cl++ {
			cell := c.cells[row*c.cols+cl]
			k := hex(cell.Fg) + "/" + hex(cell.Bg)
			if k != key {
				flush()
				key = k
				style = c.style(cell)
			}
			if cell.Rune == Continuation {
				continue
			}
			run.WriteRune(glyph(cell))
		}
		flush()
	}
	return b.String()
}

// Plain renders the grid without styling: painted cells become blocks and
// text keeps its runes.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for cl := 0; cl < c.cols; cl++ {
			cell := c.cells[row*c.cols+cl]
			switch {
			case cell.Rune == Continuation:
			case cell.Rune != 0:
				b.WriteRune(cell.Rune)
			case cell.Bg != nil:
				b.WriteRune('█')
			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

func (c *Canvas) style(cell Cell) lipgloss.Style {
	s := c.renderer.NewStyle()
	if cell.Fg != nil {
		s = s.Foreground(lipgloss.Color(hex(cell.Fg)))
	}
	if cell.Bg != nil {
		s = s.Background(lipgloss.Color(hex(cell.Bg)))
	}
	return s
}

func glyph(cell Cell) rune {
	if cell.Rune != 0 {
		return cell.Rune
	}
	return ' '
}

func hex(col color.Color) string {
	if col == nil {
		return ""
	}
	r, g, b, _ := col.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func visible(col color.Color) bool {
	if col == nil {
		return false
	}
	_, _, _, a := col.RGBA()
	return a > 0
}

func average(img image.Image) color.Color {
	var r, g, b, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			if ca < 0x8000 {
				continue
			}
			// un-premultiply
			r += uint64(cr) * 0xffff / uint64(ca)
			g += uint64(cg) * 0xffff / uint64(ca)
			b += uint64(cb) * 0xffff / uint64(ca)
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return color.RGBA{R: uint8(r / n >> 8), G: uint8(g / n >> 8), B: uint8(b / n >> 8), A: 0xff}
}

// containsPoint is an even-odd ray cast.
func containsPoint(poly []image.Point, x, y float64) bool {
	in := false
	j := len(poly) - 1
	for i := range poly {
		xi, yi := float64(poly[i].X), float64(poly[i].Y)
		xj, yj := float64(poly[j].X), float64(poly[j].Y)
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			in = !in
		}
		j = i
	}
	return in
}
