// Package raster implements render.Canvas on an in-memory image.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/alexisbeaulieu97/giftprogress/internal/render"
)

// Canvas draws into an RGBA image whose center is the widget origin.
type Canvas struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[float64]font.Face
}

var _ render.Canvas = (*Canvas)(nil)

// New returns a width x height canvas cleared to background. A nil
// background leaves the image transparent.
func New(width, height int, background color.Color) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", width, height)
	}
	ft, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	dc := gg.NewContext(width, height)
	if background != nil {
		dc.SetColor(background)
		dc.Clear()
	}
	dc.Translate(float64(width/2), float64(height/2))

	return &Canvas{dc: dc, font: ft, faces: make(map[float64]font.Face)}, nil
}

// Image returns the canvas pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the cached font faces.
func (c *Canvas) Close() error {
	for size, face := range c.faces {
		_ = face.Close()
		delete(c.faces, size)
	}
	return nil
}

func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	if r.Empty() || col == nil {
		return
	}
	c.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	c.dc.SetColor(col)
	c.dc.Fill()
}

func (c *Canvas) FillRoundRect(r image.Rectangle, radii render.Corners, col color.Color) {
	if r.Empty() || col == nil {
		return
	}
	radii = radii.Clamp(r)
	if radii.IsZero() {
		c.FillRect(r, col)
		return
	}

	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	x1, y1 := float64(r.Max.X), float64(r.Max.Y)
	tl, tr := float64(radii.TopLeft), float64(radii.TopRight)
	br, bl := float64(radii.BottomRight), float64(radii.BottomLeft)

	c.dc.NewSubPath()
	c.dc.MoveTo(x0+tl, y0)
	c.dc.LineTo(x1-tr, y0)
	if tr > 0 {
		c.dc.QuadraticTo(x1, y0, x1, y0+tr)
	}
	c.dc.LineTo(x1, y1-br)
	if br > 0 {
		c.dc.QuadraticTo(x1, y1, x1-br, y1)
	}
	c.dc.LineTo(x0+bl, y1)
	if bl > 0 {
		c.dc.QuadraticTo(x0, y1, x0, y1-bl)
	}
	c.dc.LineTo(x0, y0+tl)
	if tl > 0 {
		c.dc.QuadraticTo(x0, y0, x0+tl, y0)
	}
	c.dc.ClosePath()
	c.dc.SetColor(col)
	c.dc.Fill()
}

func (c *Canvas) FillPath(points []image.Point, col color.Color) {
	if len(points) < 3 || col == nil {
		return
	}
	c.dc.NewSubPath()
	c.dc.MoveTo(float64(points[0].X), float64(points[0].Y))
	for _, p := range points[1:] {
		c.dc.LineTo(float64(p.X), float64(p.Y))
	}
	c.dc.ClosePath()
	c.dc.SetColor(col)
	c.dc.Fill()
}

func (c *Canvas) DrawImage(img image.Image, r image.Rectangle) {
	if img == nil || r.Empty() {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)
	c.dc.DrawImage(scaled, r.Min.X, r.Min.Y)
}

func (c *Canvas) DrawText(text string, x, baseline int, size float64, col color.Color) {
	if text == "" || col == nil {
		return
	}
	c.dc.SetFontFace(c.face(size))
	c.dc.SetColor(col)
	c.dc.DrawString(text, float64(x), float64(baseline))
}

func (c *Canvas) MeasureText(text string, size float64) int {
	c.dc.SetFontFace(c.face(size))
	w, _ := c.dc.MeasureString(text)
	return int(w)
}

func (c *Canvas) face(size float64) font.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(c.font, &truetype.Options{Size: size})
	c.faces[size] = f
	return f
}
