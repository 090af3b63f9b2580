package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"github.com/fogleman/gg"
)

// EncodeGIF writes frames as a looping animated GIF, each shown for delay.
func EncodeGIF(w io.Writer, frames []image.Image, delay time.Duration) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	centis := int(delay / (10 * time.Millisecond))
	if centis < 1 {
		centis = 1
	}

	anim := &gif.GIF{}
	for _, frame := range frames {
		bounds := frame.Bounds()
		paletted := image.NewPaletted(bounds, palette.WebSafe)
		draw.FloydSteinberg.Draw(paletted, bounds, frame, bounds.Min)
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, centis)
	}
	return gif.EncodeAll(w, anim)
}

// GiftIcon draws a size x size gift box in c, used as the default marker
// icon.
func GiftIcon(size int, c color.Color) image.Image {
	if size <= 0 {
		size = 1
	}
	s := float64(size)
	dc := gg.NewContext(size, size)
	dc.SetColor(c)

	// lid
	dc.DrawRoundedRectangle(s*0.08, s*0.28, s*0.84, s*0.2, s*0.04)
	dc.Fill()
	// box
	dc.DrawRectangle(s*0.14, s*0.5, s*0.72, s*0.44)
	dc.Fill()
	// bow
	dc.DrawEllipse(s*0.36, s*0.18, s*0.13, s*0.09)
	dc.DrawEllipse(s*0.64, s*0.18, s*0.13, s*0.09)
	dc.Fill()

	// ribbon
	dc.SetRGBA(1, 1, 1, 0.85)
	dc.DrawRectangle(s*0.45, s*0.28, s*0.1, s*0.66)
	dc.Fill()
	return dc.Image()
}
