package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"iter"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/giftprogress/internal/app/window"
	"github.com/alexisbeaulieu97/giftprogress/internal/config"
	"github.com/alexisbeaulieu97/giftprogress/internal/logger"
	"github.com/alexisbeaulieu97/giftprogress/internal/render"
	"github.com/alexisbeaulieu97/giftprogress/internal/render/raster"
	"github.com/alexisbeaulieu97/giftprogress/internal/widget"
	gperrors "github.com/alexisbeaulieu97/giftprogress/pkg/errors"
)

type renderOptions struct {
	widget   string
	progress int
	from     int
	animated bool
	out      string
	width    int
	height   int
}

// bar is the part of a widget the render command drives.
type bar interface {
	Resize(width, height int)
	Draw(c render.Canvas)
	Playback(step time.Duration) iter.Seq[float64]
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a bar to an image",
		Long: `Render a gift or space bar at a given progress as PNG. With --from the
transition from that value is written as an animated GIF.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.animated = cmd.Flags().Changed("from")
			cfg, err := root.config()
			if err != nil {
				return err
			}
			log, err := root.logger(cmd)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			return runRender(cmd.OutOrStdout(), cfg, log, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.widget, "widget", "w", "gift", "Bar to render (gift or space)")
	cmd.Flags().IntVarP(&opts.progress, "progress", "p", 0, "Progress to show")
	cmd.Flags().IntVar(&opts.from, "from", 0, "Animate from this progress and write a GIF")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file, - for stdout")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Image width in pixels (default from config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Image height in pixels (default from config)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runRender(stdout io.Writer, cfg *config.Config, log *logger.Logger, opts renderOptions) error {
	width, height := cfg.Render.Width, cfg.Render.Height
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}

	// Frames are stepped by Playback, so the clock never moves.
	clock := func() time.Time { return time.Unix(0, 0) }

	b, set, err := buildBar(cfg, log, opts, clock)
	if err != nil {
		return err
	}
	b.Resize(width, height)

	if !opts.animated {
		set(opts.progress, false)
		c, err := raster.New(width, height, color.White)
		if err != nil {
			return gperrors.NewRenderError(opts.out, err)
		}
		defer c.Close()
		b.Draw(c)
		return writeOutput(stdout, opts.out, c.EncodePNG)
	}

	set(opts.from, false)
	set(opts.progress, true)

	fps := cfg.Animation.FPS
	step := time.Second / time.Duration(fps)
	var frames []image.Image
	for range b.Playback(step) {
		c, err := raster.New(width, height, color.White)
		if err != nil {
			return gperrors.NewRenderError(opts.out, err)
		}
		b.Draw(c)
		frames = append(frames, c.Image())
		_ = c.Close()
	}
	log.DebugFields("frames rendered", map[string]any{"count": len(frames), "widget": opts.widget})

	return writeOutput(stdout, opts.out, func(w io.Writer) error {
		return raster.EncodeGIF(w, frames, step)
	})
}

// buildBar creates the requested widget and returns a setter that commits
// progress on it. The gift bar shows the window holding the target.
func buildBar(cfg *config.Config, log *logger.Logger, opts renderOptions, clock func() time.Time) (bar, func(int, bool), error) {
	switch opts.widget {
	case "gift":
		giftOpts := cfg.GiftOptions(log)
		giftOpts.Clock = clock
		gift, err := widget.NewGiftBar(giftOpts)
		if err != nil {
			return nil, nil, err
		}
		icon := raster.GiftIcon(cfg.Gift.MarkerSize, cfg.MarkerIconColor())
		ctrl, err := window.New(gift, cfg.WindowOptions(icon, log))
		if err != nil {
			return nil, nil, err
		}
		ctrl.Sync(opts.progress)
		return gift, func(p int, animate bool) { gift.SetProgressWith(p, animate, false) }, nil

	case "space":
		spaceOpts := cfg.SpaceOptions(log)
		spaceOpts.Clock = clock
		space, err := widget.NewSpaceBar(spaceOpts)
		if err != nil {
			return nil, nil, err
		}
		segments, dividers := cfg.SpaceDecorations()
		space.SetSegments(segments)
		space.SetDividers(dividers)
		return space, func(p int, animate bool) { space.SetProgressWith(p, animate, false) }, nil
	}

	return nil, nil, gperrors.NewValidationError("widget", fmt.Sprintf("unknown widget %q, want gift or space", opts.widget), nil)
}

func writeOutput(stdout io.Writer, path string, encode func(io.Writer) error) error {
	if path == "-" {
		return encode(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return gperrors.NewRenderError(path, err)
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return gperrors.NewRenderError(path, err)
	}
	if err := f.Close(); err != nil {
		return gperrors.NewRenderError(path, err)
	}
	return nil
}
