package render_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/giftprogress/internal/decoration"
	"github.com/alexisbeaulieu97/giftprogress/internal/progress"
	"github.com/alexisbeaulieu97/giftprogress/internal/render"
	"github.com/alexisbeaulieu97/giftprogress/internal/render/rendertest"
)

var (
	grey   = color.NRGBA{R: 0xD9, G: 0xD9, B: 0xD9, A: 0xFF}
	orange = color.NRGBA{R: 0xFB, G: 0x7E, B: 0x16, A: 0xFF}
	white  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	text   = color.NRGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}
)

func giftFrame(current int) render.GiftFrame {
	mapper := progress.NewMapper(progress.Range{Min: 10, Max: 20}, 600)
	x := int(mapper.ToOffset(current))
	icon := image.NewRGBA(image.Rect(0, 0, 1, 1))
	set := decoration.Gift(10, 10, 5, decoration.GiftStyle{
		Icon:         icon,
		MarkerWidth:  50,
		MarkerHeight: 50,
		DividerWidth: 4,
		DividerColor: white,
		LabelColor:   text,
	})
	return render.GiftFrame{
		Mapper:        mapper,
		Current:       current,
		Track:         image.Rect(-300, -6, 300, 6),
		Fill:          image.Rect(-300, -6, x, 6),
		Thumb:         image.Rect(x-3, -6, x+3, 6),
		Corner:        6,
		Background:    grey,
		Progress:      orange,
		ThumbColor:    white,
		TextColor:     text,
		TextSize:      30,
		IndicatorText: "15",
		Markers:       set.Markers,
		Dividers:      set.Dividers,
		Labels:        set.Labels,
	}
}

func TestGiftDrawOrder(t *testing.T) {
	t.Parallel()

	rec := &rendertest.Recorder{}
	render.Gift{}.Draw(rec, giftFrame(15))

	require.Equal(t, []rendertest.Kind{
		rendertest.KindRoundRect, // track
		rendertest.KindRoundRect, // fill
		rendertest.KindRect,      // thumb
		rendertest.KindText,      // indicator label
		rendertest.KindPath,      // pointer
		rendertest.KindImage,     // marker at 20
		rendertest.KindRect,      // divider at 20
		rendertest.KindText,      // label 10
		rendertest.KindText,      // label 20
	}, rec.Kinds())
}

func TestGiftSkipsDecorationsAtCurrent(t *testing.T) {
	t.Parallel()

	rec := &rendertest.Recorder{}
	render.Gift{}.Draw(rec, giftFrame(15))

	require.Equal(t, []string{"15", "10", "20"}, rec.Texts())

	images := rec.Filter(rendertest.KindImage)
	require.Len(t, images, 1)
	require.Equal(t, image.Rect(275, -66, 325, -16), images[0].Rect)
}

func TestGiftIndicatorGeometry(t *testing.T) {
	t.Parallel()

	rec := &rendertest.Recorder{}
	render.Gift{}.Draw(rec, giftFrame(15))

	thumb := rec.Ops[2]
	require.Equal(t, image.Rect(-3, -6, 3, 6), thumb.Rect)
	require.Equal(t, color.Color(white), thumb.Color)

	indicator := rec.Ops[3]
	// "15" measures 30px on the recorder: centered on the thumb.
	require.Equal(t, image.Pt(-15, 6+30+render.TextGap), indicator.Rect.Min)

	pointer := rec.Ops[4]
	require.Equal(t, []image.Point{{0, -21}, {-15, -46}, {15, -46}}, pointer.Points)
	require.Equal(t, color.Color(orange), pointer.Color)
}

func TestGiftSkipsEmptyFill(t *testing.T) {
	t.Parallel()

	f := giftFrame(10)
	f.Markers, f.Dividers, f.Labels = nil, nil, nil

	rec := &rendertest.Recorder{}
	render.Gift{}.Draw(rec, f)

	require.Equal(t, []rendertest.Kind{
		rendertest.KindRoundRect,
		rendertest.KindRect,
		rendertest.KindText,
		rendertest.KindPath,
	}, rec.Kinds())
}

func TestGiftLabelFallsBackToTextColor(t *testing.T) {
	t.Parallel()

	f := giftFrame(10)
	f.Markers, f.Dividers = nil, nil
	f.Labels = []decoration.Label{{AtProgress: 20, Text: "20"}}

	rec := &rendertest.Recorder{}
	render.Gift{}.Draw(rec, f)

	texts := rec.Filter(rendertest.KindText)
	require.Equal(t, color.Color(text), texts[len(texts)-1].Color)
}

func spaceFrame(current int, segments bool) render.SpaceFrame {
	mapper := progress.NewMapper(progress.Range{Min: 0, Max: 6}, 600)
	f := render.SpaceFrame{
		Mapper:     mapper,
		Current:    current,
		Track:      image.Rect(-300, -6, 300, 6),
		Fill:       image.Rect(-300, -6, int(mapper.ToOffset(current)), 6),
		Corner:     6,
		Background: grey,
		Progress:   orange,
		Dividers:   decoration.SegmentDividers(0, 6, 2, white),
	}
	if segments {
		f.Segments = decoration.Segments(0, 6, orange, white, grey)
	}
	return f
}

func TestSpaceSegmentsColoredByTone(t *testing.T) {
	t.Parallel()

	rec := &rendertest.Recorder{}
	render.Space{}.Draw(rec, spaceFrame(3, true))

	rounds := rec.Filter(rendertest.KindRoundRect)
	require.Len(t, rounds, 7)

	segs := rounds[1:]
	want := []color.Color{orange, orange, white, grey, grey, grey}
	for i, op := range segs {
		require.Equal(t, want[i], op.Color, "segment %d", i+1)
	}

	require.Equal(t, image.Rect(-300, -6, -200, 6), segs[0].Rect)
	require.Equal(t, render.Leading(6), segs[0].Corners)
	require.True(t, segs[2].Corners.IsZero())
	require.Equal(t, render.Trailing(6), segs[5].Corners)
	require.Equal(t, image.Rect(200, -6, 300, 6), segs[5].Rect)
}

func TestSpaceSkipsDividerAtMax(t *testing.T) {
	t.Parallel()

	rec := &rendertest.Recorder{}
	render.Space{}.Draw(rec, spaceFrame(3, true))

	rects := rec.Filter(rendertest.KindRect)
	require.Len(t, rects, 5)
	require.Equal(t, image.Rect(-201, -6, -199, 6), rects[0].Rect)
}

func TestSpaceWithoutSegmentsFillsToIndicator(t *testing.T) {
	t.Parallel()

	rec := &rendertest.Recorder{}
	render.Space{}.Draw(rec, spaceFrame(3, false))

	rounds := rec.Filter(rendertest.KindRoundRect)
	require.Len(t, rounds, 2)
	require.Equal(t, image.Rect(-300, -6, 0, 6), rounds[1].Rect)
	require.Equal(t, render.Uniform(6), rounds[1].Corners)
}

func TestCornersClamp(t *testing.T) {
	t.Parallel()

	c := render.Uniform(20).Clamp(image.Rect(0, 0, 100, 12))
	require.Equal(t, render.Uniform(6), c)

	merged := render.Leading(4).Merge(render.Trailing(4))
	require.Equal(t, render.Uniform(4), merged)
}
