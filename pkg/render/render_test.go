package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/foiltool"
	"github.com/akeil/foiltool/internal/imaging"
	"github.com/akeil/foiltool/pkg/controller"
)

func testFrame(t *testing.T, m controller.Mode) *controller.RenderCommand {
	t.Helper()
	points, err := foiltool.ReadFile("../../testdata/aerofoil.csv", foiltool.ReadOptions{})
	require.NoError(t, err)

	c := controller.New(points).WithDefaults(20, 1.5)
	cmd, err := c.HandleEvent(controller.SelectMode(m))
	require.NoError(t, err)
	return cmd
}

func testContext() *Context {
	c := NewContext(400, 300, DefaultPalette())
	c.Supersample = 1
	c.LineWidth = 3
	return c
}

func TestImage(t *testing.T) {
	c := testContext()
	for _, m := range controller.Modes {
		img, err := c.Image(testFrame(t, m))
		require.NoError(t, err, "mode %v", m)

		assert.Equal(t, 400, img.Bounds().Dx())
		assert.Equal(t, 300, img.Bounds().Dy())

		// corners are outside the plot
		assert.Equal(t, color.RGBAModel.Convert(c.Palette.Background), img.At(0, img.Bounds().Dy()-1), "mode %v", m)

		assert.NotZero(t, imaging.CountColor(img, c.Palette.Original), "original not drawn in mode %v", m)
		assert.NotZero(t, imaging.CountColor(img, c.Palette.Transformed), "transformed not drawn in mode %v", m)
	}
}

func TestImageSupersampled(t *testing.T) {
	c := NewContext(200, 150, DefaultPalette())
	img, err := c.Image(testFrame(t, controller.Scale))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestImageDegenerate(t *testing.T) {
	c := testContext()

	// a single point, everything collapses
	cmd, err := controller.New(foiltool.PointSet{{X: 1, Y: 1}}).HandleEvent(controller.SelectMode(controller.Scale))
	require.NoError(t, err)
	_, err = c.Image(cmd)
	assert.NoError(t, err)

	_, err = c.Image(nil)
	assert.Error(t, err)

	small := NewContext(10, 10, DefaultPalette())
	_, err = small.Image(cmd)
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	c := testContext()
	cmd := testFrame(t, controller.CentroidTwist)

	var buf bytes.Buffer
	require.NoError(t, c.Frame(cmd, PNG, &buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())

	buf.Reset()
	require.NoError(t, c.Frame(cmd, TGA, &buf))
	img, err = tga.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dy())

	buf.Reset()
	require.NoError(t, c.Frame(cmd, WebP, &buf))
	data := buf.Bytes()
	require.True(t, len(data) > 12)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"png":  PNG,
		".PNG": PNG,
		"webp": WebP,
		"tga":  TGA,
	}
	for s, expected := range cases {
		f, err := ParseFormat(s)
		if assert.NoError(t, err, s) {
			assert.Equal(t, expected, f, s)
		}
	}

	_, err := ParseFormat("gif")
	assert.Error(t, err)

	f, err := FormatFromPath("out/frame-01.webp")
	assert.NoError(t, err)
	assert.Equal(t, WebP, f)
	assert.Equal(t, ".webp", f.Ext())
}

func TestPDF(t *testing.T) {
	c := testContext()
	var cmds []*controller.RenderCommand
	for _, m := range controller.Modes {
		cmds = append(cmds, testFrame(t, m))
	}

	var buf bytes.Buffer
	err := c.PDF("aerofoil", cmds, &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	err = c.PDF("empty", nil, &buf)
	assert.Error(t, err)
}

func TestTicks(t *testing.T) {
	assert.InDeltaSlice(t, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}, ticks(0, 1, 5), 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, ticks(-0.05, 1.05, 5), 1e-12)
	assert.InDeltaSlice(t, []float64{-10, 0, 10}, ticks(-12, 12, 4), 1e-12)
	assert.Empty(t, ticks(1, 1, 5))
}

func TestFitKeepsAspect(t *testing.T) {
	sets := []foiltool.PointSet{{{X: 0, Y: 0}, {X: 2, Y: 1}}}
	vp := fit(0, 0, 400, 400, sets)

	x0, y0 := vp.project(foiltool.Point{X: 0, Y: 0})
	x1, y1 := vp.project(foiltool.Point{X: 1, Y: 1})
	assert.InDelta(t, x1-x0, y0-y1, 1e-9, "unit square should stay square")

	// everything within the rectangle
	x2, y2 := vp.project(foiltool.Point{X: 2, Y: 1})
	for _, v := range []float64{x0, y0, x2, y2} {
		assert.True(t, v >= 0 && v <= 400, "%v outside viewport", v)
	}
}
