package render

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/akeil/foiltool"
	"github.com/akeil/foiltool/internal/imaging"
	"github.com/akeil/foiltool/internal/logging"
	"github.com/akeil/foiltool/pkg/controller"
)

// Layout in output pixels.
const (
	marginTop    = 36
	marginBottom = 28
	marginLeft   = 56
	marginRight  = 20
	markerRadius = 4
	legendLine   = 24
)

var dashPattern = []float64{8, 5}

// Image draws the given frame.
//
// The plot shows the original profile as a solid line, the transformed
// profile as a dashed line, the reference point as a dot, a dashed grid,
// the title and a legend. Both axes use the same scale.
func (c *Context) Image(cmd *controller.RenderCommand) (*image.RGBA, error) {
	if cmd == nil {
		return nil, fmt.Errorf("no frame to render")
	}
	if c.Width <= marginLeft+marginRight || c.Height <= marginTop+marginBottom {
		return nil, fmt.Errorf("image size %dx%d is too small", c.Width, c.Height)
	}
	logging.Debug("Render %v frame, %d points, %dx%d", cmd.Mode, len(cmd.Original), c.Width, c.Height)

	ss := c.supersample()
	vp := fit(marginLeft, marginTop, float64(c.Width-marginRight), float64(c.Height-marginBottom),
		[]foiltool.PointSet{cmd.Original, cmd.Transformed}, cmd.Reference)

	// geometry is drawn at supersampled size ...
	big := image.NewRGBA(image.Rect(0, 0, c.Width*ss, c.Height*ss))
	imaging.Fill(big, c.Palette.Background)

	gc := draw2dimg.NewGraphicContext(big)
	gc.Scale(float64(ss), float64(ss))
	gc.SetLineCap(draw2d.RoundCap)
	gc.SetLineJoin(draw2d.RoundJoin)

	xTicks := ticks(vp.min.X, vp.max.X, 8)
	yTicks := ticks(vp.min.Y, vp.max.Y, 6)
	c.drawGrid(gc, vp, xTicks, yTicks)

	drawPolyline(gc, vp, cmd.Original, c.Palette.Original, c.LineWidth, nil)
	drawPolyline(gc, vp, cmd.Transformed, c.Palette.Transformed, c.LineWidth, dashPattern)
	c.drawReference(gc, vp, cmd.Reference)
	c.drawLegendLines(gc)

	// ... text is drawn at output size
	dst := imaging.Downsample(big, c.Width, c.Height)
	c.drawLabels(dst, vp, xTicks, yTicks, cmd)

	return dst, nil
}

func (c *Context) drawGrid(gc *draw2dimg.GraphicContext, vp viewport, xTicks, yTicks []float64) {
	gc.Save()
	defer gc.Restore()

	gc.SetStrokeColor(c.Palette.Grid)
	gc.SetLineWidth(1)
	gc.SetLineDash([]float64{4, 4}, 0)

	for _, x := range xTicks {
		px, _ := vp.project(foiltool.Point{X: x})
		gc.BeginPath()
		gc.MoveTo(px, marginTop)
		gc.LineTo(px, float64(c.Height-marginBottom))
		gc.Stroke()
	}
	for _, y := range yTicks {
		_, py := vp.project(foiltool.Point{Y: y})
		gc.BeginPath()
		gc.MoveTo(marginLeft, py)
		gc.LineTo(float64(c.Width-marginRight), py)
		gc.Stroke()
	}

	// frame around the plot area
	gc.SetLineDash(nil, 0)
	gc.SetStrokeColor(c.Palette.Text)
	gc.BeginPath()
	draw2dkit.Rectangle(gc, marginLeft, marginTop, float64(c.Width-marginRight), float64(c.Height-marginBottom))
	gc.Stroke()
}

func drawPolyline(gc *draw2dimg.GraphicContext, vp viewport, p foiltool.PointSet, col color.Color, width float64, dash []float64) {
	if len(p) < 2 {
		return
	}

	gc.Save()
	defer gc.Restore()

	gc.SetStrokeColor(col)
	gc.SetLineWidth(width)
	if dash != nil {
		gc.SetLineDash(dash, 0)
	}

	gc.BeginPath()
	x, y := vp.project(p[0])
	gc.MoveTo(x, y)
	for _, pt := range p[1:] {
		x, y = vp.project(pt)
		gc.LineTo(x, y)
	}
	gc.Stroke()
}

func (c *Context) drawReference(gc *draw2dimg.GraphicContext, vp viewport, ref foiltool.Point) {
	gc.Save()
	defer gc.Restore()

	x, y := vp.project(ref)
	gc.SetFillColor(c.Palette.Reference)
	gc.BeginPath()
	draw2dkit.Circle(gc, x, y, markerRadius)
	gc.Fill()
}

// legend position, top right inside the plot area
func (c *Context) legendOrigin() (float64, float64) {
	return float64(c.Width-marginRight) - 190, marginTop + 14
}

func (c *Context) drawLegendLines(gc *draw2dimg.GraphicContext) {
	x, y := c.legendOrigin()

	gc.Save()
	defer gc.Restore()

	gc.SetFillColor(c.Palette.Background)
	gc.SetStrokeColor(c.Palette.Grid)
	gc.SetLineWidth(1)
	gc.BeginPath()
	draw2dkit.Rectangle(gc, x-8, y-10, x+182, y+28)
	gc.FillStroke()

	gc.SetLineWidth(c.LineWidth)
	gc.SetStrokeColor(c.Palette.Original)
	gc.BeginPath()
	gc.MoveTo(x, y)
	gc.LineTo(x+legendLine, y)
	gc.Stroke()

	gc.SetStrokeColor(c.Palette.Transformed)
	gc.SetLineDash([]float64{6, 4}, 0)
	gc.BeginPath()
	gc.MoveTo(x, y+18)
	gc.LineTo(x+legendLine, y+18)
	gc.Stroke()
}

func (c *Context) drawLabels(dst *image.RGBA, vp viewport, xTicks, yTicks []float64, cmd *controller.RenderCommand) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.Palette.Text),
		Face: basicfont.Face7x13,
	}

	drawString := func(x, y int, s string) {
		d.Dot = fixed.P(x, y)
		d.DrawString(s)
	}
	width := func(s string) int {
		return d.MeasureString(s).Ceil()
	}

	// title, centered
	drawString((c.Width-width(cmd.Title))/2, marginTop-14, cmd.Title)

	bottom := c.Height - marginBottom
	for _, x := range xTicks {
		px, _ := vp.project(foiltool.Point{X: x})
		s := formatTick(x)
		drawString(int(px)-width(s)/2, bottom+15, s)
	}
	for _, y := range yTicks {
		_, py := vp.project(foiltool.Point{Y: y})
		s := formatTick(y)
		drawString(marginLeft-6-width(s), int(py)+4, s)
	}

	lx, ly := c.legendOrigin()
	drawString(int(lx)+legendLine+8, int(ly)+4, cmd.Legend[0])
	drawString(int(lx)+legendLine+8, int(ly)+22, cmd.Legend[1])

	// axis names
	drawString(c.Width-marginRight-8, bottom+26, "X")
	drawString(8, marginTop-2, "Y")
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
