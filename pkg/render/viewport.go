package render

import (
	"math"

	"github.com/akeil/foiltool"
)

// viewport maps data coordinates to pixels with equal scaling on both axes.
// Y grows upwards in data space and downwards in pixel space.
type viewport struct {
	min, max foiltool.Point
	scale    float64
	left     float64
	bottom   float64
}

// fit creates a viewport that shows all given points inside the pixel
// rectangle (x0, y0) - (x1, y1).
func fit(x0, y0, x1, y1 float64, sets []foiltool.PointSet, extra ...foiltool.Point) viewport {
	var all foiltool.PointSet
	for _, s := range sets {
		all = append(all, s...)
	}
	all = append(all, extra...)

	min, max := all.Bounds()
	dx := max.X - min.X
	dy := max.Y - min.Y

	// degenerate data, i.e. a single point or everything collapsed
	if dx == 0 && dy == 0 {
		dx, dy = 1, 1
	}

	// 5% padding on each side
	pad := 0.05 * math.Max(dx, dy)
	min.X -= pad
	min.Y -= pad
	max.X += pad
	max.Y += pad
	dx = max.X - min.X
	dy = max.Y - min.Y

	w := x1 - x0
	h := y1 - y0
	scale := math.Min(w/dx, h/dy)

	// center the data in the available space
	left := x0 + (w-dx*scale)/2
	bottom := y1 - (h-dy*scale)/2

	// extend the visible range to the full pixel rectangle
	visMin := foiltool.Point{
		X: min.X - (left-x0)/scale,
		Y: min.Y - (y1-bottom)/scale,
	}
	visMax := foiltool.Point{
		X: visMin.X + w/scale,
		Y: visMin.Y + h/scale,
	}

	return viewport{
		min:    visMin,
		max:    visMax,
		scale:  scale,
		left:   x0,
		bottom: y1,
	}
}

// project converts a data point to pixel coordinates.
func (v viewport) project(p foiltool.Point) (float64, float64) {
	x := v.left + (p.X-v.min.X)*v.scale
	y := v.bottom - (p.Y-v.min.Y)*v.scale
	return x, y
}

// ticks returns the positions of grid lines between lo and hi,
// spaced at 1, 2 or 5 times a power of ten.
func ticks(lo, hi float64, approx int) []float64 {
	span := hi - lo
	if span <= 0 || approx < 1 || math.IsInf(span, 0) || math.IsNaN(span) {
		return nil
	}

	raw := span / float64(approx)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := mag
	for _, f := range []float64{1, 2, 5, 10} {
		step = f * mag
		if step >= raw {
			break
		}
	}

	first := math.Ceil(lo / step)
	last := math.Floor(hi / step)

	var result []float64
	for i := first; i <= last; i++ {
		// +0 turns -0 into 0
		result = append(result, i*step+0)
	}
	return result
}
