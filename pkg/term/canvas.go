package term

import (
	"math"

	"github.com/akeil/foiltool"
)

// Cell contents, later layers overwrite earlier ones.
const (
	runeOriginal    = '•'
	runeTransformed = '·'
	runeReference   = '◉'
)

type layer int

const (
	layerNone layer = iota
	layerOriginal
	layerTransformed
	layerReference
)

// canvas is a grid of terminal cells that profiles are plotted onto.
type canvas struct {
	w, h  int
	cells []layer
}

func newCanvas(w, h int) *canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &canvas{w: w, h: h, cells: make([]layer, w*h)}
}

func (c *canvas) at(x, y int) layer {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return layerNone
	}
	return c.cells[y*c.w+x]
}

func (c *canvas) set(x, y int, l layer) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = l
}

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// projection maps data coordinates to cells with equal scaling on both axes,
// taking the cell aspect into account.
type projection struct {
	minX, minY float64
	sx, sy     float64
	offX, offY float64
	h          int
}

func newProjection(w, h int, sets ...foiltool.PointSet) projection {
	var all foiltool.PointSet
	for _, s := range sets {
		all = append(all, s...)
	}
	min, max := all.Bounds()
	dx := math.Max(max.X-min.X, 1e-9)
	dy := math.Max(max.Y-min.Y, 1e-9)

	// cells per data unit, limited by the tighter axis
	usableW := float64(w - 1)
	usableH := float64(h-1) * cellAspect
	s := math.Min(usableW/dx, usableH/dy)

	return projection{
		minX: min.X,
		minY: min.Y,
		sx:   s,
		sy:   s / cellAspect,
		offX: (usableW - dx*s) / 2,
		offY: (usableH - dy*s) / 2 / cellAspect,
		h:    h,
	}
}

func (p projection) cell(pt foiltool.Point) (int, int) {
	x := p.offX + (pt.X-p.minX)*p.sx
	y := float64(p.h-1) - p.offY - (pt.Y-p.minY)*p.sy
	return int(math.Round(x)), int(math.Round(y))
}

// polyline draws connected segments through all points.
func (c *canvas) polyline(p projection, pts foiltool.PointSet, l layer) {
	for i, pt := range pts {
		x, y := p.cell(pt)
		if i == 0 {
			c.set(x, y, l)
			continue
		}
		x0, y0 := p.cell(pts[i-1])
		c.line(x0, y0, x, y, l)
	}
}

// line is Bresenham's algorithm.
func (c *canvas) line(x0, y0, x1, y1 int, l layer) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		c.set(x0, y0, l)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
