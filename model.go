package foiltool

import (
	"fmt"
	"math"
)

// Point is a single airfoil coordinate sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Origin is the leading edge in the usual airfoil convention.
var Origin = Point{}

// PointSet is an ordered sequence of points.
// The order defines the polyline that is drawn.
//
// A PointSet is never modified after it has been read;
// all transforms return a new set.
type PointSet []Point

// Len returns the number of points.
func (p PointSet) Len() int {
	return len(p)
}

// Clone returns a copy of the point set.
func (p PointSet) Clone() PointSet {
	if p == nil {
		return nil
	}
	c := make(PointSet, len(p))
	copy(c, p)
	return c
}

// Centroid is the arithmetic mean of all points.
// It is recomputed on every call.
//
// Returns an "empty input" error if the set has no points.
func (p PointSet) Centroid() (Point, error) {
	if len(p) == 0 {
		return Point{}, NewEmptyInputError("centroid")
	}

	var sx, sy float64
	for _, pt := range p {
		sx += pt.X
		sy += pt.Y
	}
	n := float64(len(p))

	return Point{X: sx / n, Y: sy / n}, nil
}

// Bounds returns the lower left and upper right corner of the bounding box.
// Both are the zero Point for an empty set.
func (p PointSet) Bounds() (Point, Point) {
	if len(p) == 0 {
		return Point{}, Point{}
	}

	min := Point{X: math.Inf(1), Y: math.Inf(1)}
	max := Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, pt := range p {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}

	return min, max
}

// Chord is the extent of the profile along the X axis.
func (p PointSet) Chord() float64 {
	min, max := p.Bounds()
	return max.X - min.X
}

// Validate checks that all coordinates are finite numbers.
func (p PointSet) Validate() error {
	for i, pt := range p {
		if math.IsNaN(pt.X) || math.IsInf(pt.X, 0) || math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
			return NewValidationError("point %d has a non-finite coordinate %v", i, pt)
		}
	}
	return nil
}
