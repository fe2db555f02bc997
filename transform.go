package foiltool

import (
	"github.com/akeil/foiltool/internal/affine"
)

// RotateAboutOrigin rotates all points by angle degrees about (0, 0),
// the leading edge.
//
// Each point is multiplied with the rotation matrix
//
//	cos(angle)  -sin(angle)
//	sin(angle)   cos(angle)
//
// The input is not modified.
func RotateAboutOrigin(p PointSet, angle float64) PointSet {
	return RotateAbout(p, Origin, angle)
}

// RotateAbout rotates all points by angle degrees about the given center.
func RotateAbout(p PointSet, center Point, angle float64) PointSet {
	m := affine.Rotation(affine.Rad(angle))
	if center != Origin {
		m = affine.About(m, center.X, center.Y)
	}
	return apply(p, m)
}

// RotateAboutCentroid rotates all points by angle degrees about the
// centroid of the set.
//
// Returns an "empty input" error if the set has no points.
func RotateAboutCentroid(p PointSet, angle float64) (PointSet, error) {
	c, err := p.Centroid()
	if err != nil {
		return nil, Wrap(err, "rotate about centroid")
	}
	return RotateAbout(p, c, angle), nil
}

// ScaleAboutCentroid resizes the profile by factor s, keeping the centroid
// in place: each point becomes centroid + (point - centroid) * s.
//
// Any factor is accepted. 1 is the identity, 0 collapses all points onto the
// centroid and negative factors reflect through the centroid.
//
// Returns an "empty input" error if the set has no points.
func ScaleAboutCentroid(p PointSet, s float64) (PointSet, error) {
	c, err := p.Centroid()
	if err != nil {
		return nil, Wrap(err, "scale about centroid")
	}

	m := affine.About(affine.Scaling(s), c.X, c.Y)
	return apply(p, m), nil
}

func apply(p PointSet, m affine.Matrix) PointSet {
	result := make(PointSet, len(p))
	for i, pt := range p {
		x, y := m.Apply(pt.X, pt.Y)
		result[i] = Point{X: x, Y: y}
	}
	return result
}
