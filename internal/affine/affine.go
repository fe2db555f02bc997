// Package affine has the 3x3 matrices used to move points around the plane.
//
// Matrices are stored row major:
//
//	m[0] m[1] m[2]
//	m[3] m[4] m[5]
//	m[6] m[7] m[8]
package affine

import (
	"math"
)

// Matrix is an affine transform in homogeneous coordinates.
type Matrix [9]float64

// Identity returns the transform that leaves every point where it is.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Rotation Matrix (CCW in a y-up plane)
//
//	cos(angle)   -sin(angle)    0
//	sin(angle)    cos(angle)    0
//	0             0             1
func Rotation(angle float64) Matrix {
	sin, cos := math.Sincos(angle)

	m := Identity()
	m[0] = cos
	m[1] = -sin

	m[3] = sin
	m[4] = cos

	return m
}

// Translation Matrix:
//
//	1  0  dx
//	0  1  dy
//	0  0  1
func Translation(dx, dy float64) Matrix {
	m := Identity()

	m[2] = dx
	m[5] = dy

	return m
}

// Scaling Matrix (uniform):
//
//	s  0  0
//	0  s  0
//	0  0  1
func Scaling(s float64) Matrix {
	m := Identity()

	m[0] = s
	m[4] = s

	return m
}

// About wraps m so that it acts around (x, y) instead of the origin.
// This is Translate - m - Translate back.
func About(m Matrix, x, y float64) Matrix {
	return Translation(x, y).Multiply(m).Multiply(Translation(-x, -y))
}

// Multiply combines two affine transforms.
// The result applies b first, then a.
func (a Matrix) Multiply(b Matrix) Matrix {
	var m Matrix

	m[0] = a[0]*b[0] + a[1]*b[3] + a[2]*b[6]
	m[1] = a[0]*b[1] + a[1]*b[4] + a[2]*b[7]
	m[2] = a[0]*b[2] + a[1]*b[5] + a[2]*b[8]

	m[3] = a[3]*b[0] + a[4]*b[3] + a[5]*b[6]
	m[4] = a[3]*b[1] + a[4]*b[4] + a[5]*b[7]
	m[5] = a[3]*b[2] + a[4]*b[5] + a[5]*b[8]

	m[6] = a[6]*b[0] + a[7]*b[3] + a[8]*b[6]
	m[7] = a[6]*b[1] + a[7]*b[4] + a[8]*b[7]
	m[8] = a[6]*b[2] + a[7]*b[5] + a[8]*b[8]

	return m
}

// Apply transforms the given x,y point.
func (a Matrix) Apply(x, y float64) (float64, float64) {
	tx := a[0]*x + a[1]*y + a[2]
	ty := a[3]*x + a[4]*y + a[5]
	return tx, ty
}

// Rad converts degrees to radians.
func Rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
