package affine

import (
	"math"
	"testing"
)

func TestRotation(t *testing.T) {
	x := 1.0
	y := 2.0

	rot := Rotation(Rad(90))
	tx, ty := rot.Apply(x, y)

	if math.Round(tx) != -2 {
		t.Errorf("unexpected value for transformed x: %v", tx)
	}
	if math.Round(ty) != 1 {
		t.Errorf("unexpected value for transformed y: %v", ty)
	}

	// rotating around the point itself should leave it in place
	tx, ty = About(rot, x, y).Apply(x, y)
	if math.Abs(tx-x) > 1e-12 {
		t.Errorf("unexpected value for transformed x: %v", tx)
	}
	if math.Abs(ty-y) > 1e-12 {
		t.Errorf("unexpected value for transformed y: %v", ty)
	}
}

func TestScaling(t *testing.T) {
	tx, ty := About(Scaling(2), 0.5, 0.5).Apply(0, 0)
	if tx != -0.5 || ty != -0.5 {
		t.Errorf("unexpected scaled point: (%v, %v)", tx, ty)
	}
}

func TestMultiplyOrder(t *testing.T) {
	// translate first, then rotate
	m := Rotation(Rad(90)).Multiply(Translation(1, 0))
	tx, ty := m.Apply(0, 0)

	if math.Abs(tx) > 1e-12 || math.Abs(ty-1) > 1e-12 {
		t.Errorf("unexpected point: (%v, %v)", tx, ty)
	}
}

func TestIdentity(t *testing.T) {
	m := Identity().Multiply(Identity())
	if m != Identity() {
		t.Errorf("identity times identity is %v", m)
	}
}

func TestScalingZeroCollapses(t *testing.T) {
	m := About(Scaling(0), 0.25, -3)
	for _, p := range [][2]float64{{0, 0}, {1, 1}, {-7.5, 12}} {
		tx, ty := m.Apply(p[0], p[1])
		if tx != 0.25 || ty != -3 {
			t.Errorf("%v did not collapse onto the center: (%v, %v)", p, tx, ty)
		}
	}
}
