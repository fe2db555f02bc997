package foiltool

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func assertPointsInDelta(t *testing.T, expected, actual PointSet) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i].X, actual[i].X, tolerance, "x of point %d", i)
		assert.InDelta(t, expected[i].Y, actual[i].Y, tolerance, "y of point %d", i)
	}
}

func randomSet(r *rand.Rand, n int) PointSet {
	p := make(PointSet, n)
	for i := range p {
		p[i] = Point{X: r.Float64()*2 - 0.5, Y: r.Float64() - 0.5}
	}
	return p
}

func TestRotateAboutOriginUnitSquare(t *testing.T) {
	rotated := RotateAboutOrigin(unitSquare, 90)
	expected := PointSet{{0, 0}, {0, 1}, {-1, 1}, {-1, 0}}
	assertPointsInDelta(t, expected, rotated)

	// input untouched
	assert.Equal(t, PointSet{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, unitSquare)
}

func TestScaleAboutCentroidUnitSquare(t *testing.T) {
	scaled, err := ScaleAboutCentroid(unitSquare, 2.0)
	require.NoError(t, err)

	expected := PointSet{{-0.5, -0.5}, {1.5, -0.5}, {1.5, 1.5}, {-0.5, 1.5}}
	assertPointsInDelta(t, expected, scaled)
}

func TestIdentityTransforms(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		p := randomSet(r, 1+r.Intn(200))

		assertPointsInDelta(t, p, RotateAboutOrigin(p, 0))

		rotated, err := RotateAboutCentroid(p, 0)
		require.NoError(t, err)
		assertPointsInDelta(t, p, rotated)

		scaled, err := ScaleAboutCentroid(p, 1)
		require.NoError(t, err)
		assertPointsInDelta(t, p, scaled)
	}
}

func TestRotateInvertible(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		p := randomSet(r, 50)
		angle := r.Float64()*360 - 180

		back := RotateAboutOrigin(RotateAboutOrigin(p, angle), -angle)
		assertPointsInDelta(t, p, back)
	}
}

func TestCentroidPreserved(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		p := randomSet(r, 100)
		c, err := p.Centroid()
		require.NoError(t, err)

		angle := r.Float64()*360 - 180
		rotated, err := RotateAboutCentroid(p, angle)
		require.NoError(t, err)
		rc, err := rotated.Centroid()
		require.NoError(t, err)
		assert.InDelta(t, c.X, rc.X, tolerance)
		assert.InDelta(t, c.Y, rc.Y, tolerance)

		s := r.Float64()*4 - 2
		scaled, err := ScaleAboutCentroid(p, s)
		require.NoError(t, err)
		sc, err := scaled.Centroid()
		require.NoError(t, err)
		assert.InDelta(t, c.X, sc.X, tolerance)
		assert.InDelta(t, c.Y, sc.Y, tolerance)
	}
}

func TestScaleEdgeFactors(t *testing.T) {
	collapsed, err := ScaleAboutCentroid(unitSquare, 0)
	require.NoError(t, err)
	for _, pt := range collapsed {
		assert.Equal(t, Point{0.5, 0.5}, pt)
	}

	reflected, err := ScaleAboutCentroid(unitSquare, -1)
	require.NoError(t, err)
	expected := PointSet{{1, 1}, {0, 1}, {0, 0}, {1, 0}}
	assertPointsInDelta(t, expected, reflected)
}

func TestEmptyInput(t *testing.T) {
	rotated, err := RotateAboutCentroid(PointSet{}, 30)
	assert.True(t, IsEmptyInput(err), "expected empty input error, got %v", err)
	assert.Nil(t, rotated)

	scaled, err := ScaleAboutCentroid(nil, 2)
	assert.True(t, IsEmptyInput(err), "expected empty input error, got %v", err)
	assert.Nil(t, scaled)

	// the origin does not depend on the data
	assert.Empty(t, RotateAboutOrigin(PointSet{}, 30))
}

func TestRotateAboutCentroidSquare(t *testing.T) {
	rotated, err := RotateAboutCentroid(unitSquare, 90)
	require.NoError(t, err)

	expected := PointSet{{1, 0}, {1, 1}, {0, 1}, {0, 0}}
	assertPointsInDelta(t, expected, rotated)
}

func TestScaleMatchesFormula(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 20; i++ {
		p := randomSet(r, 30)
		c, err := p.Centroid()
		require.NoError(t, err)

		s := r.Float64()*4 - 2
		scaled, err := ScaleAboutCentroid(p, s)
		require.NoError(t, err)

		expected := make(PointSet, len(p))
		for j, pt := range p {
			expected[j] = Point{X: c.X + (pt.X-c.X)*s, Y: c.Y + (pt.Y-c.Y)*s}
		}
		assertPointsInDelta(t, expected, scaled)
	}
}
