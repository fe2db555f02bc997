package term

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/foiltool"
	"github.com/akeil/foiltool/pkg/controller"
)

var square = foiltool.PointSet{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}

func TestCanvasLine(t *testing.T) {
	c := newCanvas(10, 5)
	c.line(0, 0, 9, 4, layerOriginal)

	assert.Equal(t, layerOriginal, c.at(0, 0))
	assert.Equal(t, layerOriginal, c.at(9, 4))
	assert.Equal(t, layerNone, c.at(9, 0))

	// out of range is ignored
	c.set(20, 20, layerReference)
	assert.Equal(t, layerNone, c.at(20, 20))
}

func TestProjectionCorners(t *testing.T) {
	p := newProjection(41, 11, square)

	// with cells twice as high as wide a unit square is
	// 2 columns per row
	x0, y0 := p.cell(foiltool.Point{X: 0, Y: 0})
	x1, y1 := p.cell(foiltool.Point{X: 1, Y: 1})
	assert.Equal(t, 10, y0)
	assert.Equal(t, 0, y1)
	assert.Equal(t, 20, x1-x0)
}

func newTestViewer(t *testing.T, points foiltool.PointSet) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	return NewViewer(s, controller.New(points)), s
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestEventFor(t *testing.T) {
	v, s := newTestViewer(t, square)
	defer s.Fini()

	e, ok := v.eventFor(key(tcell.KeyRight))
	assert.True(t, ok)
	assert.Equal(t, controller.SetAngle(DefaultAngleStep), e)

	e, ok = v.eventFor(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift))
	assert.True(t, ok)
	assert.Equal(t, controller.SetAngle(-10*DefaultAngleStep), e)

	e, ok = v.eventFor(char('2'))
	assert.True(t, ok)
	assert.Equal(t, controller.SelectMode(controller.Scale), e)

	e, ok = v.eventFor(key(tcell.KeyTab))
	assert.True(t, ok)
	assert.Equal(t, controller.SelectMode(controller.Scale), e)

	_, ok = v.eventFor(char('x'))
	assert.False(t, ok)
}

func TestRun(t *testing.T) {
	v, s := newTestViewer(t, square)
	defer s.Fini()

	var snap *controller.RenderCommand
	v.OnSnapshot = func(cmd *controller.RenderCommand) error {
		snap = cmd
		return nil
	}

	s.InjectKey(tcell.KeyRight, 0, tcell.ModShift) // angle 10
	s.InjectKey(tcell.KeyUp, 0, tcell.ModNone)     // ignored, scale inactive
	s.InjectKey(tcell.KeyRune, '3', tcell.ModNone) // centroid twist
	s.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, v.Run())

	frame := v.Frame()
	require.NotNil(t, frame)
	assert.Equal(t, controller.CentroidTwist, frame.Mode)
	assert.Equal(t, 10.0, frame.Angle)
	assert.Equal(t, controller.DefaultScale, frame.Scale)
	assert.Same(t, frame, snap)
	assert.Equal(t, "snapshot saved", v.Message())

	cells, w, h := s.GetContents()
	require.Equal(t, 80*24, len(cells))
	require.Equal(t, 80, w)
	require.Equal(t, 24, h)

	found := map[rune]bool{}
	for _, c := range cells {
		for _, r := range c.Runes {
			found[r] = true
		}
	}
	assert.True(t, found[runeOriginal], "original profile not on screen")
	assert.True(t, found[runeTransformed], "transformed profile not on screen")
	assert.True(t, found[runeReference], "reference point not on screen")
}

func TestRunEmptyInput(t *testing.T) {
	v, s := newTestViewer(t, foiltool.PointSet{})
	defer s.Fini()

	s.InjectKey(tcell.KeyRune, '2', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, v.Run())

	// the previous frame stays, the error is shown
	require.NotNil(t, v.Frame())
	assert.Equal(t, controller.LeadingEdgeTwist, v.Frame().Mode)
	assert.Contains(t, v.Message(), "empty")
}

func TestSnapshotError(t *testing.T) {
	v, s := newTestViewer(t, square)
	defer s.Fini()

	v.OnSnapshot = func(*controller.RenderCommand) error {
		return errors.New("disk full")
	}
	s.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	require.NoError(t, v.Run())

	assert.Contains(t, v.Message(), "disk full")
}
