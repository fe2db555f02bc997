// Package controller holds the state of the interactive viewer and turns
// user events into render commands.
//
// A Controller is not safe for concurrent use. It is meant to be driven
// from a single event loop.
package controller

import (
	"math"

	"github.com/akeil/foiltool"
	"github.com/akeil/foiltool/internal/logging"
)

// Slider bounds and defaults.
const (
	MinAngle     = -180.0
	MaxAngle     = 180.0
	DefaultAngle = 0.0

	MinScale     = 0.1
	MaxScale     = 2.0
	DefaultScale = 1.0
)

// Controller owns the point set and the current parameters.
type Controller struct {
	points foiltool.PointSet
	mode   Mode
	angle  float64
	scale  float64

	// values restored by Reset
	initAngle float64
	initScale float64
}

// New creates a controller in LeadingEdgeTwist mode with default angle and
// scale. The point set is not copied and must not be modified afterwards.
func New(points foiltool.PointSet) *Controller {
	return &Controller{
		points: points,
		mode:   Modes[0],
		angle:  DefaultAngle,
		scale:  DefaultScale,

		initAngle: DefaultAngle,
		initScale: DefaultScale,
	}
}

// WithDefaults sets the initial angle and scale, which are also the values
// Reset returns to. Values are clamped to the slider bounds.
func (c *Controller) WithDefaults(angle, scale float64) *Controller {
	if !math.IsNaN(angle) {
		c.angle = clamp(angle, MinAngle, MaxAngle)
		c.initAngle = c.angle
	}
	if !math.IsNaN(scale) {
		c.scale = clamp(scale, MinScale, MaxScale)
		c.initScale = c.scale
	}
	return c
}

func (c *Controller) Mode() Mode {
	return c.mode
}

func (c *Controller) Angle() float64 {
	return c.angle
}

func (c *Controller) Scale() float64 {
	return c.scale
}

func (c *Controller) Points() foiltool.PointSet {
	return c.points
}

// AngleActive tells if the angle control has an effect in the current mode.
func (c *Controller) AngleActive() bool {
	return c.mode.IsTwist()
}

// ScaleActive tells if the scale control has an effect in the current mode.
func (c *Controller) ScaleActive() bool {
	return c.mode == Scale
}

// Render computes the frame for the current state.
func (c *Controller) Render() (*RenderCommand, error) {
	return newCommand(c.points, c.mode, c.angle, c.scale)
}

// HandleEvent applies a user event and returns the frame to draw.
//
// Events from a control that is inactive in the current mode are ignored:
// the result is a nil command and a nil error and the state is unchanged.
// The same happens for non-finite slider values.
//
// If the frame cannot be computed (empty point set in a centroid mode),
// the state change is rolled back so that the state matches the frame that
// is still on screen, and the error is returned.
func (c *Controller) HandleEvent(e Event) (*RenderCommand, error) {
	prev := *c

	switch e.Kind {
	case ModeSelected:
		if !e.Mode.Valid() {
			return nil, foiltool.NewValidationError("invalid mode %v", e.Mode)
		}
		c.mode = e.Mode
	case AngleChanged:
		if !c.AngleActive() || math.IsNaN(e.Value) {
			logging.Debug("Ignore %v in mode %v", e, c.mode)
			return nil, nil
		}
		c.angle = clamp(e.Value, MinAngle, MaxAngle)
	case ScaleChanged:
		if !c.ScaleActive() || math.IsNaN(e.Value) {
			logging.Debug("Ignore %v in mode %v", e, c.mode)
			return nil, nil
		}
		c.scale = clamp(e.Value, MinScale, MaxScale)
	default:
		return nil, foiltool.NewValidationError("invalid event kind %v", e.Kind)
	}

	cmd, err := c.Render()
	if err != nil {
		*c = prev
		logging.Warning("Render %v failed: %v", e, err)
		return nil, err
	}

	logging.Debug("Handled %v, mode=%v angle=%g scale=%g", e, c.mode, c.angle, c.scale)
	return cmd, nil
}

// Reset puts the parameters back to their initial values, keeping the mode.
func (c *Controller) Reset() (*RenderCommand, error) {
	prev := *c
	c.angle = c.initAngle
	c.scale = c.initScale

	cmd, err := c.Render()
	if err != nil {
		*c = prev
		return nil, err
	}
	return cmd, nil
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}
