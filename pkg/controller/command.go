package controller

import (
	"fmt"

	"github.com/akeil/foiltool"
)

// RenderCommand is everything a renderer needs to draw one frame.
// The renderer draws Original as a solid line, Transformed as a dashed
// line on top and highlights Reference.
type RenderCommand struct {
	Mode        Mode              `json:"mode"`
	Angle       float64           `json:"angle"`
	Scale       float64           `json:"scale"`
	Original    foiltool.PointSet `json:"original"`
	Transformed foiltool.PointSet `json:"transformed"`
	Reference   foiltool.Point    `json:"reference"`
	Title       string            `json:"title"`
	Legend      [2]string         `json:"legend"`
}

// Parameter is the value of the control that is active for the mode.
func (c *RenderCommand) Parameter() float64 {
	if c.Mode == Scale {
		return c.Scale
	}
	return c.Angle
}

func newCommand(points foiltool.PointSet, m Mode, angle, scale float64) (*RenderCommand, error) {
	cmd := &RenderCommand{
		Mode:     m,
		Angle:    angle,
		Scale:    scale,
		Original: points,
	}

	var err error
	switch m {
	case LeadingEdgeTwist:
		cmd.Transformed = foiltool.RotateAboutOrigin(points, angle)
		cmd.Reference = foiltool.Origin
		cmd.Title = fmt.Sprintf("Airfoil twisted by %g° about its leading edge", angle)
		cmd.Legend = [2]string{"Original", fmt.Sprintf("Twisted (%g°)", angle)}
	case CentroidTwist:
		cmd.Transformed, err = foiltool.RotateAboutCentroid(points, angle)
		cmd.Title = fmt.Sprintf("Airfoil twisted by %g° about its centroid", angle)
		cmd.Legend = [2]string{"Original", fmt.Sprintf("Twisted (%g°)", angle)}
	case Scale:
		cmd.Transformed, err = foiltool.ScaleAboutCentroid(points, scale)
		cmd.Title = fmt.Sprintf("Airfoil scaled by factor of %g", scale)
		cmd.Legend = [2]string{"Original", fmt.Sprintf("Scaled (Factor = %g)", scale)}
	default:
		return nil, fmt.Errorf("invalid mode %v", m)
	}
	if err != nil {
		return nil, err
	}

	if m != LeadingEdgeTwist {
		// cannot fail, the transform above already computed it
		cmd.Reference, _ = points.Centroid()
	}

	return cmd, nil
}
