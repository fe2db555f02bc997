package render

import (
	"image/color"
)

// Palette holds the colors used for a plot.
type Palette struct {
	Background  color.Color
	Grid        color.Color
	Text        color.Color
	Original    color.Color
	Transformed color.Color
	Reference   color.Color
}

// DefaultPalette draws the original in blue and the transformed profile
// in red on white.
func DefaultPalette() Palette {
	return Palette{
		Background:  color.White,
		Grid:        color.RGBA{200, 200, 200, 255},
		Text:        color.Black,
		Original:    color.RGBA{0, 0, 255, 255},
		Transformed: color.RGBA{255, 0, 0, 255},
		Reference:   color.Black,
	}
}

// Context holds parameters for rendering operations.
//
// A Context is not modified while rendering and can be shared between
// goroutines.
type Context struct {
	// Width and Height of the output image in pixels.
	Width  int
	Height int
	// Supersample draws the plot at a multiple of the output size
	// and scales it down afterwards.
	Supersample int
	// LineWidth of both profiles in output pixels.
	LineWidth float64
	Palette   Palette
}

// NewContext sets up a new rendering context.
func NewContext(width, height int, p Palette) *Context {
	return &Context{
		Width:       width,
		Height:      height,
		Supersample: 2,
		LineWidth:   2,
		Palette:     p,
	}
}

// DefaultContext renders 1200 x 800 images with the default palette.
func DefaultContext() *Context {
	return NewContext(1200, 800, DefaultPalette())
}

func (c *Context) supersample() int {
	if c.Supersample < 1 {
		return 1
	}
	return c.Supersample
}
