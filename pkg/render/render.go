package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"github.com/akeil/foiltool/pkg/controller"
)

// Format is an image file format for rendered frames.
type Format int

const (
	PNG Format = iota
	WebP
	TGA
)

var formatNames = map[Format]string{
	PNG:  "png",
	WebP: "webp",
	TGA:  "tga",
}

func (f Format) String() string {
	name, ok := formatNames[f]
	if !ok {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return name
}

// Ext is the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat looks up an image format by name.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	for f, name := range formatNames {
		if s == name {
			return f, nil
		}
	}
	return PNG, fmt.Errorf("unsupported image format %q, choose one of 'png', 'webp', 'tga'", s)
}

// FormatFromPath determines the image format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Encode writes the image in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case TGA:
		return tga.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %v", f)
	}
}

// Frame draws a single frame and writes it to the given writer.
func (c *Context) Frame(cmd *controller.RenderCommand, f Format, w io.Writer) error {
	img, err := c.Image(cmd)
	if err != nil {
		return err
	}
	return Encode(w, img, f)
}
