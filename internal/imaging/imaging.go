package imaging

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Downsample creates a copy of the given image, scaled to width x height.
// Used to smooth images that were drawn at a multiple of the target size.
func Downsample(i image.Image, width, height int) *image.RGBA {
	size := image.Rect(0, 0, width, height)
	dst := image.NewRGBA(size)
	if i.Bounds().Eq(size) {
		draw.Draw(dst, size, i, i.Bounds().Min, draw.Src)
		return dst
	}

	s := draw.CatmullRom
	s.Scale(dst, size, i, i.Bounds(), draw.Src, nil)
	return dst
}

// Fill paints the complete destination image with the given color.
func Fill(dst draw.Image, c color.Color) {
	bg := image.NewUniform(c)
	draw.Draw(dst, dst.Bounds(), bg, image.Point{}, draw.Src)
}

// CountColor counts the pixels that have exactly the given color.
func CountColor(i image.Image, c color.Color) int {
	r0, g0, b0, a0 := c.RGBA()
	b := i.Bounds()

	n := 0
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			r, g, b, a := i.At(x, y).RGBA()
			if r == r0 && g == g0 && b == b0 && a == a0 {
				n++
			}
		}
	}
	return n
}
