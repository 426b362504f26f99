package svgdraw

import (
	"image"
	"image/color"
	"math"
)

// ImagePattern paints an area with raster content.
// The source pixel (u, v) (relative to the image bounds)
// covers the device point (X + u*ScaleX, Y + v*ScaleY).
// Scales are independent: the content may be stretched.
type ImagePattern struct {
	Image          image.Image
	X, Y           float64
	ScaleX, ScaleY float64
}

// NewImagePattern returns the pattern stretching `img` onto `target`.
func NewImagePattern(img image.Image, target Bounds) ImagePattern {
	size := img.Bounds().Size()
	return ImagePattern{
		Image:  img,
		X:      target.X,
		Y:      target.Y,
		ScaleX: target.W / float64(size.X),
		ScaleY: target.H / float64(size.Y),
	}
}

// Size returns the device rectangle covered by the image.
func (p ImagePattern) Size() Bounds {
	size := p.Image.Bounds().Size()
	return Bounds{X: p.X, Y: p.Y, W: float64(size.X) * p.ScaleX, H: float64(size.Y) * p.ScaleY}
}

// ColorAt samples the image at the device point (x, y),
// using the nearest source pixel.
// Points outside the covered area are transparent.
func (p ImagePattern) ColorAt(x, y float64) color.Color {
	if p.ScaleX == 0 || p.ScaleY == 0 {
		return color.Transparent
	}
	rect := p.Image.Bounds()
	u := int(math.Floor((x - p.X) / p.ScaleX))
	v := int(math.Floor((y - p.Y) / p.ScaleY))
	pt := image.Pt(rect.Min.X+u, rect.Min.Y+v)
	if !pt.In(rect) {
		return color.Transparent
	}
	return p.Image.At(pt.X, pt.Y)
}
