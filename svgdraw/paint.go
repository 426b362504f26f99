package svgdraw

import (
	"image/color"
)

// Paint is either a PlainColor or a Gradient.
// A nil Paint disables painting.
type Paint interface {
	isPaint()
	// Copy returns a paint which does not share memory with the receiver.
	Copy() Paint
}

// PlainColor is a solid color.
type PlainColor struct {
	color.RGBA
}

func (PlainColor) isPaint() {}

func (c PlainColor) Copy() Paint { return c }

// NewPlainColor returns a solid paint.
func NewPlainColor(r, g, b, a uint8) PlainColor {
	return PlainColor{color.RGBA{R: r, G: g, B: b, A: a}}
}

// GradientUnits is the type for gradient units
type GradientUnits byte

// SVG bounds parameter constants
const (
	ObjectBoundingBox GradientUnits = iota
	UserSpaceOnUse
)

// SpreadMethod is the type for spread parameters
type SpreadMethod byte

// SVG spread parameter constants
const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

// GradStop is a color stop of a gradient.
type GradStop struct {
	StopColor color.Color
	Offset    float64
	Opacity   float64
}

// Gradient holds a description of an SVG 2.0 gradient.
// With ObjectBoundingBox units, Direction is expressed relatively
// to the extent of the painted path, which the backend stores in Bounds
// (see Resolve).
type Gradient struct {
	Direction GradientDirection
	Stops     []GradStop
	Bounds    Bounds // painted extent, for ObjectBoundingBox
	Spread    SpreadMethod
	Units     GradientUnits
}

func (Gradient) isPaint() {}

func (g Gradient) Copy() Paint {
	g.Stops = append([]GradStop(nil), g.Stops...)
	return g
}

// GradientDirection is Linear or Radial
type GradientDirection interface {
	isRadial() bool
}

// x1, y1, x2, y2
type Linear [4]float64

func (Linear) isRadial() bool { return false }

// cx, cy, fx, fy, r, fr
type Radial [6]float64

func (Radial) isRadial() bool { return true }

// Resolve returns the gradient with its Bounds set to
// the painted extent, when using ObjectBoundingBox units.
func (g Gradient) Resolve(extent Bounds) Gradient {
	if g.Units == ObjectBoundingBox {
		g.Bounds = extent
	}
	return g
}

// Absolute returns the direction points in device space.
// Only ObjectBoundingBox directions depend on the gradient Bounds.
func (g Gradient) Absolute() GradientDirection {
	if g.Units == UserSpaceOnUse {
		return g.Direction
	}
	b := g.Bounds
	switch dir := g.Direction.(type) {
	case Linear:
		return Linear{b.X + dir[0]*b.W, b.Y + dir[1]*b.H, b.X + dir[2]*b.W, b.Y + dir[3]*b.H}
	case Radial:
		scale := (b.W + b.H) / 2
		return Radial{
			b.X + dir[0]*b.W, b.Y + dir[1]*b.H,
			b.X + dir[2]*b.W, b.Y + dir[3]*b.H,
			dir[4] * scale, dir[5] * scale,
		}
	}
	return g.Direction
}

// StopColor returns the color of stop i, with its opacity applied.
func (g Gradient) StopColor(i int) color.NRGBA {
	st := g.Stops[i]
	if st.StopColor == nil {
		return color.NRGBA{A: uint8(255 * st.Opacity)}
	}
	c := color.NRGBAModel.Convert(st.StopColor).(color.NRGBA)
	c.A = uint8(float64(c.A) * st.Opacity)
	return c
}
