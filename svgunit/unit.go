// Implements resolution independent SVG lengths,
// which are converted to device values given
// a rendering context.
package svgunit

import (
	"math"
	"strconv"
)

// UnitType is the suffix of an SVG length.
type UnitType uint8

const (
	None UnitType = iota // unitless, interpreted as user units (px)
	Px
	Pt
	Pc
	Mm
	Cm
	In
	Em
	Ex
	Percent
)

var suffixes = [...]string{
	None:    "",
	Px:      "px",
	Pt:      "pt",
	Pc:      "pc",
	Mm:      "mm",
	Cm:      "cm",
	In:      "in",
	Em:      "em",
	Ex:      "ex",
	Percent: "%",
}

func (u UnitType) String() string {
	if int(u) < len(suffixes) {
		return suffixes[u]
	}
	return "<unknown UnitType>"
}

// Base selects the viewport dimension a percentage refers to.
type Base uint8

const (
	WidthBase    Base = iota // horizontal lengths (x, width, rx...)
	HeightBase               // vertical lengths (y, height, ry...)
	DiagonalBase             // non oriented lengths (r, stroke-width...)
)

// Context holds what is needed to resolve a Unit to a device value.
type Context struct {
	DPI            float64
	FontSize       float64 // in device units, used by em and ex
	ViewportWidth  float64
	ViewportHeight float64
}

// DefaultContext uses the CSS reference resolution
// and an empty viewport.
var DefaultContext = Context{DPI: 96, FontSize: 16}

func (ctx Context) reference(base Base) float64 {
	switch base {
	case WidthBase:
		return ctx.ViewportWidth
	case HeightBase:
		return ctx.ViewportHeight
	default:
		w, h := ctx.ViewportWidth, ctx.ViewportHeight
		return math.Sqrt(w*w+h*h) / math.Sqrt2
	}
}

// Unit is a length with its unit, such as 12pt or 50%.
type Unit struct {
	Value float64
	Type  UnitType
}

// New returns a unit of the given type.
func New(value float64, typ UnitType) Unit { return Unit{Value: value, Type: typ} }

// Pixels returns an absolute length in user units.
func Pixels(value float64) Unit { return Unit{Value: value, Type: Px} }

// IsZero is true for every zero length, whatever its unit.
func (u Unit) IsZero() bool { return u.Value == 0 }

// ToDevice resolves the length in device units.
// `base` is only used by percentages.
// A zero length is always resolved to 0.
func (u Unit) ToDevice(ctx Context, base Base) float64 {
	if u.Value == 0 {
		return 0
	}
	switch u.Type {
	case None, Px:
		return u.Value
	case Pt:
		return u.Value * ctx.DPI / 72
	case Pc:
		return u.Value * ctx.DPI / 6
	case Mm:
		return u.Value * ctx.DPI / 25.4
	case Cm:
		return u.Value * ctx.DPI / 2.54
	case In:
		return u.Value * ctx.DPI
	case Em:
		return u.Value * ctx.FontSize
	case Ex:
		return u.Value * ctx.FontSize / 2
	case Percent:
		return u.Value / 100 * ctx.reference(base)
	default:
		return u.Value
	}
}

// String returns the SVG representation, accepted by Parse.
func (u Unit) String() string {
	return strconv.FormatFloat(u.Value, 'g', -1, 64) + u.Type.String()
}
