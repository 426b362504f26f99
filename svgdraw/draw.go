// Defines the drawing surface an element tree is rendered to.
// The surface only receives resolved, device space geometry:
// units, inheritance and attributes never reach it.
// See svgraster, svgpdf and svggg for implementations.
package svgdraw

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// Surface is the only coupling point between the element model
// and a backend. Paths are given in device space.
type Surface interface {
	// FillPath fills `p` with a plain color or a gradient.
	FillPath(p Path, paint Paint, opts FillOptions) error

	// FillPathPattern fills `p` with the sampled image content of `pattern`.
	// Implementations must not retain the pattern image after returning.
	FillPathPattern(p Path, pattern ImagePattern, opts FillOptions) error

	// StrokePath outlines `p` with the given paint.
	StrokePath(p Path, paint Paint, opts StrokeOptions) error
}

// FillOptions parametrize a fill operation.
type FillOptions struct {
	Opacity float64 // in [0, 1]
	NonZero bool    // use the non zero winding rule instead of even-odd
}

// DefaultFill is opaque, non zero winding.
var DefaultFill = FillOptions{Opacity: 1, NonZero: true}

// DashOptions is the dash pattern of a stroke, in device units.
// An empty Dash draws a solid line.
type DashOptions struct {
	Dash       []float64
	DashOffset float64
}

// JoinMode selects how segments of a stroke join.
type JoinMode uint8

const (
	Arc JoinMode = iota
	Round
	Bevel
	Miter
	MiterClip
	ArcClip // not a standard keyword: miter-clip applied to arcs
)

var joinNames = [...]string{
	Arc:       "arc",
	Round:     "round",
	Bevel:     "bevel",
	Miter:     "miter",
	MiterClip: "miter-clip",
	ArcClip:   "arc-clip",
}

// String returns the stroke-linejoin keyword.
func (s JoinMode) String() string { return modeName(joinNames[:], int(s)) }

// ParseJoinMode maps a stroke-linejoin keyword to its mode.
func ParseJoinMode(keyword string) (JoinMode, bool) {
	i, ok := parseMode(joinNames[:], keyword)
	return JoinMode(i), ok
}

// CapMode defines how to draw caps on the ends of lines.
type CapMode uint8

const (
	NilCap CapMode = iota // butt
	ButtCap
	SquareCap
	RoundCap
)

var capNames = [...]string{
	ButtCap:   "butt",
	SquareCap: "square",
	RoundCap:  "round",
}

// String returns the stroke-linecap keyword, empty for NilCap.
func (c CapMode) String() string { return modeName(capNames[:], int(c)) }

// ParseCapMode maps a stroke-linecap keyword to its mode.
func ParseCapMode(keyword string) (CapMode, bool) {
	i, ok := parseMode(capNames[:], keyword)
	return CapMode(i), ok
}

// GapMode defines how to bridge gaps when the miter limit is exceeded.
// It has no attribute counterpart.
type GapMode uint8

const (
	NilGap GapMode = iota // flat
	FlatGap
	RoundGap
)

func modeName(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("<mode %d>", i)
}

func parseMode(names []string, keyword string) (int, bool) {
	if keyword == "" {
		return 0, false
	}
	for i, name := range names {
		if name == keyword {
			return i, true
		}
	}
	return 0, false
}

type JoinOptions struct {
	MiterLimit fixed.Int26_6 // ratio to the stroke width, for miter, arc and their clip variants
	LineJoin   JoinMode
	LineCap    CapMode // both ends
	LineGap    GapMode
}

type StrokeOptions struct {
	Width   float64 // device units
	Opacity float64
	Join    JoinOptions
	Dash    DashOptions
}

// DefaultStroke mirrors the SVG initial values.
var DefaultStroke = StrokeOptions{
	Width:   1,
	Opacity: 1,
	Join: JoinOptions{
		MiterLimit: fixed.I(4),
		LineJoin:   Miter,
		LineCap:    ButtCap,
	},
}
