package svgdraw

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

// This file defines the basic path structure

// Operation groups the different path commands
type Operation interface {
	isOperation()
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type QuadTo [2]fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

func (MoveTo) isOperation()  {}
func (LineTo) isOperation()  {}
func (QuadTo) isOperation()  {}
func (CubicTo) isOperation() {}
func (Close) isOperation()   {}

// Path describes a sequence of basic operations, in device space.
// Higher-level shapes are reduced to a path.
type Path []Operation

// ToFixed converts a device point to the path precision.
func ToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// FromFixed converts back to floats.
func FromFixed(p fixed.Point26_6) (x, y float64) {
	return float64(p.X) / 64, float64(p.Y) / 64
}

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case QuadTo:
			chunks[i] = fmt.Sprintf("Q%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64, float32(op[2].X)/64, float32(op[2].Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Copy returns a path which does not share memory with p.
func (p Path) Copy() Path {
	if p == nil {
		return nil
	}
	return append(Path(nil), p...)
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c fixed.Point26_6) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Append adds the operations of `other`, starting new sub-paths.
func (p *Path) Append(other Path) {
	*p = append(*p, other...)
}

// Pather is implemented by path consumers, such as
// the rasterx Filler and Dasher.
type Pather interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	QuadBezier(b, c fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	Stop(closeLoop bool)
}

var _ Pather = (*Path)(nil)

// AddTo replays the path on `q`, calling Stop at the end
// of each sub-path.
func (p Path) AddTo(q Pather) {
	open := false
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			if open {
				q.Stop(false)
			}
			q.Start(fixed.Point26_6(op))
			open = true
		case LineTo:
			q.Line(fixed.Point26_6(op))
		case QuadTo:
			q.QuadBezier(op[0], op[1])
		case CubicTo:
			q.CubeBezier(op[0], op[1], op[2])
		case Close:
			if open {
				q.Stop(true)
			}
			open = false
		}
	}
	if open {
		q.Stop(false)
	}
}

// kappa is the distance of the control points used to approximate
// a quarter of circle with a cubic bezier curve.
const kappa = 0.5522847498307936

// AddRect adds the closed rectangle b, clockwise from its top left corner.
func (p *Path) AddRect(b Bounds) {
	p.Start(ToFixed(b.X, b.Y))
	p.Line(ToFixed(b.X+b.W, b.Y))
	p.Line(ToFixed(b.X+b.W, b.Y+b.H))
	p.Line(ToFixed(b.X, b.Y+b.H))
	p.Stop(true)
}

// AddRoundRect adds the rectangle b with elliptical corners
// of radius rx and ry, which are clamped to half the size of b.
// It falls back to AddRect when a radius is not positive.
func (p *Path) AddRoundRect(b Bounds, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		p.AddRect(b)
		return
	}
	if rx > b.W/2 {
		rx = b.W / 2
	}
	if ry > b.H/2 {
		ry = b.H / 2
	}
	minX, minY, maxX, maxY := b.X, b.Y, b.X+b.W, b.Y+b.H
	kx, ky := kappa*rx, kappa*ry

	p.Start(ToFixed(minX+rx, minY))
	p.Line(ToFixed(maxX-rx, minY))
	p.CubeBezier(ToFixed(maxX-rx+kx, minY), ToFixed(maxX, minY+ry-ky), ToFixed(maxX, minY+ry))
	p.Line(ToFixed(maxX, maxY-ry))
	p.CubeBezier(ToFixed(maxX, maxY-ry+ky), ToFixed(maxX-rx+kx, maxY), ToFixed(maxX-rx, maxY))
	p.Line(ToFixed(minX+rx, maxY))
	p.CubeBezier(ToFixed(minX+rx-kx, maxY), ToFixed(minX, maxY-ry+ky), ToFixed(minX, maxY-ry))
	p.Line(ToFixed(minX, minY+ry))
	p.CubeBezier(ToFixed(minX, minY+ry-ky), ToFixed(minX+rx-kx, minY), ToFixed(minX+rx, minY))
	p.Stop(true)
}

// AddEllipse adds the closed ellipse centered at (cx, cy).
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	kx, ky := kappa*rx, kappa*ry
	p.Start(ToFixed(cx+rx, cy))
	p.CubeBezier(ToFixed(cx+rx, cy+ky), ToFixed(cx+kx, cy+ry), ToFixed(cx, cy+ry))
	p.CubeBezier(ToFixed(cx-kx, cy+ry), ToFixed(cx-rx, cy+ky), ToFixed(cx-rx, cy))
	p.CubeBezier(ToFixed(cx-rx, cy-ky), ToFixed(cx-kx, cy-ry), ToFixed(cx, cy-ry))
	p.CubeBezier(ToFixed(cx+kx, cy-ry), ToFixed(cx+rx, cy-ky), ToFixed(cx+rx, cy))
	p.Stop(true)
}
