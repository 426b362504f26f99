package svgdraw

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// This file computes the extent of a path and
// answers hit-testing queries on it.

// Point is a device space location.
type Point struct{ X, Y float64 }

func toPoint(x, y float64) Point { return Point{x, y} }

// segment is one piece of a path, between two on-curve points
type segment interface {
	// extrema returns the values of t in [0, 1] zeroing the derivative
	extrema() (tX, tY []float64)
	// at evaluates the segment at time t
	at(t float64) Point
}

type line [2]Point

func (line) extrema() (tX, tY []float64) { return nil, nil }

func (l line) at(t float64) Point {
	return Point{lerp(l[0].X, l[1].X, t), lerp(l[0].Y, l[1].Y, t)}
}

func lerp(p0, p1, t float64) float64 { return (p1-p0)*t + p0 }

type quadBezier [3]Point

// x = (p0 + p2 - 2p1)t^2 + 2(p1 - p0)t + p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// root of the derivative 2(p2 - 2p1 + p0)t + 2(p1 - p0)
func quadExtremum(p0, p1, p2 float64) []float64 {
	a := 2 * (p2 - 2*p1 + p0)
	if a == 0 {
		return nil
	}
	return []float64{-2 * (p1 - p0) / a}
}

func (q quadBezier) extrema() (tX, tY []float64) {
	return quadExtremum(q[0].X, q[1].X, q[2].X), quadExtremum(q[0].Y, q[1].Y, q[2].Y)
}

func (q quadBezier) at(t float64) Point {
	return Point{bezierQuad(q[0].X, q[1].X, q[2].X, t), bezierQuad(q[0].Y, q[1].Y, q[2].Y, t)}
}

type cubicBezier [4]Point

// x = (p3 - 3p2 + 3p1 - p0)t^3 + (3p2 - 6p1 + 3p0)t^2 + (3p1 - 3p0)t + p0
func bezierCubic(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		p0
}

// roots of the derivative, written as at^2 + bt + c
func cubicExtrema(p0, p1, p2, p3 float64) []float64 {
	a, b, c := 3*p3-9*p2+9*p1-3*p0, 6*p2-12*p1+6*p0, 3*p1-3*p0
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func (cu cubicBezier) extrema() (tX, tY []float64) {
	return cubicExtrema(cu[0].X, cu[1].X, cu[2].X, cu[3].X), cubicExtrema(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y)
}

func (cu cubicBezier) at(t float64) Point {
	return Point{
		bezierCubic(cu[0].X, cu[1].X, cu[2].X, cu[3].X, t),
		bezierCubic(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y, t),
	}
}

// walk reports every move and every drawn segment.
// Close reports the line back to the sub-path start, if any.
func (p Path) walk(onMove func(Point), onSegment func(segment)) {
	var first, current Point
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current = toPoint(FromFixed(fixed.Point26_6(op)))
			first = current
			onMove(current)
		case LineTo:
			next := toPoint(FromFixed(fixed.Point26_6(op)))
			onSegment(line{current, next})
			current = next
		case QuadTo:
			c := toPoint(FromFixed(op[0]))
			next := toPoint(FromFixed(op[1]))
			onSegment(quadBezier{current, c, next})
			current = next
		case CubicTo:
			c1, c2 := toPoint(FromFixed(op[0])), toPoint(FromFixed(op[1]))
			next := toPoint(FromFixed(op[2]))
			onSegment(cubicBezier{current, c1, c2, next})
			current = next
		case Close:
			if current != first {
				onSegment(line{current, first})
			}
			current = first
		}
	}
}

// Bounds returns the exact extent of the path,
// taking curve extrema into account (not only control points).
func (p Path) Bounds() Bounds {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(pt Point) {
		minX, minY = math.Min(minX, pt.X), math.Min(minY, pt.Y)
		maxX, maxY = math.Max(maxX, pt.X), math.Max(maxY, pt.Y)
	}
	p.walk(add, func(s segment) {
		tX, tY := s.extrema()
		for _, t := range append(append(tX, 0, 1), tY...) {
			if !(0 <= t && t <= 1) { // also filters NaN
				continue
			}
			add(s.at(t))
		}
	})
	if math.IsInf(minX, 1) {
		return Bounds{}
	}
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// flatteningSteps is the number of lines used to approximate a curve.
const flatteningSteps = 16

// Flatten approximates the path by polygons, one per sub-path.
func (p Path) Flatten() [][]Point {
	var (
		out     [][]Point
		current []Point
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, current)
		}
		current = nil
	}
	p.walk(func(pt Point) {
		flush()
		current = []Point{pt}
	}, func(s segment) {
		if _, isLine := s.(line); isLine {
			current = append(current, s.at(1))
			return
		}
		for i := 1; i <= flatteningSteps; i++ {
			current = append(current, s.at(float64(i)/flatteningSteps))
		}
	})
	flush()
	return out
}

// Contains reports whether (x, y) is inside the filled area of the path,
// every sub-path being implicitly closed.
// nonZero selects the non zero winding rule, otherwise even-odd is used.
func (p Path) Contains(x, y float64, nonZero bool) bool {
	winding, crossings := 0, 0
	for _, poly := range p.Flatten() {
		n := len(poly)
		for i := range poly {
			a, b := poly[i], poly[(i+1)%n]
			if (a.Y <= y) == (b.Y <= y) {
				continue
			}
			xCross := a.X + (y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if x >= xCross {
				continue
			}
			crossings++
			if b.Y > a.Y {
				winding++
			} else {
				winding--
			}
		}
	}
	if nonZero {
		return winding != 0
	}
	return crossings%2 == 1
}
