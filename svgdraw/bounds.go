package svgdraw

import "math"

// Bounds is an axis aligned rectangle in device space,
// such as an element extent or a viewport.
type Bounds struct{ X, Y, W, H float64 }

// Empty is true when the rectangle covers no finite area,
// which includes NaN and infinite coordinates.
func (b Bounds) Empty() bool {
	if !(b.W > 0 && b.H > 0) {
		return true
	}
	for _, v := range [...]float64{b.X, b.Y, b.W, b.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// Max returns the bottom right corner.
func (b Bounds) Max() (x, y float64) { return b.X + b.W, b.Y + b.H }

// Contains reports whether (x, y) lies inside b, borders included.
func (b Bounds) Contains(x, y float64) bool {
	mx, my := b.Max()
	return b.X <= x && x <= mx && b.Y <= y && y <= my
}

// Union returns the smallest rectangle containing b and o.
// An empty rectangle is ignored.
func (b Bounds) Union(o Bounds) Bounds {
	if o.W < 0 || o.H < 0 || (o == Bounds{}) {
		return b
	}
	if b.W < 0 || b.H < 0 || (b == Bounds{}) {
		return o
	}
	bx, by := b.Max()
	ox, oy := o.Max()
	minX, minY := math.Min(b.X, o.X), math.Min(b.Y, o.Y)
	maxX, maxY := math.Max(bx, ox), math.Max(by, oy)
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
