package svgdraw

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestAddRect(t *testing.T) {
	var p Path
	p.AddRect(Bounds{X: 2, Y: 3, W: 10, H: 5})

	require.Len(t, p, 5)
	assert.Equal(t, MoveTo(ToFixed(2, 3)), p[0])
	assert.Equal(t, LineTo(ToFixed(12, 3)), p[1])
	assert.Equal(t, LineTo(ToFixed(12, 8)), p[2])
	assert.Equal(t, LineTo(ToFixed(2, 8)), p[3])
	assert.Equal(t, Close{}, p[4])
	assert.Equal(t, "M2.000,3.000 L12.000,3.000 L12.000,8.000 L2.000,8.000 Z", p.String())
}

func TestPathCopy(t *testing.T) {
	var p Path
	p.AddRect(Bounds{W: 1, H: 1})
	cp := p.Copy()
	p[0] = MoveTo(ToFixed(5, 5))
	assert.Equal(t, MoveTo(ToFixed(0, 0)), cp[0])
	assert.Nil(t, Path(nil).Copy())
}

func TestRoundRectClamp(t *testing.T) {
	var p Path
	p.AddRoundRect(Bounds{X: 0, Y: 0, W: 10, H: 4}, 20, 20)
	b := p.Bounds()
	assert.InDelta(t, 0, b.X, 0.05)
	assert.InDelta(t, 10, b.W, 0.05)
	assert.InDelta(t, 4, b.H, 0.05)

	var flat Path
	flat.AddRoundRect(Bounds{W: 3, H: 3}, 0, 2)
	assert.Len(t, flat, 5)
}

func TestEllipseBounds(t *testing.T) {
	var p Path
	p.AddEllipse(50, 40, 20, 10)
	b := p.Bounds()
	assert.InDelta(t, 30, b.X, 0.05)
	assert.InDelta(t, 30, b.Y, 0.05)
	assert.InDelta(t, 40, b.W, 0.05)
	assert.InDelta(t, 20, b.H, 0.05)
}

func randPoint(offsetx, offsety float64) fixed.Point26_6 {
	return ToFixed(rand.Float64()*100+offsetx, rand.Float64()*100+offsety)
}

// every point sampled on a curve must lie inside its extent,
// which must not be larger than the control polygon
func TestBoundingBoxCurves(t *testing.T) {
	for range [200]int{} {
		var p Path
		a, b, c, d := randPoint(10, 10), randPoint(10, 10), randPoint(10, 10), randPoint(10, 10)
		p.Start(a)
		if rand.Intn(2) == 0 {
			p.QuadBezier(b, c)
		} else {
			p.CubeBezier(b, c, d)
		}
		box := p.Bounds()
		const eps = 1e-6
		for _, poly := range p.Flatten() {
			for _, pt := range poly {
				assert.True(t, box.X-eps <= pt.X && pt.X <= box.X+box.W+eps)
				assert.True(t, box.Y-eps <= pt.Y && pt.Y <= box.Y+box.H+eps)
			}
		}
		// control polygon
		var poly Bounds
		for _, q := range []fixed.Point26_6{a, b, c, d} {
			x, y := FromFixed(q)
			poly = poly.Union(Bounds{X: x, Y: y, W: 1e-9, H: 1e-9})
		}
		assert.LessOrEqual(t, box.W, poly.W+1e-6)
	}
}

func TestEmptyPathBounds(t *testing.T) {
	assert.Equal(t, Bounds{}, Path(nil).Bounds())
}

func TestContains(t *testing.T) {
	var p Path
	p.AddRect(Bounds{X: 0, Y: 0, W: 10, H: 10})
	assert.True(t, p.Contains(5, 5, true))
	assert.False(t, p.Contains(15, 5, true))

	// inner square with the same orientation: a hole for even-odd only
	p.AddRect(Bounds{X: 3, Y: 3, W: 4, H: 4})
	assert.True(t, p.Contains(5, 5, true))
	assert.False(t, p.Contains(5, 5, false))
	assert.True(t, p.Contains(1, 1, false))

	var e Path
	e.AddEllipse(0, 0, 10, 10)
	assert.True(t, e.Contains(0, 0, true))
	assert.False(t, e.Contains(9, 9, true))
}

func TestBoundsUnion(t *testing.T) {
	a := Bounds{X: 0, Y: 0, W: 2, H: 2}
	b := Bounds{X: 5, Y: -1, W: 1, H: 1}
	assert.Equal(t, Bounds{X: 0, Y: -1, W: 6, H: 3}, a.Union(b))
	assert.Equal(t, a, a.Union(Bounds{}))
	assert.Equal(t, b, Bounds{}.Union(b))
	assert.True(t, Bounds{W: 0, H: 3}.Empty())
	assert.True(t, Bounds{W: math.NaN(), H: 3}.Empty())
	assert.True(t, Bounds{W: 3, H: math.Inf(1)}.Empty())
	assert.True(t, Bounds{X: math.Inf(-1), W: 3, H: 3}.Empty())
	assert.True(t, a.Contains(2, 2))
	assert.False(t, a.Contains(2.1, 2))
}

func TestGradientAbsolute(t *testing.T) {
	g := Gradient{Direction: Linear{0, 0, 1, 0}, Units: ObjectBoundingBox}
	g = g.Resolve(Bounds{X: 10, Y: 20, W: 100, H: 50})
	assert.Equal(t, Linear{10, 20, 110, 20}, g.Absolute())

	u := Gradient{Direction: Linear{1, 2, 3, 4}, Units: UserSpaceOnUse}.Resolve(Bounds{X: 5, W: 5, H: 5})
	assert.Equal(t, Linear{1, 2, 3, 4}, u.Absolute())

	g.Stops = []GradStop{{StopColor: color.RGBA{R: 255, A: 255}, Opacity: 0.5}, {Opacity: 1}}
	cp := g.Copy().(Gradient)
	cp.Stops[0].Offset = 0.7
	assert.Equal(t, 0.0, g.Stops[0].Offset)
	assert.Equal(t, color.NRGBA{R: 255, A: 127}, g.StopColor(0))
	assert.Equal(t, color.NRGBA{A: 255}, g.StopColor(1))
}

func TestImagePattern(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{B: 255, A: 255})

	pat := NewImagePattern(img, Bounds{X: 10, Y: 10, W: 20, H: 5})
	assert.Equal(t, 10.0, pat.ScaleX)
	assert.Equal(t, 5.0, pat.ScaleY)
	assert.Equal(t, Bounds{X: 10, Y: 10, W: 20, H: 5}, pat.Size())

	assert.Equal(t, color.RGBA{R: 255, A: 255}, pat.ColorAt(12, 12))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, pat.ColorAt(25, 14.9))
	assert.Equal(t, color.Transparent, pat.ColorAt(31, 12))
	assert.Equal(t, color.Transparent, pat.ColorAt(9.9, 12))
	assert.Equal(t, color.Transparent, ImagePattern{Image: img}.ColorAt(0, 0))
}

func TestRecorderReplay(t *testing.T) {
	var rec Recorder
	var p Path
	p.AddRect(Bounds{W: 4, H: 4})
	opts := DefaultStroke
	opts.Dash.Dash = []float64{1, 2}

	require.NoError(t, rec.FillPath(p, NewPlainColor(1, 2, 3, 255), DefaultFill))
	require.NoError(t, rec.StrokePath(p, nil, opts))
	require.NoError(t, rec.FillPathPattern(p, ImagePattern{ScaleX: 1, ScaleY: 1}, DefaultFill))

	// recorded values are copies
	p[0] = MoveTo(ToFixed(math.Pi, 0))
	opts.Dash.Dash[0] = 9
	assert.Equal(t, MoveTo(ToFixed(0, 0)), rec.Instructions[0].Path[0])
	assert.Equal(t, []float64{1, 2}, rec.Instructions[1].Stroke.Dash.Dash)

	var other Recorder
	require.NoError(t, rec.Replay(&other))
	require.Len(t, other.Instructions, 3)
	assert.Equal(t, FillInstruction, other.Instructions[0].Kind)
	assert.Equal(t, StrokeInstruction, other.Instructions[1].Kind)
	assert.Equal(t, PatternInstruction, other.Instructions[2].Kind)
	assert.Equal(t, "pattern", other.Instructions[2].Kind.String())

	rec.Reset()
	assert.Empty(t, rec.Instructions)
}

func TestAddTo(t *testing.T) {
	var p Path
	p.AddRect(Bounds{W: 2, H: 2})
	p.Start(ToFixed(5, 5))
	p.QuadBezier(ToFixed(6, 6), ToFixed(7, 5))
	p.CubeBezier(ToFixed(8, 8), ToFixed(9, 9), ToFixed(10, 5))

	var replayed Path
	p.AddTo(&replayed)
	// the open sub-path is terminated with Stop(false), which adds nothing
	assert.Equal(t, p, replayed)
}

func TestModeKeywords(t *testing.T) {
	for _, m := range []JoinMode{Arc, Round, Bevel, Miter, MiterClip, ArcClip} {
		got, ok := ParseJoinMode(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
	for _, c := range []CapMode{ButtCap, SquareCap, RoundCap} {
		got, ok := ParseCapMode(c.String())
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := ParseCapMode("")
	assert.False(t, ok)
	_, ok = ParseJoinMode("mitre")
	assert.False(t, ok)
	assert.Equal(t, "miter-clip", MiterClip.String())
	assert.Equal(t, "<mode 9>", JoinMode(9).String())
}
