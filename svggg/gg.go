// Implements a backend rendering element trees on a
// github.com/gogpu/gg drawing context.
//
// Plain colors are drawn by gg. Its CPU renderer only paints solid
// brushes, so gradients and image patterns are rasterized with
// svgraster on a layer which is then composited on the context.
package svggg

import (
	"image"
	"image/color"

	"github.com/benoitkugler/svgdom/svgdraw"
	"github.com/benoitkugler/svgdom/svgraster"
	"github.com/gogpu/gg"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Surface = (*Renderer)(nil) // assert interface conformance

// Renderer draws on a gg.Context. The context brush, line style
// and fill rule are overwritten by each operation.
type Renderer struct {
	dc *gg.Context
}

func NewRenderer(dc *gg.Context) *Renderer { return &Renderer{dc: dc} }

// pather replays path commands on the context
type pather struct {
	dc *gg.Context
}

var _ svgdraw.Pather = pather{}

func (p pather) Start(a fixed.Point26_6) {
	p.dc.MoveTo(svgdraw.FromFixed(a))
}

func (p pather) Line(b fixed.Point26_6) {
	p.dc.LineTo(svgdraw.FromFixed(b))
}

func (p pather) QuadBezier(b, c fixed.Point26_6) {
	cx, cy := svgdraw.FromFixed(b)
	x, y := svgdraw.FromFixed(c)
	p.dc.QuadraticTo(cx, cy, x, y)
}

func (p pather) CubeBezier(b, c, d fixed.Point26_6) {
	c1x, c1y := svgdraw.FromFixed(b)
	c2x, c2y := svgdraw.FromFixed(c)
	x, y := svgdraw.FromFixed(d)
	p.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.dc.ClosePath()
	}
}

func (rd *Renderer) setPath(p svgdraw.Path) {
	rd.dc.ClearPath()
	p.AddTo(pather{dc: rd.dc})
}

// toRGBA returns the non premultiplied color expected by gg,
// with its alpha scaled by opacity.
func toRGBA(c color.Color, opacity float64) gg.RGBA {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return gg.RGBA2(float64(nc.R)/255, float64(nc.G)/255, float64(nc.B)/255, float64(nc.A)/255*clamp01(opacity))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// layer rasterizes the operations gg cannot paint natively (gradients
// and image patterns) on a transparent image the size of the context,
// then composites it.
func (rd *Renderer) layer(draw func(*svgraster.Renderer) error) error {
	img := image.NewRGBA(image.Rect(0, 0, rd.dc.Width(), rd.dc.Height()))
	if err := draw(svgraster.NewRenderer(img)); err != nil {
		return err
	}
	rd.dc.DrawImage(gg.ImageBufFromImage(img), 0, 0)
	return nil
}

func fillRule(nonZero bool) gg.FillRule {
	if nonZero {
		return gg.FillRuleNonZero
	}
	return gg.FillRuleEvenOdd
}

// FillPath paints plain colors with a solid gg brush.
func (rd *Renderer) FillPath(p svgdraw.Path, paint svgdraw.Paint, opts svgdraw.FillOptions) error {
	switch paint := paint.(type) {
	case svgdraw.PlainColor:
		rd.dc.SetFillBrush(gg.Solid(toRGBA(paint.RGBA, opts.Opacity)))
		rd.dc.SetFillRule(fillRule(opts.NonZero))
		rd.setPath(p)
		return rd.dc.Fill()
	case svgdraw.Gradient:
		if len(paint.Stops) == 0 {
			return nil
		}
		return rd.layer(func(r *svgraster.Renderer) error { return r.FillPath(p, paint, opts) })
	}
	return nil
}

var (
	capToCap = [...]gg.LineCap{
		svgdraw.NilCap:    gg.LineCapButt,
		svgdraw.ButtCap:   gg.LineCapButt,
		svgdraw.SquareCap: gg.LineCapSquare,
		svgdraw.RoundCap:  gg.LineCapRound,
	}
	joinToJoin = [...]gg.LineJoin{
		svgdraw.Arc:       gg.LineJoinRound,
		svgdraw.Round:     gg.LineJoinRound,
		svgdraw.Bevel:     gg.LineJoinBevel,
		svgdraw.Miter:     gg.LineJoinMiter,
		svgdraw.MiterClip: gg.LineJoinMiter,
		svgdraw.ArcClip:   gg.LineJoinRound,
	}
)

func (rd *Renderer) setStrokeOptions(options svgdraw.StrokeOptions) {
	rd.dc.SetLineWidth(options.Width)
	rd.dc.SetLineCap(capToCap[options.Join.LineCap])
	rd.dc.SetLineJoin(joinToJoin[options.Join.LineJoin])
	rd.dc.SetMiterLimit(float64(options.Join.MiterLimit) / 64)
	rd.dc.SetDash(options.Dash.Dash...)
	rd.dc.SetDashOffset(options.Dash.DashOffset)
}

func (rd *Renderer) StrokePath(p svgdraw.Path, paint svgdraw.Paint, opts svgdraw.StrokeOptions) error {
	if opts.Width <= 0 {
		return nil
	}
	switch paint := paint.(type) {
	case svgdraw.PlainColor:
		rd.dc.SetStrokeBrush(gg.Solid(toRGBA(paint.RGBA, opts.Opacity)))
		rd.setStrokeOptions(opts)
		rd.setPath(p)
		err := rd.dc.Stroke()
		rd.dc.SetDash()
		return err
	case svgdraw.Gradient:
		if len(paint.Stops) == 0 {
			return nil
		}
		return rd.layer(func(r *svgraster.Renderer) error { return r.StrokePath(p, paint, opts) })
	}
	return nil
}

func (rd *Renderer) FillPathPattern(p svgdraw.Path, pattern svgdraw.ImagePattern, opts svgdraw.FillOptions) error {
	if pattern.Image == nil || pattern.Size().Empty() {
		return nil
	}
	return rd.layer(func(r *svgraster.Renderer) error { return r.FillPathPattern(p, pattern, opts) })
}
