// Implements a PDF backend to render element trees,
// by wrapping github.com/jung-kurt/gofpdf.
//
// Device units are the user units of the PDF document.
package svgpdf

import (
	"bytes"
	"image/color"
	"image/png"
	"sync"

	"github.com/benoitkugler/svgdom/svgdraw"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Surface = Renderer{} // assert interface conformance

type Renderer struct {
	pdf *gofpdf.Fpdf
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *gofpdf.Fpdf
}

var _ svgdraw.Pather = pather{}

// NewRenderer return a renderer which will
// write to the current page of the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.CurveTo(cx, cy, x, y)
}

func (p pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

func rgb(c color.Color) (r, g, b int) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(nc.R), int(nc.G), int(nc.B)
}

// plainColor returns the color used for `paint`, approximating
// gradients by their first stop.
func plainColor(paint svgdraw.Paint) (color.NRGBA, bool) {
	switch paint := paint.(type) {
	case svgdraw.PlainColor:
		return color.NRGBAModel.Convert(paint.RGBA).(color.NRGBA), true
	case svgdraw.Gradient:
		if len(paint.Stops) == 0 {
			return color.NRGBA{}, false
		}
		return paint.StopColor(0), true
	}
	return color.NRGBA{}, false
}

// clipPolygons calls `draw` once per sub-path of `p`, with a clipping
// polygon set to that sub-path. Holes are not supported.
func (rd Renderer) clipPolygons(p svgdraw.Path, draw func()) {
	for _, poly := range p.Flatten() {
		if len(poly) < 3 {
			continue
		}
		points := make([]gofpdf.PointType, len(poly))
		for i, pt := range poly {
			points[i] = gofpdf.PointType{X: pt.X, Y: pt.Y}
		}
		rd.pdf.ClipPolygon(points, false)
		draw()
		rd.pdf.ClipEnd()
	}
}

func (rd Renderer) FillPath(p svgdraw.Path, paint svgdraw.Paint, opts svgdraw.FillOptions) error {
	if grad, ok := paint.(svgdraw.Gradient); ok && len(grad.Stops) >= 2 {
		rd.fillGradient(p, grad, opts)
		return rd.pdf.Error()
	}
	c, ok := plainColor(paint)
	if !ok {
		return nil
	}
	rd.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	rd.pdf.SetAlpha(opts.Opacity*float64(c.A)/255, "")
	p.AddTo(pather{pdf: rd.pdf})
	styleStr := "f*"
	if opts.NonZero {
		styleStr = "f"
	}
	rd.pdf.DrawPath(styleStr)
	rd.pdf.SetAlpha(1, "")
	return rd.pdf.Error()
}

// fillGradient paints the gradient between its first and last stops,
// inside the extent of the path, clipped to the path.
func (rd Renderer) fillGradient(p svgdraw.Path, grad svgdraw.Gradient, opts svgdraw.FillOptions) {
	extent := p.Bounds()
	if extent.Empty() {
		return
	}
	grad = grad.Resolve(extent)
	r1, g1, b1 := rgb(grad.StopColor(0))
	r2, g2, b2 := rgb(grad.StopColor(len(grad.Stops) - 1))

	// gofpdf expects coordinates relative to the painted rectangle,
	// with the origin at its bottom left corner
	relX := func(x float64) float64 { return (x - extent.X) / extent.W }
	relY := func(y float64) float64 { return 1 - (y-extent.Y)/extent.H }

	rd.pdf.SetAlpha(opts.Opacity, "")
	rd.clipPolygons(p, func() {
		switch dir := grad.Absolute().(type) {
		case svgdraw.Linear:
			rd.pdf.LinearGradient(extent.X, extent.Y, extent.W, extent.H, r1, g1, b1, r2, g2, b2,
				relX(dir[0]), relY(dir[1]), relX(dir[2]), relY(dir[3]))
		case svgdraw.Radial:
			rd.pdf.RadialGradient(extent.X, extent.Y, extent.W, extent.H, r1, g1, b1, r2, g2, b2,
				relX(dir[2]), relY(dir[3]), relX(dir[0]), relY(dir[1]), dir[4]/extent.W)
		}
	})
	rd.pdf.SetAlpha(1, "")
}

var (
	capStyles = [...]string{
		svgdraw.NilCap:    "butt",
		svgdraw.ButtCap:   "butt",
		svgdraw.SquareCap: "square",
		svgdraw.RoundCap:  "round",
	}
	joinStyles = [...]string{
		svgdraw.Arc:       "round",
		svgdraw.Round:     "round",
		svgdraw.Bevel:     "bevel",
		svgdraw.Miter:     "miter",
		svgdraw.MiterClip: "miter",
		svgdraw.ArcClip:   "round",
	}
)

func (rd Renderer) setStrokeOptions(options svgdraw.StrokeOptions) {
	rd.pdf.SetLineWidth(options.Width)
	rd.pdf.SetLineCapStyle(capStyles[options.Join.LineCap])
	rd.pdf.SetLineJoinStyle(joinStyles[options.Join.LineJoin])
	rd.pdf.SetDashPattern(options.Dash.Dash, options.Dash.DashOffset)
}

// StrokePath outlines the path. Gradients are approximated
// by their first stop.
func (rd Renderer) StrokePath(p svgdraw.Path, paint svgdraw.Paint, opts svgdraw.StrokeOptions) error {
	c, ok := plainColor(paint)
	if !ok || opts.Width <= 0 {
		return nil
	}
	rd.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	rd.pdf.SetAlpha(opts.Opacity*float64(c.A)/255, "")
	rd.setStrokeOptions(opts)
	p.AddTo(pather{pdf: rd.pdf})
	rd.pdf.DrawPath("D")
	rd.pdf.SetAlpha(1, "")
	rd.pdf.SetDashPattern(nil, 0)
	return rd.pdf.Error()
}

var pngBuffers = sync.Pool{New: func() interface{} { return new(bytes.Buffer) }}

// FillPathPattern embeds the image as PNG, placed on the
// pattern rectangle and clipped to the path.
func (rd Renderer) FillPathPattern(p svgdraw.Path, pattern svgdraw.ImagePattern, opts svgdraw.FillOptions) error {
	target := pattern.Size()
	if pattern.Image == nil || target.Empty() {
		return nil
	}
	buf := pngBuffers.Get().(*bytes.Buffer)
	buf.Reset()
	defer pngBuffers.Put(buf)
	if err := png.Encode(buf, pattern.Image); err != nil {
		return err
	}

	name := uuid.NewString()
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	rd.pdf.RegisterImageOptionsReader(name, imgOpts, buf)
	if err := rd.pdf.Error(); err != nil {
		return err
	}
	rd.pdf.SetAlpha(opts.Opacity, "")
	rd.clipPolygons(p, func() {
		rd.pdf.ImageOptions(name, target.X, target.Y, target.W, target.H, false, imgOpts, 0, "")
	})
	rd.pdf.SetAlpha(1, "")
	return rd.pdf.Error()
}
