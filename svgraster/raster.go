// Implements a raster backend to render element trees,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/benoitkugler/svgdom/svgdraw"
	"github.com/benoitkugler/svgdom/svgelem"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Surface = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	dasher *rasterx.Dasher // strokes
	filler *rasterx.Filler // fills and patterns
}

// NewRenderer returns a renderer drawing into `dst`,
// using a rasterx.ScannerGV.
func NewRenderer(dst draw.Image) *Renderer {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	return NewScannerRenderer(w, h, rasterx.NewScannerGV(w, h, dst, b))
}

// NewScannerRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
func NewScannerRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

// RasterImage renders the tree rooted at `root` into a new
// transparent image of size (width, height), which is also
// used as the viewport for percentages.
func RasterImage(root svgelem.Element, width, height int, opts ...svgelem.Option) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	opts = append([]svgelem.Option{svgelem.WithViewport(float64(width), float64(height))}, opts...)
	err := svgelem.Draw(root, NewRenderer(img), opts...)
	return img, err
}

func toRasterxGradient(grad svgdraw.Gradient) rasterx.Gradient {
	var (
		points   [5]float64
		isRadial bool
	)
	switch dir := grad.Direction.(type) {
	case svgdraw.Linear:
		points[0], points[1], points[2], points[3] = dir[0], dir[1], dir[2], dir[3]
		isRadial = false
	case svgdraw.Radial:
		points[0], points[1], points[2], points[3], points[4], _ = dir[0], dir[1], dir[2], dir[3], dir[4], dir[5] // in rasterx fr is ignored
		isRadial = true
	}
	stops := make([]rasterx.GradStop, len(grad.Stops))
	for i := range grad.Stops {
		stops[i] = rasterx.GradStop(grad.Stops[i])
	}
	return rasterx.Gradient{
		Points:   points,
		Stops:    stops,
		Bounds:   grad.Bounds,
		Matrix:   rasterx.Identity,
		Spread:   rasterx.SpreadMethod(grad.Spread),
		Units:    rasterx.GradientUnits(grad.Units),
		IsRadial: isRadial,
	}
}

// pathExtent returns the extent of the path added to the scanner
func pathExtent(scanner rasterx.Scanner) svgdraw.Bounds {
	fRect := scanner.GetPathExtent()
	mnx, mny := float64(fRect.Min.X)/64, float64(fRect.Min.Y)/64
	mxx, mxy := float64(fRect.Max.X)/64, float64(fRect.Max.Y)/64
	return svgdraw.Bounds{X: mnx, Y: mny, W: mxx - mnx, H: mxy - mny}
}

// resolve gradient color
func setColorFromPaint(paint svgdraw.Paint, opacity float64, scanner rasterx.Scanner) {
	switch paint := paint.(type) {
	case svgdraw.PlainColor:
		scanner.SetColor(fadeRGBA(paint.RGBA, opacity))
	case svgdraw.Gradient:
		paint = paint.Resolve(pathExtent(scanner))
		rasterxGradient := toRasterxGradient(paint)
		scanner.SetColor(rasterxGradient.GetColorFunction(opacity))
	}
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgdraw.Round:     rasterx.Round,
		svgdraw.Bevel:     rasterx.Bevel,
		svgdraw.Miter:     rasterx.Miter,
		svgdraw.MiterClip: rasterx.MiterClip,
		svgdraw.Arc:       rasterx.Arc,
		svgdraw.ArcClip:   rasterx.ArcClip,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgdraw.NilCap:    rasterx.ButtCap,
		svgdraw.ButtCap:   rasterx.ButtCap,
		svgdraw.SquareCap: rasterx.SquareCap,
		svgdraw.RoundCap:  rasterx.RoundCap,
	}

	gapToFunc = [...]rasterx.GapFunc{
		svgdraw.NilGap:   rasterx.FlatGap,
		svgdraw.FlatGap:  rasterx.FlatGap,
		svgdraw.RoundGap: rasterx.RoundGap,
	}
)

func (rd *Renderer) setStrokeOptions(options svgdraw.StrokeOptions) {
	capF := capToFunc[options.Join.LineCap]
	rd.dasher.SetStroke(
		fixed.Int26_6(options.Width*64), options.Join.MiterLimit, capF, capF,
		gapToFunc[options.Join.LineGap], joinToJoin[options.Join.LineJoin],
		options.Dash.Dash, options.Dash.DashOffset,
	)
}

func (rd *Renderer) FillPath(p svgdraw.Path, paint svgdraw.Paint, opts svgdraw.FillOptions) error {
	if paint == nil {
		return nil
	}
	rd.filler.Clear()
	rd.filler.SetWinding(opts.NonZero)
	p.AddTo(rd.filler)
	setColorFromPaint(paint, opts.Opacity, rd.filler.Scanner)
	rd.filler.Draw()
	rd.filler.Clear()
	return nil
}

func (rd *Renderer) StrokePath(p svgdraw.Path, paint svgdraw.Paint, opts svgdraw.StrokeOptions) error {
	if paint == nil || opts.Width <= 0 {
		return nil
	}
	rd.dasher.Clear()
	rd.dasher.SetWinding(true)
	rd.setStrokeOptions(opts)
	p.AddTo(rd.dasher)
	setColorFromPaint(paint, opts.Opacity, rd.dasher.Scanner)
	rd.dasher.Draw()
	rd.dasher.Clear()
	return nil
}

// scalePattern resamples the pattern image to device resolution,
// returning an image whose bounds are the covered device pixels.
func scalePattern(pattern svgdraw.ImagePattern) *image.RGBA {
	size := pattern.Size()
	rect := image.Rect(
		int(math.Floor(size.X)), int(math.Floor(size.Y)),
		int(math.Ceil(size.X+size.W)), int(math.Ceil(size.Y+size.H)),
	)
	dst := image.NewRGBA(rect)
	xdraw.ApproxBiLinear.Scale(dst, rect, pattern.Image, pattern.Image.Bounds(), xdraw.Src, nil)
	return dst
}

// fadeRGBA scales a premultiplied color by opacity
func fadeRGBA(c color.RGBA, opacity float64) color.RGBA {
	if opacity >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}

// FillPathPattern samples the image, resampled with
// an approximate bilinear filter.
func (rd *Renderer) FillPathPattern(p svgdraw.Path, pattern svgdraw.ImagePattern, opts svgdraw.FillOptions) error {
	if pattern.Image == nil || pattern.Size().Empty() {
		return nil
	}
	scaled := scalePattern(pattern)
	rd.filler.Clear()
	rd.filler.SetWinding(opts.NonZero)
	p.AddTo(rd.filler)
	rd.filler.SetColor(rasterx.ColorFunc(func(x, y int) color.Color {
		return fadeRGBA(scaled.RGBAAt(x, y), opts.Opacity)
	}))
	rd.filler.Draw()
	rd.filler.Clear()
	// do not retain the scaled image
	rd.filler.SetColor(color.Transparent)
	return nil
}
