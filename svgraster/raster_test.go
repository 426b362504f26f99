package svgraster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/benoitkugler/svgdom/datauri"
	"github.com/benoitkugler/svgdom/svgdraw"
	"github.com/benoitkugler/svgdom/svgelem"
	"github.com/benoitkugler/svgdom/svgunit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toPngBytes(t *testing.T, m image.Image) []byte {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, m))
	return b.Bytes()
}

func rect(x, y, w, h float64) svgdraw.Path {
	var p svgdraw.Path
	p.AddRect(svgdraw.Bounds{X: x, Y: y, W: w, H: h})
	return p
}

func TestFillPlainColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	rd := NewRenderer(img)
	require.NoError(t, rd.FillPath(rect(5, 5, 10, 10), svgdraw.NewPlainColor(255, 0, 0, 255), svgdraw.DefaultFill))

	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(17, 17))

	// nil paint is a no-op
	require.NoError(t, rd.FillPath(rect(0, 0, 20, 20), nil, svgdraw.DefaultFill))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(2, 2))
}

func TestFillGradient(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 10))
	rd := NewRenderer(img)
	grad := svgdraw.Gradient{
		Direction: svgdraw.Linear{0, 0, 1, 0},
		Units:     svgdraw.ObjectBoundingBox,
		Stops: []svgdraw.GradStop{
			{StopColor: color.Black, Offset: 0, Opacity: 1},
			{StopColor: color.White, Offset: 1, Opacity: 1},
		},
	}
	require.NoError(t, rd.FillPath(rect(0, 0, 100, 10), grad, svgdraw.DefaultFill))

	left, right := img.RGBAAt(5, 5), img.RGBAAt(95, 5)
	assert.Less(t, left.R, right.R)
	assert.Equal(t, uint8(255), left.A)
}

func TestStroke(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	rd := NewRenderer(img)
	opts := svgdraw.DefaultStroke
	opts.Width = 2
	require.NoError(t, rd.StrokePath(rect(5, 5, 10, 10), svgdraw.NewPlainColor(0, 0, 255, 255), opts))

	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(10, 5))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(10, 10))

	opts.Width = 0
	require.NoError(t, rd.StrokePath(rect(0, 0, 20, 20), svgdraw.NewPlainColor(0, 255, 0, 255), opts))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(10, 10))
}

func TestFillPattern(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{B: 255, A: 255})

	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	rd := NewRenderer(img)
	target := svgdraw.Bounds{X: 0, Y: 0, W: 40, H: 20}
	var p svgdraw.Path
	p.AddRect(target)
	require.NoError(t, rd.FillPathPattern(p, svgdraw.NewImagePattern(src, target), svgdraw.DefaultFill))

	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(2, 10))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(37, 10))
}

func TestRasterImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	root := svgelem.NewGroup()
	im := svgelem.NewImage()
	im.SetX(svgunit.Pixels(10))
	im.SetY(svgunit.Pixels(10))
	im.SetWidth(svgunit.New(50, svgunit.Percent))
	im.SetHeight(svgunit.New(50, svgunit.Percent))
	im.SetHref(datauri.Encode("image/png", toPngBytes(t, src)))
	root.AppendChild(im)

	circle := svgelem.NewCircle()
	circle.SetCx(svgunit.Pixels(80))
	circle.SetCy(svgunit.Pixels(80))
	circle.SetR(svgunit.Pixels(10))
	circle.Attributes().SetString(svgelem.AttrFill, "lime")
	root.AppendChild(circle)

	out, err := RasterImage(root, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, out.RGBAAt(30, 30))
	assert.Equal(t, color.RGBA{}, out.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, out.RGBAAt(65, 30))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, out.RGBAAt(80, 80))
}
