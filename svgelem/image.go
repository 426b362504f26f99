package svgelem

import (
	"errors"

	"github.com/benoitkugler/svgdom/datauri"
	"github.com/benoitkugler/svgdom/svgattr"
	"github.com/benoitkugler/svgdom/svgdraw"
	"github.com/benoitkugler/svgdom/svgunit"
)

// Image attributes
const (
	AttrX      = "x"
	AttrY      = "y"
	AttrWidth  = "width"
	AttrHeight = "height"
	AttrHref   = "href"
)

// Image paints raster content into the rectangle (x, y, width, height).
// Only inline references (see package datauri) are rendered:
// other references are ignored.
// The content is stretched to fill the rectangle.
type Image struct {
	Node
}

// NewImage returns an image with no attributes.
func NewImage() *Image {
	im := new(Image)
	im.init(im)
	return im
}

func (im *Image) TagName() string { return "image" }

func (im *Image) X() (svgunit.Unit, error)      { return im.attrs.Unit(AttrX) }
func (im *Image) Y() (svgunit.Unit, error)      { return im.attrs.Unit(AttrY) }
func (im *Image) Width() (svgunit.Unit, error)  { return im.attrs.Unit(AttrWidth) }
func (im *Image) Height() (svgunit.Unit, error) { return im.attrs.Unit(AttrHeight) }

// Href returns the content reference, or an error
// wrapping svgattr.ErrUnset if it is not set.
func (im *Image) Href() (string, error) { return im.attrs.URI(AttrHref) }

func (im *Image) SetX(u svgunit.Unit)      { im.attrs.SetUnit(AttrX, u) }
func (im *Image) SetY(u svgunit.Unit)      { im.attrs.SetUnit(AttrY, u) }
func (im *Image) SetWidth(u svgunit.Unit)  { im.attrs.SetUnit(AttrWidth, u) }
func (im *Image) SetHeight(u svgunit.Unit) { im.attrs.SetUnit(AttrHeight, u) }
func (im *Image) SetHref(ref string)       { im.attrs.SetURI(AttrHref, ref) }

// Bounds returns the rectangle (x, y, width, height).
func (im *Image) Bounds(ctx svgunit.Context) (svgdraw.Bounds, error) {
	return rectBounds(&im.Node, ctx)
}

// PathOutline returns the closed rectangle of Bounds.
func (im *Image) PathOutline(ctx svgunit.Context) (svgdraw.Path, error) {
	b, err := im.Bounds(ctx)
	if err != nil {
		return nil, err
	}
	var p svgdraw.Path
	p.AddRect(b)
	return p, nil
}

// RenderFill decodes the inline content and fills the outline with it.
// Nothing is drawn, and no error is returned, when the bounds are empty,
// when href is not set, or when it is not an inline image reference.
// Invalid inline content is an error.
func (im *Image) RenderFill(c *Canvas) error {
	b, err := im.Bounds(c.Units)
	if err != nil {
		return err
	}
	if b.Empty() {
		return nil
	}
	href, err := im.Href()
	if errors.Is(err, svgattr.ErrUnset) {
		return nil
	} else if err != nil {
		return err
	}

	d, err := datauri.Parse(href)
	if errors.Is(err, datauri.ErrNotInline) {
		c.Logger.Debug("unsupported image reference", "href", truncate(href))
		return nil
	} else if err != nil {
		return err
	}
	defer d.Release()

	img, _, err := d.DecodeImage()
	if err != nil {
		return err
	}

	path, err := im.PathOutline(c.Units)
	if err != nil {
		return err
	}
	pattern := svgdraw.NewImagePattern(img, b)
	op, err := groupOpacity(im)
	if err != nil {
		return err
	}
	return c.Surface.FillPathPattern(path, pattern, svgdraw.FillOptions{Opacity: op, NonZero: true})
}

// RenderStroke does nothing: images are never stroked.
func (im *Image) RenderStroke(*Canvas) error { return nil }

// Render skips images with a non positive width or height.
func (im *Image) Render(c *Canvas) error {
	if !isDisplayed(im) {
		return nil
	}
	b, err := im.Bounds(c.Units)
	if err != nil {
		return err
	}
	if b.Empty() {
		c.Logger.Debug("skipping degenerate element", "tag", im.TagName(), "width", b.W, "height", b.H)
		return nil
	}
	return renderElement(im, c)
}

// DuplicateImage returns an independent copy of the image.
func (im *Image) DuplicateImage() *Image {
	out := new(Image)
	out.Node = im.copyNode(out)
	copyUnits(&out.Node, &im.Node, AttrX, AttrY, AttrWidth, AttrHeight)
	if v, ok := im.attrs.Get(AttrHref); ok && v.Kind() == svgattr.KindURI {
		href, _ := im.Href()
		out.SetHref(href)
	}
	return out
}

func (im *Image) Duplicate() Element { return im.DuplicateImage() }

// truncate shortens inline payloads for logging
func truncate(s string) string {
	const maxLen = 64
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
