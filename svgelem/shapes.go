package svgelem

import (
	"github.com/benoitkugler/svgdom/svgattr"
	"github.com/benoitkugler/svgdom/svgdraw"
	"github.com/benoitkugler/svgdom/svgunit"
)

// shape attributes
const (
	AttrRx = "rx"
	AttrRy = "ry"
	AttrCx = "cx"
	AttrCy = "cy"
	AttrR  = "r"
)

// length resolves the unit stored under `key`
func (n *Node) length(key string, ctx svgunit.Context, base svgunit.Base) (float64, error) {
	u, err := n.attrs.Unit(key)
	if err != nil {
		return 0, err
	}
	return u.ToDevice(ctx, base), nil
}

// rectBounds resolves the x, y, width, height attributes
func rectBounds(n *Node, ctx svgunit.Context) (svgdraw.Bounds, error) {
	var (
		out svgdraw.Bounds
		err error
	)
	if out.X, err = n.length(AttrX, ctx, svgunit.WidthBase); err != nil {
		return out, err
	}
	if out.Y, err = n.length(AttrY, ctx, svgunit.HeightBase); err != nil {
		return out, err
	}
	if out.W, err = n.length(AttrWidth, ctx, svgunit.WidthBase); err != nil {
		return out, err
	}
	if out.H, err = n.length(AttrHeight, ctx, svgunit.HeightBase); err != nil {
		return out, err
	}
	return out, nil
}

// copyUnits is the typed step of duplication: the lengths
// stored as units under `keys` in `src` are written to `dst`
// through the typed setter. Other kinds (strings from a loader,
// numbers) are left as cloned by copyNode, so that both stores
// stay equal.
func copyUnits(dst, src *Node, keys ...string) {
	for _, key := range keys {
		if v, ok := src.attrs.Get(key); !ok || v.Kind() != svgattr.KindUnit {
			continue
		}
		if u, err := src.attrs.Unit(key); err == nil {
			dst.attrs.SetUnit(key, u)
		}
	}
}

// Rect is a rectangle, with optional rounded corners.
type Rect struct {
	Node
}

func NewRect() *Rect {
	r := new(Rect)
	r.init(r)
	return r
}

func (r *Rect) TagName() string { return "rect" }

func (r *Rect) X() (svgunit.Unit, error)      { return r.attrs.Unit(AttrX) }
func (r *Rect) Y() (svgunit.Unit, error)      { return r.attrs.Unit(AttrY) }
func (r *Rect) Width() (svgunit.Unit, error)  { return r.attrs.Unit(AttrWidth) }
func (r *Rect) Height() (svgunit.Unit, error) { return r.attrs.Unit(AttrHeight) }
func (r *Rect) Rx() (svgunit.Unit, error)     { return r.attrs.Unit(AttrRx) }
func (r *Rect) Ry() (svgunit.Unit, error)     { return r.attrs.Unit(AttrRy) }

func (r *Rect) SetX(u svgunit.Unit)      { r.attrs.SetUnit(AttrX, u) }
func (r *Rect) SetY(u svgunit.Unit)      { r.attrs.SetUnit(AttrY, u) }
func (r *Rect) SetWidth(u svgunit.Unit)  { r.attrs.SetUnit(AttrWidth, u) }
func (r *Rect) SetHeight(u svgunit.Unit) { r.attrs.SetUnit(AttrHeight, u) }
func (r *Rect) SetRx(u svgunit.Unit)     { r.attrs.SetUnit(AttrRx, u) }
func (r *Rect) SetRy(u svgunit.Unit)     { r.attrs.SetUnit(AttrRy, u) }

func (r *Rect) Bounds(ctx svgunit.Context) (svgdraw.Bounds, error) {
	return rectBounds(&r.Node, ctx)
}

// radii returns the corner radii: when only one is set,
// the other uses the same value.
func (r *Rect) radii(ctx svgunit.Context) (rx, ry float64, err error) {
	if rx, err = r.length(AttrRx, ctx, svgunit.WidthBase); err != nil {
		return 0, 0, err
	}
	if ry, err = r.length(AttrRy, ctx, svgunit.HeightBase); err != nil {
		return 0, 0, err
	}
	switch hasX, hasY := r.attrs.Has(AttrRx), r.attrs.Has(AttrRy); {
	case hasX && !hasY:
		ry = rx
	case hasY && !hasX:
		rx = ry
	}
	return rx, ry, nil
}

// PathOutline returns the closed rectangle of Bounds,
// with elliptical corners if rx or ry is set.
func (r *Rect) PathOutline(ctx svgunit.Context) (svgdraw.Path, error) {
	b, err := r.Bounds(ctx)
	if err != nil {
		return nil, err
	}
	rx, ry, err := r.radii(ctx)
	if err != nil {
		return nil, err
	}
	var p svgdraw.Path
	p.AddRoundRect(b, rx, ry)
	return p, nil
}

func (r *Rect) RenderFill(c *Canvas) error   { return renderShapeFill(r, c) }
func (r *Rect) RenderStroke(c *Canvas) error { return renderShapeStroke(r, c) }

func (r *Rect) Render(c *Canvas) error {
	if !isDisplayed(r) {
		return nil
	}
	b, err := r.Bounds(c.Units)
	if err != nil {
		return err
	}
	if b.Empty() {
		c.Logger.Debug("skipping degenerate element", "tag", r.TagName(), "width", b.W, "height", b.H)
		return nil
	}
	return renderElement(r, c)
}

func (r *Rect) DuplicateRect() *Rect {
	out := new(Rect)
	out.Node = r.copyNode(out)
	copyUnits(&out.Node, &r.Node, AttrX, AttrY, AttrWidth, AttrHeight, AttrRx, AttrRy)
	return out
}

func (r *Rect) Duplicate() Element { return r.DuplicateRect() }

// Ellipse is an ellipse or a circle, depending on the
// constructor used.
type Ellipse struct {
	Node
	circle bool
}

// NewEllipse returns an <ellipse>, defined by cx, cy, rx, ry.
func NewEllipse() *Ellipse {
	e := new(Ellipse)
	e.init(e)
	return e
}

// NewCircle returns a <circle>, defined by cx, cy, r.
func NewCircle() *Ellipse {
	e := NewEllipse()
	e.circle = true
	return e
}

func (e *Ellipse) TagName() string {
	if e.circle {
		return "circle"
	}
	return "ellipse"
}

func (e *Ellipse) Cx() (svgunit.Unit, error) { return e.attrs.Unit(AttrCx) }
func (e *Ellipse) Cy() (svgunit.Unit, error) { return e.attrs.Unit(AttrCy) }

func (e *Ellipse) SetCx(u svgunit.Unit) { e.attrs.SetUnit(AttrCx, u) }
func (e *Ellipse) SetCy(u svgunit.Unit) { e.attrs.SetUnit(AttrCy, u) }

// SetR sets the radius of a circle.
func (e *Ellipse) SetR(u svgunit.Unit) { e.attrs.SetUnit(AttrR, u) }

func (e *Ellipse) SetRx(u svgunit.Unit) { e.attrs.SetUnit(AttrRx, u) }
func (e *Ellipse) SetRy(u svgunit.Unit) { e.attrs.SetUnit(AttrRy, u) }

// radii returns r for circles; for ellipses, a missing
// radius uses the other one.
func (e *Ellipse) radii(ctx svgunit.Context) (rx, ry float64, err error) {
	if e.circle {
		r, err := e.length(AttrR, ctx, svgunit.DiagonalBase)
		return r, r, err
	}
	if rx, err = e.length(AttrRx, ctx, svgunit.WidthBase); err != nil {
		return 0, 0, err
	}
	if ry, err = e.length(AttrRy, ctx, svgunit.HeightBase); err != nil {
		return 0, 0, err
	}
	switch hasX, hasY := e.attrs.Has(AttrRx), e.attrs.Has(AttrRy); {
	case hasX && !hasY:
		ry = rx
	case hasY && !hasX:
		rx = ry
	}
	return rx, ry, nil
}

func (e *Ellipse) Bounds(ctx svgunit.Context) (svgdraw.Bounds, error) {
	cx, err := e.length(AttrCx, ctx, svgunit.WidthBase)
	if err != nil {
		return svgdraw.Bounds{}, err
	}
	cy, err := e.length(AttrCy, ctx, svgunit.HeightBase)
	if err != nil {
		return svgdraw.Bounds{}, err
	}
	rx, ry, err := e.radii(ctx)
	if err != nil {
		return svgdraw.Bounds{}, err
	}
	return svgdraw.Bounds{X: cx - rx, Y: cy - ry, W: 2 * rx, H: 2 * ry}, nil
}

func (e *Ellipse) PathOutline(ctx svgunit.Context) (svgdraw.Path, error) {
	b, err := e.Bounds(ctx)
	if err != nil {
		return nil, err
	}
	var p svgdraw.Path
	p.AddEllipse(b.X+b.W/2, b.Y+b.H/2, b.W/2, b.H/2)
	return p, nil
}

func (e *Ellipse) RenderFill(c *Canvas) error   { return renderShapeFill(e, c) }
func (e *Ellipse) RenderStroke(c *Canvas) error { return renderShapeStroke(e, c) }

func (e *Ellipse) Render(c *Canvas) error {
	if !isDisplayed(e) {
		return nil
	}
	b, err := e.Bounds(c.Units)
	if err != nil {
		return err
	}
	if b.Empty() {
		c.Logger.Debug("skipping degenerate element", "tag", e.TagName(), "rx", b.W/2, "ry", b.H/2)
		return nil
	}
	return renderElement(e, c)
}

func (e *Ellipse) DuplicateEllipse() *Ellipse {
	out := &Ellipse{circle: e.circle}
	out.Node = e.copyNode(out)
	copyUnits(&out.Node, &e.Node, AttrCx, AttrCy, AttrR, AttrRx, AttrRy)
	return out
}

func (e *Ellipse) Duplicate() Element { return e.DuplicateEllipse() }

// Group is a container, without geometry of its own.
// Its presentation attributes are inherited by its children.
type Group struct {
	Node
}

func NewGroup() *Group {
	g := new(Group)
	g.init(g)
	return g
}

func (g *Group) TagName() string { return "g" }

// Bounds returns the union of the bounds of the displayed children.
func (g *Group) Bounds(ctx svgunit.Context) (svgdraw.Bounds, error) {
	var out svgdraw.Bounds
	for _, child := range g.children {
		if !isDisplayed(child) {
			continue
		}
		b, err := child.Bounds(ctx)
		if err != nil {
			return svgdraw.Bounds{}, err
		}
		if b.Empty() {
			continue
		}
		out = out.Union(b)
	}
	return out, nil
}

// PathOutline concatenates the outlines of the displayed children.
func (g *Group) PathOutline(ctx svgunit.Context) (svgdraw.Path, error) {
	var out svgdraw.Path
	for _, child := range g.children {
		if !isDisplayed(child) {
			continue
		}
		p, err := child.PathOutline(ctx)
		if err != nil {
			return nil, err
		}
		out.Append(p)
	}
	return out, nil
}

func (g *Group) RenderFill(*Canvas) error   { return nil }
func (g *Group) RenderStroke(*Canvas) error { return nil }

func (g *Group) Render(c *Canvas) error {
	if !isDisplayed(g) {
		return nil
	}
	return renderElement(g, c)
}

func (g *Group) DuplicateGroup() *Group {
	out := new(Group)
	out.Node = g.copyNode(out)
	return out
}

func (g *Group) Duplicate() Element { return g.DuplicateGroup() }
