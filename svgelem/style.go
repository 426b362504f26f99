package svgelem

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/svgdom/svgattr"
	"github.com/benoitkugler/svgdom/svgdraw"
	"github.com/benoitkugler/svgdom/svgunit"
	"golang.org/x/image/math/fixed"
)

// presentation attributes
const (
	AttrFill             = "fill"
	AttrFillOpacity      = "fill-opacity"
	AttrFillRule         = "fill-rule"
	AttrStroke           = "stroke"
	AttrStrokeOpacity    = "stroke-opacity"
	AttrStrokeWidth      = "stroke-width"
	AttrStrokeLinecap    = "stroke-linecap"
	AttrStrokeLinejoin   = "stroke-linejoin"
	AttrStrokeMiterlimit = "stroke-miterlimit"
	AttrStrokeDasharray  = "stroke-dasharray"
	AttrStrokeDashoffset = "stroke-dashoffset"
	AttrOpacity          = "opacity"
	AttrDisplay          = "display"
	AttrVisibility       = "visibility"
)

// inherited lists the properties looked up along the parent chain
// when not set on the element.
var inherited = map[string]bool{
	AttrFill:             true,
	AttrFillOpacity:      true,
	AttrFillRule:         true,
	AttrStroke:           true,
	AttrStrokeOpacity:    true,
	AttrStrokeWidth:      true,
	AttrStrokeLinecap:    true,
	AttrStrokeLinejoin:   true,
	AttrStrokeMiterlimit: true,
	AttrStrokeDasharray:  true,
	AttrStrokeDashoffset: true,
	AttrVisibility:       true,
}

// property returns a store holding the value of `key` for `e`,
// resolved through the parent chain for inherited properties.
func property(e Element, key string) *svgattr.Store {
	if !inherited[key] {
		return e.Attributes()
	}
	return svgattr.Resolved(key, e.Attributes(), e.node().ancestors())
}

// keyword returns the lower cased text value of `key`, or ""
func keyword(e Element, key string) (string, error) {
	s, err := property(e, key).Str(key)
	return strings.ToLower(strings.TrimSpace(s)), err
}

// isDisplayed returns false for display="none" and
// (inherited) visibility="hidden" or "collapse".
func isDisplayed(e Element) bool {
	if d, _ := keyword(e, AttrDisplay); d == "none" {
		return false
	}
	v, _ := keyword(e, AttrVisibility)
	return v != "hidden" && v != "collapse"
}

// numberOr returns the number stored under `key`, or `def` if absent.
func numberOr(s *svgattr.Store, key string, def float64) (float64, error) {
	if !s.Has(key) {
		return def, nil
	}
	return s.Number(key)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// groupOpacity returns the product of the opacity
// of `e` and of its ancestors.
func groupOpacity(e Element) (float64, error) {
	op := 1.
	for cur := e; cur != nil; cur = cur.Parent() {
		o, err := numberOr(cur.Attributes(), AttrOpacity, 1)
		if err != nil {
			return 0, err
		}
		op *= clamp01(o)
	}
	return op, nil
}

// paintOr resolves a fill or stroke paint, returning `def`
// when the property is not set anywhere in the chain.
func paintOr(e Element, key string, def svgdraw.Paint) (svgdraw.Paint, error) {
	s := property(e, key)
	if !s.Has(key) {
		return def, nil
	}
	return s.Paint(key)
}

// fillStyle returns the paint used by RenderFill (nil for none).
func fillStyle(e Element) (svgdraw.Paint, svgdraw.FillOptions, error) {
	opts := svgdraw.DefaultFill
	paint, err := paintOr(e, AttrFill, svgdraw.NewPlainColor(0, 0, 0, 0xff))
	if err != nil || paint == nil {
		return nil, opts, err
	}
	fo, err := numberOr(property(e, AttrFillOpacity), AttrFillOpacity, 1)
	if err != nil {
		return nil, opts, err
	}
	op, err := groupOpacity(e)
	if err != nil {
		return nil, opts, err
	}
	opts.Opacity = clamp01(fo) * op

	rule, err := keyword(e, AttrFillRule)
	if err != nil {
		return nil, opts, err
	}
	switch rule {
	case "", "nonzero":
		opts.NonZero = true
	case "evenodd":
		opts.NonZero = false
	default:
		return nil, opts, fmt.Errorf("invalid %s %q", AttrFillRule, rule)
	}
	return paint, opts, nil
}

// strokeStyle returns the paint used by RenderStroke (nil for none).
// The stroke width is resolved in device space.
func strokeStyle(e Element, ctx svgunit.Context) (svgdraw.Paint, svgdraw.StrokeOptions, error) {
	opts := svgdraw.DefaultStroke
	paint, err := paintOr(e, AttrStroke, nil)
	if err != nil || paint == nil {
		return nil, opts, err
	}

	s := property(e, AttrStrokeWidth)
	if s.Has(AttrStrokeWidth) {
		w, err := s.Unit(AttrStrokeWidth)
		if err != nil {
			return nil, opts, err
		}
		opts.Width = w.ToDevice(ctx, svgunit.DiagonalBase)
	}
	if opts.Width <= 0 {
		return nil, opts, nil
	}

	so, err := numberOr(property(e, AttrStrokeOpacity), AttrStrokeOpacity, 1)
	if err != nil {
		return nil, opts, err
	}
	op, err := groupOpacity(e)
	if err != nil {
		return nil, opts, err
	}
	opts.Opacity = clamp01(so) * op

	if c, err := keyword(e, AttrStrokeLinecap); err != nil {
		return nil, opts, err
	} else if c != "" {
		mode, ok := svgdraw.ParseCapMode(c)
		if !ok {
			return nil, opts, fmt.Errorf("invalid %s %q", AttrStrokeLinecap, c)
		}
		opts.Join.LineCap = mode
	}
	if j, err := keyword(e, AttrStrokeLinejoin); err != nil {
		return nil, opts, err
	} else if j != "" {
		mode, ok := svgdraw.ParseJoinMode(j)
		if !ok {
			return nil, opts, fmt.Errorf("invalid %s %q", AttrStrokeLinejoin, j)
		}
		opts.Join.LineJoin = mode
	}
	ml, err := numberOr(property(e, AttrStrokeMiterlimit), AttrStrokeMiterlimit, 4)
	if err != nil {
		return nil, opts, err
	}
	opts.Join.MiterLimit = fixed.Int26_6(ml * 64)

	if opts.Dash, err = dashStyle(e, ctx); err != nil {
		return nil, opts, err
	}
	return paint, opts, nil
}

// dashStyle resolves the dash array and offset in device units.
func dashStyle(e Element, ctx svgunit.Context) (svgdraw.DashOptions, error) {
	var out svgdraw.DashOptions
	s := property(e, AttrStrokeDasharray)
	if v, ok := s.Get(AttrStrokeDasharray); ok && strings.TrimSpace(v.String()) != "none" {
		lengths, err := s.Units(AttrStrokeDasharray)
		if err != nil {
			return out, err
		}
		dashes := make([]float64, len(lengths))
		sum := 0.
		for i, l := range lengths {
			if l.Value < 0 {
				return out, fmt.Errorf("negative value in %s", AttrStrokeDasharray)
			}
			dashes[i] = l.ToDevice(ctx, svgunit.DiagonalBase)
			sum += dashes[i]
		}
		if sum > 0 { // an all zero array renders as a solid line
			if len(dashes)%2 == 1 {
				dashes = append(dashes, dashes...)
			}
			out.Dash = dashes
		}
	}
	offset, err := property(e, AttrStrokeDashoffset).Unit(AttrStrokeDashoffset)
	out.DashOffset = offset.ToDevice(ctx, svgunit.DiagonalBase)
	return out, err
}

// renderShapeFill fills the outline of `e` with its fill paint.
func renderShapeFill(e Element, c *Canvas) error {
	paint, opts, err := fillStyle(e)
	if err != nil || paint == nil || opts.Opacity == 0 {
		return err
	}
	path, err := e.PathOutline(c.Units)
	if err != nil || len(path) == 0 {
		return err
	}
	return c.Surface.FillPath(path, paint, opts)
}

// renderShapeStroke strokes the outline of `e` with its stroke paint.
func renderShapeStroke(e Element, c *Canvas) error {
	paint, opts, err := strokeStyle(e, c.Units)
	if err != nil || paint == nil || opts.Opacity == 0 {
		return err
	}
	path, err := e.PathOutline(c.Units)
	if err != nil || len(path) == 0 {
		return err
	}
	return c.Surface.StrokePath(path, paint, opts)
}
