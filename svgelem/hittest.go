package svgelem

import (
	"github.com/benoitkugler/svgdom/svgunit"
)

// HitTest returns the topmost element of the tree rooted at `root`
// whose outline contains the device point (x, y), or nil.
// Children are painted after their parent, so they are tested first,
// last child first. Hidden elements and elements whose geometry
// can't be resolved are ignored.
func HitTest(root Element, ctx svgunit.Context, x, y float64) Element {
	if root == nil || !isDisplayed(root) {
		return nil
	}
	children := root.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := HitTest(children[i], ctx, x, y); hit != nil {
			return hit
		}
	}
	if _, isGroup := root.(*Group); isGroup {
		return nil
	}
	b, err := root.Bounds(ctx)
	if err != nil || b.Empty() || !b.Contains(x, y) {
		return nil
	}
	path, err := root.PathOutline(ctx)
	if err != nil {
		return nil
	}
	nonZero := true
	if rule, _ := keyword(root, AttrFillRule); rule == "evenodd" {
		nonZero = false
	}
	if path.Contains(x, y, nonZero) {
		return root
	}
	return nil
}
