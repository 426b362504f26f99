// Package svgelem implements the element tree: drawable nodes
// storing their properties in an attribute store, deriving their
// geometry from it on demand and rendering themselves to a
// drawing surface.
//
// Elements are created with their constructor (NewImage, NewRect,
// NewEllipse, NewCircle, NewGroup) and assembled with AppendChild.
// A parent exclusively owns its children.
package svgelem

import (
	"github.com/benoitkugler/svgdom/svgattr"
	"github.com/benoitkugler/svgdom/svgdraw"
	"github.com/benoitkugler/svgdom/svgunit"
)

// Element is a node of the tree. It is implemented by
// *Image, *Rect, *Ellipse and *Group.
//
// Geometry is never cached: Bounds and PathOutline are
// computed from the current attribute values.
type Element interface {
	// TagName returns the SVG tag of the element.
	TagName() string

	Attributes() *svgattr.Store
	// Parent returns nil for a root element.
	Parent() Element
	// Children returns the owned children, in paint order.
	// The returned slice must not be modified.
	Children() []Element

	// Bounds returns the axis aligned extent, in device space.
	Bounds(ctx svgunit.Context) (svgdraw.Bounds, error)
	// PathOutline returns the outline used for filling,
	// stroking and hit-testing, in device space.
	PathOutline(ctx svgunit.Context) (svgdraw.Path, error)

	// RenderFill issues the fill instructions of the element only.
	// It is a no-op when there is nothing to paint.
	RenderFill(c *Canvas) error
	// RenderStroke issues the stroke instructions of the element only.
	RenderStroke(c *Canvas) error
	// Render renders the element and its children, unless
	// its geometry is degenerate or it is not displayed.
	Render(c *Canvas) error

	// Duplicate returns an independent deep copy of the element
	// and its children. The copy has no parent.
	Duplicate() Element

	node() *Node
}

// Node holds the state common to every element,
// and is embedded by the concrete element types.
type Node struct {
	attrs    svgattr.Store
	children []Element
	parent   Element
	self     Element // the element embedding the node
}

func (n *Node) node() *Node { return n }

// init binds the node to the element embedding it
func (n *Node) init(self Element) { n.self = self }

// Attributes returns the store backing the element properties.
func (n *Node) Attributes() *svgattr.Store { return &n.attrs }

func (n *Node) Parent() Element { return n.parent }

func (n *Node) Children() []Element { return n.children }

// AppendChild adds `child` as the last child.
// It panics if `child` already has a parent: use MoveChild
// to change the owner of an element.
func (n *Node) AppendChild(child Element) {
	if n.self == nil {
		panic("svgelem: element not created by its constructor")
	}
	cn := child.node()
	if cn.parent != nil {
		panic("svgelem: <" + child.TagName() + "> already has a parent")
	}
	if child == n.self || isAncestor(child, n.self) {
		panic("svgelem: cycle in element tree")
	}
	cn.parent = n.self
	n.children = append(n.children, child)
}

// isAncestor returns true if `a` is an ancestor of `e`
func isAncestor(a, e Element) bool {
	for p := e.Parent(); p != nil; p = p.Parent() {
		if p == a {
			return true
		}
	}
	return false
}

// RemoveChild detaches `child`, returning false if it is not
// a child of the receiver.
func (n *Node) RemoveChild(child Element) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.node().parent = nil
			return true
		}
	}
	return false
}

// MoveChild detaches `child` from its current parent, if any,
// and appends it to `newParent`.
func MoveChild(child, newParent Element) {
	if p := child.Parent(); p != nil {
		p.node().RemoveChild(child)
	}
	newParent.node().AppendChild(child)
}

// ancestors returns the attribute stores of the parent chain,
// nearest first.
func (n *Node) ancestors() []*svgattr.Store {
	var out []*svgattr.Store
	for p := n.parent; p != nil; p = p.Parent() {
		out = append(out, p.Attributes())
	}
	return out
}

// copyNode is the first duplication step, shared by all elements:
// it deep copies the attributes and duplicates the children,
// attaching them to `self`, the new element.
func (n *Node) copyNode(self Element) Node {
	out := Node{self: self, attrs: *n.attrs.Clone()}
	if len(n.children) != 0 {
		out.children = make([]Element, len(n.children))
		for i, child := range n.children {
			cp := child.Duplicate()
			cp.node().parent = self
			out.children[i] = cp
		}
	}
	return out
}

// Duplicate returns a deep copy of `e`, preserving its concrete type.
// It returns nil for a nil element.
func Duplicate(e Element) Element {
	if e == nil {
		return nil
	}
	return e.Duplicate()
}

// renderElement is the rendering pipeline shared by elements:
// fill, stroke, then the children, in order.
func renderElement(e Element, c *Canvas) error {
	if err := e.RenderFill(c); err != nil {
		return err
	}
	if err := e.RenderStroke(c); err != nil {
		return err
	}
	return renderChildren(e, c)
}

func renderChildren(e Element, c *Canvas) error {
	for _, child := range e.Children() {
		if err := c.handle(child, child.Render(c)); err != nil {
			return err
		}
	}
	return nil
}

// Draw renders the tree rooted at `root` onto `surface`.
// Failing elements are handled according to the canvas ErrorMode
// (IgnoreErrorMode by default).
func Draw(root Element, surface svgdraw.Surface, opts ...Option) error {
	c := NewCanvas(surface, opts...)
	return c.handle(root, root.Render(c))
}
