// Package element defines the two-phase layout and paint protocol.
//
// An element first describes itself to the layout solver and gets back
// a node ID. Once the solver has computed the tree, the element paints
// into the bounds the solver assigned, which arrive already translated
// into its parent's content box. Containers translate their paint
// context when descending so draw and hit-test coordinates stay
// absolute without any element knowing its own absolute position.
package element

import (
	"github.com/go-helio/helio/pkg/dragdrop"
	"github.com/go-helio/helio/pkg/geometry"
	"github.com/go-helio/helio/pkg/interaction"
	"github.com/go-helio/helio/pkg/layouts"
	"github.com/go-helio/helio/pkg/paint"
	"github.com/go-helio/helio/pkg/text"
)

// Element is anything that can lay itself out and paint.
//
// Layout runs exactly once before Paint each frame. Paint receives the
// element's bounds relative to its parent's content box; the context
// carries the accumulated absolute origin.
type Element interface {
	Layout(ctx *LayoutContext) layouts.NodeID
	Paint(bounds geometry.Rect, ctx *PaintContext)
}

// LayoutContext is what elements see during the layout phase.
type LayoutContext struct {
	Solver   layouts.Solver
	Measurer text.Measurer
}

// NewLayoutContext returns a layout context over a solver and a text
// measurer.
func NewLayoutContext(solver layouts.Solver, measurer text.Measurer) *LayoutContext {
	return &LayoutContext{Solver: solver, Measurer: measurer}
}

// PaintContext is what elements see during the paint phase. Child
// contexts share the draw list and registries; only the origin
// changes as containers descend.
type PaintContext struct {
	Draw     *paint.DrawList
	HitTest  *interaction.HitTestBuilder
	Registry *interaction.Registry
	Zones    *dragdrop.ZoneRegistry
	Solver   layouts.Solver

	origin geometry.Offset
}

// NewPaintContext returns a root paint context with a zero origin.
func NewPaintContext(draw *paint.DrawList, hitTest *interaction.HitTestBuilder, registry *interaction.Registry, zones *dragdrop.ZoneRegistry, solver layouts.Solver) *PaintContext {
	return &PaintContext{
		Draw:     draw,
		HitTest:  hitTest,
		Registry: registry,
		Zones:    zones,
		Solver:   solver,
	}
}

// Origin returns the accumulated absolute origin.
func (c *PaintContext) Origin() geometry.Offset {
	return c.origin
}

// Child derives a context for painting children, with the origin
// advanced by a child's position.
func (c *PaintContext) Child(offset geometry.Offset) *PaintContext {
	child := *c
	child.origin = c.origin.Add(offset)
	return &child
}

// Absolute translates parent-relative bounds into absolute
// coordinates.
func (c *PaintContext) Absolute(bounds geometry.Rect) geometry.Rect {
	return bounds.Translate(c.origin)
}

// Viewport returns the draw list's viewport, if one is set.
func (c *PaintContext) Viewport() (geometry.Rect, bool) {
	return c.Draw.Viewport()
}

// IsVisible reports whether parent-relative bounds intersect the
// viewport. Elements use it to skip painting offscreen children.
func (c *PaintContext) IsVisible(bounds geometry.Rect) bool {
	return c.Draw.IsVisible(c.Absolute(bounds))
}

// Bounds returns a layout node's parent-relative bounds.
func (c *PaintContext) Bounds(node layouts.NodeID) geometry.Rect {
	return c.Solver.Bounds(node)
}

// RegisterHitTest claims the bounds for pointer events at relativeZ.
func (c *PaintContext) RegisterHitTest(id interaction.ElementID, bounds geometry.Rect, relativeZ int) {
	if c.HitTest != nil {
		c.HitTest.Add(id, c.Absolute(bounds), relativeZ)
	}
}

// RegisterFocusable claims the bounds and joins the Tab order.
func (c *PaintContext) RegisterFocusable(id interaction.ElementID, bounds geometry.Rect, relativeZ int) {
	if c.HitTest != nil {
		c.HitTest.AddFocusable(id, c.Absolute(bounds), relativeZ)
	}
}

// RegisterHandlers installs an element's event handlers for the frame.
func (c *PaintContext) RegisterHandlers(id interaction.ElementID, handlers *interaction.Handlers) {
	if c.Registry != nil {
		c.Registry.Register(id, handlers)
	}
}

// State reads an element's interaction state.
func (c *PaintContext) State(id interaction.ElementID) interaction.State {
	if c.Registry == nil {
		return interaction.State{}
	}
	return c.Registry.StateOf(id)
}

// RegisterDropZone installs a drop zone. The zone's bounds must be
// parent-relative; they are translated to absolute here.
func (c *PaintContext) RegisterDropZone(zone dragdrop.Zone) {
	if c.Zones == nil {
		return
	}
	zone.Bounds = c.Absolute(zone.Bounds)
	c.Zones.Register(zone)
}

// PushZ raises the hit-test z base for an overlay's children.
func (c *PaintContext) PushZ(offset int) {
	if c.HitTest != nil {
		c.HitTest.PushZ(offset)
	}
}

// PopZ undoes a matching PushZ.
func (c *PaintContext) PopZ(offset int) {
	if c.HitTest != nil {
		c.HitTest.PopZ(offset)
	}
}
