package element

import (
	"github.com/go-helio/helio/pkg/geometry"
	"github.com/go-helio/helio/pkg/layouts"
	"github.com/go-helio/helio/pkg/paint"
)

// Box is a fixed-size colored rectangle.
type Box struct {
	Size  geometry.Size
	Color paint.Color
}

// NewBox returns a box with the given size and fill.
func NewBox(size geometry.Size, color paint.Color) *Box {
	return &Box{Size: size, Color: color}
}

func (b *Box) Layout(ctx *LayoutContext) layouts.NodeID {
	size := b.Size
	return ctx.Solver.NewLeaf(layouts.Style{Width: size.Width, Height: size.Height}, func(geometry.Size) geometry.Size {
		return size
	})
}

func (b *Box) Paint(bounds geometry.Rect, ctx *PaintContext) {
	if !ctx.IsVisible(bounds) {
		return
	}
	if !b.Color.IsTransparent() {
		ctx.Draw.AddRect(ctx.Absolute(bounds), b.Color)
	}
}

// Label is a single run of text measured by the frame's text oracle.
type Label struct {
	Text  string
	Style paint.TextStyle
}

// NewLabel returns a label with the given text and style.
func NewLabel(text string, style paint.TextStyle) *Label {
	return &Label{Text: text, Style: style}
}

func (l *Label) Layout(ctx *LayoutContext) layouts.NodeID {
	measurer := ctx.Measurer
	text := l.Text
	style := l.Style
	return ctx.Solver.NewLeaf(layouts.Style{}, func(geometry.Size) geometry.Size {
		return measurer.Measure(text, style)
	})
}

func (l *Label) Paint(bounds geometry.Rect, ctx *PaintContext) {
	if !ctx.IsVisible(bounds) {
		return
	}
	ctx.Draw.AddText(ctx.Absolute(bounds).Origin(), l.Text, l.Style)
}

// Container stacks children along one axis. Children paint in a
// translated context so their coordinates stay parent-relative.
type Container struct {
	Style      layouts.Style
	Background paint.Color
	Children   []Element

	node       layouts.NodeID
	childNodes []layouts.NodeID
}

// NewColumn returns a container stacking children top to bottom.
func NewColumn(children ...Element) *Container {
	return &Container{
		Style:    layouts.Style{Direction: layouts.Column},
		Children: children,
	}
}

// NewRow returns a container stacking children left to right.
func NewRow(children ...Element) *Container {
	return &Container{
		Style:    layouts.Style{Direction: layouts.Row},
		Children: children,
	}
}

// WithStyle replaces the container's layout style.
func (c *Container) WithStyle(style layouts.Style) *Container {
	c.Style = style
	return c
}

// WithBackground fills the container's bounds before the children
// paint.
func (c *Container) WithBackground(color paint.Color) *Container {
	c.Background = color
	return c
}

// Add appends a child.
func (c *Container) Add(child Element) *Container {
	c.Children = append(c.Children, child)
	return c
}

func (c *Container) Layout(ctx *LayoutContext) layouts.NodeID {
	c.childNodes = c.childNodes[:0]
	for _, child := range c.Children {
		c.childNodes = append(c.childNodes, child.Layout(ctx))
	}
	c.node = ctx.Solver.NewNode(c.Style, c.childNodes)
	return c.node
}

func (c *Container) Paint(bounds geometry.Rect, ctx *PaintContext) {
	if !ctx.IsVisible(bounds) {
		return
	}
	if !c.Background.IsTransparent() {
		ctx.Draw.AddRect(ctx.Absolute(bounds), c.Background)
	}

	// Children paint relative to this container's content box.
	child := ctx.Child(bounds.Origin())
	for i, el := range c.Children {
		childBounds := ctx.Bounds(c.childNodes[i])
		if !child.IsVisible(childBounds) {
			continue
		}
		el.Paint(childBounds, child)
	}
}
