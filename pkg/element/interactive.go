package element

import (
	"github.com/go-helio/helio/pkg/geometry"
	"github.com/go-helio/helio/pkg/interaction"
	"github.com/go-helio/helio/pkg/layouts"
	"github.com/go-helio/helio/pkg/paint"
)

// Interactive wraps an element with pointer and keyboard behavior. It
// registers a hit-test entry and handlers during paint and draws a
// state overlay on top of the wrapped element.
//
// It only reads interaction state; hover, press and focus are owned by
// the interaction system and arrive through dispatched events.
type Interactive struct {
	ID    interaction.ElementID
	Child Element

	enabled   bool
	focusable bool
	zOffset   int

	hoverColor paint.Color
	pressColor paint.Color
	focusColor paint.Color

	handlers interaction.Handlers
}

// NewInteractive wraps child under a stable element ID. The wrapper
// starts enabled, non-focusable, with transparent overlays.
func NewInteractive(id interaction.ElementID, child Element) *Interactive {
	return &Interactive{
		ID:      id,
		Child:   child,
		enabled: true,
	}
}

// Focusable puts the element in the Tab order.
func (e *Interactive) Focusable() *Interactive {
	e.focusable = true
	return e
}

// Enabled toggles event delivery. A disabled element paints its child
// but registers nothing.
func (e *Interactive) Enabled(enabled bool) *Interactive {
	e.enabled = enabled
	return e
}

// ZOffset raises the element's hit-test z relative to its siblings.
func (e *Interactive) ZOffset(z int) *Interactive {
	e.zOffset = z
	return e
}

// HoverColor sets the overlay drawn while hovered.
func (e *Interactive) HoverColor(c paint.Color) *Interactive {
	e.hoverColor = c
	return e
}

// PressColor sets the overlay drawn while pressed.
func (e *Interactive) PressColor(c paint.Color) *Interactive {
	e.pressColor = c
	return e
}

// FocusColor sets the overlay drawn while focused.
func (e *Interactive) FocusColor(c paint.Color) *Interactive {
	e.focusColor = c
	return e
}

// OnClick sets the click handler.
func (e *Interactive) OnClick(f func(button interaction.MouseButton, position, local geometry.Offset)) *Interactive {
	e.handlers.OnClick = f
	return e
}

// OnKeyDown sets the key handler. Keys only arrive while focused.
func (e *Interactive) OnKeyDown(f func(key interaction.Key, modifiers interaction.Modifiers, r rune, isRepeat bool)) *Interactive {
	e.handlers.OnKeyDown = f
	return e
}

// OnScroll sets the scroll handler.
func (e *Interactive) OnScroll(f func(delta, local geometry.Offset)) *Interactive {
	e.handlers.OnScroll = f
	return e
}

// Handlers gives access to the full handler bundle for callbacks
// without a dedicated setter.
func (e *Interactive) Handlers() *interaction.Handlers {
	return &e.handlers
}

// Layout delegates to the wrapped element.
func (e *Interactive) Layout(ctx *LayoutContext) layouts.NodeID {
	return e.Child.Layout(ctx)
}

// Paint paints the child, registers the hit-test entry and handlers,
// and draws the state overlay.
func (e *Interactive) Paint(bounds geometry.Rect, ctx *PaintContext) {
	e.Child.Paint(bounds, ctx)

	if !e.enabled {
		return
	}

	if e.focusable {
		ctx.RegisterFocusable(e.ID, bounds, e.zOffset)
	} else {
		ctx.RegisterHitTest(e.ID, bounds, e.zOffset)
	}
	ctx.RegisterHandlers(e.ID, &e.handlers)

	if overlay, ok := e.overlayColor(ctx.State(e.ID)); ok {
		ctx.Draw.AddRect(ctx.Absolute(bounds), overlay)
	}
}

// overlayColor picks the state overlay. Pressed outranks focused,
// focused outranks hovered.
func (e *Interactive) overlayColor(state interaction.State) (paint.Color, bool) {
	switch {
	case state.Pressed && !e.pressColor.IsTransparent():
		return e.pressColor, true
	case state.Focused && !e.focusColor.IsTransparent():
		return e.focusColor, true
	case state.Hovered && !e.hoverColor.IsTransparent():
		return e.hoverColor, true
	}
	return paint.Color{}, false
}
