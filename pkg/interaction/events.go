package interaction

import "github.com/go-helio/helio/pkg/geometry"

// EventKind discriminates per-element interaction events.
type EventKind int

const (
	EventMouseEnter EventKind = iota
	EventMouseLeave
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventClick
	EventScroll
	EventKeyDown
	EventKeyUp
	EventFocusIn
	EventFocusOut
	EventShortcut
)

// Event is an interaction event resolved to a specific element. Only
// the fields relevant to Kind are set. EventShortcut carries no
// element; it is handled at the application level.
type Event struct {
	Kind    EventKind
	Element ElementID

	Button        MouseButton
	Position      geometry.Offset
	LocalPosition geometry.Offset
	Delta         geometry.Offset

	Key       Key
	Modifiers Modifiers
	Rune      rune
	IsRepeat  bool

	ShortcutID ShortcutID
	Action     string
}

// State is the interaction state of one element.
type State struct {
	Hovered bool
	Pressed bool
	Focused bool
}

// Handlers bundles the optional callbacks of one interactive element.
// Nil fields are skipped during dispatch.
type Handlers struct {
	OnClick      func(button MouseButton, position, local geometry.Offset)
	OnMouseEnter func()
	OnMouseLeave func()
	OnMouseMove  func(position, local geometry.Offset)
	OnMouseDown  func(button MouseButton, position, local geometry.Offset)
	OnMouseUp    func(button MouseButton, position, local geometry.Offset)
	OnScroll     func(delta, local geometry.Offset)
	OnKeyDown    func(key Key, modifiers Modifiers, r rune, isRepeat bool)
	OnKeyUp      func(key Key, modifiers Modifiers)
	OnFocusIn    func()
	OnFocusOut   func()
}

// Handle invokes the callback matching the event, if set.
func (h *Handlers) Handle(ev Event) {
	switch ev.Kind {
	case EventMouseEnter:
		if h.OnMouseEnter != nil {
			h.OnMouseEnter()
		}
	case EventMouseLeave:
		if h.OnMouseLeave != nil {
			h.OnMouseLeave()
		}
	case EventMouseMove:
		if h.OnMouseMove != nil {
			h.OnMouseMove(ev.Position, ev.LocalPosition)
		}
	case EventMouseDown:
		if h.OnMouseDown != nil {
			h.OnMouseDown(ev.Button, ev.Position, ev.LocalPosition)
		}
	case EventMouseUp:
		if h.OnMouseUp != nil {
			h.OnMouseUp(ev.Button, ev.Position, ev.LocalPosition)
		}
	case EventClick:
		if h.OnClick != nil {
			h.OnClick(ev.Button, ev.Position, ev.LocalPosition)
		}
	case EventScroll:
		if h.OnScroll != nil {
			h.OnScroll(ev.Delta, ev.LocalPosition)
		}
	case EventKeyDown:
		if h.OnKeyDown != nil {
			h.OnKeyDown(ev.Key, ev.Modifiers, ev.Rune, ev.IsRepeat)
		}
	case EventKeyUp:
		if h.OnKeyUp != nil {
			h.OnKeyUp(ev.Key, ev.Modifiers)
		}
	case EventFocusIn:
		if h.OnFocusIn != nil {
			h.OnFocusIn()
		}
	case EventFocusOut:
		if h.OnFocusOut != nil {
			h.OnFocusOut()
		}
	}
}
