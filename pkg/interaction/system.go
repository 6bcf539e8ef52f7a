package interaction

import "github.com/go-helio/helio/pkg/geometry"

// focusTrap confines Tab traversal to a subset of elements and
// remembers the focus to restore when it pops.
type focusTrap struct {
	elements    []ElementID
	prevFocused ElementID
	hadFocus    bool
}

// System resolves raw input against the frame's hit-test list and
// turns it into per-element events.
//
// It owns the pointer and keyboard state that must persist across
// frames: hover, press tracking, focus, focus traps, and the current
// modifier state. The hit-test list itself is replaced every frame via
// UpdateHitTest.
type System struct {
	mousePosition geometry.Offset
	mouseInWindow bool
	modifiers     Modifiers

	hovered    ElementID
	hasHovered bool

	pressed       ElementID
	pressedButton MouseButton
	hasPressed    bool

	focused    ElementID
	hasFocused bool

	// sorted is the hit-test list of the current frame, ordered for
	// Resolve. focusables holds the frame's Tab order, z ascending.
	sorted     []HitTestEntry
	focusables []ElementID

	focusTraps []focusTrap

	shortcuts        *ShortcutRegistry
	shortcutsEnabled bool
}

// NewSystem returns a system with an empty shortcut registry.
func NewSystem() *System {
	return &System{
		shortcuts:        NewShortcutRegistry(),
		shortcutsEnabled: true,
	}
}

// Shortcuts returns the system's shortcut registry.
func (s *System) Shortcuts() *ShortcutRegistry {
	return s.shortcuts
}

// SetShortcutsEnabled toggles shortcut matching, for text inputs that
// need raw key events.
func (s *System) SetShortcutsEnabled(enabled bool) {
	s.shortcutsEnabled = enabled
}

// MousePosition returns the last known pointer position.
func (s *System) MousePosition() geometry.Offset {
	return s.mousePosition
}

// Hovered returns the element currently under the pointer.
func (s *System) Hovered() (ElementID, bool) {
	return s.hovered, s.hasHovered
}

// Focused returns the element holding keyboard focus.
func (s *System) Focused() (ElementID, bool) {
	return s.focused, s.hasFocused
}

// StateOf returns the interaction state of an element as the system
// sees it.
func (s *System) StateOf(id ElementID) State {
	return State{
		Hovered: s.hasHovered && s.hovered == id,
		Pressed: s.hasPressed && s.pressed == id,
		Focused: s.hasFocused && s.focused == id,
	}
}

// UpdateHitTest installs the frame's hit-test list. Entries must come
// from HitTestBuilder.Build. The Tab order is rebuilt from the
// focusable entries, z ascending, and hover is re-resolved so elements
// that moved under a stationary pointer update immediately.
func (s *System) UpdateHitTest(sorted []HitTestEntry) []Event {
	s.sorted = sorted

	s.focusables = s.focusables[:0]
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Focusable {
			s.focusables = append(s.focusables, sorted[i].Element)
		}
	}

	if !s.mouseInWindow {
		return nil
	}
	return s.updateHover(s.mousePosition)
}

// HandleInput processes one raw input event and returns the
// per-element events it produced, in dispatch order.
func (s *System) HandleInput(ev InputEvent) []Event {
	switch ev.Kind {
	case InputMouseMove:
		return s.handleMouseMove(ev.Position)
	case InputMouseDown:
		return s.handleMouseDown(ev.Position, ev.Button)
	case InputMouseUp:
		return s.handleMouseUp(ev.Position, ev.Button)
	case InputMouseLeave:
		return s.handleMouseLeave()
	case InputKeyDown:
		return s.handleKeyDown(ev.Key, ev.Modifiers, ev.Rune, ev.IsRepeat)
	case InputKeyUp:
		return s.handleKeyUp(ev.Key, ev.Modifiers)
	case InputModifiersChanged:
		s.modifiers = ev.Modifiers
		return nil
	case InputScrollWheel:
		return s.handleScroll(ev.Position, ev.Delta)
	}
	return nil
}

func (s *System) handleMouseMove(position geometry.Offset) []Event {
	s.mousePosition = position
	s.mouseInWindow = true

	events := s.updateHover(position)
	if s.hasHovered {
		hit, _ := Resolve(s.sorted, position)
		events = append(events, Event{
			Kind:          EventMouseMove,
			Element:       s.hovered,
			Position:      position,
			LocalPosition: hit.LocalPosition,
		})
	}
	return events
}

// updateHover re-resolves the pointer and emits enter/leave pairs when
// the hovered element changes.
func (s *System) updateHover(position geometry.Offset) []Event {
	hit, ok := Resolve(s.sorted, position)

	var events []Event
	switch {
	case ok && s.hasHovered && s.hovered == hit.Element:
		// unchanged
	case ok:
		if s.hasHovered {
			events = append(events, Event{Kind: EventMouseLeave, Element: s.hovered})
		}
		s.hovered = hit.Element
		s.hasHovered = true
		events = append(events, Event{
			Kind:          EventMouseEnter,
			Element:       hit.Element,
			Position:      position,
			LocalPosition: hit.LocalPosition,
		})
	case s.hasHovered:
		events = append(events, Event{Kind: EventMouseLeave, Element: s.hovered})
		s.hasHovered = false
	}
	return events
}

func (s *System) handleMouseDown(position geometry.Offset, button MouseButton) []Event {
	s.mousePosition = position
	s.mouseInWindow = true

	hit, ok := Resolve(s.sorted, position)
	if !ok {
		// A click on empty space drops keyboard focus.
		if button == MouseLeft && s.hasFocused {
			out := Event{Kind: EventFocusOut, Element: s.focused}
			s.hasFocused = false
			return []Event{out}
		}
		return nil
	}

	s.pressed = hit.Element
	s.pressedButton = button
	s.hasPressed = true

	events := []Event{{
		Kind:          EventMouseDown,
		Element:       hit.Element,
		Button:        button,
		Position:      position,
		LocalPosition: hit.LocalPosition,
	}}

	// Focus follows left clicks on focusable elements.
	if button == MouseLeft && s.isFocusable(hit.Element) {
		events = append(events, s.setFocus(hit.Element)...)
	}
	return events
}

func (s *System) handleMouseUp(position geometry.Offset, button MouseButton) []Event {
	s.mousePosition = position

	hit, ok := Resolve(s.sorted, position)

	var events []Event
	if ok {
		events = append(events, Event{
			Kind:          EventMouseUp,
			Element:       hit.Element,
			Button:        button,
			Position:      position,
			LocalPosition: hit.LocalPosition,
		})
	}

	// A click requires press and release on the same element with the
	// same button.
	if s.hasPressed && s.pressedButton == button {
		if ok && hit.Element == s.pressed {
			events = append(events, Event{
				Kind:          EventClick,
				Element:       hit.Element,
				Button:        button,
				Position:      position,
				LocalPosition: hit.LocalPosition,
			})
		}
		s.hasPressed = false
	}
	return events
}

func (s *System) handleMouseLeave() []Event {
	s.mouseInWindow = false

	// Press tracking survives so a drag that leaves the window still
	// resolves on the release.
	if s.hasHovered {
		ev := Event{Kind: EventMouseLeave, Element: s.hovered}
		s.hasHovered = false
		return []Event{ev}
	}
	return nil
}

func (s *System) handleKeyDown(key Key, modifiers Modifiers, r rune, isRepeat bool) []Event {
	s.modifiers = modifiers

	if key == KeyTab {
		if modifiers.Shift {
			return s.FocusPrevious()
		}
		return s.FocusNext()
	}

	if s.shortcutsEnabled && !isRepeat {
		if match, ok := s.shortcuts.FindMatch(key, modifiers, s.focused, s.hasFocused); ok {
			return []Event{{
				Kind:       EventShortcut,
				Key:        key,
				Modifiers:  modifiers,
				ShortcutID: match.ID,
				Action:     match.Action,
			}}
		}
	}

	if s.hasFocused {
		return []Event{{
			Kind:      EventKeyDown,
			Element:   s.focused,
			Key:       key,
			Modifiers: modifiers,
			Rune:      r,
			IsRepeat:  isRepeat,
		}}
	}
	return nil
}

func (s *System) handleKeyUp(key Key, modifiers Modifiers) []Event {
	s.modifiers = modifiers

	if s.hasFocused {
		return []Event{{
			Kind:      EventKeyUp,
			Element:   s.focused,
			Key:       key,
			Modifiers: modifiers,
		}}
	}
	return nil
}

func (s *System) handleScroll(position, delta geometry.Offset) []Event {
	s.mousePosition = position

	hit, ok := Resolve(s.sorted, position)
	if !ok {
		return nil
	}
	return []Event{{
		Kind:          EventScroll,
		Element:       hit.Element,
		Position:      position,
		LocalPosition: hit.LocalPosition,
		Delta:         delta,
	}}
}

func (s *System) isFocusable(id ElementID) bool {
	for _, f := range s.focusables {
		if f == id {
			return true
		}
	}
	return false
}

// SetFocus moves keyboard focus to an element, emitting focus out/in
// events. Focusing the already focused element is a no-op.
func (s *System) SetFocus(id ElementID) []Event {
	return s.setFocus(id)
}

// ClearFocus drops keyboard focus.
func (s *System) ClearFocus() []Event {
	if !s.hasFocused {
		return nil
	}
	ev := Event{Kind: EventFocusOut, Element: s.focused}
	s.hasFocused = false
	return []Event{ev}
}

func (s *System) setFocus(id ElementID) []Event {
	if s.hasFocused && s.focused == id {
		return nil
	}
	var events []Event
	if s.hasFocused {
		events = append(events, Event{Kind: EventFocusOut, Element: s.focused})
	}
	s.focused = id
	s.hasFocused = true
	events = append(events, Event{Kind: EventFocusIn, Element: id})
	return events
}

// FocusNext moves focus to the next focusable element, wrapping at the
// end. With no focus it starts at the first.
func (s *System) FocusNext() []Event {
	return s.focusStep(1)
}

// FocusPrevious moves focus backwards, wrapping at the start. With no
// focus it starts at the last.
func (s *System) FocusPrevious() []Event {
	return s.focusStep(-1)
}

func (s *System) focusStep(dir int) []Event {
	order := s.focusOrder()
	if len(order) == 0 {
		return nil
	}

	idx := -1
	if s.hasFocused {
		for i, id := range order {
			if id == s.focused {
				idx = i
				break
			}
		}
	}

	var next ElementID
	switch {
	case idx < 0 && dir > 0:
		next = order[0]
	case idx < 0:
		next = order[len(order)-1]
	default:
		next = order[(idx+dir+len(order))%len(order)]
	}
	return s.setFocus(next)
}

// focusOrder returns the active Tab order: the topmost trap's elements
// if a trap is pushed, the frame's focusables otherwise.
func (s *System) focusOrder() []ElementID {
	if n := len(s.focusTraps); n > 0 {
		return s.focusTraps[n-1].elements
	}
	return s.focusables
}

// PushFocusTrap confines Tab traversal to the given elements, for
// modal surfaces. The first element receives focus.
func (s *System) PushFocusTrap(elements []ElementID) []Event {
	s.focusTraps = append(s.focusTraps, focusTrap{
		elements:    append([]ElementID(nil), elements...),
		prevFocused: s.focused,
		hadFocus:    s.hasFocused,
	})
	if len(elements) == 0 {
		return s.ClearFocus()
	}
	return s.setFocus(elements[0])
}

// PopFocusTrap removes the topmost trap and restores the focus held
// before it was pushed.
func (s *System) PopFocusTrap() []Event {
	n := len(s.focusTraps)
	if n == 0 {
		return nil
	}
	trap := s.focusTraps[n-1]
	s.focusTraps = s.focusTraps[:n-1]

	if trap.hadFocus {
		return s.setFocus(trap.prevFocused)
	}
	return s.ClearFocus()
}

// HasFocusTrap reports whether a trap is active.
func (s *System) HasFocusTrap() bool {
	return len(s.focusTraps) > 0
}

// Clear resets all interaction state. The shortcut registry is kept.
func (s *System) Clear() {
	s.hasHovered = false
	s.hasPressed = false
	s.hasFocused = false
	s.mouseInWindow = false
	s.sorted = nil
	s.focusables = s.focusables[:0]
	s.focusTraps = s.focusTraps[:0]
}
