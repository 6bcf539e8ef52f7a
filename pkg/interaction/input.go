package interaction

import "github.com/go-helio/helio/pkg/geometry"

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Key identifies a physical key, independent of modifiers.
type Key int

const (
	KeyNone Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyReturn
	KeyTab
	KeySpace
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash
)

// Modifiers is the state of the modifier keys during an input event.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Cmd   bool
}

// InputEventKind discriminates raw input events.
type InputEventKind int

const (
	InputMouseMove InputEventKind = iota
	InputMouseDown
	InputMouseUp
	InputMouseLeave
	InputKeyDown
	InputKeyUp
	InputModifiersChanged
	InputScrollWheel
)

// InputEvent is a raw, element-agnostic input event as delivered by
// the platform layer. Only the fields relevant to Kind are set.
type InputEvent struct {
	Kind InputEventKind

	Position geometry.Offset
	Button   MouseButton
	Delta    geometry.Offset

	Key       Key
	Modifiers Modifiers
	Rune      rune
	IsRepeat  bool
}

// MouseMoveEvent builds a pointer move event.
func MouseMoveEvent(position geometry.Offset) InputEvent {
	return InputEvent{Kind: InputMouseMove, Position: position}
}

// MouseDownEvent builds a button press event.
func MouseDownEvent(position geometry.Offset, button MouseButton) InputEvent {
	return InputEvent{Kind: InputMouseDown, Position: position, Button: button}
}

// MouseUpEvent builds a button release event.
func MouseUpEvent(position geometry.Offset, button MouseButton) InputEvent {
	return InputEvent{Kind: InputMouseUp, Position: position, Button: button}
}

// MouseLeaveEvent builds a pointer-left-window event.
func MouseLeaveEvent() InputEvent {
	return InputEvent{Kind: InputMouseLeave}
}

// KeyDownEvent builds a key press event.
func KeyDownEvent(key Key, modifiers Modifiers) InputEvent {
	return InputEvent{Kind: InputKeyDown, Key: key, Modifiers: modifiers}
}

// KeyUpEvent builds a key release event.
func KeyUpEvent(key Key, modifiers Modifiers) InputEvent {
	return InputEvent{Kind: InputKeyUp, Key: key, Modifiers: modifiers}
}

// ScrollEvent builds a scroll wheel event.
func ScrollEvent(position, delta geometry.Offset) InputEvent {
	return InputEvent{Kind: InputScrollWheel, Position: position, Delta: delta}
}
