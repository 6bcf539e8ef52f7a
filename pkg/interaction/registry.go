package interaction

// Registry holds the per-frame handler table. Elements register their
// handlers during paint; events resolved by the System are dispatched
// through here afterwards.
type Registry struct {
	handlers map[ElementID]*Handlers
	states   map[ElementID]State
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[ElementID]*Handlers),
		states:   make(map[ElementID]State),
	}
}

// Register installs the handlers for an element. Registering the same
// element again replaces the previous handlers.
func (r *Registry) Register(id ElementID, handlers *Handlers) {
	r.handlers[id] = handlers
}

// Unregister removes an element's handlers. Its state is kept so
// hover and focus survive a rebuild that re-registers the element.
func (r *Registry) Unregister(id ElementID) {
	delete(r.handlers, id)
}

// StateOf returns the interaction state of an element.
func (r *Registry) StateOf(id ElementID) State {
	return r.states[id]
}

// Dispatch updates the element's state from the event and invokes the
// matching handler. Shortcut events are application level and are not
// dispatched to elements.
func (r *Registry) Dispatch(ev Event) {
	if ev.Kind == EventShortcut {
		return
	}

	state := r.states[ev.Element]
	switch ev.Kind {
	case EventMouseEnter:
		state.Hovered = true
	case EventMouseLeave:
		state.Hovered = false
	case EventMouseDown:
		state.Pressed = true
	case EventMouseUp:
		state.Pressed = false
	case EventFocusIn:
		state.Focused = true
	case EventFocusOut:
		state.Focused = false
	}
	r.states[ev.Element] = state

	if h, ok := r.handlers[ev.Element]; ok && h != nil {
		h.Handle(ev)
	}
}

// DispatchAll dispatches a batch of events in order.
func (r *Registry) DispatchAll(events []Event) {
	for _, ev := range events {
		r.Dispatch(ev)
	}
}

// Len returns the number of registered elements.
func (r *Registry) Len() int {
	return len(r.handlers)
}

// Clear drops all handlers and states.
func (r *Registry) Clear() {
	clear(r.handlers)
	clear(r.states)
}

// ClearHandlers drops the handlers but keeps element states, for the
// start of a rebuild.
func (r *Registry) ClearHandlers() {
	clear(r.handlers)
}

// currentRegistry is the registry of the frame being built. Frames run
// on a single goroutine, so a plain package variable suffices.
var currentRegistry *Registry

// SetCurrentRegistry installs the frame registry.
func SetCurrentRegistry(r *Registry) {
	currentRegistry = r
}

// ClearCurrentRegistry removes the frame registry.
func ClearCurrentRegistry() {
	currentRegistry = nil
}

// RegisterElement registers handlers with the current frame registry.
// Outside a frame it does nothing, so element constructors stay usable
// in tests without a full frame.
func RegisterElement(id ElementID, handlers *Handlers) {
	if currentRegistry != nil {
		currentRegistry.Register(id, handlers)
	}
}

// ElementState reads an element's state from the current frame
// registry. Outside a frame it returns the zero state.
func ElementState(id ElementID) State {
	if currentRegistry != nil {
		return currentRegistry.StateOf(id)
	}
	return State{}
}
