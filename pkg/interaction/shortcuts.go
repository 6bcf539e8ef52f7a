package interaction

import (
	"fmt"
	"sort"
	"strings"
)

// ShortcutModifiers is the exact modifier combination a shortcut
// requires. Unlike the runtime Modifiers state, every field must match.
type ShortcutModifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Cmd   bool
}

// Matches reports whether the runtime modifier state equals this
// requirement exactly.
func (m ShortcutModifiers) Matches(state Modifiers) bool {
	return m.Shift == state.Shift &&
		m.Ctrl == state.Ctrl &&
		m.Alt == state.Alt &&
		m.Cmd == state.Cmd
}

// Shortcut is a key plus a required modifier combination.
type Shortcut struct {
	Key       Key
	Modifiers ShortcutModifiers
}

// KeyOnly builds a shortcut with no modifiers.
func KeyOnly(key Key) Shortcut {
	return Shortcut{Key: key}
}

// Cmd builds a Cmd+key shortcut.
func Cmd(key Key) Shortcut {
	return Shortcut{Key: key, Modifiers: ShortcutModifiers{Cmd: true}}
}

// CmdShift builds a Cmd+Shift+key shortcut.
func CmdShift(key Key) Shortcut {
	return Shortcut{Key: key, Modifiers: ShortcutModifiers{Cmd: true, Shift: true}}
}

// Ctrl builds a Ctrl+key shortcut.
func Ctrl(key Key) Shortcut {
	return Shortcut{Key: key, Modifiers: ShortcutModifiers{Ctrl: true}}
}

// Alt builds an Alt+key shortcut.
func Alt(key Key) Shortcut {
	return Shortcut{Key: key, Modifiers: ShortcutModifiers{Alt: true}}
}

// Matches reports whether a key event triggers this shortcut.
func (s Shortcut) Matches(key Key, modifiers Modifiers) bool {
	return s.Key == key && s.Modifiers.Matches(modifiers)
}

// DisplayString renders the shortcut for menus and tooltips, e.g.
// "⌘C" or "⇧⌘Z".
func (s Shortcut) DisplayString() string {
	var b strings.Builder
	if s.Modifiers.Ctrl {
		b.WriteRune('⌃')
	}
	if s.Modifiers.Alt {
		b.WriteRune('⌥')
	}
	if s.Modifiers.Shift {
		b.WriteRune('⇧')
	}
	if s.Modifiers.Cmd {
		b.WriteRune('⌘')
	}
	b.WriteString(keyDisplay(s.Key))
	return b.String()
}

func keyDisplay(key Key) string {
	switch {
	case key >= KeyA && key <= KeyZ:
		return string(rune('A' + int(key-KeyA)))
	case key >= Key0 && key <= Key9:
		return string(rune('0' + int(key-Key0)))
	case key >= KeyF1 && key <= KeyF12:
		return fmt.Sprintf("F%d", int(key-KeyF1)+1)
	}
	switch key {
	case KeyUp:
		return "↑"
	case KeyDown:
		return "↓"
	case KeyLeft:
		return "←"
	case KeyRight:
		return "→"
	case KeyReturn:
		return "↩"
	case KeyTab:
		return "⇥"
	case KeySpace:
		return "Space"
	case KeyBackspace:
		return "⌫"
	case KeyDelete:
		return "⌦"
	case KeyEscape:
		return "⎋"
	case KeyHome:
		return "↖"
	case KeyEnd:
		return "↘"
	case KeyPageUp:
		return "⇞"
	case KeyPageDown:
		return "⇟"
	case KeyMinus:
		return "-"
	case KeyEqual:
		return "="
	case KeyLeftBracket:
		return "["
	case KeyRightBracket:
		return "]"
	case KeyBackslash:
		return `\`
	case KeySemicolon:
		return ";"
	case KeyQuote:
		return "'"
	case KeyGrave:
		return "`"
	case KeyComma:
		return ","
	case KeyPeriod:
		return "."
	case KeySlash:
		return "/"
	}
	return fmt.Sprintf("Key(%d)", int(key))
}

// ShortcutID identifies a registered shortcut.
type ShortcutID uint64

// ShortcutScopeKind selects when a shortcut is active.
type ShortcutScopeKind int

const (
	// ScopeGlobal shortcuts are always active.
	ScopeGlobal ShortcutScopeKind = iota
	// ScopeFocused shortcuts fire only while their element has focus.
	ScopeFocused
	// ScopeContext shortcuts fire only while their context is active.
	ScopeContext
)

// ShortcutScope is the activation condition of a shortcut.
type ShortcutScope struct {
	Kind    ShortcutScopeKind
	Element ElementID
	Context uint64
}

// GlobalScope returns the always-active scope.
func GlobalScope() ShortcutScope {
	return ShortcutScope{Kind: ScopeGlobal}
}

// FocusedScope returns a scope tied to an element's focus.
func FocusedScope(id ElementID) ShortcutScope {
	return ShortcutScope{Kind: ScopeFocused, Element: id}
}

// ContextScope returns a scope tied to an application context.
func ContextScope(ctx uint64) ShortcutScope {
	return ShortcutScope{Kind: ScopeContext, Context: ctx}
}

// ShortcutInfo is the full registration record of one shortcut.
type ShortcutInfo struct {
	ID       ShortcutID
	Shortcut Shortcut
	Action   string
	Scope    ShortcutScope
	Priority int
	Enabled  bool
}

// ShortcutMatch is a triggered shortcut.
type ShortcutMatch struct {
	ID     ShortcutID
	Action string
}

// ShortcutConflict reports two or more enabled global shortcuts bound
// to the same chord.
type ShortcutConflict struct {
	Shortcut Shortcut
	IDs      []ShortcutID
	Actions  []string
}

// ShortcutRegistry manages keyboard shortcut bindings.
type ShortcutRegistry struct {
	shortcuts     map[ShortcutID]*ShortcutInfo
	nextID        ShortcutID
	activeContext uint64
	hasContext    bool
}

// NewShortcutRegistry returns an empty registry.
func NewShortcutRegistry() *ShortcutRegistry {
	return &ShortcutRegistry{
		shortcuts: make(map[ShortcutID]*ShortcutInfo),
		nextID:    1,
	}
}

// Register binds a shortcut to an action within a scope and returns
// the binding's ID.
func (r *ShortcutRegistry) Register(shortcut Shortcut, action string, scope ShortcutScope) ShortcutID {
	id := r.nextID
	r.nextID++
	r.shortcuts[id] = &ShortcutInfo{
		ID:       id,
		Shortcut: shortcut,
		Action:   action,
		Scope:    scope,
		Enabled:  true,
	}
	return id
}

// Unregister removes a binding.
func (r *ShortcutRegistry) Unregister(id ShortcutID) {
	delete(r.shortcuts, id)
}

// SetEnabled toggles a binding without removing it.
func (r *ShortcutRegistry) SetEnabled(id ShortcutID, enabled bool) {
	if info, ok := r.shortcuts[id]; ok {
		info.Enabled = enabled
	}
}

// SetPriority changes a binding's conflict priority; higher wins.
func (r *ShortcutRegistry) SetPriority(id ShortcutID, priority int) {
	if info, ok := r.shortcuts[id]; ok {
		info.Priority = priority
	}
}

// SetActiveContext activates context-scoped shortcuts for ctx.
func (r *ShortcutRegistry) SetActiveContext(ctx uint64) {
	r.activeContext = ctx
	r.hasContext = true
}

// ClearActiveContext deactivates all context-scoped shortcuts.
func (r *ShortcutRegistry) ClearActiveContext() {
	r.hasContext = false
}

// FindMatches returns all bindings triggered by a key event, sorted by
// priority descending, then focused scope before global, then
// registration order.
func (r *ShortcutRegistry) FindMatches(key Key, modifiers Modifiers, focused ElementID, hasFocus bool) []ShortcutMatch {
	type ranked struct {
		priority int
		scoped   int
		id       ShortcutID
		match    ShortcutMatch
	}
	var hits []ranked

	for _, info := range r.shortcuts {
		if !info.Enabled || !info.Shortcut.Matches(key, modifiers) {
			continue
		}
		scoped := 0
		switch info.Scope.Kind {
		case ScopeGlobal:
		case ScopeFocused:
			if !hasFocus || info.Scope.Element != focused {
				continue
			}
			scoped = 1
		case ScopeContext:
			if !r.hasContext || info.Scope.Context != r.activeContext {
				continue
			}
			scoped = 1
		}
		hits = append(hits, ranked{
			priority: info.Priority,
			scoped:   scoped,
			id:       info.ID,
			match:    ShortcutMatch{ID: info.ID, Action: info.Action},
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].priority != hits[j].priority {
			return hits[i].priority > hits[j].priority
		}
		if hits[i].scoped != hits[j].scoped {
			return hits[i].scoped > hits[j].scoped
		}
		return hits[i].id < hits[j].id
	})

	matches := make([]ShortcutMatch, len(hits))
	for i, h := range hits {
		matches[i] = h.match
	}
	return matches
}

// FindMatch returns the highest-ranked match, if any.
func (r *ShortcutRegistry) FindMatch(key Key, modifiers Modifiers, focused ElementID, hasFocus bool) (ShortcutMatch, bool) {
	matches := r.FindMatches(key, modifiers, focused, hasFocus)
	if len(matches) == 0 {
		return ShortcutMatch{}, false
	}
	return matches[0], true
}

// Get returns a binding's record.
func (r *ShortcutRegistry) Get(id ShortcutID) (ShortcutInfo, bool) {
	if info, ok := r.shortcuts[id]; ok {
		return *info, true
	}
	return ShortcutInfo{}, false
}

// Hint returns the display string of the enabled binding for an
// action, for menus and tooltips.
func (r *ShortcutRegistry) Hint(action string) (string, bool) {
	for _, info := range r.shortcuts {
		if info.Enabled && info.Action == action {
			return info.Shortcut.DisplayString(), true
		}
	}
	return "", false
}

// Rebind changes a binding's chord, for user customization.
func (r *ShortcutRegistry) Rebind(id ShortcutID, shortcut Shortcut) bool {
	info, ok := r.shortcuts[id]
	if ok {
		info.Shortcut = shortcut
	}
	return ok
}

// DetectConflicts reports chords bound to more than one enabled global
// shortcut. Scoped bindings may legitimately overlap and are skipped.
func (r *ShortcutRegistry) DetectConflicts() []ShortcutConflict {
	byChord := make(map[Shortcut][]*ShortcutInfo)
	for _, info := range r.shortcuts {
		if !info.Enabled || info.Scope.Kind != ScopeGlobal {
			continue
		}
		byChord[info.Shortcut] = append(byChord[info.Shortcut], info)
	}

	var conflicts []ShortcutConflict
	for chord, infos := range byChord {
		if len(infos) < 2 {
			continue
		}
		sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
		c := ShortcutConflict{Shortcut: chord}
		for _, info := range infos {
			c.IDs = append(c.IDs, info.ID)
			c.Actions = append(c.Actions, info.Action)
		}
		conflicts = append(conflicts, c)
	}
	return conflicts
}

// Len returns the number of registered bindings.
func (r *ShortcutRegistry) Len() int {
	return len(r.shortcuts)
}

// Clear removes all bindings.
func (r *ShortcutRegistry) Clear() {
	clear(r.shortcuts)
}

// Standard action names for the stock bindings.
const (
	ActionQuit         = "quit"
	ActionCloseWindow  = "close_window"
	ActionCopy         = "copy"
	ActionCut          = "cut"
	ActionPaste        = "paste"
	ActionUndo         = "undo"
	ActionRedo         = "redo"
	ActionSelectAll    = "select_all"
	ActionFind         = "find"
	ActionFindNext     = "find_next"
	ActionFindPrevious = "find_previous"
	ActionSave         = "save"
	ActionSaveAs       = "save_as"
	ActionOpen         = "open"
	ActionNew          = "new"
	ActionZoomIn       = "zoom_in"
	ActionZoomOut      = "zoom_out"
	ActionZoomReset    = "zoom_reset"
)

// RegisterStandardShortcuts installs the stock desktop bindings as
// global shortcuts.
func RegisterStandardShortcuts(r *ShortcutRegistry) {
	r.Register(Cmd(KeyQ), ActionQuit, GlobalScope())
	r.Register(Cmd(KeyW), ActionCloseWindow, GlobalScope())

	r.Register(Cmd(KeyC), ActionCopy, GlobalScope())
	r.Register(Cmd(KeyX), ActionCut, GlobalScope())
	r.Register(Cmd(KeyV), ActionPaste, GlobalScope())
	r.Register(Cmd(KeyZ), ActionUndo, GlobalScope())
	r.Register(CmdShift(KeyZ), ActionRedo, GlobalScope())
	r.Register(Cmd(KeyA), ActionSelectAll, GlobalScope())

	r.Register(Cmd(KeyF), ActionFind, GlobalScope())
	r.Register(Cmd(KeyG), ActionFindNext, GlobalScope())
	r.Register(CmdShift(KeyG), ActionFindPrevious, GlobalScope())

	r.Register(Cmd(KeyS), ActionSave, GlobalScope())
	r.Register(CmdShift(KeyS), ActionSaveAs, GlobalScope())
	r.Register(Cmd(KeyO), ActionOpen, GlobalScope())
	r.Register(Cmd(KeyN), ActionNew, GlobalScope())

	r.Register(Cmd(KeyEqual), ActionZoomIn, GlobalScope())
	r.Register(Cmd(KeyMinus), ActionZoomOut, GlobalScope())
	r.Register(Cmd(Key0), ActionZoomReset, GlobalScope())
}
