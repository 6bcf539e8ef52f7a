package entity

// The current store is process-wide state, installed for the duration
// of a frame and cleared afterwards. Frames are single-threaded; the
// bracketing is explicit rather than guarded by a mutex.
var currentStore *Store

// SetCurrent installs the store as the frame's current store.
func SetCurrent(s *Store) {
	currentStore = s
}

// ClearCurrent removes the current store. Call before the store is
// torn down.
func ClearCurrent() {
	currentStore = nil
}

// HasCurrent reports whether a store is installed.
func HasCurrent() bool {
	return currentStore != nil
}

// With runs f against the current store.
//
// Panics when no store is installed: entity access outside a frame is
// a programming error and should fail loudly.
func With(f func(*Store)) {
	if currentStore == nil {
		panic("entity: With called outside render context")
	}
	f(currentStore)
}

// TryWith runs f against the current store if one is installed and
// reports whether it ran. Cleanup paths use this: they may fire after
// the frame context has been cleared and must not panic.
func TryWith(f func(*Store)) bool {
	if currentStore == nil {
		return false
	}
	f(currentStore)
	return true
}

// New creates an entity in the current store.
//
// Panics when called outside a frame.
func New[T any](value T) Handle[T] {
	if currentStore == nil {
		panic("entity: New called outside render context")
	}
	return CreateIn(currentStore, value)
}

// Read reads entity state through the current store. Reports false on
// a stale handle.
//
// Panics when called outside a frame.
func Read[T, R any](h Handle[T], f func(*T) R) (R, bool) {
	if currentStore == nil {
		panic("entity: Read called outside render context")
	}
	return ReadIn(currentStore, h, f)
}

// Update mutates entity state through the current store, marking the
// entity dirty for the frame. Reports false on a stale handle.
//
// Panics when called outside a frame.
func Update[T, R any](h Handle[T], f func(*T) R) (R, bool) {
	if currentStore == nil {
		panic("entity: Update called outside render context")
	}
	return UpdateIn(currentStore, h, f)
}

// Observe reads entity state and subscribes the frame to changes:
// mutating the entity later in the frame makes the frame-end check
// report that another render is owed.
//
// Panics when called outside a frame.
func Observe[T, R any](h Handle[T], f func(*T) R) (R, bool) {
	if currentStore == nil {
		panic("entity: Observe called outside render context")
	}
	return ObserveIn(currentStore, h, f)
}

// Subscribe registers a change callback on the current store.
//
// Panics when called outside a frame.
func Subscribe[T any](h Handle[T], callback func()) SubscriptionID {
	if currentStore == nil {
		panic("entity: Subscribe called outside render context")
	}
	return currentStore.Subscribe(h.id, callback)
}

// Unsubscribe removes a subscription from the current store.
//
// Panics when called outside a frame.
func Unsubscribe(sub SubscriptionID) {
	With(func(s *Store) {
		s.Unsubscribe(sub)
	})
}
