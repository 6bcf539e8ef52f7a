package entity

type slot struct {
	// value holds a *T, type-erased. nil means the slot is free.
	value      any
	generation uint32
	refs       uint32
}

func (s *slot) isValid(generation uint32) bool {
	return s.value != nil && s.generation == generation
}

// Store owns all entity state and its lifecycle.
//
// Slots are recycled through a LIFO free list. Freeing bumps the slot's
// generation, which invalidates every handle issued for the previous
// occupant. Zero-reference slots are not freed inline; they are queued
// and reclaimed by Cleanup at the frame boundary, so a handle that is
// released and re-cloned within the same frame keeps its state.
type Store struct {
	slots     []slot
	freeList  []uint32
	pending   []uint32
	observers *ObserverRegistry
	tracker   *Tracker
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		observers: NewObserverRegistry(),
		tracker:   NewTracker(),
	}
}

// CreateIn allocates a slot for value and returns a handle with a
// reference count of one. The most recently freed slot is reused first.
func CreateIn[T any](s *Store, value T) Handle[T] {
	index, generation := s.allocate()
	sl := &s.slots[index]
	sl.value = &value
	sl.refs = 1
	return Handle[T]{id: newID(index, generation)}
}

// ReadIn calls f with the entity's state and returns its result.
// Reports false on a stale handle, an empty slot, or a type mismatch.
func ReadIn[T, R any](s *Store, h Handle[T], f func(*T) R) (R, bool) {
	var zero R
	p, ok := payloadAs(s, h)
	if !ok {
		return zero, false
	}
	return f(p), true
}

// UpdateIn calls f with mutable access to the entity's state. The
// entity is marked dirty for the frame tracker and queued for observer
// notification at the next flush. Reports false on a stale handle.
func UpdateIn[T, R any](s *Store, h Handle[T], f func(*T) R) (R, bool) {
	var zero R
	p, ok := payloadAs(s, h)
	if !ok {
		return zero, false
	}
	result := f(p)
	s.tracker.MarkDirty(h.id)
	s.observers.MarkChanged(h.id)
	return result, true
}

// ObserveIn reads like ReadIn and additionally records the entity as
// observed this frame, so a later mutation owes a re-render.
func ObserveIn[T, R any](s *Store, h Handle[T], f func(*T) R) (R, bool) {
	var zero R
	p, ok := payloadAs(s, h)
	if !ok {
		return zero, false
	}
	s.tracker.Observe(h.id)
	return f(p), true
}

// payload does the non-generic slot lookup; payloadAs only downcasts.
func (s *Store) payload(id ID) (any, bool) {
	if int(id.index) >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[id.index]
	if !sl.isValid(id.generation) {
		return nil, false
	}
	return sl.value, true
}

func payloadAs[T any](s *Store, h Handle[T]) (*T, bool) {
	v, ok := s.payload(h.id)
	if !ok {
		return nil, false
	}
	p, ok := v.(*T)
	return p, ok
}

func (s *Store) incrementRef(id ID) {
	if int(id.index) >= len(s.slots) {
		return
	}
	sl := &s.slots[id.index]
	if sl.isValid(id.generation) {
		sl.refs++
	}
}

func (s *Store) decrementRef(id ID) {
	if int(id.index) >= len(s.slots) {
		return
	}
	sl := &s.slots[id.index]
	if !sl.isValid(id.generation) || sl.refs == 0 {
		return
	}
	sl.refs--
	if sl.refs == 0 {
		s.pending = append(s.pending, id.index)
	}
}

// Cleanup runs the end-of-frame maintenance pass:
//
//  1. flushes pending observer notifications,
//  2. frees slots that are still at zero references (re-referenced
//     slots are skipped), bumping their generation and returning their
//     index to the free list,
//  3. ends the tracker frame.
//
// The return value is the tracker's verdict: whether an observed entity
// was mutated this frame and another render is owed.
func (s *Store) Cleanup() bool {
	s.observers.Flush()

	for _, index := range s.pending {
		sl := &s.slots[index]
		if sl.refs != 0 || sl.value == nil {
			continue
		}
		s.observers.UnsubscribeAll(newID(index, sl.generation))
		sl.value = nil
		sl.generation++
		s.freeList = append(s.freeList, index)
	}
	s.pending = s.pending[:0]

	return s.tracker.EndFrame()
}

func (s *Store) allocate() (uint32, uint32) {
	if n := len(s.freeList); n > 0 {
		index := s.freeList[n-1]
		s.freeList = s.freeList[:n-1]
		return index, s.slots[index].generation
	}
	index := uint32(len(s.slots))
	s.slots = append(s.slots, slot{})
	return index, 0
}

// Subscribe registers a change callback for an entity. The callback
// fires at frame boundaries, once per frame in which the entity was
// updated.
func (s *Store) Subscribe(id ID, callback func()) SubscriptionID {
	return s.observers.Subscribe(id, callback)
}

// Unsubscribe removes a subscription.
func (s *Store) Unsubscribe(sub SubscriptionID) {
	s.observers.Unsubscribe(sub)
}

// InvalidationRequested reports whether a subscribed entity has changed
// since the last flush.
func (s *Store) InvalidationRequested() bool {
	return s.observers.InvalidationRequested()
}

// ClearInvalidation resets the invalidation flag.
func (s *Store) ClearInvalidation() {
	s.observers.ClearInvalidation()
}

// FlushNotifications delivers pending observer callbacks before the
// frame boundary.
func (s *Store) FlushNotifications() {
	s.observers.Flush()
}

// HasPendingNotifications reports whether observers are waiting.
func (s *Store) HasPendingNotifications() bool {
	return s.observers.HasPending()
}

// Tracker exposes the store's frame tracker.
func (s *Store) Tracker() *Tracker {
	return s.tracker
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	n := 0
	for i := range s.slots {
		if s.slots[i].value != nil {
			n++
		}
	}
	return n
}

// Capacity returns the total number of slots ever allocated.
func (s *Store) Capacity() int {
	return len(s.slots)
}
