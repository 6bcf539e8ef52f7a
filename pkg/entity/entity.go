// Package entity implements generational, reference-counted state storage
// for UI that is rebuilt every frame.
//
// State lives in a Store and is addressed through typed Handle values.
// Slots are recycled with a generation counter, so a stale handle fails
// softly instead of reading somebody else's state. Reads performed with
// Observe additionally subscribe the frame to changes: if an observed
// entity is mutated, the frame-end check reports that another render
// is owed.
//
//	store := entity.NewStore()
//	entity.SetCurrent(store)
//	counter := entity.New(Counter{})
//	n, _ := entity.Observe(counter, func(c *Counter) int { return c.Count })
//	entity.Update(counter, func(c *Counter) int { c.Count++; return c.Count })
//	needsRender := store.Cleanup() // true: observed state changed
//	entity.ClearCurrent()
package entity

import "fmt"

// ID identifies a slot in the store together with the generation the
// slot had when the ID was issued. An ID from a freed slot never
// matches the slot again.
type ID struct {
	index      uint32
	generation uint32
}

func newID(index, generation uint32) ID {
	return ID{index: index, generation: generation}
}

// Index returns the slot index. Exposed for diagnostics only.
func (id ID) Index() uint32 { return id.index }

// Generation returns the generation the ID was issued under.
func (id ID) Generation() uint32 { return id.generation }

func (id ID) String() string {
	return fmt.Sprintf("entity(%d.%d)", id.index, id.generation)
}

// Handle is a typed reference to state held in a Store.
//
// Handles are cheap to copy, but only Clone adjusts the reference
// count. A handle whose slot has been freed is stale: every operation
// on it reports absence.
type Handle[T any] struct {
	id ID
}

// ID returns the underlying entity ID.
func (h Handle[T]) ID() ID { return h.id }

// Clone increments the reference count through the current store and
// returns the same handle. Outside a frame context this is a soft
// no-op, mirroring Release.
func (h Handle[T]) Clone() Handle[T] {
	TryWith(func(s *Store) {
		s.incrementRef(h.id)
	})
	return h
}

// Release decrements the reference count through the current store.
// When the count reaches zero the slot is queued for the next Cleanup
// rather than freed immediately, so same-frame re-references survive.
// Outside a frame context this is a soft no-op; cleanup paths may run
// after the frame has been torn down.
func (h Handle[T]) Release() {
	TryWith(func(s *Store) {
		s.decrementRef(h.id)
	})
}
