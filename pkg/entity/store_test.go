package entity

import "testing"

type counterState struct {
	value int
}

func TestStore_CreateAndRead(t *testing.T) {
	s := NewStore()
	h := CreateIn(s, counterState{value: 42})

	got, ok := ReadIn(s, h, func(c *counterState) int { return c.value })
	if !ok {
		t.Fatalf("read of a live entity failed")
	}
	if got != 42 {
		t.Errorf("read = %d, want 42", got)
	}
}

func TestStore_Update(t *testing.T) {
	s := NewStore()
	h := CreateIn(s, counterState{})

	UpdateIn(s, h, func(c *counterState) int { c.value = 100; return c.value })

	got, _ := ReadIn(s, h, func(c *counterState) int { return c.value })
	if got != 100 {
		t.Errorf("value after update = %d, want 100", got)
	}
}

func TestStore_UpdateBatching(t *testing.T) {
	s := NewStore()
	h := CreateIn(s, counterState{})

	notified := 0
	s.Subscribe(h.ID(), func() { notified++ })

	for i := 0; i < 3; i++ {
		UpdateIn(s, h, func(c *counterState) int { c.value++; return c.value })
	}

	if notified != 0 {
		t.Errorf("observers notified before flush")
	}
	s.FlushNotifications()
	if notified != 1 {
		t.Errorf("notified %d times, want 1 (batched)", notified)
	}

	got, _ := ReadIn(s, h, func(c *counterState) int { return c.value })
	if got != 3 {
		t.Errorf("cumulative value = %d, want 3", got)
	}
}

func TestStore_RefCountingDeferredCleanup(t *testing.T) {
	s := NewStore()
	SetCurrent(s)
	defer ClearCurrent()

	h := CreateIn(s, counterState{value: 1})
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}

	h.Clone()
	h.Release()
	s.Cleanup()
	if s.Len() != 1 {
		t.Errorf("entity freed while a reference remained")
	}

	h.Release()
	// Still alive until the frame boundary.
	if _, ok := ReadIn(s, h, func(c *counterState) int { return c.value }); !ok {
		t.Errorf("zero-ref entity should survive until Cleanup")
	}
	s.Cleanup()
	if s.Len() != 0 {
		t.Errorf("Len = %d after cleanup, want 0", s.Len())
	}
}

func TestStore_ReReferenceSkipsCleanup(t *testing.T) {
	s := NewStore()
	SetCurrent(s)
	defer ClearCurrent()

	h := CreateIn(s, counterState{value: 7})
	h.Release() // queued for cleanup
	h.Clone()   // re-referenced within the same frame
	s.Cleanup()

	got, ok := ReadIn(s, h, func(c *counterState) int { return c.value })
	if !ok || got != 7 {
		t.Errorf("re-referenced entity lost: got %d, ok=%v", got, ok)
	}
}

func TestStore_SlotReuseBumpsGeneration(t *testing.T) {
	s := NewStore()
	SetCurrent(s)
	defer ClearCurrent()

	h1 := CreateIn(s, counterState{value: 1})
	id1 := h1.ID()
	h1.Release()
	s.Cleanup()

	h2 := CreateIn(s, counterState{value: 2})
	id2 := h2.ID()

	if id1.Index() != id2.Index() {
		t.Errorf("expected LIFO reuse of index %d, got %d", id1.Index(), id2.Index())
	}
	if id2.Generation() <= id1.Generation() {
		t.Errorf("generation %d not increased over %d", id2.Generation(), id1.Generation())
	}
	if s.Capacity() != 1 {
		t.Errorf("Capacity = %d, want 1", s.Capacity())
	}
}

func TestStore_StaleHandleFailsEverything(t *testing.T) {
	s := NewStore()
	SetCurrent(s)
	defer ClearCurrent()

	stale := CreateIn(s, counterState{value: 1})
	stale.Release()
	s.Cleanup()

	// Slot now occupied by a new entity of the same type.
	fresh := CreateIn(s, counterState{value: 2})

	if _, ok := ReadIn(s, stale, func(c *counterState) int { return c.value }); ok {
		t.Errorf("stale read succeeded")
	}
	if _, ok := UpdateIn(s, stale, func(c *counterState) int { c.value = 9; return 0 }); ok {
		t.Errorf("stale update succeeded")
	}
	if _, ok := ObserveIn(s, stale, func(c *counterState) int { return c.value }); ok {
		t.Errorf("stale observe succeeded")
	}

	// Stale release must not disturb the new occupant.
	stale.Release()
	s.Cleanup()
	got, ok := ReadIn(s, fresh, func(c *counterState) int { return c.value })
	if !ok || got != 2 {
		t.Errorf("fresh entity damaged by stale release: got %d, ok=%v", got, ok)
	}
}

func TestStore_TypeMismatchReportsAbsence(t *testing.T) {
	s := NewStore()
	h := CreateIn(s, counterState{value: 1})

	// Forge a handle of the wrong type over the same ID.
	wrong := Handle[string]{id: h.ID()}
	if _, ok := ReadIn(s, wrong, func(v *string) string { return *v }); ok {
		t.Errorf("type-mismatched read succeeded")
	}
}

func TestStore_CleanupReportsRenderOwed(t *testing.T) {
	s := NewStore()
	h := CreateIn(s, counterState{})

	ObserveIn(s, h, func(c *counterState) int { return c.value })
	UpdateIn(s, h, func(c *counterState) int { c.value++; return 0 })

	if !s.Cleanup() {
		t.Errorf("mutating an observed entity should owe a render")
	}
	// Next frame: nothing observed, nothing dirty.
	if s.Cleanup() {
		t.Errorf("clean frame should not owe a render")
	}
}

func TestStore_UnobservedMutationOwesNothing(t *testing.T) {
	s := NewStore()
	h := CreateIn(s, counterState{})

	UpdateIn(s, h, func(c *counterState) int { c.value++; return 0 })

	if s.Cleanup() {
		t.Errorf("mutating an unobserved entity should not owe a render")
	}
}

func TestStore_FreedEntityDropsSubscriptions(t *testing.T) {
	s := NewStore()
	SetCurrent(s)
	defer ClearCurrent()

	h := CreateIn(s, counterState{})
	fired := 0
	s.Subscribe(h.ID(), func() { fired++ })

	h.Release()
	s.Cleanup()

	if n := s.observers.SubscriptionCount(h.ID()); n != 0 {
		t.Errorf("subscriptions survive slot free: %d", n)
	}
	_ = fired
}
