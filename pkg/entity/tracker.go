package entity

// Tracker records which entities a frame observed and which it
// mutated. The two sets are compared symmetrically: observe-then-update
// and update-then-observe both set the needs-render flag, so render
// order inside a frame does not matter.
type Tracker struct {
	observed    map[ID]struct{}
	dirty       map[ID]struct{}
	needsRender bool
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		observed: make(map[ID]struct{}),
		dirty:    make(map[ID]struct{}),
	}
}

// Observe records that an entity was read with observation this frame.
func (t *Tracker) Observe(id ID) {
	t.observed[id] = struct{}{}
	if _, dirty := t.dirty[id]; dirty {
		t.needsRender = true
	}
}

// MarkDirty records that an entity was mutated this frame.
func (t *Tracker) MarkDirty(id ID) {
	t.dirty[id] = struct{}{}
	if _, obs := t.observed[id]; obs {
		t.needsRender = true
	}
}

// NeedsRender reports whether any observed entity has been mutated.
func (t *Tracker) NeedsRender() bool {
	return t.needsRender
}

// EndFrame returns the needs-render flag and clears all tracking for
// the next frame.
func (t *Tracker) EndFrame() bool {
	result := t.needsRender
	clear(t.observed)
	clear(t.dirty)
	t.needsRender = false
	return result
}

// ObservedCount returns the number of observed entities this frame.
func (t *Tracker) ObservedCount() int { return len(t.observed) }

// DirtyCount returns the number of mutated entities this frame.
func (t *Tracker) DirtyCount() int { return len(t.dirty) }
