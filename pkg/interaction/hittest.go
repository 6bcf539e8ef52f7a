package interaction

import (
	"slices"

	"github.com/go-helio/helio/pkg/geometry"
)

// HitTestEntry is one element's claim on a screen region for a single
// frame. The list is rebuilt every frame and never persisted.
type HitTestEntry struct {
	Element   ElementID
	Bounds    geometry.Rect
	Z         int
	Layer     int
	Focusable bool

	// seq is the registration order, used as the final tie-break:
	// among entries with equal z and layer the last registered wins.
	seq int
}

// HitTestResult is the outcome of resolving a pointer position.
type HitTestResult struct {
	Element       ElementID
	Bounds        geometry.Rect
	LocalPosition geometry.Offset
	Z             int
}

// HitTestBuilder collects hit-test entries during the paint pass.
//
// Z-index contexts nest: PushZ adds an offset to the base applied to
// subsequent entries, so an overlay's descendants stack on top of the
// overlay without a global z namespace.
type HitTestBuilder struct {
	entries []HitTestEntry
	zBase   int
	layer   int
	seq     int
}

// NewHitTestBuilder returns a builder for the given layer with a z base.
func NewHitTestBuilder(layer, zBase int) *HitTestBuilder {
	return &HitTestBuilder{zBase: zBase, layer: layer}
}

// Add registers a plain entry at the current z base plus relativeZ.
func (b *HitTestBuilder) Add(id ElementID, bounds geometry.Rect, relativeZ int) {
	b.add(id, bounds, relativeZ, false)
}

// AddFocusable registers an entry that participates in Tab order.
func (b *HitTestBuilder) AddFocusable(id ElementID, bounds geometry.Rect, relativeZ int) {
	b.add(id, bounds, relativeZ, true)
}

func (b *HitTestBuilder) add(id ElementID, bounds geometry.Rect, relativeZ int, focusable bool) {
	b.entries = append(b.entries, HitTestEntry{
		Element:   id,
		Bounds:    bounds,
		Z:         b.zBase + relativeZ,
		Layer:     b.layer,
		Focusable: focusable,
		seq:       b.seq,
	})
	b.seq++
}

// PushZ raises the z base for subsequent entries.
func (b *HitTestBuilder) PushZ(offset int) {
	b.zBase += offset
}

// PopZ undoes a matching PushZ.
func (b *HitTestBuilder) PopZ(offset int) {
	b.zBase -= offset
}

// Build returns the entries sorted for resolution: z descending, then
// layer descending, then registration order descending. The resolver
// scans this list front to back and the first containing entry wins.
func (b *HitTestBuilder) Build() []HitTestEntry {
	sorted := slices.Clone(b.entries)
	slices.SortFunc(sorted, func(a, e HitTestEntry) int {
		if a.Z != e.Z {
			return e.Z - a.Z
		}
		if a.Layer != e.Layer {
			return e.Layer - a.Layer
		}
		return e.seq - a.seq
	})
	return sorted
}

// Entries returns the raw entries in registration order.
func (b *HitTestBuilder) Entries() []HitTestEntry {
	return b.entries
}

// Clear drops all entries and resets the registration counter. The z
// base and layer are kept.
func (b *HitTestBuilder) Clear() {
	b.entries = b.entries[:0]
	b.seq = 0
}

// Resolve returns the topmost entry containing the position. The scan
// is linear over the sorted list; the list is rebuilt every frame, so
// a spatial index would not pay for itself at typical element counts.
func Resolve(sorted []HitTestEntry, position geometry.Offset) (HitTestResult, bool) {
	for i := range sorted {
		e := &sorted[i]
		if e.Bounds.Contains(position) {
			return HitTestResult{
				Element:       e.Element,
				Bounds:        e.Bounds,
				LocalPosition: position.Sub(e.Bounds.Origin()),
				Z:             e.Z,
			}, true
		}
	}
	return HitTestResult{}, false
}
