// Package interaction turns raw pointer and keyboard input into
// per-element events.
//
// During paint, elements add themselves to a HitTestBuilder and
// register handlers with the frame's Registry. After paint the frozen
// hit-test list is handed to the System, which resolves pointer
// positions by z-order, tracks hover/press/focus, walks Tab order, and
// matches keyboard shortcuts. The events it emits are dispatched back
// through the Registry to the handlers registered that frame.
package interaction

import (
	"encoding/binary"
	"hash/fnv"
	"sync/atomic"
)

// ElementID identifies an interactive element across frames.
//
// Interactive elements are recreated every frame, so identity has to
// come from the ID, not the value: the same key must hash to the same
// ID on every frame for hover and focus state to stick.
type ElementID uint64

// stableBit keeps hashed IDs out of the ranges used by NewElementID
// and AutoID.
const stableBit ElementID = 1 << 63

// NewElementID returns an ID with an explicit value.
func NewElementID(v uint64) ElementID {
	return ElementID(v)
}

// StableID derives a deterministic ID from a string key. The same key
// always produces the same ID.
//
//	id := interaction.StableID("sidebar-save-button")
func StableID(key string) ElementID {
	h := fnv.New64a()
	h.Write([]byte(key))
	return ElementID(h.Sum64()) | stableBit
}

var autoCounter atomic.Uint64

func init() {
	// Start high so auto IDs never collide with small manual IDs.
	autoCounter.Store(1_000_000)
}

// AutoID returns a fresh counter-based ID.
//
// Auto IDs are not stable across frames; state keyed on them resets
// every rebuild. Prefer StableID or NewElementID for anything the user
// interacts with.
func AutoID() ElementID {
	return ElementID(autoCounter.Add(1))
}

// WithIndex derives a child ID from this ID and an index. Use it for
// elements built in loops so each item keeps a distinct, stable ID.
func (id ElementID) WithIndex(index int) ElementID {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(id))
	binary.LittleEndian.PutUint64(buf[8:], uint64(index))
	h := fnv.New64a()
	h.Write(buf[:])
	return ElementID(h.Sum64()) | stableBit
}

// WithKey derives a child ID from this ID and a string key.
func (id ElementID) WithKey(key string) ElementID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	h := fnv.New64a()
	h.Write(buf[:])
	h.Write([]byte(key))
	return ElementID(h.Sum64()) | stableBit
}
