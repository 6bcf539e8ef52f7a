package dragdrop

import (
	"slices"

	"github.com/go-helio/helio/pkg/geometry"
	"github.com/go-helio/helio/pkg/interaction"
)

// Zone is a registered drop target for one frame.
type Zone struct {
	Element interaction.ElementID
	Bounds  geometry.Rect

	// AcceptedTypes filters payloads by type tag. Empty accepts all.
	AcceptedTypes []string

	// IsInsertZone marks a gap between list items rather than an
	// element. InsertIndex is the position a dropped item takes.
	IsInsertZone bool
	InsertIndex  int

	OnDrop      func(data Data, position geometry.Offset)
	OnDragEnter func(data Data)
	OnDragLeave func()
	OnDragOver  func(position geometry.Offset)
}

// Accepts reports whether the zone takes a payload with this type tag.
func (z *Zone) Accepts(typeTag string) bool {
	return len(z.AcceptedTypes) == 0 || slices.Contains(z.AcceptedTypes, typeTag)
}

// ZoneRegistry holds the drop zones registered during the current
// paint pass. Like the hit-test list it is rebuilt every frame.
type ZoneRegistry struct {
	zones []Zone
}

// NewZoneRegistry returns an empty registry.
func NewZoneRegistry() *ZoneRegistry {
	return &ZoneRegistry{}
}

// Register adds a drop zone.
func (r *ZoneRegistry) Register(zone Zone) {
	r.zones = append(r.zones, zone)
}

// FindAt returns the zone under the position that accepts the type
// tag. Zones paint in registration order, so the scan runs backwards
// and the last registered eligible zone wins.
func (r *ZoneRegistry) FindAt(position geometry.Offset, typeTag string) (*Zone, bool) {
	for i := len(r.zones) - 1; i >= 0; i-- {
		z := &r.zones[i]
		if z.Bounds.Contains(position) && z.Accepts(typeTag) {
			return z, true
		}
	}
	return nil, false
}

// Zones returns the registered zones in registration order.
func (r *ZoneRegistry) Zones() []Zone {
	return r.zones
}

// Len returns the number of registered zones.
func (r *ZoneRegistry) Len() int {
	return len(r.zones)
}

// Clear drops all zones for the next frame.
func (r *ZoneRegistry) Clear() {
	r.zones = r.zones[:0]
}
