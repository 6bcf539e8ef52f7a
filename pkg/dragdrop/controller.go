package dragdrop

import (
	"github.com/go-helio/helio/pkg/geometry"
	"github.com/go-helio/helio/pkg/interaction"
)

// DragThreshold is the distance in pixels the pointer must travel
// from the press before a drag starts. Below it a press stays a click.
const DragThreshold float32 = 5

// State describes a drag in flight.
type State struct {
	Source       interaction.ElementID
	Start        geometry.Offset
	Current      geometry.Offset
	SourceBounds geometry.Rect
	Data         Data

	// HoverZone is the element of the zone currently under the drag,
	// if any.
	HoverZone    interaction.ElementID
	HasHoverZone bool

	// Offset is the vector from the pointer to the source origin at
	// press time, so the preview stays pinned to the grab point.
	Offset geometry.Offset
}

// Delta returns the total pointer travel since the press.
func (s *State) Delta() geometry.Offset {
	return s.Current.Sub(s.Start)
}

// PreviewPosition returns where the drag ghost's origin should paint.
func (s *State) PreviewPosition() geometry.Offset {
	return s.Current.Add(s.Offset)
}

// Callbacks are the source element's hooks for one drag gesture.
// OnDragEnd receives true when the payload landed in a zone.
type Callbacks struct {
	OnDragStart func(state *State)
	OnDragMove  func(state *State)
	OnDragEnd   func(completed bool)
}

// Controller runs the drag gesture state machine. It is fed from the
// frame's mouse events and consults the per-frame zone registry on
// each move.
type Controller struct {
	zones *ZoneRegistry

	armed     bool
	dragging  bool
	state     State
	callbacks Callbacks
}

// NewController returns a controller reading zones from the registry.
func NewController(zones *ZoneRegistry) *Controller {
	return &Controller{zones: zones}
}

// Dragging reports whether a drag is in flight.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Current returns the in-flight drag state.
func (c *Controller) Current() (*State, bool) {
	if !c.dragging {
		return nil, false
	}
	return &c.state, true
}

// Arm records a potential drag on mouse down. Nothing happens until
// the pointer moves past DragThreshold.
func (c *Controller) Arm(source interaction.ElementID, data Data, start geometry.Offset, sourceBounds geometry.Rect, callbacks Callbacks) {
	c.armed = true
	c.dragging = false
	c.state = State{
		Source:       source,
		Start:        start,
		Current:      start,
		SourceBounds: sourceBounds,
		Data:         data,
		Offset:       sourceBounds.Origin().Sub(start),
	}
	c.callbacks = callbacks
}

// Move advances the gesture with a new pointer position. It starts
// the drag once the threshold is crossed and drives zone enter, leave
// and over notifications afterwards.
func (c *Controller) Move(position geometry.Offset) {
	if !c.armed && !c.dragging {
		return
	}
	c.state.Current = position

	if !c.dragging {
		if c.state.Delta().Length() < DragThreshold {
			return
		}
		c.dragging = true
		if c.callbacks.OnDragStart != nil {
			c.callbacks.OnDragStart(&c.state)
		}
	}

	c.updateHoverZone(position)
	if c.callbacks.OnDragMove != nil {
		c.callbacks.OnDragMove(&c.state)
	}
}

func (c *Controller) updateHoverZone(position geometry.Offset) {
	zone, ok := c.zones.FindAt(position, c.state.Data.TypeTag())

	switch {
	case ok && c.state.HasHoverZone && c.state.HoverZone == zone.Element:
		if zone.OnDragOver != nil {
			zone.OnDragOver(position)
		}
	case ok:
		c.leaveHoverZone()
		c.state.HoverZone = zone.Element
		c.state.HasHoverZone = true
		if zone.OnDragEnter != nil {
			zone.OnDragEnter(c.state.Data)
		}
		if zone.OnDragOver != nil {
			zone.OnDragOver(position)
		}
	default:
		c.leaveHoverZone()
	}
}

func (c *Controller) leaveHoverZone() {
	if !c.state.HasHoverZone {
		return
	}
	if zone := c.zoneByElement(c.state.HoverZone); zone != nil && zone.OnDragLeave != nil {
		zone.OnDragLeave()
	}
	c.state.HasHoverZone = false
}

func (c *Controller) zoneByElement(id interaction.ElementID) *Zone {
	zones := c.zones.Zones()
	for i := len(zones) - 1; i >= 0; i-- {
		if zones[i].Element == id {
			return &zones[i]
		}
	}
	return nil
}

// Drop ends the gesture on mouse up. A drag that lands in an
// accepting zone delivers the payload; anything else ends without a
// drop. An armed press that never crossed the threshold just disarms.
func (c *Controller) Drop(position geometry.Offset) {
	if !c.dragging {
		c.armed = false
		return
	}
	c.state.Current = position

	completed := false
	if zone, ok := c.zones.FindAt(position, c.state.Data.TypeTag()); ok {
		// Delivery is not a leave: the receiving zone gets OnDrop only.
		// A zone hovered earlier but not receiving still gets its leave.
		if c.state.HasHoverZone && c.state.HoverZone == zone.Element {
			c.state.HasHoverZone = false
		}
		if zone.OnDrop != nil {
			zone.OnDrop(c.state.Data, position)
		}
		completed = true
	}

	c.finish(completed)
}

// Cancel aborts the gesture, for Escape or the pointer leaving the
// window. The source is told the drag did not complete.
func (c *Controller) Cancel() {
	if !c.dragging {
		c.armed = false
		return
	}
	c.finish(false)
}

func (c *Controller) finish(completed bool) {
	c.leaveHoverZone()
	c.armed = false
	c.dragging = false
	if c.callbacks.OnDragEnd != nil {
		c.callbacks.OnDragEnd(completed)
	}
	c.callbacks = Callbacks{}
}
