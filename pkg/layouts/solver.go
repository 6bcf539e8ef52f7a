// Package layouts defines the boundary between elements and the layout
// solver. Elements describe what they want (styles, children, measure
// callbacks) and receive opaque node handles; after Compute, resolved
// bounds are read back per node. The solving algorithm itself lives
// behind the Solver interface.
package layouts

import "github.com/go-helio/helio/pkg/geometry"

// NodeID is an opaque handle to a layout node. Valid only for the
// solver that issued it, and only until the solver is cleared.
type NodeID int

// InvalidNode is returned when a node cannot be created or found.
const InvalidNode NodeID = -1

// Measure computes the intrinsic size of a leaf given the space the
// solver offers it. Text leaves wire this to a text.Measurer.
type Measure func(available geometry.Size) geometry.Size

// Direction selects the main axis of a container.
type Direction int

const (
	Column Direction = iota
	Row
)

// Style carries the subset of layout inputs the elements in this module
// use. Zero values mean "auto": a zero Width or Height is resolved by
// the solver, a zero Gap or Padding adds nothing.
type Style struct {
	Width     float32
	Height    float32
	Direction Direction
	Gap       float32
	Padding   float32
	Grow      float32
}

// Solver turns a tree of styled nodes into resolved rectangles.
//
// The contract elements rely on:
//   - NewLeaf and NewNode are called during the layout phase, building
//     the tree bottom-up.
//   - Compute resolves the tree rooted at root within the available
//     space.
//   - Bounds returns a node's rectangle relative to its parent's
//     content box.
type Solver interface {
	NewLeaf(style Style, measure Measure) NodeID
	NewNode(style Style, children []NodeID) NodeID
	Compute(root NodeID, available geometry.Size) error
	Bounds(node NodeID) geometry.Rect
	Clear()
}
