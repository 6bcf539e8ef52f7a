package layouts

import (
	"fmt"

	"github.com/go-helio/helio/pkg/geometry"
)

type stackNode struct {
	style    Style
	measure  Measure
	children []NodeID
	bounds   geometry.Rect
}

// StackSolver is a minimal Solver that places children sequentially
// along the container's main axis. It exists so elements can be laid
// out and tested without a real constraint solver; production embeds
// one behind the same interface.
type StackSolver struct {
	nodes []stackNode
}

// NewStackSolver returns an empty stacking solver.
func NewStackSolver() *StackSolver {
	return &StackSolver{}
}

// NewLeaf creates a measured leaf node.
func (s *StackSolver) NewLeaf(style Style, measure Measure) NodeID {
	s.nodes = append(s.nodes, stackNode{style: style, measure: measure})
	return NodeID(len(s.nodes) - 1)
}

// NewNode creates a container over previously created children.
func (s *StackSolver) NewNode(style Style, children []NodeID) NodeID {
	s.nodes = append(s.nodes, stackNode{style: style, children: append([]NodeID(nil), children...)})
	return NodeID(len(s.nodes) - 1)
}

// Compute resolves the tree rooted at root within available space.
func (s *StackSolver) Compute(root NodeID, available geometry.Size) error {
	if !s.valid(root) {
		return fmt.Errorf("layouts: compute on unknown node %d", root)
	}
	size := s.resolve(root, available)
	n := &s.nodes[root]
	n.bounds = geometry.RectFromLTWH(0, 0, size.Width, size.Height)
	return nil
}

// Bounds returns the node's rect relative to its parent's content box.
// Unknown nodes resolve to the zero rect.
func (s *StackSolver) Bounds(node NodeID) geometry.Rect {
	if !s.valid(node) {
		return geometry.Rect{}
	}
	return s.nodes[node].bounds
}

// Clear drops all nodes; previously issued NodeIDs become invalid.
func (s *StackSolver) Clear() {
	s.nodes = s.nodes[:0]
}

// Len returns the number of live nodes.
func (s *StackSolver) Len() int {
	return len(s.nodes)
}

func (s *StackSolver) valid(node NodeID) bool {
	return node >= 0 && int(node) < len(s.nodes)
}

// resolve sizes a node and positions its children, returning the
// node's resolved size.
func (s *StackSolver) resolve(id NodeID, available geometry.Size) geometry.Size {
	n := &s.nodes[id]
	style := n.style

	if len(n.children) == 0 {
		size := geometry.Size{Width: style.Width, Height: style.Height}
		if n.measure != nil && (size.Width == 0 || size.Height == 0) {
			measured := n.measure(available)
			if size.Width == 0 {
				size.Width = measured.Width
			}
			if size.Height == 0 {
				size.Height = measured.Height
			}
		}
		return size
	}

	inner := geometry.Size{
		Width:  available.Width - 2*style.Padding,
		Height: available.Height - 2*style.Padding,
	}

	cursor := style.Padding
	var cross float32
	for i, child := range n.children {
		childSize := s.resolve(child, inner)
		c := &s.nodes[child]
		if style.Direction == Column {
			c.bounds = geometry.RectFromLTWH(style.Padding, cursor, childSize.Width, childSize.Height)
			cursor += childSize.Height
			if childSize.Width > cross {
				cross = childSize.Width
			}
		} else {
			c.bounds = geometry.RectFromLTWH(cursor, style.Padding, childSize.Width, childSize.Height)
			cursor += childSize.Width
			if childSize.Height > cross {
				cross = childSize.Height
			}
		}
		if i < len(n.children)-1 {
			cursor += style.Gap
		}
	}

	size := geometry.Size{Width: style.Width, Height: style.Height}
	if style.Direction == Column {
		if size.Width == 0 {
			size.Width = cross + 2*style.Padding
		}
		if size.Height == 0 {
			size.Height = cursor + style.Padding
		}
	} else {
		if size.Width == 0 {
			size.Width = cursor + style.Padding
		}
		if size.Height == 0 {
			size.Height = cross + 2*style.Padding
		}
	}
	return size
}
