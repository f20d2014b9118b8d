package tree

import (
	"fmt"
	"slices"

	"github.com/cbehopkins/linktree"
)

// Node is a node in an N-ary tree.
// Each node owns its children; a node has at most one parent.
type Node[T comparable] struct {
	payload  T
	children []*Node[T]
	parent   *Node[T]
}

// NewNode creates a detached node holding payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{payload: payload}
}

// Payload returns the value held by the node.
func (n *Node[T]) Payload() T {
	return n.payload
}

// Parent returns the node's parent, or nil for a detached node or a root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Children returns a copy of the node's children in stored order.
func (n *Node[T]) Children() []*Node[T] {
	return slices.Clone(n.children)
}

// NumChildren returns the number of direct children.
func (n *Node[T]) NumChildren() int {
	return len(n.children)
}

func (n *Node[T]) String() string {
	return fmt.Sprintf("<Node %v>", n.payload)
}

// AddChild appends children after the existing ones, in the order given.
// Either all children are attached or, on error, none are.
func (n *Node[T]) AddChild(children ...*Node[T]) error {
	if err := n.checkAdoptable(children); err != nil {
		return err
	}
	for _, child := range children {
		child.parent = n
	}
	n.children = append(n.children, children...)
	return nil
}

// SetChildren replaces the node's children.
// The previous children are detached and become roots of their own subtrees.
func (n *Node[T]) SetChildren(children ...*Node[T]) error {
	old := n.children
	for _, child := range old {
		child.parent = nil
	}
	// Re-setting an existing child is allowed, so detach before validating.
	if err := n.checkAdoptable(children); err != nil {
		for _, child := range old {
			child.parent = n
		}
		return err
	}
	for _, child := range children {
		child.parent = n
	}
	n.children = slices.Clone(children)
	return nil
}

func (n *Node[T]) checkAdoptable(children []*Node[T]) error {
	seen := make(map[*Node[T]]struct{}, len(children))
	for i, child := range children {
		if child == nil {
			return fmt.Errorf("child %d of %v: %w", i, n, linktree.ErrNilNode)
		}
		if child.parent != nil {
			return fmt.Errorf("child %v already has parent %v: %w", child, child.parent, linktree.ErrAlreadyAttached)
		}
		if _, dup := seen[child]; dup {
			return fmt.Errorf("child %v given twice: %w", child, linktree.ErrAlreadyAttached)
		}
		seen[child] = struct{}{}
		for anc := n; anc != nil; anc = anc.parent {
			if anc == child {
				return fmt.Errorf("child %v is an ancestor of %v: %w", child, n, linktree.ErrAlreadyAttached)
			}
		}
	}
	return nil
}
