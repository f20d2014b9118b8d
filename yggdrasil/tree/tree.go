// Package tree provides a rooted, ordered N-ary tree with depth-first and
// breadth-first search.
//
// The caller builds the shape with NewNode, AddChild and SetChildren, then
// wraps the top node in a Tree:
//
//	a := tree.NewNode("A")
//	c, e := tree.NewNode("C"), tree.NewNode("E")
//	_ = a.AddChild(c, e)
//	t, _ := tree.New(a)
//	node, ok := t.BreadthFirstSearch("E")
//
// Searches compare payloads with ==. When several nodes hold the same payload
// the visiting order decides which one is returned:
//
//   - DepthFirstSearch uses a stack seeded with the root. Children are pushed
//     in stored order, so the last child of a node is explored first.
//   - BreadthFirstSearch uses a queue seeded with the root and visits the
//     tree level by level, left to right.
//
// Neither search recurses, so tree depth is not bounded by the call stack.
package tree

import (
	"fmt"
	"io"
	"iter"

	"github.com/xlab/treeprint"

	"github.com/cbehopkins/linktree"
)

// Tree is an N-ary tree. It always has a root.
type Tree[T comparable] struct {
	root *Node[T]
}

// New creates a tree rooted at root.
func New[T comparable](root *Node[T]) (*Tree[T], error) {
	if root == nil {
		return nil, fmt.Errorf("tree root: %w", linktree.ErrNilNode)
	}
	return &Tree[T]{root: root}, nil
}

// Root returns the top node of the tree.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

func (t *Tree[T]) String() string {
	return fmt.Sprintf("<Tree root=%v>", t.root)
}

// DepthFirst returns an iterator visiting every node once, depth first,
// last child first.
func (t *Tree[T]) DepthFirst() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		toVisit := []*Node[T]{t.root}
		for len(toVisit) > 0 {
			last := len(toVisit) - 1
			node := toVisit[last]
			toVisit[last] = nil
			toVisit = toVisit[:last]

			if !yield(node) {
				return
			}
			toVisit = append(toVisit, node.children...)
		}
	}
}

// BreadthFirst returns an iterator visiting every node once, level by level,
// left to right.
func (t *Tree[T]) BreadthFirst() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		toCheck := []*Node[T]{t.root}
		for len(toCheck) > 0 {
			node := toCheck[0]
			toCheck[0] = nil
			toCheck = toCheck[1:]

			if !yield(node) {
				return
			}
			toCheck = append(toCheck, node.children...)
		}
	}
}

// DepthFirstSearch returns the first node holding payload in DepthFirst order.
func (t *Tree[T]) DepthFirstSearch(payload T) (*Node[T], bool) {
	return search(t.DepthFirst(), payload)
}

// BreadthFirstSearch returns the first node holding payload in BreadthFirst
// order, so shallower matches win over deeper ones.
func (t *Tree[T]) BreadthFirstSearch(payload T) (*Node[T], bool) {
	return search(t.BreadthFirst(), payload)
}

func search[T comparable](nodes iter.Seq[*Node[T]], payload T) (*Node[T], bool) {
	for node := range nodes {
		if node.payload == payload {
			return node, true
		}
	}
	return nil, false
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	count := 0
	for range t.BreadthFirst() {
		count++
	}
	return count
}

// Print writes each payload to w on its own line, in BreadthFirst order.
func (t *Tree[T]) Print(w io.Writer) error {
	for node := range t.BreadthFirst() {
		if _, err := fmt.Fprintln(w, node.payload); err != nil {
			return err
		}
	}
	return nil
}

type renderItem[T comparable] struct {
	node   *Node[T]
	branch treeprint.Tree
}

// Render draws the tree shape to w.
func (t *Tree[T]) Render(w io.Writer) error {
	out := treeprint.NewWithRoot(t.root.payload)
	stack := []renderItem[T]{{node: t.root, branch: out}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range p.node.children {
			if len(child.children) == 0 {
				p.branch.AddNode(child.payload)
				continue
			}
			stack = append(stack, renderItem[T]{node: child, branch: p.branch.AddBranch(child.payload)})
		}
	}

	_, err := io.WriteString(w, out.String())
	return err
}
