package tree

import (
	"bytes"
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbehopkins/linktree"
)

// sampleTree builds
//
//	       A
//	     /   \
//	    C     E
//	   /       \
//	  D        B2
//	 /
//	B1
func sampleTree(t *testing.T) (tr *Tree[string], b1, b2 *Node[string]) {
	t.Helper()
	a := NewNode("A")
	b1 = NewNode("B")
	b2 = NewNode("B")
	c := NewNode("C")
	d := NewNode("D")
	e := NewNode("E")
	require.NoError(t, a.SetChildren(c, e))
	require.NoError(t, c.SetChildren(d))
	require.NoError(t, d.SetChildren(b1))
	require.NoError(t, e.SetChildren(b2))

	tr, err := New(a)
	require.NoError(t, err)
	return tr, b1, b2
}

func payloads[T comparable](nodes []*Node[T]) []T {
	out := make([]T, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Payload())
	}
	return out
}

func collect[T comparable](seq iter.Seq[*Node[T]]) []*Node[T] {
	var out []*Node[T]
	for n := range seq {
		out = append(out, n)
	}
	return out
}

func TestBreadthFirstSearchPrefersShallowerMatch(t *testing.T) {
	tr, _, b2 := sampleTree(t)
	got, ok := tr.BreadthFirstSearch("B")
	require.True(t, ok)
	assert.Same(t, b2, got)
}

func TestDepthFirstSearchExploresLastChildFirst(t *testing.T) {
	tr, _, b2 := sampleTree(t)
	got, ok := tr.DepthFirstSearch("B")
	require.True(t, ok)
	assert.Same(t, b2, got)
}

func TestDepthFirstSearchFollowsChildOrder(t *testing.T) {
	// Swapping A's children puts the deep B under the last child, which
	// depth first explores first.
	tr, b1, b2 := sampleTree(t)
	root := tr.Root()
	kids := root.Children()
	require.NoError(t, root.SetChildren(kids[1], kids[0]))

	got, ok := tr.DepthFirstSearch("B")
	require.True(t, ok)
	assert.Same(t, b1, got)

	got, ok = tr.BreadthFirstSearch("B")
	require.True(t, ok)
	assert.Same(t, b2, got)
}

func TestVisitOrders(t *testing.T) {
	tr, _, _ := sampleTree(t)
	assert.Equal(t, []string{"A", "E", "B", "C", "D", "B"}, payloads(collect(tr.DepthFirst())))
	assert.Equal(t, []string{"A", "C", "E", "D", "B", "B"}, payloads(collect(tr.BreadthFirst())))
}

func TestSearchMissVisitsEveryNodeOnce(t *testing.T) {
	tr, _, _ := sampleTree(t)

	for name, seq := range map[string]iter.Seq[*Node[string]]{
		"depth":   tr.DepthFirst(),
		"breadth": tr.BreadthFirst(),
	} {
		t.Run(name, func(t *testing.T) {
			seen := map[*Node[string]]int{}
			for n := range seq {
				seen[n]++
			}
			assert.Len(t, seen, 6)
			for n, count := range seen {
				assert.Equal(t, 1, count, "node %v visited %d times", n, count)
			}
		})
	}

	got, ok := tr.DepthFirstSearch("Z")
	assert.False(t, ok)
	assert.Nil(t, got)
	got, ok = tr.BreadthFirstSearch("Z")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRootOnlyTree(t *testing.T) {
	root := NewNode(42)
	tr, err := New(root)
	require.NoError(t, err)

	got, ok := tr.DepthFirstSearch(42)
	require.True(t, ok)
	assert.Same(t, root, got)
	got, ok = tr.BreadthFirstSearch(42)
	require.True(t, ok)
	assert.Same(t, root, got)

	_, ok = tr.DepthFirstSearch(7)
	assert.False(t, ok)
	_, ok = tr.BreadthFirstSearch(7)
	assert.False(t, ok)

	assert.Len(t, collect(tr.DepthFirst()), 1)
	assert.Equal(t, 1, tr.Len())
}

func TestEarlyStop(t *testing.T) {
	tr, _, _ := sampleTree(t)
	var seen []string
	for n := range tr.BreadthFirst() {
		seen = append(seen, n.Payload())
		if n.Payload() == "E" {
			break
		}
	}
	assert.Equal(t, []string{"A", "C", "E"}, seen)
}

func TestNewRejectsNilRoot(t *testing.T) {
	_, err := New[string](nil)
	assert.ErrorIs(t, err, linktree.ErrNilNode)
}

func TestAddChild(t *testing.T) {
	a := NewNode("A")
	b, c := NewNode("B"), NewNode("C")
	require.NoError(t, a.AddChild(b))
	require.NoError(t, a.AddChild(c))
	assert.Equal(t, 2, a.NumChildren())
	assert.Equal(t, []string{"B", "C"}, payloads(a.Children()))
	assert.Same(t, a, b.Parent())
	assert.Nil(t, a.Parent())
}

func TestAddChildRejects(t *testing.T) {
	a := NewNode("A")
	b := NewNode("B")
	other := NewNode("X")
	require.NoError(t, a.AddChild(b))

	tests := []struct {
		name     string
		parent   *Node[string]
		children []*Node[string]
		want     error
	}{
		{"nil child", a, []*Node[string]{NewNode("ok"), nil}, linktree.ErrNilNode},
		{"shared child", other, []*Node[string]{b}, linktree.ErrAlreadyAttached},
		{"self", a, []*Node[string]{a}, linktree.ErrAlreadyAttached},
		{"ancestor", b, []*Node[string]{a}, linktree.ErrAlreadyAttached},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.parent.Children()
			err := tt.parent.AddChild(tt.children...)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, tt.parent.Children())
		})
	}

	dup := NewNode("D")
	assert.ErrorIs(t, other.AddChild(dup, dup), linktree.ErrAlreadyAttached)
	assert.Nil(t, dup.Parent())
	assert.Zero(t, other.NumChildren())
}

func TestSetChildrenDetachesOld(t *testing.T) {
	a := NewNode("A")
	b, c, d := NewNode("B"), NewNode("C"), NewNode("D")
	require.NoError(t, a.SetChildren(b, c))
	require.NoError(t, a.SetChildren(c, d))

	assert.Nil(t, b.Parent())
	assert.Same(t, a, c.Parent())
	assert.Same(t, a, d.Parent())
	assert.Equal(t, []string{"C", "D"}, payloads(a.Children()))

	// A detached node can be adopted elsewhere.
	require.NoError(t, d.AddChild(b))
	assert.Same(t, d, b.Parent())
}

func TestSetChildrenFailureKeepsOld(t *testing.T) {
	a := NewNode("A")
	b, c := NewNode("B"), NewNode("C")
	require.NoError(t, a.SetChildren(b))
	require.NoError(t, b.SetChildren(c))

	err := b.SetChildren(a)
	assert.ErrorIs(t, err, linktree.ErrAlreadyAttached)
	assert.Equal(t, []string{"C"}, payloads(b.Children()))
	assert.Same(t, b, c.Parent())
}

func TestChildrenIsACopy(t *testing.T) {
	a := NewNode("A")
	require.NoError(t, a.AddChild(NewNode("B")))
	kids := a.Children()
	kids[0] = nil
	assert.NotNil(t, a.Children()[0])
}

func TestStrings(t *testing.T) {
	tr, _, _ := sampleTree(t)
	assert.Equal(t, "<Node A>", tr.Root().String())
	assert.Equal(t, "<Tree root=<Node A>>", tr.String())
}

func TestPrint(t *testing.T) {
	tr, _, _ := sampleTree(t)
	var buf bytes.Buffer
	require.NoError(t, tr.Print(&buf))
	assert.Equal(t, "A\nC\nE\nD\nB\nB\n", buf.String())
}

func TestRender(t *testing.T) {
	tr, _, _ := sampleTree(t)
	var buf bytes.Buffer
	require.NoError(t, tr.Render(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "A", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "C"), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], "D"), lines[2])
	assert.True(t, strings.HasSuffix(lines[3], "B"), lines[3])
	assert.True(t, strings.HasSuffix(lines[4], "E"), lines[4])
	assert.True(t, strings.HasSuffix(lines[5], "B"), lines[5])
}

func TestDeepTreeDoesNotRecurse(t *testing.T) {
	root := NewNode(0)
	cur := root
	const depth = 10000
	for i := 1; i <= depth; i++ {
		next := NewNode(i)
		require.NoError(t, cur.AddChild(next))
		cur = next
	}
	tr, err := New(root)
	require.NoError(t, err)

	got, ok := tr.DepthFirstSearch(depth)
	require.True(t, ok)
	assert.Same(t, cur, got)
	got, ok = tr.BreadthFirstSearch(depth)
	require.True(t, ok)
	assert.Same(t, cur, got)
}
