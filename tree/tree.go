package tree

import (
	"fmt"
	"iter"

	"github.com/chewxy/math32"
)

// ID identifies a node within a Tree. IDs are assigned in depth-first
// pre-order, so the root is always 0 and every subtree occupies a
// contiguous range of IDs.
type ID int32

// None is the ID of no node.
const None ID = -1

func (id ID) IsValid() bool { return id >= 0 }

// Tree is the compiled, immutable form of a game tree. It is a flat arena
// indexed by ID; per-search state is kept elsewhere, keyed by the same IDs,
// so a Tree can be shared by any number of searches.
type Tree struct {
	names    []string
	kinds    []Kind
	values   []float32
	children [][]ID
	parents  []ID
	depths   []int
	ends     []ID // ends[id] is one past the last ID of the subtree rooted at id
}

// New compiles the tree rooted at root. Every node must be reachable exactly
// once (no shared subtrees) and node names must be unique. Unnamed nodes are
// named after their ID ("n0", "n1", ...).
func New(root *Node) (*Tree, error) {
	if root == nil {
		return nil, ConfigurationErrorf("", "nil root")
	}
	t := new(Tree)
	seen := make(map[*Node]ID)
	if err := t.add(root, None, 0, seen); err != nil {
		return nil, err
	}

	names := make(map[string]ID, len(t.names))
	for i, name := range t.names {
		if name == "" {
			name = fmt.Sprintf("n%d", i)
			t.names[i] = name
		}
		if prev, ok := names[name]; ok {
			return nil, ConfigurationErrorf(name, "name is used by both node %d and node %d", prev, i)
		}
		names[name] = ID(i)
	}
	return t, nil
}

func (t *Tree) add(n *Node, parent ID, depth int, seen map[*Node]ID) error {
	if prev, ok := seen[n]; ok {
		return ConfigurationErrorf(n.name, "node is reachable more than once (first seen as node %d)", prev)
	}
	id := ID(len(t.names))
	seen[n] = id

	t.names = append(t.names, n.name)
	t.kinds = append(t.kinds, n.kind)
	t.values = append(t.values, n.value)
	t.children = append(t.children, nil)
	t.parents = append(t.parents, parent)
	t.depths = append(t.depths, depth)
	t.ends = append(t.ends, None)

	if n.kind == Terminal && math32.IsNaN(n.value) {
		return ConfigurationErrorf(n.name, "terminal value is not a number")
	}
	if n.kind == Terminal && len(n.children) > 0 {
		return ConfigurationErrorf(n.name, "terminal node cannot have %d children", len(n.children))
	}
	if n.kind != Terminal && len(n.children) == 0 {
		return ConfigurationErrorf(n.name, "%v node has no children", n.kind)
	}

	kids := make([]ID, 0, len(n.children))
	for _, c := range n.children {
		kids = append(kids, ID(len(t.names)))
		if err := t.add(c, id, depth+1, seen); err != nil {
			return err
		}
	}
	t.children[id] = kids
	t.ends[id] = ID(len(t.names))
	return nil
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.names) }

// Root returns the ID of the root. It is always 0.
func (t *Tree) Root() ID { return 0 }

func (t *Tree) Name(id ID) string    { return t.names[id] }
func (t *Tree) Kind(id ID) Kind      { return t.kinds[id] }
func (t *Tree) IsTerminal(id ID) bool { return t.kinds[id] == Terminal }

// Value returns the static value of a terminal node.
func (t *Tree) Value(id ID) float32 { return t.values[id] }

// Children returns the ordered children of id. The returned slice must not be modified.
func (t *Tree) Children(id ID) []ID { return t.children[id] }

// Parent returns the parent of id, or None for the root.
func (t *Tree) Parent(id ID) ID { return t.parents[id] }

// Depth returns the distance from the root.
func (t *Tree) Depth(id ID) int { return t.depths[id] }

// Size returns the number of nodes in the subtree rooted at id, id included.
func (t *Tree) Size(id ID) int { return int(t.ends[id] - id) }

// Lookup finds a node by name.
func (t *Tree) Lookup(name string) (ID, bool) {
	for i, n := range t.names {
		if n == name {
			return ID(i), true
		}
	}
	return None, false
}

// Walk returns the IDs of the subtree rooted at from in depth-first pre-order.
func (t *Tree) Walk(from ID) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		if !from.IsValid() || int(from) >= len(t.names) {
			return
		}
		for id := from; id < t.ends[from]; id++ {
			if !yield(id) {
				return
			}
		}
	}
}

// All returns every ID of the tree in pre-order.
func (t *Tree) All() iter.Seq[ID] { return t.Walk(t.Root()) }

// Node rebuilds a builder Node for the subtree rooted at id.
func (t *Tree) Node(id ID) *Node {
	if t.IsTerminal(id) {
		return Leaf(t.names[id], t.values[id])
	}
	kids := make([]*Node, 0, len(t.children[id]))
	for _, c := range t.children[id] {
		kids = append(kids, t.Node(c))
	}
	return &Node{name: t.names[id], kind: t.kinds[id], children: kids}
}

func (t *Tree) Format(s fmt.State, c rune) {
	for id := range t.All() {
		fmt.Fprintf(s, "%*s%s %s", 2*t.depths[id], "", t.kinds[id], t.names[id])
		if t.IsTerminal(id) {
			fmt.Fprintf(s, " = %v", t.values[id])
		}
		fmt.Fprintln(s)
	}
}
