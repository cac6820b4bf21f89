package tree

import "iter"

// Node is one position of a game tree as handed over by a builder. Its shape
// is fixed at construction. Nodes hold no search state; see package search.
type Node struct {
	name     string
	kind     Kind
	value    float32
	children []*Node
}

// Leaf creates a terminal node holding a fixed value.
func Leaf(name string, value float32) *Node {
	return &Node{name: name, kind: Terminal, value: value}
}

// Internal creates a Max or Min node over the given children, in order.
// The order is load bearing: it decides which children end up pruned.
func Internal(name string, kind Kind, children ...*Node) (*Node, error) {
	switch kind {
	case Max, Min:
	case Terminal:
		return nil, ConfigurationErrorf(name, "terminal node cannot have %d children", len(children))
	default:
		return nil, ConfigurationErrorf(name, "invalid kind %d", int32(kind))
	}
	if len(children) == 0 {
		return nil, ConfigurationErrorf(name, "%v node has no children", kind)
	}
	for i, c := range children {
		if c == nil {
			return nil, ConfigurationErrorf(name, "child %d is nil", i)
		}
	}
	kids := make([]*Node, len(children))
	copy(kids, children)
	return &Node{name: name, kind: kind, children: kids}, nil
}

// Must panics if err is not nil. It is meant for tree literals.
func Must(n *Node, err error) *Node {
	if err != nil {
		panic(err)
	}
	return n
}

func (n *Node) Name() string     { return n.name }
func (n *Node) Kind() Kind       { return n.kind }
func (n *Node) IsTerminal() bool { return n.kind == Terminal }

// Value returns the static value of a terminal node. It is 0 for internal nodes.
func (n *Node) Value() float32 { return n.value }

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the ith child.
func (n *Node) Child(i int) *Node { return n.children[i] }

// Walk returns a depth-first pre-order sequence of all nodes reachable from root.
// The sequence is lazy and may be ranged over any number of times.
func Walk(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if root == nil {
			return
		}
		stack := []*Node{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			for i := len(n.children) - 1; i >= 0; i-- {
				stack = append(stack, n.children[i])
			}
		}
	}
}
