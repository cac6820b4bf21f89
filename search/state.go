package search

import "github.com/gorgonia/abtrace/tree"

// Status is the lifecycle state of a node within one search.
//
//	Unvisited -> Visited
//	Unvisited -> Pruned
//
// Visited and Pruned are final.
type Status uint8

const (
	Unvisited Status = iota
	Visited
	Pruned
)

func (a Status) String() string {
	switch a {
	case Unvisited:
		return "Unvisited"
	case Visited:
		return "Visited"
	case Pruned:
		return "Pruned"
	}
	return "UNKNOWN STATUS"
}

// NodeState is the transient search state of a single node.
type NodeState struct {
	Value  float32 // computed value; Undefined until the node has one
	Alpha  float32 // window in effect for the node; Undefined until entered
	Beta   float32
	Status Status
}

func (n NodeState) IsVisited() bool { return n.Status == Visited }
func (n NodeState) IsPruned() bool  { return n.Status == Pruned }

// State holds the NodeState of every node of a tree, indexed by tree.ID.
type State []NodeState

// NewState returns a fresh state for a tree of n nodes.
func NewState(n int) State {
	s := make(State, n)
	s.Reset()
	return s
}

// Reset returns every node to Unvisited with no value or bounds.
func (s State) Reset() {
	for i := range s {
		s[i] = NodeState{
			Value: Undefined(),
			Alpha: Undefined(),
			Beta:  Undefined(),
		}
	}
}

// Clone returns a copy that shares nothing with s.
func (s State) Clone() State {
	retVal := make(State, len(s))
	copy(retVal, s)
	return retVal
}

// WithStatus lists, in pre-order, the IDs of the nodes in the given status.
func (s State) WithStatus(status Status) []tree.ID {
	var retVal []tree.ID
	for i := range s {
		if s[i].Status == status {
			retVal = append(retVal, tree.ID(i))
		}
	}
	return retVal
}
