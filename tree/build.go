package tree

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

// FromValues builds a balanced tree over the given leaf values. Levels
// alternate between Max and Min, starting with top at the root. The number
// of values must be a power of branching.
//
// Leaves are named T1, T2, ...; internal nodes are named after their kind,
// level and position (e.g. "Min2-3"), the root is named "Root".
func FromValues(top Kind, branching int, values []float32) (*Node, error) {
	if top != Max && top != Min {
		return nil, ConfigurationErrorf("Root", "root kind must be max or min, got %v", top)
	}
	if len(values) == 0 {
		return nil, ConfigurationErrorf("Root", "no leaf values")
	}
	if len(values) == 1 {
		return Leaf("T1", values[0]), nil
	}
	if branching < 2 {
		return nil, ConfigurationErrorf("Root", "branching factor must be at least 2, got %d", branching)
	}

	levels := 0
	for n := len(values); n > 1; n /= branching {
		if n%branching != 0 {
			return nil, ConfigurationErrorf("Root", "%d leaves is not a power of %d", len(values), branching)
		}
		levels++
	}

	nodes := lo.Map(values, func(v float32, i int) *Node {
		return Leaf(fmt.Sprintf("T%d", i+1), v)
	})
	for level := levels - 1; level >= 0; level-- {
		kind := top
		if level%2 == 1 {
			kind = top.Opponent()
		}
		groups := lo.Chunk(nodes, branching)
		next := make([]*Node, 0, len(groups))
		for i, group := range groups {
			name := fmt.Sprintf("%s%d-%d", title(kind), level, i+1)
			if level == 0 {
				name = "Root"
			}
			n, err := Internal(name, kind, group...)
			if err != nil {
				return nil, err
			}
			next = append(next, n)
		}
		nodes = next
	}
	return nodes[0], nil
}

func title(k Kind) string {
	switch k {
	case Max:
		return "Max"
	case Min:
		return "Min"
	}
	return "T"
}

// Sample returns the 16 leaf demonstration tree: a max root over two min
// nodes, four max nodes, eight min nodes and sixteen leaves.
func Sample() *Node {
	values := []float32{-2, 4, 6, -8, -3, -1, 7, -5, 2, -4, -6, 8, 3, 1, -7, 5}
	leaves := lo.Map(values, func(v float32, i int) *Node {
		return Leaf(fmt.Sprintf("T%d", i+1), v)
	})

	min3 := make([]*Node, 0, 8)
	for i, pair := range lo.Chunk(leaves, 2) {
		min3 = append(min3, Must(Internal(fmt.Sprintf("Min3-%d", i+1), Min, pair...)))
	}
	max2 := make([]*Node, 0, 4)
	for i, pair := range lo.Chunk(min3, 2) {
		max2 = append(max2, Must(Internal(fmt.Sprintf("Max2-%d", i+1), Max, pair...)))
	}
	min1 := []*Node{
		Must(Internal("Min1", Min, max2[0], max2[1])),
		Must(Internal("Min2", Min, max2[2], max2[3])),
	}
	return Must(Internal("Root", Max, min1...))
}

// Random builds a random tree of the given depth. Every internal node has
// between 1 and branching children, levels alternate starting with Max, and
// leaf values are integers in [low, high].
func Random(rng *rand.Rand, depth, branching, low, high int) *Node {
	var counter int
	return random(rng, Max, depth, branching, low, high, &counter)
}

func random(rng *rand.Rand, kind Kind, depth, branching, low, high int, counter *int) *Node {
	*counter++
	name := fmt.Sprintf("n%d", *counter)
	if depth <= 0 || branching < 1 {
		v := low
		if high > low {
			v += rng.Intn(high - low + 1)
		}
		return Leaf(name, float32(v))
	}
	k := 1 + rng.Intn(branching)
	kids := make([]*Node, 0, k)
	for i := 0; i < k; i++ {
		kids = append(kids, random(rng, kind.Opponent(), depth-1, branching, low, high, counter))
	}
	return Must(Internal(name, kind, kids...))
}
