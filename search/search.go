// Package search implements minimax with alpha-beta pruning over a tree.Tree,
// recording a frame at every step that changes the search state.
//
// Search state lives in a State owned by the Searcher, keyed by tree.ID; the
// Tree itself is never written to, so independent Searchers may share it.
package search

import (
	"fmt"

	"github.com/gorgonia/abtrace/tree"
	"github.com/rs/zerolog"
)

// Stats counts what a search did.
type Stats struct {
	Entered   int // nodes entered
	Terminals int // terminal nodes evaluated
	Updates   int // child values absorbed by internal nodes
	Cutoffs   int // cutoffs detected
	Pruned    int // nodes marked pruned
}

// Result is everything a search hands over.
type Result struct {
	Value  float32
	Frames Frames // nil unless the search recorded into its own Frames
	State  State
	Stats  Stats
}

// Searcher runs alpha-beta over one Tree. A Searcher is not safe for
// concurrent use; use one Searcher per goroutine.
type Searcher struct {
	Config
	tree  *tree.Tree
	state State
	rec   Recorder
	log   zerolog.Logger
	stats Stats
}

// New creates a Searcher over t with DefaultConfig unless overridden.
func New(t *tree.Tree, opts ...Option) *Searcher {
	s := &Searcher{
		Config: DefaultConfig(),
		tree:   t,
		state:  NewState(t.Len()),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run evaluates the root of t over the window (-∞, +∞).
func Run(t *tree.Tree, opts ...Option) Result {
	s := New(t, opts...)
	v := s.Search()
	retVal := Result{
		Value: v,
		State: s.State(),
		Stats: s.stats,
	}
	if fs, ok := s.rec.(*Frames); ok {
		retVal.Frames = *fs
	}
	return retVal
}

// Search resets the state and evaluates the root over the window (-∞, +∞).
func (s *Searcher) Search() float32 {
	s.Reset()
	root := s.tree.Root()
	if s.InitialFrame {
		s.record(InitialEvent, tree.None, "initial tree")
	}
	s.log.Debug().
		Int("nodes", s.tree.Len()).
		Bool("prune-subtrees", s.PruneSubtrees).
		Bool("pruning-disabled", s.DisablePruning).
		Msg("alphabeta-search")
	v := s.Evaluate(root, NegInf(), PosInf())
	s.log.Debug().Str("value", FormatValue(v)).Interface("stats", s.stats).Msg("alphabeta-done")
	return v
}

// Evaluate computes the value of node id within the window (alpha, beta).
// Children are searched left to right; once beta <= alpha the remaining
// children are pruned and never entered.
func (s *Searcher) Evaluate(id tree.ID, alpha, beta float32) float32 {
	t := s.tree
	name := t.Name(id)
	s.stats.Entered++

	if t.IsTerminal(id) {
		s.record(EnterEvent, id, fmt.Sprintf("entering %s", name))
		v := t.Value(id)
		ns := &s.state[id]
		ns.Status = Visited
		ns.Value = v
		s.stats.Terminals++
		s.log.Debug().Str("node", name).Str("value", FormatValue(v)).Msg("terminal")
		s.record(TerminalEvent, id, fmt.Sprintf("terminal %s value = %s", name, FormatValue(v)))
		return v
	}

	s.record(EnterEvent, id, fmt.Sprintf("entering %s (α=%s, β=%s)", name, FormatValue(alpha), FormatValue(beta)))
	s.log.Debug().Str("node", name).Str("alpha", FormatValue(alpha)).Str("beta", FormatValue(beta)).Msg("enter")

	ns := &s.state[id]
	ns.Alpha, ns.Beta = alpha, beta

	maximizing := t.Kind(id) == tree.Max
	acc := PosInf()
	if maximizing {
		acc = NegInf()
	}

	children := t.Children(id)
	for i, kid := range children {
		v := s.Evaluate(kid, alpha, beta)
		if maximizing {
			if v > acc {
				acc = v
			}
			if acc > alpha {
				alpha = acc
			}
		} else {
			if v < acc {
				acc = v
			}
			if acc < beta {
				beta = acc
			}
		}

		ns.Value = acc
		ns.Alpha, ns.Beta = alpha, beta
		ns.Status = Visited
		s.stats.Updates++
		s.record(UpdateEvent, id, fmt.Sprintf("updated %s: value=%s, α=%s, β=%s",
			name, FormatValue(acc), FormatValue(alpha), FormatValue(beta)))

		if !s.DisablePruning && beta <= alpha {
			s.stats.Cutoffs++
			s.log.Debug().
				Str("node", name).
				Str("alpha", FormatValue(alpha)).
				Str("beta", FormatValue(beta)).
				Int("remaining", len(children)-i-1).
				Msg("cutoff")
			s.prune(id, children[i+1:], alpha, beta, maximizing)
			break
		}
	}
	return acc
}

// prune marks the remaining children of parent (and their subtrees when
// PruneSubtrees is set) as pruned. The parent is the current node of every
// prune frame, since its cutoff is what triggered them.
func (s *Searcher) prune(parent tree.ID, rest []tree.ID, alpha, beta float32, maximizing bool) {
	for _, kid := range rest {
		for id := range s.tree.Walk(kid) {
			if id != kid && !s.PruneSubtrees {
				break
			}
			s.state[id].Status = Pruned
			s.stats.Pruned++

			var label string
			if maximizing {
				label = fmt.Sprintf("pruned %s: α=%s ≥ β=%s (beta cutoff)",
					s.tree.Name(id), FormatValue(alpha), FormatValue(beta))
			} else {
				label = fmt.Sprintf("pruned %s: β=%s ≤ α=%s (alpha cutoff)",
					s.tree.Name(id), FormatValue(beta), FormatValue(alpha))
			}
			s.record(PruneEvent, parent, label)
		}
	}
}

func (s *Searcher) record(ev Event, current tree.ID, label string) {
	if s.rec == nil {
		return
	}
	s.rec.Record(capture(s.tree, s.state, ev, current, label))
}

// Reset clears the search state and counters. Recorded frames are kept.
func (s *Searcher) Reset() {
	s.state.Reset()
	s.stats = Stats{}
}

// State returns a copy of the current search state.
func (s *Searcher) State() State { return s.state.Clone() }

func (s *Searcher) Stats() Stats { return s.stats }

func (s *Searcher) Tree() *tree.Tree { return s.tree }

// Minimax computes the value of id without any pruning and without touching
// any search state. It is the reference alpha-beta must agree with.
func Minimax(t *tree.Tree, id tree.ID) float32 {
	if t.IsTerminal(id) {
		return t.Value(id)
	}
	maximizing := t.Kind(id) == tree.Max
	acc := PosInf()
	if maximizing {
		acc = NegInf()
	}
	for _, kid := range t.Children(id) {
		v := Minimax(t, kid)
		if (maximizing && v > acc) || (!maximizing && v < acc) {
			acc = v
		}
	}
	return acc
}
