package search

import (
	"fmt"
	"strings"

	"github.com/gorgonia/abtrace/tree"
)

// Event is the kind of step a frame was captured for.
type Event uint8

const (
	InitialEvent  Event = iota // before the search starts
	EnterEvent                 // a node is entered
	TerminalEvent              // a terminal node takes its static value
	UpdateEvent                // an internal node absorbed a child's value
	PruneEvent                 // a node was cut off
)

func (e Event) String() string {
	switch e {
	case InitialEvent:
		return "initial"
	case EnterEvent:
		return "enter"
	case TerminalEvent:
		return "terminal"
	case UpdateEvent:
		return "update"
	case PruneEvent:
		return "prune"
	}
	return "UNKNOWN EVENT"
}

// Snapshot is a value copy of one node's state at the instant a frame was taken.
type Snapshot struct {
	ID      tree.ID
	Name    string
	Kind    tree.Kind
	Value   float32
	Alpha   float32
	Beta    float32
	Pruned  bool
	Visited bool
	Current bool
}

// Frame is an immutable snapshot of the whole tree's search state.
type Frame struct {
	Label   string
	Event   Event
	Current tree.ID    // the node the event concerns, tree.None for the initial frame
	Nodes   []Snapshot // one per node, in pre-order (Nodes[id].ID == id)
}

func capture(t *tree.Tree, s State, ev Event, current tree.ID, label string) Frame {
	nodes := make([]Snapshot, 0, t.Len())
	for id := range t.All() {
		ns := s[id]
		nodes = append(nodes, Snapshot{
			ID:      id,
			Name:    t.Name(id),
			Kind:    t.Kind(id),
			Value:   ns.Value,
			Alpha:   ns.Alpha,
			Beta:    ns.Beta,
			Pruned:  ns.Status == Pruned,
			Visited: ns.Status == Visited,
			Current: id == current,
		})
	}
	return Frame{Label: label, Event: ev, Current: current, Nodes: nodes}
}

// Node returns the snapshot of the given node.
func (f Frame) Node(id tree.ID) Snapshot { return f.Nodes[id] }

// Lines renders the frame as text: the label followed by one line per node.
func (f Frame) Lines() []string {
	retVal := make([]string, 0, len(f.Nodes)+1)
	retVal = append(retVal, f.Label)
	for _, n := range f.Nodes {
		marker := " "
		switch {
		case n.Current:
			marker = "▶"
		case n.Pruned:
			marker = "✂"
		case n.Visited:
			marker = "✓"
		}
		retVal = append(retVal, fmt.Sprintf("%s %s %-8s v=%-3s α=%-3s β=%s",
			marker, n.Kind, n.Name, FormatValue(n.Value), FormatValue(n.Alpha), FormatValue(n.Beta)))
	}
	return retVal
}

func (f Frame) Format(s fmt.State, c rune) {
	switch c {
	case 's':
		fmt.Fprint(s, f.Label)
	default:
		fmt.Fprint(s, strings.Join(f.Lines(), "\n"))
	}
}

// Recorder receives frames as the search produces them, in order.
type Recorder interface {
	Record(f Frame)
}

// Frames is a Recorder that keeps every frame.
type Frames []Frame

func (fs *Frames) Record(f Frame) { *fs = append(*fs, f) }

// Last returns the last recorded frame. It panics if there is none.
func (fs Frames) Last() Frame { return fs[len(fs)-1] }

// RecorderFunc adapts a function into a Recorder.
type RecorderFunc func(Frame)

func (fn RecorderFunc) Record(f Frame) { fn(f) }
