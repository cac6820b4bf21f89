// Package jsonframes writes a search result and all of its frames as one
// JSON document.
package jsonframes

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/gorgonia/abtrace/search"
	"github.com/gorgonia/abtrace/tree"
	"github.com/pkg/errors"
)

// Value is a search value. Infinities encode as "inf" and "-inf", an
// undefined value (or any other NaN) as null.
type Value float32

func (v Value) MarshalJSON() ([]byte, error) {
	f := float32(v)
	switch {
	case search.IsUndefined(f), math32.IsNaN(f):
		return []byte("null"), nil
	case math32.IsInf(f, 1):
		return []byte(`"inf"`), nil
	case math32.IsInf(f, -1):
		return []byte(`"-inf"`), nil
	}
	return strconv.AppendFloat(nil, float64(f), 'g', -1, 32), nil
}

type Node struct {
	ID     tree.ID `json:"id"`
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	Parent tree.ID `json:"parent"`
	Value  *Value  `json:"value,omitempty"` // terminals only
}

type NodeState struct {
	ID     tree.ID `json:"id"`
	Value  Value   `json:"value"`
	Alpha  Value   `json:"alpha"`
	Beta   Value   `json:"beta"`
	Status string  `json:"status"`
}

type Frame struct {
	Label   string      `json:"label"`
	Event   string      `json:"event"`
	Current tree.ID     `json:"current"`
	Nodes   []NodeState `json:"nodes"`
}

// Document is the top level JSON object.
type Document struct {
	Value  Value        `json:"value"`
	Stats  search.Stats `json:"stats"`
	Nodes  []Node       `json:"nodes"`
	Frames []Frame      `json:"frames"`
}

// NewDocument collects the tree and result into a Document.
func NewDocument(t *tree.Tree, r search.Result) Document {
	doc := Document{
		Value:  Value(r.Value),
		Stats:  r.Stats,
		Nodes:  make([]Node, 0, t.Len()),
		Frames: make([]Frame, 0, len(r.Frames)),
	}
	for id := range t.All() {
		n := Node{
			ID:     id,
			Name:   t.Name(id),
			Kind:   t.Kind(id).String(),
			Parent: t.Parent(id),
		}
		if t.IsTerminal(id) {
			v := Value(t.Value(id))
			n.Value = &v
		}
		doc.Nodes = append(doc.Nodes, n)
	}
	for _, f := range r.Frames {
		jf := Frame{
			Label:   f.Label,
			Event:   f.Event.String(),
			Current: f.Current,
			Nodes:   make([]NodeState, 0, len(f.Nodes)),
		}
		for _, n := range f.Nodes {
			jf.Nodes = append(jf.Nodes, NodeState{
				ID:     n.ID,
				Value:  Value(n.Value),
				Alpha:  Value(n.Alpha),
				Beta:   Value(n.Beta),
				Status: status(n),
			})
		}
		doc.Frames = append(doc.Frames, jf)
	}
	return doc
}

func status(n search.Snapshot) string {
	switch {
	case n.Pruned:
		return "pruned"
	case n.Visited:
		return "visited"
	}
	return "unvisited"
}

// Write encodes the result of a search over t into w.
func Write(w io.Writer, t *tree.Tree, r search.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(NewDocument(t, r)), "unable to encode frames")
}
