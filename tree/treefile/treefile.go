// Package treefile reads and writes game trees as YAML documents.
//
// A document is a single node:
//
//	name: Root
//	kind: max
//	children:
//	  - name: A
//	    value: 3
//	  - name: B
//	    kind: min
//	    children: [...]
//
// kind may be omitted on a node that carries a value; it is then terminal.
package treefile

import (
	"io"
	"os"

	"github.com/chewxy/math32"
	"github.com/gorgonia/abtrace/tree"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Doc is the on-disk shape of a node.
type Doc struct {
	Name     string   `yaml:"name,omitempty"`
	Kind     string   `yaml:"kind,omitempty"`
	Value    *float32 `yaml:"value,omitempty"`
	Children []Doc    `yaml:"children,omitempty"`
}

// Decode reads one YAML document from r and builds the node it describes.
// Unknown fields are an error.
func Decode(r io.Reader) (*tree.Node, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Doc
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty tree document")
		}
		return nil, errors.Wrap(err, "unable to decode tree document")
	}
	return doc.Node()
}

// Load decodes the tree document stored at path.
func Load(path string) (*tree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open tree file %q", path)
	}
	defer f.Close()
	n, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "in %q", path)
	}
	return n, nil
}

// Node converts the document into a node, validating it on the way. A
// malformed document yields a *tree.ConfigurationError.
func (s Doc) Node() (*tree.Node, error) {
	kind := tree.Terminal
	switch {
	case s.Kind != "":
		k, err := tree.ParseKind(s.Kind)
		if err != nil {
			return nil, tree.ConfigurationErrorf(s.Name, "unknown node kind %q", s.Kind)
		}
		kind = k
	case s.Value == nil:
		return nil, tree.ConfigurationErrorf(s.Name, "node has neither a kind nor a value")
	}

	if kind == tree.Terminal {
		switch {
		case s.Value == nil:
			return nil, tree.ConfigurationErrorf(s.Name, "terminal node has no value")
		case len(s.Children) > 0:
			return nil, tree.ConfigurationErrorf(s.Name, "terminal node has %d children", len(s.Children))
		case math32.IsNaN(*s.Value):
			return nil, tree.ConfigurationErrorf(s.Name, "terminal value is not a number")
		}
		return tree.Leaf(s.Name, *s.Value), nil
	}

	if s.Value != nil {
		return nil, tree.ConfigurationErrorf(s.Name, "%v node carries a static value", kind)
	}
	children := make([]*tree.Node, 0, len(s.Children))
	for i := range s.Children {
		c, err := s.Children[i].Node()
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return tree.Internal(s.Name, kind, children...)
}

// FromNode is the inverse of Doc.Node.
func FromNode(n *tree.Node) Doc {
	if n.IsTerminal() {
		v := n.Value()
		return Doc{Name: n.Name(), Value: &v}
	}
	retVal := Doc{
		Name:     n.Name(),
		Kind:     n.Kind().String(),
		Children: make([]Doc, 0, n.NumChildren()),
	}
	for i := 0; i < n.NumChildren(); i++ {
		retVal.Children = append(retVal.Children, FromNode(n.Child(i)))
	}
	return retVal
}

// Encode writes n to w as a YAML document.
func Encode(w io.Writer, n *tree.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromNode(n)); err != nil {
		return errors.Wrap(err, "unable to encode tree document")
	}
	return errors.WithStack(enc.Close())
}
