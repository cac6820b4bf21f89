// Package dot renders search frames as Graphviz documents.
package dot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/awalterschulze/gographviz"
	"github.com/gorgonia/abtrace/search"
	"github.com/gorgonia/abtrace/tree"
	"github.com/pkg/errors"
)

const graphName = "G"

type row struct {
	search.Snapshot
}

func (r row) V() string { return search.FormatValue(r.Value) }
func (r row) A() string { return search.FormatValue(r.Alpha) }
func (r row) B() string { return search.FormatValue(r.Beta) }

func (r row) Internal() bool { return r.Kind != tree.Terminal }

func (r row) Status() string {
	switch {
	case r.Pruned:
		return "pruned"
	case r.Visited:
		return "visited"
	}
	return ""
}

func shape(k tree.Kind) string {
	switch k {
	case tree.Max:
		return "triangle"
	case tree.Min:
		return "invtriangle"
	}
	return "box"
}

// Encode renders one frame of a search over t as a DOT document.
func Encode(t *tree.Tree, f search.Frame) (string, error) {
	if len(f.Nodes) != t.Len() {
		return "", errors.Errorf("frame has %d nodes, tree has %d", len(f.Nodes), t.Len())
	}
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.AddAttr(graphName, "label", fmt.Sprintf("%q", f.Label)); err != nil {
		return "", errors.WithStack(err)
	}

	var buf bytes.Buffer
	for id := range t.All() {
		n := f.Node(id)
		buf.Reset()
		if err := tmpl.Execute(&buf, row{n}); err != nil {
			return "", errors.Wrapf(err, "unable to render node %q", n.Name)
		}
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    shape(n.Kind),
			"label":    buf.String(),
		}
		switch {
		case n.Current:
			attrs["style"] = "bold"
			attrs["penwidth"] = "3"
		case n.Pruned:
			attrs["style"] = "dashed"
			attrs["color"] = "gray"
		}
		if err := g.AddNode(graphName, nodeName(id), attrs); err != nil {
			return "", errors.WithStack(err)
		}

		if parent := t.Parent(id); parent.IsValid() {
			var eattrs map[string]string
			if n.Pruned {
				eattrs = map[string]string{"style": "dashed"}
			}
			if err := g.AddEdge(nodeName(parent), nodeName(id), true, eattrs); err != nil {
				return "", errors.WithStack(err)
			}
		}
	}
	return g.String(), nil
}

// WriteAll writes every frame into dir as frame-0000.dot, frame-0001.dot and so on.
// dir is created if needed.
func WriteAll(dir string, t *tree.Tree, frames []search.Frame) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "unable to create %q", dir)
	}
	for i, f := range frames {
		s, err := Encode(t, f)
		if err != nil {
			return errors.Wrapf(err, "frame %d", i)
		}
		path := filepath.Join(dir, fmt.Sprintf("frame-%04d.dot", i))
		if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
			return errors.Wrapf(err, "unable to write %q", path)
		}
	}
	return nil
}

func nodeName(id tree.ID) string { return fmt.Sprintf("n%d", id) }

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="0" CELLSPACING="0">
<TR><TD><B>{{html .Name}}</B></TD></TR>
<TR><TD>v={{html .V}}</TD></TR>
{{- if .Internal}}
<TR><TD>α={{html .A}} β={{html .B}}</TD></TR>
{{- end}}
{{- with .Status}}
<TR><TD><I>{{.}}</I></TD></TR>
{{- end}}
</TABLE>
>`

var tmpl *template.Template

func init() {
	tmpl = template.Must(template.New("node").Parse(tmplRaw))
}
