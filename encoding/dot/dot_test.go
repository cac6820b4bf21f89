package dot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorgonia/abtrace/search"
	"github.com/gorgonia/abtrace/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classic(t *testing.T) *tree.Tree {
	root, err := tree.FromValues(tree.Max, 2, []float32{3, 5, 6, 9, 1, 2, 0, -1})
	require.NoError(t, err)
	tr, err := tree.New(root)
	require.NoError(t, err)
	return tr
}

func TestEncode(t *testing.T) {
	tr := classic(t)
	res := search.Run(tr, search.WithFrames())
	require.NotEmpty(t, res.Frames)

	last := res.Frames.Last()
	s, err := Encode(tr, last)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(s, "digraph G"))
	assert.Contains(t, s, "n0->n1")
	assert.Contains(t, s, "triangle")
	assert.Contains(t, s, "invtriangle")
	assert.Contains(t, s, "box")
	assert.Contains(t, s, "dashed", "pruned nodes are dashed")
	assert.Contains(t, s, last.Label, "the graph is labelled with the frame label")
	assert.Contains(t, s, "<B>Root</B>")
	assert.Equal(t, tr.Len()-1, strings.Count(s, "->"), "one edge per non-root node")
}

func TestEncodePruneFrame(t *testing.T) {
	tr := classic(t)
	res := search.Run(tr, search.WithFrames())

	var prune search.Frame
	for _, f := range res.Frames {
		if f.Event == search.PruneEvent && strings.HasPrefix(f.Label, "pruned T8") {
			prune = f
		}
	}
	require.NotEmpty(t, prune.Label)

	s, err := Encode(tr, prune)
	require.NoError(t, err)
	assert.Contains(t, s, "pruned T8: β=2 ≤ α=5 (alpha cutoff)")
	assert.Contains(t, s, "dashed")
}

func TestEncodeCurrent(t *testing.T) {
	tr := classic(t)
	res := search.Run(tr, search.WithFrames())

	s, err := Encode(tr, res.Frames[0])
	require.NoError(t, err)
	assert.Contains(t, s, "penwidth")
	assert.NotContains(t, s, "dashed", "nothing is pruned when the root is entered")
	assert.Contains(t, s, "entering Root")
}

func TestEncodeMismatch(t *testing.T) {
	tr := classic(t)
	other, err := tree.New(tree.Leaf("x", 1))
	require.NoError(t, err)
	res := search.Run(other, search.WithFrames())

	_, err = Encode(tr, res.Frames.Last())
	assert.Error(t, err)
}

func TestWriteAll(t *testing.T) {
	tr := classic(t)
	res := search.Run(tr, search.WithFrames())
	dir := filepath.Join(t.TempDir(), "frames")

	require.NoError(t, WriteAll(dir, tr, res.Frames))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, len(res.Frames))
	assert.Equal(t, "frame-0000.dot", entries[0].Name())

	b, err := os.ReadFile(filepath.Join(dir, "frame-0029.dot"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "digraph")
}
