package gif

import (
	"bytes"
	"image/gif"
	"testing"

	"github.com/gorgonia/abtrace/search"
	"github.com/gorgonia/abtrace/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frames(t *testing.T) search.Frames {
	root, err := tree.FromValues(tree.Max, 2, []float32{3, 5, 6, 9, 1, 2, 0, -1})
	require.NoError(t, err)
	tr, err := tree.New(root)
	require.NoError(t, err)
	return search.Run(tr, search.WithFrames()).Frames
}

func TestEncoder(t *testing.T) {
	fs := frames(t)
	var buf bytes.Buffer
	enc := NewEncoder(1000, 1000)
	enc.Writer = &buf
	for _, f := range fs {
		require.NoError(t, enc.Encode(f))
	}
	assert.Equal(t, len(fs), enc.Len())
	require.NoError(t, enc.Flush())

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, g.Image, len(fs))
	assert.Equal(t, frameDelay, g.Delay[0])
	assert.Equal(t, lastDelay, g.Delay[len(g.Delay)-1])

	b := g.Image[0].Bounds()
	assert.LessOrEqual(t, b.Dx(), 1000)
	assert.LessOrEqual(t, b.Dy(), 1000)
	for _, im := range g.Image[1:] {
		assert.Equal(t, b, im.Bounds(), "every frame has the size of the first")
	}
}

func TestEncodeAllClamps(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeAll(&buf, frames(t)[:2], 120, 200))
	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, g.Image[0].Bounds().Dx())
	assert.Equal(t, 120, g.Image[0].Bounds().Dy())
}

func TestFlushErrors(t *testing.T) {
	enc := NewEncoder(100, 100)
	assert.Error(t, enc.Flush(), "no writer")
	enc.Writer = new(bytes.Buffer)
	assert.Error(t, enc.Flush(), "no frames")
}
