package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSample(t *testing.T) {
	dir := t.TempDir()
	conf := Config{
		Dot:    filepath.Join(dir, "dot"),
		Gif:    filepath.Join(dir, "trace.gif"),
		JSON:   filepath.Join(dir, "trace.json"),
		Verify: true,
		Top:    "max",
	}
	var out bytes.Buffer
	require.NoError(t, run(conf, &out))

	s := out.String()
	assert.Contains(t, s, "value: -3\n")
	assert.Contains(t, s, "frames: 64\n")
	assert.Contains(t, s, "pruned: T12 Max2-4 Min3-7 T13 T14 Min3-8 T15 T16\n")

	entries, err := os.ReadDir(conf.Dot)
	require.NoError(t, err)
	assert.Len(t, entries, 64)
	for _, path := range []string{conf.Gif, conf.JSON} {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, fi.Size())
	}
}

func TestRunValues(t *testing.T) {
	var out bytes.Buffer
	conf := Config{Values: "3, 5, 6, 9, 1, 2, 0, -1", Branching: 2, Top: "max", Print: true, ShallowPrune: true}
	require.NoError(t, run(conf, &out))

	s := out.String()
	assert.Contains(t, s, "value: 5\n")
	assert.Contains(t, s, "pruned: T4 Max2-4\n")
	assert.Contains(t, s, "   0 entering Root (α=-∞, β=∞)\n")
	assert.Contains(t, s, "frames: 28\n", "shallow pruning skips the frames of T7 and T8")
}

func TestRunRandom(t *testing.T) {
	var a, b bytes.Buffer
	conf := Config{Random: true, Depth: 5, Branching: 3, Seed: 42, Verify: true}
	require.NoError(t, run(conf, &a))
	require.NoError(t, run(conf, &b))
	assert.Equal(t, a.String(), b.String(), "a seed names one tree")
}

func TestRunNoPrune(t *testing.T) {
	var out bytes.Buffer
	conf := Config{Values: "3,5,6,9,1,2,0,-1", Branching: 2, Top: "max", NoPrune: true}
	require.NoError(t, run(conf, &out))
	assert.Contains(t, out.String(), "pruned: \n")
	assert.Contains(t, out.String(), "value: 5\n")
}

func TestRunTreeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.yaml")
	doc := "name: R\nkind: min\nchildren:\n  - {name: a, value: 4}\n  - {name: b, value: -2}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	var out bytes.Buffer
	require.NoError(t, run(Config{Tree: path}, &out))
	assert.Contains(t, out.String(), "value: -2\n")
}

func TestRunErrors(t *testing.T) {
	cases := map[string]Config{
		"bad values":   {Values: "1,x", Branching: 2, Top: "max"},
		"empty values": {Values: " , ", Branching: 2, Top: "max"},
		"bad top":      {Values: "1,2", Branching: 2, Top: "chance"},
		"not a power":  {Values: "1,2,3", Branching: 2, Top: "max"},
		"missing file": {Tree: "/nonexistent/tree.yaml"},
		"bad output":   {Values: "1,2", Branching: 2, Top: "max", JSON: "/nonexistent/dir/out.json"},
	}
	for name, conf := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(conf, &out)
			assert.Error(t, err)
			assert.False(t, strings.Contains(out.String(), "panic"))
		})
	}
}
