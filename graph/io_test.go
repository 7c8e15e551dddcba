package graph_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/romandom/graph"
)

func TestRead_Valid(t *testing.T) {
	in := "4 4\n0 1\n\n1 2\n2 3\n3 3\n"
	g, err := graph.Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 3, g.Size(), "self-loop is ignored")
}

func TestRead_EmptyGraph(t *testing.T) {
	g, err := graph.Read(strings.NewReader("0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())
}

func TestRead_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"bad header":     "four 3\n",
		"negative":       "-1 0\n",
		"three fields":   "3 1\n0 1 2\n",
		"out of range":   "3 1\n0 3\n",
		"missing edges":  "3 2\n0 1\n",
		"non-int vertex": "3 1\n0 x\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graph.Read(strings.NewReader(in))
			require.ErrorIs(t, err, graph.ErrMalformedInput)
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	g := mustGraph(t, 5, [2]int{3, 1}, [2]int{0, 4}, [2]int{1, 0})

	var buf bytes.Buffer
	require.NoError(t, graph.Write(&buf, g))
	assert.Equal(t, "5 3\n0 1\n0 4\n1 3\n", buf.String())

	back, err := graph.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Size(), back.Size())
	assert.Equal(t, g.Order(), back.Order())
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "star.txt")
	require.NoError(t, os.WriteFile(path, []byte("3 2\n0 1\n0 2\n"), 0o644))

	g, err := graph.ReadFile(path)
	require.NoError(t, err)
	d, _ := g.Degree(0)
	assert.Equal(t, 2, d)

	_, err = graph.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
