package graph_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jointpoints/metricwalk/graph"
)

func TestBinary_RoundTrip(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.UpdateEdge(0, 1, 1.25, true))
	require.NoError(t, g.UpdateEdge(1, 2, 7.5, false))

	path := filepath.Join(t.TempDir(), "dump.rweg")
	require.NoError(t, g.SaveToBinary(path, true))

	loaded := graph.New()
	require.NoError(t, loaded.LoadFromBinary(path))

	assert.Equal(t, 1.25, loaded.EdgeLength(0, 1))
	assert.Equal(t, 7.5, loaded.EdgeLength(1, 2))
	assert.Equal(t, 7.5, loaded.EdgeLength(2, 1))
}

func TestBinary_TruncatedFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated.rweg")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	g := graph.New()
	err := g.LoadFromBinary(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, graph.ErrMalformedFile)
}

func TestBinary_MissingFile(t *testing.T) {
	g := graph.New()
	err := g.LoadFromBinary(filepath.Join(t.TempDir(), "missing.rweg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, graph.ErrFileNotFound)
}
