package topology_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jointpoints/metricwalk/topology"
)

func TestTwoVertex(t *testing.T) {
	g, err := topology.TwoVertex(1.5, false)
	require.NoError(t, err)
	assert.Equal(t, 1.5, g.EdgeLength(0, 1))
}

func TestCycle_RejectsTooFew(t *testing.T) {
	_, err := topology.Cycle(2, 1.0, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, topology.ErrTooFewVertices)
}

func TestCycle_ClosesTheRing(t *testing.T) {
	g, err := topology.Cycle(3, 1.0, false)
	require.NoError(t, err)

	assert.Equal(t, 1.0, g.EdgeLength(0, 1))
	assert.Equal(t, 1.0, g.EdgeLength(1, 2))
	assert.Equal(t, 1.0, g.EdgeLength(2, 0))
}

func TestStar_RejectsTooFew(t *testing.T) {
	_, err := topology.Star(0, 1.0, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, topology.ErrTooFewVertices)
}

func TestStar_EverySpokeFromCenter(t *testing.T) {
	g, err := topology.Star(3, 2.0, true)
	require.NoError(t, err)

	for leaf := uint32(1); leaf <= 3; leaf++ {
		assert.Equal(t, 2.0, g.EdgeLength(0, leaf))
		assert.True(t, math.IsInf(g.EdgeLength(leaf, 0), 1), "directed spokes only point outward")
	}
}

func TestPath_RejectsTooFew(t *testing.T) {
	_, err := topology.Path(1, 1.0, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, topology.ErrTooFewVertices)
}

func TestPath_ConnectsInOrder(t *testing.T) {
	g, err := topology.Path(4, 1.5, false)
	require.NoError(t, err)

	assert.Equal(t, 1.5, g.EdgeLength(0, 1))
	assert.Equal(t, 1.5, g.EdgeLength(1, 2))
	assert.Equal(t, 1.5, g.EdgeLength(2, 3))
	assert.True(t, math.IsInf(g.EdgeLength(0, 3), 1), "path has no chord between its ends")
}

func TestWheel_RejectsTooFew(t *testing.T) {
	_, err := topology.Wheel(2, 1.0, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, topology.ErrTooFewVertices)
}

func TestWheel_HubAndRim(t *testing.T) {
	g, err := topology.Wheel(4, 1.0, false)
	require.NoError(t, err)

	for rim := uint32(1); rim <= 4; rim++ {
		assert.Equal(t, 1.0, g.EdgeLength(0, rim))
	}
	assert.Equal(t, 1.0, g.EdgeLength(1, 2))
	assert.Equal(t, 1.0, g.EdgeLength(4, 1), "rim wraps back to vertex 1")
}

func TestComplete_RejectsTooFew(t *testing.T) {
	_, err := topology.Complete(1, 1.0, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, topology.ErrTooFewVertices)
}

func TestComplete_EveryPairJoined(t *testing.T) {
	g, err := topology.Complete(3, 1.0, false)
	require.NoError(t, err)

	assert.Equal(t, 1.0, g.EdgeLength(0, 1))
	assert.Equal(t, 1.0, g.EdgeLength(0, 2))
	assert.Equal(t, 1.0, g.EdgeLength(1, 2))
}

func TestComplete_DirectedJoinsBothWays(t *testing.T) {
	g, err := topology.Complete(3, 1.0, true)
	require.NoError(t, err)

	assert.Equal(t, 1.0, g.EdgeLength(0, 1))
	assert.Equal(t, 1.0, g.EdgeLength(1, 0))
}

func TestGrid_RejectsTooFew(t *testing.T) {
	_, err := topology.Grid(1, 1, 1.0, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, topology.ErrTooFewVertices)
}

func TestGrid_ConnectsNeighbours(t *testing.T) {
	g, err := topology.Grid(2, 3, 1.0, false)
	require.NoError(t, err)

	assert.Equal(t, 1.0, g.EdgeLength(0, 1)) // (0,0)-(0,1)
	assert.Equal(t, 1.0, g.EdgeLength(1, 2)) // (0,1)-(0,2)
	assert.Equal(t, 1.0, g.EdgeLength(0, 3)) // (0,0)-(1,0)
	assert.True(t, math.IsInf(g.EdgeLength(0, 4), 1), "no diagonal edges")
}
