package emulator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jointpoints/metricwalk/emulator"
	"github.com/jointpoints/metricwalk/graph"
	"github.com/jointpoints/metricwalk/topology"
)

func TestRunSaturation_RejectsUnknownStartVertex(t *testing.T) {
	g, err := topology.TwoVertex(1.0, false)
	require.NoError(t, err)

	e := emulator.New(g)
	_, err = e.RunSaturation(99, 0.1, 1e-2, true, emulator.Sequential)
	require.Error(t, err)
	assert.ErrorIs(t, err, emulator.ErrUnknownVertex)
}

func TestRunSaturation_RejectsWhenNotReady(t *testing.T) {
	g, err := topology.TwoVertex(1.0, false)
	require.NoError(t, err)

	e := emulator.New(g)
	_, err = e.RunSaturation(0, 0.5, 1e-3, true, emulator.Sequential)
	require.NoError(t, err)

	_, err = e.RunSaturation(0, 0.5, 1e-3, true, emulator.Sequential)
	require.Error(t, err)
	assert.ErrorIs(t, err, emulator.ErrWrongState)
}

func TestReset_IdempotentOnReady(t *testing.T) {
	g, err := topology.TwoVertex(1.0, false)
	require.NoError(t, err)

	e := emulator.New(g)
	assert.NoError(t, e.Reset())
}

func TestReset_AfterInvalidReturnsToReady(t *testing.T) {
	g, err := topology.TwoVertex(1.0, false)
	require.NoError(t, err)

	e := emulator.New(g)
	_, err = e.RunSaturation(0, 0.5, 1e-3, true, emulator.Sequential)
	require.NoError(t, err)

	require.NoError(t, e.Reset())
	assert.Equal(t, emulator.Ready, e.State())
}

func TestGraphMutation_InvalidatesAttachedEmulator(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.UpdateEdge(0, 1, 1.0, false))

	e := emulator.New(g)
	require.NoError(t, g.UpdateEdge(0, 1, 2.0, false))
	assert.Equal(t, emulator.Invalid, e.State())
}

func TestGraphClose_KillsAttachedEmulator(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.UpdateEdge(0, 1, 1.0, false))

	e := emulator.New(g)
	g.Close()
	assert.Equal(t, emulator.Dead, e.State())

	err := e.Reset()
	assert.ErrorIs(t, err, emulator.ErrDead)
}
