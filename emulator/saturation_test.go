package emulator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jointpoints/metricwalk/emulator"
	"github.com/jointpoints/metricwalk/graph"
	"github.com/jointpoints/metricwalk/topology"
)

// Table-driven end-to-end saturation timings, one row per documented
// scenario: a start vertex walked outward until every edge reports
// epsilon-saturated, checked against the closed-form expected time.
func TestRunSaturation_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		build    func() (*graph.Graph, error)
		start    graph.VertexID
		epsilon  float64
		dt       float64
		expected float64
	}{
		{
			name:     "two-vertex undirected epsilon 0.5",
			build:    func() (*graph.Graph, error) { return topology.TwoVertex(1.0, false) },
			start:    0,
			epsilon:  0.5,
			dt:       1e-3,
			expected: 0.5,
		},
		{
			name:     "two-vertex undirected epsilon 0.1",
			build:    func() (*graph.Graph, error) { return topology.TwoVertex(1.0, false) },
			start:    0,
			epsilon:  0.1,
			dt:       1e-3,
			expected: 0.9,
		},
		{
			name:     "triangle undirected epsilon 0.25",
			build:    func() (*graph.Graph, error) { return topology.Cycle(3, 1.0, false) },
			start:    0,
			epsilon:  0.25,
			dt:       1e-3,
			expected: 0.75,
		},
		{
			name:     "undirected star epsilon 0.5",
			build:    func() (*graph.Graph, error) { return topology.Star(3, 1.0, false) },
			start:    0,
			epsilon:  0.5,
			dt:       1e-3,
			expected: 0.5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.build()
			require.NoError(t, err)

			e := emulator.New(g)
			got, err := e.RunSaturation(tc.start, tc.epsilon, tc.dt, true, emulator.Sequential)
			require.NoError(t, err)
			assert.Equal(t, emulator.Invalid, e.State())
			assert.InDelta(t, tc.expected, got, tc.dt)
		})
	}
}

// A single directed edge absorbs its one walker at the far vertex and has
// nothing left to reseed it, so it can never saturate on its own --
// RunSaturation only returns once invalidated.
func TestRunSaturation_DirectedSingleEdgeNeverSaturates(t *testing.T) {
	g, err := topology.TwoVertex(1.0, true)
	require.NoError(t, err)

	e := emulator.New(g)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, runErr := e.RunSaturation(0, 0.5, 1e-2, false, emulator.Sequential)
		assert.NoError(t, runErr)
	}()

	select {
	case <-done:
		t.Fatal("a directed single edge must not saturate on its own")
	case <-time.After(20 * time.Millisecond):
	}

	e.Invalidate()
	<-done
	assert.Equal(t, emulator.Invalid, e.State())
}
