package agent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jointpoints/metricwalk/agent"
)

func TestState_InsertSortsAndSuppressesDuplicates(t *testing.T) {
	var s agent.State

	assert.True(t, s.Insert(0.5, true, 0.01))
	assert.True(t, s.Insert(0.1, true, 0.01))
	assert.True(t, s.Insert(0.9, false, 0.01))

	wantPositions := []float64{0.1, 0.5, 0.9}
	for i, a := range s.Agents {
		assert.Equal(t, wantPositions[i], a.Position)
	}

	// within dt/10 of 0.1, same direction -> suppressed
	assert.False(t, s.Insert(0.1005, true, 0.01))
	assert.Len(t, s.Agents, 3)

	// same position, opposite direction -> not suppressed
	assert.True(t, s.Insert(0.1005, false, 0.01))
	assert.Len(t, s.Agents, 4)
}

func TestState_RecomputeSaturation(t *testing.T) {
	var s agent.State
	length, epsilon := 1.0, 0.3

	s.Insert(0.1, true, 0.01)
	s.Insert(0.9, true, 0.01)
	s.Recompute(length, epsilon)
	assert.False(t, s.Saturated, "gap between 0.1 and 0.9 exceeds 2*epsilon")

	s.Insert(0.5, true, 0.01)
	s.Recompute(length, epsilon)
	assert.True(t, s.Saturated)
}

func TestState_RecomputeEmptyEdgeNeverSaturated(t *testing.T) {
	var s agent.State
	s.Recompute(0.1, 0.3)
	assert.False(t, s.Saturated, "an edge with zero agents is never saturated, however short")

	s.Recompute(10, 0.3)
	assert.False(t, s.Saturated)
}
