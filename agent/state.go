// Package agent holds the per-edge walker state: the sorted list of
// agent positions on one edge and the saturation flag derived from it.
package agent

import (
	"math"
	"sort"
)

// Agent is one walker on an edge: Position in [0, length], Forward true
// meaning it travels toward the edge's adjacency-side endpoint.
type Agent struct {
	Position float64
	Forward  bool
}

// State is the sorted agent population of one edge plus its cached
// saturation flag. The zero value is a valid empty, unsaturated state.
type State struct {
	Agents    []Agent
	Saturated bool
}

// Insert adds an agent at the given position and direction, sorted into
// place, suppressing it (returning false) if an existing agent within
// dt/10 already shares its direction -- two near-coincident walkers
// moving the same way are indistinguishable for saturation purposes and
// would otherwise make the skip-forward heap grow without bound.
func (s *State) Insert(position float64, forward bool, dt float64) bool {
	threshold := dt / 10

	i := sort.Search(len(s.Agents), func(i int) bool { return s.Agents[i].Position >= position })

	if i > 0 {
		nb := s.Agents[i-1]
		if nb.Forward == forward && math.Abs(nb.Position-position) < threshold {
			return false
		}
	}
	if i < len(s.Agents) {
		nb := s.Agents[i]
		if nb.Forward == forward && math.Abs(nb.Position-position) < threshold {
			return false
		}
	}

	s.Agents = append(s.Agents, Agent{})
	copy(s.Agents[i+1:], s.Agents[i:])
	s.Agents[i] = Agent{Position: position, Forward: forward}

	return true
}

// Recompute re-derives Saturated from the current sorted agent list: the
// edge must be non-empty, the first agent within epsilon of position 0,
// the last within epsilon of length, and every consecutive gap under
// 2*epsilon. No agent set of size zero is an epsilon-net of a
// positive-length edge, regardless of how short that edge is.
func (s *State) Recompute(length, epsilon float64) {
	n := len(s.Agents)
	if n == 0 {
		s.Saturated = false
		return
	}

	if s.Agents[0].Position >= epsilon {
		s.Saturated = false
		return
	}
	if length-s.Agents[n-1].Position >= epsilon {
		s.Saturated = false
		return
	}
	for i := 1; i < n; i++ {
		if s.Agents[i].Position-s.Agents[i-1].Position >= 2*epsilon {
			s.Saturated = false
			return
		}
	}

	s.Saturated = true
}
