// File: update.go
// Role: The pure per-edge advance rule -- move every walker by one time
// step, reflect or absorb-and-spawn at whichever endpoint it overshoots,
// and recompute the edge's saturation flag.
package emulator

import (
	"sort"

	"github.com/jointpoints/metricwalk/agent"
	"github.com/jointpoints/metricwalk/graph"
)

// updateEdgeState advances every walker on the edge at idx by dt. A
// walker that steps past either endpoint is reported as a collision: its
// overshoot, measured from the vertex it hit, becomes the seed position
// for one Spawn per departing edge of that vertex (excluding idx itself),
// with Forward set according to whether that vertex is the departing
// edge's own source.
// Directed edges absorb the walker (it is dropped); undirected edges
// reflect it back with its direction reversed.
func updateEdgeState(g *graph.Graph, idx graph.EdgeIndex, st *agent.State, epsilon, dt float64) UpdateResult {
	source, _, length, directed := g.Endpoints(idx)

	var result UpdateResult

	out := st.Agents[:0]
	for _, a := range st.Agents {
		pos := a.Position
		if a.Forward {
			pos += dt
		} else {
			pos -= dt
		}

		if pos < 0 || pos > length {
			result.CollisionOccurred = true

			var hit graph.VertexID
			var overshoot float64
			if pos < 0 {
				hit = source
				overshoot = -pos
			} else {
				_, target, _, _ := g.Endpoints(idx)
				hit = target
				overshoot = pos - length
			}

			for _, d := range g.DepartingEdges(hit) {
				if d == idx {
					continue
				}
				dsrc, _, dlen, _ := g.Endpoints(d)
				spawnPos := overshoot
				if dsrc != hit {
					spawnPos = dlen - overshoot
				}
				result.Spawns = append(result.Spawns, Spawn{
					Target:   d,
					Position: spawnPos,
					Forward:  dsrc == hit,
				})
			}

			if directed {
				continue
			}

			if pos < 0 {
				a.Position = overshoot
			} else {
				a.Position = length - overshoot
			}
			a.Forward = !a.Forward
		} else {
			a.Position = pos
		}

		out = append(out, a)
	}
	st.Agents = out

	sort.SliceStable(st.Agents, func(i, j int) bool { return st.Agents[i].Position < st.Agents[j].Position })
	st.Recompute(length, epsilon)

	return result
}
