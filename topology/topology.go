// SPDX-License-Identifier: MIT
// Package: metricwalk/topology
//
// topology.go — deterministic preset graph constructors, adapted from
// the reference builder package's Constructor/BuildGraph pattern down to
// the shapes this module needs: a bare edge, a path, a cycle, a star, a
// wheel, a complete graph, and a rectangular grid, each either directed
// or undirected.
//
// Contract (mirrors the builder package's 99-rules):
//   - Constructors validate domain parameters and return sentinel errors;
//     they never panic at runtime.
//   - Vertex IDs form a dense range starting at 0 (0..n for Star and
//     Wheel, whose n counts leaves or rim vertices besides the center),
//     assigned in construction order.
//   - Edge emission order is deterministic given n and length.
package topology

import (
	"fmt"

	"github.com/jointpoints/metricwalk/graph"
)

const minCycleVertices = 3

// ErrTooFewVertices is returned by Cycle when n < 3 and by Star when
// n < 1 (a star needs at least one leaf to be a star).
var ErrTooFewVertices = fmt.Errorf("topology: too few vertices requested")

// TwoVertex builds the smallest possible graph: vertices 0 and 1 joined
// by one edge of the given length and directedness.
func TwoVertex(length float64, directed bool) (*graph.Graph, error) {
	g := graph.New()
	if err := g.UpdateEdge(0, 1, length, directed); err != nil {
		return nil, fmt.Errorf("TwoVertex: %w", err)
	}
	return g, nil
}

// Cycle builds an n-vertex ring C_n: edge i connects i to (i+1)%n, every
// edge sharing the same length and directedness.
func Cycle(n int, length float64, directed bool) (*graph.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}

	g := graph.New()
	for i := 0; i < n; i++ {
		u := uint32(i)
		v := uint32((i + 1) % n)
		if err := g.UpdateEdge(u, v, length, directed); err != nil {
			return nil, fmt.Errorf("Cycle: UpdateEdge(%d, %d): %w", u, v, err)
		}
	}
	return g, nil
}

// Star builds a star with a center vertex (id 0) and n leaves (ids
// 1..n), every spoke sharing the same length and directedness. When
// directed is true, every spoke points outward from the center.
func Star(n int, length float64, directed bool) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Star: n=%d: %w", n, ErrTooFewVertices)
	}

	g := graph.New()
	for i := 1; i <= n; i++ {
		if err := g.UpdateEdge(0, uint32(i), length, directed); err != nil {
			return nil, fmt.Errorf("Star: UpdateEdge(0, %d): %w", i, err)
		}
	}
	return g, nil
}

// Path builds a path graph P_n: vertices 0..n-1 in a line, edge i
// connecting i to i+1. Requires n >= 2.
func Path(n int, length float64, directed bool) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
	}

	g := graph.New()
	for i := 0; i < n-1; i++ {
		u, v := uint32(i), uint32(i+1)
		if err := g.UpdateEdge(u, v, length, directed); err != nil {
			return nil, fmt.Errorf("Path: UpdateEdge(%d, %d): %w", u, v, err)
		}
	}
	return g, nil
}

// Wheel builds a wheel graph W_n: a hub vertex (id 0) joined to every
// rim vertex, plus the n-vertex rim cycle itself (ids 1..n). Requires
// n >= 3. When directed is true, both the spokes and the rim edges
// point outward from lower id to higher (wrapping), matching Cycle's
// and Star's own directed convention.
func Wheel(n int, length float64, directed bool) (*graph.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}

	g := graph.New()
	for i := 1; i <= n; i++ {
		u := uint32(i)
		if err := g.UpdateEdge(0, u, length, directed); err != nil {
			return nil, fmt.Errorf("Wheel: UpdateEdge(0, %d): %w", i, err)
		}
		v := uint32(i%n + 1)
		if err := g.UpdateEdge(u, v, length, directed); err != nil {
			return nil, fmt.Errorf("Wheel: UpdateEdge(%d, %d): %w", u, v, err)
		}
	}
	return g, nil
}

// Complete builds the complete graph K_n: every distinct pair of
// vertices joined by an edge. Requires n >= 2. When directed is true,
// every pair is joined in both directions.
func Complete(n int, length float64, directed bool) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
	}

	g := graph.New()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			u, v := uint32(i), uint32(j)
			if err := g.UpdateEdge(u, v, length, directed); err != nil {
				return nil, fmt.Errorf("Complete: UpdateEdge(%d, %d): %w", u, v, err)
			}
			if directed {
				if err := g.UpdateEdge(v, u, length, directed); err != nil {
					return nil, fmt.Errorf("Complete: UpdateEdge(%d, %d): %w", v, u, err)
				}
			}
		}
	}
	return g, nil
}

// Grid builds a rows x cols grid graph: vertex (r, c) has id
// r*cols+c, joined to its right and below neighbours. Requires
// rows, cols >= 1 and at least two vertices total.
func Grid(rows, cols int, length float64, directed bool) (*graph.Graph, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("Grid: rows=%d cols=%d: %w", rows, cols, ErrTooFewVertices)
	}

	g := graph.New()
	id := func(r, c int) uint32 { return uint32(r*cols + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				u, v := id(r, c), id(r, c+1)
				if err := g.UpdateEdge(u, v, length, directed); err != nil {
					return nil, fmt.Errorf("Grid: UpdateEdge(%d, %d): %w", u, v, err)
				}
			}
			if r+1 < rows {
				u, v := id(r, c), id(r+1, c)
				if err := g.UpdateEdge(u, v, length, directed); err != nil {
					return nil, fmt.Errorf("Grid: UpdateEdge(%d, %d): %w", u, v, err)
				}
			}
		}
	}
	return g, nil
}
