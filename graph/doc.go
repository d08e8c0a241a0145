// Package graph implements the metric graph store: a set of vertices
// connected by directed or undirected edges, each carrying a positive
// real length. Internally it is a sorted slice of per-vertex buckets,
// each bucket listing the vertices reachable by one hop together with
// the length and directedness of that hop, mirroring the reference
// metric-graph layout this package is ported from.
//
// Structural mutation (UpdateEdge) invalidates any EdgeIndex obtained
// before the call and notifies every attached emulator, transitioning
// it out of its active run.
package graph
