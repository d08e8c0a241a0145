// Package metricwalk simulates epsilon-saturation random walks on metric
// graphs: graphs whose edges carry a positive real length rather than an
// integer weight, walked continuously rather than hopped discretely.
//
// The module is organized under four subpackages:
//
//	graph/    — the metric graph store: vertices, directed/undirected
//	            weighted-by-length edges, GEXF and binary import/export
//	agent/    — per-edge walker population and its saturation flag
//	emulator/ — the saturation driver: seeds walkers from a start vertex
//	            and advances them until every edge is epsilon-saturated
//	topology/ — deterministic preset graphs (two-vertex, cycle, star)
//	            used to exercise the emulator in tests
//
// A typical run:
//
//	g := graph.New()
//	g.UpdateEdge(0, 1, 1.0, false)
//	g.UpdateEdge(1, 2, 1.0, false)
//
//	e := emulator.New(g)
//	runtime, err := e.RunSaturation(0, 0.1, 1e-3, true, emulator.Auto)
package metricwalk
