package graph_test

import (
	"os"

	"github.com/jointpoints/metricwalk/graph"
)

// ExampleGraph_UpdateEdge demonstrates the rewrite table: two opposing
// directed edges of equal length merge into a single undirected one.
func ExampleGraph_UpdateEdge() {
	g := graph.New()
	_ = g.UpdateEdge(0, 1, 3.0, true)
	_ = g.UpdateEdge(1, 0, 3.0, true)

	_ = g.OutputEdgeList(os.Stdout)
	// Output:
	// 0 ---- 1	3
}
