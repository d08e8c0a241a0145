// File: types.go
// Role: Core data model for the metric graph store -- the sorted
// vertex-bucket layout and the public Graph handle.
package graph

import "sync"

// VertexID identifies a vertex. Vertices are not pre-declared; they come
// into existence the first time they appear as an UpdateEdge endpoint and
// cease to exist once their last incident edge is removed.
type VertexID = uint32

// EdgeIndex locates one edge within the store's bucket layout: Bucket
// selects the vertexView whose id owns the edge, Pos selects the position
// within that view's parallel adjacency slices. An EdgeIndex is stable
// only until the next structural mutation of the owning Graph; callers
// that hold one across an UpdateEdge call must re-resolve it.
type EdgeIndex struct {
	Bucket int
	Pos    int
}

// vertexView is one row of the sorted-by-id bucket layout: everything
// departing vertex ID "from" its own bucket, i.e. every directed edge
// whose source is ID, and every undirected edge canonically owned by ID
// (the smaller of its two endpoints).
type vertexView struct {
	id        VertexID
	adjacents []VertexID // sorted ascending, parallel to lengths/directed
	lengths   []float64
	directed  []bool
}

// Graph is a metric graph store: vertices labelled by non-negative
// integers, edges labelled by a positive real length, each either
// directed or undirected. It is safe for concurrent use; structural
// mutation (UpdateEdge) takes the write lock and the broader read
// surface (ContainsVertex, VertexList, EdgeLength, GetEdge,
// DepartingEdges, OutputEdgeList, Save*) takes the read lock.
//
// A separate, lighter mutex guards the list of attached emulators so
// that notifying them on mutation never has to be serialised behind
// readers holding the structural lock.
type Graph struct {
	mu    sync.RWMutex
	views []vertexView // sorted ascending by id

	watchMu   sync.Mutex
	watchers  map[int]Watcher
	nextWatch int
}

// Watcher is implemented by *emulator.Emulator. The graph store never
// imports the emulator package; it only needs this narrow callback
// surface to notify attached emulators without a dependency cycle.
type Watcher interface {
	Invalidate()
	Kill()
}

// New constructs an empty metric graph.
func New() *Graph {
	return &Graph{watchers: make(map[int]Watcher)}
}

// Attach registers w to be notified on structural mutation or on Close.
// It returns a handle that must be passed to Detach when w no longer
// cares about this graph (e.g. when the emulator itself dies).
func (g *Graph) Attach(w Watcher) int {
	g.watchMu.Lock()
	defer g.watchMu.Unlock()

	h := g.nextWatch
	g.nextWatch++
	g.watchers[h] = w

	return h
}

// Detach unregisters a handle previously returned by Attach. It is a
// no-op if the handle is unknown or already detached.
func (g *Graph) Detach(handle int) {
	g.watchMu.Lock()
	defer g.watchMu.Unlock()

	delete(g.watchers, handle)
}

// notifyMutated tells every attached emulator that the graph changed
// underneath it. Called with g.mu already held for writing.
func (g *Graph) notifyMutated() {
	g.watchMu.Lock()
	defer g.watchMu.Unlock()

	for _, w := range g.watchers {
		w.Invalidate()
	}
}

// Close kills every attached emulator. Go has no deterministic
// destructors, so callers that want the teacher language's "emulator
// dies with its graph" behaviour must call Close explicitly once the
// graph is no longer needed.
func (g *Graph) Close() {
	g.watchMu.Lock()
	defer g.watchMu.Unlock()

	for h, w := range g.watchers {
		w.Kill()
		delete(g.watchers, h)
	}
}
