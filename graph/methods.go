// File: methods.go
// Role: Read-side queries (ContainsVertex, VertexList, GetEdge,
// EdgeLength, DepartingEdges, OutputEdgeList) and the UpdateEdge rewrite
// table, ported from the reference metric-graph lookup/update protocol.
package graph

import (
	"fmt"
	"io"
	"math"
	"sort"
)

// bucketSearch returns the view index whose id == v and whether it exists.
func (g *Graph) bucketSearch(v VertexID) (int, bool) {
	i := sort.Search(len(g.views), func(i int) bool { return g.views[i].id >= v })
	if i < len(g.views) && g.views[i].id == v {
		return i, true
	}
	return i, false
}

// adjSearch returns the position of neighbour within a view's adjacency
// slice and whether it exists.
func adjSearch(v *vertexView, neighbour VertexID) (int, bool) {
	j := sort.Search(len(v.adjacents), func(j int) bool { return v.adjacents[j] >= neighbour })
	if j < len(v.adjacents) && v.adjacents[j] == neighbour {
		return j, true
	}
	return j, false
}

// ContainsVertex reports whether v appears anywhere in the graph, either
// as a bucket owner or as someone else's adjacency target.
func (g *Graph) ContainsVertex(v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.bucketSearch(v); ok {
		return true
	}
	for i := range g.views {
		if _, ok := adjSearch(&g.views[i], v); ok {
			return true
		}
	}
	return false
}

// VertexList returns every vertex id that appears in the graph, sorted
// ascending, deduplicated across bucket owners and adjacency targets.
func (g *Graph) VertexList() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[VertexID]struct{}, len(g.views)*2)
	for i := range g.views {
		seen[g.views[i].id] = struct{}{}
		for _, adj := range g.views[i].adjacents {
			seen[adj] = struct{}{}
		}
	}

	out := make([]VertexID, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// findInBucket searches bucket `from`'s adjacency list for `to`,
// regardless of how that entry is stored (directed or undirected).
func (g *Graph) findInBucket(from, to VertexID) (idx EdgeIndex, directed bool, found bool) {
	b, ok := g.bucketSearch(from)
	if !ok {
		return EdgeIndex{}, false, false
	}
	p, ok := adjSearch(&g.views[b], to)
	if !ok {
		return EdgeIndex{}, false, false
	}
	return EdgeIndex{Bucket: b, Pos: p}, g.views[b].directed[p], true
}

// GetEdge implements the lookup protocol: when directed is true, search
// literally for u->v; if strict is false and that probe fails while
// v > u, also try the reverse bucket for an existing undirected v--u
// entry. When directed is false, normalise to (min, max) and search once.
// strict, when true, additionally requires the stored entry's own
// directedness to equal the requested directed flag.
func (g *Graph) GetEdge(u, v VertexID, directed, strict bool) (EdgeIndex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.getEdgeLocked(u, v, directed, strict)
}

func (g *Graph) getEdgeLocked(u, v VertexID, directed, strict bool) (EdgeIndex, bool) {
	from, to := u, v
	if !directed {
		from, to = minmax(u, v)
	}

	if idx, storedDirected, found := g.findInBucket(from, to); found {
		if !strict || storedDirected == directed {
			return idx, true
		}
		return EdgeIndex{}, false
	}

	if !strict && directed && to > from {
		if idx, storedDirected, found := g.findInBucket(to, from); found && !storedDirected {
			return idx, true
		}
	}

	return EdgeIndex{}, false
}

func minmax(a, b VertexID) (VertexID, VertexID) {
	if a < b {
		return a, b
	}
	return b, a
}

// Endpoints returns the physical layout of an edge: Source is always the
// bucket-owning vertex (position 0 on the edge), Target is always the
// adjacency entry (position Length on the edge), regardless of whether
// the edge is directed or undirected.
func (g *Graph) Endpoints(idx EdgeIndex) (source, target VertexID, length float64, directed bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := &g.views[idx.Bucket]
	return v.id, v.adjacents[idx.Pos], v.lengths[idx.Pos], v.directed[idx.Pos]
}

// Length returns the length of the edge at idx.
func (g *Graph) Length(idx EdgeIndex) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.views[idx.Bucket].lengths[idx.Pos]
}

// EdgeLength locates an edge leading from u to v -- a directed u->v
// edge, or an undirected edge regardless of which endpoint owns the
// bucket -- and returns its length, or +Inf if no such edge exists. A
// directed v->u edge does not count.
func (g *Graph) EdgeLength(u, v VertexID) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx, ok := g.getEdgeLocked(u, v, true, false); ok {
		return g.views[idx.Bucket].lengths[idx.Pos]
	}
	if idx, ok := g.getEdgeLocked(v, u, true, false); ok && !g.views[idx.Bucket].directed[idx.Pos] {
		return g.views[idx.Bucket].lengths[idx.Pos]
	}
	return math.Inf(1)
}

// DepartingEdges lists every edge an agent positioned at vertex v could
// leave along: every entry in v's own bucket (directed-from-v or
// undirected-owned-by-v), plus every undirected entry in any other
// bucket whose adjacency target is v.
func (g *Graph) DepartingEdges(v VertexID) []EdgeIndex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []EdgeIndex

	if b, ok := g.bucketSearch(v); ok {
		for p := range g.views[b].adjacents {
			out = append(out, EdgeIndex{Bucket: b, Pos: p})
		}
	}

	for b := range g.views {
		if g.views[b].id == v {
			continue
		}
		for p, adj := range g.views[b].adjacents {
			if adj == v && !g.views[b].directed[p] {
				out = append(out, EdgeIndex{Bucket: b, Pos: p})
			}
		}
	}

	return out
}

// AllEdges returns every EdgeIndex currently in the graph, in bucket then
// position order. Used by the saturation driver to seed per-edge state.
func (g *Graph) AllEdges() []EdgeIndex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []EdgeIndex
	for b := range g.views {
		for p := range g.views[b].adjacents {
			out = append(out, EdgeIndex{Bucket: b, Pos: p})
		}
	}
	return out
}

// OutputEdgeList writes one line per edge: "u ----> v\tlength" for
// directed edges, "u ---- v\tlength" for undirected ones.
func (g *Graph) OutputEdgeList(w io.Writer) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for b := range g.views {
		v := &g.views[b]
		for p, adj := range v.adjacents {
			arrow := "---->"
			if !v.directed[p] {
				arrow = "----"
			}
			if _, err := fmt.Fprintf(w, "%d %s %d\t%g\n", v.id, arrow, adj, v.lengths[p]); err != nil {
				return err
			}
		}
	}
	return nil
}

// UpdateEdge inserts or merges an edge between u and v with the given
// length and directedness, following the rewrite table:
//
//	no existing edge             -> insert as requested
//	existing u--v (undirected)   -> update length, stays undirected
//	existing u->v, request u->v  -> update length
//	existing u->v, request u--v  -> replace with undirected, length updated
//	existing v->u, request u->v  -> merge to undirected; lengths must match
//	existing v->u, request u--v  -> replace with undirected, length updated
//
// The merge case deliberately rejects a length mismatch (ErrLengthMismatch)
// rather than silently picking one side, a documented deviation from the
// permissive reference implementation.
func (g *Graph) UpdateEdge(u, v VertexID, length float64, directed bool) error {
	if length <= 0 {
		return ErrBadLength
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	idxUndir, okUndir := g.getEdgeLocked(u, v, false, true)
	idxUV, okUV := g.getEdgeLocked(u, v, true, true)
	idxVU, okVU := g.getEdgeLocked(v, u, true, true)

	switch {
	case okUndir:
		g.views[idxUndir.Bucket].lengths[idxUndir.Pos] = length

	case okUV:
		if directed {
			g.views[idxUV.Bucket].lengths[idxUV.Pos] = length
		} else {
			g.removeAt(idxUV)
			g.insertUndirected(u, v, length)
		}

	case okVU:
		if directed {
			existing := g.views[idxVU.Bucket].lengths[idxVU.Pos]
			if existing != length {
				return ErrLengthMismatch
			}
			g.removeAt(idxVU)
			g.insertUndirected(u, v, length)
		} else {
			g.removeAt(idxVU)
			g.insertUndirected(u, v, length)
		}

	default:
		if directed {
			g.insertDirected(u, v, length)
		} else {
			g.insertUndirected(u, v, length)
		}
	}

	g.notifyMutated()
	return nil
}

func (g *Graph) insertDirected(from, to VertexID, length float64) {
	b := g.ensureBucket(from)
	p, _ := adjSearch(&g.views[b], to)
	g.insertAt(b, p, to, length, true)
}

func (g *Graph) insertUndirected(u, v VertexID, length float64) {
	from, to := minmax(u, v)
	b := g.ensureBucket(from)
	p, _ := adjSearch(&g.views[b], to)
	g.insertAt(b, p, to, length, false)
}

// ensureBucket returns the index of the view owned by id, creating an
// empty one in sorted position if none exists.
func (g *Graph) ensureBucket(id VertexID) int {
	b, ok := g.bucketSearch(id)
	if ok {
		return b
	}
	g.views = append(g.views, vertexView{})
	copy(g.views[b+1:], g.views[b:])
	g.views[b] = vertexView{id: id}
	return b
}

func (g *Graph) insertAt(bucket, pos int, to VertexID, length float64, directed bool) {
	v := &g.views[bucket]
	v.adjacents = append(v.adjacents, 0)
	copy(v.adjacents[pos+1:], v.adjacents[pos:])
	v.adjacents[pos] = to

	v.lengths = append(v.lengths, 0)
	copy(v.lengths[pos+1:], v.lengths[pos:])
	v.lengths[pos] = length

	v.directed = append(v.directed, false)
	copy(v.directed[pos+1:], v.directed[pos:])
	v.directed[pos] = directed
}

// removeAt deletes the edge at idx, dropping the owning bucket entirely
// if it becomes empty. Since EdgeIndex.Bucket is a slice position, every
// EdgeIndex computed before a removeAt call on the same graph must be
// treated as invalid afterwards.
func (g *Graph) removeAt(idx EdgeIndex) {
	v := &g.views[idx.Bucket]
	v.adjacents = append(v.adjacents[:idx.Pos], v.adjacents[idx.Pos+1:]...)
	v.lengths = append(v.lengths[:idx.Pos], v.lengths[idx.Pos+1:]...)
	v.directed = append(v.directed[:idx.Pos], v.directed[idx.Pos+1:]...)

	if len(v.adjacents) == 0 {
		g.views = append(g.views[:idx.Bucket], g.views[idx.Bucket+1:]...)
	}
}
