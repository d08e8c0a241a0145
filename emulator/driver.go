// File: driver.go
// Role: The saturation driver -- lifecycle management plus the
// two-phase (skip-forward, then fixed-step) search that advances every
// edge's walker population until the whole graph is epsilon-saturated.
package emulator

import (
	"container/heap"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/jointpoints/metricwalk/agent"
	"github.com/jointpoints/metricwalk/graph"
)

// Emulator runs epsilon-saturation walks over one attached graph. It is
// safe to call Invalidate and Kill from any goroutine while a
// RunSaturation call is in progress elsewhere; RunSaturation itself,
// Reset, and successive RunSaturation calls are not meant to overlap on
// the same Emulator.
type Emulator struct {
	g          *graph.Graph
	lifecycle  atomic.Int32
	handle     int
	detachOnce sync.Once

	mu        sync.Mutex // guards state/edges/maxAgents between calls
	state     map[graph.EdgeIndex]*agent.State
	edges     []graph.EdgeIndex
	maxAgents int
}

// New attaches a fresh, Ready emulator to g.
func New(g *graph.Graph) *Emulator {
	e := &Emulator{g: g}
	e.lifecycle.Store(int32(Ready))
	e.handle = g.Attach(e)
	return e
}

// State returns the current lifecycle.
func (e *Emulator) State() Lifecycle { return Lifecycle(e.lifecycle.Load()) }

// Invalidate moves the emulator to Invalid from any state but Dead. It is
// idempotent and safe to call concurrently with a running RunSaturation;
// the running call notices on its next loop iteration and returns early.
func (e *Emulator) Invalidate() {
	for {
		cur := Lifecycle(e.lifecycle.Load())
		if cur == Dead || cur == Invalid {
			return
		}
		if e.lifecycle.CompareAndSwap(int32(cur), int32(Invalid)) {
			return
		}
	}
}

// Kill moves the emulator to Dead unconditionally. Called by the
// attached graph's Close, and safe to call directly.
func (e *Emulator) Kill() {
	e.lifecycle.Store(int32(Dead))
}

// Reset returns an Invalid emulator to Ready, dropping all walker state.
// It is a no-op on a Ready emulator and an error (ErrDead, ErrWrongState)
// on a Dead or Active one.
func (e *Emulator) Reset() error {
	cur := Lifecycle(e.lifecycle.Load())
	switch cur {
	case Ready:
		return nil
	case Dead:
		return ErrDead
	case Active:
		return ErrWrongState
	}

	e.mu.Lock()
	e.state = nil
	e.edges = nil
	e.maxAgents = 0
	e.mu.Unlock()

	e.lifecycle.Store(int32(Ready))
	return nil
}

// Close detaches the emulator from its graph without killing it; used
// when an emulator should simply stop listening for mutation (e.g. it
// has already finished its one run and the caller only wants its result).
func (e *Emulator) Close() {
	e.detachOnce.Do(func() { e.g.Detach(e.handle) })
}

// RunSaturation walks the attached graph outward from start until every
// edge is epsilon-saturated, or until the graph mutates underneath it.
// It returns the simulated runtime elapsed. skipForward enables phase A
// (variable-step skip-forward via a collision-time heap); phase B
// (fixed-step dt) always runs afterward to confirm saturation, since
// phase A's per-edge necessary condition is not sufficient on its own.
func (e *Emulator) RunSaturation(start graph.VertexID, epsilon, dt float64, skipForward bool, c Concurrency) (float64, error) {
	if Lifecycle(e.lifecycle.Load()) != Ready {
		if e.State() == Dead {
			return 0, ErrDead
		}
		return 0, ErrWrongState
	}
	if !e.g.ContainsVertex(start) {
		return 0, ErrUnknownVertex
	}
	workers, err := resolveWorkers(c)
	if err != nil {
		return 0, err
	}

	e.lifecycle.Store(int32(Active))

	e.mu.Lock()
	e.edges = e.g.AllEdges()
	e.state = make(map[graph.EdgeIndex]*agent.State, len(e.edges))
	for _, idx := range e.edges {
		e.state[idx] = &agent.State{}
	}
	e.maxAgents = 0
	e.mu.Unlock()

	elapsed := 0.0

	for _, idx := range e.g.DepartingEdges(start) {
		source, _, length, _ := e.g.Endpoints(idx)
		pos, forward := 0.0, true
		if source != start {
			pos, forward = length, false
		}
		st := e.state[idx]
		st.Insert(pos, forward, dt)
		st.Recompute(length, epsilon)
		e.trackMax(len(st.Agents))
	}

	h := &timeHeap{}
	heap.Init(h)
	for _, idx := range e.edges {
		if len(e.state[idx].Agents) > 0 {
			heap.Push(h, heapItem{t: e.g.Length(idx), idx: idx})
		}
	}

	if skipForward {
		r, done, err := e.phaseA(h, elapsed, epsilon, dt, c, workers)
		elapsed = r
		if err != nil {
			return elapsed, err
		}
		if done {
			e.lifecycle.CompareAndSwap(int32(Active), int32(Invalid))
			return elapsed, nil
		}
	}

	r, err := e.phaseB(elapsed, epsilon, dt, c, workers)
	elapsed = r
	if err != nil {
		return elapsed, err
	}

	e.lifecycle.CompareAndSwap(int32(Active), int32(Invalid))
	return elapsed, nil
}

func (e *Emulator) trackMax(n int) {
	if n > e.maxAgents {
		e.maxAgents = n
	}
}

// necessaryConditionMet reports whether every edge currently holds at
// least the agent count a fully saturated edge would require -- a
// necessary but not sufficient condition, used only to decide when
// phase A can hand off to phase B's authoritative check.
func (e *Emulator) necessaryConditionMet(epsilon float64) bool {
	for _, idx := range e.edges {
		length := e.g.Length(idx)
		need := int(math.Floor(length/(2*epsilon))) + 1
		if len(e.state[idx].Agents) < need {
			return false
		}
	}
	return true
}

func (e *Emulator) allSaturated() bool {
	for _, idx := range e.edges {
		if !e.state[idx].Saturated {
			return false
		}
	}
	return true
}

// phaseA runs the variable-step skip-forward search: pop the nearest
// predicted collision time off the heap, advance every edge by that
// delta, integrate any resulting spawns, and discard now-stale heap
// entries within dt of the new runtime. It stops and hands off to phase
// B either when the necessary agent-count condition holds on every edge,
// or when the heap runs dry.
func (e *Emulator) phaseA(h *timeHeap, rt, epsilon, dt float64, c Concurrency, workers int) (float64, bool, error) {
	for {
		if Lifecycle(e.lifecycle.Load()) == Invalid {
			return rt, true, nil
		}
		if e.necessaryConditionMet(epsilon) {
			return rt, false, nil
		}
		if h.Len() == 0 {
			return rt, false, nil
		}

		top := (*h)[0]
		dtStep := top.t - rt
		if dtStep <= 0 {
			heap.Pop(h)
			continue
		}

		spawns, err := e.advanceAll(dtStep, epsilon, c, workers)
		if err != nil {
			return rt, false, err
		}
		rt = top.t

		e.integrate(h, spawns, rt, dt, epsilon)

		for h.Len() > 0 && (*h)[0].t-rt < dt {
			heap.Pop(h)
		}
	}
}

// phaseB runs the fixed-step confirmation loop: advance every edge by dt
// until every edge reports Saturated.
func (e *Emulator) phaseB(rt, epsilon, dt float64, c Concurrency, workers int) (float64, error) {
	for {
		if Lifecycle(e.lifecycle.Load()) == Invalid {
			return rt, nil
		}
		if e.allSaturated() {
			return rt, nil
		}

		spawns, err := e.advanceAll(dt, epsilon, c, workers)
		if err != nil {
			return rt, err
		}
		rt += dt

		for _, sp := range spawns {
			st := e.state[sp.Target]
			if st.Insert(sp.Position, sp.Forward, dt) {
				e.trackMax(len(st.Agents))
			}
		}
	}
}

// integrate folds phase A's spawns into their target edges' state and
// pushes a heap entry for every edge that just received a new walker.
// An edge whose walker collided but which received no new walker gets
// no new heap entry.
func (e *Emulator) integrate(h *timeHeap, spawns []Spawn, elapsed, dt, epsilon float64) {
	touched := make(map[graph.EdgeIndex]struct{})
	for _, sp := range spawns {
		st := e.state[sp.Target]
		if st.Insert(sp.Position, sp.Forward, dt) {
			e.trackMax(len(st.Agents))
			touched[sp.Target] = struct{}{}
		}
	}
	for idx := range touched {
		heap.Push(h, heapItem{t: elapsed + e.g.Length(idx), idx: idx})
	}
}

// advanceAll runs the edge update rule over every edge for dtStep,
// sequentially or via a bounded worker pool, and returns the combined
// spawn list.
func (e *Emulator) advanceAll(dtStep, epsilon float64, c Concurrency, workers int) ([]Spawn, error) {
	usePool, err := shouldPool(c, workers, e.maxAgents)
	if err != nil {
		return nil, err
	}

	results := make([][]Spawn, len(e.edges))

	if !usePool {
		for i, idx := range e.edges {
			res := updateEdgeState(e.g, idx, e.state[idx], epsilon, dtStep)
			results[i] = res.Spawns
		}
		return flatten(results), nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, idx := range e.edges {
		i, idx := i, idx
		g.Go(func() error {
			res := updateEdgeState(e.g, idx, e.state[idx], epsilon, dtStep)
			results[i] = res.Spawns
			return nil
		})
	}
	_ = g.Wait()

	return flatten(results), nil
}

func flatten(results [][]Spawn) []Spawn {
	var out []Spawn
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// resolveWorkers validates a Pooled request up front so RunSaturation
// fails fast rather than partway through a run; maxAgents is unknown at
// this point so Auto's threshold check is deferred to shouldPool.
func resolveWorkers(c Concurrency) (int, error) {
	if c != Pooled {
		return runtime.NumCPU() - reservedThreads, nil
	}
	workers := runtime.NumCPU() - reservedThreads
	if workers < 1 {
		return 0, ErrPoolUnavailable
	}
	return workers, nil
}

// shouldPool decides, per advance step, whether this step should use the
// worker pool.
func shouldPool(c Concurrency, workers, maxAgents int) (bool, error) {
	switch c {
	case Sequential:
		return false, nil
	case Pooled:
		if workers < 1 {
			return false, ErrPoolUnavailable
		}
		return true, nil
	default: // Auto
		return workers >= 1 && runtime.NumCPU() >= 4 && maxAgents >= autoThreshold, nil
	}
}
