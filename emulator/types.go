// File: types.go
// Role: Lifecycle, concurrency policy, and the edge-update-rule result
// types shared between update.go and driver.go.
package emulator

import "github.com/jointpoints/metricwalk/graph"

// Lifecycle is the cross-worker state of an Emulator, stored in an
// atomic.Int32 so graph mutation (possibly from another goroutine) can
// invalidate a running emulator without a lock.
type Lifecycle int32

const (
	// Ready: constructed or reset, no saturation run in progress.
	Ready Lifecycle = iota
	// Active: a RunSaturation call currently owns this emulator.
	Active
	// Invalid: the attached graph mutated, or a run finished; Reset
	// returns it to Ready.
	Invalid
	// Dead: the attached graph was closed. Terminal.
	Dead
)

func (l Lifecycle) String() string {
	switch l {
	case Ready:
		return "Ready"
	case Active:
		return "Active"
	case Invalid:
		return "Invalid"
	case Dead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Concurrency selects how RunSaturation fans edge updates out across
// goroutines.
type Concurrency int

const (
	// Auto picks Pooled when the host has at least 4 hardware threads and
	// the busiest edge holds at least autoThreshold agents, Sequential
	// otherwise. Never fails with ErrPoolUnavailable.
	Auto Concurrency = iota
	// Sequential always walks edges one at a time on the calling goroutine.
	Sequential
	// Pooled always fans out across a bounded worker pool sized
	// hardware-threads minus three. Fails with ErrPoolUnavailable if the
	// host cannot support that.
	Pooled
)

// autoThreshold is the busiest-edge agent count at or above which Auto engages
// the worker pool, per the driver's parallelism policy.
const autoThreshold = 20

// reservedThreads is subtracted from runtime.NumCPU() to leave headroom
// for orchestration and I/O when sizing the worker pool.
const reservedThreads = 3

// Spawn is a request to seed a new walker on a neighbouring edge,
// produced when an existing walker reaches a vertex.
type Spawn struct {
	Target   graph.EdgeIndex
	Position float64
	Forward  bool
}

// UpdateResult is what one call to updateEdgeState reports for a single
// edge's advance.
type UpdateResult struct {
	CollisionOccurred bool
	Spawns            []Spawn
}
