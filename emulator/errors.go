// File: errors.go
// Role: Sentinel errors for the saturation driver's lifecycle contract.
package emulator

import "github.com/jointpoints/metricwalk/rwerr"

var (
	// ErrDead indicates an operation was attempted on a dead emulator;
	// dead is terminal, there is no recovery.
	ErrDead = rwerr.New(rwerr.LogicFailure, "emulator: already dead")

	// ErrWrongState indicates an operation was attempted from a lifecycle
	// state that does not permit it (e.g. RunSaturation while active).
	ErrWrongState = rwerr.New(rwerr.LogicFailure, "emulator: operation not valid in current lifecycle state")

	// ErrUnknownVertex indicates RunSaturation was asked to start from a
	// vertex absent from the attached graph.
	ErrUnknownVertex = rwerr.New(rwerr.InvalidArgument, "emulator: start vertex not present in graph")

	// ErrPoolUnavailable indicates Pooled concurrency was requested but
	// the host does not have enough usable hardware threads (reserving
	// three for orchestration and I/O).
	ErrPoolUnavailable = rwerr.New(rwerr.RuntimeUnsupported, "emulator: worker pool requested but host lacks usable hardware threads")
)
