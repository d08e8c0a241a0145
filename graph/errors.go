// File: errors.go
// Role: Sentinel errors for the metric graph store, each wrapping one of
// the five rwerr.Kind values so callers can check either the concrete
// sentinel (errors.Is(err, graph.ErrBadLength)) or the coarse Kind
// (rwerr.Is(err, rwerr.InvalidArgument)).
package graph

import "github.com/jointpoints/metricwalk/rwerr"

var (
	// ErrBadLength indicates UpdateEdge was called with length <= 0.
	ErrBadLength = rwerr.New(rwerr.InvalidArgument, "graph: edge length must be positive")

	// ErrLengthMismatch indicates an attempt to merge an existing directed
	// edge v->u with a new directed edge u->v of a different length; the
	// store refuses to silently average or pick one (spec open question #1).
	ErrLengthMismatch = rwerr.New(rwerr.InvalidArgument, "graph: opposing directed edges must share the same length to merge into an undirected edge")

	// ErrFileNotFound indicates a load path could not be opened.
	ErrFileNotFound = rwerr.New(rwerr.FileDoesNotExist, "graph: file does not exist")

	// ErrMalformedFile indicates a GEXF/binary parse failure: bad XML,
	// missing mandatory attribute, non-positive weight, unknown edge type,
	// or a duplicate unordered endpoint pair.
	ErrMalformedFile = rwerr.New(rwerr.WrongFileFormat, "graph: malformed input file")
)
