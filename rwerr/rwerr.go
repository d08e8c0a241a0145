// Package rwerr defines the five structured error kinds shared by the
// graph store and the saturation emulator, so external callers (the CLI,
// the scenario runner — both out of scope for this module) can switch on
// failure category without string-matching package-local sentinels.
//
// Each package-local sentinel (graph.ErrBadLength, emulator.ErrWrongState, ...)
// is built with New and matches errors.Is against itself and Is against
// its Kind, mirroring the way katalvlaran/lvlath's core package exposes plain
// sentinel errors checked via errors.Is.
package rwerr

import "errors"

// Kind classifies a failure at the public API boundary.
type Kind int

const (
	// FileDoesNotExist: an I/O path could not be opened for the requested mode.
	FileDoesNotExist Kind = iota
	// WrongFileFormat: parse failure, missing required attribute, non-positive
	// weight, unknown type token, or a duplicate-edge constraint violation.
	WrongFileFormat
	// InvalidArgument: non-positive length on UpdateEdge, unknown vertex on
	// RunSaturation, or a length mismatch when merging opposing directed edges.
	InvalidArgument
	// LogicFailure: an operation attempted in the wrong lifecycle state.
	LogicFailure
	// RuntimeUnsupported: concurrency requested but the host cannot satisfy
	// the worker-pool thread budget.
	RuntimeUnsupported
)

// String renders the Kind for logs and error messages.
func (k Kind) String() string {
	switch k {
	case FileDoesNotExist:
		return "FileDoesNotExist"
	case WrongFileFormat:
		return "WrongFileFormat"
	case InvalidArgument:
		return "InvalidArgument"
	case LogicFailure:
		return "LogicFailure"
	case RuntimeUnsupported:
		return "RuntimeUnsupported"
	default:
		return "UnknownKind"
	}
}

// Error pairs a Kind with an underlying sentinel message. Callers compare
// against the concrete sentinel with errors.Is(err, graph.ErrBadLength)
// exactly as they would with the teacher's plain sentinels, or against the
// coarser Kind with rwerr.Is(err, rwerr.InvalidArgument).
type Error struct {
	Kind Kind
	msg  string
}

// New constructs a sentinel Error of the given Kind. Package-local error
// vars should be declared with this at init time, e.g.:
//
//	var ErrBadLength = rwerr.New(rwerr.InvalidArgument, "graph: length must be > 0")
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

var _ error = (*Error)(nil)

// Is reports whether err (or something in its chain) is an *Error of the
// given Kind. Prefer errors.Is(err, someSentinel) when the exact sentinel
// is known; use Is for the coarser five-way classification at an API
// boundary that only cares about Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}

	return false
}

// KindOf extracts the Kind of err if it (or something in its chain) is an
// *Error; ok is false for plain errors (I/O errors not yet classified, etc.).
func KindOf(err error) (kind Kind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}
