package orca

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrArgument         = errors.New("bad argument")
	ErrBadGraphletSize  = errors.New("graphlet size should be 4 or 5")
	ErrNegativeNodes    = errors.New("node count must be non-negative")
	ErrNodeOutOfRange   = errors.New("node ids should be between 0 and n-1")
	ErrSelfLoop         = errors.New("self loops (edge from x to x) are not allowed")
	ErrDuplicateEdge    = errors.New("input contains duplicate undirected edges")
	ErrEdgeCount        = errors.New("edge count does not match the declared edge count")
	ErrBadGraphEncoding = errors.New("bad graph encoding")
	ErrNilGraph         = errors.New("nil graph")
	ErrInexactDivision  = errors.New("orbit equation produced a non-integer count")
	ErrBadMatrix        = errors.New("bad signature matrix")
	ErrBadCatalogParam  = errors.New("bad catalog param")
	ErrCatalogClosed    = errors.New("catalog is closed")
	ErrCatalogReadOnly  = errors.New("catalog is read-only")
)

// ArgumentError reports a bad invocation parameter (wrong count, type or value).
type ArgumentError struct {
	Arg    string
	Reason error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %q: %v", e.Arg, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return e.Reason }

// Is lets errors.Is(err, ErrArgument) match any ArgumentError.
func (e *ArgumentError) Is(target error) bool { return target == ErrArgument }

// GraphValidationError names the violated input rule and the offending edge.
// EdgeIdx is -1 when the violation is not tied to one edge.
type GraphValidationError struct {
	Rule    error
	EdgeIdx int
	A, B    int
}

func (e *GraphValidationError) Error() string {
	if e.EdgeIdx < 0 {
		return e.Rule.Error()
	}
	return fmt.Sprintf("edge #%d (%d, %d): %v", e.EdgeIdx, e.A, e.B, e.Rule)
}

func (e *GraphValidationError) Unwrap() error { return e.Rule }

// InternalInvariantError signals that an orbit equation did not divide exactly.
// This is a defect in precomputation, never a property of the input graph.
type InternalInvariantError struct {
	Node    int
	Orbit   int
	Num     int64
	Divisor int64
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("node %d orbit %d: %d is not divisible by %d", e.Node, e.Orbit, e.Num, e.Divisor)
}

func (e *InternalInvariantError) Unwrap() error { return ErrInexactDivision }
