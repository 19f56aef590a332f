package orca

import (
	"context"
)

// GraphletSize is the largest graphlet (in nodes) whose orbits are counted.
type GraphletSize int

const (
	Graphlets4 GraphletSize = 4
	Graphlets5 GraphletSize = 5
)

// NumOrbits returns the signature width for a graphlet size: 15 orbits for graphlets on <= 4 nodes and 73 for <= 5 nodes.
func (gs GraphletSize) NumOrbits() int {
	switch gs {
	case Graphlets4:
		return 15
	case Graphlets5:
		return 73
	}
	return 0
}

// Validate returns an ArgumentError unless gs is 4 or 5.
func (gs GraphletSize) Validate() error {
	if gs.NumOrbits() == 0 {
		return &ArgumentError{
			Arg:    "graphlet size",
			Reason: ErrBadGraphletSize,
		}
	}
	return nil
}

// Edge is an undirected edge between two zero-based node ids.
type Edge struct {
	A, B int
}

// Canonic returns the edge with its smaller endpoint first.
func (e Edge) Canonic() Edge {
	if e.A > e.B {
		return Edge{e.B, e.A}
	}
	return e
}

// CountOpts specifies params for an orbit counting run.
type CountOpts struct {
	Size    GraphletSize // 4 or 5
	Workers int          // <= 1 counts serially; otherwise the per-node loop is sharded over Workers goroutines
}

// Graph is a validated, immutable simple undirected graph.
type Graph interface {
	NumNodes() int
	NumEdges() int
	Edges() []Edge
	MaxDegree() int
}

// Counter computes the orbit signature of every node of a Graph.
type Counter interface {

	// Count fills and returns a fresh SignatureMatrix for opts.Size.
	// No partial matrix is ever returned; on error the matrix is nil.
	Count(ctx context.Context, opts CountOpts) (*SignatureMatrix, error)
}

// CatalogOpts specifies params for opening a signature Catalog
type CatalogOpts struct {
	DbPathName string // omit for an in-memory db
	ReadOnly   bool   // open in read-only mode
	CacheSize  int    // number of decoded matrices kept in memory (0 denotes a default)
}

// Catalog wraps a database of previously computed signature matrices, keyed by graph digest and graphlet size.
type Catalog interface {

	// Get returns a copy of the stored matrix for the given graph and size, if present.
	Get(G Graph, size GraphletSize) (*SignatureMatrix, bool, error)

	// Put stores M as the signature matrix of G.
	// If true is returned, no entry for G existed and a copy of M was added.
	Put(G Graph, M *SignatureMatrix) (bool, error)

	// NumEntries returns the number of stored matrices for a given graphlet size.
	NumEntries(size GraphletSize) int64

	// Returns true if this catalog was opened for read-only access.
	IsReadOnly() bool

	Close() error
}
