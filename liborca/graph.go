package liborca

import (
	"sort"

	"github.com/2x3systems/orca/orca"
)

// Incidence is one entry of a node's incidence list: a neighbor and the index of the connecting edge.
type Incidence struct {
	Node int
	Edge int
}

// Graph is the immutable, validated adjacency index of a simple undirected graph.
//
// For every node x, adj[x] and inc[x] have length deg[x], are sorted by neighbor id,
// and list the same neighbors in the same order.
type Graph struct {
	numNodes int
	maxDeg   int
	edges    []orca.Edge
	deg      []int
	adj      [][]int
	inc      [][]Incidence
}

// BuildGraph validates the given edge list and builds the sorted adjacency and incidence lists.
//
// Node ids must lie in [0, numNodes), self loops are rejected and so are duplicate undirected edges:
// (a,b) and (b,a) are the same edge.  Nothing is corrected silently.
func BuildGraph(numNodes int, edges []orca.Edge) (*Graph, error) {
	if numNodes < 0 {
		return nil, &orca.ArgumentError{
			Arg:    "n",
			Reason: orca.ErrNegativeNodes,
		}
	}

	X := &Graph{
		numNodes: numNodes,
		edges:    append([]orca.Edge(nil), edges...),
		deg:      make([]int, numNodes),
		adj:      make([][]int, numNodes),
		inc:      make([][]Incidence, numNodes),
	}

	for i, e := range X.edges {
		if e.A < 0 || e.A >= numNodes || e.B < 0 || e.B >= numNodes {
			return nil, &orca.GraphValidationError{Rule: orca.ErrNodeOutOfRange, EdgeIdx: i, A: e.A, B: e.B}
		}
		if e.A == e.B {
			return nil, &orca.GraphValidationError{Rule: orca.ErrSelfLoop, EdgeIdx: i, A: e.A, B: e.B}
		}
		X.deg[e.A]++
		X.deg[e.B]++
	}

	// One backing array for all incidence lists
	incBuf := make([]Incidence, 2*len(X.edges))
	adjBuf := make([]int, 2*len(X.edges))
	offset := 0
	for x, d := range X.deg {
		X.inc[x] = incBuf[offset : offset : offset+d]
		X.adj[x] = adjBuf[offset : offset+d : offset+d]
		offset += d
		if d > X.maxDeg {
			X.maxDeg = d
		}
	}
	for i, e := range X.edges {
		X.inc[e.A] = append(X.inc[e.A], Incidence{Node: e.B, Edge: i})
		X.inc[e.B] = append(X.inc[e.B], Incidence{Node: e.A, Edge: i})
	}

	for x, inc := range X.inc {
		sort.Slice(inc, func(i, j int) bool {
			if inc[i].Node != inc[j].Node {
				return inc[i].Node < inc[j].Node
			}
			return inc[i].Edge < inc[j].Edge
		})

		// A repeated neighbor can only come from a duplicate edge; report the later listing.
		adj := X.adj[x]
		for i, vi := range inc {
			if i > 0 && inc[i-1].Node == vi.Node {
				e := X.edges[vi.Edge]
				return nil, &orca.GraphValidationError{Rule: orca.ErrDuplicateEdge, EdgeIdx: vi.Edge, A: e.A, B: e.B}
			}
			adj[i] = vi.Node
		}
	}

	return X, nil
}

func (X *Graph) NumNodes() int        { return X.numNodes }
func (X *Graph) NumEdges() int        { return len(X.edges) }
func (X *Graph) MaxDegree() int       { return X.maxDeg }
func (X *Graph) Edges() []orca.Edge   { return X.edges }
func (X *Graph) Edge(e int) orca.Edge { return X.edges[e] }
func (X *Graph) Degree(x int) int     { return X.deg[x] }

// Adj returns the ascending neighbor ids of x.  Callers must not modify it.
func (X *Graph) Adj(x int) []int { return X.adj[x] }

// Inc returns the incidence list of x, sorted by neighbor id.  Callers must not modify it.
func (X *Graph) Inc(x int) []Incidence { return X.inc[x] }

// Adjacent reports whether x and y share an edge, in O(log deg(x)).
func (X *Graph) Adjacent(x, y int) bool {
	adj := X.adj[x]
	i := sort.SearchInts(adj, y)
	return i < len(adj) && adj[i] == y
}
