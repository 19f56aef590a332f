package liborca

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/2x3systems/orca/orca"
	"github.com/stretchr/testify/require"
)

func TestBuildGraph(t *testing.T) {
	edges := randomEdges(7, 30, 0.2)
	X := mustBuild(t, 30, edges)

	require.Equal(t, 30, X.NumNodes())
	require.Equal(t, len(edges), X.NumEdges())

	degSum := 0
	maxDeg := 0
	for x := 0; x < X.NumNodes(); x++ {
		adj := X.Adj(x)
		inc := X.Inc(x)
		require.Equal(t, X.Degree(x), len(adj))
		require.Equal(t, len(adj), len(inc))
		require.True(t, sort.IntsAreSorted(adj), "adj[%d] not sorted", x)

		for i, y := range adj {
			require.Equal(t, y, inc[i].Node)
			e := X.Edge(inc[i].Edge).Canonic()
			require.Equal(t, orca.Edge{A: x, B: y}.Canonic(), e)
			require.True(t, X.Adjacent(y, x))
		}
		degSum += len(adj)
		if len(adj) > maxDeg {
			maxDeg = len(adj)
		}
	}
	require.Equal(t, 2*X.NumEdges(), degSum)
	require.Equal(t, maxDeg, X.MaxDegree())

	for _, e := range edges {
		require.True(t, X.Adjacent(e.A, e.B))
	}
	require.False(t, X.Adjacent(0, 0))
}

func TestReadGraph(t *testing.T) {
	X, err := ReadGraph(strings.NewReader("4 3\n0 1\n1 2\n2 3\n"))
	require.NoError(t, err)
	require.Equal(t, 4, X.NumNodes())
	require.Equal(t, 3, X.NumEdges())
	require.Equal(t, 2, X.MaxDegree())
	require.Equal(t, []int{0, 2}, X.Adj(1))

	X, err = ReadGraph(strings.NewReader("5 0\n"))
	require.NoError(t, err)
	require.Equal(t, 5, X.NumNodes())
	require.Equal(t, 0, X.MaxDegree())
}

func TestGraphValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		rule    error
		edgeIdx int
	}{
		{"self loop", "3 1\n0 0\n", orca.ErrSelfLoop, 0},
		{"duplicate undirected edge", "3 2\n0 1\n1 0\n", orca.ErrDuplicateEdge, 1},
		{"duplicate directed edge", "3 3\n0 1\n1 2\n1 2\n", orca.ErrDuplicateEdge, 2},
		{"node too large", "3 1\n0 3\n", orca.ErrNodeOutOfRange, 0},
		{"negative node", "3 2\n0 1\n-1 2\n", orca.ErrNodeOutOfRange, 1},
		{"too few edges", "3 2\n0 1\n", orca.ErrEdgeCount, -1},
		{"too many edges", "3 1\n0 1\n1 2\n", orca.ErrEdgeCount, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			X, err := ReadGraph(strings.NewReader(tt.input))
			require.Nil(t, X)
			require.ErrorIs(t, err, tt.rule)

			var gve *orca.GraphValidationError
			require.True(t, errors.As(err, &gve))
			require.Equal(t, tt.edgeIdx, gve.EdgeIdx)
		})
	}
}

func TestReadGraphEncoding(t *testing.T) {
	for _, input := range []string{"", "3", "3 1\n0\n", "3 x\n", "3 1\n0 1.5\n"} {
		_, err := ReadGraph(strings.NewReader(input))
		if !errors.Is(err, orca.ErrBadGraphEncoding) {
			t.Fatalf("input %q: expected ErrBadGraphEncoding, got %v", input, err)
		}
	}

	_, err := BuildGraph(-1, nil)
	require.ErrorIs(t, err, orca.ErrArgument)
	require.ErrorIs(t, err, orca.ErrNegativeNodes)
	require.False(t, errors.Is(err, orca.ErrNodeOutOfRange))
	require.Contains(t, err.Error(), "non-negative")
}

func TestBuildGraphCopiesEdges(t *testing.T) {
	edges := pathEdges(3)
	X := mustBuild(t, 3, edges)
	edges[0] = orca.Edge{A: 2, B: 0}
	require.Equal(t, orca.Edge{A: 0, B: 1}, X.Edge(0))
}
