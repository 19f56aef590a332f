package liborca

import (
	"math/rand"
	"testing"

	"github.com/2x3systems/orca/orca"
)

func mustBuild(t testing.TB, numNodes int, edges []orca.Edge) *Graph {
	t.Helper()
	X, err := BuildGraph(numNodes, edges)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	return X
}

func pathEdges(n int) []orca.Edge {
	var edges []orca.Edge
	for i := 1; i < n; i++ {
		edges = append(edges, orca.Edge{A: i - 1, B: i})
	}
	return edges
}

func cycleEdges(n int) []orca.Edge {
	return append(pathEdges(n), orca.Edge{A: n - 1, B: 0})
}

func completeEdges(n int) []orca.Edge {
	var edges []orca.Edge
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			edges = append(edges, orca.Edge{A: a, B: b})
		}
	}
	return edges
}

// starEdges joins center 0 to leaves 1..n-1.
func starEdges(n int) []orca.Edge {
	var edges []orca.Edge
	for i := 1; i < n; i++ {
		edges = append(edges, orca.Edge{A: 0, B: i})
	}
	return edges
}

// randomEdges draws a G(n, p) graph, listing some edges reversed.
func randomEdges(seed int64, n int, p float64) []orca.Edge {
	rng := rand.New(rand.NewSource(seed))
	var edges []orca.Edge
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if rng.Float64() < p {
				if rng.Intn(2) == 0 {
					edges = append(edges, orca.Edge{A: a, B: b})
				} else {
					edges = append(edges, orca.Edge{A: b, B: a})
				}
			}
		}
	}
	rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
	return edges
}

// forEachSubset calls fn with every k-subset of X's nodes containing x, x first.
func forEachSubset(X *Graph, x, k int, fn func(nodes []int)) {
	nodes := make([]int, 1, k)
	nodes[0] = x
	var grow func(start int)
	grow = func(start int) {
		if len(nodes) == k {
			fn(nodes)
			return
		}
		for v := start; v < X.NumNodes(); v++ {
			if v == x {
				continue
			}
			nodes = append(nodes, v)
			grow(v + 1)
			nodes = nodes[:len(nodes)-1]
		}
	}
	grow(0)
}

// inducedDegrees returns the degree of each node within the subgraph induced by nodes, the edge count,
// and whether that subgraph is connected.
func inducedDegrees(X *Graph, nodes []int) (deg []int, numEdges int, connected bool) {
	deg = make([]int, len(nodes))
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if X.Adjacent(nodes[i], nodes[j]) {
				deg[i]++
				deg[j]++
				numEdges++
			}
		}
	}

	seen := make([]bool, len(nodes))
	seen[0] = true
	stack := []int{0}
	reached := 1
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for j := range nodes {
			if !seen[j] && X.Adjacent(nodes[i], nodes[j]) {
				seen[j] = true
				reached++
				stack = append(stack, j)
			}
		}
	}
	return deg, numEdges, reached == len(nodes)
}

// bruteOrbit returns the orbit that nodes[0] occupies in the graphlet induced by nodes, or -1 if the subgraph is
// disconnected or is a 5-node graphlet this classifier does not recognize.
func bruteOrbit(X *Graph, nodes []int) int {
	deg, m, connected := inducedDegrees(X, nodes)
	if !connected {
		return -1
	}
	maxDeg := 0
	for _, d := range deg {
		if d > maxDeg {
			maxDeg = d
		}
	}
	d0 := deg[0]

	switch len(nodes) {
	case 2:
		return 0
	case 3:
		if m == 3 {
			return 3
		}
		if d0 == 1 {
			return 1
		}
		return 2
	case 4:
		switch m {
		case 3:
			if maxDeg == 3 {
				if d0 == 3 {
					return 7
				}
				return 6
			}
			if d0 == 1 {
				return 4
			}
			return 5
		case 4:
			if maxDeg == 2 {
				return 8
			}
			return 8 + d0
		case 5:
			if d0 == 2 {
				return 12
			}
			return 13
		case 6:
			return 14
		}
	case 5:
		switch {
		case m == 10:
			return 72
		case m == 5 && maxDeg == 2:
			return 34
		case m == 4 && maxDeg == 4:
			if d0 == 4 {
				return 23
			}
			return 22
		case m == 4 && maxDeg == 2:
			if d0 == 1 {
				return 15
			}
			for j := 1; j < len(nodes); j++ {
				if deg[j] == 1 && X.Adjacent(nodes[0], nodes[j]) {
					return 16
				}
			}
			return 17
		}
	}
	return -1
}

// bruteSignature counts, for every node, the graphlets of up to maxNodes nodes it occupies, by orbit.
func bruteSignature(X *Graph, maxNodes int, numOrbits int) [][]int64 {
	sig := make([][]int64, X.NumNodes())
	for x := range sig {
		sig[x] = make([]int64, numOrbits)
		for k := 2; k <= maxNodes; k++ {
			forEachSubset(X, x, k, func(nodes []int) {
				if o := bruteOrbit(X, nodes); o >= 0 {
					sig[x][o]++
				}
			})
		}
	}
	return sig
}
