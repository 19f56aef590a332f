package liborca

// Pair is an unordered node pair in canonical form: A < B.
type Pair struct {
	A, B int
}

// Triple is an unordered node triple in canonical form: A < B < C.
type Triple struct {
	A, B, C int
}

func MakePair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{a, b}
}

func MakeTriple(a, b, c int) Triple {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return Triple{a, b, c}
}

// CommonNeighbors holds, for node pairs and qualifying node triples, how many nodes are adjacent to all of them.
// It is read-only once built and may be shared across goroutines.
type CommonNeighbors struct {
	pairs   map[Pair]int64
	triples map[Triple]int64
}

// BuildCommonNeighbors scans every pair and triple of neighbors of every node x.
//
// Each pair (a,b) of x's neighbors gains x as a common neighbor.  A triple (a,b,c) is only recorded when
// it carries at least two edges among itself: if a-b is an edge then a-c or b-c must also be one, otherwise
// both a-c and b-c must be.  Lookups are only ever made for such triples.
func BuildCommonNeighbors(X *Graph) *CommonNeighbors {
	cn := &CommonNeighbors{
		pairs:   make(map[Pair]int64),
		triples: make(map[Triple]int64),
	}

	for x := 0; x < X.NumNodes(); x++ {
		adj := X.Adj(x)
		for n1, a := range adj {
			for n2 := n1 + 1; n2 < len(adj); n2++ {
				b := adj[n2]
				cn.pairs[Pair{a, b}]++ // adj is ascending so a < b < c

				ab := X.Adjacent(a, b)
				for n3 := n2 + 1; n3 < len(adj); n3++ {
					c := adj[n3]
					var admissible bool
					if ab {
						admissible = X.Adjacent(a, c) || X.Adjacent(b, c)
					} else {
						admissible = X.Adjacent(a, c) && X.Adjacent(b, c)
					}
					if admissible {
						cn.triples[Triple{a, b, c}]++
					}
				}
			}
		}
	}
	return cn
}

// Common2 returns the number of nodes adjacent to both a and b.
func (cn *CommonNeighbors) Common2(a, b int) int64 {
	return cn.pairs[MakePair(a, b)]
}

// Common3 returns the number of nodes adjacent to a, b and c, for triples with at least two edges among them.
func (cn *CommonNeighbors) Common3(a, b, c int) int64 {
	return cn.triples[MakeTriple(a, b, c)]
}

func (cn *CommonNeighbors) NumPairs() int   { return len(cn.pairs) }
func (cn *CommonNeighbors) NumTriples() int { return len(cn.triples) }
