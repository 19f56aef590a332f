package liborca

// CountTriangles returns tri[e], the number of common neighbors of the endpoints of edge e,
// using a linear merge over the two sorted adjacency lists.
func CountTriangles(X *Graph) []int64 {
	tri := make([]int64, X.NumEdges())
	for i, e := range X.Edges() {
		tri[i] = int64(mergeCount(X.Adj(e.A), X.Adj(e.B)))
	}
	return tri
}

// mergeCount returns |a ∩ b| for two ascending sequences.
func mergeCount(a, b []int) int {
	count := 0
	for ai, bi := 0, 0; ai < len(a) && bi < len(b); {
		switch {
		case a[ai] == b[bi]:
			count++
			ai++
			bi++
		case a[ai] < b[bi]:
			ai++
		default:
			bi++
		}
	}
	return count
}
