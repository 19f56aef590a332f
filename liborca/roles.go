package liborca

import (
	"github.com/2x3systems/orca/orca"
	"github.com/emirpasic/gods/trees/redblacktree"
)

// RoleClass is a set of nodes sharing an identical signature vector, i.e. structurally equivalent roles
// as far as graphlets of the counted size can tell.
type RoleClass struct {
	Signature []int64
	Nodes     []int // ascending
}

// SignatureComparator orders signature vectors lexicographically (a shorter prefix sorts first).
func SignatureComparator(a, b interface{}) int {
	A := a.([]int64)
	B := b.([]int64)
	for i, ai := range A {
		if i == len(B) {
			return 1
		}
		switch {
		case ai < B[i]:
			return -1
		case ai > B[i]:
			return 1
		}
	}
	if len(A) < len(B) {
		return -1
	}
	return 0
}

// ClassifyRoles groups the nodes of M by signature vector.
// Classes are returned in ascending signature order.
func ClassifyRoles(M *orca.SignatureMatrix) []RoleClass {
	classes := redblacktree.NewWith(SignatureComparator)

	for x := 0; x < M.NumNodes(); x++ {
		row := M.Row(x)
		if val, found := classes.Get(row); found {
			rc := val.(*RoleClass)
			rc.Nodes = append(rc.Nodes, x)
		} else {
			classes.Put(row, &RoleClass{
				Signature: append([]int64(nil), row...),
				Nodes:     []int{x},
			})
		}
	}

	out := make([]RoleClass, 0, classes.Size())
	for it := classes.Iterator(); it.Next(); {
		out = append(out, *it.Value().(*RoleClass))
	}
	return out
}
