package liborca

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeTriple(t *testing.T) {
	want := Triple{1, 4, 9}
	perms := [][3]int{{1, 4, 9}, {1, 9, 4}, {4, 1, 9}, {4, 9, 1}, {9, 1, 4}, {9, 4, 1}}
	for _, p := range perms {
		require.Equal(t, want, MakeTriple(p[0], p[1], p[2]))
	}
	require.Equal(t, Pair{2, 5}, MakePair(5, 2))
}

func TestCommonNeighbors(t *testing.T) {
	const n = 25
	X := mustBuild(t, n, randomEdges(3, n, 0.3))
	cn := BuildCommonNeighbors(X)

	common := func(nodes ...int) int64 {
		count := int64(0)
	next:
		for z := 0; z < n; z++ {
			for _, v := range nodes {
				if !X.Adjacent(v, z) {
					continue next
				}
			}
			count++
		}
		return count
	}

	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			require.Equal(t, common(a, b), cn.Common2(a, b), "pair (%d, %d)", a, b)
			require.Equal(t, cn.Common2(a, b), cn.Common2(b, a))

			for c := b + 1; c < n; c++ {
				edges := 0
				for _, adj := range []bool{X.Adjacent(a, b), X.Adjacent(a, c), X.Adjacent(b, c)} {
					if adj {
						edges++
					}
				}
				if edges < 2 {
					continue
				}
				require.Equal(t, common(a, b, c), cn.Common3(c, a, b), "triple (%d, %d, %d)", a, b, c)
			}
		}
	}
}
