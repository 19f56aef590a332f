package liborca

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignatureComparator(t *testing.T) {
	require.Equal(t, 0, SignatureComparator([]int64{1, 2}, []int64{1, 2}))
	require.Equal(t, -1, SignatureComparator([]int64{1, 2}, []int64{1, 3}))
	require.Equal(t, 1, SignatureComparator([]int64{2}, []int64{1, 9}))
	require.Equal(t, -1, SignatureComparator([]int64{1}, []int64{1, 0}))
	require.Equal(t, 1, SignatureComparator([]int64{1, 0}, []int64{1}))
}

func TestClassifyRoles(t *testing.T) {
	// 0-1-2-3-4
	M, err := Count5(mustBuild(t, 5, pathEdges(5)))
	require.NoError(t, err)

	classes := ClassifyRoles(M)
	require.Len(t, classes, 3)

	// Ends (degree 1) sort first; the second nodes count one 3-path end, the middle node two
	require.Equal(t, []int{0, 4}, classes[0].Nodes)
	require.Equal(t, []int{1, 3}, classes[1].Nodes)
	require.Equal(t, []int{2}, classes[2].Nodes)
	require.Equal(t, M.Row(2), classes[2].Signature)

	// Signatures are copies
	classes[0].Signature[0] = 99
	require.Equal(t, int64(1), M.At(0, 0))

	M, err = Count4(mustBuild(t, 6, completeEdges(6)))
	require.NoError(t, err)
	classes = ClassifyRoles(M)
	require.Len(t, classes, 1)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, classes[0].Nodes)
}
