package orca

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGraphletSize(t *testing.T) {
	require.Equal(t, 15, Graphlets4.NumOrbits())
	require.Equal(t, 73, Graphlets5.NumOrbits())
	require.NoError(t, Graphlets4.Validate())
	require.NoError(t, Graphlets5.Validate())

	err := GraphletSize(3).Validate()
	require.ErrorIs(t, err, ErrArgument)
	require.ErrorIs(t, err, ErrBadGraphletSize)
	require.False(t, errors.Is(err, ErrNodeOutOfRange))

	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	require.Equal(t, "graphlet size", argErr.Arg)
}

func TestSignatureMatrixRows(t *testing.T) {
	M := NewSignatureMatrix(3, Graphlets4)
	require.Equal(t, 3, M.NumNodes())
	require.Len(t, M.Counts(), 45)

	M.Row(1)[14] = 7
	require.Equal(t, int64(7), M.At(1, 14))
	require.Equal(t, int64(7), M.Counts()[29])

	rows := M.Rows()
	rows[1][14] = 0
	require.Equal(t, int64(7), M.At(1, 14))

	clone := M.Clone()
	clone.Row(1)[14] = 8
	require.Equal(t, int64(7), M.At(1, 14))
	require.Equal(t, M.Size(), clone.Size())

	// Appending to a row must not spill into the next one
	row := append(M.Row(0), 5)
	require.Len(t, row, 16)
	require.Zero(t, M.At(1, 0))
}

func TestSignatureMatrixText(t *testing.T) {
	for _, size := range []GraphletSize{Graphlets4, Graphlets5} {
		M := NewSignatureMatrix(4, size)
		for i := range M.Counts() {
			M.Counts()[i] = int64(i*i) % 1000
		}

		var buf bytes.Buffer
		n, err := M.WriteTo(&buf)
		require.NoError(t, err)
		require.Equal(t, int64(buf.Len()), n)
		require.Equal(t, 4, strings.Count(buf.String(), "\n"))

		M2, err := ReadSignatureMatrix(&buf)
		require.NoError(t, err)
		require.Equal(t, size, M2.Size())
		if diff := cmp.Diff(M.Rows(), M2.Rows()); diff != "" {
			t.Fatalf("size %d text mismatch (-want +got):\n%s", size, diff)
		}
	}

	var buf bytes.Buffer
	M, _ := NewSignatureMatrixFromCounts(1, Graphlets4, []int64{2, 1, 1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	M.WriteTo(&buf)
	require.Equal(t, "2 1 1 0 0 1 0 0 0 0 0 0 0 0 0\n", buf.String())
}

func TestReadSignatureMatrixErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"1 2 3\n",
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 0\n0 0\n",
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 x\n",
	} {
		_, err := ReadSignatureMatrix(strings.NewReader(input))
		require.ErrorIs(t, err, ErrBadMatrix, "input %q", input)
	}

	_, err := NewSignatureMatrixFromCounts(2, Graphlets4, make([]int64, 29))
	require.ErrorIs(t, err, ErrBadMatrix)
	_, err = NewSignatureMatrixFromCounts(2, 7, make([]int64, 30))
	require.ErrorIs(t, err, ErrBadGraphletSize)
}

func TestErrors(t *testing.T) {
	err := &GraphValidationError{Rule: ErrSelfLoop, EdgeIdx: 3, A: 2, B: 2}
	require.ErrorIs(t, err, ErrSelfLoop)
	require.Equal(t, "edge #3 (2, 2): "+ErrSelfLoop.Error(), err.Error())

	err = &GraphValidationError{Rule: ErrEdgeCount, EdgeIdx: -1}
	require.Equal(t, ErrEdgeCount.Error(), err.Error())

	var inv error = &InternalInvariantError{Node: 1, Orbit: 13, Num: 3, Divisor: 2}
	require.ErrorIs(t, inv, ErrInexactDivision)
}
