package orca

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SignatureMatrix is the n x k table of orbit counts (k = 15 or 73).
// Row x is the graphlet degree vector of node x; column o is orbit o.
type SignatureMatrix struct {
	size     GraphletSize
	numNodes int
	counts   []int64 // row major
}

func NewSignatureMatrix(numNodes int, size GraphletSize) *SignatureMatrix {
	return &SignatureMatrix{
		size:     size,
		numNodes: numNodes,
		counts:   make([]int64, numNodes*size.NumOrbits()),
	}
}

// NewSignatureMatrixFromCounts wraps a row major counts array of numNodes rows.
func NewSignatureMatrixFromCounts(numNodes int, size GraphletSize, counts []int64) (*SignatureMatrix, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	if numNodes < 0 || len(counts) != numNodes*size.NumOrbits() {
		return nil, errors.Wrapf(ErrBadMatrix, "%d counts for %d nodes of %d orbits", len(counts), numNodes, size.NumOrbits())
	}
	return &SignatureMatrix{
		size:     size,
		numNodes: numNodes,
		counts:   counts,
	}, nil
}

func (M *SignatureMatrix) Size() GraphletSize { return M.size }
func (M *SignatureMatrix) NumNodes() int      { return M.numNodes }
func (M *SignatureMatrix) NumOrbits() int     { return M.size.NumOrbits() }

// Row returns the orbit counts of node x.  The returned slice aliases M.
func (M *SignatureMatrix) Row(x int) []int64 {
	k := M.size.NumOrbits()
	return M.counts[x*k : (x+1)*k : (x+1)*k]
}

func (M *SignatureMatrix) At(x, orbit int) int64 {
	return M.counts[x*M.size.NumOrbits()+orbit]
}

// Rows returns a copy of M as a slice of rows.
func (M *SignatureMatrix) Rows() [][]int64 {
	rows := make([][]int64, M.numNodes)
	for x := range rows {
		rows[x] = append([]int64(nil), M.Row(x)...)
	}
	return rows
}

// Clone returns a deep copy of M.
func (M *SignatureMatrix) Clone() *SignatureMatrix {
	return &SignatureMatrix{
		size:     M.size,
		numNodes: M.numNodes,
		counts:   append([]int64(nil), M.counts...),
	}
}

// Counts exposes the row major backing array.
func (M *SignatureMatrix) Counts() []int64 {
	return M.counts
}

// WriteTo writes one line per node (ascending node id) of space separated orbit counts (ascending orbit index).
func (M *SignatureMatrix) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	total := int64(0)
	line := make([]byte, 0, 16*M.NumOrbits())
	for x := 0; x < M.numNodes; x++ {
		line = line[:0]
		for o, c := range M.Row(x) {
			if o > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendInt(line, c, 10)
		}
		line = append(line, '\n')
		n, err := bw.Write(line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

// ReadSignatureMatrix parses the format emitted by WriteTo.
// The graphlet size is inferred from the row width.
func ReadSignatureMatrix(r io.Reader) (*SignatureMatrix, error) {
	M := &SignatureMatrix{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for lineNum := 1; scanner.Scan(); lineNum++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if M.size == 0 {
			switch len(fields) {
			case Graphlets4.NumOrbits():
				M.size = Graphlets4
			case Graphlets5.NumOrbits():
				M.size = Graphlets5
			default:
				return nil, errors.Wrapf(ErrBadMatrix, "line %d: %d columns", lineNum, len(fields))
			}
		} else if len(fields) != M.size.NumOrbits() {
			return nil, errors.Wrapf(ErrBadMatrix, "line %d: expected %d columns, got %d", lineNum, M.size.NumOrbits(), len(fields))
		}
		for _, f := range fields {
			c, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrBadMatrix, "line %d: %v", lineNum, err)
			}
			M.counts = append(M.counts, c)
		}
		M.numNodes++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if M.size == 0 {
		return nil, errors.Wrap(ErrBadMatrix, "no rows")
	}
	return M, nil
}
