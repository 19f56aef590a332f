package liborca

import (
	"io"
	"os"

	"github.com/2x3systems/orca/orca"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// GraphFile is the text graph format: a header "n m" followed by m lines "a b" of zero-based node ids.
type GraphFile struct {
	NumNodes int         `parser:"@Int"`
	NumEdges int         `parser:"@Int"`
	Edges    []*EdgeLine `parser:"@@*"`
}

type EdgeLine struct {
	Pos lexer.Position

	A *NodeRef `parser:"@@"`
	B *NodeRef `parser:"@@"`
}

type NodeRef struct {
	Neg bool `parser:"@\"-\"?"`
	ID  int  `parser:"@Int"`
}

func (ref *NodeRef) Value() int {
	if ref.Neg {
		return -ref.ID
	}
	return ref.ID
}

var parseGraphFile = participle.MustBuild[GraphFile]()

// ReadGraph parses a graph in the text format and builds its validated index.
// A declared edge count that differs from the number of edge lines is rejected.
func ReadGraph(r io.Reader) (*Graph, error) {
	src, err := parseGraphFile.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(orca.ErrBadGraphEncoding, err.Error())
	}
	return src.Build()
}

// ReadGraphFile opens and parses the named graph file.
func ReadGraphFile(pathname string) (*Graph, error) {
	f, err := os.Open(pathname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	X, err := ReadGraph(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", pathname)
	}
	return X, nil
}

// Build validates the parsed file and builds its Graph.
func (src *GraphFile) Build() (*Graph, error) {
	if src.NumEdges != len(src.Edges) {
		return nil, &orca.GraphValidationError{
			Rule:    errors.Wrapf(orca.ErrEdgeCount, "declared %d, found %d", src.NumEdges, len(src.Edges)),
			EdgeIdx: -1,
		}
	}

	edges := make([]orca.Edge, len(src.Edges))
	for i, line := range src.Edges {
		edges[i] = orca.Edge{A: line.A.Value(), B: line.B.Value()}
	}
	return BuildGraph(src.NumNodes, edges)
}
