package pyorca

import (
	"context"
	"errors"
	"os"

	"github.com/2x3systems/orca/liborca"
	"github.com/2x3systems/orca/orca"
	"github.com/go-python/gpython/py"
)

var (
	LIB_VERSION = "v1.2024.1"
)

func sequenceItems(obj py.Object) ([]py.Object, error) {
	switch seq := obj.(type) {
	case py.Tuple:
		return seq, nil
	case *py.List:
		return seq.Items, nil
	}
	return nil, py.ExceptionNewf(py.TypeError, "expected tuple or list (got %v)", obj.Type().Name)
}

func intArg(obj py.Object) (int, error) {
	val, err := py.GetInt(obj)
	if err != nil {
		return 0, err
	}
	return int(val), nil
}

func exportEdges(obj py.Object) ([]orca.Edge, error) {
	items, err := sequenceItems(obj)
	if err != nil {
		return nil, err
	}
	edges := make([]orca.Edge, len(items))
	for i, item := range items {
		ends, err := sequenceItems(item)
		if err != nil {
			return nil, err
		}
		if len(ends) != 2 {
			return nil, py.ExceptionNewf(py.ValueError, "edge #%d: expected 2 node ids (got %d)", i, len(ends))
		}
		if edges[i].A, err = intArg(ends[0]); err != nil {
			return nil, err
		}
		if edges[i].B, err = intArg(ends[1]); err != nil {
			return nil, err
		}
	}
	return edges, nil
}

func wrapMatrix(M *orca.SignatureMatrix) py.Tuple {
	rows := make(py.Tuple, M.NumNodes())
	for x := range rows {
		row := M.Row(x)
		counts := make(py.Tuple, len(row))
		for o, c := range row {
			counts[o] = py.Int(c)
		}
		rows[x] = counts
	}
	return rows
}

func wrapGraph(X *liborca.Graph) py.Tuple {
	edges := make(py.Tuple, X.NumEdges())
	for i, e := range X.Edges() {
		edges[i] = py.Tuple{py.Int(e.A), py.Int(e.B)}
	}
	return py.Tuple{py.Int(X.NumNodes()), edges}
}

// Arg 1 (str): graph file pathname
// Returns (n, ((a, b), ...))
func py_ReadGraph(module py.Object, args py.Tuple) (py.Object, error) {
	var pathname py.Object
	err := py.ParseTuple(args, "O", &pathname)
	if err != nil {
		return nil, err
	}
	str, ok := pathname.(py.String)
	if !ok {
		return nil, py.ExceptionNewf(py.TypeError, "expected str pathname (got %v)", pathname.Type().Name)
	}

	X, err := liborca.ReadGraphFile(string(str))
	if errors.Is(err, os.ErrNotExist) {
		return nil, py.ExceptionNewf(py.FileNotFoundError, "%v", err)
	}
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return wrapGraph(X), nil
}

// Arg 1 (int): graphlet size (4 or 5)
// Arg 2 (int): number of nodes
// Arg 3 (sequence): edges as (a, b) pairs
// Arg 4 (int, optional): worker count
// Returns one tuple of orbit counts per node
func py_CountOrbits(module py.Object, args py.Tuple) (py.Object, error) {
	if len(args) < 3 || len(args) > 4 {
		return nil, py.ExceptionNewf(py.TypeError, "CountOrbits() takes 3 or 4 arguments (%d given)", len(args))
	}
	sizeObj, numNodesObj, edgesObj := args[0], args[1], args[2]
	var workersObj py.Object = py.Int(1)
	if len(args) == 4 {
		workersObj = args[3]
	}

	size, err := intArg(sizeObj)
	if err != nil {
		return nil, err
	}
	numNodes, err := intArg(numNodesObj)
	if err != nil {
		return nil, err
	}
	workers, err := intArg(workersObj)
	if err != nil {
		return nil, err
	}
	edges, err := exportEdges(edgesObj)
	if err != nil {
		return nil, err
	}

	X, err := liborca.BuildGraph(numNodes, edges)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}

	opts := orca.CountOpts{
		Size:    orca.GraphletSize(size),
		Workers: workers,
	}
	M, err := liborca.NewEngine(X).Count(context.Background(), opts)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return wrapMatrix(M), nil
}

// Arg 1 (int): graphlet size (4 or 5)
func py_NumOrbits(module py.Object, args py.Tuple) (py.Object, error) {
	var sizeObj py.Object
	err := py.ParseTuple(args, "O", &sizeObj)
	if err != nil {
		return nil, err
	}
	size, err := intArg(sizeObj)
	if err != nil {
		return nil, err
	}
	gs := orca.GraphletSize(size)
	if err = gs.Validate(); err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Int(gs.NumOrbits()), nil
}

// Arg 1 (sequence): signature rows, as returned by CountOrbits
// Returns ((signature, (node, ...)), ...) in ascending signature order
func py_ClassifyRoles(module py.Object, args py.Tuple) (py.Object, error) {
	var rowsObj py.Object
	err := py.ParseTuple(args, "O", &rowsObj)
	if err != nil {
		return nil, err
	}
	rows, err := sequenceItems(rowsObj)
	if err != nil {
		return nil, err
	}

	var counts []int64
	width := -1
	for i, rowObj := range rows {
		row, err := sequenceItems(rowObj)
		if err != nil {
			return nil, err
		}
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, py.ExceptionNewf(py.ValueError, "row %d has %d columns, expected %d", i, len(row), width)
		}
		for _, c := range row {
			val, err := intArg(c)
			if err != nil {
				return nil, err
			}
			counts = append(counts, int64(val))
		}
	}

	size := orca.Graphlets4
	if width == orca.Graphlets5.NumOrbits() {
		size = orca.Graphlets5
	}
	M, err := orca.NewSignatureMatrixFromCounts(len(rows), size, counts)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}

	classes := liborca.ClassifyRoles(M)
	out := make(py.Tuple, len(classes))
	for i, rc := range classes {
		sig := make(py.Tuple, len(rc.Signature))
		for o, c := range rc.Signature {
			sig[o] = py.Int(c)
		}
		nodes := make(py.Tuple, len(rc.Nodes))
		for j, x := range rc.Nodes {
			nodes[j] = py.Int(x)
		}
		out[i] = py.Tuple{sig, nodes}
	}
	return out, nil
}

func init() {
	methods := []*py.Method{
		py.MustNewMethod("ReadGraph", py_ReadGraph, 0, "reads a graph file; returns (n, edges)"),
		py.MustNewMethod("CountOrbits", py_CountOrbits, 0, "CountOrbits(size, n, edges[, workers]) returns the orbit signature of every node"),
		py.MustNewMethod("NumOrbits", py_NumOrbits, 0, "returns the signature width for a graphlet size"),
		py.MustNewMethod("ClassifyRoles", py_ClassifyRoles, 0, "groups nodes with identical signatures"),
	}

	globals := py.StringDict{
		"LIB_VERSION": py.String(LIB_VERSION),
		"GRAPHLETS_4": py.Int(orca.Graphlets4),
		"GRAPHLETS_5": py.Int(orca.Graphlets5),
	}

	py.RegisterModule(&py.ModuleImpl{
		Info: py.ModuleInfo{
			Name: "_pyorca",
			Doc:  "graphlet orbit counting gpython module",
		},
		Methods: methods,
		Globals: globals,
	})
}
