package liborca

import (
	"context"
	"sync"
	"time"

	"github.com/2x3systems/orca/orca"
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"
)

// nodeCounter fills one node's row of the signature matrix.
// Each instance owns private scratch state and must not be shared between goroutines.
type nodeCounter interface {
	countNode(x int, orbit []int64) error
}

// Engine counts graphlet orbits for one Graph.
//
// Per-edge triangle counts are computed once by NewEngine; the common neighbor cache is built on the first
// 5-node count.  Both are immutable afterwards, so one Engine may serve concurrent Count calls.
type Engine struct {
	X   *Graph
	tri []int64

	commonOnce sync.Once
	common     *CommonNeighbors
}

func NewEngine(X *Graph) *Engine {
	startTime := time.Now()
	e := &Engine{
		X:   X,
		tri: CountTriangles(X),
	}
	klog.V(2).Infof("nodes: %d, edges: %d, max degree: %d, triangles counted in %v", X.NumNodes(), X.NumEdges(), X.MaxDegree(), time.Since(startTime))
	return e
}

// Triangles returns tri[e] for every edge e.  Callers must not modify it.
func (e *Engine) Triangles() []int64 {
	return e.tri
}

// CommonNeighbors returns the common neighbor cache, building it on first use.
func (e *Engine) CommonNeighbors() *CommonNeighbors {
	e.commonOnce.Do(func() {
		startTime := time.Now()
		e.common = BuildCommonNeighbors(e.X)
		klog.V(2).Infof("common neighbors: %d pairs, %d triples in %v", e.common.NumPairs(), e.common.NumTriples(), time.Since(startTime))
	})
	return e.common
}

// Count computes the signature matrix of every node for graphlets up to opts.Size nodes.
//
// The per-node loop checks ctx at each node boundary.  On any error, including cancellation,
// no matrix is returned.
func (e *Engine) Count(ctx context.Context, opts orca.CountOpts) (*orca.SignatureMatrix, error) {
	if e == nil || e.X == nil {
		return nil, orca.ErrNilGraph
	}
	if err := opts.Size.Validate(); err != nil {
		return nil, err
	}

	X := e.X
	startTime := time.Now()

	var newCounter func() nodeCounter
	switch opts.Size {
	case orca.Graphlets4:
		C4 := countCliques4(X)
		newCounter = func() nodeCounter {
			return newCounter4(X, e.tri, C4)
		}
	case orca.Graphlets5:
		cn := e.CommonNeighbors()
		C5 := countCliques5(X)
		newCounter = func() nodeCounter {
			return newCounter5(X, e.tri, C5, cn)
		}
	}

	M := orca.NewSignatureMatrix(X.NumNodes(), opts.Size)
	if err := forEachNode(ctx, X.NumNodes(), opts.Workers, newCounter, M); err != nil {
		return nil, err
	}

	klog.V(2).Infof("counted %d orbits for %d nodes in %v", M.NumOrbits(), M.NumNodes(), time.Since(startTime))
	return M, nil
}

// forEachNode runs a nodeCounter over every node, serially or striped over the given number of workers.
// Rows are write-disjoint, so workers share M without locking.
func forEachNode(
	ctx context.Context,
	numNodes int,
	workers int,
	newCounter func() nodeCounter,
	M *orca.SignatureMatrix,
) error {
	if workers > numNodes {
		workers = numNodes
	}

	if workers <= 1 {
		c := newCounter()
		for x := 0; x < numNodes; x++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := c.countNode(x, M.Row(x)); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		first := w
		g.Go(func() error {
			c := newCounter()
			for x := first; x < numNodes; x += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := c.countNode(x, M.Row(x)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// Count4 returns the 15-orbit signature matrix of X.
func Count4(X *Graph) (*orca.SignatureMatrix, error) {
	return NewEngine(X).Count(context.Background(), orca.CountOpts{Size: orca.Graphlets4})
}

// Count5 returns the 73-orbit signature matrix of X.
func Count5(X *Graph) (*orca.SignatureMatrix, error) {
	return NewEngine(X).Count(context.Background(), orca.CountOpts{Size: orca.Graphlets5})
}
