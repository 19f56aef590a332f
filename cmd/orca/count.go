package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/2x3systems/orca/liborca"
	"github.com/2x3systems/orca/liborca/catalog"
	"github.com/2x3systems/orca/orca"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

type countCmd struct {
	Size   int    `arg:"" help:"Graphlet size (4 or 5)"`
	Input  string `arg:"" type:"existingfile" help:"Graph file: 'n m' followed by m lines of 'a b'"`
	Output string `arg:"" help:"Signature matrix output file"`

	Workers int    `short:"w" default:"1" help:"Number of goroutines sharing the per-node loop"`
	Catalog string `help:"Signature catalog directory; previously counted graphs are served from it"`
	Roles   bool   `help:"Print nodes grouped by identical signature"`
}

func (cmd *countCmd) Run() error {
	opts := orca.CountOpts{
		Size:    orca.GraphletSize(cmd.Size),
		Workers: cmd.Workers,
	}
	if err := opts.Size.Validate(); err != nil {
		return err
	}

	X, err := liborca.ReadGraphFile(cmd.Input)
	if err != nil {
		return err
	}
	klog.Infof("nodes: %d", X.NumNodes())
	klog.Infof("edges: %d", X.NumEdges())
	klog.Infof("max degree: %d", X.MaxDegree())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	M, err := cmd.countSignatures(ctx, X, opts)
	if err != nil {
		return err
	}

	if err = writeMatrixFile(cmd.Output, M); err != nil {
		return err
	}

	if cmd.Roles {
		printRoles(os.Stdout, M)
	}
	return nil
}

func (cmd *countCmd) countSignatures(ctx context.Context, X *liborca.Graph, opts orca.CountOpts) (*orca.SignatureMatrix, error) {
	var cat orca.Catalog
	if len(cmd.Catalog) > 0 {
		var err error
		cat, err = catalog.OpenCatalog(orca.CatalogOpts{
			DbPathName: cmd.Catalog,
		})
		if err != nil {
			return nil, err
		}
		defer cat.Close()

		M, found, err := cat.Get(X, opts.Size)
		if err != nil {
			return nil, err
		}
		if found {
			klog.Infof("signatures found in catalog %q", cmd.Catalog)
			return M, nil
		}
	}

	startTime := time.Now()
	M, err := liborca.NewEngine(X).Count(ctx, opts)
	if err != nil {
		return nil, err
	}
	klog.Infof("orbits counted in %v", time.Since(startTime))

	if cat != nil {
		if _, err = cat.Put(X, M); err != nil {
			return nil, err
		}
	}
	return M, nil
}

func writeMatrixFile(pathname string, M *orca.SignatureMatrix) error {
	file, err := os.Create(pathname)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	_, err = M.WriteTo(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(pathname)
		return errors.Wrapf(err, "writing %q", pathname)
	}
	return nil
}

func printRoles(w io.Writer, M *orca.SignatureMatrix) {
	classes := liborca.ClassifyRoles(M)
	fmt.Fprintf(w, "%d nodes, %d distinct roles\n", M.NumNodes(), len(classes))
	for i, rc := range classes {
		fmt.Fprintf(w, "%4d: %v\n", i, rc.Nodes)
	}
}
