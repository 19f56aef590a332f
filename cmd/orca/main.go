package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/plan-systems/klog"
)

type orcaCLI struct {
	LogV int `name:"log-v" help:"klog verbosity level" default:"1"`

	Count countCmd `cmd:"" help:"Count graphlet orbits of every node of a graph file"`
	Run   runCmd   `cmd:"" help:"Run a gpython script with the _pyorca module available (REPL if no script is given)"`
}

func main() {
	var params orcaCLI
	kctx := kong.Parse(&params,
		kong.Name("orca"),
		kong.Description("Orbit counting of 4- and 5-node graphlets"),
	)

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", strconv.Itoa(params.LogV))
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	err := kctx.Run()
	if err != nil {
		klog.Errorf("orca %s: %v", kctx.Command(), err)
	}
	klog.Flush()

	if err != nil {
		os.Exit(1)
	}
}
