// Command vigsegment-demo wires a handful of hand-built clauses through
// the VIG + segmentation pipeline and prints the resulting component
// labeling. It stands in for a DIMACS-parsing front end treated as an
// external collaborator: this binary only specifies the shape a parser
// must deliver (cnf.Formula), it does not parse DIMACS itself.
package main

import (
	"fmt"
	"os"

	"github.com/gilchrisn/vig-segment/pkg/cnf"
	config "github.com/gilchrisn/vig-segment/pkg/vigconfig"
	vigsegment "github.com/gilchrisn/vig-segment"
)

func main() {
	cfg := config.New()
	logger := cfg.CreateLogger()

	formula := cnf.Formula{
		VariableCount: 3,
		Clauses: []cnf.Clause{
			{1, 2},
			{2, 3},
		},
		IsValid: true,
	}

	pipelineCfg := vigsegment.PipelineConfig{
		ClauseSizeThreshold: cfg.ClauseSizeThreshold(),
		Builder:             cfg.Builder(),
		K:                   cfg.K(),
		Segment:             cfg.SegmentConfig(),
	}

	result, err := vigsegment.Run(formula, pipelineCfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pipeline failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("nodes=%d edges=%d components=%d cross_edges=%d\n",
		result.Graph.N, len(result.Graph.Edges), result.Segmentation.Components(), len(result.CrossEdges))

	for i := 0; i < result.Graph.N; i++ {
		fmt.Printf("  var %d -> component %d\n", i, result.Segmentation.Label(i))
	}
}
