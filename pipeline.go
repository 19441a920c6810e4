// Package vigsegment orchestrates the two core subsystems — VIG
// construction and FH graph segmentation — into a single call, followed
// by cross-component edge extraction, without intermediary files.
package vigsegment

import (
	"github.com/rs/zerolog"

	"github.com/gilchrisn/vig-segment/pkg/cnf"
	"github.com/gilchrisn/vig-segment/pkg/crossedge"
	"github.com/gilchrisn/vig-segment/pkg/segment"
	"github.com/gilchrisn/vig-segment/pkg/vig"
)

// PipelineConfig bundles the builder selection and segmentation
// configuration for one end-to-end run.
type PipelineConfig struct {
	ClauseSizeThreshold int
	Builder             vig.Builder
	K                   float64
	Segment             segment.Config
}

// DefaultPipelineConfig returns the optimized builder with recommended
// defaults: threshold unbounded, k=1.
func DefaultPipelineConfig(threads int, maxBuffer int64) PipelineConfig {
	return PipelineConfig{
		ClauseSizeThreshold: vig.Unbounded,
		Builder: vig.Builder{
			Kind:      vig.BuilderOptimized,
			Optimized: vig.Optimized{Threads: threads, MaxBuffer: maxBuffer},
		},
		K:       1.0,
		Segment: segment.DefaultConfig(),
	}
}

// PipelineResult is the full data flow output: CNF -> VIG -> labeling +
// per-component statistics -> candidate cross-component edges.
type PipelineResult struct {
	Graph       *vig.Graph
	Segmentation *segment.Result
	CrossEdges  []crossedge.Edge
}

// Run executes the complete VIG-construction + segmentation pipeline
// over a parsed formula.
func Run(f cnf.Formula, cfg PipelineConfig, logger zerolog.Logger) (*PipelineResult, error) {
	graph, err := vig.Build(f, cfg.ClauseSizeThreshold, cfg.Builder, logger)
	if err != nil {
		return nil, err
	}

	result, err := segment.Run(graph.N, graph.Edges, cfg.K, cfg.Segment, logger)
	if err != nil {
		return nil, err
	}

	cross := crossedge.Extract(result)

	return &PipelineResult{
		Graph:        graph,
		Segmentation: result,
		CrossEdges:   cross,
	}, nil
}
