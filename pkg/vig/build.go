package vig

import (
	"github.com/rs/zerolog"

	"github.com/gilchrisn/vig-segment/pkg/cnf"
)

// BuilderKind discriminates the Naive | Optimized sum type: a plain
// enum selected at the call site rather than an interface hierarchy.
type BuilderKind int

const (
	BuilderNaive BuilderKind = iota
	BuilderOptimized
)

// Builder selects and parameterizes a VIG construction strategy.
type Builder struct {
	Kind      BuilderKind
	Optimized Optimized // only consulted when Kind == BuilderOptimized
}

// Build dispatches to BuildNaive or BuildOptimized per the selected variant.
func Build(f cnf.Formula, tau int, b Builder, logger zerolog.Logger) (*Graph, error) {
	switch b.Kind {
	case BuilderOptimized:
		return BuildOptimized(f, tau, b.Optimized, logger)
	default:
		return BuildNaive(f, tau, logger)
	}
}
