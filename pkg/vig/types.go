// Package vig builds the Variable Interaction Graph from a CNF: a naive
// single-threaded reference aggregator (Builder = Naive) and a
// multi-threaded, memory-budgeted batched aggregator (Builder =
// Optimized). The caller selects between them with a sum type at the
// call site, not inheritance.
package vig

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// Unbounded is the clause-size threshold sentinel meaning "include all
// s >= 2", i.e. no upper cutoff.
const Unbounded = math.MaxInt32

// Edge is a canonical VIG edge: u < v, w > 0.
type Edge struct {
	U, V int32
	W    float64
}

// Graph is the tuple (n, E, mem): vertex count, the aggregated edge
// list, and an optional diagnostic memory count.
type Graph struct {
	N           int
	Edges       []Edge
	Memory      MemoryAccounting
	RunID       uuid.UUID
}

// MemoryAccounting is the optimized builder's diagnostic memory
// breakdown. TotalBytes is the single summed integer exposed to callers
// who don't need the breakdown; the named fields are an ergonomic
// addition for callers who want to see where the bytes went.
type MemoryAccounting struct {
	PeakActiveBatchBytes int64
	PeakOutputEdgeBytes  int64
	FinalEdgeListBytes   int64
	TotalBytes           int64
	BumpedToFit          bool
}

// SortDescendingByWeight sorts a VIG's edge list in place, descending by
// weight, ties broken by (u, v) ascending — the ordering the FH
// segmenter requires internally. Neither builder calls it; their edge
// lists come out in builder-specific order.
func SortDescendingByWeight(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].W != edges[j].W {
			return edges[i].W > edges[j].W
		}
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
}

// SumWeights returns the sum of edge weights, used by the mass
// conservation check: it should equal the number of qualifying clauses,
// since each clause distributes total mass 1 over its pairs.
func SumWeights(edges []Edge) float64 {
	var sum float64
	for _, e := range edges {
		sum += e.W
	}
	return sum
}
