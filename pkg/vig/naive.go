package vig

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gilchrisn/vig-segment/pkg/cnf"
	"github.com/gilchrisn/vig-segment/pkg/weight"
)

// pairKey packs an ordered pair (u < v) of 32-bit variable ids into a
// single 64-bit key for map aggregation.
func pairKey(u, v int32) uint64 {
	return uint64(uint32(u))<<32 | uint64(uint32(v))
}

// BuildNaive is the single-threaded reference aggregator (§4.C): a hash
// map from packed pair key to accumulated weight, built by iterating
// every unordered pair within every qualifying clause.
func BuildNaive(f cnf.Formula, tau int, logger zerolog.Logger) (*Graph, error) {
	runID := uuid.New()
	log := logger.With().Str("run_id", runID.String()).Str("builder", "naive").Logger()

	n := f.NumVars()
	acc := make(map[uint64]float64)
	table := &weight.Table{}

	qualifying := 0
	for _, clause := range f.Clauses {
		s := clause.Size()
		if s < 2 || s > tau {
			continue
		}
		qualifying++
		w := table.Get(s)
		for i := 0; i < s; i++ {
			u := int32(cnf.Var(clause[i]))
			for j := i + 1; j < s; j++ {
				v := int32(cnf.Var(clause[j]))
				if u == v {
					continue
				}
				a, b := u, v
				if a > b {
					a, b = b, a
				}
				acc[pairKey(a, b)] += w
			}
		}
	}

	edges := make([]Edge, 0, len(acc))
	for key, w := range acc {
		if w <= 0 {
			continue
		}
		edges = append(edges, Edge{U: int32(key >> 32), V: int32(key & 0xFFFFFFFF), W: w})
	}

	log.Debug().Int("nodes", n).Int("edges", len(edges)).Int("qualifying_clauses", qualifying).Msg("naive VIG build complete")

	return &Graph{N: n, Edges: edges, RunID: runID}, nil
}
