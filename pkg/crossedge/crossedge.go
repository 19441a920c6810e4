// Package crossedge implements the cross-component extractor (§4.F):
// at most one edge per unordered pair of final components, the
// strongest.
package crossedge

import (
	"github.com/gilchrisn/vig-segment/pkg/segment"
)

// Edge is a cross-component candidate reduced to its final component
// pair: root_a < root_b, one per pair.
type Edge struct {
	RootA, RootB int32
	W            float64
}

func key(a, b int32) uint64 {
	return uint64(uint32(a))<<32 | uint64(uint32(b))
}

// Extract walks a segmentation result's candidate list in examination
// order (descending by weight) and keeps the first — hence strongest —
// edge seen for each final component pair. Early-stops once every pair
// among the current C components has been seen.
func Extract(result *segment.Result) []Edge {
	c := result.Components()
	maxPairs := c * (c - 1) / 2
	if maxPairs <= 0 {
		return nil
	}

	seen := make(map[uint64]struct{}, maxPairs)
	out := make([]Edge, 0, maxPairs)

	for _, e := range result.Candidates {
		a := int32(result.Label(int(e.U)))
		b := int32(result.Label(int(e.V)))
		if a == b {
			continue
		}
		aa, bb := a, b
		if aa > bb {
			aa, bb = bb, aa
		}
		k := key(aa, bb)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, Edge{RootA: aa, RootB: bb, W: e.W})
		if len(seen) == maxPairs {
			break
		}
	}

	return out
}
