package segment

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/gilchrisn/vig-segment/pkg/dsu"
	"github.com/gilchrisn/vig-segment/pkg/vig"
	"github.com/gilchrisn/vig-segment/pkg/vigerr"
)

// Result is the segmenter's output: a labeling (queryable via Label),
// per-component sizes, the candidate cross-component edges, counters,
// and the distance scale actually used.
type Result struct {
	forest *dsu.Forest

	CompSize    map[int]int32
	Candidates  []vig.Edge
	LBAccepts   int
	UBRejects   int
	Ambiguous   int
	DScale      float64
	RunID       uuid.UUID
}

// Label returns the final component label of node x, via read-only find
// (no further path compression once a run has finished).
func (r *Result) Label(x int) int { return r.forest.FindReadonly(x) }

// ComponentSize returns the size of the component rooted at root.
func (r *Result) ComponentSize(root int) int32 { return r.CompSize[root] }

// Components returns the live component count.
func (r *Result) Components() int { return r.forest.Components() }

// Run partitions an n-node, weighted edge list with the FH greedy
// agglomeration: sort edges descending by weight, then walk them in
// order, admitting a merge when the normalized distance clears both
// endpoints' gates (and, if the modularity guard is enabled, when the
// lower/upper modularity bound test agrees).
func Run(n int, edges []vig.Edge, k float64, cfg Config, logger zerolog.Logger) (*Result, error) {
	const op = "segment.Run"
	if k <= 0 {
		return nil, vigerr.New(vigerr.InvalidArgument, op, "k must be > 0")
	}

	runID := uuid.New()
	log := logger.With().Str("run_id", runID.String()).Str("component", "segmenter").Logger()

	forest := dsu.New(n)

	compSize := make([]float64, n)
	maxDist := make([]float64, n)
	compVol := make([]float64, n)
	lbInternal := make([]float64, n)
	for i := 0; i < n; i++ {
		compSize[i] = 1
	}

	// Step 1 — sort descending by weight, ties by (u, v) ascending.
	vig.SortDescendingByWeight(edges)

	// Step 2 — global statistics.
	var sumW float64
	if cfg.UseModularityGuard {
		for _, e := range edges {
			sumW += e.W
			compVol[e.U] += e.W
			compVol[e.V] += e.W
		}
	}

	// Step 3 — distance normalization.
	dScale := 1.0
	if cfg.NormalizeDistances && len(edges) > 0 {
		dScale = normDScale(edges, cfg.NormSampleEdges)
	}

	vScale := cfg.DQVScale
	if vScale <= 0 {
		vScale = math.Max(1, 2*sumW/math.Max(1, float64(n)))
	}

	capHint := cfg.CandidateCapacityHint
	if capHint <= 0 {
		capHint = len(edges) / 4
	}
	candidates := make([]vig.Edge, 0, capHint)

	var lbAccepts, ubRejects, ambiguous int

	// Step 4 — main loop.
	for _, e := range edges {
		if e.W <= 0 {
			continue
		}
		a := forest.Find(int(e.U))
		b := forest.Find(int(e.V))
		if a == b {
			if cfg.UseModularityGuard {
				lbInternal[a] += e.W
			}
			continue
		}

		d := (1 / e.W) / dScale
		gateA := maxDist[a] + k/math.Pow(compSize[a], cfg.SizeExponent)
		gateB := maxDist[b] + k/math.Pow(compSize[b], cfg.SizeExponent)
		gate := math.Min(gateA, gateB)

		if d > gate {
			candidates = append(candidates, e)
			continue
		}

		if cfg.UseModularityGuard {
			tol := 0.0
			if cfg.Anneal {
				tol = -cfg.DQTol0 * math.Exp(-math.Max(compVol[a], compVol[b])/vScale)
			}

			dqLB := e.W/sumW - cfg.Gamma*compVol[a]*compVol[b]/(2*sumW*sumW)
			if dqLB >= tol {
				lbAccepts++
			} else {
				cutUBa := math.Max(0, compVol[a]-2*lbInternal[a])
				cutUBb := math.Max(0, compVol[b]-2*lbInternal[b])
				eABub := math.Min(math.Min(cutUBa, cutUBb), math.Min(compVol[a], compVol[b]))
				dqUB := eABub/sumW - cfg.Gamma*compVol[a]*compVol[b]/(2*sumW*sumW)

				if dqUB < tol {
					ubRejects++
					candidates = append(candidates, e)
					continue
				}

				ambiguous++
				switch cfg.AmbiguousPolicy {
				case Reject:
					candidates = append(candidates, e)
					continue
				case GateMargin:
					if !(gate > 0 && (gate-d) >= cfg.GateMarginRatio*gate) {
						candidates = append(candidates, e)
						continue
					}
				case Accept:
					// fall through to union below
				}
			}
		}

		r := forest.Union(a, b)
		compSize[r] = compSize[a] + compSize[b]
		if cfg.UseModularityGuard {
			compVol[r] = compVol[a] + compVol[b]
			lbInternal[r] = lbInternal[a] + lbInternal[b] + e.W
		}
		maxDist[r] = math.Max(math.Max(maxDist[a], maxDist[b]), d)
	}

	compSizeOut := make(map[int]int32)
	for i := 0; i < n; i++ {
		root := forest.FindReadonly(i)
		if _, ok := compSizeOut[root]; !ok {
			compSizeOut[root] = int32(compSize[root])
		}
	}

	log.Info().
		Int("nodes", n).
		Int("components", forest.Components()).
		Int("candidates", len(candidates)).
		Int("lb_accepts", lbAccepts).
		Int("ub_rejects", ubRejects).
		Int("ambiguous", ambiguous).
		Float64("d_scale", dScale).
		Msg("segmentation complete")

	return &Result{
		forest:     forest,
		CompSize:   compSizeOut,
		Candidates: candidates,
		LBAccepts:  lbAccepts,
		UBRejects:  ubRejects,
		Ambiguous:  ambiguous,
		DScale:     dScale,
		RunID:      runID,
	}, nil
}

// normDScale computes the Step 3 distance scale: the median of 1/w over
// the first M = min(|E|, N) edges of the (already descending-sorted)
// edge list, via gonum/stat's empirical quantile. For an even M this is
// the lower of the two middle values.
func normDScale(edges []vig.Edge, sampleEdges int) float64 {
	m := len(edges)
	if sampleEdges < m {
		m = sampleEdges
	}
	if m <= 0 {
		return 1
	}

	inv := make([]float64, m)
	for i := 0; i < m; i++ {
		inv[i] = 1 / edges[i].W
	}
	sort.Float64s(inv)

	median := stat.Quantile(0.5, stat.Empirical, inv, nil)
	if math.IsInf(median, 0) || math.IsNaN(median) || median <= 0 {
		return 1
	}
	return median
}
