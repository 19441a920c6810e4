// Package segment implements the FH-style graph segmenter (§4.E): a
// sorted-edge greedy agglomeration over a disjoint-set forest, gated by
// a per-component distance threshold and, optionally, a modularity
// lower/upper-bound admission test.
package segment

// AmbiguousPolicy controls what happens when neither ΔQ_lb nor ΔQ_ub
// can settle a merge decision under the modularity guard.
type AmbiguousPolicy int

const (
	// Accept falls through to a normal FH admission.
	Accept AmbiguousPolicy = iota
	// Reject pushes the edge to candidates without merging.
	Reject
	// GateMargin accepts only if the gate margin is comfortably clear.
	GateMargin
)

func (p AmbiguousPolicy) String() string {
	switch p {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	case GateMargin:
		return "gate_margin"
	default:
		return "unknown"
	}
}

// Config is the segmenter's configuration record — exactly the tunables
// the algorithm needs, nothing more. The zero value is not valid; use
// DefaultConfig for sensible defaults and override from there.
type Config struct {
	NormalizeDistances bool
	NormSampleEdges    int
	SizeExponent       float64
	UseModularityGuard bool
	Gamma              float64
	Anneal             bool
	DQTol0             float64
	DQVScale           float64
	AmbiguousPolicy    AmbiguousPolicy
	GateMarginRatio    float64

	// CandidateCapacityHint lets callers pre-reserve the candidate
	// list's backing array when they know |E| in advance.
	CandidateCapacityHint int
}

// DefaultConfig returns the segmenter's recommended defaults.
func DefaultConfig() Config {
	return Config{
		NormalizeDistances: true,
		NormSampleEdges:    1000,
		SizeExponent:       1.2,
		UseModularityGuard: true,
		Gamma:              1.0,
		Anneal:             true,
		DQTol0:             5e-4,
		DQVScale:           0,
		AmbiguousPolicy:    GateMargin,
		GateMarginRatio:    0.05,
	}
}
