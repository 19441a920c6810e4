package vig

import (
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gilchrisn/vig-segment/pkg/cnf"
)

func edgeWeight(t *testing.T, edges []Edge, u, v int32) (float64, bool) {
	t.Helper()
	if u > v {
		u, v = v, u
	}
	for _, e := range edges {
		if e.U == u && e.V == v {
			return e.W, true
		}
	}
	return 0, false
}

func TestBuildNaiveTwoClauseScenario(t *testing.T) {
	// variables {0,1,2}, clauses {1,2} and {2,3}: a chain of two shared edges.
	f := cnf.Formula{
		VariableCount: 3,
		Clauses:       []cnf.Clause{{1, 2}, {2, 3}},
		IsValid:       true,
	}
	g, err := BuildNaive(f, Unbounded, zerolog.Nop())
	if err != nil {
		t.Fatalf("BuildNaive returned error: %v", err)
	}
	if g.N != 3 {
		t.Fatalf("N = %d, want 3", g.N)
	}
	if len(g.Edges) != 2 {
		t.Fatalf("expected 2 edges, got %d: %+v", len(g.Edges), g.Edges)
	}
	if w, ok := edgeWeight(t, g.Edges, 0, 1); !ok || math.Abs(w-1.0) > 1e-12 {
		t.Errorf("edge (0,1) weight = %v, ok=%v, want 1.0", w, ok)
	}
	if w, ok := edgeWeight(t, g.Edges, 1, 2); !ok || math.Abs(w-1.0) > 1e-12 {
		t.Errorf("edge (1,2) weight = %v, ok=%v, want 1.0", w, ok)
	}
}

func TestBuildNaiveTriangleClause(t *testing.T) {
	f := cnf.Formula{
		VariableCount: 3,
		Clauses:       []cnf.Clause{{1, 2, 3}},
		IsValid:       true,
	}
	g, err := BuildNaive(f, Unbounded, zerolog.Nop())
	if err != nil {
		t.Fatalf("BuildNaive returned error: %v", err)
	}
	if len(g.Edges) != 3 {
		t.Fatalf("expected 3 edges from a triangle clause, got %d", len(g.Edges))
	}
	want := 1.0 / 3.0
	for _, pair := range [][2]int32{{0, 1}, {0, 2}, {1, 2}} {
		w, ok := edgeWeight(t, g.Edges, pair[0], pair[1])
		if !ok || math.Abs(w-want) > 1e-12 {
			t.Errorf("edge %v weight = %v, ok=%v, want %v", pair, w, ok, want)
		}
	}
}

func TestBuildNaiveAggregatesAcrossClauses(t *testing.T) {
	f := cnf.Formula{
		VariableCount: 2,
		Clauses:       []cnf.Clause{{1, 2}, {1, 2}, {-1, -2}},
		IsValid:       true,
	}
	g, err := BuildNaive(f, Unbounded, zerolog.Nop())
	if err != nil {
		t.Fatalf("BuildNaive returned error: %v", err)
	}
	if len(g.Edges) != 1 {
		t.Fatalf("expected a single aggregated edge, got %d", len(g.Edges))
	}
	if math.Abs(g.Edges[0].W-3.0) > 1e-12 {
		t.Errorf("aggregated weight = %v, want 3.0", g.Edges[0].W)
	}
}

func TestBuildNaiveClauseSizeCutoff(t *testing.T) {
	f := cnf.Formula{
		VariableCount: 4,
		Clauses:       []cnf.Clause{{1, 2}, {1, 2, 3, 4}},
		IsValid:       true,
	}
	g, err := BuildNaive(f, 2, zerolog.Nop())
	if err != nil {
		t.Fatalf("BuildNaive returned error: %v", err)
	}
	if len(g.Edges) != 1 {
		t.Fatalf("tau=2 should drop the size-4 clause entirely, got %d edges: %+v", len(g.Edges), g.Edges)
	}
}

func TestBuildNaiveIgnoresUnitAndEmptyClauses(t *testing.T) {
	f := cnf.Formula{
		VariableCount: 2,
		Clauses:       []cnf.Clause{{1}, {}},
		IsValid:       true,
	}
	g, err := BuildNaive(f, Unbounded, zerolog.Nop())
	if err != nil {
		t.Fatalf("BuildNaive returned error: %v", err)
	}
	if len(g.Edges) != 0 {
		t.Errorf("expected no edges from sub-pair clauses, got %d", len(g.Edges))
	}
}

func TestBuildNaiveMassConservation(t *testing.T) {
	// the sum of edge weights equals the number of qualifying clauses,
	// since each clause distributes total mass 1.
	f := cnf.Formula{
		VariableCount: 5,
		Clauses: []cnf.Clause{
			{1, 2, 3},
			{2, 3, 4, 5},
			{1, 5},
		},
		IsValid: true,
	}
	g, err := BuildNaive(f, Unbounded, zerolog.Nop())
	if err != nil {
		t.Fatalf("BuildNaive returned error: %v", err)
	}
	sum := SumWeights(g.Edges)
	if math.Abs(sum-3.0) > 1e-9 {
		t.Errorf("SumWeights = %v, want 3.0 (one unit of mass per qualifying clause)", sum)
	}
}
