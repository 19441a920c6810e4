package dsu

import "testing"

func TestNewSingletons(t *testing.T) {
	f := New(5)
	if f.Components() != 5 {
		t.Errorf("expected 5 components, got %d", f.Components())
	}
	for i := 0; i < 5; i++ {
		if f.Find(i) != i {
			t.Errorf("singleton %d should be its own root, got %d", i, f.Find(i))
		}
	}
}

func TestUnionReducesComponents(t *testing.T) {
	f := New(4)
	f.Union(0, 1)
	if f.Components() != 3 {
		t.Errorf("expected 3 components after one union, got %d", f.Components())
	}
	if !f.Same(0, 1) {
		t.Error("0 and 1 should be in the same component")
	}
	if f.Same(0, 2) {
		t.Error("0 and 2 should not be in the same component")
	}
}

func TestUnionIdempotentOnSameComponent(t *testing.T) {
	f := New(3)
	f.Union(0, 1)
	before := f.Components()
	f.Union(0, 1)
	if f.Components() != before {
		t.Errorf("re-union of already-merged set changed component count: %d -> %d", before, f.Components())
	}
}

func TestUnionTieBreakKeepsAsRoot(t *testing.T) {
	f := New(2)
	root := f.Union(0, 1)
	if root != 0 {
		t.Errorf("expected a's root (0) to survive on equal rank, got %d", root)
	}
	if f.Find(0) != 0 || f.Find(1) != 0 {
		t.Errorf("expected both elements to resolve to root 0, got Find(0)=%d Find(1)=%d", f.Find(0), f.Find(1))
	}
}

func TestUnionByRank(t *testing.T) {
	f := New(4)
	// Build a rank-1 tree over {0,1}, then union a rank-0 singleton into it.
	f.Union(0, 1)
	root01 := f.Find(0)
	r := f.Union(2, root01)
	if r != root01 {
		t.Errorf("higher-rank root should absorb the lower-rank tree, got new root %d want %d", r, root01)
	}
	if f.Find(2) != root01 {
		t.Errorf("element 2 should now resolve to %d, got %d", root01, f.Find(2))
	}
}

func TestFindPathCompression(t *testing.T) {
	f := New(5)
	// Join two rank-1 trees at equal rank, leaving the path 3 -> 2 -> 0,
	// so Find has real compression work to do.
	f.Union(0, 1)
	f.Union(2, 3)
	f.Union(0, 2)
	root := f.Find(3)
	if f.Find(0) != root || f.Find(1) != root || f.Find(2) != root {
		t.Errorf("all elements should resolve to %d after chained unions", root)
	}
	// Find(3) should have pointed 3's parent directly at the root.
	if int(f.parent[3]) != root {
		t.Errorf("path compression should have pointed 3's parent directly at root %d, got %d", root, f.parent[3])
	}
}

func TestFindReadonlyDoesNotCompress(t *testing.T) {
	f := New(4)
	f.Union(0, 1)
	f.Union(2, 3)
	f.Union(0, 2) // leaves the path 3 -> 2 -> 0
	root := f.FindReadonly(3)
	if int(f.parent[3]) != 2 {
		t.Errorf("FindReadonly must not compress: parent[3] = %d, want 2", f.parent[3])
	}
	if root != f.Find(0) {
		t.Errorf("FindReadonly should agree with Find on the root, got %d want %d", root, f.Find(0))
	}
}

func TestResetReinitializes(t *testing.T) {
	f := New(3)
	f.Union(0, 1)
	f.Reset(6)
	if f.Components() != 6 {
		t.Errorf("expected 6 fresh components after reset, got %d", f.Components())
	}
	for i := 0; i < 6; i++ {
		if f.Find(i) != i {
			t.Errorf("element %d should be its own root after reset, got %d", i, f.Find(i))
		}
	}
}

func TestLen(t *testing.T) {
	f := New(7)
	if f.Len() != 7 {
		t.Errorf("expected Len()=7, got %d", f.Len())
	}
}

func TestComponentsMonotonicallyDecreases(t *testing.T) {
	n := 10
	f := New(n)
	prev := f.Components()
	for i := 0; i < n-1; i++ {
		f.Union(i, i+1)
		cur := f.Components()
		if cur > prev {
			t.Fatalf("component count increased from %d to %d after a union", prev, cur)
		}
		prev = cur
	}
	if f.Components() != 1 {
		t.Errorf("expected a single component after chaining all unions, got %d", f.Components())
	}
}
