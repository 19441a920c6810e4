// Package dsu implements a disjoint-set forest over a contiguous range
// 0..n-1: parent and rank arrays, no pointer-linked representation, no
// first-class component objects. Per-component vectors (size, volume, max
// distance) are derived and kept by callers, keyed by root index.
package dsu

// Forest is a union-find structure with path compression and union by
// rank. The zero value is not usable; construct with New or Reset.
type Forest struct {
	parent []int32
	rank   []int8
	live   int
}

// New returns a Forest over n singleton elements.
func New(n int) *Forest {
	f := &Forest{}
	f.Reset(n)
	return f
}

// Reset reinitializes the forest to n singletons; component count becomes n.
func (f *Forest) Reset(n int) {
	if cap(f.parent) >= n {
		f.parent = f.parent[:n]
		f.rank = f.rank[:n]
	} else {
		f.parent = make([]int32, n)
		f.rank = make([]int8, n)
	}
	for i := range f.parent {
		f.parent[i] = int32(i)
		f.rank[i] = 0
	}
	f.live = n
}

// Find returns the root of x, compressing the path traversed.
func (f *Forest) Find(x int) int {
	root := x
	for int(f.parent[root]) != root {
		root = int(f.parent[root])
	}
	for int(f.parent[x]) != root {
		f.parent[x], x = int32(root), int(f.parent[x])
	}
	return root
}

// FindReadonly returns the root of x without mutating the structure, for
// use once a run has finished and further compression would be unsafe to
// perform concurrently with other readers.
func (f *Forest) FindReadonly(x int) int {
	root := x
	for int(f.parent[root]) != root {
		root = int(f.parent[root])
	}
	return root
}

// Union merges the sets containing a and b, by rank, and returns the new
// root. Ties are broken deterministically: when ranks are equal, a's
// root is kept and its rank is incremented; b's rank is left untouched.
// Returns the existing root if a and b are already in the same set.
func (f *Forest) Union(a, b int) int {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return ra
	}
	f.live--
	switch {
	case f.rank[ra] < f.rank[rb]:
		f.parent[ra] = int32(rb)
		return rb
	case f.rank[ra] > f.rank[rb]:
		f.parent[rb] = int32(ra)
		return ra
	default:
		f.parent[rb] = int32(ra)
		f.rank[ra]++
		return ra
	}
}

// Same reports whether x and y are in the same component.
func (f *Forest) Same(x, y int) bool {
	return f.Find(x) == f.Find(y)
}

// Components returns the live component count.
func (f *Forest) Components() int { return f.live }

// Len returns the number of elements the forest was built over.
func (f *Forest) Len() int { return len(f.parent) }
