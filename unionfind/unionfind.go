// Package unionfind implements a disjoint-set forest over dense ids 0..n-1
// with union by rank and path compression.
//
// A Forest is owned by a single algorithm run (Kruskal); it is not safe for
// concurrent use.
package unionfind

// Forest is a disjoint-set forest.
type Forest struct {
	parent []int
	rank   []uint8
	size   []int
	count  int // number of disjoint sets
}

// New returns a Forest of n singleton sets.
// Complexity: O(n).
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f
}

// Len returns the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

// Find returns the representative of x's set, compressing the path.
// Iterative (path halving) to avoid deep recursion on long chains.
// Complexity: O(α(n)) amortized.
func (f *Forest) Find(x int) int {
	for f.parent[x] != x {
		f.parent[x] = f.parent[f.parent[x]]
		x = f.parent[x]
	}

	return x
}

// Union merges the sets of a and b. It returns false if they were already
// in the same set.
// Complexity: O(α(n)) amortized.
func (f *Forest) Union(a, b int) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}

	// Attach the lower-rank root under the higher-rank root.
	if f.rank[ra] < f.rank[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	if f.rank[ra] == f.rank[rb] {
		f.rank[ra]++
	}
	f.count--

	return true
}

// Connected reports whether a and b are in the same set.
func (f *Forest) Connected(a, b int) bool {
	return f.Find(a) == f.Find(b)
}

// Count returns the current number of disjoint sets.
func (f *Forest) Count() int { return f.count }

// Size returns the number of elements in x's set.
func (f *Forest) Size(x int) int { return f.size[f.Find(x)] }

// Components returns the sets as slices of ids. Members are ascending within
// a set, and sets are ordered by their smallest member.
// Complexity: O(n α(n)).
func (f *Forest) Components() [][]int {
	slot := make(map[int]int, f.count)
	out := make([][]int, 0, f.count)
	for x := range f.parent {
		r := f.Find(x)
		i, ok := slot[r]
		if !ok {
			i = len(out)
			slot[r] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], x)
	}

	return out
}
