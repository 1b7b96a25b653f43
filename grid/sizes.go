package grid

// SizeTree stores per-index pixel sizes (row heights or column widths) in a
// Fenwick tree so offsets and index lookups stay O(log n) on huge grids.
// Index 0 is the header extent.
type SizeTree struct {
	sizes []int
	tree  []int // 1-based partial sums
	step  int   // highest power of two <= len(sizes)
}

// NewSizeTree creates a tree of n entries all set to size.
func NewSizeTree(n, size int) *SizeTree {
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = size
	}
	t := &SizeTree{sizes: sizes}
	t.rebuild()
	return t
}

// NewSizeTreeFrom creates a tree over a copy of sizes.
func NewSizeTreeFrom(sizes []int) *SizeTree {
	t := &SizeTree{sizes: append([]int(nil), sizes...)}
	t.rebuild()
	return t
}

func (t *SizeTree) rebuild() {
	n := len(t.sizes)
	t.tree = make([]int, n+1)
	for i := 1; i <= n; i++ {
		t.tree[i] += t.sizes[i-1]
		if j := i + (i & -i); j <= n {
			t.tree[j] += t.tree[i]
		}
	}
	t.step = 1
	for t.step<<1 <= n {
		t.step <<= 1
	}
	if n == 0 {
		t.step = 0
	}
}

// Len returns the number of entries.
func (t *SizeTree) Len() int {
	return len(t.sizes)
}

// Get returns the size at i, or 0 when i is out of range.
func (t *SizeTree) Get(i int) int {
	if i < 0 || i >= len(t.sizes) {
		return 0
	}
	return t.sizes[i]
}

// Set updates the size at i. Out of range indices and negative sizes are ignored.
func (t *SizeTree) Set(i, size int) {
	if i < 0 || i >= len(t.sizes) || size < 0 {
		return
	}
	delta := size - t.sizes[i]
	if delta == 0 {
		return
	}
	t.sizes[i] = size
	for j := i + 1; j < len(t.tree); j += j & -j {
		t.tree[j] += delta
	}
}

// Prefix returns the sum of sizes[0:i]. i is clamped to [0, Len()].
func (t *SizeTree) Prefix(i int) int {
	if i <= 0 {
		return 0
	}
	if i > len(t.sizes) {
		i = len(t.sizes)
	}
	sum := 0
	for j := i; j > 0; j -= j & -j {
		sum += t.tree[j]
	}
	return sum
}

// Sum returns the sum of sizes[i:j].
func (t *SizeTree) Sum(i, j int) int {
	if j <= i {
		return 0
	}
	return t.Prefix(j) - t.Prefix(i)
}

// Total returns the sum of every size.
func (t *SizeTree) Total() int {
	return t.Prefix(len(t.sizes))
}

// Floor returns the largest p such that Prefix(p) <= offset, or -1 when
// offset is negative. For offset inside the tree this is the index whose
// span contains offset; Len() means offset is at or past the end.
func (t *SizeTree) Floor(offset int) int {
	if offset < 0 {
		return -1
	}
	pos, rem := 0, offset
	for step := t.step; step > 0; step >>= 1 {
		if next := pos + step; next < len(t.tree) && t.tree[next] <= rem {
			pos = next
			rem -= t.tree[next]
		}
	}
	return pos
}

// Insert splices a new entry at i, shifting later entries up.
func (t *SizeTree) Insert(i, size int) {
	if i < 0 {
		i = 0
	}
	if i > len(t.sizes) {
		i = len(t.sizes)
	}
	t.sizes = append(t.sizes, 0)
	copy(t.sizes[i+1:], t.sizes[i:])
	t.sizes[i] = size
	t.rebuild()
}

// Remove deletes the entry at i and returns its size.
func (t *SizeTree) Remove(i int) int {
	if i < 0 || i >= len(t.sizes) {
		return 0
	}
	size := t.sizes[i]
	t.sizes = append(t.sizes[:i], t.sizes[i+1:]...)
	t.rebuild()
	return size
}

// Values returns a copy of the raw sizes.
func (t *SizeTree) Values() []int {
	return append([]int(nil), t.sizes...)
}
