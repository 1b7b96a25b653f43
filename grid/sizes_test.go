package grid

import "testing"

func naivePrefix(sizes []int, i int) int {
	sum := 0
	for j := 0; j < i && j < len(sizes); j++ {
		sum += sizes[j]
	}
	return sum
}

func TestSizeTreePrefixMatchesLinearSum(t *testing.T) {
	sizes := []int{50, 64, 10, 0, 30, 64, 7, 100, 1}
	tree := NewSizeTreeFrom(sizes)

	for i := 0; i <= len(sizes)+2; i++ {
		if got, want := tree.Prefix(i), naivePrefix(sizes, i); got != want {
			t.Errorf("Prefix(%d) = %d, want %d", i, got, want)
		}
	}
	if got, want := tree.Total(), naivePrefix(sizes, len(sizes)); got != want {
		t.Errorf("Total() = %d, want %d", got, want)
	}
}

func TestSizeTreeSetUpdatesSums(t *testing.T) {
	tree := NewSizeTree(10, 20)
	tree.Set(3, 45)
	tree.Set(9, 5)
	tree.Set(20, 99) // ignored
	tree.Set(2, -1)  // ignored

	if got := tree.Get(3); got != 45 {
		t.Errorf("Get(3) = %d, want 45", got)
	}
	if got := tree.Sum(3, 4); got != 45 {
		t.Errorf("Sum(3,4) = %d, want 45", got)
	}
	if got, want := tree.Total(), 8*20+45+5; got != want {
		t.Errorf("Total() = %d, want %d", got, want)
	}
}

func TestSizeTreeFloor(t *testing.T) {
	tree := NewSizeTreeFrom([]int{10, 20, 30})

	tests := []struct {
		offset int
		want   int
	}{
		{-1, -1},
		{0, 0},
		{9, 0},
		{10, 1},
		{29, 1},
		{30, 2},
		{59, 2},
		{60, 3},
		{1000, 3},
	}
	for _, tt := range tests {
		if got := tree.Floor(tt.offset); got != tt.want {
			t.Errorf("Floor(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestSizeTreeFloorLargeTree(t *testing.T) {
	tree := NewSizeTree(100000, 20)
	if got := tree.Floor(20*54321 + 7); got != 54321 {
		t.Errorf("Floor = %d, want 54321", got)
	}
}

func TestSizeTreeInsertRemove(t *testing.T) {
	tree := NewSizeTreeFrom([]int{1, 2, 3})
	tree.Insert(1, 9)
	if got := tree.Values(); len(got) != 4 || got[1] != 9 || got[2] != 2 {
		t.Fatalf("after Insert values = %v", got)
	}
	if got := tree.Prefix(2); got != 10 {
		t.Errorf("Prefix(2) = %d, want 10", got)
	}

	if removed := tree.Remove(1); removed != 9 {
		t.Errorf("Remove(1) = %d, want 9", removed)
	}
	if got := tree.Total(); got != 6 {
		t.Errorf("Total() = %d, want 6", got)
	}
	if removed := tree.Remove(7); removed != 0 {
		t.Errorf("Remove out of range = %d, want 0", removed)
	}
}
