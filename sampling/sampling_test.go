package sampling

import (
	"math"
	"sort"
	"testing"
)

type fixedSource struct {
	draws []float64
	next  int
}

func (fs *fixedSource) Float64() float64 {
	d := fs.draws[fs.next%len(fs.draws)]
	fs.next++
	return d
}

func (fs *fixedSource) Perm(n int) []int {
	return Range(0, n)
}

func TestRange(t *testing.T) {
	r := Range(3, 7)
	expected := []int{3, 4, 5, 6}
	if len(r) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, r)
	}
	for i := range expected {
		if r[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, r)
			break
		}
	}
	if len(Range(5, 5)) != 0 || len(Range(5, 2)) != 0 {
		t.Errorf("expected empty ranges when to <= from")
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17, 100} {
		s := Shuffle(n, NewSource(int64(n)))
		if len(s) != n {
			t.Fatalf("expected %d indices, got %d", n, len(s))
		}
		sorted := append([]int{}, s...)
		sort.Ints(sorted)
		for i, v := range sorted {
			if v != i {
				t.Errorf("shuffle of %d is not a permutation: %v", n, s)
				break
			}
		}
	}
}

func TestShuffleIsReproducible(t *testing.T) {
	a := Shuffle(50, NewSource(42))
	b := Shuffle(50, NewSource(42))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shuffles with the same seed differ: %v and %v", a, b)
		}
	}
}

func TestRandomSplit(t *testing.T) {
	testCases := []struct {
		ratio          float64
		n              int
		expectedFirst  int
		expectedSecond int
	}{
		{0.5, 10, 5, 5},
		{0.66, 10, 7, 3},
		{0.1, 3, 1, 2},
		{0, 4, 0, 4},
		{1, 4, 4, 0},
		{1.5, 4, 4, 0},
		{-1, 4, 0, 4},
	}
	for _, tc := range testCases {
		split := RandomSplit(tc.ratio, tc.n, NewSource(1))
		if len(split.First) != tc.expectedFirst || len(split.Second) != tc.expectedSecond {
			t.Errorf("RandomSplit(%v, %d): expected %d/%d, got %d/%d", tc.ratio, tc.n, tc.expectedFirst, tc.expectedSecond, len(split.First), len(split.Second))
			continue
		}
		seen := make(map[int]bool)
		for _, i := range append(append([]int{}, split.First...), split.Second...) {
			if seen[i] {
				t.Errorf("index %d appears twice in split %v", i, split)
			}
			seen[i] = true
		}
		if len(seen) != tc.n {
			t.Errorf("split does not cover all %d indices: %v", tc.n, split)
		}
	}
}

func TestNewDistribution(t *testing.T) {
	d := NewDistribution([]float64{0.25, 0, 0.75})
	expected := []Interval{{0, 0.25}, {0.25, 0.25}, {0.25, 1}}
	for i, e := range expected {
		if d[i] != e {
			t.Errorf("expected interval %d to be %v, got %v", i, e, d[i])
		}
	}
	if !d[1].Empty() || d[0].Empty() {
		t.Errorf("unexpected emptiness of intervals %v", d)
	}
	if !d[0].Contains(0) || d[0].Contains(0.25) || !d[2].Contains(0.25) {
		t.Errorf("intervals are not right-open: %v", d)
	}
}

func TestWeightedBootstrap(t *testing.T) {
	d := NewDistribution([]float64{0.5, 0, 0.5})
	src := &fixedSource{draws: []float64{0.1, 0.5, 0.99}}
	indices := WeightedBootstrap(d, src)
	expected := []int{0, 2, 2}
	for i := range expected {
		if indices[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, indices)
		}
	}
}

func TestWeightedBootstrapPastLastInterval(t *testing.T) {
	// weights adding up to slightly less than 1
	d := NewDistribution([]float64{0.3, 0.3, 0.3999999, 0})
	src := &fixedSource{draws: []float64{0.99999999}}
	indices := WeightedBootstrap(d, src)
	for _, i := range indices {
		if i != 2 {
			t.Fatalf("expected draws past the last interval to resolve to 2, got %v", indices)
		}
	}
}

func TestWeightedBootstrapFollowsWeights(t *testing.T) {
	d := NewDistribution([]float64{0.9, 0.1})
	src := NewSource(7)
	var zeros, total int
	for i := 0; i < 200; i++ {
		for _, idx := range WeightedBootstrap(d, src) {
			if idx == 0 {
				zeros++
			}
			total++
		}
	}
	ratio := float64(zeros) / float64(total)
	if math.Abs(ratio-0.9) > 0.05 {
		t.Errorf("expected about 90%% of draws to be index 0, got %v", ratio)
	}
}

func TestNilSourceUsesDefault(t *testing.T) {
	if len(Shuffle(10, nil)) != 10 {
		t.Errorf("expected a shuffle with the default source")
	}
	if Default() == nil {
		t.Errorf("expected a default source")
	}
}
