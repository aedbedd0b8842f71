/*
Package sampling generates the instance indices used to build ranged,
shuffled, split and bootstrapped views of a dataset.

Every function drawing random numbers takes a Source; passing nil uses the
process-wide default source.
*/
package sampling

import (
	"fmt"
	"math"
)

// Split holds two disjoint sets of indices
type Split struct {
	First  []int
	Second []int
}

/*
Interval is a right-open interval [Low, High) of float64 numbers
*/
type Interval struct {
	Low  float64
	High float64
}

// Contains returns whether x belongs to the interval
func (i Interval) Contains(x float64) bool {
	return x >= i.Low && x < i.High
}

// Empty returns whether no number belongs to the interval
func (i Interval) Empty() bool {
	return i.High <= i.Low
}

func (i Interval) String() string {
	return fmt.Sprintf("[%v, %v)", i.Low, i.High)
}

/*
Distribution is an ordered list of adjacent intervals, one per index,
whose widths are the probabilities of drawing each index.
*/
type Distribution []Interval

/*
NewDistribution takes a slice of normalized weights and returns the
distribution that lays them out in order as adjacent intervals starting at 0.
*/
func NewDistribution(weights []float64) Distribution {
	d := make(Distribution, len(weights))
	margin := 0.0
	for i, w := range weights {
		d[i] = Interval{Low: margin, High: margin + w}
		margin += w
	}
	return d
}

// Range returns the indices from, from+1, ... to-1
func Range(from, to int) []int {
	if to <= from {
		return []int{}
	}
	indices := make([]int, to-from)
	for i := range indices {
		indices[i] = from + i
	}
	return indices
}

// Shuffle returns a uniformly random permutation of [0, n)
func Shuffle(n int, src Source) []int {
	if n <= 0 {
		return []int{}
	}
	return orDefault(src).Perm(n)
}

/*
RandomSplit shuffles the indices [0, n) and splits them in two: the first
ceil(ratio*n) of them, clamped to [0, n], and the rest.
*/
func RandomSplit(ratio float64, n int, src Source) Split {
	indices := Shuffle(n, src)
	k := int(math.Ceil(ratio * float64(n)))
	if k > n {
		k = n
	}
	if k < 0 {
		k = 0
	}
	return Split{First: indices[:k:k], Second: indices[k:]}
}

/*
WeightedBootstrap draws len(d) indices with replacement, each index with a
probability equal to the width of its interval in the distribution. A draw
falling past the last interval, which only rounding can cause, resolves to
the last non-empty interval.
*/
func WeightedBootstrap(d Distribution, src Source) []int {
	src = orDefault(src)
	fallback := -1
	for j := len(d) - 1; j >= 0; j-- {
		if !d[j].Empty() {
			fallback = j
			break
		}
	}
	indices := make([]int, len(d))
	for i := range indices {
		draw := src.Float64()
		indices[i] = fallback
		for j, interval := range d {
			if interval.Contains(draw) {
				indices[i] = j
				break
			}
		}
	}
	return indices
}
