package sampling

import (
	"math/rand"
	"sync"
	"time"
)

/*
Source is the source of randomness used to shuffle and draw indices.
A *rand.Rand satisfies it.
*/
type Source interface {
	Float64() float64
	Perm(n int) []int
}

// Code below is an adaptation of https://github.com/nishanths/go-xkcd/blob/b5a58daa228c66d55ead5da14125567329173ca6/random.go

type lockedRandSource struct {
	lock sync.Mutex
	src  rand.Source
}

// defaultSource is the process-wide source used when a nil Source is given.
// It is seeded from the clock and safe for use by multiple goroutines.
var defaultSource Source = rand.New(&lockedRandSource{src: rand.NewSource(time.Now().UnixNano())})

/*
NewSource takes a seed and returns a Source whose sequence is fully
determined by it. The returned Source is not safe for concurrent use.
*/
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Default returns the process-wide Source
func Default() Source {
	return defaultSource
}

func orDefault(src Source) Source {
	if src == nil {
		return defaultSource
	}
	return src
}

// to satisfy rand.Source interface
func (r *lockedRandSource) Int63() int64 {
	r.lock.Lock()
	ret := r.src.Int63()
	r.lock.Unlock()
	return ret
}

// to satisfy rand.Source interface
func (r *lockedRandSource) Seed(seed int64) {
	r.lock.Lock()
	r.src.Seed(seed)
	r.lock.Unlock()
}
