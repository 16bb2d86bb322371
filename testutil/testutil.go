package testutil

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/annostore/core"
)

// Span is a generated annotation span.
type Span struct {
	Begin int
	End   int
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Spans generates num spans inside [0, textLen] with lengths in [0, maxLen].
// Duplicates are likely for small texts, which is what tie-order tests want.
func (r *RNG) Spans(num, textLen, maxLen int) []Span {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Span, num)
	for i := range out {
		b := r.rand.Intn(textLen + 1)
		e := min(b+r.rand.Intn(maxLen+1), textLen)
		out[i] = Span{Begin: b, End: e}
	}
	return out
}

// Perm returns a shuffled copy of ids.
func (r *RNG) Perm(ids []core.TID) []core.TID {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := slices.Clone(ids)
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Inverse transform over the harmonic weights.
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}
	return n - 1
}

// ZipfTypes assigns one of typeCount types, numbered from 1, to each of num
// entries with a Zipfian skew.
func (r *RNG) ZipfTypes(num, typeCount int, s float64) []core.TypeID {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]core.TypeID, num)
	for i := range out {
		out[i] = core.TypeID(r.zipfLocked(typeCount, s) + 1)
	}
	return out
}

// SortSpans orders spans the way an annotation collection does: by begin,
// then end. The sort is stable so equal spans keep their generation order.
func SortSpans(spans []Span) []int {
	idx := make([]int, len(spans))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		if c := cmp.Compare(spans[a].Begin, spans[b].Begin); c != 0 {
			return c
		}
		return cmp.Compare(spans[a].End, spans[b].End)
	})
	return idx
}
