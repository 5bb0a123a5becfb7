package mathx

import (
	"math"
	"math/rand/v2"
	"sync"
)

var (
	sharedMu  sync.Mutex
	sharedRnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
)

// Seed reseeds the shared source used when a nil *rand.Rand is passed.
func Seed(seed uint64) {
	sharedMu.Lock()
	sharedRnd = NewRand(seed)
	sharedMu.Unlock()
}

// NewRand returns a deterministic generator for the given seed.
// Two generators with the same seed produce the same sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// use runs fn with r, or with the shared source under its lock when r is nil.
func use(r *rand.Rand, fn func(*rand.Rand)) {
	if r != nil {
		fn(r)
		return
	}
	sharedMu.Lock()
	defer sharedMu.Unlock()
	fn(sharedRnd)
}

// Random returns a uniformly distributed value in [lo, hi).
// Bounds given in reverse order are swapped.
func Random(r *rand.Rand, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	var f float64
	use(r, func(r *rand.Rand) { f = r.Float64() })
	span := hi - lo
	if math.IsInf(span, 0) {
		// Work in halves so bounds near ±MaxFloat64 stay finite.
		v := 2 * (lo/2 + f*(hi/2-lo/2))
		return min(max(v, lo), hi)
	}
	return lo + f*span
}

// RandomInt returns a uniformly distributed integer in [lo, hi].
// Bounds given in reverse order are swapped.
func RandomInt(r *rand.Rand, lo, hi int64) int64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	n := hi - lo + 1
	if n <= 0 {
		// Span overflowed int64; fall back to rejection over the full range.
		var v int64
		use(r, func(r *rand.Rand) {
			for {
				v = int64(r.Uint64())
				if v >= lo && v <= hi {
					return
				}
			}
		})
		return v
	}
	var v int64
	use(r, func(r *rand.Rand) { v = r.Int64N(n) })
	return lo + v
}

// RandomUint64 returns a uniformly distributed integer in [lo, hi].
// Bounds given in reverse order are swapped.
func RandomUint64(r *rand.Rand, lo, hi uint64) uint64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	var v uint64
	use(r, func(r *rand.Rand) {
		if span := hi - lo; span == math.MaxUint64 {
			v = r.Uint64()
		} else {
			v = r.Uint64N(span + 1)
		}
	})
	return lo + v
}

// Gaussian returns a normally distributed value with the given mean and
// standard deviation.
func Gaussian(r *rand.Rand, mean, sd float64) float64 {
	var f float64
	use(r, func(r *rand.Rand) { f = r.NormFloat64() })
	return mean + f*sd
}

// Jitter offsets v by a uniform amount in [-amount, amount).
func Jitter(r *rand.Rand, v, amount float64) float64 {
	return v + Random(r, -amount, amount)
}

// Chance returns true with probability p.
func Chance(r *rand.Rand, p float64) bool {
	return Random(r, 0, 1) < p
}

// Choose returns a uniformly chosen element of s.
// ok is false when s is empty.
func Choose[T any](r *rand.Rand, s []T) (v T, ok bool) {
	if len(s) == 0 {
		return v, false
	}
	var i int
	use(r, func(r *rand.Rand) { i = r.IntN(len(s)) })
	return s[i], true
}

// Shuffle randomizes the order of s in place.
func Shuffle[T any](r *rand.Rand, s []T) {
	use(r, func(r *rand.Rand) {
		r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
	})
}
