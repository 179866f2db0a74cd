// Package simulate derives reproducible sensor readings and business context
// from content-hash seeds. Every seeded draw uses its own PRNG instance, so
// there is no shared generator state and concurrent requests cannot interfere.
package simulate

import (
	"crypto/md5"
	"encoding/binary"
	"errors"
	"math"
	"math/rand"
	"strings"
)

// ErrInvalidSKU is returned when a milk simulation is requested for a SKU
// outside the supported set.
var ErrInvalidSKU = errors.New("invalid sku")

// SeedFrom hashes the concatenation of the parts into a 32-bit seed and
// returns a dedicated generator. The PRNG is math/rand's Go 1 source, which is
// stable across Go releases; identical parts therefore always yield the
// identical draw sequence within this implementation.
func SeedFrom(parts ...string) *rand.Rand {
	sum := md5.Sum([]byte(strings.Join(parts, "")))
	seed := binary.BigEndian.Uint32(sum[:4])
	return rand.New(rand.NewSource(int64(seed)))
}

// uniform draws a float in [lo, hi).
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// randInt draws an int in [lo, hi], both bounds inclusive.
func randInt(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
