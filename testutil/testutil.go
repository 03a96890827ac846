package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/featmat/dfm"
)

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
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Intn returns, as an int, a pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FeatLabel returns the deterministic label RandomDFM assigns to feature j.
func FeatLabel(j int) string {
	return fmt.Sprintf("feat%05d", j)
}

// DocID returns the deterministic identifier RandomDFM assigns to document i.
func DocID(i int) string {
	return fmt.Sprintf("doc%04d", i)
}

// RandomDFM builds a matrix with nDoc documents and nFeat features, where
// each cell is nonzero with probability density and holds a count in
// [1, 10]. Labels come from FeatLabel/DocID so tests can address them.
// Every feature appears in at least document 0, keeping the vocabulary
// size exact.
func RandomDFM(rng *RNG, nDoc, nFeat int, density float64) *dfm.DFM {
	b := dfm.NewBuilder()
	for i := 0; i < nDoc; i++ {
		counts := make(map[string]float64)
		for j := 0; j < nFeat; j++ {
			if i == 0 || rng.Float64() < density {
				counts[FeatLabel(j)] = float64(1 + rng.Intn(10))
			}
		}
		b.Document(DocID(i), counts)
	}
	m, err := b.Build()
	if err != nil {
		panic(fmt.Errorf("testutil: random matrix build failed: %w", err))
	}
	return m
}
