package testutil

import (
	"math/rand"
	"sync"
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

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformValues returns n values in range [-1, 1).
func (r *RNG) UniformValues(n int) []float64 {
	vs := make([]float64, n)
	r.FillUniformRange(vs, -1, 1)
	return vs
}

// SparseValues returns n values of which each is non-zero with probability
// density. Non-zero values are in range [-1, 1) excluding 0.
func (r *RNG) SparseValues(n int, density float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	vs := make([]float64, n)
	for i := range vs {
		if r.rand.Float64() >= density {
			continue
		}
		for vs[i] == 0 {
			vs[i] = r.rand.Float64()*2 - 1
		}
	}
	return vs
}

// UniformMatrix returns rows x cols values in range [-1, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformMatrix(rows, cols int) [][]float64 {
	return split(r.UniformValues(rows*cols), rows, cols)
}

// SparseMatrix returns rows x cols values, each non-zero with probability
// density.
func (r *RNG) SparseMatrix(rows, cols int, density float64) [][]float64 {
	return split(r.SparseValues(rows*cols, density), rows, cols)
}

func split(data []float64, rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = data[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return m
}
