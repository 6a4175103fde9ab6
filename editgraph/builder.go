package editgraph

import (
	"fmt"
	"math/rand"
)

// Parameter minima and bounds for the instance constructors (no magic numbers).
const (
	minInstanceNodes = 1
	minDensity       = 0.0
	maxDensity       = 1.0
)

// NewComplete builds the complete instance K_n with every pair set to the
// uniform weight w. With w > 0 this is the canonical "already a clique"
// instance; with w < 0 the canonical "all singletons" instance.
//
// Returns ErrBadVertexCount if n < 1.
//
// Determinism: pairs are emitted lexicographically by (i, j), i < j.
//
// Complexity: O(n²).
func NewComplete(n int, w float64) (*Graph, error) {
	// 1) K_n is defined for n ≥ 1.
	if n < minInstanceNodes {
		return nil, fmt.Errorf("%w: NewComplete needs n ≥ %d, got %d", ErrBadVertexCount, minInstanceNodes, n)
	}

	// 2) Allocate the vertex range.
	g, err := New(n)
	if err != nil {
		return nil, err
	}

	// 3) Emit each unordered pair exactly once in stable order.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = g.SetWeight(i, j, w); err != nil {
				return nil, fmt.Errorf("NewComplete: SetWeight(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}

// NewFromPairs builds an instance over n vertices from explicit weighted
// pairs. Later rows overwrite earlier rows for the same unordered pair.
//
// Returns ErrBadVertexCount for n < 0 and propagates ErrVertexOutOfRange /
// ErrSelfPair for invalid rows.
//
// Complexity: O(n + len(pairs)).
func NewFromPairs(n int, pairs []WeightedPair) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	var p WeightedPair
	for _, p = range pairs {
		if err = g.SetWeight(p.U, p.V, p.W); err != nil {
			return nil, fmt.Errorf("NewFromPairs: pair (%d,%d): %w", p.U, p.V, err)
		}
	}

	return g, nil
}

// NewRandom builds a reproducible random instance: each unordered pair is
// present with probability density and receives a weight drawn uniformly
// from [-1, 1). The same (n, density, seed) triple always yields the same
// instance, which is what benchmarks and determinism tests rely on.
//
// Returns ErrBadVertexCount if n < 1 and an error if density ∉ [0, 1].
//
// Complexity: O(n²).
func NewRandom(n int, density float64, seed int64) (*Graph, error) {
	// 1) Validate parameters eagerly.
	if n < minInstanceNodes {
		return nil, fmt.Errorf("%w: NewRandom needs n ≥ %d, got %d", ErrBadVertexCount, minInstanceNodes, n)
	}
	if density < minDensity || density > maxDensity {
		return nil, fmt.Errorf("editgraph: NewRandom density must be in [%g,%g], got %g", minDensity, maxDensity, density)
	}

	// 2) Allocate the vertex range and a private deterministic RNG.
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))

	// 3) Draw pairs in stable lexicographic order so the RNG stream maps to
	//    the same pairs on every run.
	const weightSpan = 2.0 // weights drawn from [-1, 1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() >= density {
				continue
			}
			w := rng.Float64()*weightSpan - weightSpan/2
			if err = g.SetWeight(i, j, w); err != nil {
				return nil, fmt.Errorf("NewRandom: SetWeight(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}
