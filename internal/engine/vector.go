package engine

import (
	"math"
	"sort"
)

// SparseVector is an L2-normalized term-index → weight vector stored as
// parallel slices sorted by term index. The zero value is the zero vector,
// whose similarity to anything is 0.
type SparseVector struct {
	indices []int
	weights []float64
}

// newSparseVector builds a normalized sparse vector from raw weights.
// An empty map yields the zero vector; normalization never divides by zero.
func newSparseVector(raw map[int]float64) SparseVector {
	if len(raw) == 0 {
		return SparseVector{}
	}

	indices := make([]int, 0, len(raw))
	for idx := range raw {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	weights := make([]float64, len(indices))
	var sum float64
	for i, idx := range indices {
		w := raw[idx]
		weights[i] = w
		sum += w * w
	}

	if norm := math.Sqrt(sum); norm > 0 {
		for i := range weights {
			weights[i] /= norm
		}
	}
	return SparseVector{indices: indices, weights: weights}
}

// IsZero reports whether the vector has no components.
func (v SparseVector) IsZero() bool { return len(v.indices) == 0 }

// Dot returns the dot product over shared term indices via a sorted merge
// walk. For two L2-normalized vectors this is their cosine similarity; with
// non-negative weights the result lies in [0, 1].
func (v SparseVector) Dot(o SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.indices) && j < len(o.indices) {
		switch {
		case v.indices[i] == o.indices[j]:
			sum += v.weights[i] * o.weights[j]
			i++
			j++
		case v.indices[i] < o.indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}
