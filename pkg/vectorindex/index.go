package vectorindex

import (
	"errors"
	"math"
	"sort"
)

// Index is an owned, per-document nearest-neighbor index: one
// L2-normalized embedding per chunk, associated by position. It is
// rebuilt from scratch whenever the document changes, never updated.
type Index struct {
	vectors [][]float32
	chunks  []string
}

// Result is one retrieved chunk with its cosine distance to the query
// (lower = closer). Produced per query, never stored.
type Result struct {
	Chunk    string
	Distance float32
	Position int
}

var ErrLengthMismatch = errors.New("embeddings and chunks length mismatch")

// Build constructs an index from parallel embedding/chunk slices.
// Empty input yields a nil index, meaning "no retrievable content".
func Build(embeddings [][]float32, chunks []string) (*Index, error) {
	if len(embeddings) != len(chunks) {
		return nil, ErrLengthMismatch
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	vectors := make([][]float32, len(embeddings))
	for i, emb := range embeddings {
		vectors[i] = normalize(emb)
	}

	return &Index{vectors: vectors, chunks: chunks}, nil
}

// Len returns the number of stored vectors. Safe on a nil index.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.vectors)
}

// Query returns up to k results ordered by ascending cosine distance,
// ties broken by the earlier chunk position. A nil index or k <= 0
// yields an empty result, never an error.
func (ix *Index) Query(queryEmbedding []float32, k int) []Result {
	if ix == nil || k <= 0 || len(queryEmbedding) == 0 {
		return nil
	}

	q := normalize(queryEmbedding)

	// Vectors are unit length, so cosine distance reduces to 1 - dot.
	results := make([]Result, len(ix.vectors))
	for i, v := range ix.vectors {
		results[i] = Result{
			Chunk:    ix.chunks[i],
			Distance: 1 - dot(v, q),
			Position: i,
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Distance != results[b].Distance {
			return results[a].Distance < results[b].Distance
		}
		return results[a].Position < results[b].Position
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k]
}

func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// normalize scales a vector to unit length. Required for the cosine
// distance above to be a plain dot product.
func normalize(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)
	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
