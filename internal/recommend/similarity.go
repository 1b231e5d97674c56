// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tomtom215/cinematch/internal/catalog"
)

// NoExclude is passed to Rank when the query did not come from a catalog entry.
const NoExclude = -1

// ErrDimensionMismatch is returned when a query vector does not match the catalog dimension.
var ErrDimensionMismatch = errors.New("query dimension does not match catalog")

// Norm returns the Euclidean norm of v. See catalog.VectorNorm.
func Norm(v []float64) float64 {
	return catalog.VectorNorm(v)
}

// Cosine returns the cosine similarity of a and b given their precomputed norms.
// The second return value is false when either norm is zero or not finite (or the
// result is not a number), in which case the similarity is -Inf.
//
// Each component is divided by its norm before multiplying, so the sum stays
// within [-1, 1] for any finite input.
func Cosine(a, b []float64, normA, normB float64) (float64, bool) {
	if normA == 0 || normB == 0 || math.IsInf(normA, 0) || math.IsInf(normB, 0) {
		return math.Inf(-1), false
	}

	var sim float64
	for i := range a {
		sim += (a[i] / normA) * (b[i] / normB)
	}

	if math.IsNaN(sim) {
		return math.Inf(-1), false
	}
	return sim, true
}

// Rank scores every catalog entry against query and returns the top k matches by
// descending cosine similarity. Ties keep catalog order. The entry at index
// exclude is skipped; pass NoExclude to rank the whole catalog.
//
// k <= 0 and an empty catalog both yield an empty, non-nil result. When fewer than
// k entries remain all of them are returned.
func Rank(cat *catalog.Catalog, query []float64, exclude, k int) ([]Match, error) {
	if k <= 0 || cat.Len() == 0 {
		return []Match{}, nil
	}
	if len(query) != cat.Dimension() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(query), cat.Dimension())
	}

	queryNorm := Norm(query)
	matches := make([]Match, 0, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		if i == exclude {
			continue
		}
		score, ok := Cosine(cat.Vector(i), query, cat.Norm(i), queryNorm)
		matches = append(matches, Match{Index: i, Score: score, Degenerate: !ok})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}
