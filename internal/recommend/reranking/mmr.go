// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package reranking

import (
	"context"
	"math"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// maxRerankSize limits slice allocations to prevent excessive memory usage.
const maxRerankSize = 10000

// MMR implements Maximal Marginal Relevance reranking.
// It balances relevance and diversity by iteratively selecting items
// that are both relevant and dissimilar to already selected items.
//
// The MMR formula is:
//
//	MMR = argmax[lambda * score(i) - (1-lambda) * max(sim(i, s)) for s in selected]
//
// Where:
//   - lambda: balance parameter (1.0 = pure relevance, 0.0 = pure diversity)
//   - score(i): cosine similarity of candidate i to the query
//   - sim(i, s): cosine similarity between the vectors of candidates i and s
//
// Reference:
// Carbonell, J., & Goldstein, J. (1998). "The Use of MMR, Diversity-Based
// Reranking for Reordering Documents and Producing Summaries." SIGIR 1998.
type MMR struct{}

// NewMMR creates a new MMR reranker.
func NewMMR() *MMR {
	return &MMR{}
}

// Name returns the reranker identifier.
func (m *MMR) Name() string {
	return "mmr"
}

// Rerank applies MMR to the candidate pool and returns at most k matches.
// Degenerate candidates are only chosen once every scored candidate is taken.
func (m *MMR) Rerank(ctx context.Context, cat *catalog.Catalog, items []recommend.Match, k int, lambda float64) []recommend.Match {
	if len(items) == 0 || k <= 0 {
		return []recommend.Match{}
	}

	if k > maxRerankSize {
		k = maxRerankSize
	}
	if k > len(items) {
		k = len(items)
	}
	lambda = clamp(lambda)

	// Pure relevance is the input order.
	if lambda >= 1.0 {
		out := make([]recommend.Match, k)
		copy(out, items[:k])
		return out
	}

	similarities := buildSimilarityMatrix(cat, items)

	selected := make([]recommend.Match, 0, k)
	selectedIndices := make([]int, 0, k)
	taken := make([]bool, len(items))

	for len(selected) < k {
		if ctx.Err() != nil {
			break
		}

		bestIdx := -1
		bestMMR := math.Inf(-1)

		for i, item := range items {
			if taken[i] {
				continue
			}

			mmrScore := math.Inf(-1)
			if !item.Degenerate {
				maxSim := 0.0
				for _, j := range selectedIndices {
					if sim := similarities[i][j]; sim > maxSim {
						maxSim = sim
					}
				}
				mmrScore = lambda*item.Score - (1-lambda)*maxSim
			}

			if bestIdx < 0 || mmrScore > bestMMR {
				bestMMR = mmrScore
				bestIdx = i
			}
		}

		if bestIdx < 0 {
			break
		}

		selected = append(selected, items[bestIdx])
		selectedIndices = append(selectedIndices, bestIdx)
		taken[bestIdx] = true
	}

	// A cancelled context still yields k items, filled in relevance order.
	for i := 0; len(selected) < k && i < len(items); i++ {
		if !taken[i] {
			selected = append(selected, items[i])
			taken[i] = true
		}
	}

	return selected
}

// buildSimilarityMatrix computes pairwise cosine similarity between candidate vectors.
// Pairs involving a zero vector count as unrelated.
func buildSimilarityMatrix(cat *catalog.Catalog, items []recommend.Match) [][]float64 {
	n := len(items)
	similarities := make([][]float64, n)
	for i := range similarities {
		similarities[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		a := items[i].Index
		for j := i + 1; j < n; j++ {
			b := items[j].Index
			sim, ok := recommend.Cosine(cat.Vector(a), cat.Vector(b), cat.Norm(a), cat.Norm(b))
			if !ok {
				sim = 0
			}
			similarities[i][j] = sim
			similarities[j][i] = sim
		}
	}

	return similarities
}

func clamp(lambda float64) float64 {
	if lambda < 0 || math.IsNaN(lambda) {
		return 0
	}
	if lambda > 1 {
		return 1
	}
	return lambda
}

// Ensure MMR implements the interface.
var _ recommend.Reranker = (*MMR)(nil)
