// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package reranking implements post-processing algorithms for recommendation diversity.
//
// Rerankers operate on an already-ranked candidate pool and reorder it to balance
// relevance against other objectives:
//
//	Rank (cosine) -> candidate pool -> Reranker -> top k
//
// # Maximal Marginal Relevance (MMR)
//
//   - Balances relevance with diversity
//   - Penalizes candidates whose vectors are close to already-selected ones
//   - Lambda controls the tradeoff (1.0 = pure relevance, 0.0 = pure diversity)
//
// # Usage Example
//
//	engine, err := recommend.NewEngine(cat, cfg, logger,
//	    recommend.WithReranker(reranking.NewMMR()),
//	)
//
//	// Diversity 0.3 reranks with lambda 0.7.
//	resp, err := engine.Similar(ctx, recommend.Request{Title: "Heat", K: 10, Diversity: 0.3})
//
// # Determinism
//
// Selection is greedy and breaks ties by pool order, so identical inputs always
// produce identical output.
package reranking
