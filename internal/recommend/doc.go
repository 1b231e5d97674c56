// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend implements "more like this" lookups over an immutable movie catalog.
//
// # Ranking
//
// Every catalog vector is compared to the query vector with cosine similarity:
//
//	sim(v, q) = dot(v, q) / (||v|| * ||q||)
//
// A zero-norm query or entry has no direction, so the pair scores -Inf and sorts
// after every finite score instead of producing NaN. Entries are stably sorted by
// descending score, which keeps catalog order among ties and makes repeated
// lookups return identical results. When the query came from a catalog entry that
// entry is excluded by index, so duplicate titles elsewhere in the catalog are
// still recommended.
//
// # Queries
//
// Engine.Similar resolves a title to a catalog entry and ranks its neighbours.
// Engine.SimilarToText turns free text into a vector with a frozen Vectorizer
// (the lexical TF-IDF model) and ranks the whole catalog against it.
//
// # Diversity
//
// An optional Reranker (see the reranking subpackage) can reorder a candidate
// pool larger than k. With diversity disabled the result is exactly the plain
// ranking.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cat, recommend.DefaultConfig(), logger,
//	    recommend.WithVectorizer(model),
//	    recommend.WithReranker(reranking.NewMMR()),
//	)
//
//	resp, err := engine.Similar(ctx, recommend.Request{Title: "Heat", K: 15})
//
// # Thread Safety
//
// The engine holds no mutable state besides atomic counters and is safe for
// concurrent use.
package recommend
