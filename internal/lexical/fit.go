// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package lexical

import (
	"errors"
	"math"
	"sort"

	"github.com/tomtom215/cinematch/internal/catalog"
)

// ErrEmptyCorpus is returned by Fit when no document contributes a term.
var ErrEmptyCorpus = errors.New("corpus produced an empty vocabulary")

// FitOptions controls offline model fitting.
type FitOptions struct {
	Lowercase   bool
	StopWords   []string
	NGramRange  [2]int
	MaxFeatures int
	SublinearTF bool
	Norm        string
}

// DefaultFitOptions returns lowercase unigram options with l2 normalization.
func DefaultFitOptions() FitOptions {
	return FitOptions{
		Lowercase:  true,
		NGramRange: [2]int{1, 1},
		Norm:       NormL2,
	}
}

// Fit builds a model from a corpus using smoothed idf:
//
//	idf(t) = ln((1 + n) / (1 + df(t))) + 1
//
// Columns are assigned in lexical term order, so fitting the same corpus twice
// yields an identical model. With MaxFeatures > 0 only the most frequent terms
// across the corpus are kept, ties broken by term order.
//
//nolint:gocritic // hugeParam: opts passed by value for immutability
func Fit(docs []string, opts FitOptions) (*Model, error) {
	lowercase := opts.Lowercase
	analyzer, err := New(&Spec{
		IDF:         []float64{1},
		Lowercase:   &lowercase,
		StopWords:   opts.StopWords,
		NGramRange:  opts.NGramRange,
		Norm:        opts.Norm,
		SublinearTF: opts.SublinearTF,
	})
	if err != nil {
		return nil, err
	}

	df := make(map[string]int)
	total := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range analyzer.analyze(doc) {
			total[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				df[term]++
			}
		}
	}
	if len(df) == 0 {
		return nil, ErrEmptyCorpus
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	if opts.MaxFeatures > 0 && len(terms) > opts.MaxFeatures {
		sort.SliceStable(terms, func(i, j int) bool {
			return total[terms[i]] > total[terms[j]]
		})
		terms = terms[:opts.MaxFeatures]
		sort.Strings(terms)
	}

	n := float64(len(docs))
	vocab := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for col, term := range terms {
		vocab[term] = col
		idf[col] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	spec := analyzer.Spec()
	spec.Vocabulary = vocab
	spec.IDF = idf
	return New(spec)
}

// FitCatalog fits a model on the catalog overviews and returns a copy of the
// catalog whose vectors are the overviews transformed by that model. Entries
// without an overview get the zero vector.
//
//nolint:gocritic // hugeParam: opts passed by value for immutability
func FitCatalog(cat *catalog.Catalog, opts FitOptions) (*catalog.Catalog, *Model, error) {
	entries := cat.Entries()
	docs := make([]string, len(entries))
	for i := range entries {
		docs[i] = entries[i].Overview
	}

	model, err := Fit(docs, opts)
	if err != nil {
		return nil, nil, err
	}

	for i := range entries {
		entries[i].Vector = model.Transform(entries[i].Overview)
	}
	fitted, err := catalog.New(entries)
	if err != nil {
		return nil, nil, err
	}
	return fitted, model, nil
}
