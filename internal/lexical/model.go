// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package lexical provides a frozen TF-IDF vectorizer for free-text movie queries.
//
// A Model is fitted offline (see Fit) and loaded from a JSON artifact. Transform
// never mutates the model, so one Model can serve concurrent requests.
package lexical

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/catalog"
)

// Norm names the normalization applied to transformed vectors.
const (
	NormL2   = "l2"
	NormNone = "none"
)

// Spec is the on-disk representation of a fitted model.
type Spec struct {
	// Vocabulary maps each term (or space-joined n-gram) to its column.
	Vocabulary map[string]int `json:"vocabulary"`

	// IDF holds one inverse document frequency weight per column.
	IDF []float64 `json:"idf"`

	// Lowercase folds text before tokenizing. Defaults to true when omitted.
	Lowercase *bool `json:"lowercase,omitempty"`

	// StopWords are dropped after tokenizing.
	StopWords []string `json:"stop_words,omitempty"`

	// NGramRange is the inclusive [min, max] n-gram size. Defaults to [1, 1].
	NGramRange [2]int `json:"ngram_range"`

	// Norm is "l2" (default) or "none".
	Norm string `json:"norm,omitempty"`

	// SublinearTF replaces tf with 1 + ln(tf).
	SublinearTF bool `json:"sublinear_tf,omitempty"`
}

// Model is a validated, immutable TF-IDF vectorizer.
type Model struct {
	vocabulary  map[string]int
	idf         []float64
	lowercase   bool
	stopWords   map[string]struct{}
	minN, maxN  int
	l2          bool
	sublinearTF bool
}

// New validates spec and builds a model. Invalid specs return catalog.ErrMalformedArtifact.
func New(spec *Spec) (*Model, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: empty vectorizer", catalog.ErrMalformedArtifact)
	}
	if len(spec.IDF) == 0 {
		return nil, fmt.Errorf("%w: vectorizer has no idf weights", catalog.ErrMalformedArtifact)
	}

	for i, w := range spec.IDF {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: idf[%d] is not finite", catalog.ErrMalformedArtifact, i)
		}
	}

	vocab := make(map[string]int, len(spec.Vocabulary))
	for term, col := range spec.Vocabulary {
		if col < 0 || col >= len(spec.IDF) {
			return nil, fmt.Errorf("%w: term %q maps to column %d outside [0, %d)",
				catalog.ErrMalformedArtifact, term, col, len(spec.IDF))
		}
		vocab[term] = col
	}

	minN, maxN := spec.NGramRange[0], spec.NGramRange[1]
	if minN == 0 && maxN == 0 {
		minN, maxN = 1, 1
	}
	if minN < 1 || maxN < minN {
		return nil, fmt.Errorf("%w: invalid ngram range [%d, %d]", catalog.ErrMalformedArtifact, minN, maxN)
	}

	var l2 bool
	switch strings.ToLower(spec.Norm) {
	case "", NormL2:
		l2 = true
	case NormNone:
		l2 = false
	default:
		return nil, fmt.Errorf("%w: unknown norm %q", catalog.ErrMalformedArtifact, spec.Norm)
	}

	lowercase := true
	if spec.Lowercase != nil {
		lowercase = *spec.Lowercase
	}

	stop := make(map[string]struct{}, len(spec.StopWords))
	for _, w := range spec.StopWords {
		if lowercase {
			w = strings.ToLower(w)
		}
		stop[w] = struct{}{}
	}

	idf := make([]float64, len(spec.IDF))
	copy(idf, spec.IDF)

	return &Model{
		vocabulary:  vocab,
		idf:         idf,
		lowercase:   lowercase,
		stopWords:   stop,
		minN:        minN,
		maxN:        maxN,
		l2:          l2,
		sublinearTF: spec.SublinearTF,
	}, nil
}

// Parse decodes a JSON model artifact.
func Parse(data []byte) (*Model, error) {
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: decode vectorizer: %v", catalog.ErrMalformedArtifact, err)
	}
	return New(&spec)
}

// Load reads and parses a JSON model artifact from path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("%w: read vectorizer %s: %v", catalog.ErrMalformedArtifact, path, err)
	}
	return Parse(data)
}

// Save writes the model as a JSON artifact readable by Load.
func (m *Model) Save(path string) error {
	data, err := json.Marshal(m.Spec())
	if err != nil {
		return fmt.Errorf("encode vectorizer: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write vectorizer %s: %w", path, err)
	}
	return nil
}

// Dimension returns the length of transformed vectors.
func (m *Model) Dimension() int {
	return len(m.idf)
}

// VocabularySize returns the number of known terms.
func (m *Model) VocabularySize() int {
	return len(m.vocabulary)
}

// Transform returns the TF-IDF vector for text. Text with no known terms yields
// the zero vector.
func (m *Model) Transform(text string) []float64 {
	vec := make([]float64, len(m.idf))

	for _, term := range m.analyze(text) {
		if col, ok := m.vocabulary[term]; ok {
			vec[col]++
		}
	}

	var sumSq float64
	for i, tf := range vec {
		if tf == 0 {
			continue
		}
		if m.sublinearTF {
			tf = 1 + math.Log(tf)
		}
		vec[i] = tf * m.idf[i]
		sumSq += vec[i] * vec[i]
	}

	if m.l2 && sumSq > 0 {
		norm := math.Sqrt(sumSq)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec
}

// Spec returns the serializable form of the model.
func (m *Model) Spec() *Spec {
	vocab := make(map[string]int, len(m.vocabulary))
	for term, col := range m.vocabulary {
		vocab[term] = col
	}
	idf := make([]float64, len(m.idf))
	copy(idf, m.idf)

	stop := make([]string, 0, len(m.stopWords))
	for w := range m.stopWords {
		stop = append(stop, w)
	}

	lowercase := m.lowercase
	norm := NormNone
	if m.l2 {
		norm = NormL2
	}

	return &Spec{
		Vocabulary:  vocab,
		IDF:         idf,
		Lowercase:   &lowercase,
		StopWords:   sortedStrings(stop),
		NGramRange:  [2]int{m.minN, m.maxN},
		Norm:        norm,
		SublinearTF: m.sublinearTF,
	}
}

// analyze turns text into the terms that are counted against the vocabulary.
func (m *Model) analyze(text string) []string {
	if m.lowercase {
		text = strings.ToLower(text)
	}
	return ngrams(filterStopWords(tokenize(text), m.stopWords), m.minN, m.maxN)
}
