// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package catalog holds the immutable movie catalog that similarity lookups run against.
//
// A Catalog is built once from a vector store artifact and is never mutated afterwards,
// so it can be shared across goroutines without synchronization. Title lookups are
// case-insensitive and ignore surrounding whitespace; when several entries fold to the
// same title the first one in catalog order wins.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNotFound is returned when a title does not resolve to a catalog entry.
	ErrNotFound = errors.New("title not found in catalog")

	// ErrMalformedArtifact is returned when catalog data is inconsistent or cannot be loaded.
	ErrMalformedArtifact = errors.New("malformed artifact")
)

// Entry is a single movie in the catalog.
type Entry struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Overview string    `json:"overview,omitempty"`
	Vector   []float64 `json:"vector"`
}

// Catalog is an ordered, read-only collection of entries sharing one vector dimension.
type Catalog struct {
	entries   []Entry
	norms     []float64
	byTitle   map[string]int
	dimension int
}

// New validates entries and builds a catalog. The entries and their vectors are copied.
// All vectors must have the same non-zero dimension and contain only finite values.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		norms:   make([]float64, len(entries)),
		byTitle: make(map[string]int, len(entries)),
	}

	for i := range entries {
		e := entries[i]
		if len(e.Vector) == 0 {
			return nil, fmt.Errorf("%w: entry %d (%q) has no vector", ErrMalformedArtifact, i, e.Title)
		}
		if i == 0 {
			c.dimension = len(e.Vector)
		} else if len(e.Vector) != c.dimension {
			return nil, fmt.Errorf("%w: entry %d (%q) has dimension %d, want %d",
				ErrMalformedArtifact, i, e.Title, len(e.Vector), c.dimension)
		}

		for j, v := range e.Vector {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: entry %d (%q) has non-finite value at %d",
					ErrMalformedArtifact, i, e.Title, j)
			}
		}
		norm := VectorNorm(e.Vector)
		if math.IsInf(norm, 0) {
			return nil, fmt.Errorf("%w: entry %d (%q) has a norm beyond float64 range",
				ErrMalformedArtifact, i, e.Title)
		}

		vec := make([]float64, len(e.Vector))
		copy(vec, e.Vector)
		e.Vector = vec
		if e.ID == "" {
			e.ID = strconv.Itoa(i)
		}

		c.entries[i] = e
		c.norms[i] = norm

		key := NormalizeTitle(e.Title)
		if _, exists := c.byTitle[key]; !exists && key != "" {
			c.byTitle[key] = i
		}
	}

	return c, nil
}

// VectorNorm returns the Euclidean norm of v. Components are scaled by the
// largest magnitude before squaring, so very large or very small finite values
// neither overflow nor underflow.
func VectorNorm(v []float64) float64 {
	var scale float64
	for _, x := range v {
		if a := math.Abs(x); a > scale {
			scale = a
		}
	}
	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return scale
	}

	var sumSq float64
	for _, x := range v {
		r := x / scale
		sumSq += r * r
	}
	return scale * math.Sqrt(sumSq)
}

// NormalizeTitle folds a title to its lookup key.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Dimension returns the shared vector dimension, or 0 for an empty catalog.
func (c *Catalog) Dimension() int {
	if c == nil {
		return 0
	}
	return c.dimension
}

// Lookup resolves a title to its catalog index.
func (c *Catalog) Lookup(title string) (int, error) {
	if c == nil {
		return -1, ErrNotFound
	}
	idx, ok := c.byTitle[NormalizeTitle(title)]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	return idx, nil
}

// Entry returns the entry at index i. The returned vector must not be modified.
func (c *Catalog) Entry(i int) Entry {
	return c.entries[i]
}

// Vector returns the vector at index i. The returned slice must not be modified.
func (c *Catalog) Vector(i int) []float64 {
	return c.entries[i].Vector
}

// Norm returns the precomputed Euclidean norm of the vector at index i.
func (c *Catalog) Norm(i int) float64 {
	return c.norms[i]
}

// Titles returns all titles in catalog order.
func (c *Catalog) Titles() []string {
	titles := make([]string, c.Len())
	for i := range titles {
		titles[i] = c.entries[i].Title
	}
	return titles
}

// Head returns the first n titles in catalog order.
func (c *Catalog) Head(n int) []string {
	if n <= 0 {
		return []string{}
	}
	if n > c.Len() {
		n = c.Len()
	}
	titles := make([]string, n)
	for i := 0; i < n; i++ {
		titles[i] = c.entries[i].Title
	}
	return titles
}

// Search returns the indexes of entries whose title contains query, ignoring case.
// An empty query matches every entry.
func (c *Catalog) Search(query string) []int {
	q := NormalizeTitle(query)
	matches := make([]int, 0)
	for i := 0; i < c.Len(); i++ {
		if q == "" || strings.Contains(strings.ToLower(c.entries[i].Title), q) {
			matches = append(matches, i)
		}
	}
	return matches
}

// Entries returns a copy of all entries in catalog order. Vectors are shared.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, c.Len())
	copy(out, c.entries)
	return out
}
