// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/cinematch/internal/catalog"
)

func mustCatalog(t *testing.T, entries []catalog.Entry) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(entries)
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}
	return c
}

// abcCatalog is A:(1,0), B:(0,1), C:(1,0).
func abcCatalog(t *testing.T) *catalog.Catalog {
	return mustCatalog(t, []catalog.Entry{
		{ID: "A", Title: "A", Vector: []float64{1, 0}},
		{ID: "B", Title: "B", Vector: []float64{0, 1}},
		{ID: "C", Title: "C", Vector: []float64{1, 0}},
	})
}

func indexes(matches []Match) []int {
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name   string
		a, b   []float64
		want   float64
		wantOK bool
	}{
		{"identical", []float64{1, 0}, []float64{1, 0}, 1, true},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0, true},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1, true},
		{"scaled", []float64{3, 4}, []float64{6, 8}, 1, true},
		{"zero query", []float64{1, 0}, []float64{0, 0}, math.Inf(-1), false},
		{"zero entry", []float64{0, 0}, []float64{1, 0}, math.Inf(-1), false},
		{"huge components", []float64{1e200, 1e200}, []float64{2e200, 2e200}, 1, true},
		{"huge orthogonal", []float64{1e200, 0}, []float64{0, 1e200}, 0, true},
		{"tiny components", []float64{1e-200, 0}, []float64{3e-200, 0}, 1, true},
		{"mixed magnitudes", []float64{1e200, 0}, []float64{1e-200, 0}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Cosine(tt.a, tt.b, Norm(tt.a), Norm(tt.b))
			if ok != tt.wantOK {
				t.Errorf("Cosine() ok = %v, want %v", ok, tt.wantOK)
			}
			if math.IsInf(tt.want, -1) {
				if !math.IsInf(got, -1) {
					t.Errorf("Cosine() = %v, want -Inf", got)
				}
				return
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRank_ExtremeMagnitudesAreNotDegenerate(t *testing.T) {
	c := mustCatalog(t, []catalog.Entry{
		{Title: "Huge", Vector: []float64{1e200, 1e200}},
		{Title: "Huger", Vector: []float64{3e200, 3e200}},
		{Title: "Tiny", Vector: []float64{1e-200, -1e-200}},
	})

	matches, err := Rank(c, c.Vector(0), 0, 2)
	if err != nil {
		t.Fatalf("Rank() error: %v", err)
	}
	if got, want := indexes(matches), []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Rank() = %v, want %v", got, want)
	}
	for _, m := range matches {
		if m.Degenerate || math.IsInf(m.Score, 0) {
			t.Errorf("entry %d ranked degenerate with score %v", m.Index, m.Score)
		}
	}
	if math.Abs(matches[0].Score-1) > 1e-12 || math.Abs(matches[1].Score) > 1e-12 {
		t.Errorf("scores = [%v %v], want [1 0]", matches[0].Score, matches[1].Score)
	}
}

func TestRank_SelfExcludedByIndex(t *testing.T) {
	c := abcCatalog(t)

	matches, err := Rank(c, c.Vector(0), 0, 2)
	if err != nil {
		t.Fatalf("Rank() error: %v", err)
	}

	// C shares A's vector and must still be returned; only index 0 is dropped.
	if got, want := indexes(matches), []int{2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}
	if matches[0].Score != 1 || matches[1].Score != 0 {
		t.Errorf("scores = [%v %v], want [1 0]", matches[0].Score, matches[1].Score)
	}
}

func TestRank_NeverReturnsQueryEntry(t *testing.T) {
	c := mustCatalog(t, []catalog.Entry{
		{Title: "a", Vector: []float64{1, 2, 3}},
		{Title: "b", Vector: []float64{3, 2, 1}},
		{Title: "c", Vector: []float64{0, 0, 0}},
		{Title: "d", Vector: []float64{1, 2, 3}},
		{Title: "e", Vector: []float64{-1, 0, 1}},
	})

	for i := 0; i < c.Len(); i++ {
		matches, err := Rank(c, c.Vector(i), i, c.Len())
		if err != nil {
			t.Fatalf("Rank(%d) error: %v", i, err)
		}
		for _, m := range matches {
			if m.Index == i {
				t.Errorf("Rank(%d) returned the query entry", i)
			}
		}
	}
}

func TestRank_K(t *testing.T) {
	c := abcCatalog(t)

	tests := []struct {
		name    string
		k       int
		wantLen int
	}{
		{"negative", -1, 0},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"exactly remaining", 2, 2},
		{"more than remaining", 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := Rank(c, c.Vector(0), 0, tt.k)
			if err != nil {
				t.Fatalf("Rank() error: %v", err)
			}
			if matches == nil {
				t.Fatal("Rank() returned nil, want empty slice")
			}
			if len(matches) != tt.wantLen {
				t.Errorf("len(Rank()) = %d, want %d", len(matches), tt.wantLen)
			}
		})
	}
}

func TestRank_SingleEntry(t *testing.T) {
	c := mustCatalog(t, []catalog.Entry{{Title: "Solo", Vector: []float64{1, 1}}})

	for _, k := range []int{0, 1, 5, 100} {
		matches, err := Rank(c, c.Vector(0), 0, k)
		if err != nil {
			t.Fatalf("Rank(k=%d) error: %v", k, err)
		}
		if len(matches) != 0 {
			t.Errorf("Rank(k=%d) = %v, want empty", k, matches)
		}
	}
}

func TestRank_EmptyCatalog(t *testing.T) {
	c := mustCatalog(t, nil)

	matches, err := Rank(c, []float64{1, 0}, NoExclude, 5)
	if err != nil {
		t.Fatalf("Rank() on empty catalog error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Rank() on empty catalog = %v, want empty", matches)
	}
}

func TestRank_DegenerateVectorsSortLast(t *testing.T) {
	c := mustCatalog(t, []catalog.Entry{
		{Title: "zero1", Vector: []float64{0, 0}},
		{Title: "neg", Vector: []float64{-1, 0}},
		{Title: "zero2", Vector: []float64{0, 0}},
		{Title: "pos", Vector: []float64{1, 0}},
	})

	matches, err := Rank(c, []float64{1, 0}, NoExclude, 4)
	if err != nil {
		t.Fatalf("Rank() error: %v", err)
	}

	if got, want := indexes(matches), []int{3, 1, 0, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() order = %v, want %v", got, want)
	}
	for _, m := range matches[2:] {
		if !m.Degenerate || !math.IsInf(m.Score, -1) {
			t.Errorf("match %d = %+v, want degenerate -Inf", m.Index, m)
		}
	}
}

func TestRank_ZeroQuery(t *testing.T) {
	c := abcCatalog(t)

	matches, err := Rank(c, []float64{0, 0}, NoExclude, 3)
	if err != nil {
		t.Fatalf("Rank() error: %v", err)
	}

	// Every pair is degenerate, so catalog order is preserved.
	if got, want := indexes(matches), []int{0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}
	for _, m := range matches {
		if !m.Degenerate {
			t.Errorf("match %d not marked degenerate", m.Index)
		}
	}
}

func TestRank_TiesKeepCatalogOrder(t *testing.T) {
	c := mustCatalog(t, []catalog.Entry{
		{Title: "q", Vector: []float64{1, 0}},
		{Title: "t1", Vector: []float64{1, 1}},
		{Title: "t2", Vector: []float64{2, 2}},
		{Title: "t3", Vector: []float64{1, 1}},
		{Title: "best", Vector: []float64{5, 0}},
	})

	matches, err := Rank(c, c.Vector(0), 0, 4)
	if err != nil {
		t.Fatalf("Rank() error: %v", err)
	}
	if got, want := indexes(matches), []int{4, 1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}
}

func TestRank_Deterministic(t *testing.T) {
	entries := make([]catalog.Entry, 50)
	for i := range entries {
		entries[i] = catalog.Entry{
			Title:  string(rune('A' + i%26)),
			Vector: []float64{float64(i % 3), float64(i % 5), float64(i % 2)},
		}
	}
	c := mustCatalog(t, entries)

	first, err := Rank(c, c.Vector(7), 7, 20)
	if err != nil {
		t.Fatalf("Rank() error: %v", err)
	}
	for run := 0; run < 10; run++ {
		again, err := Rank(c, c.Vector(7), 7, 20)
		if err != nil {
			t.Fatalf("Rank() error: %v", err)
		}
		if !reflect.DeepEqual(indexes(first), indexes(again)) {
			t.Fatalf("run %d differs: %v vs %v", run, indexes(first), indexes(again))
		}
	}
}

func TestRank_DimensionMismatch(t *testing.T) {
	c := abcCatalog(t)

	_, err := Rank(c, []float64{1, 0, 0}, NoExclude, 2)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Rank() error = %v, want ErrDimensionMismatch", err)
	}
}
