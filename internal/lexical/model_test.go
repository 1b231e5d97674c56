// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package lexical

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tomtom215/cinematch/internal/catalog"
)

func boolPtr(b bool) *bool { return &b }

func simpleSpec() *Spec {
	return &Spec{
		Vocabulary: map[string]int{"space": 0, "crew": 1, "heist": 2},
		IDF:        []float64{1, 2, 3},
	}
}

func approxEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			return false
		}
	}
	return true
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		spec *Spec
	}{
		{"nil", nil},
		{"no idf", &Spec{Vocabulary: map[string]int{"a": 0}}},
		{"column out of range", &Spec{Vocabulary: map[string]int{"a": 3}, IDF: []float64{1}}},
		{"negative column", &Spec{Vocabulary: map[string]int{"a": -1}, IDF: []float64{1}}},
		{"nan idf", &Spec{IDF: []float64{math.NaN()}}},
		{"bad ngram range", &Spec{IDF: []float64{1}, NGramRange: [2]int{2, 1}}},
		{"zero min ngram", &Spec{IDF: []float64{1}, NGramRange: [2]int{0, 2}}},
		{"unknown norm", &Spec{IDF: []float64{1}, Norm: "l1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.spec); !errors.Is(err, catalog.ErrMalformedArtifact) {
				t.Errorf("New() error = %v, want ErrMalformedArtifact", err)
			}
		})
	}
}

func TestTransform(t *testing.T) {
	m, err := New(simpleSpec())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if m.Dimension() != 3 {
		t.Fatalf("Dimension() = %d, want 3", m.Dimension())
	}

	// tf = [1, 2, 0], weighted = [1, 4, 0], l2 norm = sqrt(17)
	got := m.Transform("Space crew, CREW!")
	want := []float64{1 / math.Sqrt(17), 4 / math.Sqrt(17), 0}
	if !approxEqual(got, want) {
		t.Errorf("Transform() = %v, want %v", got, want)
	}
}

func TestTransform_UnknownTextIsZeroVector(t *testing.T) {
	m, err := New(simpleSpec())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	got := m.Transform("a romantic comedy")
	if !reflect.DeepEqual(got, []float64{0, 0, 0}) {
		t.Errorf("Transform() = %v, want zero vector", got)
	}
	if got := m.Transform(""); !reflect.DeepEqual(got, []float64{0, 0, 0}) {
		t.Errorf("Transform(\"\") = %v, want zero vector", got)
	}
}

func TestTransform_Deterministic(t *testing.T) {
	m, err := New(simpleSpec())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	text := "a heist crew in space plans one more heist"
	first := m.Transform(text)
	for i := 0; i < 20; i++ {
		if got := m.Transform(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("call %d = %v, want %v", i, got, first)
		}
	}
}

func TestTransform_Options(t *testing.T) {
	tests := []struct {
		name string
		spec *Spec
		text string
		want []float64
	}{
		{
			name: "case sensitive",
			spec: &Spec{Vocabulary: map[string]int{"Space": 0, "space": 1}, IDF: []float64{1, 1}, Lowercase: boolPtr(false), Norm: NormNone},
			text: "Space space space",
			want: []float64{1, 2},
		},
		{
			name: "stop words removed",
			spec: &Spec{Vocabulary: map[string]int{"the": 0, "heist": 1}, IDF: []float64{1, 1}, StopWords: []string{"THE"}, Norm: NormNone},
			text: "the heist",
			want: []float64{0, 1},
		},
		{
			name: "bigrams",
			spec: &Spec{Vocabulary: map[string]int{"space": 0, "space crew": 1}, IDF: []float64{1, 1}, NGramRange: [2]int{1, 2}, Norm: NormNone},
			text: "space crew",
			want: []float64{1, 1},
		},
		{
			name: "sublinear tf",
			spec: &Spec{Vocabulary: map[string]int{"heist": 0}, IDF: []float64{2}, SublinearTF: true, Norm: NormNone},
			text: "heist heist heist",
			want: []float64{2 * (1 + math.Log(3))},
		},
		{
			name: "single character tokens ignored",
			spec: &Spec{Vocabulary: map[string]int{"a": 0, "ab": 1}, IDF: []float64{1, 1}, Norm: NormNone},
			text: "a ab a",
			want: []float64{0, 1},
		},
		{
			name: "unicode tokens",
			spec: &Spec{Vocabulary: map[string]int{"amélie": 0}, IDF: []float64{1}, Norm: NormNone},
			text: "Amélie!",
			want: []float64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.spec)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if got := m.Transform(tt.text); !approxEqual(got, tt.want) {
				t.Errorf("Transform(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseAndLoad(t *testing.T) {
	data := []byte(`{"vocabulary":{"space":0,"crew":1},"idf":[1.5,2.5],"ngram_range":[1,1],"norm":"l2"}`)

	m, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if m.VocabularySize() != 2 || m.Dimension() != 2 {
		t.Errorf("VocabularySize()=%d Dimension()=%d, want 2 and 2", m.VocabularySize(), m.Dimension())
	}

	path := filepath.Join(t.TempDir(), "tfidf.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(loaded.Transform("crew"), m.Transform("crew")) {
		t.Error("Load() and Parse() models disagree")
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte(`{not json`)); !errors.Is(err, catalog.ErrMalformedArtifact) {
		t.Errorf("Parse() error = %v, want ErrMalformedArtifact", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, catalog.ErrMalformedArtifact) {
		t.Errorf("Load() error = %v, want ErrMalformedArtifact", err)
	}
}

func TestSpecRoundTrip(t *testing.T) {
	spec := simpleSpec()
	spec.StopWords = []string{"the", "a"}
	spec.NGramRange = [2]int{1, 2}
	spec.SublinearTF = true

	m, err := New(spec)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	again, err := New(m.Spec())
	if err != nil {
		t.Fatalf("New(Spec()) error: %v", err)
	}

	text := "the space crew and a heist crew"
	if !reflect.DeepEqual(m.Transform(text), again.Transform(text)) {
		t.Error("model rebuilt from Spec() transforms differently")
	}
}
