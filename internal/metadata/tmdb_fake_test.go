// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metadata

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/config"
)

const testToken = "test-token"

// fakeTMDB serves a tiny slice of the TMDB API.
type fakeTMDB struct {
	server *httptest.Server
	calls  atomic.Int64

	mu       sync.Mutex
	movies   map[string]MovieResult // keyed by lower-case title
	details  map[int]MovieDetails
	recs     map[int][]MovieResult
	fail     bool // answer 500 to everything
	lastAuth string
}

func newFakeTMDB(t *testing.T) *fakeTMDB {
	t.Helper()
	f := &fakeTMDB{
		movies: map[string]MovieResult{
			"heat": {ID: 949, Title: "Heat", Overview: "A group of high-end professional thieves.", ReleaseDate: "1995-12-15", PosterPath: "/heat.jpg", VoteAverage: 7.9, VoteCount: 7000},
			"alien": {ID: 348, Title: "Alien", Overview: "", ReleaseDate: "1979-05-25", PosterPath: "/alien.jpg", VoteAverage: 8.1, VoteCount: 14000},
		},
		details: map[int]MovieDetails{
			949: {Runtime: 170, Tagline: "A Los Angeles crime saga", Genres: []Genre{{ID: 28, Name: "Action"}, {ID: 80, Name: "Crime"}}},
			348: {Runtime: 117, Genres: []Genre{{ID: 27, Name: "Horror"}}, MovieResult: MovieResult{Overview: "In deep space."}},
		},
		recs: map[int][]MovieResult{
			949: {
				{ID: 1, Title: "Collateral", PosterPath: "/collateral.jpg"},
				{ID: 2, Title: "Ronin"},
				{ID: 3, Title: "Thief"},
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/search/movie", func(w http.ResponseWriter, r *http.Request) {
		if !f.check(w, r) {
			return
		}
		f.mu.Lock()
		m, ok := f.movies[strings.ToLower(r.URL.Query().Get("query"))]
		f.mu.Unlock()
		page := pagedResults{Page: 1, Results: []MovieResult{}}
		if ok {
			page.Results = append(page.Results, m)
		}
		page.TotalResults = len(page.Results)
		_ = json.NewEncoder(w).Encode(page)
	})
	mux.HandleFunc("/movie/", func(w http.ResponseWriter, r *http.Request) {
		if !f.check(w, r) {
			return
		}
		rest := strings.TrimPrefix(r.URL.Path, "/movie/")
		var id int
		if strings.HasSuffix(rest, "/recommendations") {
			_ = json.Unmarshal([]byte(strings.TrimSuffix(rest, "/recommendations")), &id)
			f.mu.Lock()
			recs := f.recs[id]
			f.mu.Unlock()
			_ = json.NewEncoder(w).Encode(pagedResults{Page: 1, Results: recs})
			return
		}
		_ = json.Unmarshal([]byte(rest), &id)
		f.mu.Lock()
		d, ok := f.details[id]
		f.mu.Unlock()
		if !ok {
			http.Error(w, `{"status_message":"not found"}`, http.StatusNotFound)
			return
		}
		d.ID = id
		_ = json.NewEncoder(w).Encode(d)
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeTMDB) check(w http.ResponseWriter, r *http.Request) bool {
	f.calls.Add(1)
	f.mu.Lock()
	f.lastAuth = r.Header.Get("Authorization")
	fail := f.fail
	f.mu.Unlock()

	if r.Header.Get("Authorization") != "Bearer "+testToken {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	if fail {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	return true
}

func (f *fakeTMDB) auth() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastAuth
}

func (f *fakeTMDB) setFail(fail bool) {
	f.mu.Lock()
	f.fail = fail
	f.mu.Unlock()
}

func (f *fakeTMDB) config() *config.MetadataConfig {
	return &config.MetadataConfig{
		Enabled:        true,
		BaseURL:        f.server.URL,
		ImageBaseURL:   "https://img.example/w500/",
		Token:          testToken,
		Language:       "en-US",
		Timeout:        2 * time.Second,
		RateLimit:      1000,
		RateBurst:      100,
		MaxConcurrency: 4,
		CacheSize:      100,
		CacheTTL:       time.Hour,
	}
}
