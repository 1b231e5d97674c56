// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metadata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/cinematch/internal/config"
)

func TestClient_SearchMovie(t *testing.T) {
	fake := newFakeTMDB(t)
	client := NewClient(fake.config())

	results, err := client.SearchMovie(context.Background(), "Heat")
	if err != nil {
		t.Fatalf("SearchMovie: %v", err)
	}
	if len(results) != 1 || results[0].ID != 949 || results[0].PosterPath != "/heat.jpg" {
		t.Errorf("unexpected results: %+v", results)
	}
	if auth := fake.auth(); auth != "Bearer "+testToken {
		t.Errorf("Authorization = %q", auth)
	}

	none, err := client.SearchMovie(context.Background(), "Nothing Like This")
	if err != nil || len(none) != 0 {
		t.Errorf("empty search = %v, %v", none, err)
	}
}

func TestClient_RequestShape(t *testing.T) {
	requests := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests <- r.Clone(context.Background())
		_, _ = w.Write([]byte(`{"page":1,"results":[]}`))
	}))
	defer srv.Close()

	cfg := &config.MetadataConfig{BaseURL: srv.URL + "/", Token: "Bearer already", Language: "fr-FR", Timeout: time.Second}
	if _, err := NewClient(cfg).SearchMovie(context.Background(), "Amélie & co"); err != nil {
		t.Fatalf("SearchMovie: %v", err)
	}

	got := <-requests
	if got.URL.Path != "/search/movie" {
		t.Errorf("path = %q", got.URL.Path)
	}
	q := got.URL.Query()
	if q.Get("query") != "Amélie & co" || q.Get("language") != "fr-FR" || q.Get("include_adult") != "false" {
		t.Errorf("query = %v", q)
	}
	if got.Header.Get("Accept") != "application/json" {
		t.Errorf("Accept = %q", got.Header.Get("Accept"))
	}
	if got.Header.Get("Authorization") != "Bearer already" {
		t.Errorf("Authorization = %q; a pre-prefixed token must not be doubled", got.Header.Get("Authorization"))
	}
}

func TestClient_GetMovieAndRecommendations(t *testing.T) {
	fake := newFakeTMDB(t)
	client := NewClient(fake.config())

	details, err := client.GetMovie(context.Background(), 949)
	if err != nil {
		t.Fatalf("GetMovie: %v", err)
	}
	if details.Runtime != 170 || len(details.Genres) != 2 || details.ID != 949 {
		t.Errorf("details = %+v", details)
	}

	recs, err := client.Recommendations(context.Background(), 949)
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(recs) != 3 || recs[0].Title != "Collateral" {
		t.Errorf("recs = %+v", recs)
	}
}

func TestClient_StatusError(t *testing.T) {
	fake := newFakeTMDB(t)
	client := NewClient(fake.config())

	_, err := client.GetMovie(context.Background(), 12345)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusNotFound || !statusErr.clientSide() {
		t.Errorf("unexpected status error: %+v", statusErr)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error message should carry the status: %v", err)
	}

	fake.setFail(true)
	_, err = client.SearchMovie(context.Background(), "Heat")
	if !errors.As(err, &statusErr) || statusErr.Code != 500 || statusErr.clientSide() {
		t.Errorf("expected server-side StatusError, got %v", err)
	}
}

func TestClient_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": [`))
	}))
	defer srv.Close()

	client := NewClient(&config.MetadataConfig{BaseURL: srv.URL, Token: "t", Timeout: time.Second})
	if _, err := client.SearchMovie(context.Background(), "x"); err == nil {
		t.Error("expected decode error")
	}
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	client := NewClient(&config.MetadataConfig{BaseURL: srv.URL, Token: "t", Timeout: 50 * time.Millisecond})
	if _, err := client.SearchMovie(context.Background(), "x"); err == nil {
		t.Error("expected timeout error")
	}
}
