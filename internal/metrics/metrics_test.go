// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/health", "200"))

	RecordAPIRequest("GET", "/api/v1/health", "200", 5*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/health", "200"))
	if after != before+1 {
		t.Errorf("api_requests_total = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after increment = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after decrement = %v, want %v", got, before)
	}
}

func TestRecordLookup(t *testing.T) {
	tests := []struct {
		name       string
		kind       string
		result     string
		degenerate int
	}{
		{"title ok", "title", "ok", 0},
		{"text with degenerate vectors", "text", "ok", 3},
		{"not found", "title", "not_found", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			beforeCount := testutil.ToFloat64(RecommendLookupsTotal.WithLabelValues(tt.kind, tt.result))
			beforeDegenerate := testutil.ToFloat64(RecommendDegenerateVectors)

			RecordLookup(tt.kind, tt.result, time.Millisecond, tt.degenerate)

			if got := testutil.ToFloat64(RecommendLookupsTotal.WithLabelValues(tt.kind, tt.result)); got != beforeCount+1 {
				t.Errorf("recommend_lookups_total = %v, want %v", got, beforeCount+1)
			}
			if got := testutil.ToFloat64(RecommendDegenerateVectors); got != beforeDegenerate+float64(tt.degenerate) {
				t.Errorf("recommend_degenerate_vectors_total = %v, want %v", got, beforeDegenerate+float64(tt.degenerate))
			}
		})
	}
}

func TestSetCatalog(t *testing.T) {
	SetCatalog(42, 384)

	if got := testutil.ToFloat64(CatalogEntries); got != 42 {
		t.Errorf("catalog_entries = %v, want 42", got)
	}
	if got := testutil.ToFloat64(CatalogDimension); got != 384 {
		t.Errorf("catalog_vector_dimension = %v, want 384", got)
	}
}

func TestRecordMetadataCache(t *testing.T) {
	beforeMiss := testutil.ToFloat64(MetadataCacheMisses)
	beforeHit := testutil.ToFloat64(MetadataCacheHits.WithLabelValues("memory"))

	RecordMetadataCache("")
	RecordMetadataCache("memory")

	if got := testutil.ToFloat64(MetadataCacheMisses); got != beforeMiss+1 {
		t.Errorf("metadata_cache_misses_total = %v, want %v", got, beforeMiss+1)
	}
	if got := testutil.ToFloat64(MetadataCacheHits.WithLabelValues("memory")); got != beforeHit+1 {
		t.Errorf("metadata_cache_hits_total{tier=memory} = %v, want %v", got, beforeHit+1)
	}
}
