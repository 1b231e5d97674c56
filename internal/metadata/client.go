// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metadata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// Ensure Client implements Provider
var _ Provider = (*Client)(nil)

// maxErrorBody caps how much of an error response is kept for the error message.
const maxErrorBody = 512

// Client provides read-only access to the TMDB v3 REST API.
type Client struct {
	baseURL    string
	token      string
	language   string
	httpClient *http.Client
}

// NewClient creates a TMDB client from configuration.
func NewClient(cfg *config.MetadataConfig) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		token:    cfg.Token,
		language: cfg.Language,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// SearchMovie searches movies by title. Results are in TMDB relevance order.
func (c *Client) SearchMovie(ctx context.Context, query string) ([]MovieResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")

	var page pagedResults
	if err := c.get(ctx, "/search/movie", params, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// GetMovie fetches the full details of one movie.
func (c *Client) GetMovie(ctx context.Context, id int) (*MovieDetails, error) {
	var details MovieDetails
	if err := c.get(ctx, "/movie/"+strconv.Itoa(id), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// Recommendations returns TMDB's own recommendations for a movie.
func (c *Client) Recommendations(ctx context.Context, id int) ([]MovieResult, error) {
	var page pagedResults
	if err := c.get(ctx, "/movie/"+strconv.Itoa(id)+"/recommendations", nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	if c.language != "" {
		params.Set("language", c.language)
	}

	reqURL := c.baseURL + endpoint
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create tmdb request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", bearer(c.token))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RecordMetadataUpstream(time.Since(start))
	if err != nil {
		return fmt.Errorf("tmdb %s request failed: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Endpoint: endpoint, Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode tmdb %s response: %w", endpoint, err)
	}
	return nil
}

// bearer accepts both a bare token and one already prefixed with "Bearer ".
func bearer(token string) string {
	if strings.HasPrefix(token, "Bearer ") {
		return token
	}
	return "Bearer " + token
}
