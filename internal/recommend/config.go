// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
)

// Config contains configuration for the recommendation engine.
type Config struct {
	// DefaultK is used by callers when a request omits k.
	DefaultK int `json:"default_k"`

	// MaxK is the largest k callers may request.
	MaxK int `json:"max_k"`

	// Diversity is the default diversity strength in [0, 1]. Zero disables reranking.
	Diversity float64 `json:"diversity"`

	// CandidatePool is the number of ranked candidates handed to the reranker.
	// It is raised to k when smaller.
	CandidatePool int `json:"candidate_pool"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultK:      15,
		MaxK:          100,
		Diversity:     0,
		CandidatePool: 50,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.DefaultK <= 0 {
		return fmt.Errorf("default_k must be positive, got %d", c.DefaultK)
	}
	if c.MaxK < c.DefaultK {
		return fmt.Errorf("max_k must be >= default_k, got %d < %d", c.MaxK, c.DefaultK)
	}
	if c.Diversity < 0 || c.Diversity > 1 {
		return fmt.Errorf("diversity must be in [0, 1], got %f", c.Diversity)
	}
	if c.CandidatePool < 0 {
		return fmt.Errorf("candidate_pool must be non-negative, got %d", c.CandidatePool)
	}
	return nil
}
