// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"errors"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/logging"
)

// Defaults for CacheGCService.
const (
	DefaultGCInterval     = 10 * time.Minute
	DefaultGCDiscardRatio = 0.5
)

// GarbageCollector reclaims storage space. Satisfied by *cache.Persistent.
type GarbageCollector interface {
	RunGC(discardRatio float64) error
}

// CacheGCService runs value-log GC on the persistent metadata cache at a
// fixed interval. GC errors are logged and the loop continues; a closed
// cache stops the service permanently.
type CacheGCService struct {
	gc           GarbageCollector
	interval     time.Duration
	discardRatio float64
	name         string
}

// NewCacheGCService creates the GC loop. Non-positive arguments use the defaults.
func NewCacheGCService(gc GarbageCollector, interval time.Duration, discardRatio float64) *CacheGCService {
	if interval <= 0 {
		interval = DefaultGCInterval
	}
	if discardRatio <= 0 || discardRatio >= 1 {
		discardRatio = DefaultGCDiscardRatio
	}
	return &CacheGCService{
		gc:           gc,
		interval:     interval,
		discardRatio: discardRatio,
		name:         "metadata-cache-gc",
	}
}

// Serve implements suture.Service.
func (s *CacheGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			err := s.gc.RunGC(s.discardRatio)
			if errors.Is(err, cache.ErrClosed) {
				logging.Debug().Str("service", s.name).Msg("Cache closed, stopping GC")
				return suture.ErrDoNotRestart
			}
			if err != nil {
				logging.Warn().Err(err).Str("service", s.name).Msg("Cache GC failed")
			}
		}
	}
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *CacheGCService) String() string {
	return s.name
}
