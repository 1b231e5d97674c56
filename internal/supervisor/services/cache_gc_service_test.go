// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cinematch/internal/cache"
)

type countingGC struct {
	calls atomic.Int32
	err   atomic.Value // error
	ratio atomic.Value // float64
}

func (c *countingGC) RunGC(discardRatio float64) error {
	c.calls.Add(1)
	c.ratio.Store(discardRatio)
	if err, ok := c.err.Load().(error); ok {
		return err
	}
	return nil
}

func TestNewCacheGCService_Defaults(t *testing.T) {
	svc := NewCacheGCService(&countingGC{}, 0, 0)
	if svc.interval != DefaultGCInterval || svc.discardRatio != DefaultGCDiscardRatio {
		t.Errorf("got interval=%v ratio=%v", svc.interval, svc.discardRatio)
	}

	svc = NewCacheGCService(&countingGC{}, time.Minute, 1.5)
	if svc.discardRatio != DefaultGCDiscardRatio {
		t.Errorf("out-of-range ratio kept: %v", svc.discardRatio)
	}
	if svc.String() != "metadata-cache-gc" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestCacheGCService_RunsUntilCanceled(t *testing.T) {
	gc := &countingGC{}
	gc.err.Store(errors.New("transient"))
	svc := NewCacheGCService(gc, 5*time.Millisecond, 0.7)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want deadline exceeded", err)
	}
	if gc.calls.Load() < 2 {
		t.Errorf("GC ran %d times, want repeated runs despite errors", gc.calls.Load())
	}
	if r, _ := gc.ratio.Load().(float64); r != 0.7 {
		t.Errorf("discard ratio = %v, want 0.7", r)
	}
}

func TestCacheGCService_StopsWhenCacheClosed(t *testing.T) {
	gc := &countingGC{}
	gc.err.Store(cache.ErrClosed)
	svc := NewCacheGCService(gc, time.Millisecond, 0.5)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, suture.ErrDoNotRestart) {
		t.Errorf("Serve() = %v, want suture.ErrDoNotRestart", err)
	}
}

func TestCacheGCService_WithBadger(t *testing.T) {
	p, err := cache.OpenInMemory(time.Minute)
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })

	svc := NewCacheGCService(p, 5*time.Millisecond, 0.5)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want deadline exceeded (in-memory GC is a no-op)", err)
	}
}
