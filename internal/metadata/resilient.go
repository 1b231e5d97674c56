// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metadata

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// Ensure ResilientClient implements Provider
var _ Provider = (*ResilientClient)(nil)

// BreakerSettings tunes the circuit breaker.
type BreakerSettings struct {
	Name         string
	MaxRequests  uint32        // concurrent trial requests while half-open
	Interval     time.Duration // closed-state count reset period
	Timeout      time.Duration // open-state wait before probing
	MinRequests  uint32        // requests needed before the ratio is considered
	FailureRatio float64       // ratio at which the circuit opens
}

// DefaultBreakerSettings mirrors the other upstream breakers in the codebase:
// open after a 60% failure rate over at least 10 requests, retry after 2 minutes.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:         "tmdb-api",
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      2 * time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// ResilientClient wraps a Provider with a token-bucket rate limiter and a
// circuit breaker. The limiter runs first so a waiting caller never holds a
// half-open trial slot.
//
// The breaker uses real time for its interval and timeout. Tests exercise it
// with short settings rather than a fake clock.
type ResilientClient struct {
	next    Provider
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[any]
	name    string
}

// NewResilientClient wraps next. A nil limiter disables rate limiting.
func NewResilientClient(next Provider, limiter *rate.Limiter, settings BreakerSettings) *ResilientClient {
	name := settings.Name
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= settings.FailureRatio
			if shouldTrip {
				logging.Warn().Str("breaker", name).Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},

		IsSuccessful: isBreakerSuccess,
	})

	return &ResilientClient{next: next, limiter: limiter, cb: cb, name: name}
}

// State returns the current breaker state.
func (r *ResilientClient) State() gobreaker.State {
	return r.cb.State()
}

// SearchMovie searches with rate limiting and circuit breaker protection.
func (r *ResilientClient) SearchMovie(ctx context.Context, query string) ([]MovieResult, error) {
	return castResult[[]MovieResult](r.execute(ctx, func() (any, error) {
		return r.next.SearchMovie(ctx, query)
	}))
}

// GetMovie fetches details with rate limiting and circuit breaker protection.
func (r *ResilientClient) GetMovie(ctx context.Context, id int) (*MovieDetails, error) {
	return castResult[*MovieDetails](r.execute(ctx, func() (any, error) {
		return r.next.GetMovie(ctx, id)
	}))
}

// Recommendations fetches TMDB recommendations with rate limiting and circuit breaker protection.
func (r *ResilientClient) Recommendations(ctx context.Context, id int) ([]MovieResult, error) {
	return castResult[[]MovieResult](r.execute(ctx, func() (any, error) {
		return r.next.Recommendations(ctx, id)
	}))
}

func (r *ResilientClient) execute(ctx context.Context, fn func() (any, error)) (any, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
	}

	result, err := r.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(r.name, "rejected").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(r.name, "failure").Inc()
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(r.name, "success").Inc()
	return result, nil
}

// isBreakerSuccess keeps client-side answers (404, 401) and caller
// cancellation from tripping the breaker.
func isBreakerSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.clientSide()
	}
	return false
}

// castResult type-asserts a breaker result.
func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
