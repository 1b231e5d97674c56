// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/logging"
)

// AccessLog writes one line per request at debug level. Requests slower than
// slowThreshold are logged at warn instead; a zero threshold disables that.
func AccessLog(slowThreshold time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := newStatusRecorder(w)

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			level := zerolog.DebugLevel
			msg := "Request completed"
			if slowThreshold > 0 && duration > slowThreshold {
				level = zerolog.WarnLevel
				msg = "Slow request detected"
			}

			logging.Ctx(r.Context()).WithLevel(level).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", wrapper.statusCode).
				Int("bytes", wrapper.bytes).
				Int64("duration_ms", duration.Milliseconds()).
				Msg(msg)
		})
	}
}
