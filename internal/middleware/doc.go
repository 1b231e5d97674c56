// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package middleware provides HTTP middleware for the CineMatch API.

All middleware uses the func(http.Handler) http.Handler shape so it can be
installed with chi's r.Use.

Key Components:

  - RequestID: X-Request-ID propagation plus request and correlation IDs in the
    logging context
  - PrometheusMetrics: request totals, durations and in-flight gauge, labelled
    by the chi route pattern rather than the raw path
  - AccessLog: one structured line per request, promoted to warn when slower
    than the configured threshold

Typical stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(time.Second))
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    ...
	})

See Also:

  - internal/api: handlers wrapped by this middleware
  - internal/metrics: Prometheus metric definitions
*/
package middleware
