// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package services adapts CineMatch components to suture.Service so the
// supervisor tree can run and restart them.
//
//   - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
//   - CacheGCService: periodic badger value-log GC for the metadata cache
package services
