// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package cache provides the two caching tiers used for movie metadata.

# Tiers

  - LRU: a thread-safe, bounded, in-process cache with per-entry TTL.
    Generic over the value type so callers keep their own types.
  - Persistent: a BadgerDB-backed byte store with native TTL support, used to
    survive restarts so a warm server does not re-query TMDB for every poster.

Callers check the LRU first, then the persistent tier, then the upstream. A
persistent hit is promoted into the LRU.

# Usage Example

	mem := cache.NewLRU[*metadata.Movie](1000, 24*time.Hour)
	mem.Set("tmdb:title:heat", movie)
	if m, ok := mem.Get("tmdb:title:heat"); ok {
	    // use m
	}

	disk, err := cache.OpenPersistent(dir, 24*time.Hour)
	if err != nil {
	    return err
	}
	defer disk.Close()
	_ = disk.Set("tmdb:title:heat", payload)

# Expiration

LRU expiration is lazy: expired entries are dropped on access or by
CleanupExpired. Persistent entries carry a Badger TTL and disappear on their
own; their value log space is reclaimed by RunGC.
*/
package cache
