// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package cache provides a thread-safe in-memory LRU cache with TTL expiry.

The recommendation service memoises similar-movie results here. The rating
matrix never changes while the process runs, so entries cannot go stale;
the TTL and capacity only bound memory.

# Usage

	c := cache.New[[]recommend.SimilarMovie](1000, 10*time.Minute)
	key := cache.GenerateKey("similar", params)
	if items, ok := c.Get(key); ok {
	    return items
	}
	c.Set(key, computed)

Expired entries are removed lazily on Get. A supervised janitor calls
Cleanup periodically; the cache itself starts no goroutines.
*/
package cache
