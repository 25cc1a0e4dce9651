// Package cache provides a tagged key-value cache.
//
// Entries are stored under a key and labelled with tags; invalidating a tag
// drops every entry that carries it. The pagination service uses one tag per
// entity, so any write to an entity discards all of its cached pages at once.
//
// Two drivers exist: Redis for production and an in-process store for
// development and tests. Both marshal values through JSON, so a value read
// back always behaves like it crossed the wire.
package cache

import (
	"context"
	"time"
)

// Store is the driver interface consumed by services.
type Store interface {
	// Get retrieves a cached value by key and unmarshals it into dest.
	// Returns true on a cache hit, false on miss or error.
	Get(ctx context.Context, key string, dest interface{}) bool

	// Set stores value under key for the given TTL and labels it with tags.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration, tags ...string) error

	// InvalidateTags removes every entry labelled with any of the tags.
	InvalidateTags(ctx context.Context, tags ...string) error
}

// DefaultTTL is applied by callers that have no better expiry to offer.
const DefaultTTL = 10 * time.Minute
