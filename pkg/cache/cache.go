// Package cache provides a small byte cache used to persist benchmark
// baselines between runs.
//
// Three backends implement [Cache]:
//   - [FileCache]: JSON entries under a directory, the default for the CLI
//   - [RedisCache]: a shared store so several machines can compare scores
//   - [NullCache]: stores nothing, selected by --no-cache
//
// Keys are produced by a [Keyer] so that every caller derives them the same
// way. [ScopedKeyer] prefixes keys, which keeps baselines recorded on
// different hosts apart when they share a Redis instance.
package cache

import (
	"context"
	"time"
)

// TTLs for cached entries.
const (
	// TTLBaseline is how long a saved baseline stays valid by default.
	TTLBaseline = 30 * 24 * time.Hour
)

// Cache stores opaque byte values by key.
//
// Get reports a miss with (nil, false, nil); an error means the backend
// failed, not that the key is absent. A ttl of zero stores without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// BaselineKey returns the key of the saved baseline for a workload
	// measured under the configuration identified by configHash.
	BaselineKey(workload, configHash string) string
}

// DefaultKeyer builds unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// BaselineKey returns "baseline:<workload>:<hash>". The workload name stays
// readable so keys can be inspected with redis-cli.
func (DefaultKeyer) BaselineKey(workload, configHash string) string {
	return hashKey("baseline:"+workload, configHash)
}

var _ Keyer = DefaultKeyer{}
