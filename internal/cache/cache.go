// Package cache provides the memoization collaborator used by the content
// service. Two backends exist: a process-local in-memory map and a SQLite
// file for deployments that want the cache to survive restarts.
package cache

import (
	"fmt"
	"time"

	"club-mareva-site/internal/config"
)

// Cache stores opaque serialized values under string keys. A ttl of zero
// means the entry never expires; non-zero entries disappear after the ttl.
type Cache interface {
	// Get retrieves an item. The second return is false on a miss; a miss is
	// not an error.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	// Clear drops every entry.
	Clear() error
	Close() error
}

// New creates the cache backend selected by the configuration.
func New(cfg config.CacheConfig) (Cache, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemory(), nil
	case "sqlite":
		return NewSQLite(cfg.FilePath)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
