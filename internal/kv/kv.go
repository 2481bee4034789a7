// Package kv is the durable key-value layer under the stores. All drivers
// expose the same byte-oriented contract; the stores serialize whole JSON
// documents into it.
package kv

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// ErrKeyNotFound is returned by Get for keys that were never set or were
// deleted. Drivers translate their engine-specific miss into this sentinel.
var ErrKeyNotFound = errors.New("key not found")

// KV is the storage contract. Implementations must allow Get/Set/Delete
// from multiple goroutines.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Driver names accepted by Open.
const (
	DriverBadger = "badger"
	DriverPebble = "pebble"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Open constructs the driver named by the configuration. path is the
// on-disk location for the persistent drivers and ignored by memory.
func Open(driver, path string) (KV, error) {
	switch driver {
	case DriverBadger:
		return NewBadger(path)
	case DriverPebble:
		return NewPebble(path)
	case DriverSQLite:
		return NewGorm(path)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown kv driver %q", driver)
	}
}
