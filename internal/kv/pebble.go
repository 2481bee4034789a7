package kv

import (
	"context"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
)

var _ KV = (*Pebble)(nil)

// Pebble is the LSM-backed on-disk driver.
type Pebble struct {
	db *pebble.DB
}

func NewPebble(path string) (*Pebble, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "opening pebble at %s", path)
	}
	return &Pebble{db: db}, nil
}

func (p *Pebble) Get(_ context.Context, key string) ([]byte, error) {
	value, closer, err := p.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "getting key %s", key)
	}
	defer closer.Close()
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (p *Pebble) Set(_ context.Context, key string, value []byte) error {
	err := p.db.Set([]byte(key), value, pebble.Sync)
	return errors.Wrapf(err, "setting key %s", key)
}

func (p *Pebble) Delete(_ context.Context, key string) error {
	err := p.db.Delete([]byte(key), pebble.Sync)
	return errors.Wrapf(err, "deleting key %s", key)
}

func (p *Pebble) Close() error {
	return p.db.Close()
}
