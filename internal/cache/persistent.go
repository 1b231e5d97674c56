// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// ErrClosed is returned by Persistent operations after Close.
var ErrClosed = errors.New("cache: persistent store closed")

// Persistent is a BadgerDB-backed key/value cache. Entries expire through
// Badger's own TTL so no sweeper goroutine is required.
type Persistent struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenPersistent opens (or creates) a Badger directory at dir.
func OpenPersistent(dir string, ttl time.Duration) (*Persistent, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Suppress BadgerDB logs
	return openPersistent(opts, ttl)
}

// OpenInMemory opens a Badger store that lives only in memory. Used by tests
// and by deployments that want the persistent code path without a disk.
func OpenInMemory(ttl time.Duration) (*Persistent, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	return openPersistent(opts, ttl)
}

//nolint:gocritic // badger.Options is passed by value throughout badger's API
func openPersistent(opts badger.Options, ttl time.Duration) (*Persistent, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger cache: %w", err)
	}
	return &Persistent{db: db, ttl: ttl}, nil
}

// Get returns a copy of the stored value. A missing or expired key yields (nil, false, nil).
func (p *Persistent) Get(key string) ([]byte, bool, error) {
	if p.db.IsClosed() {
		return nil, false, ErrClosed
	}

	var value []byte
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key with the store's TTL.
func (p *Persistent) Set(key string, value []byte) error {
	return p.SetWithTTL(key, value, p.ttl)
}

// SetWithTTL stores value under key with a custom TTL.
func (p *Persistent) SetWithTTL(key string, value []byte, ttl time.Duration) error {
	if p.db.IsClosed() {
		return ErrClosed
	}
	err := p.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(key), value).WithTTL(ttl))
	})
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (p *Persistent) Delete(key string) error {
	if p.db.IsClosed() {
		return ErrClosed
	}
	return p.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(key)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete %q: %w", key, err)
		}
		return nil
	})
}

// RunGC reclaims value log space. badger.ErrNoRewrite means there was nothing
// to collect and is reported as nil.
func (p *Persistent) RunGC(discardRatio float64) error {
	if p.db.IsClosed() {
		return ErrClosed
	}
	err := p.db.RunValueLogGC(discardRatio)
	if err == nil || errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
		return nil
	}
	return err
}

// Close flushes and closes the store.
func (p *Persistent) Close() error {
	if p.db.IsClosed() {
		return nil
	}
	return p.db.Close()
}
