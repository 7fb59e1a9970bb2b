package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

// Store is a disk-backed key/value cache with per-entry TTL. Values are
// stored JSON-encoded. Safe for concurrent use; a failed refresh never
// evicts a previously stored entry.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the cache directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a cache backed by memory only. Used in tests.
func OpenInMemory() (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory cache: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get decodes the entry for key into dst. Returns false on a miss or an
// expired entry; expiry is handled by badger itself.
func (s *Store) Get(key string, dst interface{}) (bool, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		hitsMetric.WithLabelValues("miss").Inc()
		return false, nil
	}
	if err != nil {
		errorsMetric.Inc()
		return false, fmt.Errorf("cache read for %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		// A corrupt entry behaves like a miss; the caller refreshes it.
		errorsMetric.Inc()
		return false, nil
	}
	hitsMetric.WithLabelValues("hit").Inc()
	return true, nil
}

// Set stores value under key with the given TTL. Last writer wins when
// concurrent misses race to populate the same key.
func (s *Store) Set(key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode for %s: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), raw)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		errorsMetric.Inc()
		return fmt.Errorf("cache write for %s: %w", key, err)
	}
	return nil
}
