// Package store persists recently used files and small preferences in a
// bbolt database.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	bucketRecent = "recent"
	bucketPrefs  = "prefs"

	// MaxRecent is how many recent files are kept.
	MaxRecent = 50
)

// ErrNoPref is returned by Pref for a key that was never set.
var ErrNoPref = errors.New("no such preference")

var initDB = map[string]func(*bolt.Tx) error{
	"initialize recent files table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRecent))
		return err
	},
	"initialize preferences table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketPrefs))
		return err
	},
}

type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// AddRecent marks path as the most recently used file.
func (s *Store) AddRecent(path string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRecent))
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		if err := b.Put([]byte(path), marshalSeq(seq)); err != nil {
			return err
		}
		return prune(b, MaxRecent)
	})
}

// Recent returns up to n recently used paths, newest first.
func (s *Store) Recent(n int) ([]string, error) {
	var entries []recentEntry
	err := s.db.View(func(tx *bolt.Tx) error {
		entries = collect(tx.Bucket([]byte(bucketRecent)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.path
	}
	return paths, nil
}

// SetPref stores a preference value.
func (s *Store) SetPref(key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketPrefs)).Put([]byte(key), []byte(value))
	})
}

// Pref returns a stored preference or ErrNoPref.
func (s *Store) Pref(key string) (string, error) {
	var v string
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketPrefs)).Get([]byte(key))
		if data == nil {
			return ErrNoPref
		}
		v = string(data)
		return nil
	})
	return v, err
}

type recentEntry struct {
	path string
	seq  uint64
}

// collect returns the bucket's entries sorted newest first.
func collect(b *bolt.Bucket) []recentEntry {
	var out []recentEntry
	c := b.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		out = append(out, recentEntry{path: string(k), seq: unmarshalSeq(v)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq > out[j].seq })
	return out
}

func prune(b *bolt.Bucket, keep int) error {
	entries := collect(b)
	if len(entries) <= keep {
		return nil
	}
	for _, e := range entries[keep:] {
		if err := b.Delete([]byte(e.path)); err != nil {
			return err
		}
	}
	return nil
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(data []byte) uint64 {
	if len(data) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(data)
}
