// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/streakstats/internal/logging"
	"github.com/tomtom215/streakstats/internal/streak"
)

// graphKeyPrefix namespaces contribution graph records.
const graphKeyPrefix = "graphs:"

// DefaultGCRatio is the value log discard ratio used by RunGC.
const DefaultGCRatio = 0.5

// Errors
var (
	// ErrNotFound is returned when no unexpired record exists for a key.
	ErrNotFound = errors.New("graphs not found in store")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("graph store is closed")
)

// Config holds GraphStore settings.
type Config struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path string
	// TTL is how long a record stays readable. Badger drops it afterwards.
	TTL time.Duration
	// InMemory keeps everything in RAM, for tests and the CLI.
	InMemory bool
	// GCRatio is the discard ratio handed to RunValueLogGC.
	GCRatio float64
}

// record is the persisted form of a fetch.
type record struct {
	User         string         `json:"user"`
	StartingYear int            `json:"starting_year,omitempty"`
	FetchedAt    time.Time      `json:"fetched_at"`
	Graphs       []streak.Graph `json:"graphs"`
}

// GraphStore persists fetched contribution graphs in BadgerDB so a restart
// does not refetch every user from GitHub. Records expire through Badger's
// native per-entry TTL.
type GraphStore struct {
	db     *badger.DB
	config Config

	mu     sync.RWMutex
	closed bool
}

// Open opens (or creates) the store.
func Open(cfg Config) (*GraphStore, error) {
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("store TTL must be positive, got %v", cfg.TTL)
	}
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("store path is required")
	}
	if cfg.GCRatio <= 0 || cfg.GCRatio >= 1 {
		cfg.GCRatio = DefaultGCRatio
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = newBadgerLogger()

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Dur("ttl", cfg.TTL).
		Msg("Graph store opened")

	return &GraphStore{db: db, config: cfg}, nil
}

// Key builds the record key. GitHub logins are case-insensitive.
func Key(user string, startingYear int) []byte {
	return []byte(graphKeyPrefix + strings.ToLower(user) + ":" + strconv.Itoa(startingYear))
}

// Get returns the graphs stored for user and startingYear, or ErrNotFound.
func (s *GraphStore) Get(ctx context.Context, user string, startingYear int) ([]streak.Graph, error) {
	if err := s.checkOpen(ctx); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	var rec record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(Key(user, startingYear))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get graphs: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}

	return rec.Graphs, nil
}

// Put stores graphs for user and startingYear with the configured TTL.
func (s *GraphStore) Put(ctx context.Context, user string, startingYear int, graphs []streak.Graph) error {
	if err := s.checkOpen(ctx); err != nil {
		return err
	}
	defer s.mu.RUnlock()

	data, err := json.Marshal(record{
		User:         user,
		StartingYear: startingYear,
		FetchedAt:    time.Now().UTC(),
		Graphs:       graphs,
	})
	if err != nil {
		return fmt.Errorf("marshal graphs: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(Key(user, startingYear), data).WithTTL(s.config.TTL)
		if err := txn.SetEntry(e); err != nil {
			return fmt.Errorf("set graphs: %w", err)
		}
		return nil
	})
}

// Delete removes the record for user and startingYear. Missing keys are not an error.
func (s *GraphStore) Delete(ctx context.Context, user string, startingYear int) error {
	if err := s.checkOpen(ctx); err != nil {
		return err
	}
	defer s.mu.RUnlock()

	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(Key(user, startingYear))
		if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete graphs: %w", err)
		}
		return nil
	})
}

// Count returns the number of live records.
func (s *GraphStore) Count(ctx context.Context) (int, error) {
	if err := s.checkOpen(ctx); err != nil {
		return 0, err
	}
	defer s.mu.RUnlock()

	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(graphKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// RunGC runs value log garbage collection until Badger has nothing left to
// rewrite. It reports whether any file was reclaimed.
func (s *GraphStore) RunGC() (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false, ErrClosed
	}
	if s.config.InMemory {
		return false, nil
	}

	reclaimed := false
	for {
		err := s.db.RunValueLogGC(s.config.GCRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return reclaimed, nil
		}
		if err != nil {
			return reclaimed, fmt.Errorf("run GC: %w", err)
		}
		reclaimed = true
	}
}

// Close closes the underlying database. It is safe to call more than once.
func (s *GraphStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// checkOpen takes the read lock on success; the caller must release it.
func (s *GraphStore) checkOpen(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return ErrClosed
	}
	return nil
}
