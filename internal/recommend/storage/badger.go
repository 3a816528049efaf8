// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/recommend"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("rating store closed")

// Key prefixes for BadgerDB storage
const (
	ratingKeyPrefix     = "rating:"
	ratingUserKeyPrefix = "rating_user:"
	sequenceKey         = "meta:rating_seq"

	// sequenceBandwidth is how many sequence numbers are leased at once.
	sequenceBandwidth = 128
)

// BadgerConfig configures a BadgerStore.
type BadgerConfig struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory (tests, ephemeral deployments).
	InMemory bool

	// SyncWrites fsyncs every append.
	SyncWrites bool
}

// BadgerStore persists ratings in BadgerDB.
type BadgerStore struct {
	db  *badger.DB
	seq *badger.Sequence

	mu     sync.RWMutex
	closed bool
}

// OpenBadger opens (or creates) a BadgerDB-backed rating store.
func OpenBadger(cfg BadgerConfig) (*BadgerStore, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("badger path is required unless in-memory")
		}
		opts = badger.DefaultOptions(cfg.Path)
		opts.SyncWrites = cfg.SyncWrites
	}

	// Reduce logging verbosity
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	seq, err := db.GetSequence([]byte(sequenceKey), sequenceBandwidth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("get rating sequence: %w", err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Msg("Rating store opened")

	return &BadgerStore{db: db, seq: seq}, nil
}

// Append stores r under the next sequence number and indexes it by user.
func (s *BadgerStore) Append(ctx context.Context, r recommend.Rating) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal rating: %w", err)
	}

	id, err := s.seq.Next()
	if err != nil {
		return fmt.Errorf("next rating sequence: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(ratingKey(id), data); err != nil {
			return fmt.Errorf("set rating: %w", err)
		}
		if err := txn.Set(ratingUserKey(r.UserID, id), data); err != nil {
			return fmt.Errorf("set user index: %w", err)
		}
		return nil
	})
}

// ByUser returns the ratings of userID in insertion order.
func (s *BadgerStore) ByUser(ctx context.Context, userID int) ([]recommend.Rating, error) {
	return s.scan(ctx, []byte(fmt.Sprintf("%s%020d:", ratingUserKeyPrefix, userID)))
}

// All returns every rating in insertion order from one read transaction.
func (s *BadgerStore) All(ctx context.Context) ([]recommend.Rating, error) {
	return s.scan(ctx, []byte(ratingKeyPrefix))
}

// Count returns the number of stored ratings.
func (s *BadgerStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrClosed
	}

	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(ratingKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return count, nil
}

// Close releases the sequence lease and closes the database.
func (s *BadgerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if err := s.seq.Release(); err != nil {
		errs = append(errs, fmt.Errorf("release sequence: %w", err))
	}
	if err := s.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close BadgerDB: %w", err))
	}
	return errors.Join(errs...)
}

func (s *BadgerStore) scan(ctx context.Context, prefix []byte) ([]recommend.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	ratings := make([]recommend.Rating, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := it.Item().Value(func(val []byte) error {
				var r recommend.Rating
				if err := json.Unmarshal(val, &r); err != nil {
					return fmt.Errorf("unmarshal rating: %w", err)
				}
				ratings = append(ratings, r)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func ratingKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", ratingKeyPrefix, id))
}

func ratingUserKey(userID int, id uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d:%020d", ratingUserKeyPrefix, userID, id))
}
