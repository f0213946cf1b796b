package store

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/secondbrain-app/brain-server/internal/domain"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	// Generic entities
	Users      *Entity[domain.User]
	Tags       *Entity[domain.Tag]
	ShareLinks *Entity[domain.ShareLink]
}

// New opens the Badger database at path and initializes the entity handles.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	store := &Store{
		db:     db,
		logger: logger,
	}

	store.initUsers()
	store.initTags()
	store.initShareLinks()

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return store, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// Helper methods for database operations.

// get retrieves a value by key.
func (s *Store) get(key []byte, dest any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
}

// set stores a value by key.
func (s *Store) set(key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// delete removes a key from the database.
func (s *Store) delete(key []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// exists checks if a key exists.
func (s *Store) exists(key []byte) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// initUsers initializes the Users entity on the store.
// Usernames are indexed with surrounding whitespace stripped so that
// lookups behave the same whether or not the caller trimmed the input.
func (s *Store) initUsers() {
	s.Users = NewEntity[domain.User](s, "user:").
		WithIndexTransform("username",
			func(u *domain.User) []string {
				return []string{domain.NormalizeUsername(u.Username)}
			},
			domain.NormalizeUsername,
		)
}

// initTags initializes the Tags entity on the store.
// Tag titles are unique across the whole vocabulary.
func (s *Store) initTags() {
	s.Tags = NewEntity[domain.Tag](s, "tag:").
		WithIndexTransform("title",
			func(t *domain.Tag) []string {
				return []string{domain.NormalizeTagTitle(t.Title)}
			},
			domain.NormalizeTagTitle,
		)
}

// initShareLinks initializes the ShareLinks entity on the store.
// Indexed by hash (for resolving public links) and by user (one active link per user).
func (s *Store) initShareLinks() {
	s.ShareLinks = NewEntity[domain.ShareLink](s, "share:").
		WithIndex("hash", func(sl *domain.ShareLink) []string {
			return []string{sl.Hash}
		}).
		WithIndex("user", func(sl *domain.ShareLink) []string {
			return []string{sl.UserID}
		})
}
