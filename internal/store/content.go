package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/secondbrain-app/brain-server/internal/domain"
)

// Content records are hand-keyed rather than going through Entity because the
// owner index is many-valued: every user maps to any number of content IDs.
const (
	contentPrefix       = "content:"
	contentByUserPrefix = "content:idx:user:" // "<userID>:<contentID>" -> empty
)

// CreateContent stores a new content item and its owner index entry.
func (s *Store) CreateContent(_ context.Context, content *domain.Content) error {
	key := []byte(contentPrefix + content.ID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check content exists: %w", err)
	}
	if exists {
		return ErrAlreadyExists
	}

	userIndexKey := []byte(contentByUserPrefix + content.UserID + ":" + content.ID)

	return s.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(content)
		if err != nil {
			return fmt.Errorf("marshal content: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}

		// Owner index, for listing a user's content
		if err := txn.Set(userIndexKey, []byte{}); err != nil {
			return err
		}

		return nil
	})
}

// GetContent retrieves a content item by ID.
func (s *Store) GetContent(_ context.Context, id string) (*domain.Content, error) {
	key := []byte(contentPrefix + id)

	var content domain.Content
	if err := s.get(key, &content); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("get content: %w", err)
	}

	return &content, nil
}

// ListContentByUser returns all content items owned by a user,
// oldest first.
func (s *Store) ListContentByUser(ctx context.Context, userID string) ([]*domain.Content, error) {
	prefix := []byte(contentByUserPrefix + userID + ":")
	var items []*domain.Content

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false // We only need keys

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			// Key format: content:idx:user:<userID>:<contentID>
			key := string(it.Item().Key())
			contentID := key[strings.LastIndex(key, ":")+1:]
			if contentID == "" {
				continue
			}

			content, err := s.GetContent(ctx, contentID)
			if err != nil {
				if errors.Is(err, ErrContentNotFound) {
					continue // Stale index entry
				}
				return err
			}

			items = append(items, content)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("list content by user: %w", err)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	return items, nil
}

// DeleteUserContent removes a content item owned by the given user.
// The operation is idempotent: a missing item or one owned by someone else
// is left untouched and no error is returned.
func (s *Store) DeleteUserContent(ctx context.Context, userID, contentID string) error {
	content, err := s.GetContent(ctx, contentID)
	if err != nil {
		if errors.Is(err, ErrContentNotFound) {
			return nil // Already gone
		}
		return err
	}

	if content.UserID != userID {
		return nil
	}

	key := []byte(contentPrefix + contentID)
	userIndexKey := []byte(contentByUserPrefix + userID + ":" + contentID)

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(key); err != nil {
			return err
		}

		if err := txn.Delete(userIndexKey); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		return nil
	})
}
