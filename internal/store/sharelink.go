package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/secondbrain-app/brain-server/internal/domain"
)

// CreateShareLink stores a share link.
// The hash and user indexes are unique, so a second link for the same user
// (or a hash collision) fails with ErrShareHashExists.
func (s *Store) CreateShareLink(ctx context.Context, link *domain.ShareLink) error {
	err := s.ShareLinks.Create(ctx, link.ID, link)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return ErrShareHashExists
		}
		return fmt.Errorf("create share link: %w", err)
	}
	return nil
}

// GetShareLinkByHash resolves a public share hash to its link record.
func (s *Store) GetShareLinkByHash(ctx context.Context, hash string) (*domain.ShareLink, error) {
	link, err := s.ShareLinks.GetByIndex(ctx, "hash", hash)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrShareLinkNotFound
		}
		return nil, fmt.Errorf("get share link by hash: %w", err)
	}
	return link, nil
}

// GetShareLinkByUser returns the active share link for a user, if any.
func (s *Store) GetShareLinkByUser(ctx context.Context, userID string) (*domain.ShareLink, error) {
	link, err := s.ShareLinks.GetByIndex(ctx, "user", userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrShareLinkNotFound
		}
		return nil, fmt.Errorf("get share link by user: %w", err)
	}
	return link, nil
}

// DeleteShareLink removes a share link. Idempotent.
func (s *Store) DeleteShareLink(ctx context.Context, id string) error {
	if err := s.ShareLinks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete share link: %w", err)
	}
	return nil
}
