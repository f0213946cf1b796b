package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/secondbrain-app/brain-server/internal/domain"
)

// CreateUser creates a new user account.
// Returns ErrUsernameExists when the normalized username is already taken.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	err := s.Users.Create(ctx, user.ID, user)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return ErrUsernameExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.Users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by username.
// The lookup trims surrounding whitespace to match how usernames are indexed.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.Users.GetByIndex(ctx, "username", username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}
