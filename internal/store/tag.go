package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/secondbrain-app/brain-server/internal/domain"
)

// CreateTag adds a tag to the vocabulary.
// Returns ErrTagExists when the normalized title is already present.
func (s *Store) CreateTag(ctx context.Context, tag *domain.Tag) error {
	err := s.Tags.Create(ctx, tag.ID, tag)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return ErrTagExists
		}
		return fmt.Errorf("create tag: %w", err)
	}
	return nil
}

// GetTagByTitle retrieves a tag by its title.
func (s *Store) GetTagByTitle(ctx context.Context, title string) (*domain.Tag, error) {
	tag, err := s.Tags.GetByIndex(ctx, "title", title)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("get tag by title: %w", err)
	}
	return tag, nil
}

// ListTags returns the whole tag vocabulary, sorted by title.
func (s *Store) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	for tag, err := range s.Tags.List(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list tags: %w", err)
		}
		tags = append(tags, tag)
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Title < tags[j].Title
	})

	return tags, nil
}
