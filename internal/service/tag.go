package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/secondbrain-app/brain-server/internal/domain"
	"github.com/secondbrain-app/brain-server/internal/id"
	"github.com/secondbrain-app/brain-server/internal/store"
)

// TagService exposes the seeded tag vocabulary.
type TagService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewTagService creates a new tag service.
func NewTagService(store *store.Store, logger *slog.Logger) *TagService {
	return &TagService{
		store:  store,
		logger: logger,
	}
}

// List returns the whole tag vocabulary.
func (s *TagService) List(ctx context.Context) ([]*domain.Tag, error) {
	tags, err := s.store.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	if tags == nil {
		tags = []*domain.Tag{}
	}
	return tags, nil
}

// Seed inserts a tag with the given title, skipping titles already present.
// Used by the seeding command; there is no HTTP path that creates tags.
// Returns true when a new tag was inserted.
func (s *TagService) Seed(ctx context.Context, title string) (bool, error) {
	tagID, err := id.Generate("tag")
	if err != nil {
		return false, fmt.Errorf("generate tag ID: %w", err)
	}

	tag := &domain.Tag{
		Record: domain.Record{
			ID: tagID,
		},
		Title: domain.NormalizeTagTitle(title),
	}
	tag.InitTimestamps()

	if err := s.store.CreateTag(ctx, tag); err != nil {
		if errors.Is(err, store.ErrTagExists) {
			return false, nil
		}
		return false, fmt.Errorf("seed tag %q: %w", title, err)
	}

	if s.logger != nil {
		s.logger.Info("Tag seeded", "tag_id", tagID, "title", tag.Title)
	}

	return true, nil
}
