package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/secondbrain-app/brain-server/internal/domain"
	domainerrors "github.com/secondbrain-app/brain-server/internal/errors"
	"github.com/secondbrain-app/brain-server/internal/id"
	"github.com/secondbrain-app/brain-server/internal/store"
)

// ContentService manages a user's saved content items.
type ContentService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewContentService creates a new content service.
func NewContentService(store *store.Store, logger *slog.Logger) *ContentService {
	return &ContentService{
		store:  store,
		logger: logger,
	}
}

// CreateContentRequest contains a new content item.
// UserID is set from the authenticated identity by the handler, never from
// the request body.
type CreateContentRequest struct {
	Link   string   `json:"link" validate:"required"`
	Type   string   `json:"type" validate:"required"`
	Title  string   `json:"title" validate:"required"`
	Tags   []string `json:"tags"`
	UserID string   `json:"-"`
}

// Create saves a new content item owned by the requesting user.
func (s *ContentService) Create(ctx context.Context, req CreateContentRequest) (*domain.Content, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	contentType := domain.ContentType(req.Type)
	if !contentType.IsValid() {
		return nil, domainerrors.Validationf("type must be one of: %s", domain.ContentTypeValues())
	}

	contentID, err := id.Generate("content")
	if err != nil {
		return nil, fmt.Errorf("generate content ID: %w", err)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	content := &domain.Content{
		Record: domain.Record{
			ID: contentID,
		},
		Link:   req.Link,
		Type:   contentType,
		Title:  req.Title,
		Tags:   tags,
		UserID: req.UserID,
	}
	content.InitTimestamps()

	if err := s.store.CreateContent(ctx, content); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Content created",
			"content_id", contentID,
			"user_id", req.UserID,
			"type", contentType,
		)
	}

	return content, nil
}

// List returns all content items owned by the user.
func (s *ContentService) List(ctx context.Context, userID string) ([]*domain.Content, error) {
	items, err := s.store.ListContentByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	if items == nil {
		items = []*domain.Content{}
	}
	return items, nil
}

// Delete removes a content item if it exists and the user owns it.
// It succeeds regardless: a missing item or one owned by someone else is
// simply left alone.
func (s *ContentService) Delete(ctx context.Context, userID, contentID string) error {
	if contentID == "" {
		return domainerrors.Validation("contentId is required")
	}

	if err := s.store.DeleteUserContent(ctx, userID, contentID); err != nil {
		return fmt.Errorf("delete content: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Content delete requested",
			"content_id", contentID,
			"user_id", userID,
		)
	}

	return nil
}
