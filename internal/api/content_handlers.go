package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/secondbrain-app/brain-server/internal/domain"
	"github.com/secondbrain-app/brain-server/internal/service"
)

func (s *Server) registerContentRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "createContent",
		Method:        http.MethodPost,
		Path:          "/api/v1/content",
		Summary:       "Save content",
		Description:   "Saves a new content item owned by the authenticated user.",
		Tags:          []string{"Content"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleCreateContent)

	huma.Register(s.api, huma.Operation{
		OperationID: "listContent",
		Method:      http.MethodGet,
		Path:        "/api/v1/content",
		Summary:     "List content",
		Description: "Lists all content items owned by the authenticated user.",
		Tags:        []string{"Content"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListContent)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteContent",
		Method:      http.MethodDelete,
		Path:        "/api/v1/content",
		Summary:     "Delete content",
		Description: "Deletes a content item if the authenticated user owns it. Succeeds either way.",
		Tags:        []string{"Content"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteContent)
}

// === DTOs ===

// ContentDTO is a content item in API responses.
type ContentDTO struct {
	ID        string    `json:"id" doc:"Content ID"`
	Link      string    `json:"link" doc:"External link"`
	Type      string    `json:"type" doc:"Content type"`
	Title     string    `json:"title" doc:"Title"`
	Tags      []string  `json:"tags" doc:"Tag references"`
	UserID    string    `json:"user_id" doc:"Owner user ID"`
	CreatedAt time.Time `json:"created_at" doc:"Creation timestamp"`
	UpdatedAt time.Time `json:"updated_at" doc:"Last update timestamp"`
}

// CreateContentRequest is the request body for saving content.
type CreateContentRequest struct {
	Link  string   `json:"link" required:"false" doc:"External link"`
	Type  string   `json:"type" required:"false" doc:"Content type (article, video, tweet, document, image, link)"`
	Title string   `json:"title" required:"false" doc:"Title"`
	Tags  []string `json:"tags,omitempty" doc:"Tag references"`
}

// CreateContentInput wraps the create request for Huma.
type CreateContentInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	Body          CreateContentRequest
}

// CreateContentResponse contains the saved content item.
type CreateContentResponse struct {
	Message string     `json:"message" doc:"Status message"`
	Content ContentDTO `json:"content" doc:"Saved content item"`
}

// CreateContentOutput wraps the create response for Huma.
type CreateContentOutput struct {
	Status int
	Body   CreateContentResponse
}

// ListContentInput wraps the list request for Huma.
type ListContentInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
}

// ListContentResponse contains a user's content items.
type ListContentResponse struct {
	Message string       `json:"message" doc:"Status message"`
	Content []ContentDTO `json:"content" doc:"Content items owned by the user"`
	User    UserResponse `json:"user" doc:"Owning user"`
}

// ListContentOutput wraps the list response for Huma.
type ListContentOutput struct {
	Body ListContentResponse
}

// DeleteContentRequest is the request body for deleting content.
type DeleteContentRequest struct {
	ContentID string `json:"contentId" required:"false" doc:"ID of the content item to delete"`
}

// DeleteContentInput wraps the delete request for Huma.
type DeleteContentInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	Body          DeleteContentRequest
}

// === Handlers ===

func (s *Server) handleCreateContent(ctx context.Context, input *CreateContentInput) (*CreateContentOutput, error) {
	claims, err := s.authenticateRequest(input.Authorization)
	if err != nil {
		return nil, err
	}

	content, err := s.services.Content.Create(ctx, service.CreateContentRequest{
		Link:   input.Body.Link,
		Type:   input.Body.Type,
		Title:  input.Body.Title,
		Tags:   input.Body.Tags,
		UserID: claims.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &CreateContentOutput{
		Status: http.StatusCreated,
		Body: CreateContentResponse{
			Message: "Content added",
			Content: mapContent(content),
		},
	}, nil
}

func (s *Server) handleListContent(ctx context.Context, input *ListContentInput) (*ListContentOutput, error) {
	claims, err := s.authenticateRequest(input.Authorization)
	if err != nil {
		return nil, err
	}

	items, err := s.services.Content.List(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	content := make([]ContentDTO, 0, len(items))
	for _, item := range items {
		content = append(content, mapContent(item))
	}

	return &ListContentOutput{
		Body: ListContentResponse{
			Message: "Content fetched",
			Content: content,
			User: UserResponse{
				ID:       claims.UserID,
				Username: claims.Username,
			},
		},
	}, nil
}

func (s *Server) handleDeleteContent(ctx context.Context, input *DeleteContentInput) (*MessageOutput, error) {
	claims, err := s.authenticateRequest(input.Authorization)
	if err != nil {
		return nil, err
	}

	if err := s.services.Content.Delete(ctx, claims.UserID, input.Body.ContentID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Content deleted"}}, nil
}

// === Helpers ===

func mapContent(c *domain.Content) ContentDTO {
	return ContentDTO{
		ID:        c.ID,
		Link:      c.Link,
		Type:      string(c.Type),
		Title:     c.Title,
		Tags:      c.Tags,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
