package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerTagRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/api/v1/tags",
		Summary:     "List tags",
		Description: "Lists the tag vocabulary available for classifying content.",
		Tags:        []string{"Tags"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListTags)
}

// TagDTO is a tag in API responses.
type TagDTO struct {
	ID        string    `json:"id" doc:"Tag ID"`
	Title     string    `json:"title" doc:"Tag title"`
	CreatedAt time.Time `json:"created_at" doc:"Creation timestamp"`
}

// ListTagsInput wraps the list request for Huma.
type ListTagsInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
}

// ListTagsResponse contains the tag vocabulary.
type ListTagsResponse struct {
	Message string   `json:"message" doc:"Status message"`
	Tags    []TagDTO `json:"tags" doc:"Available tags"`
}

// ListTagsOutput wraps the list response for Huma.
type ListTagsOutput struct {
	Body ListTagsResponse
}

func (s *Server) handleListTags(ctx context.Context, input *ListTagsInput) (*ListTagsOutput, error) {
	if _, err := s.authenticateRequest(input.Authorization); err != nil {
		return nil, err
	}

	tags, err := s.services.Tag.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]TagDTO, 0, len(tags))
	for _, tag := range tags {
		dtos = append(dtos, TagDTO{
			ID:        tag.ID,
			Title:     tag.Title,
			CreatedAt: tag.CreatedAt,
		})
	}

	return &ListTagsOutput{
		Body: ListTagsResponse{
			Message: "Tags fetched",
			Tags:    dtos,
		},
	}, nil
}
