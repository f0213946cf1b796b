package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secondbrain-app/brain-server/internal/domain"
	domainerrors "github.com/secondbrain-app/brain-server/internal/errors"
)

func TestContentCreate(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	svc := NewContentService(s, nil)
	ctx := context.Background()

	content, err := svc.Create(ctx, CreateContentRequest{
		Link:   "https://go.dev/blog/slices",
		Type:   "article",
		Title:  "Go Slices",
		Tags:   []string{"tag-1", "tag-2"},
		UserID: "user-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, content.ID)
	assert.Equal(t, domain.ContentTypeArticle, content.Type)
	assert.Equal(t, "user-1", content.UserID)
	assert.Equal(t, []string{"tag-1", "tag-2"}, content.Tags)
	assert.False(t, content.CreatedAt.IsZero())
}

func TestContentCreate_DefaultsTags(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	svc := NewContentService(s, nil)

	content, err := svc.Create(context.Background(), CreateContentRequest{
		Link:   "https://example.com",
		Type:   "link",
		Title:  "Example",
		UserID: "user-1",
	})
	require.NoError(t, err)
	assert.NotNil(t, content.Tags)
	assert.Empty(t, content.Tags)
}

func TestContentCreate_Invalid(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	svc := NewContentService(s, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateContentRequest
	}{
		{"missing link", CreateContentRequest{Type: "article", Title: "T", UserID: "user-1"}},
		{"missing type", CreateContentRequest{Link: "https://example.com", Title: "T", UserID: "user-1"}},
		{"missing title", CreateContentRequest{Link: "https://example.com", Type: "article", UserID: "user-1"}},
		{"unknown type", CreateContentRequest{Link: "https://example.com", Type: "podcast", Title: "T", UserID: "user-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			require.Error(t, err)
			assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
		})
	}
}

func TestContentList_Isolation(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	svc := NewContentService(s, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateContentRequest{
		Link: "https://example.com/a", Type: "article", Title: "A", UserID: "user-a",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateContentRequest{
		Link: "https://example.com/b", Type: "video", Title: "B", UserID: "user-b",
	})
	require.NoError(t, err)

	itemsA, err := svc.List(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, itemsA, 1)
	assert.Equal(t, "A", itemsA[0].Title)

	itemsB, err := svc.List(ctx, "user-b")
	require.NoError(t, err)
	require.Len(t, itemsB, 1)
	assert.Equal(t, "B", itemsB[0].Title)
}

func TestContentList_EmptyIsNotNil(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	svc := NewContentService(s, nil)

	items, err := svc.List(context.Background(), "user-none")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestContentDelete(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	svc := NewContentService(s, nil)
	ctx := context.Background()

	content, err := svc.Create(ctx, CreateContentRequest{
		Link: "https://example.com", Type: "article", Title: "T", UserID: "user-1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "user-1", content.ID))

	items, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestContentDelete_CrossOwner(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	svc := NewContentService(s, nil)
	ctx := context.Background()

	content, err := svc.Create(ctx, CreateContentRequest{
		Link: "https://example.com", Type: "article", Title: "T", UserID: "user-a",
	})
	require.NoError(t, err)

	// Another user's delete succeeds but removes nothing
	require.NoError(t, svc.Delete(ctx, "user-b", content.ID))

	items, err := svc.List(ctx, "user-a")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestContentDelete_MissingID(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	svc := NewContentService(s, nil)

	err := svc.Delete(context.Background(), "user-1", "")
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}
