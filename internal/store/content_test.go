package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secondbrain-app/brain-server/internal/domain"
)

func testStoreContent(id, userID, title string) *domain.Content {
	content := &domain.Content{
		Record: domain.Record{ID: id},
		Link:   "https://example.com/" + id,
		Type:   domain.ContentTypeArticle,
		Title:  title,
		Tags:   []string{"productivity"},
		UserID: userID,
	}
	content.InitTimestamps()
	return content
}

func TestCreateContent(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	content := testStoreContent("content-1", "user-1", "Go Proverbs")

	require.NoError(t, store.CreateContent(ctx, content))

	retrieved, err := store.GetContent(ctx, content.ID)
	require.NoError(t, err)
	assert.Equal(t, content.ID, retrieved.ID)
	assert.Equal(t, content.Link, retrieved.Link)
	assert.Equal(t, domain.ContentTypeArticle, retrieved.Type)
	assert.Equal(t, "user-1", retrieved.UserID)
	assert.Equal(t, []string{"productivity"}, retrieved.Tags)
}

func TestCreateContent_DuplicateID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, store.CreateContent(ctx, testStoreContent("content-1", "user-1", "First")))

	err := store.CreateContent(ctx, testStoreContent("content-1", "user-1", "Second"))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestGetContent_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.GetContent(context.Background(), "content-missing")
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestListContentByUser(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	for i := range 3 {
		content := testStoreContent(fmt.Sprintf("content-%d", i), "user-1", fmt.Sprintf("Item %d", i))
		content.CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
		require.NoError(t, store.CreateContent(ctx, content))
	}
	require.NoError(t, store.CreateContent(ctx, testStoreContent("content-other", "user-2", "Other")))

	items, err := store.ListContentByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Oldest first, and never another user's items
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("content-%d", i), item.ID)
		assert.Equal(t, "user-1", item.UserID)
	}
}

func TestListContentByUser_Empty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	items, err := store.ListContentByUser(context.Background(), "user-none")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteUserContent(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	content := testStoreContent("content-1", "user-1", "Doomed")
	require.NoError(t, store.CreateContent(ctx, content))

	require.NoError(t, store.DeleteUserContent(ctx, "user-1", "content-1"))

	_, err := store.GetContent(ctx, "content-1")
	assert.ErrorIs(t, err, ErrContentNotFound)

	items, err := store.ListContentByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteUserContent_Idempotent(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.DeleteUserContent(context.Background(), "user-1", "content-missing")
	assert.NoError(t, err)
}

func TestDeleteUserContent_OtherOwner(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.CreateContent(ctx, testStoreContent("content-1", "user-1", "Mine")))

	// Deleting as another user is a no-op, not an error
	require.NoError(t, store.DeleteUserContent(ctx, "user-2", "content-1"))

	retrieved, err := store.GetContent(ctx, "content-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", retrieved.UserID)
}
