package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secondbrain-app/brain-server/internal/domain"
)

func testStoreTag(id, title string) *domain.Tag {
	tag := &domain.Tag{
		Record: domain.Record{ID: id},
		Title:  title,
	}
	tag.InitTimestamps()
	return tag
}

func TestCreateTag(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.CreateTag(ctx, testStoreTag("tag-1", "productivity")))

	tag, err := store.GetTagByTitle(ctx, "productivity")
	require.NoError(t, err)
	assert.Equal(t, "tag-1", tag.ID)
}

func TestCreateTag_DuplicateTitle(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.CreateTag(ctx, testStoreTag("tag-1", "productivity")))

	err := store.CreateTag(ctx, testStoreTag("tag-2", "productivity"))
	assert.ErrorIs(t, err, ErrTagExists)
}

func TestGetTagByTitle_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.GetTagByTitle(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTagNotFound)
}

func TestListTags_SortedByTitle(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	for i, title := range []string{"productivity", "ideas", "learning"} {
		require.NoError(t, store.CreateTag(ctx, testStoreTag("tag-"+string(rune('a'+i)), title)))
	}

	tags, err := store.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "ideas", tags[0].Title)
	assert.Equal(t, "learning", tags[1].Title)
	assert.Equal(t, "productivity", tags[2].Title)
}

func TestListTags_Empty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	tags, err := store.ListTags(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tags)
}
