package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagSeedAndList(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	svc := NewTagService(s, nil)
	ctx := context.Background()

	for _, title := range []string{"productivity", "ideas", "learning"} {
		created, err := svc.Seed(ctx, title)
		require.NoError(t, err)
		assert.True(t, created)
	}

	tags, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "ideas", tags[0].Title)
}

func TestTagSeed_Idempotent(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	svc := NewTagService(s, nil)
	ctx := context.Background()

	created, err := svc.Seed(ctx, "productivity")
	require.NoError(t, err)
	assert.True(t, created)

	// Seeding the same title again is a no-op, trimmed or not
	created, err = svc.Seed(ctx, "  productivity ")
	require.NoError(t, err)
	assert.False(t, created)

	tags, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestTagList_EmptyIsNotNil(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	svc := NewTagService(s, nil)

	tags, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}
