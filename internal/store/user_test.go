package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secondbrain-app/brain-server/internal/domain"
)

func testStoreUser(id, username string) *domain.User {
	user := &domain.User{
		Record:       domain.Record{ID: id},
		Username:     username,
		PasswordHash: "$argon2id$fake",
	}
	user.InitTimestamps()
	return user
}

func TestCreateUser(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	user := testStoreUser("user-test123", "alice")

	err := store.CreateUser(ctx, user)
	require.NoError(t, err)

	retrieved, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, "alice", retrieved.Username)
	assert.Equal(t, user.PasswordHash, retrieved.PasswordHash)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, testStoreUser("user-1", "alice")))

	err := store.CreateUser(ctx, testStoreUser("user-2", "alice"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestCreateUser_DuplicateUsernameAfterTrim(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, testStoreUser("user-1", "alice")))

	// Usernames are indexed trimmed, so padding does not evade uniqueness
	err := store.CreateUser(ctx, testStoreUser("user-2", "  alice  "))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestGetUser_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.GetUser(context.Background(), "user-missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserByUsername(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	user := testStoreUser("user-test123", "bob")
	require.NoError(t, store.CreateUser(ctx, user))

	retrieved, err := store.GetUserByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)

	// Lookup is trim-tolerant
	retrieved, err = store.GetUserByUsername(ctx, "  bob ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
