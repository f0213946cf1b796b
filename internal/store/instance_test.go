package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "brain-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := New(dbPath, nil)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

func TestNew_InitializesEntities(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	require.NotNil(t, store.Users)
	require.NotNil(t, store.Tags)
	require.NotNil(t, store.ShareLinks)
}

func TestClose(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "brain-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	store, err := New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	require.NoError(t, store.Close())
}

func TestList_ClosedStoreYieldsError(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "brain-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	store, err := New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	var listErr error
	for _, err := range store.Users.List(context.Background()) {
		listErr = err
	}
	require.Error(t, listErr)
}
