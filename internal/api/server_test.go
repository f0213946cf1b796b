package api

import (
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/secondbrain-app/brain-server/internal/auth"
	"github.com/secondbrain-app/brain-server/internal/service"
	"github.com/secondbrain-app/brain-server/internal/store"
)

// testServer wraps the API server for handler testing.
type testServer struct {
	*Server
	api          humatest.TestAPI
	cleanup      func()
	tokenService *auth.TokenService
}

// setupTestServer creates a test server backed by a temp-dir store.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return setupTestServerWithTokenDuration(t, 15*time.Minute)
}

// setupTestServerWithTokenDuration allows issuing short-lived or already
// expired tokens for bearer gate tests.
func setupTestServerWithTokenDuration(t *testing.T, tokenDuration time.Duration) *testServer {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "brain-api-test-*")
	require.NoError(t, err)

	st, err := store.New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	authKey, err := auth.LoadOrGenerateKey(tmpDir)
	require.NoError(t, err)

	tokenService, err := auth.NewTokenService(hex.EncodeToString(authKey), tokenDuration)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	services := &Services{
		Auth:    service.NewAuthService(st, tokenService, logger),
		Content: service.NewContentService(st, logger),
		Tag:     service.NewTagService(st, logger),
	}

	router := chi.NewRouter()
	humaConfig := huma.DefaultConfig("Brain API Test", "1.0.0")
	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		store:    st,
		services: services,
		router:   router,
		api:      api,
		logger:   logger,
	}

	s.registerHealthRoutes()
	s.registerAuthRoutes()
	s.registerContentRoutes()
	s.registerTagRoutes()
	s.registerShareRoutes()

	cleanup := func() {
		_ = st.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return &testServer{
		Server:       s,
		api:          humatest.Wrap(t, api),
		cleanup:      cleanup,
		tokenService: tokenService,
	}
}

// signupTestUser creates a user through the API and returns the access token
// and user ID.
func (ts *testServer) signupTestUser(t *testing.T, username string) (token string, userID string) {
	t.Helper()

	resp := ts.api.Post("/api/v1/signup", map[string]any{
		"username": username,
		"password": "pass1word!",
	})
	require.Equal(t, 201, resp.Code, "Signup failed: %s", resp.Body.String())

	var body AuthResponse
	require.NoError(t, unmarshalBody(resp.Body.Bytes(), &body))

	return body.Token, body.User.ID
}

func unmarshalBody(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

