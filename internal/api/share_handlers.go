package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/secondbrain-app/brain-server/internal/errors"
)

// Share routes are declared but not yet implemented: the share link schema
// exists at the store level, while the HTTP surface responds 501 until the
// public brain view ships.
func (s *Server) registerShareRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "shareBrain",
		Method:      http.MethodPost,
		Path:        "/api/v1/brain/share",
		Summary:     "Share brain",
		Description: "Creates a public share link for the user's content. Not yet implemented.",
		Tags:        []string{"Sharing"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleShareBrain)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSharedBrain",
		Method:      http.MethodGet,
		Path:        "/api/v1/brain/{shareLink}",
		Summary:     "View shared brain",
		Description: "Resolves a public share link. Not yet implemented.",
		Tags:        []string{"Sharing"},
	}, s.handleGetSharedBrain)
}

// ShareBrainInput wraps the share request for Huma.
type ShareBrainInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
}

// GetSharedBrainInput wraps the shared-brain lookup for Huma.
type GetSharedBrainInput struct {
	ShareLink string `path:"shareLink" doc:"Public share hash"`
}

func (s *Server) handleShareBrain(_ context.Context, input *ShareBrainInput) (*MessageOutput, error) {
	if _, err := s.authenticateRequest(input.Authorization); err != nil {
		return nil, err
	}
	return nil, domainerrors.NotImplemented("Sharing is not available yet")
}

func (s *Server) handleGetSharedBrain(_ context.Context, _ *GetSharedBrainInput) (*MessageOutput, error) {
	return nil, domainerrors.NotImplemented("Sharing is not available yet")
}
