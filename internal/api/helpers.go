package api

import (
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/secondbrain-app/brain-server/internal/auth"
	domainerrors "github.com/secondbrain-app/brain-server/internal/errors"
)

// authenticateRequest validates the Authorization header and returns the
// authenticated identity claims.
//
// The error messages form a small contract clients rely on:
// missing header or wrong scheme, empty token, expired token, and anything
// else each produce a distinct 401 message.
func (s *Server) authenticateRequest(authHeader string) (*auth.AccessClaims, error) {
	if authHeader == "" {
		return nil, huma.Error401Unauthorized("No token provided")
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || scheme != "Bearer" {
		return nil, huma.Error401Unauthorized("No token provided")
	}

	if strings.TrimSpace(token) == "" {
		return nil, huma.Error401Unauthorized("Need to login first")
	}

	claims, err := s.services.Auth.VerifyAccessToken(token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrTokenExpired) {
			return nil, domainerrors.TokenExpired("Token expired")
		}
		return nil, huma.Error401Unauthorized("Invalid token")
	}

	return claims, nil
}
