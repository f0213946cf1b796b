package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/secondbrain-app/brain-server/internal/service"
)

func (s *Server) registerAuthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "signup",
		Method:        http.MethodPost,
		Path:          "/api/v1/signup",
		Summary:       "Create account",
		Description:   "Creates a new user account and returns an access token.",
		Tags:          []string{"Authentication"},
		DefaultStatus: http.StatusCreated,
	}, s.handleSignup)

	huma.Register(s.api, huma.Operation{
		OperationID: "signin",
		Method:      http.MethodPost,
		Path:        "/api/v1/signin",
		Summary:     "Sign in",
		Description: "Authenticates a user and returns an access token.",
		Tags:        []string{"Authentication"},
	}, s.handleSignin)
}

// === DTOs ===

// CredentialsRequest is the request body for signup and signin.
type CredentialsRequest struct {
	Username string `json:"username" required:"false" doc:"Account username"`
	Password string `json:"password" required:"false" doc:"Account password"`
}

// CredentialsInput wraps the credentials request for Huma.
type CredentialsInput struct {
	Body CredentialsRequest
}

// UserResponse contains public user information in API responses.
type UserResponse struct {
	ID       string `json:"id" doc:"User ID"`
	Username string `json:"username" doc:"Username"`
}

// AuthResponse contains the issued token and user info.
type AuthResponse struct {
	Message string       `json:"message" doc:"Status message"`
	Token   string       `json:"token" doc:"PASETO access token"`
	User    UserResponse `json:"user" doc:"Authenticated user"`
}

// AuthOutput wraps the auth response for Huma.
type AuthOutput struct {
	Status int
	Body   AuthResponse
}

// MessageResponse contains a simple message.
type MessageResponse struct {
	Message string `json:"message" doc:"Status message"`
}

// MessageOutput wraps the message response for Huma.
type MessageOutput struct {
	Body MessageResponse
}

// === Handlers ===

func (s *Server) handleSignup(ctx context.Context, input *CredentialsInput) (*AuthOutput, error) {
	resp, err := s.services.Auth.Signup(ctx, service.SignupRequest{
		Username: input.Body.Username,
		Password: input.Body.Password,
	})
	if err != nil {
		return nil, err
	}

	return &AuthOutput{
		Status: http.StatusCreated,
		Body: AuthResponse{
			Message: "User created successfully",
			Token:   resp.Token,
			User: UserResponse{
				ID:       resp.User.ID,
				Username: resp.User.Username,
			},
		},
	}, nil
}

func (s *Server) handleSignin(ctx context.Context, input *CredentialsInput) (*AuthOutput, error) {
	resp, err := s.services.Auth.Signin(ctx, service.SigninRequest{
		Username: input.Body.Username,
		Password: input.Body.Password,
	})
	if err != nil {
		return nil, err
	}

	return &AuthOutput{
		Status: http.StatusOK,
		Body: AuthResponse{
			Message: "Signed in successfully",
			Token:   resp.Token,
			User: UserResponse{
				ID:       resp.User.ID,
				Username: resp.User.Username,
			},
		},
	}, nil
}
