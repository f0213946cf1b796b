package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/secondbrain-app/brain-server/internal/auth"
	"github.com/secondbrain-app/brain-server/internal/domain"
	domainerrors "github.com/secondbrain-app/brain-server/internal/errors"
	"github.com/secondbrain-app/brain-server/internal/id"
	"github.com/secondbrain-app/brain-server/internal/store"
)

// AuthService handles user signup, signin, and token verification.
type AuthService struct {
	store        *store.Store
	tokenService *auth.TokenService
	logger       *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(store *store.Store, tokenService *auth.TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:        store,
		tokenService: tokenService,
		logger:       logger,
	}
}

// SignupRequest contains new account credentials.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SigninRequest contains login credentials.
type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse contains the issued token and user data.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Signup creates a new user account and issues an access token.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domainerrors.Validation("Username and Password are required").WithCause(err)
	}

	if !auth.ValidPassword(req.Password) {
		return nil, domainerrors.Validation("Strong Password needed")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userID, err := id.Generate("user")
	if err != nil {
		return nil, fmt.Errorf("generate user ID: %w", err)
	}

	user := &domain.User{
		Record: domain.Record{
			ID: userID,
		},
		Username:     domain.NormalizeUsername(req.Username),
		PasswordHash: passwordHash,
	}
	user.InitTimestamps()

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			return nil, domainerrors.AlreadyExists("Username already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("User signed up",
			"user_id", userID,
			"username", user.Username,
		)
	}

	return &AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// Signin authenticates a user and issues an access token.
// Unknown usernames and wrong passwords produce the same error so the
// response does not reveal whether an account exists.
func (s *AuthService) Signin(ctx context.Context, req SigninRequest) (*AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domainerrors.Validation("Username and Password are required").WithCause(err)
	}

	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, domainerrors.InvalidCredentials("Invalid username or password")
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	valid, err := auth.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !valid {
		return nil, domainerrors.InvalidCredentials("Invalid username or password")
	}

	token, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("User signed in",
			"user_id", user.ID,
			"username", user.Username,
		)
	}

	return &AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// VerifyAccessToken validates a bearer token and returns its claims.
// Token verification is stateless: the user record is not re-read, so the
// claims carry everything downstream handlers need.
func (s *AuthService) VerifyAccessToken(tokenString string) (*auth.AccessClaims, error) {
	return s.tokenService.VerifyAccessToken(tokenString)
}
