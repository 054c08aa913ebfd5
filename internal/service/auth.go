package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avelichko/reminder-server/internal/logger"
	"github.com/avelichko/reminder-server/internal/model"
)

// PasswordHasher is the one-way hash primitive used for credentials.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenPair is an access/refresh token pair issued on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterParams carries the registration profile and plaintext password.
type RegisterParams struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// Auth orchestrates registration, login, logout and token refresh.
// Side effects are confined to the user and refresh-token stores.
type Auth struct {
	userStore    model.UserStore
	hasher       PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(userStore model.UserStore, hasher PasswordHasher, tokenService *TokenService, logger *logger.Logger) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates a new user with a hashed password and no refresh tokens.
// A taken email yields ErrConflict, a missing password ErrInvalidInput.
func (a *Auth) Register(ctx context.Context, params RegisterParams) (model.User, error) {
	a.logger.Debug("Auth service: registering user", "email", params.Email)

	if params.Email == "" || params.Password == "" {
		return model.User{}, fmt.Errorf("email and password are required: %w", model.ErrInvalidInput)
	}

	existing, err := a.userStore.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists", "email", params.Email)
		return model.User{}, model.ErrConflict
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		Phone:        params.Phone,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The store enforces email/phone uniqueness, so a race between the
	// lookup above and this insert still surfaces as ErrConflict.
	saved, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.User{}, model.ErrConflict
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "email", params.Email, "user_id", saved.ID)

	return saved, nil
}

// Login verifies credentials and issues a token pair. An unknown email and
// a wrong password return the identical error to avoid user enumeration.
func (a *Auth) Login(ctx context.Context, email, password string) (TokenPair, error) {
	a.logger.Debug("Auth service: logging user in", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return TokenPair{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return TokenPair{}, model.ErrInvalidCredentials
	}

	access, refresh, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "user_id", user.ID)

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Logout revokes the presented refresh token. Logging out an unknown or
// already-revoked token succeeds as a no-op.
func (a *Auth) Logout(ctx context.Context, refreshToken string) error {
	if err := a.tokenService.Revoke(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (string, error) {
	access, err := a.tokenService.Refresh(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, model.ErrInvalidToken) {
			return "", err
		}
		return "", fmt.Errorf("failed to refresh access token: %w", err)
	}
	return access, nil
}
