package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avelichko/reminder-server/internal/logger"
	"github.com/avelichko/reminder-server/internal/model"
)

// TokenService provides high-level operations for issuing, refreshing, and
// revoking tokens. It composes the TokenManager and RefreshTokenStore.
// Access tokens are stateless; refresh tokens are additionally gated by
// membership in the store, which is what makes revocation possible.
type TokenService struct {
	manager    model.TokenManager
	store      model.RefreshTokenStore
	refreshTTL time.Duration
	logger     *logger.Logger
}

func NewTokenService(manager model.TokenManager, store model.RefreshTokenStore, refreshTTL time.Duration, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, store: store, refreshTTL: refreshTTL, logger: logger}
}

// Issue generates an access/refresh pair and persists the refresh token
// hash so it can later be revoked.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (accessToken string, refreshToken string, err error) {
	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return "", "", fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.manager.GenerateRefreshToken(userID)
	if err != nil {
		return "", "", fmt.Errorf("issue refresh: %w", err)
	}

	now := time.Now()
	rt := model.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashRefresh(refresh),
		IssuedAt:  now,
		ExpiresAt: now.Add(s.refreshTTL),
		CreatedAt: now,
	}

	if err := s.store.Create(ctx, rt); err != nil {
		return "", "", fmt.Errorf("persist refresh: %w", err)
	}

	return access, refresh, nil
}

// Refresh validates the presented refresh token and returns a new access
// token. The refresh token is not rotated. Forged, expired and revoked
// tokens all collapse into ErrInvalidToken.
func (s *TokenService) Refresh(ctx context.Context, presentedRefresh string) (newAccess string, err error) {
	userID, err := s.manager.ParseRefreshToken(presentedRefresh)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, model.ErrInvalidToken)
	}

	rt, err := s.store.GetByTokenHash(ctx, hashRefresh(presentedRefresh))
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrInvalidToken
	}
	if err != nil {
		return "", fmt.Errorf("lookup refresh: %w", err)
	}

	if time.Now().After(rt.ExpiresAt) {
		return "", fmt.Errorf("%v: %w", model.ErrTokenExpired, model.ErrInvalidToken)
	}

	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return "", fmt.Errorf("issue new access: %w", err)
	}

	return access, nil
}

// Revoke removes the presented token from the store. Revoking a token that
// was never issued or is already revoked is a no-op: the token is skipped,
// not verified, so even an expired token can be logged out.
func (s *TokenService) Revoke(ctx context.Context, presentedRefresh string) error {
	return s.store.DeleteByTokenHash(ctx, hashRefresh(presentedRefresh))
}

// RevokeAllForUser invalidates every refresh token the user holds.
func (s *TokenService) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return s.store.DeleteAllByUser(ctx, userID)
}

// GetUserID resolves an access token to its subject. No store lookup: the
// access path stays a pure function of token, clock and secret.
func (s *TokenService) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	return s.manager.ParseAccessToken(token)
}

func hashRefresh(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}
