package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenStore persists issued refresh tokens for revocation.
// A row per token is the store-level equivalent of a per-user token list:
// append and remove-one are single-row INSERT/DELETE, so concurrent
// login/logout on the same user cannot lose updates.
type RefreshTokenStore interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash []byte) (RefreshToken, error)
	DeleteByTokenHash(ctx context.Context, tokenHash []byte) error
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) error
}

// RefreshToken is the stored record of an issued refresh token.
// Only a SHA-256 hash of the token string is kept at rest.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash []byte
	IssuedAt  time.Time
	ExpiresAt time.Time
	CreatedAt time.Time
}
