package model

import "github.com/google/uuid"

// TokenManager generates and validates access/refresh tokens.
// Access and refresh tokens are signed with independent secrets, so a
// leaked access secret cannot forge refresh tokens and vice versa.
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ParseAccessToken(token string) (uuid.UUID, error)
	ParseRefreshToken(token string) (uuid.UUID, error)
}
