package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager propagates the authenticated user ID through a request
// context. The authorization gate sets it, handlers read it.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
}
