package reqcontext

import (
	"context"

	"github.com/google/uuid"

	"github.com/avelichko/reminder-server/internal/model"
)

type contextKey string

const userIDKey contextKey = "user_id"

var _ model.ContextManager = (*Manager)(nil)

// Manager propagates the authenticated user ID through request contexts.
type Manager struct{}

// NewManager creates a new request context manager.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a context carrying the user ID.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the user ID set by the authorization gate.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
