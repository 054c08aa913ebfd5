package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avelichko/reminder-server/internal/api/http/reqcontext"
	"github.com/avelichko/reminder-server/internal/mocks"
	"github.com/avelichko/reminder-server/internal/model"
	"github.com/avelichko/reminder-server/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	validUser := uuid.New()

	tests := []struct {
		name           string
		authHeader     string
		tokenSvcUserID uuid.UUID
		tokenSvcErr    error
		wantStatus     int
		wantNextCalled bool
	}{
		{
			name:           "missing authorization header",
			authHeader:     "",
			wantStatus:     http.StatusUnauthorized,
			wantNextCalled: false,
		},
		{
			name:           "not a bearer header",
			authHeader:     "Basic dXNlcjpwYXNz",
			wantStatus:     http.StatusUnauthorized,
			wantNextCalled: false,
		},
		{
			name:           "empty bearer token",
			authHeader:     "Bearer ",
			wantStatus:     http.StatusUnauthorized,
			wantNextCalled: false,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid",
			tokenSvcErr:    model.ErrTokenSignature,
			wantStatus:     http.StatusUnauthorized,
			wantNextCalled: false,
		},
		{
			name:           "nil user id from token",
			authHeader:     "Bearer token",
			tokenSvcUserID: uuid.Nil,
			wantStatus:     http.StatusUnauthorized,
			wantNextCalled: false,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer token",
			tokenSvcUserID: validUser,
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokenSvc := &mocks.TokenService{}
			tokenSvc.On("GetUserID", mock.Anything, mock.Anything).Return(tt.tokenSvcUserID, tt.tokenSvcErr).Maybe()

			ctxMgr := reqcontext.NewManager()
			m := NewAuthenticate(tokenSvc, ctxMgr, testutil.MakeNoopLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			nextCalled := false
			next := func(c echo.Context) error {
				nextCalled = true
				userID, ok := ctxMgr.GetUserIDFromContext(c.Request().Context())
				require.True(t, ok)
				assert.Equal(t, validUser, userID)
				return c.NoContent(http.StatusOK)
			}

			err := m.Handle(next)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
		})
	}
}
