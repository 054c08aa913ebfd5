package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avelichko/reminder-server/internal/logger"
	"github.com/avelichko/reminder-server/internal/model"
	"github.com/avelichko/reminder-server/internal/service"
)

// refreshCookieName is the cookie carrying the refresh token between the
// browser and the auth endpoints.
const refreshCookieName = "refresh_token"

// AuthService defines registration, login and token lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, params service.RegisterParams) (model.User, error)
	Login(ctx context.Context, email, password string) (service.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService   AuthService
	secureCookies bool
	refreshTTL    time.Duration
	logger        *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, secureCookies bool, refreshTTL time.Duration, logger *logger.Logger) *Auth {
	return &Auth{
		authService:   authService,
		secureCookies: secureCookies,
		refreshTTL:    refreshTTL,
		logger:        logger,
	}
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u model.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

// Register creates a new user. The password hash never appears in the
// response.
func (h *Auth) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	user, err := h.authService.Register(c.Request().Context(), service.RegisterParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login verifies credentials and returns a token pair. The refresh token
// is also set as an httpOnly cookie.
func (h *Auth) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	pair, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	c.SetCookie(h.refreshCookie(pair.RefreshToken, h.refreshTTL))

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout revokes the refresh token from the cookie and clears it. Always
// responds 204, even when no valid cookie is presented.
func (h *Auth) Logout(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return c.NoContent(http.StatusNoContent)
	}

	if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
		return respondError(c, h.logger, err)
	}

	c.SetCookie(h.refreshCookie("", -time.Second))

	return c.NoContent(http.StatusNoContent)
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// RefreshToken exchanges the refresh cookie for a new access token.
func (h *Auth) RefreshToken(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return respondError(c, h.logger, model.ErrInvalidToken)
	}

	access, err := h.authService.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, refreshResponse{AccessToken: access})
}

func (h *Auth) refreshCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     refreshCookieName,
		Value:    value,
		Path:     "/api/v1/auth",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}
