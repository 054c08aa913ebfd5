package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avelichko/reminder-server/internal/logger"
	"github.com/avelichko/reminder-server/internal/model"
)

// mapError translates a service error into a status code and a generic
// client message. Anything unrecognized becomes a 500 with no details
// leaked; the cause is logged server-side by respondError.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict, "already exists"
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, model.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func respondError(c echo.Context, log *logger.Logger, err error) error {
	status, message := mapError(err)
	if status == http.StatusInternalServerError {
		log.Error("handler: unexpected error", "uri", c.Request().RequestURI, "error", err.Error())
	} else {
		log.Debug("handler: request rejected", "uri", c.Request().RequestURI, "status", status, "error", err.Error())
	}
	return c.JSON(status, map[string]string{"error": message})
}
