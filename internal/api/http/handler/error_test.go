package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avelichko/reminder-server/internal/model"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", model.ErrInvalidInput, http.StatusBadRequest},
		{"wrapped invalid input", fmt.Errorf("bad due_date: %w", model.ErrInvalidInput), http.StatusBadRequest},
		{"conflict", model.ErrConflict, http.StatusConflict},
		{"invalid credentials", model.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", model.ErrInvalidToken, http.StatusUnauthorized},
		{"not found", model.ErrNotFound, http.StatusNotFound},
		{"unknown", errors.New("database on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := mapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, message)
			// internal causes never reach the client message
			assert.NotContains(t, message, "database")
		})
	}
}
