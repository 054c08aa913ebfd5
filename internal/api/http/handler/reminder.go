package handler

import (
	"context"
	"iter"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/avelichko/reminder-server/internal/logger"
	"github.com/avelichko/reminder-server/internal/model"
	"github.com/avelichko/reminder-server/internal/service"
)

// ReminderService defines ownership-checked reminder operations.
type ReminderService interface {
	Create(ctx context.Context, ownerID uuid.UUID, params service.CreateReminderParams) (model.Reminder, error)
	Edit(ctx context.Context, ownerID, id uuid.UUID, params model.UpdateReminderParams) (model.Reminder, error)
	ToggleEmergent(ctx context.Context, ownerID, id uuid.UUID) (model.Reminder, error)
	ToggleFavorite(ctx context.Context, ownerID, id uuid.UUID) (model.Reminder, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Get(ctx context.Context, ownerID, id uuid.UUID) (model.Reminder, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Reminder, error)
	FilterAndSort(ctx context.Context, ownerID uuid.UUID, params service.QueryParams) (iter.Seq[service.TimedReminder], error)
}

// Reminder handles HTTP endpoints for reminders. Every route sits behind
// the authorization gate; the owner always comes from the request context,
// never from the payload.
type Reminder struct {
	reminderService ReminderService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewReminder creates a new Reminder handler.
func NewReminder(reminderService ReminderService, contextManager model.ContextManager, logger *logger.Logger) *Reminder {
	return &Reminder{
		reminderService: reminderService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

type reminderResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	IsFavorite  bool      `json:"isFavorite"`
	IsEmergent  bool      `json:"isEmergent"`
	CreatedAt   time.Time `json:"created_at"`
}

type remainingTimeResponse struct {
	Milliseconds int64  `json:"milliseconds"`
	Expired      bool   `json:"expired"`
	Days         int    `json:"days"`
	Hours        int    `json:"hours"`
	Minutes      int    `json:"minutes"`
	Human        string `json:"human"`
}

type timedReminderResponse struct {
	reminderResponse
	RemainingTime remainingTimeResponse `json:"remainingTime"`
}

func toReminderResponse(r model.Reminder) reminderResponse {
	return reminderResponse{
		ID:          r.ID.String(),
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		IsFavorite:  r.IsFavorite,
		IsEmergent:  r.IsEmergent,
		CreatedAt:   r.CreatedAt,
	}
}

func toTimedReminderResponse(tr service.TimedReminder) timedReminderResponse {
	return timedReminderResponse{
		reminderResponse: toReminderResponse(tr.Reminder),
		RemainingTime: remainingTimeResponse{
			Milliseconds: tr.Remaining.Milliseconds,
			Expired:      tr.Remaining.Expired,
			Days:         tr.Remaining.Days,
			Hours:        tr.Remaining.Hours,
			Minutes:      tr.Remaining.Minutes,
			Human:        tr.Remaining.Human,
		},
	}
}

type createReminderRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}

// Create stores a new reminder owned by the caller.
func (h *Reminder) Create(c echo.Context) error {
	ownerID, ok := h.owner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authorization required"})
	}

	var req createReminderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	reminder, err := h.reminderService.Create(c.Request().Context(), ownerID, service.CreateReminderParams{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, toReminderResponse(reminder))
}

type editReminderRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}

// Edit applies a partial update to an owned reminder.
func (h *Reminder) Edit(c echo.Context) error {
	ownerID, id, ok := h.ownerAndID(c)
	if !ok {
		return nil
	}

	var req editReminderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	reminder, svcErr := h.reminderService.Edit(c.Request().Context(), ownerID, id, model.UpdateReminderParams{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if svcErr != nil {
		return respondError(c, h.logger, svcErr)
	}

	return c.JSON(http.StatusOK, toReminderResponse(reminder))
}

// ToggleEmergent flips the emergent flag.
func (h *Reminder) ToggleEmergent(c echo.Context) error {
	return h.toggle(c, h.reminderService.ToggleEmergent)
}

// ToggleFavorite flips the favorite flag.
func (h *Reminder) ToggleFavorite(c echo.Context) error {
	return h.toggle(c, h.reminderService.ToggleFavorite)
}

func (h *Reminder) toggle(c echo.Context, op func(context.Context, uuid.UUID, uuid.UUID) (model.Reminder, error)) error {
	ownerID, id, ok := h.ownerAndID(c)
	if !ok {
		return nil
	}

	reminder, svcErr := op(c.Request().Context(), ownerID, id)
	if svcErr != nil {
		return respondError(c, h.logger, svcErr)
	}

	return c.JSON(http.StatusOK, toReminderResponse(reminder))
}

// Delete removes an owned reminder.
func (h *Reminder) Delete(c echo.Context) error {
	ownerID, id, ok := h.ownerAndID(c)
	if !ok {
		return nil
	}

	if svcErr := h.reminderService.Delete(c.Request().Context(), ownerID, id); svcErr != nil {
		return respondError(c, h.logger, svcErr)
	}

	return c.NoContent(http.StatusNoContent)
}

// List returns all reminders of the caller.
func (h *Reminder) List(c echo.Context) error {
	ownerID, ok := h.owner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authorization required"})
	}

	reminders, err := h.reminderService.List(c.Request().Context(), ownerID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	out := make([]reminderResponse, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, toReminderResponse(r))
	}

	return c.JSON(http.StatusOK, out)
}

// Get returns a single owned reminder.
func (h *Reminder) Get(c echo.Context) error {
	ownerID, id, ok := h.ownerAndID(c)
	if !ok {
		return nil
	}

	reminder, svcErr := h.reminderService.Get(c.Request().Context(), ownerID, id)
	if svcErr != nil {
		return respondError(c, h.logger, svcErr)
	}

	return c.JSON(http.StatusOK, toReminderResponse(reminder))
}

// FilterSort returns the caller's reminders filtered, sorted and augmented
// with remaining time.
func (h *Reminder) FilterSort(c echo.Context) error {
	ownerID, ok := h.owner(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authorization required"})
	}

	seq, err := h.reminderService.FilterAndSort(c.Request().Context(), ownerID, service.QueryParams{
		DueDate:    c.QueryParam("due_date"),
		IsFavorite: c.QueryParam("isFavorite"),
		IsEmergent: c.QueryParam("isEmergent"),
		SortBy:     c.QueryParam("sortBy"),
		Order:      c.QueryParam("order"),
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	out := []timedReminderResponse{}
	for tr := range seq {
		out = append(out, toTimedReminderResponse(tr))
	}

	return c.JSON(http.StatusOK, out)
}

func (h *Reminder) owner(c echo.Context) (uuid.UUID, bool) {
	return h.contextManager.GetUserIDFromContext(c.Request().Context())
}

// ownerAndID resolves the caller and the :id path parameter. On failure the
// response is already written and ok is false.
func (h *Reminder) ownerAndID(c echo.Context) (ownerID, id uuid.UUID, ok bool) {
	ownerID, ok = h.owner(c)
	if !ok {
		_ = c.JSON(http.StatusUnauthorized, map[string]string{"error": "authorization required"})
		return uuid.Nil, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid reminder id"})
		return uuid.Nil, uuid.Nil, false
	}

	return ownerID, id, true
}
