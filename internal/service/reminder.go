package service

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/avelichko/reminder-server/internal/logger"
	"github.com/avelichko/reminder-server/internal/model"
)

// Reminder orchestrates ownership-checked CRUD over reminders. The owner is
// always the authenticated caller; a payload can never designate another
// one. Reads and writes against a foreign reminder fail exactly like reads
// and writes against a missing one.
type Reminder struct {
	store  model.ReminderStore
	logger *logger.Logger
}

func NewReminder(store model.ReminderStore, logger *logger.Logger) *Reminder {
	return &Reminder{store: store, logger: logger}
}

// CreateReminderParams carries the caller-supplied fields of a new reminder.
type CreateReminderParams struct {
	Title       string
	Description string
	DueDate     *time.Time
}

// Create stores a new reminder owned by ownerID. A missing due date falls
// back to the fixed default.
func (s *Reminder) Create(ctx context.Context, ownerID uuid.UUID, params CreateReminderParams) (model.Reminder, error) {
	if params.Title == "" {
		return model.Reminder{}, fmt.Errorf("title is required: %w", model.ErrInvalidInput)
	}

	dueDate := model.DefaultDueDate
	if params.DueDate != nil {
		dueDate = *params.DueDate
	}

	now := time.Now()
	reminder := model.Reminder{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       params.Title,
		Description: params.Description,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := s.store.Create(ctx, reminder)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("failed to create reminder: %w", err)
	}

	s.logger.Info("Reminder service: reminder created", "reminder_id", saved.ID, "owner_id", ownerID)

	return saved, nil
}

// Edit applies a partial update to an owned reminder.
func (s *Reminder) Edit(ctx context.Context, ownerID, id uuid.UUID, params model.UpdateReminderParams) (model.Reminder, error) {
	reminder, err := s.store.GetByID(ctx, ownerID, id)
	if err != nil {
		return model.Reminder{}, err
	}

	if params.Title != nil {
		if *params.Title == "" {
			return model.Reminder{}, fmt.Errorf("title cannot be empty: %w", model.ErrInvalidInput)
		}
		reminder.Title = *params.Title
	}
	if params.Description != nil {
		reminder.Description = *params.Description
	}
	if params.DueDate != nil {
		reminder.DueDate = *params.DueDate
	}

	return s.store.Update(ctx, reminder)
}

// ToggleEmergent flips the emergent flag of an owned reminder.
func (s *Reminder) ToggleEmergent(ctx context.Context, ownerID, id uuid.UUID) (model.Reminder, error) {
	reminder, err := s.store.GetByID(ctx, ownerID, id)
	if err != nil {
		return model.Reminder{}, err
	}

	reminder.IsEmergent = !reminder.IsEmergent
	return s.store.Update(ctx, reminder)
}

// ToggleFavorite flips the favorite flag of an owned reminder.
func (s *Reminder) ToggleFavorite(ctx context.Context, ownerID, id uuid.UUID) (model.Reminder, error) {
	reminder, err := s.store.GetByID(ctx, ownerID, id)
	if err != nil {
		return model.Reminder{}, err
	}

	reminder.IsFavorite = !reminder.IsFavorite
	return s.store.Update(ctx, reminder)
}

// Delete removes an owned reminder.
func (s *Reminder) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.store.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.logger.Info("Reminder service: reminder deleted", "reminder_id", id, "owner_id", ownerID)

	return nil
}

// Get returns a single owned reminder.
func (s *Reminder) Get(ctx context.Context, ownerID, id uuid.UUID) (model.Reminder, error) {
	return s.store.GetByID(ctx, ownerID, id)
}

// List returns all reminders of the owner in creation order.
func (s *Reminder) List(ctx context.Context, ownerID uuid.UUID) ([]model.Reminder, error) {
	reminders, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}

// FilterAndSort runs the query engine: validates the loose parameters,
// fetches the owner's matching reminders in the requested order and
// returns them as a lazy sequence augmented with remaining time. With no
// explicit sort key the order is remaining-time ascending, overdue first.
func (s *Reminder) FilterAndSort(ctx context.Context, ownerID uuid.UUID, params QueryParams) (iter.Seq[TimedReminder], error) {
	query, err := params.Normalize()
	if err != nil {
		return nil, err
	}

	reminders, err := s.store.List(ctx, ownerID, query)
	if err != nil {
		return nil, err
	}

	return augmentRemaining(reminders, time.Now()), nil
}
