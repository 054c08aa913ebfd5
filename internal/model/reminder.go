package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultDueDate is assigned when a reminder is created without a due date.
var DefaultDueDate = time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

// SortOrder is a sort direction token as accepted on the wire.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ReminderStore defines persistence operations for reminders. Every read,
// update and delete is predicated on the owner, so a foreign reminder ID is
// indistinguishable from a missing one: both yield ErrNotFound.
type ReminderStore interface {
	Create(ctx context.Context, reminder Reminder) (Reminder, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (Reminder, error)
	Update(ctx context.Context, reminder Reminder) (Reminder, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Reminder, error)
	List(ctx context.Context, ownerID uuid.UUID, query ReminderQuery) ([]Reminder, error)
}

// Reminder is a scheduled item owned by exactly one user.
type Reminder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
	IsFavorite  bool
	IsEmergent  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UpdateReminderParams carries a partial update; nil fields are left as is.
type UpdateReminderParams struct {
	Title       *string
	Description *string
	DueDate     *time.Time
}

// ReminderQuery describes filter predicates and sort options for listing.
// Nil filters impose no constraint. DueAfter is a greater-or-equal bound.
// An empty SortBy selects the implicit remaining-time ascending order,
// which places overdue reminders first.
type ReminderQuery struct {
	DueAfter   *time.Time
	IsFavorite *bool
	IsEmergent *bool
	SortBy     string
	Order      SortOrder
}
