package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/avelichko/reminder-server/internal/model"
)

var _ model.ReminderStore = (*ReminderRepository)(nil)

type ReminderRepository struct {
	db *Connection
}

func NewReminderRepository(db *Connection) *ReminderRepository {
	return &ReminderRepository{db: db}
}

const reminderColumns = `id, owner_id, title, description, due_date, is_favorite, is_emergent, created_at, updated_at`

// sortColumns whitelists wire-level sort keys against table columns.
var sortColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"due_date":    "due_date",
	"isFavorite":  "is_favorite",
	"isEmergent":  "is_emergent",
	"created_at":  "created_at",
}

func (r *ReminderRepository) Create(ctx context.Context, reminder model.Reminder) (model.Reminder, error) {
	query := `INSERT INTO reminders (` + reminderColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + reminderColumns

	saved, err := r.scanRow(r.db.QueryRow(ctx, query,
		reminder.ID, reminder.OwnerID, reminder.Title, reminder.Description,
		reminder.DueDate, reminder.IsFavorite, reminder.IsEmergent,
		reminder.CreatedAt, reminder.UpdatedAt,
	))
	if err != nil {
		return model.Reminder{}, fmt.Errorf("failed to create reminder: %w", err)
	}

	return saved, nil
}

func (r *ReminderRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (model.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = $1 AND owner_id = $2`

	reminder, err := r.scanRow(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Reminder{}, model.ErrNotFound
		}
		return model.Reminder{}, fmt.Errorf("failed to get reminder by id: %w", err)
	}

	return reminder, nil
}

// Update writes mutable fields of the reminder, predicated on the owner.
func (r *ReminderRepository) Update(ctx context.Context, reminder model.Reminder) (model.Reminder, error) {
	query := `UPDATE reminders
			  SET title = $3, description = $4, due_date = $5, is_favorite = $6, is_emergent = $7, updated_at = NOW()
			  WHERE id = $1 AND owner_id = $2
			  RETURNING ` + reminderColumns

	saved, err := r.scanRow(r.db.QueryRow(ctx, query,
		reminder.ID, reminder.OwnerID, reminder.Title, reminder.Description,
		reminder.DueDate, reminder.IsFavorite, reminder.IsEmergent,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Reminder{}, model.ErrNotFound
		}
		return model.Reminder{}, fmt.Errorf("failed to update reminder: %w", err)
	}

	return saved, nil
}

func (r *ReminderRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const query = `DELETE FROM reminders WHERE id = $1 AND owner_id = $2`

	tag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *ReminderRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE owner_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders by owner: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// List applies the query's filter predicates and sort options on top of the
// mandatory owner predicate. With no sort key, rows come back ordered by
// due date ascending, which is remaining-time ascending for a fixed clock:
// overdue reminders sort first. Ties break on creation order.
func (r *ReminderRepository) List(ctx context.Context, ownerID uuid.UUID, q model.ReminderQuery) ([]model.Reminder, error) {
	conds := []string{"owner_id = $1"}
	args := []any{ownerID}

	if q.DueAfter != nil {
		args = append(args, *q.DueAfter)
		conds = append(conds, fmt.Sprintf("due_date >= $%d", len(args)))
	}
	if q.IsFavorite != nil {
		args = append(args, *q.IsFavorite)
		conds = append(conds, fmt.Sprintf("is_favorite = $%d", len(args)))
	}
	if q.IsEmergent != nil {
		args = append(args, *q.IsEmergent)
		conds = append(conds, fmt.Sprintf("is_emergent = $%d", len(args)))
	}

	orderBy := "due_date ASC, created_at ASC"
	if q.SortBy != "" {
		col, ok := sortColumns[q.SortBy]
		if !ok {
			return nil, fmt.Errorf("unknown sort key %q: %w", q.SortBy, model.ErrInvalidInput)
		}
		dir := "ASC"
		if q.Order == model.SortDesc {
			dir = "DESC"
		}
		orderBy = col + " " + dir + ", created_at ASC"
	}

	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY ` + orderBy

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *ReminderRepository) scanRow(row pgx.Row) (model.Reminder, error) {
	var m model.Reminder
	err := row.Scan(
		&m.ID, &m.OwnerID, &m.Title, &m.Description, &m.DueDate,
		&m.IsFavorite, &m.IsEmergent, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *ReminderRepository) scanRows(rows pgx.Rows) ([]model.Reminder, error) {
	var reminders []model.Reminder
	for rows.Next() {
		m, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reminders: %w", err)
	}
	return reminders, nil
}
