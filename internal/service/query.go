package service

import (
	"fmt"
	"iter"
	"strconv"
	"time"

	"github.com/avelichko/reminder-server/internal/model"
)

// QueryParams is the loosely-typed filter/sort request as it arrives on the
// wire. Empty strings mean "no constraint".
type QueryParams struct {
	DueDate    string
	IsFavorite string
	IsEmergent string
	SortBy     string
	Order      string
}

// dueDateLayouts are the accepted due-date encodings, tried in order.
var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

// Normalize validates the raw parameters into a typed query.
// Malformed values yield ErrInvalidInput.
func (p QueryParams) Normalize() (model.ReminderQuery, error) {
	var q model.ReminderQuery

	if p.DueDate != "" {
		t, err := parseDueDate(p.DueDate)
		if err != nil {
			return q, fmt.Errorf("bad due_date %q: %w", p.DueDate, model.ErrInvalidInput)
		}
		q.DueAfter = &t
	}

	if p.IsFavorite != "" {
		v, err := strconv.ParseBool(p.IsFavorite)
		if err != nil {
			return q, fmt.Errorf("bad isFavorite %q: %w", p.IsFavorite, model.ErrInvalidInput)
		}
		q.IsFavorite = &v
	}

	if p.IsEmergent != "" {
		v, err := strconv.ParseBool(p.IsEmergent)
		if err != nil {
			return q, fmt.Errorf("bad isEmergent %q: %w", p.IsEmergent, model.ErrInvalidInput)
		}
		q.IsEmergent = &v
	}

	q.SortBy = p.SortBy

	switch model.SortOrder(p.Order) {
	case model.SortAsc, model.SortDesc:
		q.Order = model.SortOrder(p.Order)
	case "":
		q.Order = model.SortAsc
	default:
		return q, fmt.Errorf("bad order %q: %w", p.Order, model.ErrInvalidInput)
	}

	return q, nil
}

func parseDueDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dueDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// RemainingTime is the derived, never-persisted time left until a
// reminder's due date, as both a machine duration and a human rendering.
type RemainingTime struct {
	Milliseconds int64
	Expired      bool
	Days         int
	Hours        int
	Minutes      int
	Human        string
}

// TimedReminder is a reminder augmented with its remaining time.
type TimedReminder struct {
	model.Reminder
	Remaining RemainingTime
}

// ComputeRemaining derives the remaining time at the given instant.
// A non-positive duration renders as "Expired", never as a negative span.
func ComputeRemaining(dueDate, now time.Time) RemainingTime {
	d := dueDate.Sub(now)
	rt := RemainingTime{Milliseconds: d.Milliseconds()}

	if d <= 0 {
		rt.Expired = true
		rt.Human = "Expired"
		return rt
	}

	rt.Days = int(d / (24 * time.Hour))
	d -= time.Duration(rt.Days) * 24 * time.Hour
	rt.Hours = int(d / time.Hour)
	d -= time.Duration(rt.Hours) * time.Hour
	rt.Minutes = int(d / time.Minute)
	rt.Human = fmt.Sprintf("%dd %dh %dm", rt.Days, rt.Hours, rt.Minutes)

	return rt
}

// augmentRemaining wraps already-ordered reminders into a lazy sequence of
// timed reminders. The sequence is finite and single-use; the remaining
// time of each element is computed only when the consumer reaches it.
func augmentRemaining(reminders []model.Reminder, now time.Time) iter.Seq[TimedReminder] {
	return func(yield func(TimedReminder) bool) {
		for _, r := range reminders {
			tr := TimedReminder{
				Reminder:  r,
				Remaining: ComputeRemaining(r.DueDate, now),
			}
			if !yield(tr) {
				return
			}
		}
	}
}
