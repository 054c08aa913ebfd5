package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelichko/reminder-server/internal/model"
)

func TestQueryParams_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		params  QueryParams
		want    func(t *testing.T, q model.ReminderQuery)
		wantErr bool
	}{
		{
			name:   "empty params impose no constraint",
			params: QueryParams{},
			want: func(t *testing.T, q model.ReminderQuery) {
				assert.Nil(t, q.DueAfter)
				assert.Nil(t, q.IsFavorite)
				assert.Nil(t, q.IsEmergent)
				assert.Empty(t, q.SortBy)
				assert.Equal(t, model.SortAsc, q.Order)
			},
		},
		{
			name:   "rfc3339 due date",
			params: QueryParams{DueDate: "2025-03-01T12:00:00Z"},
			want: func(t *testing.T, q model.ReminderQuery) {
				require.NotNil(t, q.DueAfter)
				assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), q.DueAfter.UTC())
			},
		},
		{
			name:   "date only due date",
			params: QueryParams{DueDate: "2025-03-01"},
			want: func(t *testing.T, q model.ReminderQuery) {
				require.NotNil(t, q.DueAfter)
				assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), q.DueAfter.UTC())
			},
		},
		{
			name:   "boolean filters and explicit sort",
			params: QueryParams{IsFavorite: "true", IsEmergent: "false", SortBy: "due_date", Order: "desc"},
			want: func(t *testing.T, q model.ReminderQuery) {
				require.NotNil(t, q.IsFavorite)
				require.NotNil(t, q.IsEmergent)
				assert.True(t, *q.IsFavorite)
				assert.False(t, *q.IsEmergent)
				assert.Equal(t, "due_date", q.SortBy)
				assert.Equal(t, model.SortDesc, q.Order)
			},
		},
		{
			name:    "malformed due date",
			params:  QueryParams{DueDate: "next tuesday"},
			wantErr: true,
		},
		{
			name:    "malformed boolean",
			params:  QueryParams{IsEmergent: "yes please"},
			wantErr: true,
		},
		{
			name:    "unknown order",
			params:  QueryParams{Order: "sideways"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := tt.params.Normalize()
			if tt.wantErr {
				require.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			tt.want(t, q)
		})
	}
}

func TestComputeRemaining_Future(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	due := now.Add(2*24*time.Hour + 3*time.Hour + 4*time.Minute)

	rt := ComputeRemaining(due, now)

	assert.False(t, rt.Expired)
	assert.Equal(t, 2, rt.Days)
	assert.Equal(t, 3, rt.Hours)
	assert.Equal(t, 4, rt.Minutes)
	assert.Equal(t, "2d 3h 4m", rt.Human)
	assert.Equal(t, due.Sub(now).Milliseconds(), rt.Milliseconds)
}

func TestComputeRemaining_Overdue(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	rt := ComputeRemaining(now.Add(-time.Hour), now)

	assert.True(t, rt.Expired)
	assert.Equal(t, "Expired", rt.Human)
	assert.Negative(t, rt.Milliseconds)
	assert.Zero(t, rt.Days)
	assert.Zero(t, rt.Hours)
	assert.Zero(t, rt.Minutes)
}

func TestComputeRemaining_ExactlyDue(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	rt := ComputeRemaining(now, now)

	assert.True(t, rt.Expired)
	assert.Equal(t, "Expired", rt.Human)
	assert.Zero(t, rt.Milliseconds)
}

func TestAugmentRemaining_LazyAndOrderPreserving(t *testing.T) {
	now := time.Now()
	reminders := []model.Reminder{
		{ID: uuid.New(), Title: "first", DueDate: now.Add(-time.Hour)},
		{ID: uuid.New(), Title: "second", DueDate: now.Add(time.Hour)},
		{ID: uuid.New(), Title: "third", DueDate: now.Add(2 * time.Hour)},
	}

	seq := augmentRemaining(reminders, now)

	var titles []string
	for tr := range seq {
		titles = append(titles, tr.Title)
		if len(titles) == 2 {
			break
		}
	}

	// early break stops the sequence without touching the tail
	assert.Equal(t, []string{"first", "second"}, titles)
}
