//go:build integration

package postgres_test

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/avelichko/reminder-server/internal/model"
	repo "github.com/avelichko/reminder-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "reminder_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/reminder_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func mustCreateUser(t *testing.T, ctx context.Context, ur *repo.UserRepository, email string) model.User {
	t.Helper()
	now := time.Now()
	u, err := ur.Create(ctx, model.User{
		ID:           uuid.New(),
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		Phone:        "+1" + uuid.NewString()[:8],
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	return u
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	t.Run("user_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		u := mustCreateUser(t, ctx, ur, "user@example.com")

		byEmail, err := ur.GetByEmail(ctx, u.Email)
		require.NoError(t, err)
		require.Equal(t, u.ID, byEmail.ID)

		byID, err := ur.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, byID.Email)

		_, err = ur.GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, model.ErrNotFound)

		dup := u
		dup.ID = uuid.New()
		_, err = ur.Create(ctx, dup)
		require.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("refresh_token_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		rr := repo.NewRefreshTokenRepository(conn)
		u := mustCreateUser(t, ctx, ur, "tokens@example.com")

		h := sha256.Sum256([]byte("refresh-token"))
		now := time.Now()
		require.NoError(t, rr.Create(ctx, model.RefreshToken{
			ID:        uuid.New(),
			UserID:    u.ID,
			TokenHash: h[:],
			IssuedAt:  now,
			ExpiresAt: now.Add(time.Hour),
			CreatedAt: now,
		}))

		got, err := rr.GetByTokenHash(ctx, h[:])
		require.NoError(t, err)
		require.Equal(t, u.ID, got.UserID)

		require.NoError(t, rr.DeleteByTokenHash(ctx, h[:]))
		_, err = rr.GetByTokenHash(ctx, h[:])
		require.ErrorIs(t, err, model.ErrNotFound)

		// deleting an already-deleted token is a no-op
		require.NoError(t, rr.DeleteByTokenHash(ctx, h[:]))

		other := sha256.Sum256([]byte("another-token"))
		require.NoError(t, rr.Create(ctx, model.RefreshToken{
			ID:        uuid.New(),
			UserID:    u.ID,
			TokenHash: other[:],
			IssuedAt:  now,
			ExpiresAt: now.Add(time.Hour),
			CreatedAt: now,
		}))
		require.NoError(t, rr.DeleteAllByUser(ctx, u.ID))
		_, err = rr.GetByTokenHash(ctx, other[:])
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("reminder_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		rr := repo.NewReminderRepository(conn)
		owner := mustCreateUser(t, ctx, ur, "owner@example.com")
		stranger := mustCreateUser(t, ctx, ur, "stranger@example.com")

		now := time.Now().Truncate(time.Millisecond)
		saved, err := rr.Create(ctx, model.Reminder{
			ID:          uuid.New(),
			OwnerID:     owner.ID,
			Title:       "water plants",
			Description: "the ficus first",
			DueDate:     now.Add(24 * time.Hour),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		require.NoError(t, err)

		got, err := rr.GetByID(ctx, owner.ID, saved.ID)
		require.NoError(t, err)
		require.Equal(t, "water plants", got.Title)

		// foreign reminder is indistinguishable from a missing one
		_, err = rr.GetByID(ctx, stranger.ID, saved.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
		require.ErrorIs(t, rr.Delete(ctx, stranger.ID, saved.ID), model.ErrNotFound)

		got.IsFavorite = true
		updated, err := rr.Update(ctx, got)
		require.NoError(t, err)
		require.True(t, updated.IsFavorite)

		list, err := rr.ListByOwner(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)

		foreign, err := rr.ListByOwner(ctx, stranger.ID)
		require.NoError(t, err)
		require.Empty(t, foreign)

		require.NoError(t, rr.Delete(ctx, owner.ID, saved.ID))
		_, err = rr.GetByID(ctx, owner.ID, saved.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestReminderRepository_List_FilterAndSort(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	rr := repo.NewReminderRepository(conn)
	owner := mustCreateUser(t, ctx, ur, "filters@example.com")

	now := time.Now().Truncate(time.Millisecond)
	mk := func(title string, due time.Time, favorite, emergent bool) {
		_, err := rr.Create(ctx, model.Reminder{
			ID:         uuid.New(),
			OwnerID:    owner.ID,
			Title:      title,
			DueDate:    due,
			IsFavorite: favorite,
			IsEmergent: emergent,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		require.NoError(t, err)
	}
	mk("overdue", now.Add(-24*time.Hour), false, true)
	mk("soon", now.Add(time.Hour), true, false)
	mk("later", now.Add(72*time.Hour), true, true)

	t.Run("default order is due date ascending", func(t *testing.T) {
		list, err := rr.List(ctx, owner.ID, model.ReminderQuery{})
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "overdue", list[0].Title)
		assert.Equal(t, "soon", list[1].Title)
		assert.Equal(t, "later", list[2].Title)
	})

	t.Run("due date lower bound", func(t *testing.T) {
		after := now
		list, err := rr.List(ctx, owner.ID, model.ReminderQuery{DueAfter: &after})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "soon", list[0].Title)
	})

	t.Run("boolean filters combine", func(t *testing.T) {
		fav := true
		emergent := true
		list, err := rr.List(ctx, owner.ID, model.ReminderQuery{IsFavorite: &fav, IsEmergent: &emergent})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "later", list[0].Title)
	})

	t.Run("explicit sort key and direction", func(t *testing.T) {
		list, err := rr.List(ctx, owner.ID, model.ReminderQuery{SortBy: "title", Order: model.SortDesc})
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "soon", list[0].Title)
	})

	t.Run("unknown sort key rejected", func(t *testing.T) {
		_, err := rr.List(ctx, owner.ID, model.ReminderQuery{SortBy: "password_hash"})
		require.ErrorIs(t, err, model.ErrInvalidInput)
	})
}
