package repository

import (
	"context"
	"testing"

	"github.com/alshawwaf/dev-hub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAppCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryApp()

	app := domain.Application{Name: "Alpha", Category: "AI"}
	require.NoError(t, repo.Create(ctx, &app))
	assert.Equal(t, int64(1), app.ID)
	assert.False(t, app.CreatedAt.IsZero())

	other := domain.Application{Name: "Beta", Category: "Security"}
	require.NoError(t, repo.Create(ctx, &other))
	assert.Equal(t, int64(2), other.ID)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// insertion order preserved
	assert.Equal(t, "Alpha", all[0].Name)
	assert.Equal(t, "Beta", all[1].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	app.Name = "Alpha v2"
	require.NoError(t, repo.Update(ctx, &app))
	got, err := repo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha v2", got.Name)
	assert.NotNil(t, got.UpdatedAt)

	require.NoError(t, repo.Delete(ctx, app.ID))
	_, err = repo.GetByID(ctx, app.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryAppNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryApp()

	_, err := repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &domain.Application{ID: 99}), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 99), domain.ErrNotFound)
}

func TestMemoryAppSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryApp()
	require.NoError(t, repo.Create(ctx, &domain.Application{Name: "Alpha"}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	all[0].Name = "mutated"

	again, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", again[0].Name)
}

func TestMemoryUser(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUser()

	user := domain.User{Email: "admin@cpdemo.ca", HashedPassword: "hash", IsAdmin: true}
	require.NoError(t, repo.Create(ctx, &user))
	assert.Equal(t, int64(1), user.ID)

	got, err := repo.GetByEmail(ctx, "admin@cpdemo.ca")
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)

	got, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@cpdemo.ca", got.Email)

	_, err = repo.GetByEmail(ctx, "ghost@cpdemo.ca")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	dup := domain.User{Email: "admin@cpdemo.ca", HashedPassword: "other"}
	assert.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrConflict)
}
