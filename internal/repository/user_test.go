package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffhub/internal/models"
	"staffhub/internal/repository"
	"staffhub/internal/testutil"
)

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo := repository.NewUserRepository(testutil.NewStore(t))

	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestUserRepository_GetByEmail_AbsentIsNil(t *testing.T) {
	repo := repository.NewUserRepository(testutil.NewStore(t))

	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_CreateAndUpdate(t *testing.T) {
	repo := repository.NewUserRepository(testutil.NewStore(t))
	ctx := context.Background()

	user := &models.User{
		ID:       "u1",
		Email:    "ada@example.com",
		Role:     models.RoleUser,
		Active:   true,
		JoinDate: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email)

	got.Bio = "updated"
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "updated", again.Bio)
}

func TestUserRepository_ListOrderedByJoinDate(t *testing.T) {
	repo := repository.NewUserRepository(testutil.NewStore(t))
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, u := range []*models.User{
		{ID: "c", Email: "c@example.com", JoinDate: base.AddDate(0, 0, 2)},
		{ID: "a", Email: "a@example.com", JoinDate: base},
		{ID: "b", Email: "b@example.com", JoinDate: base.AddDate(0, 0, 1)},
	} {
		require.NoError(t, repo.Create(ctx, u))
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{users[0].ID, users[1].ID, users[2].ID})
}

func TestUserRepository_Delete(t *testing.T) {
	repo := repository.NewUserRepository(testutil.NewStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{ID: "u1", Email: "a@example.com"}))
	require.NoError(t, repo.Delete(ctx, "u1"))

	_, err := repo.GetByID(ctx, "u1")
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	repo := repository.NewSessionRepository(testutil.NewStore(t))
	ctx := context.Background()

	current, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	require.NoError(t, repo.Set(ctx, "u1"))
	current, err = repo.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "u1", current.UserID)

	// login over an existing session replaces it
	require.NoError(t, repo.Set(ctx, "u2"))
	current, err = repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", current.UserID)

	require.NoError(t, repo.Clear(ctx))
	current, err = repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	// clearing with no session is a no-op
	assert.NoError(t, repo.Clear(ctx))
}
