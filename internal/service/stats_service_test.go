package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffhub/internal/models"
	"staffhub/internal/repository"
	"staffhub/internal/service"
	"staffhub/internal/testutil"
)

func TestStatsService_AdminStats(t *testing.T) {
	st := testutil.NewStore(t)
	svc := service.NewStatsService(
		repository.NewUserRepository(st),
		repository.NewPostRepository(st),
	)
	ctx := context.Background()

	mod := createAdmin(t, st)
	active := createUser(t, st, func(u *models.User) {
		u.Certifications = []models.Certification{
			{ID: uuid.NewString(), Name: "CKA"},
			{ID: uuid.NewString(), Name: "AWS SAA"},
		}
	})
	createUser(t, st, func(u *models.User) { u.Active = false })

	postRepo := repository.NewPostRepository(st)
	require.NoError(t, postRepo.Create(ctx, &models.Post{
		ID: uuid.NewString(), UserID: active.ID, Content: "approved",
		CreatedAt: time.Now().UTC(), Approved: true,
	}))
	require.NoError(t, postRepo.Create(ctx, &models.Post{
		ID: uuid.NewString(), UserID: active.ID, Content: "pending",
		CreatedAt: time.Now().UTC(), Approved: false,
	}))

	stats, err := svc.AdminStats(ctx, mod)
	require.NoError(t, err)
	// the admin account is excluded from user and certification counts
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.ActiveUsers)
	assert.Equal(t, 2, stats.TotalPosts)
	assert.Equal(t, 1, stats.PendingPosts)
	assert.Equal(t, 2, stats.TotalCertifications)
}

func TestStatsService_AdminStats_RequiresAdmin(t *testing.T) {
	st := testutil.NewStore(t)
	svc := service.NewStatsService(
		repository.NewUserRepository(st),
		repository.NewPostRepository(st),
	)

	_, err := svc.AdminStats(context.Background(), createUser(t, st))
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeUnauthorized))
}

func TestStatsService_AdminStats_EmptyStore(t *testing.T) {
	st := testutil.NewStore(t)
	svc := service.NewStatsService(
		repository.NewUserRepository(st),
		repository.NewPostRepository(st),
	)

	mod := createAdmin(t, st)
	stats, err := svc.AdminStats(context.Background(), mod)
	require.NoError(t, err)
	assert.Equal(t, &models.AdminStats{}, stats)
}
