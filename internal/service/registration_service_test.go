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
	"staffhub/internal/store"
	"staffhub/internal/testutil"
)

func newRegistrationService(t *testing.T) (*service.RegistrationService, store.RecordStore) {
	t.Helper()
	st := testutil.NewStore(t)
	svc := service.NewRegistrationService(
		repository.NewRegistrationRepository(st),
		repository.NewTrainingRepository(st),
	)
	return svc, st
}

func createTraining(t *testing.T, st store.RecordStore, capacity int, released bool) *models.Training {
	t.Helper()
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	training := &models.Training{
		ID:        uuid.NewString(),
		Title:     "Incident Response Basics",
		Capacity:  capacity,
		StartDate: start,
		EndDate:   start.Add(4 * time.Hour),
		Released:  released,
		CreatedBy: "someadmin",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repository.NewTrainingRepository(st).Create(context.Background(), training))
	return training
}

func TestRegistrationService_Register(t *testing.T) {
	svc, st := newRegistrationService(t)
	ctx := context.Background()

	user := createUser(t, st)
	training := createTraining(t, st, 5, true)

	reg, err := svc.Register(ctx, user, training.ID, "looking forward to it")
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationPending, reg.Status)
	assert.Equal(t, user.ID, reg.UserID)
	assert.Equal(t, training.ID, reg.TrainingID)
	assert.Equal(t, "looking forward to it", reg.Notes)
	assert.Nil(t, reg.ApprovedAt)
}

func TestRegistrationService_Register_Duplicate(t *testing.T) {
	svc, st := newRegistrationService(t)
	ctx := context.Background()

	user := createUser(t, st)
	training := createTraining(t, st, 5, true)

	_, err := svc.Register(ctx, user, training.ID, "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, user, training.ID, "")
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeAlreadyRegistered))
}

func TestRegistrationService_Register_HiddenDraft(t *testing.T) {
	svc, st := newRegistrationService(t)

	user := createUser(t, st)
	draft := createTraining(t, st, 5, false)

	_, err := svc.Register(context.Background(), user, draft.ID, "")
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestRegistrationService_Register_Capacity(t *testing.T) {
	svc, st := newRegistrationService(t)
	ctx := context.Background()
	mod := createAdmin(t, st)

	training := createTraining(t, st, 2, true)

	first := createUser(t, st)
	second := createUser(t, st)
	third := createUser(t, st)

	r1, err := svc.Register(ctx, first, training.ID, "")
	require.NoError(t, err)
	_, err = svc.Register(ctx, second, training.ID, "")
	require.NoError(t, err)

	// pending registrations hold seats
	_, err = svc.Register(ctx, third, training.ID, "")
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeCapacityExceeded))

	// rejecting one frees a seat
	_, err = svc.Reject(ctx, mod, r1.ID)
	require.NoError(t, err)

	_, err = svc.Register(ctx, third, training.ID, "")
	assert.NoError(t, err)

	// the rejected user still counts as registered
	_, err = svc.Register(ctx, first, training.ID, "")
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeAlreadyRegistered))
}

func TestRegistrationService_ApprovedHoldsSeat(t *testing.T) {
	svc, st := newRegistrationService(t)
	ctx := context.Background()
	mod := createAdmin(t, st)

	training := createTraining(t, st, 1, true)
	a := createUser(t, st)
	b := createUser(t, st)

	reg, err := svc.Register(ctx, a, training.ID, "")
	require.NoError(t, err)
	_, err = svc.Approve(ctx, mod, reg.ID)
	require.NoError(t, err)

	// the approved registration fills the single seat
	_, err = svc.Register(ctx, b, training.ID, "")
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeCapacityExceeded))
}

func TestRegistrationService_Transitions(t *testing.T) {
	svc, st := newRegistrationService(t)
	ctx := context.Background()

	mod := createAdmin(t, st)
	user := createUser(t, st)
	training := createTraining(t, st, 5, true)

	reg, err := svc.Register(ctx, user, training.ID, "")
	require.NoError(t, err)

	// pending cannot complete
	_, err = svc.Complete(ctx, mod, reg.ID)
	assert.True(t, models.IsCode(err, models.CodeValidation))

	approved, err := svc.Approve(ctx, mod, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)

	// approved cannot be approved or rejected again
	_, err = svc.Approve(ctx, mod, reg.ID)
	assert.True(t, models.IsCode(err, models.CodeValidation))
	_, err = svc.Reject(ctx, mod, reg.ID)
	assert.True(t, models.IsCode(err, models.CodeValidation))

	completed, err := svc.Complete(ctx, mod, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	// completed is terminal
	_, err = svc.Approve(ctx, mod, reg.ID)
	assert.True(t, models.IsCode(err, models.CodeValidation))
	_, err = svc.Complete(ctx, mod, reg.ID)
	assert.True(t, models.IsCode(err, models.CodeValidation))
}

func TestRegistrationService_TransitionsRequireAdmin(t *testing.T) {
	svc, st := newRegistrationService(t)
	ctx := context.Background()

	user := createUser(t, st)
	training := createTraining(t, st, 5, true)
	reg, err := svc.Register(ctx, user, training.ID, "")
	require.NoError(t, err)

	_, err = svc.Approve(ctx, user, reg.ID)
	assert.True(t, models.IsCode(err, models.CodeUnauthorized))
	_, err = svc.Reject(ctx, user, reg.ID)
	assert.True(t, models.IsCode(err, models.CodeUnauthorized))
	_, err = svc.Complete(ctx, user, reg.ID)
	assert.True(t, models.IsCode(err, models.CodeUnauthorized))
}

func TestRegistrationService_Listings(t *testing.T) {
	svc, st := newRegistrationService(t)
	ctx := context.Background()

	mod := createAdmin(t, st)
	alice := createUser(t, st)
	bob := createUser(t, st)

	t1 := createTraining(t, st, 5, true)
	t2 := createTraining(t, st, 5, true)

	_, err := svc.Register(ctx, alice, t1.ID, "")
	require.NoError(t, err)
	_, err = svc.Register(ctx, alice, t2.ID, "")
	require.NoError(t, err)
	_, err = svc.Register(ctx, bob, t1.ID, "")
	require.NoError(t, err)

	mine, err := svc.MyRegistrations(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	byTraining, err := svc.ListByTraining(ctx, mod, t1.ID)
	require.NoError(t, err)
	assert.Len(t, byTraining, 2)

	_, err = svc.ListByTraining(ctx, alice, t1.ID)
	assert.True(t, models.IsCode(err, models.CodeUnauthorized))
}
