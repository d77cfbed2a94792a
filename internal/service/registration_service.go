package service

import (
	"context"
	"log/slog"
	"time"

	"staffhub/internal/models"
	"staffhub/internal/policy"
	"staffhub/internal/repository"

	"github.com/google/uuid"
)

// RegistrationService implements training registration: users claim seats,
// admins move registrations through pending -> approved -> completed or
// pending -> rejected.
type RegistrationService struct {
	regRepo      repository.RegistrationRepository
	trainingRepo repository.TrainingRepository
}

// NewRegistrationService returns a new RegistrationService.
func NewRegistrationService(regRepo repository.RegistrationRepository, trainingRepo repository.TrainingRepository) *RegistrationService {
	return &RegistrationService{regRepo: regRepo, trainingRepo: trainingRepo}
}

// Register creates a pending registration for actor on the training. The
// training must be visible to the actor; duplicate and capacity checks run
// against every existing registration for the training.
func (s *RegistrationService) Register(ctx context.Context, actor *models.User, trainingID, notes string) (*models.TrainingRegistration, error) {
	training, err := s.trainingRepo.GetByID(ctx, trainingID)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewTraining(actor, training) {
		return nil, models.NewNotFoundError("Training", trainingID)
	}

	existing, err := s.regRepo.ListByTraining(ctx, trainingID)
	if err != nil {
		return nil, err
	}
	if err := policy.CanRegister(actor, training, existing); err != nil {
		return nil, err
	}

	reg := &models.TrainingRegistration{
		ID:           uuid.NewString(),
		TrainingID:   trainingID,
		UserID:       actor.ID,
		Status:       models.RegistrationPending,
		RegisteredAt: time.Now().UTC(),
		Notes:        notes,
	}
	if err := s.regRepo.Create(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// MyRegistrations returns the actor's own registrations.
func (s *RegistrationService) MyRegistrations(ctx context.Context, actor *models.User) ([]models.TrainingRegistration, error) {
	return s.regRepo.ListByUser(ctx, actor.ID)
}

// ListByTraining returns every registration for a training. Admin only.
func (s *RegistrationService) ListByTraining(ctx context.Context, actor *models.User, trainingID string) ([]models.TrainingRegistration, error) {
	if !policy.CanManageTrainings(actor) {
		return nil, models.NewUnauthorizedError("Admin role required")
	}
	return s.regRepo.ListByTraining(ctx, trainingID)
}

// Approve transitions a pending registration to approved. Admin only.
func (s *RegistrationService) Approve(ctx context.Context, actor *models.User, regID string) (*models.TrainingRegistration, error) {
	return s.transition(ctx, actor, regID, models.RegistrationPending, models.RegistrationApproved)
}

// Reject transitions a pending registration to rejected, freeing its seat.
// Admin only.
func (s *RegistrationService) Reject(ctx context.Context, actor *models.User, regID string) (*models.TrainingRegistration, error) {
	return s.transition(ctx, actor, regID, models.RegistrationPending, models.RegistrationRejected)
}

// Complete transitions an approved registration to completed. Admin only.
func (s *RegistrationService) Complete(ctx context.Context, actor *models.User, regID string) (*models.TrainingRegistration, error) {
	return s.transition(ctx, actor, regID, models.RegistrationApproved, models.RegistrationCompleted)
}

func (s *RegistrationService) transition(ctx context.Context, actor *models.User, regID, from, to string) (*models.TrainingRegistration, error) {
	if !policy.CanManageTrainings(actor) {
		return nil, models.NewUnauthorizedError("Admin role required")
	}
	reg, err := s.regRepo.GetByID(ctx, regID)
	if err != nil {
		return nil, err
	}
	if reg.Status != from {
		return nil, models.NewValidationError("Registration is " + reg.Status + ", cannot transition to " + to)
	}
	now := time.Now().UTC()
	reg.Status = to
	switch to {
	case models.RegistrationApproved:
		reg.ApprovedAt = &now
	case models.RegistrationCompleted:
		reg.CompletedAt = &now
	}
	if err := s.regRepo.Update(ctx, reg); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "registration transitioned",
		"registration_id", reg.ID, "from", from, "to", to, "admin_id", actor.ID)
	return reg, nil
}
