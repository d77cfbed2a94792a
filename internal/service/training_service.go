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

// TrainingService implements the training lifecycle: admin-managed sessions
// that move one-way from draft to released.
type TrainingService struct {
	trainingRepo repository.TrainingRepository
}

// TrainingInput carries the editable fields of a training.
type TrainingInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Duration    string    `json:"duration"`
	Capacity    int       `json:"capacity"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Location    string    `json:"location"`
	Instructor  string    `json:"instructor"`
}

// NewTrainingService returns a new TrainingService.
func NewTrainingService(trainingRepo repository.TrainingRepository) *TrainingService {
	return &TrainingService{trainingRepo: trainingRepo}
}

func validateTrainingInput(in TrainingInput) error {
	if in.Title == "" {
		return models.NewValidationError("Title is required")
	}
	if in.Capacity < 1 {
		return models.NewValidationError("Capacity must be at least 1")
	}
	if in.EndDate.Before(in.StartDate) {
		return models.NewValidationError("End date must not precede start date")
	}
	return nil
}

// CreateTraining creates a draft training. Admin only.
func (s *TrainingService) CreateTraining(ctx context.Context, actor *models.User, in TrainingInput) (*models.Training, error) {
	if !policy.CanManageTrainings(actor) {
		return nil, models.NewUnauthorizedError("Admin role required")
	}
	if err := validateTrainingInput(in); err != nil {
		return nil, err
	}
	training := &models.Training{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Duration:    in.Duration,
		Capacity:    in.Capacity,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Location:    in.Location,
		Instructor:  in.Instructor,
		Released:    false,
		CreatedBy:   actor.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.trainingRepo.Create(ctx, training); err != nil {
		return nil, err
	}
	return training, nil
}

// UpdateTraining replaces the editable fields of a training. Admin only.
// The released flag is not editable here; release is a separate one-way
// transition.
func (s *TrainingService) UpdateTraining(ctx context.Context, actor *models.User, id string, in TrainingInput) (*models.Training, error) {
	if !policy.CanManageTrainings(actor) {
		return nil, models.NewUnauthorizedError("Admin role required")
	}
	if err := validateTrainingInput(in); err != nil {
		return nil, err
	}
	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	training.Title = in.Title
	training.Description = in.Description
	training.Category = in.Category
	training.Duration = in.Duration
	training.Capacity = in.Capacity
	training.StartDate = in.StartDate
	training.EndDate = in.EndDate
	training.Location = in.Location
	training.Instructor = in.Instructor
	if err := s.trainingRepo.Update(ctx, training); err != nil {
		return nil, err
	}
	return training, nil
}

// ReleaseTraining transitions a draft training to released, making it
// visible to all users. Admin only; there is no un-release.
func (s *TrainingService) ReleaseTraining(ctx context.Context, actor *models.User, id string) (*models.Training, error) {
	if !policy.CanManageTrainings(actor) {
		return nil, models.NewUnauthorizedError("Admin role required")
	}
	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if training.Released {
		return nil, models.NewValidationError("Training is already released")
	}
	training.Released = true
	if err := s.trainingRepo.Update(ctx, training); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "training released", "training_id", training.ID, "admin_id", actor.ID)
	return training, nil
}

// ListTrainings returns every training visible to actor, ordered by start
// date.
func (s *TrainingService) ListTrainings(ctx context.Context, actor *models.User) ([]models.Training, error) {
	trainings, err := s.trainingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return policy.VisibleTrainings(actor, trainings), nil
}

// GetTraining returns a single training. Hidden drafts report NotFound.
func (s *TrainingService) GetTraining(ctx context.Context, actor *models.User, id string) (*models.Training, error) {
	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewTraining(actor, training) {
		return nil, models.NewNotFoundError("Training", id)
	}
	return training, nil
}
