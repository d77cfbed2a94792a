package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"staffhub/internal/models"
	"staffhub/internal/store"
)

// RegistrationRepository defines persistence operations for training
// registrations.
type RegistrationRepository interface {
	GetByID(ctx context.Context, id string) (*models.TrainingRegistration, error)
	Create(ctx context.Context, reg *models.TrainingRegistration) error
	Update(ctx context.Context, reg *models.TrainingRegistration) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.TrainingRegistration, error)
	ListByUser(ctx context.Context, userID string) ([]models.TrainingRegistration, error)
	ListByTraining(ctx context.Context, trainingID string) ([]models.TrainingRegistration, error)
}

type registrationRepository struct {
	store store.RecordStore
}

// NewRegistrationRepository returns a new RegistrationRepository implementation.
func NewRegistrationRepository(s store.RecordStore) RegistrationRepository {
	return &registrationRepository{store: s}
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*models.TrainingRegistration, error) {
	data, err := r.store.ReadOne(ctx, store.CollectionRegistrations, id)
	if errors.Is(err, store.ErrNoRecord) {
		return nil, models.NewNotFoundError("Registration", id)
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	var reg models.TrainingRegistration
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, models.NewInternalError(err)
	}
	return &reg, nil
}

func (r *registrationRepository) Create(ctx context.Context, reg *models.TrainingRegistration) error {
	return r.put(ctx, reg)
}

func (r *registrationRepository) Update(ctx context.Context, reg *models.TrainingRegistration) error {
	return r.put(ctx, reg)
}

func (r *registrationRepository) put(ctx context.Context, reg *models.TrainingRegistration) error {
	data, err := json.Marshal(reg)
	if err != nil {
		return models.NewInternalError(err)
	}
	if err := r.store.Write(ctx, store.CollectionRegistrations, reg.ID, data); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *registrationRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Remove(ctx, store.CollectionRegistrations, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *registrationRepository) List(ctx context.Context) ([]models.TrainingRegistration, error) {
	records, err := r.store.ReadAll(ctx, store.CollectionRegistrations)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	regs := make([]models.TrainingRegistration, 0, len(records))
	for _, data := range records {
		var reg models.TrainingRegistration
		if err := json.Unmarshal(data, &reg); err != nil {
			return nil, models.NewInternalError(err)
		}
		regs = append(regs, reg)
	}
	sort.Slice(regs, func(i, j int) bool {
		if !regs[i].RegisteredAt.Equal(regs[j].RegisteredAt) {
			return regs[i].RegisteredAt.Before(regs[j].RegisteredAt)
		}
		return regs[i].ID < regs[j].ID
	})
	return regs, nil
}

func (r *registrationRepository) ListByUser(ctx context.Context, userID string) ([]models.TrainingRegistration, error) {
	return r.filter(ctx, func(reg *models.TrainingRegistration) bool {
		return reg.UserID == userID
	})
}

func (r *registrationRepository) ListByTraining(ctx context.Context, trainingID string) ([]models.TrainingRegistration, error) {
	return r.filter(ctx, func(reg *models.TrainingRegistration) bool {
		return reg.TrainingID == trainingID
	})
}

func (r *registrationRepository) filter(ctx context.Context, keep func(*models.TrainingRegistration) bool) ([]models.TrainingRegistration, error) {
	regs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := regs[:0]
	for i := range regs {
		if keep(&regs[i]) {
			out = append(out, regs[i])
		}
	}
	return out, nil
}
