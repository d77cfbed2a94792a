package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"staffhub/internal/models"
	"staffhub/internal/store"
)

// TrainingRepository defines persistence operations for trainings.
type TrainingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Training, error)
	Create(ctx context.Context, training *models.Training) error
	Update(ctx context.Context, training *models.Training) error
	// List returns all trainings ordered by start date.
	List(ctx context.Context) ([]models.Training, error)
}

type trainingRepository struct {
	store store.RecordStore
}

// NewTrainingRepository returns a new TrainingRepository implementation.
func NewTrainingRepository(s store.RecordStore) TrainingRepository {
	return &trainingRepository{store: s}
}

func (r *trainingRepository) GetByID(ctx context.Context, id string) (*models.Training, error) {
	data, err := r.store.ReadOne(ctx, store.CollectionTrainings, id)
	if errors.Is(err, store.ErrNoRecord) {
		return nil, models.NewNotFoundError("Training", id)
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	var training models.Training
	if err := json.Unmarshal(data, &training); err != nil {
		return nil, models.NewInternalError(err)
	}
	return &training, nil
}

func (r *trainingRepository) Create(ctx context.Context, training *models.Training) error {
	return r.put(ctx, training)
}

func (r *trainingRepository) Update(ctx context.Context, training *models.Training) error {
	return r.put(ctx, training)
}

func (r *trainingRepository) put(ctx context.Context, training *models.Training) error {
	data, err := json.Marshal(training)
	if err != nil {
		return models.NewInternalError(err)
	}
	if err := r.store.Write(ctx, store.CollectionTrainings, training.ID, data); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *trainingRepository) List(ctx context.Context) ([]models.Training, error) {
	records, err := r.store.ReadAll(ctx, store.CollectionTrainings)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	trainings := make([]models.Training, 0, len(records))
	for _, data := range records {
		var training models.Training
		if err := json.Unmarshal(data, &training); err != nil {
			return nil, models.NewInternalError(err)
		}
		trainings = append(trainings, training)
	}
	sort.Slice(trainings, func(i, j int) bool {
		if !trainings[i].StartDate.Equal(trainings[j].StartDate) {
			return trainings[i].StartDate.Before(trainings[j].StartDate)
		}
		return trainings[i].ID < trainings[j].ID
	})
	return trainings, nil
}
