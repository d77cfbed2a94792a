// Package repository implements the data access layer: typed repositories
// that encode domain models as JSON records in the store.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"staffhub/internal/models"
	"staffhub/internal/store"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail returns (nil, nil) when no user has the email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.User, error)
}

type userRepository struct {
	store store.RecordStore
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(s store.RecordStore) UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	data, err := r.store.ReadOne(ctx, store.CollectionUsers, id)
	if errors.Is(err, store.ErrNoRecord) {
		return nil, models.NewNotFoundError("User", id)
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.put(ctx, user)
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.put(ctx, user)
}

func (r *userRepository) put(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return models.NewInternalError(err)
	}
	if err := r.store.Write(ctx, store.CollectionUsers, user.ID, data); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Remove(ctx, store.CollectionUsers, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	records, err := r.store.ReadAll(ctx, store.CollectionUsers)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	users := make([]models.User, 0, len(records))
	for _, data := range records {
		var user models.User
		if err := json.Unmarshal(data, &user); err != nil {
			return nil, models.NewInternalError(err)
		}
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].JoinDate.Equal(users[j].JoinDate) {
			return users[i].JoinDate.Before(users[j].JoinDate)
		}
		return users[i].ID < users[j].ID
	})
	return users, nil
}
