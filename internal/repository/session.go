package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"staffhub/internal/models"
	"staffhub/internal/store"
)

// SessionRepository persists the current-session singleton. The session
// survives process restarts; Current returns (nil, nil) when no session is
// open.
type SessionRepository interface {
	Current(ctx context.Context) (*models.Session, error)
	Set(ctx context.Context, userID string) error
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	store store.RecordStore
}

// NewSessionRepository returns a new SessionRepository implementation.
func NewSessionRepository(s store.RecordStore) SessionRepository {
	return &sessionRepository{store: s}
}

func (r *sessionRepository) Current(ctx context.Context) (*models.Session, error) {
	data, err := r.store.GetSingleton(ctx, store.KeySession)
	if errors.Is(err, store.ErrNoRecord) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, models.NewInternalError(err)
	}
	return &session, nil
}

func (r *sessionRepository) Set(ctx context.Context, userID string) error {
	data, err := json.Marshal(models.Session{
		UserID:    userID,
		StartedAt: time.Now().UTC(),
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	if err := r.store.SetSingleton(ctx, store.KeySession, data); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	if err := r.store.RemoveSingleton(ctx, store.KeySession); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
