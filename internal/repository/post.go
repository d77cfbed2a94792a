package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"staffhub/internal/models"
	"staffhub/internal/store"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
	// List returns all posts, newest first.
	List(ctx context.Context) ([]models.Post, error)
}

type postRepository struct {
	store store.RecordStore
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(s store.RecordStore) PostRepository {
	return &postRepository{store: s}
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	data, err := r.store.ReadOne(ctx, store.CollectionPosts, id)
	if errors.Is(err, store.ErrNoRecord) {
		return nil, models.NewNotFoundError("Post", id)
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	var post models.Post
	if err := json.Unmarshal(data, &post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.put(ctx, post)
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.put(ctx, post)
}

func (r *postRepository) put(ctx context.Context, post *models.Post) error {
	data, err := json.Marshal(post)
	if err != nil {
		return models.NewInternalError(err)
	}
	if err := r.store.Write(ctx, store.CollectionPosts, post.ID, data); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Remove(ctx, store.CollectionPosts, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	records, err := r.store.ReadAll(ctx, store.CollectionPosts)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	posts := make([]models.Post, 0, len(records))
	for _, data := range records {
		var post models.Post
		if err := json.Unmarshal(data, &post); err != nil {
			return nil, models.NewInternalError(err)
		}
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID < posts[j].ID
	})
	return posts, nil
}
