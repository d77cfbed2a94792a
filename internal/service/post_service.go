package service

import (
	"context"
	"log/slog"
	"time"

	"staffhub/internal/models"
	"staffhub/internal/policy"
	"staffhub/internal/repository"
	"staffhub/internal/validation"

	"github.com/google/uuid"
)

// PostService implements the post lifecycle: creation, visibility-filtered
// listing, likes, comments, and the admin moderation transitions.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	// moderationRequired controls the initial state of new posts: false
	// (the default policy) creates them approved, true creates them pending
	// until an admin approves.
	moderationRequired bool
}

// CreatePostInput carries the fields for a new post.
type CreatePostInput struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, moderationRequired bool) *PostService {
	return &PostService{
		postRepo:           postRepo,
		userRepo:           userRepo,
		moderationRequired: moderationRequired,
	}
}

// CreatePost creates a post authored by actor.
func (s *PostService) CreatePost(ctx context.Context, actor *models.User, in CreatePostInput) (*models.Post, error) {
	postType := in.Type
	if postType == "" {
		postType = models.PostTypeGeneral
	}
	if !models.ValidPostType(postType) {
		return nil, models.NewValidationError("Invalid post type")
	}
	if err := validation.ValidatePostContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post := &models.Post{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		Content:   in.Content,
		Type:      postType,
		CreatedAt: time.Now().UTC(),
		Likes:     []string{},
		Comments:  []models.Comment{},
		Approved:  !s.moderationRequired,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns every post visible to actor, newest first.
func (s *PostService) ListPosts(ctx context.Context, actor *models.User) ([]models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return policy.VisiblePosts(actor, posts), nil
}

// GetPost returns a single post. A post the actor may not see reports
// NotFound rather than Unauthorized, so hidden posts do not leak their
// existence.
func (s *PostService) GetPost(ctx context.Context, actor *models.User, id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewPost(actor, post) {
		return nil, models.NewNotFoundError("Post", id)
	}
	return post, nil
}

// ToggleLike flips actor's membership in the post's like set. Toggling twice
// restores the original set.
func (s *PostService) ToggleLike(ctx context.Context, actor *models.User, postID string) (*models.Post, error) {
	post, err := s.GetPost(ctx, actor, postID)
	if err != nil {
		return nil, err
	}
	post.ToggleLike(actor.ID)
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// AddComment appends a comment by actor to a post visible to them.
func (s *PostService) AddComment(ctx context.Context, actor *models.User, postID, content string) (*models.Post, error) {
	if err := validation.ValidatePostContent(content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	post, err := s.GetPost(ctx, actor, postID)
	if err != nil {
		return nil, err
	}
	post.Comments = append(post.Comments, models.Comment{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		Likes:     []string{},
	})
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// PendingPosts returns posts awaiting moderation. Admin only.
func (s *PostService) PendingPosts(ctx context.Context, actor *models.User) ([]models.Post, error) {
	if !policy.CanModeratePosts(actor) {
		return nil, models.NewUnauthorizedError("Admin role required")
	}
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]models.Post, 0)
	for _, p := range posts {
		if !p.Approved {
			pending = append(pending, p)
		}
	}
	return pending, nil
}

// ApprovePost transitions a pending post to approved. Admin only; approved
// is terminal for moderation.
func (s *PostService) ApprovePost(ctx context.Context, actor *models.User, postID string) (*models.Post, error) {
	if !policy.CanModeratePosts(actor) {
		return nil, models.NewUnauthorizedError("Admin role required")
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Approved {
		return nil, models.NewValidationError("Post is not pending moderation")
	}
	post.Approved = true
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "post approved", "post_id", post.ID, "admin_id", actor.ID)
	return post, nil
}

// RejectPost removes a pending post entirely. Admin only; the record is
// gone afterwards, there is no rejected state.
func (s *PostService) RejectPost(ctx context.Context, actor *models.User, postID string) error {
	if !policy.CanModeratePosts(actor) {
		return models.NewUnauthorizedError("Admin role required")
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.Approved {
		return models.NewValidationError("Post is not pending moderation")
	}
	if err := s.postRepo.Delete(ctx, post.ID); err != nil {
		return err
	}
	slog.InfoContext(ctx, "post rejected", "post_id", post.ID, "admin_id", actor.ID)
	return nil
}
