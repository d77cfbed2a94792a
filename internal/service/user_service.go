package service

import (
	"context"
	"log/slog"

	"staffhub/internal/models"
	"staffhub/internal/policy"
	"staffhub/internal/repository"
	"staffhub/internal/validation"
)

// UserService implements profile management and the admin user-management
// operations.
type UserService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
	regRepo  repository.RegistrationRepository
}

// UpdateProfileInput carries the profile fields a user may edit on their own
// record. Nil slices leave the stored value unchanged.
type UpdateProfileInput struct {
	FirstName      string                 `json:"first_name"`
	LastName       string                 `json:"last_name"`
	Position       string                 `json:"position"`
	Department     string                 `json:"department"`
	Bio            string                 `json:"bio"`
	Avatar         string                 `json:"avatar"`
	Experience     string                 `json:"experience"`
	Location       string                 `json:"location"`
	Phone          string                 `json:"phone"`
	LinkedIn       string                 `json:"linkedin"`
	Skills         []string               `json:"skills"`
	Certifications []models.Certification `json:"certifications"`
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository, regRepo repository.RegistrationRepository) *UserService {
	return &UserService{userRepo: userRepo, postRepo: postRepo, regRepo: regRepo}
}

// ListColleagues returns every active user, join date ascending.
func (s *UserService) ListColleagues(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Active {
			active = append(active, u)
		}
	}
	return active, nil
}

// GetUser returns a single user profile.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies profile edits to the actor's own record.
func (s *UserService) UpdateProfile(ctx context.Context, actor *models.User, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != "" {
		if err := validation.ValidateName(in.FirstName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		if err := validation.ValidateName(in.LastName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.LastName = in.LastName
	}
	if err := validation.ValidateBio(in.Bio); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.Bio != "" {
		user.Bio = in.Bio
	}
	if in.Position != "" {
		user.Position = in.Position
	}
	if in.Department != "" {
		user.Department = in.Department
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}
	if in.Experience != "" {
		user.Experience = in.Experience
	}
	if in.Location != "" {
		user.Location = in.Location
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.LinkedIn != "" {
		user.LinkedIn = in.LinkedIn
	}
	if in.Skills != nil {
		user.Skills = in.Skills
	}
	if in.Certifications != nil {
		user.Certifications = in.Certifications
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns every non-admin user, including deactivated ones, for
// the admin user-management view. Admin only.
func (s *UserService) ListUsers(ctx context.Context, actor *models.User) ([]models.User, error) {
	if !policy.CanManageUsers(actor) {
		return nil, models.NewUnauthorizedError("Admin role required")
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	managed := make([]models.User, 0, len(users))
	for _, u := range users {
		if !u.IsAdmin() {
			managed = append(managed, u)
		}
	}
	return managed, nil
}

// SetActive flips a user's active flag. Deactivation invalidates future
// logins but does not terminate a session that is already open. Admin only.
func (s *UserService) SetActive(ctx context.Context, actor *models.User, targetID string, active bool) (*models.User, error) {
	if !policy.CanManageUsers(actor) {
		return nil, models.NewUnauthorizedError("Admin role required")
	}
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	user.Active = active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "user active flag changed",
		"user_id", user.ID, "active", active, "admin_id", actor.ID)
	return user, nil
}

// DeleteUser removes a user and cascades: the user's posts and registrations
// are deleted, and their comments and likes are stripped from surviving
// posts, so no record is left with a dangling author reference. Admin only.
func (s *UserService) DeleteUser(ctx context.Context, actor *models.User, targetID string) error {
	if !policy.CanManageUsers(actor) {
		return models.NewUnauthorizedError("Admin role required")
	}
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return err
	}
	for i := range posts {
		post := &posts[i]
		if post.UserID == user.ID {
			if err := s.postRepo.Delete(ctx, post.ID); err != nil {
				return err
			}
			continue
		}
		if stripUserFromPost(post, user.ID) {
			if err := s.postRepo.Update(ctx, post); err != nil {
				return err
			}
		}
	}

	regs, err := s.regRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	for i := range regs {
		if err := s.regRepo.Delete(ctx, regs[i].ID); err != nil {
			return err
		}
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return err
	}
	slog.InfoContext(ctx, "user deleted", "user_id", user.ID, "admin_id", actor.ID)
	return nil
}

// stripUserFromPost removes userID from the post's like set, drops their
// comments, and removes their likes on surviving comments. Reports whether
// the post changed.
func stripUserFromPost(post *models.Post, userID string) bool {
	changed := false
	if post.LikedBy(userID) {
		post.ToggleLike(userID)
		changed = true
	}
	kept := post.Comments[:0]
	for _, c := range post.Comments {
		if c.UserID == userID {
			changed = true
			continue
		}
		for i, id := range c.Likes {
			if id == userID {
				c.Likes = append(c.Likes[:i], c.Likes[i+1:]...)
				changed = true
				break
			}
		}
		kept = append(kept, c)
	}
	post.Comments = kept
	return changed
}
