package service

import (
	"context"

	"staffhub/internal/models"
	"staffhub/internal/policy"
	"staffhub/internal/repository"
)

// StatsService computes the admin dashboard aggregates. Stats are a pure
// fold over the current collections, recomputed on every call so they are
// always consistent with the store.
type StatsService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

// NewStatsService returns a new StatsService.
func NewStatsService(userRepo repository.UserRepository, postRepo repository.PostRepository) *StatsService {
	return &StatsService{userRepo: userRepo, postRepo: postRepo}
}

// AdminStats returns platform totals for the admin dashboard. Admin-role
// users are excluded from the user and certification counts. Admin only.
func (s *StatsService) AdminStats(ctx context.Context, actor *models.User) (*models.AdminStats, error) {
	if !policy.CanManageUsers(actor) {
		return nil, models.NewUnauthorizedError("Admin role required")
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.AdminStats{}
	for _, u := range users {
		if u.IsAdmin() {
			continue
		}
		stats.TotalUsers++
		if u.Active {
			stats.ActiveUsers++
		}
		stats.TotalCertifications += len(u.Certifications)
	}
	for _, p := range posts {
		stats.TotalPosts++
		if !p.Approved {
			stats.PendingPosts++
		}
	}
	return stats, nil
}
