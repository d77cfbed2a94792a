// Package seed provides helpers to create demo data for the application
// record store. These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"staffhub/internal/models"
	"staffhub/internal/repository"
	"staffhub/internal/store"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var departments = []string{
	"Engineering", "Product", "Design", "Sales", "Marketing",
	"People Operations", "Finance", "Customer Success",
}

var trainingCategories = []string{
	"Leadership", "Security", "Engineering", "Communication", "Compliance",
}

// Factory builds domain entities and persists them through the repositories.
type Factory struct {
	users     repository.UserRepository
	posts     repository.PostRepository
	trainings repository.TrainingRepository
	regs      repository.RegistrationRepository
	rand      *rand.Rand
}

// NewFactory creates a Factory bound to the given record store.
func NewFactory(st store.RecordStore) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		users:     repository.NewUserRepository(st),
		posts:     repository.NewPostRepository(st),
		trainings: repository.NewTrainingRepository(st),
		regs:      repository.NewRegistrationRepository(st),
		rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        gofakeit.Email(),
		PasswordHash: string(hash),
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		Role:         models.RoleUser,
		Active:       true,
		JoinDate:     time.Now().UTC().AddDate(0, -f.rand.Intn(36), -f.rand.Intn(28)),
		Position:     gofakeit.JobTitle(),
		Department:   departments[f.rand.Intn(len(departments))],
		Bio:          gofakeit.Sentence(10),
		Avatar:       fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Location:     gofakeit.City(),
		Skills:       []string{gofakeit.BuzzWord(), gofakeit.BuzzWord(), gofakeit.BuzzWord()},
		Certifications: []models.Certification{},
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample post authored by user.
func (f *Factory) CreatePost(ctx context.Context, user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	daysBack := f.rand.Intn(90)
	post := &models.Post{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Content:   gofakeit.Paragraph(1, 3, 8, "\n"),
		Type:      models.PostTypeGeneral,
		CreatedAt: time.Now().UTC().Add(-time.Duration(daysBack) * 24 * time.Hour),
		Likes:     []string{},
		Comments:  []models.Comment{},
		Approved:  true,
	}
	for _, override := range overrides {
		override(post)
	}
	if err := f.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// CreateTraining constructs and persists a sample released training.
func (f *Factory) CreateTraining(ctx context.Context, createdBy string, overrides ...func(*models.Training)) (*models.Training, error) {
	start := time.Now().UTC().AddDate(0, 0, 7+f.rand.Intn(60))
	training := &models.Training{
		ID:          uuid.NewString(),
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Paragraph(1, 2, 8, "\n"),
		Category:    trainingCategories[f.rand.Intn(len(trainingCategories))],
		Duration:    fmt.Sprintf("%d hours", 1+f.rand.Intn(8)),
		Capacity:    5 + f.rand.Intn(20),
		StartDate:   start,
		EndDate:     start.Add(time.Duration(1+f.rand.Intn(8)) * time.Hour),
		Location:    gofakeit.City(),
		Instructor:  gofakeit.Name(),
		Released:    true,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	}
	for _, override := range overrides {
		override(training)
	}
	if err := f.trainings.Create(ctx, training); err != nil {
		return nil, err
	}
	return training, nil
}

// Demo populates an empty store with a small, believable data set: a dozen
// users, a feed of posts with likes and comments, a few trainings, and
// registrations in assorted states. It is a no-op when users already exist.
func Demo(ctx context.Context, st store.RecordStore) error {
	f := NewFactory(st)

	existing, err := f.users.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Info("demo seed skipped, store already populated", "users", len(existing))
		return nil
	}

	users := make([]*models.User, 0, 12)
	for i := 0; i < 12; i++ {
		u, err := f.CreateUser(ctx)
		if err != nil {
			return err
		}
		users = append(users, u)
	}

	for _, u := range users {
		n := 1 + f.rand.Intn(3)
		for i := 0; i < n; i++ {
			post, err := f.CreatePost(ctx, u)
			if err != nil {
				return err
			}
			// sprinkle likes and the occasional comment from other users
			for _, other := range users {
				if other.ID == u.ID || f.rand.Intn(3) != 0 {
					continue
				}
				post.ToggleLike(other.ID)
			}
			if f.rand.Intn(2) == 0 {
				commenter := users[f.rand.Intn(len(users))]
				post.Comments = append(post.Comments, models.Comment{
					ID:        uuid.NewString(),
					UserID:    commenter.ID,
					Content:   gofakeit.Sentence(8),
					CreatedAt: post.CreatedAt.Add(time.Hour),
					Likes:     []string{},
				})
			}
			if err := f.posts.Update(ctx, post); err != nil {
				return err
			}
		}
	}

	for i := 0; i < 4; i++ {
		training, err := f.CreateTraining(ctx, users[0].ID)
		if err != nil {
			return err
		}
		for _, u := range users {
			if f.rand.Intn(3) != 0 {
				continue
			}
			reg := &models.TrainingRegistration{
				ID:           uuid.NewString(),
				TrainingID:   training.ID,
				UserID:       u.ID,
				Status:       models.RegistrationPending,
				RegisteredAt: time.Now().UTC(),
			}
			if f.rand.Intn(2) == 0 {
				now := time.Now().UTC()
				reg.Status = models.RegistrationApproved
				reg.ApprovedAt = &now
			}
			if err := f.regs.Create(ctx, reg); err != nil {
				return err
			}
		}
	}

	slog.Info("demo data seeded", "users", len(users))
	return nil
}
