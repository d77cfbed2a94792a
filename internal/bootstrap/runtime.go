// Package bootstrap wires up the record store and applies startup tasks:
// root admin creation and optional demo seeding.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"staffhub/internal/config"
	"staffhub/internal/models"
	"staffhub/internal/repository"
	"staffhub/internal/seed"
	"staffhub/internal/store"
	"staffhub/internal/validation"
)

// Runtime holds the storage dependencies selected for this deployment.
type Runtime struct {
	Store store.RecordStore
	// Redis is non-nil only for the redis backend; the rate limiter uses it
	// when present.
	Redis *redis.Client
}

// InitRuntime opens the configured store backend and runs startup tasks.
func InitRuntime(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	rt := &Runtime{}

	switch cfg.StoreBackend {
	case "redis":
		st, err := store.NewRedisStore(cfg.RedisURL, "staffhub")
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		rt.Store = st
		rt.Redis = st.Client()
	case "sqlite":
		st, err := store.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		rt.Store = st
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	if err := EnsureRootAdmin(ctx, rt.Store, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		rt.Store.Close()
		return nil, err
	}

	if cfg.SeedDemo {
		if err := seed.Demo(ctx, rt.Store); err != nil {
			rt.Store.Close()
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	return rt, nil
}

// EnsureRootAdmin creates the root admin account if the configured email has
// no user record yet. Both email and password must be set; otherwise the
// step is skipped.
func EnsureRootAdmin(ctx context.Context, st store.RecordStore, email, password string) error {
	if email == "" || password == "" {
		slog.Info("root admin bootstrap skipped, ADMIN_EMAIL or ADMIN_PASSWORD unset")
		return nil
	}
	email = validation.NormalizeEmail(email)

	userRepo := repository.NewUserRepository(st)
	existing, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("look up root admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash root admin password: %w", err)
	}
	admin := &models.User{
		ID:             uuid.NewString(),
		Email:          email,
		PasswordHash:   string(hash),
		FirstName:      "Root",
		LastName:       "Admin",
		Role:           models.RoleAdmin,
		Active:         true,
		JoinDate:       time.Now().UTC(),
		Skills:         []string{},
		Certifications: []models.Certification{},
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create root admin: %w", err)
	}
	slog.Info("root admin created", "email", email)
	return nil
}
