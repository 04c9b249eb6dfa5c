package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gorm.io/gorm"

	"labadmin/internal/config"
	"labadmin/internal/db"
	"labadmin/internal/logging"
	"labadmin/internal/model"
	"labadmin/internal/repository"
	"labadmin/internal/service"
)

// seedUser is the account created so that a fresh database can be logged into.
type seedUser struct {
	Username string
	Email    string
	Password string
}

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel)
	ctx := context.Background()

	user := seedUser{
		Username: os.Getenv("SEED_USERNAME"),
		Email:    os.Getenv("SEED_EMAIL"),
		Password: os.Getenv("SEED_PASSWORD"),
	}
	if user.Username == "" || user.Email == "" || user.Password == "" {
		logger.Error(ctx, "SEED_USERNAME, SEED_EMAIL and SEED_PASSWORD must be set")
		os.Exit(2)
	}

	gormDB, err := db.NewMySQL(ctx, db.DSN(cfg), cfg.DBMaxOpenConns)
	if err != nil {
		logger.Error(ctx, "connect to database", "err", err)
		os.Exit(1)
	}
	defer db.Close(gormDB)

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(ctx, gormDB); err != nil {
		logger.Error(ctx, "run migrations", "err", err)
		os.Exit(1)
	}

	repo := repository.NewUserRepository(gormDB)
	created, err := seed(ctx, repo, service.PasswordPolicy{Hash: cfg.PasswordHashing}, user)
	if err != nil {
		logger.Error(ctx, "seed user", "err", err)
		os.Exit(1)
	}
	if created {
		logger.Info(ctx, "seed user created", "user", user.Username)
	} else {
		logger.Info(ctx, "seed user already exists", "user", user.Username)
	}
}

// seed creates the user unless one with the same username exists. Existing
// rows are never modified.
func seed(ctx context.Context, repo repository.UserRepository, passwords service.PasswordPolicy, user seedUser) (bool, error) {
	_, err := repo.FindByUsername(ctx, user.Username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("error checking user %s: %w", user.Username, err)
	}

	stored, err := passwords.Encode(user.Password)
	if err != nil {
		return false, fmt.Errorf("encode password: %w", err)
	}
	if err := repo.Create(ctx, &model.User{Username: user.Username, Email: user.Email, Password: stored}); err != nil {
		return false, fmt.Errorf("error creating user %s: %w", user.Username, err)
	}
	return true, nil
}
