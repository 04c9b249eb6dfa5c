package service

import (
	"context"
	"fmt"

	"labadmin/internal/model"
	"labadmin/internal/repository"
)

// UserService exposes domain operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, username, email, password string) error
	// DeleteUser succeeds whether or not a user had that email.
	DeleteUser(ctx context.Context, email string) error
}

type userService struct {
	repo      repository.UserRepository
	passwords PasswordPolicy
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, passwords PasswordPolicy) UserService {
	return &userService{repo: repo, passwords: passwords}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// CreateUser inserts the user. Duplicate usernames or emails are left to the
// store's unique keys and come back as plain store errors.
func (s *userService) CreateUser(ctx context.Context, username, email, password string) error {
	stored, err := s.passwords.Encode(password)
	if err != nil {
		return fmt.Errorf("encode password: %w", err)
	}

	user := &model.User{Username: username, Email: email, Password: stored}
	if err := s.repo.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, email string) error {
	if _, err := s.repo.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
