package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "labadmin/internal/errors"
	"labadmin/internal/model"
	"labadmin/internal/repository"
)

// AuthService handles authentication operations.
type AuthService interface {
	// Login checks the credentials and returns the profile to keep in the
	// session. Unknown users and wrong passwords both yield
	// errors.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*model.SessionUser, error)
}

type authService struct {
	users     repository.UserRepository
	passwords PasswordPolicy
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, passwords PasswordPolicy) AuthService {
	return &authService{users: users, passwords: passwords}
}

func (s *authService) Login(ctx context.Context, username, password string) (*model.SessionUser, error) {
	if username == "" || password == "" {
		return nil, apperrors.ErrValidation
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.passwords.Matches(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &model.SessionUser{Name: user.Username, Email: user.Email}, nil
}
