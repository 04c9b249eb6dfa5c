package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "labadmin/internal/errors"
	"labadmin/internal/model"
)

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("s3nha"), bcrypt.MinCost)

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedUser  *model.SessionUser
		expectedError error
	}{
		{
			name:     "successful login with plaintext password",
			username: "ana",
			password: "s3nha",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ana").
					Return(&model.User{Username: "ana", Email: "ana@lab.br", Password: "s3nha"}, nil)
			},
			expectedUser: &model.SessionUser{Name: "ana", Email: "ana@lab.br"},
		},
		{
			name:     "successful login with hashed password",
			username: "bia",
			password: "s3nha",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "bia").
					Return(&model.User{Username: "bia", Email: "bia@lab.br", Password: string(hashed)}, nil)
			},
			expectedUser: &model.SessionUser{Name: "bia", Email: "bia@lab.br"},
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "s3nha",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "ana",
			password: "S3NHA",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ana").
					Return(&model.User{Username: "ana", Email: "ana@lab.br", Password: "s3nha"}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:          "missing password",
			username:      "ana",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, PasswordPolicy{})
			user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginStoreFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByUsername", mock.Anything, "ana").Return(nil, errors.New("connection reset"))

	user, err := NewAuthService(mockRepo, PasswordPolicy{}).Login(context.Background(), "ana", "x")

	assert.Nil(t, user)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestPasswordPolicy(t *testing.T) {
	plain := PasswordPolicy{}
	stored, err := plain.Encode("s3nha")
	assert.NoError(t, err)
	assert.Equal(t, "s3nha", stored)
	assert.True(t, plain.Matches(stored, "s3nha"))
	assert.False(t, plain.Matches(stored, "other"))

	hashing := PasswordPolicy{Hash: true}
	stored, err = hashing.Encode("s3nha")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3nha", stored)
	assert.True(t, hashing.Matches(stored, "s3nha"))
	assert.False(t, hashing.Matches(stored, "other"))
	// Plaintext rows keep working after hashing is switched on.
	assert.True(t, hashing.Matches("legacy", "legacy"))
}
