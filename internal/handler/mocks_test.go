package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"labadmin/internal/auth"
	"labadmin/internal/model"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*model.SessionUser, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SessionUser), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, username, email, password string) error {
	return m.Called(ctx, username, email, password).Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type MockLaboratoryService struct {
	mock.Mock
}

func (m *MockLaboratoryService) ListLaboratories(ctx context.Context) ([]model.LaboratoryListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LaboratoryListing), args.Error(1)
}

func (m *MockLaboratoryService) CreateLaboratory(ctx context.Context, name, responsibleEmail string) (uint64, error) {
	args := m.Called(ctx, name, responsibleEmail)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockLaboratoryService) DeleteLaboratory(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

// fakeSessions records what the handlers asked of the session layer.
type fakeSessions struct {
	started    []model.SessionUser
	destroyed  int
	startErr   error
	destroyErr error
}

func (f *fakeSessions) Start(c echo.Context, user model.SessionUser) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started = append(f.started, user)
	ctx := auth.WithSession(c.Request().Context(), &auth.Session{ID: "test", User: &user})
	c.SetRequest(c.Request().WithContext(ctx))
	return nil
}

func (f *fakeSessions) Destroy(c echo.Context) error {
	if f.destroyErr != nil {
		return f.destroyErr
	}
	f.destroyed++
	return nil
}
