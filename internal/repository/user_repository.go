package repository

import (
	"context"

	"gorm.io/gorm"

	"labadmin/internal/model"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByUsername returns gorm.ErrRecordNotFound when no user has that name.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("nome_usuario = ?", username).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns username and email of every user; passwords are not read.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.db.WithContext(ctx).Select("nome_usuario", "email").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteByEmail reports how many rows were removed.
func (r *userRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res := r.db.WithContext(ctx).Where("email = ?", email).Delete(&model.User{})
	return res.RowsAffected, res.Error
}
