package repo

import (
	"context"

	"stocktake/internal/model"

	"gorm.io/gorm"
)

// UserRepository определяет контракт доступа к User для слоя сервиса.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByEmail возвращает gorm.ErrRecordNotFound, если пользователя нет.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)

	// ListUsers возвращает всех пользователей, новые сверху.
	ListUsers(ctx context.Context) ([]model.User, error)

	UpdateRole(ctx context.Context, id int64, role string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) UpdateRole(ctx context.Context, id int64, role string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&u).Update("role", role).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
