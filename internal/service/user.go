package service

import (
	"context"
	"errors"

	"stocktake/internal/model"
	"stocktake/internal/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken — email уже занят другим пользователем.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidCredentials — пара email/пароль не подошла.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService инкапсулирует регистрацию, вход и администрирование учёток.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя с ролью USER и хешированным паролем.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.CreateUser(ctx, &model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     model.RoleUser,
	})
}

// Login проверяет учётные данные и возвращает пользователя.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GetByID возвращает пользователя по идентификатору.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// ListUsers возвращает всех пользователей, новые сверху.
func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

// UpdateRole назначает пользователю новую роль.
func (s *UserService) UpdateRole(ctx context.Context, id int64, role string) (*model.User, error) {
	return s.repo.UpdateRole(ctx, id, role)
}
