// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/rental-aggregator/internal/lib/jwt"
	"github.com/magabrotheeeer/rental-aggregator/internal/lib/password"
	"github.com/magabrotheeeer/rental-aggregator/internal/models"
	"github.com/magabrotheeeer/rental-aggregator/internal/storage/repository"
)

// Ошибки уровня сервиса аутентификации.
var (
	// ErrEmailAlreadyUsed возвращается при попытке регистрации на занятый email.
	ErrEmailAlreadyUsed = errors.New("email already used")
	// ErrInvalidCredentials возвращается при неверном email или пароле.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound возвращается, когда пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// SaveUser сохраняет пользователя и возвращает его с назначенным ID.
	SaveUser(ctx context.Context, user models.User) (*models.User, error)

	// GetUserByID возвращает пользователя по ID или ошибку, если не найден.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// ExistsByEmail сообщает, занят ли email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и сразу
// выдает JWT для созданной учетной записи.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string) (string, error) {
	const op = "services.Register"

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return "", ErrEmailAlreadyUsed
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	saved, err := s.users.SaveUser(ctx, user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	token, err := s.jwtMaker.GenerateToken(saved.Email, saved.ID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Login проверяет пароль пользователя и генерирует JWT. Неизвестный email
// и неверный пароль неразличимы для вызывающего.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "services.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.Email, user.ID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ValidateToken проверяет JWT и возвращает актуального пользователя из базы.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*models.User, error) {
	const op = "services.ValidateToken"

	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user, err := s.users.GetUserByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// GetUser возвращает пользователя по ID.
func (s *AuthService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	const op = "services.GetUser"

	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// ListUsers возвращает всех пользователей.
func (s *AuthService) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "services.ListUsers"

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}
