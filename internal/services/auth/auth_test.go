package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	customjwt "github.com/magabrotheeeer/rental-aggregator/internal/lib/jwt"
	"github.com/magabrotheeeer/rental-aggregator/internal/lib/password"
	"github.com/magabrotheeeer/rental-aggregator/internal/models"
	services "github.com/magabrotheeeer/rental-aggregator/internal/services/auth"
	"github.com/magabrotheeeer/rental-aggregator/internal/storage/repository"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) SaveUser(ctx context.Context, user models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepoMock) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

// Мок для jwt.Maker
type JwtMakerMock struct {
	mock.Mock
}

func (m *JwtMakerMock) GenerateToken(email string, userID int64) (string, error) {
	args := m.Called(email, userID)
	return args.String(0), args.Error(1)
}

func (m *JwtMakerMock) ParseToken(token string) (*customjwt.CustomClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customjwt.CustomClaims), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name       string
		userName   string
		email      string
		password   string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantToken  string
		wantErr    error
	}{
		{
			name:     "successful registration",
			userName: "Test User",
			email:    "test@example.com",
			password: "password123",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("ExistsByEmail", mock.Anything, "test@example.com").Return(false, nil).Once()
				r.On("SaveUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Email == "test@example.com" &&
						user.Name == "Test User" &&
						user.PasswordHash != "" &&
						user.PasswordHash != "password123"
				})).Return(&models.User{ID: 7, Name: "Test User", Email: "test@example.com"}, nil).Once()
				j.On("GenerateToken", "test@example.com", int64(7)).Return("signed-token", nil).Once()
			},
			wantToken: "signed-token",
		},
		{
			name:     "email already used",
			userName: "Test User",
			email:    "taken@example.com",
			password: "password123",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil).Once()
			},
			wantErr: services.ErrEmailAlreadyUsed,
		},
		{
			name:     "repository error",
			userName: "Test User",
			email:    "test@example.com",
			password: "password123",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("ExistsByEmail", mock.Anything, "test@example.com").Return(false, nil).Once()
				r.On("SaveUser", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := services.NewAuthService(repo, jwtMock)

			tt.setupMocks(repo, jwtMock)

			got, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantToken != "":
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, got)
			default:
				assert.Error(t, err)
			}

			repo.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	rawPassword := "correctpassword"
	hashed, err := password.GetHash(rawPassword)
	assert.NoError(t, err)

	storedUser := &models.User{
		ID:           3,
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: hashed,
	}

	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantToken  string
		wantErr    error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: rawPassword,
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "test@example.com").Return(storedUser, nil).Once()
				j.On("GenerateToken", "test@example.com", int64(3)).Return("signed-token", nil).Once()
			},
			wantToken: "signed-token",
		},
		{
			name:     "unknown email",
			email:    "missing@example.com",
			password: rawPassword,
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "missing@example.com").
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrongpassword",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "test@example.com").Return(storedUser, nil).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := services.NewAuthService(repo, jwtMock)

			tt.setupMocks(repo, jwtMock)

			got, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, got)
			}

			repo.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

func TestAuthService_ValidateToken(t *testing.T) {
	storedUser := &models.User{ID: 3, Name: "Test User", Email: "test@example.com"}

	tests := []struct {
		name       string
		token      string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantUser   *models.User
		wantErr    error
	}{
		{
			name:  "valid token",
			token: "good-token",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				claims := &customjwt.CustomClaims{UserID: 3}
				claims.Subject = "test@example.com"
				j.On("ParseToken", "good-token").Return(claims, nil).Once()
				r.On("GetUserByEmail", mock.Anything, "test@example.com").Return(storedUser, nil).Once()
			},
			wantUser: storedUser,
		},
		{
			name:  "invalid token",
			token: "bad-token",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				j.On("ParseToken", "bad-token").Return(nil, errors.New("token is malformed")).Once()
			},
		},
		{
			name:  "user deleted after token issued",
			token: "stale-token",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				claims := &customjwt.CustomClaims{UserID: 99}
				claims.Subject = "gone@example.com"
				j.On("ParseToken", "stale-token").Return(claims, nil).Once()
				r.On("GetUserByEmail", mock.Anything, "gone@example.com").
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: services.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := services.NewAuthService(repo, jwtMock)

			tt.setupMocks(repo, jwtMock)

			got, err := svc.ValidateToken(context.Background(), tt.token)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantUser != nil:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUser, got)
			default:
				assert.Error(t, err)
			}

			repo.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

func TestAuthService_GetUser(t *testing.T) {
	repo := new(UserRepoMock)
	jwtMock := new(JwtMakerMock)
	svc := services.NewAuthService(repo, jwtMock)

	storedUser := &models.User{ID: 5, Name: "Test User", Email: "test@example.com"}
	repo.On("GetUserByID", mock.Anything, int64(5)).Return(storedUser, nil).Once()
	repo.On("GetUserByID", mock.Anything, int64(42)).Return(nil, repository.ErrNotFound).Once()

	got, err := svc.GetUser(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, storedUser, got)

	_, err = svc.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	repo.AssertExpectations(t)
}
