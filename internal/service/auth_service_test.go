package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"dinoledger/internal/auth"
	apperrors "dinoledger/internal/errors"
	"dinoledger/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) RevokeSession(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsSessionRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		code          string
		hashCodes     bool
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			username: "rex",
			code:     "1234",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "rex").Return(nil, apperrors.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:     "username already exists",
			username: "rex",
			code:     "1234",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "rex").Return(&model.User{ID: 1, Username: "rex"}, nil)
			},
			expectedError: apperrors.ErrDuplicateUsername,
		},
		{
			name:     "lost race inside repository",
			username: "rex",
			code:     "1234",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "rex").Return(nil, apperrors.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(apperrors.ErrDuplicateUsername)
			},
			expectedError: apperrors.ErrDuplicateUsername,
		},
		{
			name:      "hashed code",
			username:  "trike",
			code:      "secret",
			hashCodes: true,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "trike").Return(nil, apperrors.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret", time.Hour)
			service := NewAuthService(mockRepo, jwtService, new(MockTokenStore), nil, tt.hashCodes)

			user, err := service.Register(context.Background(), tt.username, tt.code)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
				if tt.hashCodes {
					assert.NotEqual(t, tt.code, user.Code)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Code), []byte(tt.code)))
				} else {
					assert.Equal(t, tt.code, user.Code)
				}
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		code          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "rex",
			code:     "1234",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "rex").Return(&model.User{ID: 3, Username: "rex", Code: "1234"}, nil)
			},
		},
		{
			name:     "wrong code",
			username: "rex",
			code:     "12345",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "rex").Return(&model.User{ID: 3, Username: "rex", Code: "1234"}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			username: "ghost",
			code:     "1234",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret", time.Hour)
			service := NewAuthService(mockRepo, jwtService, new(MockTokenStore), nil, false)

			token, user, err := service.Login(context.Background(), tt.username, tt.code)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
				claims, err := jwtService.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, user.ID, claims.UserID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginRepositoryFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByUsername", mock.Anything, "rex").Return(nil, errors.New("disk gone"))

	service := NewAuthService(mockRepo, auth.NewJWTService("s", time.Hour), new(MockTokenStore), nil, false)
	_, _, err := service.Login(context.Background(), "rex", "1234")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Authenticate(t *testing.T) {
	claims := &auth.Claims{UserID: 3}
	claims.ID = "session-1"

	t.Run("active session", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokens := new(MockTokenStore)
		mockTokens.On("IsSessionRevoked", mock.Anything, "session-1").Return(false, nil)
		mockRepo.On("FindByID", mock.Anything, 3).Return(&model.User{ID: 3, Username: "rex", Code: "1234"}, nil)

		service := NewAuthService(mockRepo, auth.NewJWTService("s", time.Hour), mockTokens, nil, false)
		user, err := service.Authenticate(context.Background(), claims)

		require.NoError(t, err)
		assert.Equal(t, "rex", user.Username)
		mockRepo.AssertExpectations(t)
		mockTokens.AssertExpectations(t)
	})

	t.Run("revoked session", func(t *testing.T) {
		mockTokens := new(MockTokenStore)
		mockTokens.On("IsSessionRevoked", mock.Anything, "session-1").Return(true, nil)

		service := NewAuthService(new(MockUserRepository), auth.NewJWTService("s", time.Hour), mockTokens, nil, false)
		_, err := service.Authenticate(context.Background(), claims)

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("deleted user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokens := new(MockTokenStore)
		mockTokens.On("IsSessionRevoked", mock.Anything, "session-1").Return(false, nil)
		mockRepo.On("FindByID", mock.Anything, 3).Return(nil, apperrors.ErrNotFound)

		service := NewAuthService(mockRepo, auth.NewJWTService("s", time.Hour), mockTokens, nil, false)
		_, err := service.Authenticate(context.Background(), claims)

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("s", time.Hour)
	token, err := jwtService.GenerateSessionToken(3, "rex")
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)

	mockTokens := new(MockTokenStore)
	mockTokens.On("RevokeSession", mock.Anything, claims.ID, mock.AnythingOfType("time.Duration")).Return(nil)

	service := NewAuthService(new(MockUserRepository), jwtService, mockTokens, nil, false)
	require.NoError(t, service.Logout(context.Background(), claims))
	mockTokens.AssertExpectations(t)

	assert.ErrorIs(t, service.Logout(context.Background(), nil), apperrors.ErrUnauthorized)
}
