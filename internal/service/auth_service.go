package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"dinoledger/internal/auth"
	"dinoledger/internal/cache"
	apperrors "dinoledger/internal/errors"
	"dinoledger/internal/model"
	"dinoledger/internal/repository"
)

const (
	bcryptCost   = 10
	userCacheTTL = 5 * time.Minute
)

// AuthService handles registration, login and session checks.
type AuthService interface {
	Register(ctx context.Context, username, code string) (*model.User, error)
	Login(ctx context.Context, username, code string) (token string, user *model.User, err error)
	Logout(ctx context.Context, claims *auth.Claims) error
	// Authenticate resolves session claims to the user they belong to.
	Authenticate(ctx context.Context, claims *auth.Claims) (*model.PublicUser, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	cache      *cache.Client
	hashCodes  bool
}

// NewAuthService creates a new authentication service. With hashCodes set,
// codes are stored as bcrypt hashes; otherwise they are stored and compared
// as plaintext.
func NewAuthService(
	users repository.UserRepository,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	cache *cache.Client,
	hashCodes bool,
) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		tokenStore: tokenStore,
		cache:      cache,
		hashCodes:  hashCodes,
	}
}

func (s *authService) cacheKey(id int) string {
	return fmt.Sprintf("user:%d", id)
}

// Register creates a user unless the username is taken.
func (s *authService) Register(ctx context.Context, username, code string) (*model.User, error) {
	existing, err := s.users.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateUsername
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	stored := code
	if s.hashCodes {
		hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash code: %w", err)
		}
		stored = string(hashed)
	}

	user := &model.User{
		Username: username,
		Code:     stored,
	}
	// The repository re-checks the username under its own lock.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			return nil, apperrors.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login checks the username/code pair and issues a session token.
func (s *authService) Login(ctx context.Context, username, code string) (string, *model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !s.codeMatches(user.Code, code) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateSessionToken(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}
	return token, user, nil
}

// Logout revokes the session for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil {
		return apperrors.ErrUnauthorized
	}
	if err := s.tokenStore.RevokeSession(ctx, claims.ID, auth.Remaining(claims)); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(claims.UserID))
	return nil
}

// Authenticate rejects revoked sessions and sessions of unknown users.
func (s *authService) Authenticate(ctx context.Context, claims *auth.Claims) (*model.PublicUser, error) {
	if claims == nil {
		return nil, apperrors.ErrUnauthorized
	}
	revoked, err := s.tokenStore.IsSessionRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	if revoked {
		return nil, apperrors.ErrUnauthorized
	}

	if data, _ := s.cache.Get(ctx, s.cacheKey(claims.UserID)); data != nil {
		var cached model.PublicUser
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	public := user.Public()
	if payload, err := json.Marshal(public); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(user.ID), payload, userCacheTTL)
	}
	return &public, nil
}

func (s *authService) codeMatches(stored, given string) bool {
	if s.hashCodes {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}
