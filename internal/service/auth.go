// Package service implements the business logic of the task manager.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/Aaryan-2k/TaskManagerAPI/internal/repository"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/taskerr"
)

// LoginResponse carries a freshly minted token pair.
type LoginResponse struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthService defines authentication operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	Logout(ctx context.Context, accessToken string) error
	RefreshToken(ctx context.Context, refreshToken string) (*LoginResponse, error)
	Authenticate(accessToken string) (int64, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService JWTService
	redis      *redis.Client
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService, redisClient *redis.Client) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		redis:      redisClient,
	}
}

func refreshTokenKey(userID int64) string {
	return fmt.Sprintf("refresh_token:%d", userID)
}

// Login verifies credentials and issues a token pair. Unknown usernames
// and wrong passwords produce the same error.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, taskerr.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, taskerr.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user.ID, user.Username)
}

func (s *authService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.jwtService.ValidateToken(accessToken, TokenTypeAccess)
	if err != nil {
		return err
	}

	if err := s.redis.Del(ctx, refreshTokenKey(claims.UserID)).Err(); err != nil {
		return fmt.Errorf("failed to revoke refresh token for user %d: %w", claims.UserID, err)
	}
	return nil
}

// RefreshToken validates a refresh token, checks it is still the current
// one for its subject, and rotates the pair.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*LoginResponse, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	storedToken, err := s.redis.Get(ctx, refreshTokenKey(claims.UserID)).Result()
	if err != nil || storedToken != refreshToken {
		return nil, taskerr.ErrInvalidToken
	}

	return s.issueTokens(ctx, claims.UserID, claims.Username)
}

// Authenticate validates an access token and returns the subject user id.
// It is a pure signature and expiry check; no store access.
func (s *authService) Authenticate(accessToken string) (int64, error) {
	claims, err := s.jwtService.ValidateToken(accessToken, TokenTypeAccess)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func (s *authService) issueTokens(ctx context.Context, userID int64, username string) (*LoginResponse, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(userID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(userID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	err = s.redis.Set(ctx, refreshTokenKey(userID), refreshToken, s.jwtService.GetRefreshExpiry()).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to store refresh token for user %d: %w", userID, err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtService.GetAccessExpiry() / time.Second),
	}, nil
}
