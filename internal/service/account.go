package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Aaryan-2k/TaskManagerAPI/internal/models"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/repository"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/taskerr"
)

const minPasswordLength = 8

// maxPasswordLength is bcrypt's input limit; anything longer is rejected
// up front so the hash call cannot fail on valid-looking input.
const maxPasswordLength = 72

// RegisterRequest is the account creation payload. ConfirmPassword is
// compared and discarded; it is never persisted.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// AccountService defines account registration operations.
type AccountService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
}

type accountService struct {
	userRepo repository.UserRepository
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(userRepo repository.UserRepository) AccountService {
	return &accountService{userRepo: userRepo}
}

// Register validates the request, hashes the password and creates the
// user. All validation failures are reported together, keyed by field.
func (s *accountService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	verr := &taskerr.ValidationError{}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		verr.Add("username", "username is required")
	}
	if req.Email == "" {
		verr.Add("email", "email is required")
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		verr.Add("email", "enter a valid email address")
	}
	if len(req.Password) < minPasswordLength {
		verr.Add("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	} else if len(req.Password) > maxPasswordLength {
		verr.Add("password", fmt.Sprintf("password must be at most %d bytes", maxPasswordLength))
	}
	if req.Password != req.ConfirmPassword {
		verr.Add("confirm_password", "password does not match")
	}
	if !verr.Empty() {
		return nil, verr
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, taskerr.NewValidationError("username", "a user with that username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
