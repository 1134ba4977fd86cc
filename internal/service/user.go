package service

import (
	"context"
	"errors"
	"fmt"

	"contacts_api/internal/models"
	"contacts_api/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles accounts and session tokens.
type UserService struct {
	users    repository.Users
	newToken func() string
}

func NewUserService(repo repository.Users) *UserService {
	return &UserService{users: repo, newToken: uuid.NewString}
}

// Register creates an account without a session.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, newFieldError("username", msgUsernameTaken)
	}

	hash, err := hashPassword("password", in.Password)
	if err != nil {
		return nil, err
	}
	u := &models.User{Username: in.Username, Name: in.Name, PasswordHash: hash}
	if err := s.users.Create(ctx, u); err != nil {
		// lost a race with a concurrent register
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, newFieldError("username", msgUsernameTaken)
		}
		return nil, err
	}
	return u, nil
}

// Login issues a fresh token, replacing any previous session of the user.
// Unknown users and wrong passwords fail the same way.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if u == nil || verifyPassword(u.PasswordHash, in.Password) != nil {
		return nil, newFieldError("message", msgBadCredentials)
	}

	token := s.newToken()
	if err := s.users.SetToken(ctx, u.ID, &token); err != nil {
		return nil, err
	}
	u.Token = &token
	return u, nil
}

func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	u, err := s.users.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUnauthorized
	}
	return u, nil
}

// UpdateProfile changes the display name once the current password is confirmed.
func (s *UserService) UpdateProfile(ctx context.Context, u models.User, in UpdateProfileInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if verifyPassword(u.PasswordHash, in.PasswordConfirm) != nil {
		return nil, newFieldError("password_confirm", msgPasswordWrong)
	}

	if in.Name != "" {
		if err := s.users.UpdateName(ctx, u.ID, in.Name); err != nil {
			return nil, err
		}
		u.Name = in.Name
	}
	return &u, nil
}

func (s *UserService) ChangePassword(ctx context.Context, u models.User, in ChangePasswordInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if verifyPassword(u.PasswordHash, in.OldPassword) != nil {
		return nil, newFieldError("old_password", msgPasswordWrong)
	}

	hash, err := hashPassword("new_password", in.NewPassword)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return nil, err
	}
	u.PasswordHash = hash
	return &u, nil
}

// Logout clears the token so it no longer passes Authenticate.
func (s *UserService) Logout(ctx context.Context, u models.User) error {
	return s.users.SetToken(ctx, u.ID, nil)
}

// hashPassword reports inputs bcrypt cannot take as a validation error on field.
func hashPassword(field, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", newFieldError(field, fmt.Sprintf("The %s field must not be greater than 72 bytes.", words(field)))
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
