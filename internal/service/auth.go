package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/models"
	"jobboard/internal/repository"
)

var (
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a caller cannot enumerate registered accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService interface {
	Register(ctx context.Context, email, password, username string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Profile(ctx context.Context, email string) (*models.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens TokenService
	logger *zap.Logger
}

func NewAuthService(users repository.UserRepository, tokens TokenService, logger *zap.Logger) AuthService {
	return &authService{users: users, tokens: tokens, logger: logger}
}

// Register creates a user with role "user" and returns it with a fresh
// token. Duplicate emails surface from the store's unique index; there is no
// separate existence check to race against.
func (s *authService) Register(ctx context.Context, email, password, username string) (*models.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		Email:     email,
		Password:  string(hash),
		Username:  username,
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err))
		return nil, "", err
	}

	s.logger.Info("User registered", zap.String("email", user.Email))
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to retrieve user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err))
		return nil, "", err
	}

	s.logger.Info("User logged in", zap.String("email", user.Email))
	return user, token, nil
}

// Profile re-reads the user record; the token may outlive the account.
func (s *authService) Profile(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}
