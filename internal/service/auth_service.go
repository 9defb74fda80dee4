package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/auth"
	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository"
)

var (
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials deliberately covers both unknown username and
	// wrong password so login failures can't be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AuthService struct {
	userRepo repository.UserRepository
	codec    *auth.TokenCodec
}

func NewAuthService(userRepo repository.UserRepository, codec *auth.TokenCodec) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		codec:    codec,
	}
}

type RegisterInput struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hash,
		BlogIDs:      []uuid.UUID{},
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The store enforces uniqueness too; a concurrent register can
		// slip past the lookup above.
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}
