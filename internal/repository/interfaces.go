package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
)

// ErrDuplicateUsername is returned by UserRepository.Create when the unique
// constraint on username is violated. Uniqueness is enforced by the store,
// not by callers.
var ErrDuplicateUsername = errors.New("username already exists")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)

	// AppendBlog atomically appends a blog id to the user's back-reference
	// list. Implementations must not read-modify-write: concurrent creates
	// by the same account must not lose appends.
	AppendBlog(ctx context.Context, userID, blogID uuid.UUID) error
}

type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	List(ctx context.Context) ([]domain.Blog, error)
	Update(ctx context.Context, blog *domain.Blog) error
	Delete(ctx context.Context, id uuid.UUID) error
}
