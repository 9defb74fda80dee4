// Package memory provides in-memory repository implementations used by
// tests and local development without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository"
)

type UserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *UserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *UserRepo) AppendBlog(_ context.Context, userID, blogID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[userID]; ok {
		u.BlogIDs = append(u.BlogIDs, blogID)
	}
	return nil
}

// Delete removes a user. Only tests use this, to simulate an account that
// vanished after a token was issued.
func (r *UserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
	return nil
}

type BlogRepo struct {
	mu    sync.RWMutex
	blogs map[uuid.UUID]*domain.Blog
	order []uuid.UUID
}

func NewBlogRepo() *BlogRepo {
	return &BlogRepo{blogs: make(map[uuid.UUID]*domain.Blog)}
}

func (r *BlogRepo) Create(_ context.Context, blog *domain.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := *blog
	r.blogs[b.ID] = &b
	r.order = append(r.order, b.ID)
	return nil
}

func (r *BlogRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.blogs[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (r *BlogRepo) List(_ context.Context) ([]domain.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blogs := make([]domain.Blog, 0, len(r.blogs))
	for _, id := range r.order {
		if b, ok := r.blogs[id]; ok {
			blogs = append(blogs, *b)
		}
	}
	return blogs, nil
}

func (r *BlogRepo) Update(_ context.Context, blog *domain.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.blogs[blog.ID]; ok {
		existing.Title = blog.Title
		existing.Author = blog.Author
		existing.URL = blog.URL
		existing.Likes = blog.Likes
	}
	return nil
}

func (r *BlogRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.blogs, id)
	return nil
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	clone.BlogIDs = append([]uuid.UUID(nil), u.BlogIDs...)
	return &clone
}
