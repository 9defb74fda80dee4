package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository"
	"github.com/vedran77/quill/internal/stats"
)

var (
	ErrBlogNotFound    = errors.New("blog not found")
	ErrUnauthenticated = errors.New("authentication required")
	ErrNotBlogOwner    = errors.New("only the blog owner can perform this action")
)

// Notifier receives blog lifecycle events. Implementations must not block.
type Notifier interface {
	NotifyBlogCreated(blog *domain.Blog)
	NotifyBlogUpdated(blog *domain.Blog)
	NotifyBlogDeleted(id uuid.UUID)
}

type BlogService struct {
	blogRepo repository.BlogRepository
	userRepo repository.UserRepository
	notifier Notifier
}

func NewBlogService(blogRepo repository.BlogRepository, userRepo repository.UserRepository, notifier Notifier) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

type CreateBlogInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

type UpdateBlogInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

type BlogStats struct {
	TotalLikes int                `json:"totalLikes"`
	MostLiked  *domain.Blog       `json:"mostLiked,omitempty"`
	MostBlogs  *stats.AuthorBlogs `json:"mostBlogs,omitempty"`
	MostLikes  *stats.AuthorLikes `json:"mostLikes,omitempty"`
}

func (s *BlogService) List(ctx context.Context) ([]domain.Blog, error) {
	return s.blogRepo.List(ctx)
}

// Create requires an authenticated identity. The new blog's owner is the
// identity and is immutable from here on.
func (s *BlogService) Create(ctx context.Context, user *domain.User, input CreateBlogInput) (*domain.Blog, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}

	blog := &domain.Blog{
		ID:        uuid.New(),
		Title:     input.Title,
		Author:    input.Author,
		URL:       input.URL,
		Likes:     input.Likes,
		UserID:    &user.ID,
		CreatedAt: time.Now(),
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("creating blog: %w", err)
	}

	if err := s.userRepo.AppendBlog(ctx, user.ID, blog.ID); err != nil {
		return nil, fmt.Errorf("appending blog reference: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyBlogCreated(blog)
	}
	return blog, nil
}

// Update replaces the mutable fields. It intentionally performs no ownership
// check, matching the behavior the API has always had; see DESIGN.md.
func (s *BlogService) Update(ctx context.Context, id uuid.UUID, input UpdateBlogInput) (*domain.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	blog.Title = input.Title
	blog.Author = input.Author
	blog.URL = input.URL
	blog.Likes = input.Likes

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, fmt.Errorf("updating blog: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyBlogUpdated(blog)
	}
	return blog, nil
}

// Delete requires the caller to be the blog's owner. Deleting a blog that is
// already gone succeeds, so repeated deletes are harmless.
func (s *BlogService) Delete(ctx context.Context, user *domain.User, id uuid.UUID) error {
	if user == nil {
		return ErrUnauthenticated
	}

	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if blog == nil {
		return nil
	}

	if blog.UserID == nil || *blog.UserID != user.ID {
		return ErrNotBlogOwner
	}

	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting blog: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyBlogDeleted(id)
	}
	return nil
}

func (s *BlogService) Stats(ctx context.Context) (*BlogStats, error) {
	blogs, err := s.blogRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &BlogStats{TotalLikes: stats.TotalLikes(blogs)}
	if top, ok := stats.MostLiked(blogs); ok {
		result.MostLiked = &top
	}
	if mb, ok := stats.AuthorWithMostBlogs(blogs); ok {
		result.MostBlogs = &mb
	}
	if ml, ok := stats.AuthorWithMostLikes(blogs); ok {
		result.MostLikes = &ml
	}
	return result, nil
}
