package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/quill/internal/domain"
)

type BlogRepo struct {
	pool *pgxpool.Pool
}

func NewBlogRepo(pool *pgxpool.Pool) *BlogRepo {
	return &BlogRepo{pool: pool}
}

func (r *BlogRepo) Create(ctx context.Context, blog *domain.Blog) error {
	query := `
		INSERT INTO blogs (id, title, author, url, likes, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		blog.ID, blog.Title, blog.Author, blog.URL, blog.Likes,
		blog.UserID, blog.CreatedAt,
	)
	return err
}

func (r *BlogRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	var b domain.Blog
	err := r.pool.QueryRow(ctx,
		"SELECT id, title, author, url, likes, user_id, created_at FROM blogs WHERE id = $1", id,
	).Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &b.UserID, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlogRepo) List(ctx context.Context) ([]domain.Blog, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, title, author, url, likes, user_id, created_at FROM blogs ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []domain.Blog
	for rows.Next() {
		var b domain.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &b.UserID, &b.CreatedAt); err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

func (r *BlogRepo) Update(ctx context.Context, blog *domain.Blog) error {
	query := `
		UPDATE blogs
		SET title = $2, author = $3, url = $4, likes = $5
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query,
		blog.ID, blog.Title, blog.Author, blog.URL, blog.Likes,
	)
	return err
}

// Delete is a no-op when the row is already gone.
func (r *BlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM blogs WHERE id = $1", id)
	return err
}
