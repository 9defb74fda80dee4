package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository"
)

const uniqueViolation = "23505"

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, name, password_hash, blog_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Username, user.Name, user.PasswordHash,
		user.BlogIDs, user.CreatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicateUsername
	}
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT id, username, name, password_hash, blog_ids, created_at FROM users WHERE id = $1", id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT id, username, name, password_hash, blog_ids, created_at FROM users WHERE username = $1", username)
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, username, name, password_hash, blog_ids, created_at FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.BlogIDs, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// AppendBlog uses a single UPDATE with array_append so concurrent creates by
// the same account serialize at the storage layer.
func (r *UserRepo) AppendBlog(ctx context.Context, userID, blogID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE users SET blog_ids = array_append(blog_ids, $2) WHERE id = $1",
		userID, blogID,
	)
	return err
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.BlogIDs, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
