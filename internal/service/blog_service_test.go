package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository/memory"
)

type recordingNotifier struct {
	created []uuid.UUID
	updated []uuid.UUID
	deleted []uuid.UUID
}

func (n *recordingNotifier) NotifyBlogCreated(b *domain.Blog) { n.created = append(n.created, b.ID) }
func (n *recordingNotifier) NotifyBlogUpdated(b *domain.Blog) { n.updated = append(n.updated, b.ID) }
func (n *recordingNotifier) NotifyBlogDeleted(id uuid.UUID)   { n.deleted = append(n.deleted, id) }

type blogFixture struct {
	svc      *BlogService
	users    *memory.UserRepo
	notifier *recordingNotifier
	owner    *domain.User
	other    *domain.User
}

func newBlogFixture(t *testing.T) *blogFixture {
	t.Helper()

	users := memory.NewUserRepo()
	notifier := &recordingNotifier{}
	svc := NewBlogService(memory.NewBlogRepo(), users, notifier)

	owner := &domain.User{ID: uuid.New(), Username: "owner", CreatedAt: time.Now()}
	other := &domain.User{ID: uuid.New(), Username: "other", CreatedAt: time.Now().Add(time.Second)}
	require.NoError(t, users.Create(context.Background(), owner))
	require.NoError(t, users.Create(context.Background(), other))

	return &blogFixture{svc: svc, users: users, notifier: notifier, owner: owner, other: other}
}

func TestCreateBlog(t *testing.T) {
	t.Parallel()

	f := newBlogFixture(t)
	ctx := context.Background()

	blog, err := f.svc.Create(ctx, f.owner, CreateBlogInput{
		Title: "Go Proverbs",
		URL:   "https://go-proverbs.github.io",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, blog.Likes)
	require.NotNil(t, blog.UserID)
	assert.Equal(t, f.owner.ID, *blog.UserID)

	// The owner's back-reference list got the new id appended.
	stored, err := f.users.GetByID(ctx, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{blog.ID}, stored.BlogIDs)

	assert.Equal(t, []uuid.UUID{blog.ID}, f.notifier.created)
}

func TestCreateBlogRequiresIdentity(t *testing.T) {
	t.Parallel()

	f := newBlogFixture(t)

	_, err := f.svc.Create(context.Background(), nil, CreateBlogInput{
		Title: "anonymous", URL: "http://example.com",
	})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	blogs, listErr := f.svc.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, blogs)
}

func TestUpdateBlog(t *testing.T) {
	t.Parallel()

	f := newBlogFixture(t)
	ctx := context.Background()

	blog, err := f.svc.Create(ctx, f.owner, CreateBlogInput{Title: "t", URL: "http://u", Likes: 1})
	require.NoError(t, err)

	// Update needs no identity at all: the check was never there and
	// callers depend on it.
	updated, err := f.svc.Update(ctx, blog.ID, UpdateBlogInput{
		Title: "t2", Author: "a2", URL: "http://u2", Likes: 11,
	})
	require.NoError(t, err)
	assert.Equal(t, 11, updated.Likes)
	assert.Equal(t, "t2", updated.Title)

	// Ownership survives updates.
	require.NotNil(t, updated.UserID)
	assert.Equal(t, f.owner.ID, *updated.UserID)

	assert.Equal(t, []uuid.UUID{blog.ID}, f.notifier.updated)
}

func TestUpdateMissingBlog(t *testing.T) {
	t.Parallel()

	f := newBlogFixture(t)

	_, err := f.svc.Update(context.Background(), uuid.New(), UpdateBlogInput{Title: "x"})
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestDeleteBlogOwnership(t *testing.T) {
	t.Parallel()

	f := newBlogFixture(t)
	ctx := context.Background()

	blog, err := f.svc.Create(ctx, f.owner, CreateBlogInput{Title: "t", URL: "http://u"})
	require.NoError(t, err)

	// No identity
	assert.ErrorIs(t, f.svc.Delete(ctx, nil, blog.ID), ErrUnauthenticated)

	// Wrong identity
	assert.ErrorIs(t, f.svc.Delete(ctx, f.other, blog.ID), ErrNotBlogOwner)

	// Owner succeeds
	require.NoError(t, f.svc.Delete(ctx, f.owner, blog.ID))
	blogs, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, blogs)

	// Repeating the delete is not an error.
	require.NoError(t, f.svc.Delete(ctx, f.owner, blog.ID))

	assert.Equal(t, []uuid.UUID{blog.ID}, f.notifier.deleted)
}

func TestDeleteOwnerlessBlogIsForbidden(t *testing.T) {
	t.Parallel()

	f := newBlogFixture(t)
	ctx := context.Background()

	orphan := &domain.Blog{ID: uuid.New(), Title: "orphan", URL: "http://u"}
	blogs := memory.NewBlogRepo()
	require.NoError(t, blogs.Create(ctx, orphan))
	svc := NewBlogService(blogs, f.users, nil)

	assert.ErrorIs(t, svc.Delete(ctx, f.owner, orphan.ID), ErrNotBlogOwner)
}

func TestBlogStats(t *testing.T) {
	t.Parallel()

	f := newBlogFixture(t)
	ctx := context.Background()

	empty, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalLikes)
	assert.Nil(t, empty.MostLiked)
	assert.Nil(t, empty.MostBlogs)
	assert.Nil(t, empty.MostLikes)

	for _, in := range []CreateBlogInput{
		{Title: "one", Author: "A", URL: "http://1", Likes: 2},
		{Title: "two", Author: "B", URL: "http://2", Likes: 5},
		{Title: "three", Author: "A", URL: "http://3", Likes: 1},
	} {
		_, err := f.svc.Create(ctx, f.owner, in)
		require.NoError(t, err)
	}

	got, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, got.TotalLikes)
	require.NotNil(t, got.MostLiked)
	assert.Equal(t, "two", got.MostLiked.Title)
	require.NotNil(t, got.MostBlogs)
	assert.Equal(t, "A", got.MostBlogs.Author)
	assert.Equal(t, 2, got.MostBlogs.Blogs)
	require.NotNil(t, got.MostLikes)
	assert.Equal(t, "B", got.MostLikes.Author)
	assert.Equal(t, 5, got.MostLikes.Likes)
}
