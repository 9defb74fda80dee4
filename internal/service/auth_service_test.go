package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedran77/quill/internal/auth"
	"github.com/vedran77/quill/internal/repository/memory"
)

func newAuthService() (*AuthService, *auth.TokenCodec) {
	codec := auth.NewTokenCodec("test-secret", time.Hour)
	return NewAuthService(memory.NewUserRepo(), codec), codec
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	svc, codec := newAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Username: "mluukkai",
		Name:     "Matti Luukkainen",
		Password: "salainen",
	})
	require.NoError(t, err)
	assert.Equal(t, "mluukkai", user.Username)
	assert.NotEqual(t, "salainen", user.PasswordHash)
	assert.NotNil(t, user.BlogIDs)

	resp, err := svc.Login(ctx, LoginInput{Username: "mluukkai", Password: "salainen"})
	require.NoError(t, err)
	assert.Equal(t, "mluukkai", resp.Username)
	assert.Equal(t, "Matti Luukkainen", resp.Name)

	// The issued token decodes back to the registered account.
	gotID, err := codec.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, gotID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "mluukkai", Password: "salainen"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, LoginInput{Username: "mluukkai", Password: "wrong"})
	_, unknownUser := svc.Login(ctx, LoginInput{Username: "nobody", Password: "salainen"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "root", Password: "sekret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "root", Password: "other"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "root", Password: "sekret"})
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "root", users[0].Username)
}
