package service

import (
	"context"
	"testing"

	"learnsphere/domain"
	"learnsphere/repository"
	"learnsphere/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newAuthService() domain.AuthUseCase {
	return NewAuthService(repository.NewUserRepository(storage.NewMemoryStore()), testSecret)
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	auth := newAuthService()

	registered, err := auth.Register(ctx, "ada@example.com", "s3cret-pass", "ada lovelace", domain.RoleStudent)
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "Ada Lovelace", registered.User.Name)
	assert.Empty(t, registered.User.PasswordHash)
	assert.Equal(t, "/dashboard/student", registered.Redirect)

	loggedIn, err := auth.Login(ctx, "ada@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	auth := newAuthService()

	_, err := auth.Register(ctx, "ada@example.com", "s3cret-pass", "Ada", domain.RoleStudent)
	require.NoError(t, err)

	_, err = auth.Login(ctx, "ada@example.com", "wrong-pass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	auth := newAuthService()

	_, err := auth.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	auth := newAuthService()

	_, err := auth.Register(ctx, "Ada@Example.com", "s3cret-pass", "Ada", domain.RoleEducator)
	require.NoError(t, err)

	result, err := auth.Login(ctx, "ada@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "/dashboard/educator", result.Redirect)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	auth := newAuthService()

	_, err := auth.Register(ctx, "ada@example.com", "s3cret-pass", "Ada", domain.RoleStudent)
	require.NoError(t, err)

	// Different casing still counts as the same address.
	_, err = auth.Register(ctx, "ADA@example.com", "other-pass", "Imposter", domain.RoleStudent)
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestIssuedTokenCarriesIdentity(t *testing.T) {
	ctx := context.Background()
	auth := newAuthService()

	result, err := auth.Register(ctx, "ada@example.com", "s3cret-pass", "Ada", domain.RoleMarketer)
	require.NoError(t, err)

	userID, role, name, err := auth.GetAccessTokenManager().VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, userID)
	assert.Equal(t, domain.RoleMarketer, role)
	assert.Equal(t, "Ada", name)
}

func TestMeStripsPasswordHash(t *testing.T) {
	ctx := context.Background()
	auth := newAuthService()

	result, err := auth.Register(ctx, "ada@example.com", "s3cret-pass", "Ada", domain.RoleStudent)
	require.NoError(t, err)

	me, err := auth.Me(ctx, result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", me.Email)
	assert.Empty(t, me.PasswordHash)
}

func TestMeUnknownUser(t *testing.T) {
	auth := newAuthService()

	_, err := auth.Me(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
