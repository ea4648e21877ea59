package service

import (
	"context"
	"testing"

	"contabilito/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccessByEmailAndUsername(t *testing.T) {
	st := newTestStore(t)
	reg := NewRegistration(st, true)
	auth := NewAuth(st)
	ctx := context.Background()

	result, err := reg.Register(ctx, validInput())
	require.NoError(t, err)

	user, err := auth.Login(ctx, "ada@example.com", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, result.UserID, user.ID)

	user, err = auth.Login(ctx, "ada", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, result.UserID, user.ID)
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	st := newTestStore(t)
	reg := NewRegistration(st, true)
	auth := NewAuth(st)
	ctx := context.Background()

	_, err := reg.Register(ctx, validInput())
	require.NoError(t, err)

	// Stored ada@example.com, queried in different casing.
	user, err := auth.Login(ctx, "Ada@Example.COM", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	st := newTestStore(t)
	reg := NewRegistration(st, true)
	auth := NewAuth(st)
	ctx := context.Background()

	_, err := reg.Register(ctx, validInput())
	require.NoError(t, err)

	// Correct username, wrong password.
	_, wrongPass := auth.Login(ctx, "ada", "not-the-password")
	// Nonexistent identifier.
	_, unknown := auth.Login(ctx, "nobody", "s3cret!")

	// Both outcomes are the same error, so a caller cannot tell which
	// condition was hit.
	assert.ErrorIs(t, wrongPass, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestLoginMissingCredentials(t *testing.T) {
	auth := NewAuth(newTestStore(t))
	ctx := context.Background()

	_, err := auth.Login(ctx, "", "pass")
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
	_, err = auth.Login(ctx, "ada", "")
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestUserViewIsSanitized(t *testing.T) {
	st := newTestStore(t)
	reg := NewRegistration(st, true)
	auth := NewAuth(st)
	ctx := context.Background()

	_, err := reg.Register(ctx, validInput())
	require.NoError(t, err)

	user, err := auth.Login(ctx, "ada", "s3cret!")
	require.NoError(t, err)

	view := user.View()
	assert.Equal(t, user.ID, view.ID)
	assert.Equal(t, "ada@example.com", view.Email)
	assert.Equal(t, "ada", view.Username)
	assert.Equal(t, "Ada", view.FirstName)
	assert.Equal(t, "Lovelace", view.LastName)
}
