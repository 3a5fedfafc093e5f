package services

import (
	"context"
	"testing"

	"github.com/firstshift/jobboard/internal/apperr"
	"github.com/firstshift/jobboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ada", "ada@example.com", "password123", models.RoleApplicant)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleApplicant, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "password123", models.RoleApplicant)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other Ada", "ada@example.com", "password456", models.RoleBusiness)
	require.Error(t, err)
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
}

func TestRegisterInvalidInput(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "password123", models.Role("superuser"))
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)

	_, err = svc.Register(ctx, "Ada", "ada@example.com", "short", models.RoleApplicant)
	appErr, ok = apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Ada", "ada@example.com", "password123", models.RoleApplicant)
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "ada@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthenticateGenericError(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "password123", models.RoleApplicant)
	require.NoError(t, err)

	// Wrong password and unknown email must be indistinguishable.
	_, errWrongPass := svc.Authenticate(ctx, "ada@example.com", "wrong-password")
	_, errNoUser := svc.Authenticate(ctx, "nobody@example.com", "password123")

	for _, err := range []error{errWrongPass, errNoUser} {
		appErr, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, apperr.KindAuth, appErr.Kind)
		assert.Equal(t, "invalid credentials", appErr.Message)
	}
}

func TestUpsertOAuthUser(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	first, err := svc.UpsertOAuthUser(ctx, "ada@example.com", "Ada", models.RoleBusiness)
	require.NoError(t, err)
	assert.Equal(t, models.RoleBusiness, first.Role)

	// Second login returns the same account; the role hint is ignored.
	second, err := svc.UpsertOAuthUser(ctx, "ada@example.com", "Ada", models.RoleApplicant)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.RoleBusiness, second.Role)

	// OAuth-created accounts cannot be entered through password login.
	_, err = svc.Authenticate(ctx, "ada@example.com", "password123")
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindAuth, appErr.Kind)
}
