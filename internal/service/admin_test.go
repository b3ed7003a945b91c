package service

import (
	"context"
	"testing"
	"time"
	"unicode/utf8"

	"bbl-admins-portal/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invite(t *testing.T, env *testEnv, name, email string) *entity.AdminOutputModel {
	t.Helper()

	admin, err := env.services.Admin.Invite(context.Background(), &entity.InviteAdminInput{Name: name, Email: email})
	require.NoError(t, err)

	return admin
}

func TestInviteCreatesPendingAdmin(t *testing.T) {
	env := newTestEnv()

	admin := invite(t, env, "Rumbidzai", "Rumbi@Example.com")

	assert.Equal(t, string(entity.RolePending), admin.Role)
	assert.Equal(t, "rumbi@example.com", admin.Email)
	assert.False(t, admin.PasswordSet)
	assert.Empty(t, admin.Permissions)
	assert.NotEmpty(t, admin.InvitationGeneratedAt)
	assert.Contains(t, admin.AvatarUrl, "text=R")

	require.Len(t, env.notifier.invites, 1)
	assert.Contains(t, env.notifier.invites[0], "/set-password/"+admin.Id)
}

func TestInviteAvatarInitialHandlesMultibyteNames(t *testing.T) {
	env := newTestEnv()

	admin := invite(t, env, "Ólafur", "olafur@example.com")

	assert.Contains(t, admin.AvatarUrl, "text=Ó")
	assert.True(t, utf8.ValidString(admin.AvatarUrl))
}

func TestInviteRefreshesPendingWithoutPassword(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	first := invite(t, env, "Rumbidzai", "rumbi@example.com")

	// Make the outstanding invitation look stale.
	stored, err := env.repos.Admin.GetAdminById(ctx, first.Id)
	require.NoError(t, err)
	stored.InvitationGeneratedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, env.repos.Admin.UpdateAdmin(ctx, stored))

	second := invite(t, env, "Rumbidzai", "rumbi@example.com")
	assert.Equal(t, first.Id, second.Id)
	assert.NotEqual(t, stored.InvitationGeneratedAt.Format(time.RFC3339), second.InvitationGeneratedAt)

	// The refreshed link works again.
	refreshed, err := env.services.Admin.GetInvitation(ctx, first.Id)
	require.NoError(t, err)
	assert.Equal(t, first.Id, refreshed.Id)

	assert.Len(t, env.notifier.invites, 2)
}

func TestInviteDuplicateEmail(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	admin := invite(t, env, "Rumbidzai", "rumbi@example.com")
	_, err := env.services.Admin.SetPassword(ctx, admin.Id, "a-strong-password")
	require.NoError(t, err)

	// Once a password is set, a re-invite is a duplicate.
	_, err = env.services.Admin.Invite(ctx, &entity.InviteAdminInput{Name: "Other", Email: "RUMBI@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestInvitationExpiresOnConsumption(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	admin := invite(t, env, "Rumbidzai", "rumbi@example.com")

	stored, err := env.repos.Admin.GetAdminById(ctx, admin.Id)
	require.NoError(t, err)
	stored.InvitationGeneratedAt = time.Now().UTC().Add(-InvitationTTL - time.Second)
	require.NoError(t, env.repos.Admin.UpdateAdmin(ctx, stored))

	_, err = env.services.Admin.GetInvitation(ctx, admin.Id)
	assert.ErrorIs(t, err, ErrInvitationExpired)

	_, err = env.services.Admin.SetPassword(ctx, admin.Id, "a-strong-password")
	assert.ErrorIs(t, err, ErrInvitationExpired)
}

func TestSetPasswordClearsInvitation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	admin := invite(t, env, "Rumbidzai", "rumbi@example.com")

	updated, err := env.services.Admin.SetPassword(ctx, admin.Id, "a-strong-password")
	require.NoError(t, err)
	assert.True(t, updated.PasswordSet)
	assert.Empty(t, updated.InvitationGeneratedAt)
	assert.Equal(t, []string{"rumbi@example.com"}, env.notifier.readyEmails)

	// The link is single use.
	_, err = env.services.Admin.GetInvitation(ctx, admin.Id)
	assert.ErrorIs(t, err, ErrInvitationExpired)
}

func TestApproveRequiresPassword(t *testing.T) {
	env := newTestEnv()

	admin := invite(t, env, "Rumbidzai", "rumbi@example.com")

	_, err := env.services.Admin.Approve(context.Background(), admin.Id)
	assert.ErrorIs(t, err, ErrPasswordNotSet)
}

func TestApproveGrantsDefaultPermissions(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	admin := invite(t, env, "Rumbidzai", "rumbi@example.com")
	_, err := env.services.Admin.SetPassword(ctx, admin.Id, "a-strong-password")
	require.NoError(t, err)

	approved, err := env.services.Admin.Approve(ctx, admin.Id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.RoleAdmin), approved.Role)
	assert.ElementsMatch(t, entity.DefaultPermissions, approved.Permissions)
	assert.Equal(t, []string{"rumbi@example.com"}, env.notifier.approvedEmails)

	_, err = env.services.Admin.Approve(ctx, admin.Id)
	assert.ErrorIs(t, err, ErrAlreadyApproved)
}

func TestUpdatePermissions(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	admin := invite(t, env, "Rumbidzai", "rumbi@example.com")

	updated, err := env.services.Admin.UpdatePermissions(ctx, admin.Id, []entity.Permission{
		entity.PermissionTracking, entity.PermissionChat,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.Permission{entity.PermissionTracking, entity.PermissionChat}, updated.Permissions)

	_, err = env.services.Admin.UpdatePermissions(ctx, admin.Id, []entity.Permission{"superuser"})
	assert.ErrorIs(t, err, ErrInvalidPermission)
}

func TestAuthenticate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	admin := invite(t, env, "Rumbidzai", "rumbi@example.com")
	_, err := env.services.Admin.SetPassword(ctx, admin.Id, "a-strong-password")
	require.NoError(t, err)

	// Pending admins cannot sign in yet.
	_, err = env.services.Admin.Authenticate(ctx, "rumbi@example.com", "a-strong-password")
	assert.ErrorIs(t, err, ErrNotApproved)

	_, err = env.services.Admin.Approve(ctx, admin.Id)
	require.NoError(t, err)

	authed, err := env.services.Admin.Authenticate(ctx, "RUMBI@example.com", "a-strong-password")
	require.NoError(t, err)
	assert.Equal(t, admin.Id, authed.Id)

	_, err = env.services.Admin.Authenticate(ctx, "rumbi@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.services.Admin.Authenticate(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateMyProfile(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	admin := invite(t, env, "Rumbidzai", "rumbi@example.com")
	_, err := env.services.Admin.SetPassword(ctx, admin.Id, "a-strong-password")
	require.NoError(t, err)
	_, err = env.services.Admin.Approve(ctx, admin.Id)
	require.NoError(t, err)

	_, err = env.services.Admin.UpdateMyProfile(ctx, admin.Id, &entity.UpdateProfileInput{
		Password:        "new-password-123",
		CurrentPassword: "not-my-password",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)

	updated, err := env.services.Admin.UpdateMyProfile(ctx, admin.Id, &entity.UpdateProfileInput{
		Name:            "Rumbidzai M.",
		Password:        "new-password-123",
		CurrentPassword: "a-strong-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rumbidzai M.", updated.Name)

	_, err = env.services.Admin.Authenticate(ctx, "rumbi@example.com", "new-password-123")
	require.NoError(t, err)
}

func TestSeedDefaultAdmin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.services.Admin.SeedDefaultAdmin(ctx, "Super Admin", "admin@bbl.com", "root-password"))

	seeded, err := env.services.Admin.Authenticate(ctx, "admin@bbl.com", "root-password")
	require.NoError(t, err)
	assert.ElementsMatch(t, entity.AllPermissions, seeded.Permissions)

	// Seeding twice is a no-op.
	require.NoError(t, env.services.Admin.SeedDefaultAdmin(ctx, "Super Admin", "admin@bbl.com", "other-password"))
	_, err = env.services.Admin.Authenticate(ctx, "admin@bbl.com", "root-password")
	require.NoError(t, err)
}
