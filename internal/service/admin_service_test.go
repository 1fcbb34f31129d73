package service

import (
	"context"
	"testing"

	"github.com/Eursukkul/partywknd/internal/auth"
	"github.com/Eursukkul/partywknd/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.admin.CreateUser(ctx, &models.User{ID: "u-1", Email: "Dana@PartyWknd.io"})
	require.NoError(t, err)
	assert.Equal(t, "dana@partywknd.io", user.Email)
	assert.Equal(t, "User u-1", user.Name)

	_, err = f.admin.CreateUser(ctx, &models.User{ID: "u-2", Email: "dana@partywknd.io"})
	assert.ErrorIs(t, err, ErrIntegrityViolation)

	_, err = f.admin.CreateUser(ctx, &models.User{ID: "u-3"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateAgent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.admin.CreateAgent(ctx, &models.Agent{DisplayName: "Maya", UserID: strPtr("ghost")})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, _, err = f.users.EnsureUser(ctx, nil, "u-9")
	require.NoError(t, err)

	agent, err := f.admin.CreateAgent(ctx, &models.Agent{DisplayName: "Maya", UserID: strPtr("u-9")})
	require.NoError(t, err)
	require.NotNil(t, agent.User)
	assert.Equal(t, "u-9", agent.User.ID)

	standalone, err := f.admin.CreateAgent(ctx, &models.Agent{ID: "agent-2", DisplayName: "Rico"})
	require.NoError(t, err)
	assert.Nil(t, standalone.UserID)

	got, err := f.admin.GetAgent(ctx, "agent-2")
	require.NoError(t, err)
	assert.Equal(t, "Rico", got.DisplayName)

	_, err = f.admin.GetAgent(ctx, "agent-404")
	assert.ErrorIs(t, err, ErrAgentNotFound)
}

func TestAdminLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ops := "ops"
	admin, err := f.admin.CreateAdmin(ctx, "ops@partywknd.io", "s3cret", &ops)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", admin.HashedPassword)

	tok, err := f.admin.Login(ctx, "OPS@partywknd.io", "s3cret")
	require.NoError(t, err)

	id, err := auth.NewIssuer("test-secret", 0).Parse(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, auth.KindAdmin, id.Kind)
	assert.Equal(t, "ops", id.Role)

	_, err = f.admin.Login(ctx, "ops@partywknd.io", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = f.admin.Login(ctx, "nobody@partywknd.io", "s3cret")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = f.admin.CreateAdmin(ctx, "ops@partywknd.io", "other", nil)
	assert.ErrorIs(t, err, ErrIntegrityViolation)
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.admin.EnsureAdmin(ctx, "root@partywknd.io", "pw"))
	require.NoError(t, f.admin.EnsureAdmin(ctx, "root@partywknd.io", "pw"))
	assert.Equal(t, int64(1), f.count(t, &models.AdminUser{}))

	tok, err := f.admin.Login(ctx, "root@partywknd.io", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, tok.AccessToken)
}
