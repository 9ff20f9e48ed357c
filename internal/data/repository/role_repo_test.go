package repository

import (
	"context"
	"testing"

	"usuarios-api/internal/data/entity"
	"usuarios-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRoleRepository_CreateAndFind(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	repo := NewRoleRepository(db, zaptest.NewLogger(t))
	ctx := context.Background()

	role := &entity.Role{Name: "admin", Enabled: true}
	require.NoError(t, repo.Create(ctx, role))
	assert.NotZero(t, role.ID)

	found, err := repo.FindByID(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", found.Name)
	assert.True(t, found.Enabled)

	byName, err := repo.FindByName(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, role.ID, byName.ID)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRoleRepository_DuplicateName(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	repo := NewRoleRepository(db, zaptest.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Role{Name: "admin", Enabled: true}))
	err := repo.Create(ctx, &entity.Role{Name: "admin", Enabled: true})
	assert.ErrorIs(t, err, ErrDuplicate)

	roles, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 1)
}

func TestRoleRepository_UpdateAndSetEnabled(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	repo := NewRoleRepository(db, zaptest.NewLogger(t))
	ctx := context.Background()
	role := testutil.SeedRole(t, db, "admin")

	require.NoError(t, repo.UpdateName(ctx, role.ID, "editor"))
	require.NoError(t, repo.SetEnabled(ctx, role.ID, false))

	found, err := repo.FindByID(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, "editor", found.Name)
	assert.False(t, found.Enabled)

	assert.ErrorIs(t, repo.UpdateName(ctx, 999, "x"), ErrRecordNotFound)
	assert.ErrorIs(t, repo.SetEnabled(ctx, 999, true), ErrRecordNotFound)
}

func TestRoleRepository_DeleteKeepsUsers(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	log := zaptest.NewLogger(t)
	roles := NewRoleRepository(db, log)
	users := NewUserRepository(db, log)
	ctx := context.Background()

	role := testutil.SeedRole(t, db, "admin")
	user := testutil.SeedUser(t, db, "Ana", "ana@x.com", "digest", role.ID)

	require.NoError(t, roles.Delete(ctx, role.ID))

	_, err := roles.FindByID(ctx, role.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	orphan, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.RoleID)
	assert.False(t, orphan.HasRole())

	assert.ErrorIs(t, roles.Delete(ctx, role.ID), ErrRecordNotFound)
}
