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

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	repo := NewUserRepository(db, zaptest.NewLogger(t))
	ctx := context.Background()
	role := testutil.SeedRole(t, db, "admin")

	user := &entity.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "digest", Enabled: true, RoleID: &role.ID}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	byEmail, err := repo.FindByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	require.NotNil(t, byEmail.RoleID)
	assert.Equal(t, role.ID, *byEmail.RoleID)

	_, err = repo.FindByEmail(ctx, "nadie@x.com")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	repo := NewUserRepository(db, zaptest.NewLogger(t))
	ctx := context.Background()
	role := testutil.SeedRole(t, db, "admin")
	testutil.SeedUser(t, db, "Ana", "ana@x.com", "digest", role.ID)

	err := repo.Create(ctx, &entity.User{Name: "Otra", Email: "ana@x.com", PasswordHash: "digest", Enabled: true, RoleID: &role.ID})
	assert.ErrorIs(t, err, ErrDuplicate)

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestUserRepository_UnknownRole(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	repo := NewUserRepository(db, zaptest.NewLogger(t))

	missing := uint(42)
	err := repo.Create(context.Background(), &entity.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "digest", Enabled: true, RoleID: &missing})
	assert.ErrorIs(t, err, ErrForeignKey)
}

func TestUserRepository_Updates(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	repo := NewUserRepository(db, zaptest.NewLogger(t))
	ctx := context.Background()
	admin := testutil.SeedRole(t, db, "admin")
	editor := testutil.SeedRole(t, db, "editor")
	user := testutil.SeedUser(t, db, "Ana", "ana@x.com", "digest", admin.ID)

	user.Name = "Ana Maria"
	user.RoleID = &editor.ID
	require.NoError(t, repo.Update(ctx, user))
	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "other-digest"))
	require.NoError(t, repo.SetEnabled(ctx, user.ID, false))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", found.Name)
	assert.Equal(t, editor.ID, *found.RoleID)
	assert.Equal(t, "other-digest", found.PasswordHash)
	assert.False(t, found.Enabled)

	count, err := repo.CountByRole(ctx, editor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	assert.ErrorIs(t, repo.SetEnabled(ctx, 999, true), ErrRecordNotFound)
}

func TestUserRepository_FindAllPaginatesAndDelete(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	repo := NewUserRepository(db, zaptest.NewLogger(t))
	ctx := context.Background()
	role := testutil.SeedRole(t, db, "admin")
	first := testutil.SeedUser(t, db, "A", "a@x.com", "digest", role.ID)
	testutil.SeedUser(t, db, "B", "b@x.com", "digest", role.ID)
	testutil.SeedUser(t, db, "C", "c@x.com", "digest", role.ID)

	all, err := repo.FindAll(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := repo.FindAll(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "c@x.com", page[0].Email)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), ErrRecordNotFound)

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
