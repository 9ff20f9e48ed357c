package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"usuarios-api/internal/data/entity"
	"usuarios-api/pkg/database"

	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

// OpenInMemoryDB opens a private in-memory SQLite database with foreign keys
// enabled and both tables migrated. The DB is closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, dbSeq.Add(1))

	db, err := database.OpenGorm(sqlite.Open(dsn), zaptest.NewLogger(t), false)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// one connection keeps the in-memory database alive and avoids shared-cache table locks
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

// SeedRole inserts an enabled role and returns it.
func SeedRole(t *testing.T, db *gorm.DB, name string) *entity.Role {
	t.Helper()

	role := &entity.Role{Name: name, Enabled: true}
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("seed role %s: %v", name, err)
	}
	return role
}

// SeedUser inserts an enabled user holding roleID with an already hashed password.
func SeedUser(t *testing.T, db *gorm.DB, name, email, passwordHash string, roleID uint) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Enabled:      true,
		RoleID:       &roleID,
	}
	if err := db.Omit("Role").Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}
