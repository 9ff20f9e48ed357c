package usecase

import (
	"testing"

	"usuarios-api/internal/data/repository"
	"usuarios-api/internal/testutil"
	"usuarios-api/pkg/utils"

	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	repo   *repository.Repository
	hasher utils.PasswordHasher
	svc    *Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := zaptest.NewLogger(t)
	db := testutil.OpenInMemoryDB(t)
	repo := repository.NewRepository(db, log)
	hasher := utils.NewBcryptHasher(bcrypt.MinCost)

	return &testEnv{
		db:     db,
		repo:   repo,
		hasher: hasher,
		svc:    NewService(repo, hasher, log),
	}
}

func (e *testEnv) hash(t *testing.T, password string) string {
	t.Helper()
	digest, err := e.hasher.Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return digest
}
