package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Repository struct {
	Role RoleRepository
	User UserRepository
}

func NewRepository(db *gorm.DB, log *zap.Logger) *Repository {
	return &Repository{
		Role: NewRoleRepository(db, log),
		User: NewUserRepository(db, log),
	}
}
