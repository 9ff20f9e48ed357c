package usecase

import (
	"usuarios-api/internal/data/repository"
	"usuarios-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
	Role RoleService
	User UserService
}

func NewService(repo *repository.Repository, hasher utils.PasswordHasher, log *zap.Logger) *Service {
	return &Service{
		Auth: NewAuthService(repo, hasher, log),
		Role: NewRoleService(repo.Role, repo.User, log),
		User: NewUserService(repo, hasher, log),
	}
}
