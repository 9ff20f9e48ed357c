package usecase

import (
	"context"
	"errors"
	"fmt"

	"usuarios-api/internal/data/entity"
	"usuarios-api/internal/data/repository"
	"usuarios-api/internal/dto/request"
	"usuarios-api/pkg/utils"

	"go.uber.org/zap"
)

type RoleService interface {
	Create(ctx context.Context, req *request.RoleRequest) (*entity.Role, error)
	GetAll(ctx context.Context) ([]*entity.Role, error)
	GetByID(ctx context.Context, id uint) (*entity.Role, error)
	Update(ctx context.Context, id uint, req *request.RoleRequest) (*entity.Role, error)
	ToggleStatus(ctx context.Context, id uint) (*entity.Role, error)
	Delete(ctx context.Context, id uint) error
}

type roleService struct {
	roleRepo repository.RoleRepository
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewRoleService(roleRepo repository.RoleRepository, userRepo repository.UserRepository, log *zap.Logger) RoleService {
	return &roleService{
		roleRepo: roleRepo,
		userRepo: userRepo,
		log:      log,
	}
}

func (rs *roleService) Create(ctx context.Context, req *request.RoleRequest) (*entity.Role, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		rs.log.Warn("Create role validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Cek nama sudah dipakai
	if err := rs.ensureNameFree(ctx, req.Name, 0); err != nil {
		return nil, err
	}

	// 3. Simpan role
	role := &entity.Role{
		Name:    req.Name,
		Enabled: true,
	}
	if err := rs.roleRepo.Create(ctx, role); err != nil {
		return nil, fromRepository(err, "create role")
	}

	rs.log.Info("Role created", zap.Uint("role_id", role.ID), zap.String("name", role.Name))
	return role, nil
}

func (rs *roleService) GetAll(ctx context.Context) ([]*entity.Role, error) {
	roles, err := rs.roleRepo.FindAll(ctx)
	if err != nil {
		return nil, fromRepository(err, "list roles")
	}

	if roles == nil {
		roles = []*entity.Role{}
	}
	return roles, nil
}

func (rs *roleService) GetByID(ctx context.Context, id uint) (*entity.Role, error) {
	role, err := rs.roleRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrRecordNotFound) {
			rs.log.Error("Failed to find role", zap.Error(err), zap.Uint("role_id", id))
		}
		return nil, fromRepository(err, "get role")
	}

	return role, nil
}

func (rs *roleService) Update(ctx context.Context, id uint, req *request.RoleRequest) (*entity.Role, error) {
	// 1. Pastikan role ada
	role, err := rs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		rs.log.Warn("Update role validation failed", zap.Any("errors", errs), zap.Uint("role_id", id))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 3. Nama baru tidak boleh dipakai role lain
	if err := rs.ensureNameFree(ctx, req.Name, id); err != nil {
		return nil, err
	}

	// 4. Update
	if err := rs.roleRepo.UpdateName(ctx, id, req.Name); err != nil {
		return nil, fromRepository(err, "update role")
	}

	role.Name = req.Name
	rs.log.Info("Role updated", zap.Uint("role_id", id), zap.String("name", role.Name))
	return role, nil
}

func (rs *roleService) ToggleStatus(ctx context.Context, id uint) (*entity.Role, error) {
	role, err := rs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role.Enabled = !role.Enabled
	if err := rs.roleRepo.SetEnabled(ctx, id, role.Enabled); err != nil {
		return nil, fromRepository(err, "toggle role")
	}

	rs.log.Info("Role status changed", zap.Uint("role_id", id), zap.Bool("enabled", role.Enabled))
	return role, nil
}

// Delete removes the role; users holding it keep their row with rolId cleared
func (rs *roleService) Delete(ctx context.Context, id uint) error {
	// 1. Hitung user yang akan dilepas dari role ini
	released, err := rs.userRepo.CountByRole(ctx, id)
	if err != nil {
		return fromRepository(err, "count role users")
	}

	// 2. Hapus role
	if err := rs.roleRepo.Delete(ctx, id); err != nil {
		return fromRepository(err, "delete role")
	}

	rs.log.Info("Role deleted", zap.Uint("role_id", id), zap.Int64("users_released", released))
	return nil
}

// ensureNameFree fails with ErrDuplicateValue when another role already uses name
func (rs *roleService) ensureNameFree(ctx context.Context, name string, selfID uint) error {
	existing, err := rs.roleRepo.FindByName(ctx, name)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return nil
	case err != nil:
		rs.log.Error("Failed to check role name", zap.Error(err), zap.String("name", name))
		return fromRepository(err, "check role name")
	case existing.ID != selfID:
		return fmt.Errorf("%w: role name %q", ErrDuplicateValue, name)
	default:
		return nil
	}
}
