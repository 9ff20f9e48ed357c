package repository

import (
	"context"

	"usuarios-api/internal/data/entity"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	FindAll(ctx context.Context) ([]*entity.Role, error)
	FindByID(ctx context.Context, id uint) (*entity.Role, error)
	FindByName(ctx context.Context, name string) (*entity.Role, error)
	UpdateName(ctx context.Context, id uint, name string) error
	SetEnabled(ctx context.Context, id uint, enabled bool) error
	Delete(ctx context.Context, id uint) error
}

type roleRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewRoleRepository(db *gorm.DB, log *zap.Logger) RoleRepository {
	return &roleRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new role; ID and timestamps are filled in on the struct
func (rr *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	if err := rr.db.WithContext(ctx).Create(role).Error; err != nil {
		rr.log.Error("Failed to create role",
			zap.Error(err),
			zap.String("name", role.Name),
		)
		return translateError(err, "create role")
	}

	return nil
}

func (rr *roleRepository) FindAll(ctx context.Context) ([]*entity.Role, error) {
	var roles []*entity.Role
	if err := rr.db.WithContext(ctx).Order("id").Find(&roles).Error; err != nil {
		rr.log.Error("Failed to list roles", zap.Error(err))
		return nil, translateError(err, "find all roles")
	}

	return roles, nil
}

func (rr *roleRepository) FindByID(ctx context.Context, id uint) (*entity.Role, error) {
	var role entity.Role
	if err := rr.db.WithContext(ctx).First(&role, id).Error; err != nil {
		return nil, translateError(err, "find role by id")
	}

	return &role, nil
}

func (rr *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	var role entity.Role
	if err := rr.db.WithContext(ctx).Where(map[string]any{"nombreRol": name}).First(&role).Error; err != nil {
		return nil, translateError(err, "find role by name")
	}

	return &role, nil
}

func (rr *roleRepository) UpdateName(ctx context.Context, id uint, name string) error {
	return rr.update(ctx, id, "nombreRol", name)
}

func (rr *roleRepository) SetEnabled(ctx context.Context, id uint, enabled bool) error {
	return rr.update(ctx, id, "estadoRol", enabled)
}

func (rr *roleRepository) update(ctx context.Context, id uint, column string, value any) error {
	result := rr.db.WithContext(ctx).
		Model(&entity.Role{}).
		Where("id = ?", id).
		Update(column, value)

	if result.Error != nil {
		rr.log.Error("Failed to update role",
			zap.Error(result.Error),
			zap.Uint("role_id", id),
			zap.String("column", column),
		)
		return translateError(result.Error, "update role")
	}

	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// Delete removes the role and clears rolId on its users in one transaction
func (rr *roleRepository) Delete(ctx context.Context, id uint) error {
	err := rr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lepas relasi user ke role ini
		if err := tx.Model(&entity.User{}).
			Where(map[string]any{"rolId": id}).
			Update("rolId", nil).Error; err != nil {
			return err
		}

		// 2. Hapus role
		result := tx.Delete(&entity.Role{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		rr.log.Error("Failed to delete role",
			zap.Error(err),
			zap.Uint("role_id", id),
		)
	}

	return translateError(err, "delete role")
}
