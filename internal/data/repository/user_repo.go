package repository

import (
	"context"

	"usuarios-api/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, roleID uint) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	SetEnabled(ctx context.Context, id uint, enabled bool) error
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewUserRepository(db *gorm.DB, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ur.db.WithContext(ctx).Omit("Role").Create(user).Error; err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return translateError(err, "create user "+user.Email)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := ur.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translateError(err, "find user by id")
	}

	return &user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := ur.db.WithContext(ctx).Where(map[string]any{"email": email}).First(&user).Error; err != nil {
		return nil, translateError(err, "find user by email")
	}

	return &user, nil
}

// FindAll returns users ordered by id; limit <= 0 means no limit
func (ur *userRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	query := ur.db.WithContext(ctx).Order("id")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var users []*entity.User
	if err := query.Find(&users).Error; err != nil {
		ur.log.Error("Failed to list users",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, translateError(err, "find all users")
	}

	return users, nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := ur.db.WithContext(ctx).Model(&entity.User{}).Count(&total).Error; err != nil {
		ur.log.Error("Failed to count users", zap.Error(err))
		return 0, translateError(err, "count users")
	}

	return total, nil
}

func (ur *userRepository) CountByRole(ctx context.Context, roleID uint) (int64, error) {
	var total int64
	err := ur.db.WithContext(ctx).
		Model(&entity.User{}).
		Where(map[string]any{"rolId": roleID}).
		Count(&total).Error
	if err != nil {
		ur.log.Error("Failed to count users by role", zap.Error(err), zap.Uint("role_id", roleID))
		return 0, translateError(err, "count users by role")
	}

	return total, nil
}

// Update writes the editable profile columns: nombre, email and rolId
func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	return ur.updates(ctx, user.ID, map[string]any{
		"nombre": user.Name,
		"email":  user.Email,
		"rolId":  user.RoleID,
	})
}

func (ur *userRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return ur.updates(ctx, id, map[string]any{"password": passwordHash})
}

func (ur *userRepository) SetEnabled(ctx context.Context, id uint, enabled bool) error {
	return ur.updates(ctx, id, map[string]any{"estado": enabled})
}

func (ur *userRepository) updates(ctx context.Context, id uint, values map[string]any) error {
	result := ur.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Updates(values)

	if result.Error != nil {
		ur.log.Error("Failed to update user",
			zap.Error(result.Error),
			zap.Uint("user_id", id),
		)
		return translateError(result.Error, "update user")
	}

	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (ur *userRepository) Delete(ctx context.Context, id uint) error {
	result := ur.db.WithContext(ctx).Delete(&entity.User{}, id)
	if result.Error != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(result.Error),
			zap.Uint("user_id", id),
		)
		return translateError(result.Error, "delete user")
	}

	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
