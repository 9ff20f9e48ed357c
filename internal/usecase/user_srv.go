package usecase

import (
	"context"
	"errors"
	"fmt"

	"usuarios-api/internal/data/entity"
	"usuarios-api/internal/data/repository"
	"usuarios-api/internal/dto/request"
	"usuarios-api/internal/dto/response"
	"usuarios-api/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*entity.User, error)
	GetAll(ctx context.Context, page request.PaginatedRequest) ([]*entity.User, int64, error)
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	Update(ctx context.Context, id uint, req *request.UpdateUserRequest) (*entity.User, error)
	ToggleStatus(ctx context.Context, id uint) (*entity.User, error)
	Delete(ctx context.Context, id uint) error
	GetProfile(ctx context.Context, id uint) (*response.ProfileResponse, error)
	ResetPassword(ctx context.Context, id uint, req *request.ResetPasswordRequest) error
}

type userService struct {
	repo   *repository.Repository // user + role
	hasher utils.PasswordHasher
	log    *zap.Logger
}

func NewUserService(repo *repository.Repository, hasher utils.PasswordHasher, log *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		hasher: hasher,
		log:    log,
	}
}

func (us *userService) Register(ctx context.Context, req *request.RegisterRequest) (*entity.User, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Cek email sudah terdaftar
	if err := us.ensureEmailFree(ctx, req.Email, 0); err != nil {
		return nil, err
	}

	// 3. Role harus ada
	if _, err := us.findRole(ctx, req.RoleID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return nil, err
	}

	// 4. Hash password
	hashedPassword, err := us.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// 5. Simpan user
	roleID := req.RoleID
	user := &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Enabled:      true,
		RoleID:       &roleID,
	}
	if err := us.repo.User.Create(ctx, user); err != nil {
		return nil, fromRepository(err, "create user")
	}

	us.log.Info("User registered",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email),
		zap.Uint("role_id", roleID))

	return user, nil
}

// GetAll returns every user, or one page of them when page is enabled, plus the total count
func (us *userService) GetAll(ctx context.Context, page request.PaginatedRequest) ([]*entity.User, int64, error) {
	limit, offset := 0, 0
	if page.Enabled() {
		limit, offset = page.Limit(), page.Offset()
	}

	users, err := us.repo.User.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, fromRepository(err, "list users")
	}

	total := int64(len(users))
	if page.Enabled() {
		total, err = us.repo.User.CountAll(ctx)
		if err != nil {
			return nil, 0, fromRepository(err, "count users")
		}
	}

	if users == nil {
		users = []*entity.User{}
	}
	return users, total, nil
}

func (us *userService) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	user, err := us.repo.User.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrRecordNotFound) {
			us.log.Error("Failed to find user", zap.Error(err), zap.Uint("user_id", id))
		}
		return nil, fromRepository(err, "get user")
	}

	return user, nil
}

func (us *userService) Update(ctx context.Context, id uint, req *request.UpdateUserRequest) (*entity.User, error) {
	// 1. Pastikan user ada
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Update user validation failed", zap.Any("errors", errs), zap.Uint("user_id", id))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 3. Role tujuan harus ada dan aktif
	role, err := us.findRole(ctx, req.RoleID)
	if err != nil {
		return nil, err
	}
	if !role.Enabled {
		us.log.Warn("Update blocked by disabled role", zap.Uint("user_id", id), zap.Uint("role_id", role.ID))
		return nil, fmt.Errorf("%w: role %d", ErrRoleDisabled, role.ID)
	}

	// 4. Email baru tidak boleh dipakai user lain
	if err := us.ensureEmailFree(ctx, req.Email, id); err != nil {
		return nil, err
	}

	// 5. Update
	roleID := req.RoleID
	user.Name = req.Name
	user.Email = req.Email
	user.RoleID = &roleID
	if err := us.repo.User.Update(ctx, user); err != nil {
		return nil, fromRepository(err, "update user")
	}

	us.log.Info("User updated", zap.Uint("user_id", id))
	return user, nil
}

func (us *userService) ToggleStatus(ctx context.Context, id uint) (*entity.User, error) {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Enabled = !user.Enabled
	if err := us.repo.User.SetEnabled(ctx, id, user.Enabled); err != nil {
		return nil, fromRepository(err, "toggle user")
	}

	us.log.Info("User status changed", zap.Uint("user_id", id), zap.Bool("enabled", user.Enabled))
	return user, nil
}

func (us *userService) Delete(ctx context.Context, id uint) error {
	if err := us.repo.User.Delete(ctx, id); err != nil {
		return fromRepository(err, "delete user")
	}

	us.log.Info("User deleted", zap.Uint("user_id", id))
	return nil
}

func (us *userService) GetProfile(ctx context.Context, id uint) (*response.ProfileResponse, error) {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !user.Enabled {
		us.log.Warn("Profile requested for disabled user", zap.Uint("user_id", id))
		return nil, fmt.Errorf("%w: user %d", ErrUserDisabled, id)
	}

	profile := response.UserToProfileResponse(user)
	return &profile, nil
}

// ResetPassword replaces the digest only after the current password verifies
func (us *userService) ResetPassword(ctx context.Context, id uint, req *request.ResetPasswordRequest) error {
	// 1. Pastikan user ada
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// 2. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Reset password validation failed", zap.Any("errors", errs), zap.Uint("user_id", id))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 3. Cek password lama
	if !us.hasher.Verify(req.OldPassword, user.PasswordHash) {
		us.log.Warn("Reset password with wrong current password", zap.Uint("user_id", id))
		return fmt.Errorf("%w: user %d", ErrInvalidPassword, id)
	}

	// 4. Hash password baru lalu simpan
	hashedPassword, err := us.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := us.repo.User.UpdatePassword(ctx, id, hashedPassword); err != nil {
		return fromRepository(err, "reset password")
	}

	us.log.Info("Password changed", zap.Uint("user_id", id))
	return nil
}

func (us *userService) hashPassword(password string) (string, error) {
	hashed, err := us.hasher.Hash(password)
	switch {
	case errors.Is(err, utils.ErrEmptyPassword), errors.Is(err, utils.ErrPasswordTooLong):
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	case err != nil:
		us.log.Error("Failed to hash password", zap.Error(err))
		return "", fmt.Errorf("%w: hash password", ErrUnknown)
	}
	return hashed, nil
}

// findRole reports a missing role as ErrRoleNotFound
func (us *userService) findRole(ctx context.Context, roleID uint) (*entity.Role, error) {
	role, err := us.repo.Role.FindByID(ctx, roleID)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return nil, fmt.Errorf("%w %d", ErrRoleNotFound, roleID)
	case err != nil:
		us.log.Error("Failed to find role", zap.Error(err), zap.Uint("role_id", roleID))
		return nil, fromRepository(err, "find role")
	}
	return role, nil
}

// ensureEmailFree fails with ErrDuplicateValue when another user already has email
func (us *userService) ensureEmailFree(ctx context.Context, email string, selfID uint) error {
	existing, err := us.repo.User.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return nil
	case err != nil:
		us.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return fromRepository(err, "check email")
	case existing.ID != selfID:
		return fmt.Errorf("%w: email %s", ErrDuplicateValue, email)
	default:
		return nil
	}
}
