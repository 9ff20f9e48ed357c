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

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	repo   *repository.Repository // grouping userRepo & roleRepo
	hasher utils.PasswordHasher
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	hasher utils.PasswordHasher,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		hasher: hasher,
		log:    log,
	}
}

// Login stops at the first failing check: user exists, user enabled, role
// enabled, password matches.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Cari user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			s.log.Warn("User not found for login", zap.String("email", req.Email))
		} else {
			s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		}
		return nil, fromRepository(err, "find user "+req.Email)
	}

	// 3. User harus aktif
	if !user.Enabled {
		s.log.Warn("Disabled user tried to login", zap.Uint("user_id", user.ID))
		return nil, fmt.Errorf("%w: user %d", ErrUserDisabled, user.ID)
	}

	// 4. Role user harus ada dan aktif
	if err := s.checkRole(ctx, user); err != nil {
		return nil, err
	}

	// 5. Cek password
	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Uint("user_id", user.ID))
		return nil, fmt.Errorf("%w: user %d", ErrInvalidPassword, user.ID)
	}

	s.log.Info("User logged in",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email))

	resp := response.UserToLoginResponse(user)
	return &resp, nil
}

// checkRole looks the role up by the user's rolId. A user left without a role
// counts as holding a disabled one.
func (s *authService) checkRole(ctx context.Context, user *entity.User) error {
	if !user.HasRole() {
		s.log.Warn("User without role tried to login", zap.Uint("user_id", user.ID))
		return fmt.Errorf("%w: user %d has no role", ErrRoleDisabled, user.ID)
	}

	role, err := s.repo.Role.FindByID(ctx, *user.RoleID)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		s.log.Warn("User role no longer exists", zap.Uint("user_id", user.ID), zap.Uint("role_id", *user.RoleID))
		return fmt.Errorf("%w: role %d missing", ErrRoleDisabled, *user.RoleID)
	case err != nil:
		s.log.Error("Failed to find role", zap.Error(err), zap.Uint("role_id", *user.RoleID))
		return fromRepository(err, "find role")
	case !role.Enabled:
		s.log.Warn("User with disabled role tried to login",
			zap.Uint("user_id", user.ID),
			zap.Uint("role_id", role.ID))
		return fmt.Errorf("%w: role %d", ErrRoleDisabled, role.ID)
	}

	return nil
}
