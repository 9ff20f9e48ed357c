package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"usuarios-api/internal/dto/request"
	"usuarios-api/internal/usecase"
	"usuarios-api/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// GetAll handles GET /api/usuarios/todos-los-usuarios?page=1&per_page=10
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page := request.PaginationFromQuery(r.URL.Query())

	users, total, err := h.service.GetAll(r.Context(), page)
	if err != nil {
		h.handleServiceError(w, r, err, "list users")
		return
	}

	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
	utils.ResponseData(w, r, users)
}

// Register handles POST /api/usuarios/registrar
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.service.Register(r.Context(), &req); err != nil {
		h.handleServiceError(w, r, err, "register")
		return
	}

	utils.ResponseCreated(w, r, msgUserCreated)
}

// Update handles PUT /api/usuarios/editar-usuario/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.service.Update(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, r, err, "update user")
		return
	}

	utils.ResponseSuccess(w, r, msgUserUpdated)
}

// ResetPassword handles PUT /api/usuarios/restablecer-password/{id}
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.ResetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.ResetPassword(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, r, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, r, msgPasswordChanged)
}

// ToggleStatus handles PUT /api/usuarios/cambiar-estado/{id}
func (h *UserHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if _, err := h.service.ToggleStatus(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err, "toggle user")
		return
	}

	utils.ResponseSuccess(w, r, msgUserStatusChanged)
}

// Delete handles DELETE /api/usuarios/eliminar-usuario/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, r, msgUserDeleted)
}

// GetProfile handles GET /api/usuarios/perfil-de-usuario/{id}
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, "get profile")
		return
	}

	utils.ResponseData(w, r, profile)
}

// handleServiceError handles different types of errors
func (h *UserHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		msg := msgInvalidFields
		if errors.Is(err, usecase.ErrRoleNotFound) {
			msg = msgRoleMissing
		}
		utils.ResponseBadRequest(w, r, msg)

	case errors.Is(err, usecase.ErrRoleNotFound):
		h.log.Warn(operation+" failed - role not found", zap.Error(err))
		utils.ResponseNotFound(w, r, msgRoleMissing)

	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, r, msgNotFound)

	case errors.Is(err, usecase.ErrDuplicateValue):
		h.log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, r, msgUserDuplicate)

	case errors.Is(err, usecase.ErrUserDisabled):
		h.log.Warn(operation+" failed - account deactivated", zap.Error(err))
		utils.ResponseForbidden(w, r, utils.TypeUserDeactivated, msgUserDisabled)

	case errors.Is(err, usecase.ErrRoleDisabled):
		h.log.Warn(operation+" failed - role deactivated", zap.Error(err))
		utils.ResponseForbidden(w, r, utils.TypeRoleDeactivated, msgTargetRoleDisabled)

	case errors.Is(err, usecase.ErrInvalidPassword):
		h.log.Warn(operation+" failed - incorrect password", zap.Error(err))
		utils.ResponseForbidden(w, r, utils.TypePasswordIncorrect, msgCurrentPasswordBad)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, r, msgUserError)
	}
}
