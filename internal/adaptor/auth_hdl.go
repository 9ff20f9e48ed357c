package adaptor

import (
	"errors"
	"net/http"

	"usuarios-api/internal/dto/request"
	"usuarios-api/internal/usecase"
	"usuarios-api/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Login handles POST /api/usuarios/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "login")
		return
	}

	utils.ResponseData(w, r, response)
}

// handleServiceError maps each failed login step to its own response type
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, r, msgInvalidFields)

	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - user not found", zap.Error(err))
		utils.ResponseNotFound(w, r, msgUserMissing)

	case errors.Is(err, usecase.ErrUserDisabled):
		h.log.Warn(operation+" failed - account deactivated", zap.Error(err))
		utils.ResponseForbidden(w, r, utils.TypeUserDeactivated, msgUserDisabled)

	case errors.Is(err, usecase.ErrRoleDisabled):
		h.log.Warn(operation+" failed - role deactivated", zap.Error(err))
		utils.ResponseForbidden(w, r, utils.TypeRoleDeactivated, msgLoginRoleDisabled)

	case errors.Is(err, usecase.ErrInvalidPassword):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseForbidden(w, r, utils.TypePasswordIncorrect, msgPasswordIncorrect)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, r, msgUserError)
	}
}
