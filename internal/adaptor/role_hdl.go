package adaptor

import (
	"errors"
	"net/http"

	"usuarios-api/internal/dto/request"
	"usuarios-api/internal/usecase"
	"usuarios-api/pkg/utils"

	"go.uber.org/zap"
)

type RoleHandler struct {
	service usecase.RoleService
	log     *zap.Logger
}

func NewRoleHandler(service usecase.RoleService, log *zap.Logger) *RoleHandler {
	return &RoleHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/roles/registrar-rol
func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.RoleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.service.Create(r.Context(), &req); err != nil {
		h.handleServiceError(w, r, err, "create role")
		return
	}

	utils.ResponseCreated(w, r, msgRoleCreated)
}

// GetAll handles GET /api/roles/mostrar-roles
func (h *RoleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "list roles")
		return
	}

	utils.ResponseData(w, r, roles)
}

// GetByID handles GET /api/roles/mostrar-rol/{id}
func (h *RoleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	role, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, "get role")
		return
	}

	utils.ResponseData(w, r, role)
}

// Update handles PUT /api/roles/editar/{id}
func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.RoleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.service.Update(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, r, err, "update role")
		return
	}

	utils.ResponseSuccess(w, r, msgRoleUpdated)
}

// ToggleStatus handles PUT /api/roles/editar-estado-rol/{id}
func (h *RoleHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if _, err := h.service.ToggleStatus(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err, "toggle role")
		return
	}

	utils.ResponseSuccess(w, r, msgRoleStatusChanged)
}

// Delete handles DELETE /api/roles/eliminar/{id}
func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err, "delete role")
		return
	}

	utils.ResponseSuccess(w, r, msgRoleDeleted)
}

func (h *RoleHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, r, msgNotFound)

	case errors.Is(err, usecase.ErrValidation):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, r, msgInvalidFields)

	case errors.Is(err, usecase.ErrDuplicateValue):
		h.log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, r, msgRoleDuplicate)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, r, msgRoleError)
	}
}
