package adaptor

import (
	"net/http"

	"usuarios-api/internal/usecase"
	"usuarios-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

type Handler struct {
	Auth *AuthHandler
	Role *RoleHandler
	User *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth: NewAuthHandler(service.Auth, log),
		Role: NewRoleHandler(service.Role, log),
		User: NewUserHandler(service.User, log),
	}
}

// decodeAndValidate reads a JSON body into dst and runs the struct validator.
// It writes the 400 response itself and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		utils.ResponseBadRequest(w, r, msgInvalidBody)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, r, utils.FormatValidationErrors(validationErrors))
		return false
	}

	return true
}

// pathID parses {id}; an id that cannot exist is answered with 404
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, r, msgNotFound)
		return 0, false
	}
	return id, true
}
