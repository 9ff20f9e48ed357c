package wire

import (
	"usuarios-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireRole configures role management routes
func wireRole(r chi.Router, roleHandler *adaptor.RoleHandler) {
	r.Route("/api/roles", func(r chi.Router) {
		r.Post("/registrar-rol", roleHandler.Create)
		r.Get("/mostrar-roles", roleHandler.GetAll)
		r.Get("/mostrar-rol/{id}", roleHandler.GetByID)
		r.Put("/editar/{id}", roleHandler.Update)
		r.Put("/editar-estado-rol/{id}", roleHandler.ToggleStatus)
		r.Delete("/eliminar/{id}", roleHandler.Delete)
	})
}
