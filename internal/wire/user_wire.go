package wire

import (
	"usuarios-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures user routes, login included
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, authHandler *adaptor.AuthHandler) {
	r.Route("/api/usuarios", func(r chi.Router) {
		r.Get("/todos-los-usuarios", userHandler.GetAll) // ?page=1&per_page=10 opsional
		r.Post("/registrar", userHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Put("/editar-usuario/{id}", userHandler.Update)
		r.Put("/restablecer-password/{id}", userHandler.ResetPassword)
		r.Put("/cambiar-estado/{id}", userHandler.ToggleStatus)
		r.Delete("/eliminar-usuario/{id}", userHandler.Delete)
		r.Get("/perfil-de-usuario/{id}", userHandler.GetProfile)
	})
}
