package routers

import (
	"medirecord-service/internal/app/delivery/http/middlewares"
	"medirecord-service/internal/app/services/users"
	"medirecord-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).Get("/admin/users", userController.ListUsers)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).Delete("/admin/users", userController.DeleteUser)
}
